package database

// UserData represents user YAML structure in users.yaml
type UserData struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	// Active defaults to true when omitted
	Active *bool `yaml:"active,omitempty"`
	Admin  bool  `yaml:"admin"`
}

// UsersFile wraps the users array
type UsersFile struct {
	Users []UserData `yaml:"users"`
}
