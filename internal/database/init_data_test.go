package database_test

import (
	"os"
	"path/filepath"
	"testing"

	"token-auth-backend/internal/database"
	"token-auth-backend/internal/database/models"
	"token-auth-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

type SeedUsersTestSuite struct {
	suite.Suite
	base *testutils.BaseTestSuite
}

func (suite *SeedUsersTestSuite) SetupSuite() {
	suite.base = testutils.SetupTestSuite(suite.T())
}

func (suite *SeedUsersTestSuite) TearDownSuite() {
	suite.base.TeardownTestSuite()
}

func (suite *SeedUsersTestSuite) SetupTest() {
	suite.base.SetupTest()
}

func (suite *SeedUsersTestSuite) TearDownTest() {
	suite.base.TearDownTest()
}

func (suite *SeedUsersTestSuite) writeFile(content string) string {
	path := filepath.Join(suite.T().TempDir(), "users.yaml")
	suite.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (suite *SeedUsersTestSuite) TestInitUsersFromYAML_CreatesThenUpdates() {
	path := suite.writeFile(`
users:
  - username: Alice
    email: alice@example.com
  - username: bob
    active: false
`)

	res, err := database.InitUsersFromYAML(suite.base.DB, path)
	suite.Require().NoError(err)
	suite.Equal(2, res.Created)

	var alice models.User
	suite.Require().NoError(suite.base.DB.Where("username = ?", "alice").First(&alice).Error)
	suite.True(alice.Active)
	suite.Equal("alice@example.com", alice.Email)

	var bob models.User
	suite.Require().NoError(suite.base.DB.Where("username = ?", "bob").First(&bob).Error)
	suite.False(bob.Active)

	// Second run with one change
	path = suite.writeFile(`
users:
  - username: alice
    email: alice@example.com
  - username: bob
    admin: true
`)
	res, err = database.InitUsersFromYAML(suite.base.DB, path)
	suite.Require().NoError(err)
	suite.Equal(0, res.Created)
	suite.Equal(1, res.Updated)
	suite.Equal(1, res.Unchanged)

	suite.Require().NoError(suite.base.DB.First(&bob, bob.ID).Error)
	suite.True(bob.Active)
	suite.True(bob.Admin)
}

func (suite *SeedUsersTestSuite) TestInitUsersFromYAML_MissingUsernameRollsBack() {
	path := suite.writeFile(`
users:
  - username: carol
  - email: nameless@example.com
`)

	_, err := database.InitUsersFromYAML(suite.base.DB, path)
	suite.Error(err)

	var count int64
	suite.base.DB.Model(&models.User{}).Count(&count)
	suite.Equal(int64(0), count)
}

func TestSeedUsersTestSuite(t *testing.T) {
	suite.Run(t, new(SeedUsersTestSuite))
}
