package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	apperrors "token-auth-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ginContextKey is where the request-scoped entry lives in a gin.Context
const ginContextKey = "logger"

var base = logrus.New()

// Options controls the process-wide logger
type Options struct {
	Level  string // trace, debug, info, warn, error
	Format string // text or json
	Output io.Writer
}

// Configure applies the options to the shared logger.
// An unknown level returns an error and leaves the level unchanged.
func Configure(opts Options) error {
	if opts.Output != nil {
		base.SetOutput(opts.Output)
	} else {
		base.SetOutput(os.Stdout)
	}

	switch strings.ToLower(opts.Format) {
	case "json":
		base.SetFormatter(&logrus.JSONFormatter{})
	default:
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if opts.Level == "" {
		return nil
	}
	lvl, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidLogLevel, opts.Level)
	}
	base.SetLevel(lvl)
	return nil
}

// New returns an entry on the shared logger
func New() *logrus.Entry {
	return logrus.NewEntry(base)
}

// WithGinContext stores a request-scoped entry in the gin context
func WithGinContext(c *gin.Context, entry *logrus.Entry) {
	c.Set(ginContextKey, entry)
}

// FromGinContext returns the request-scoped entry, or a fresh one when the
// request did not pass through the logging middleware.
func FromGinContext(c *gin.Context) *logrus.Entry {
	if c != nil {
		if v, ok := c.Get(ginContextKey); ok {
			if entry, ok := v.(*logrus.Entry); ok {
				return entry
			}
		}
	}
	return New()
}
