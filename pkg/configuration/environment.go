package configuration

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/iota-uz/utils/fs"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/iota-uz/projects-export/pkg/database"
)

// DefaultProjectsTable is used when PROJECTS_TABLE is unset or empty.
const DefaultProjectsTable = "public.admin_project"

var DefaultEnvFiles = []string{".env", ".env.local"}

var singleton = sync.OnceValues(func() (*Configuration, error) {
	return Load(DefaultEnvFiles)
})

func LoadEnv(envFiles []string) (int, error) {
	existingFiles := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if fs.FileExists(file) {
			existingFiles = append(existingFiles, file)
		}
	}

	if len(existingFiles) == 0 {
		return 0, nil
	}

	return len(existingFiles), godotenv.Load(existingFiles...)
}

type DatabaseOptions struct {
	// Bounds connect and ping. The export query runs without a deadline.
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"10s"`
	ProjectsTable  string        `env:"PROJECTS_TABLE"`
}

type Configuration struct {
	Database         DatabaseOptions
	GoAppEnvironment string `env:"GO_APP_ENV" envDefault:"development"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"error"`

	envFilesLoaded int
}

func (c *Configuration) LogrusLogLevel() logrus.Level {
	switch c.LogLevel {
	case "silent":
		return logrus.PanicLevel
	case "error":
		return logrus.ErrorLevel
	case "warn":
		return logrus.WarnLevel
	case "info":
		return logrus.InfoLevel
	case "debug":
		return logrus.DebugLevel
	default:
		return logrus.ErrorLevel
	}
}

// EnvFilesLoaded reports how many of the env files existed and were read.
func (c *Configuration) EnvFilesLoaded() int {
	return c.envFilesLoaded
}

// Use returns the process-wide configuration, loaded once.
func Use() (*Configuration, error) {
	return singleton()
}

func Load(envFiles []string) (*Configuration, error) {
	n, err := LoadEnv(envFiles)
	if err != nil {
		return nil, fmt.Errorf("load env files: %w", err)
	}
	c := &Configuration{
		Database:       DatabaseOptions{ProjectsTable: DefaultProjectsTable},
		envFilesLoaded: n,
	}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Configuration) Validate() error {
	level := strings.ToLower(strings.TrimSpace(c.LogLevel))
	switch level {
	case "silent", "error", "warn", "info", "debug":
	default:
		return fmt.Errorf("invalid LOG_LEVEL=%q (expected silent|error|warn|info|debug)", c.LogLevel)
	}
	c.LogLevel = level

	if c.Database.ConnectTimeout <= 0 {
		return fmt.Errorf("invalid DB_CONNECT_TIMEOUT=%s (must be positive)", c.Database.ConnectTimeout)
	}
	if _, err := database.ParseIdentifier(c.Database.ProjectsTable); err != nil {
		return fmt.Errorf("invalid PROJECTS_TABLE: %w", err)
	}
	return nil
}
