package database

import (
	"fmt"
	"todo-api/pkg/resource"
)

const (
	DriverGorm = "gorm"
	DriverSQLC = "sqlc"
)

type Config struct {
	Driver      string
	Host        string
	Port        string
	Username    string
	Password    string
	Database    string
	Schema      string
	SSLMode     string
	AutoMigrate bool
}

// LoadConfig reads the app.db.* properties.
func LoadConfig() Config {
	return Config{
		Driver:      resource.GetStringOrDefault("app.db.driver", DriverGorm),
		Host:        resource.GetString("app.db.host"),
		Port:        resource.GetString("app.db.port"),
		Username:    resource.GetString("app.db.username"),
		Password:    resource.GetString("app.db.password"),
		Database:    resource.GetString("app.db.database"),
		Schema:      resource.GetStringOrDefault("app.db.schema", "public"),
		SSLMode:     resource.GetStringOrDefault("app.db.ssl-mode", "disable"),
		AutoMigrate: resource.GetBool("app.db.auto-migrate"),
	}
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode, c.Schema)
}

func (c Config) Validate() error {
	switch c.Driver {
	case DriverGorm, DriverSQLC:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Driver)
	}
	if c.Host == "" || c.Database == "" {
		return fmt.Errorf("database host and name are required")
	}
	return nil
}
