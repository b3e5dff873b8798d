package config

import "fmt"

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var validDrivers = map[string]bool{
	"":       true, // treated as "none"
	"none":   true,
	"memory": true,
	"file":   true,
	"redis":  true,
	"db":     true,
}

// ValidateConfig checks cross-field constraints before the app boots.
// Development defaults are permissive; production refuses to run with the
// fallback JWT secret or an unusable store configuration.
func ValidateConfig(cfg *Config) error {
	if !validDrivers[cfg.StoreDriver] {
		return ValidationError{Field: "STORE_DRIVER", Message: fmt.Sprintf("unknown driver %q", cfg.StoreDriver)}
	}
	if cfg.StoreDriver == "file" && cfg.StorePath == "" {
		return ValidationError{Field: "STORE_PATH", Message: "required for the file driver"}
	}
	if cfg.StoreDriver == "db" {
		switch cfg.DBDriver {
		case "sqlite":
			if cfg.DBPath == "" {
				return ValidationError{Field: "DB_PATH", Message: "required for the sqlite driver"}
			}
		case "postgres":
			// DSN fields all have defaults
		default:
			return ValidationError{Field: "DB_DRIVER", Message: fmt.Sprintf("unknown driver %q", cfg.DBDriver)}
		}
	}
	if IsProduction() && cfg.JWTSecret == "dev-secret" {
		return ValidationError{Field: "JWT_SECRET", Message: "must be set in production"}
	}
	return nil
}
