package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// RestConfig aggregates the settings of the REST API
type RestConfig struct {
	Port     string           `mapstructure:"port" validate:"required,numeric"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Database DatabaseSettings `mapstructure:"database"`
	RSA      RSASettings      `mapstructure:"rsa"`
}

// Validate checks the aggregate and each nested settings block
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.Var(c.Port, "required,numeric"); err != nil {
		return fmt.Errorf("validation failed for RestConfig port: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.RSA.Validate(); err != nil {
		return err
	}

	return nil
}

// InitializeRestConfig reads the YAML file at path, applies environment overrides
// (e.g. RSA_WORKERS, DATABASE_DSN) and validates the result.
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setRestDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setRestDefaults(v *viper.Viper) {
	defaults := DefaultRSASettings()

	v.SetDefault("port", "8080")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "rsa-sessions.db")
	v.SetDefault("rsa.workers", 0)
	v.SetDefault("rsa.upload_dir", defaults.UploadDir)
	v.SetDefault("rsa.encrypted_image_dir", defaults.EncryptedImageDir)
	v.SetDefault("rsa.decrypted_image_dir", defaults.DecryptedImageDir)
}
