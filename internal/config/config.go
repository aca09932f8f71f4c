// Package config loads the application configuration from a TOML file,
// trying a few candidate paths so the binary can run from the repo root
// or from a package directory.
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// MainConfig holds process-level settings.
type MainConfig struct {
	AppName string `toml:"appName"`
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
	Mode    string `toml:"mode"` // "dev" or "release"
}

// MysqlConfig holds MySQL connection settings.
type MysqlConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	DatabaseName string `toml:"databaseName"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Password string `toml:"password"`
	Db       int    `toml:"db"`
}

// LogConfig drives the zap/lumberjack setup.
type LogConfig struct {
	LogPath    string `toml:"logPath"`
	FileName   string `toml:"fileName"`
	MaxSize    int    `toml:"maxSize"`
	MaxBackups int    `toml:"maxBackups"`
	MaxAge     int    `toml:"maxAge"`
	Level      string `toml:"level"`
}

// KafkaConfig selects the chat fan-out mode and broker address.
// MessageMode is "channel" (in-process, default) or "kafka".
type KafkaConfig struct {
	MessageMode string        `toml:"messageMode"`
	HostPort    string        `toml:"hostPort"`
	ChatTopic   string        `toml:"chatTopic"`
	Partition   int           `toml:"partition"`
	Timeout     time.Duration `toml:"timeout"`
}

// EmailConfig configures the Resend client used for order notifications.
type EmailConfig struct {
	APIKey      string `toml:"apiKey"`
	FromName    string `toml:"fromName"`
	FromAddress string `toml:"fromAddress"`
}

// StorageConfig configures the S3 bucket for proof-of-payment images.
type StorageConfig struct {
	Bucket    string `toml:"bucket"`
	KeyPrefix string `toml:"keyPrefix"`
}

// StaticSrcConfig maps static URL paths to local directories.
type StaticSrcConfig struct {
	StaticAvatarPath string `toml:"staticAvatarPath"`
}

// JWTConfig holds JWT signing settings.
type JWTConfig struct {
	Secret             string `toml:"secret"`
	AccessTokenExpiry  int    `toml:"accessTokenExpiry"`  // minutes
	RefreshTokenExpiry int    `toml:"refreshTokenExpiry"` // hours
}

// AdminConfig names the administrator account. A session whose email
// equals AdminEmail passes the admin gate even without the is_admin flag.
type AdminConfig struct {
	AdminEmail string `toml:"adminEmail"`
}

// SnowflakeConfig holds the snowflake node id, unique per instance.
type SnowflakeConfig struct {
	MachineID int64 `toml:"machineId"`
}

// Config aggregates every section.
type Config struct {
	MainConfig      `toml:"mainConfig"`
	MysqlConfig     `toml:"mysqlConfig"`
	RedisConfig     `toml:"redisConfig"`
	LogConfig       `toml:"logConfig"`
	KafkaConfig     `toml:"kafkaConfig"`
	EmailConfig     `toml:"emailConfig"`
	StorageConfig   `toml:"storageConfig"`
	StaticSrcConfig `toml:"staticSrcConfig"`
	JWTConfig       `toml:"jwtConfig"`
	AdminConfig     `toml:"adminConfig"`
	SnowflakeConfig `toml:"snowflakeConfig"`
}

var config *Config

// LoadConfig tries the candidate paths in order and stops at the first
// file that decodes.
func LoadConfig() error {
	paths := []string{
		"configs/config_local.toml",
		"configs/config.toml",
		"../../configs/config_local.toml",
		"../../configs/config.toml",
	}

	for _, path := range paths {
		if _, err := toml.DecodeFile(path, config); err == nil {
			return nil
		}
	}

	return fmt.Errorf("could not find configuration file in any of the search paths")
}

// GetConfig returns the lazily loaded singleton.
func GetConfig() *Config {
	if config == nil {
		config = new(Config)
		_ = LoadConfig() // fall back to zero values
	}
	return config
}
