package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Data     DataConfig
	Workers  WorkersConfig
	Log      LogConfig
}

type ServerConfig struct {
	Addr string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

// DataConfig points at the directory holding evaluation suite
// manifests and their transcript files.
type DataConfig struct {
	Dir string
}

type WorkersConfig struct {
	Eval int
}

type LogConfig struct {
	Level string
}

func Load(envFile string) (*Config, error) {
	godotenv.Load(envFile)

	return &Config{
		Server: ServerConfig{
			Addr: getEnv("SERVER_ADDR", ":8082"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "127.0.0.1"),
			Port:     getEnvInt("DB_PORT", 3306),
			User:     getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "scorer"),
		},
		Data: DataConfig{
			Dir: getEnv("DATA_DIR", ""),
		},
		Workers: WorkersConfig{
			Eval: getEnvInt("EVAL_WORKERS", 4),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}
