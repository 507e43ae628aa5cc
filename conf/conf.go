package conf

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config is the server configuration. Values come from an optional
// TOML file, with environment variables taking precedence.
type Config struct {
	Address        string   `toml:"address"`
	DdbTableName   string   `toml:"ddb_table_name"`
	AwsRegion      string   `toml:"aws_region"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

func Default() Config {
	return Config{
		Address:        ":8080",
		DdbTableName:   "SportChallenge",
		AwsRegion:      "eu-central-1",
		AllowedOrigins: []string{"http://localhost:3000"},
	}
}

// Load reads the TOML config file at path (skipped when path is empty
// or the file does not exist) and applies environment overrides:
// SPORT_ADDRESS, SPORT_DDB_TABLE, SPORT_AWS_REGION,
// SPORT_ALLOWED_ORIGINS (comma-separated).
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err == nil {
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	if v := os.Getenv("SPORT_ADDRESS"); v != "" {
		cfg.Address = v
	}
	if v := os.Getenv("SPORT_DDB_TABLE"); v != "" {
		cfg.DdbTableName = v
	}
	if v := os.Getenv("SPORT_AWS_REGION"); v != "" {
		cfg.AwsRegion = v
	}
	if v := os.Getenv("SPORT_ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = strings.Split(v, ",")
	}

	return cfg, nil
}
