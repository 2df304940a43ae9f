package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophaccount/internal/flagx"
	"github.com/dmitrijs2005/gophaccount/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations accept
// either strings such as "10s" or integer nanoseconds.
//
// Fields omitted from the file keep the values already present in Config.
type JsonConfig struct {
	EndpointAddrHTTP *string         `json:"endpoint_addr_http"`
	DatabaseDSN      *string         `json:"database_dsn"`
	PasswordHashCost *int            `json:"password_hash_cost"`
	GraphQLPath      *string         `json:"graphql_path"`
	MetricsPath      *string         `json:"metrics_path"`
	LogLevel         *string         `json:"log_level"`
	ShutdownTimeout  *timex.Duration `json:"shutdown_timeout"`
	MaxQueryDepth    *int            `json:"max_query_depth"`
}

// parseJson loads the file named by -c/-config into config. Without the
// flag it does nothing; an unreadable or malformed file panics.
func parseJson(config *Config, args []string) {
	jsonConfigFile := flagx.ConfigFilePath(args)
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setIfPresent(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setIfPresent(&config.DatabaseDSN, c.DatabaseDSN)
	setIfPresent(&config.PasswordHashCost, c.PasswordHashCost)
	setIfPresent(&config.GraphQLPath, c.GraphQLPath)
	setIfPresent(&config.MetricsPath, c.MetricsPath)
	setIfPresent(&config.LogLevel, c.LogLevel)
	setIfPresent(&config.MaxQueryDepth, c.MaxQueryDepth)
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
}

func setIfPresent[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
