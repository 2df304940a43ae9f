package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/gophaccount/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-k int      bcrypt cost
//	-g string   GraphQL route
//	-m string   metrics route
//	-l string   log level
//	-t int      shutdown timeout, seconds
//	-q int      max GraphQL query depth
//
// Args are filtered through flagx.FilterArgs first so -c/-config and
// unknown flags do not break parsing.
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-k", "-g", "-m", "-l", "-t", "-q"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.IntVar(&config.PasswordHashCost, "k", config.PasswordHashCost, "bcrypt cost")
	fs.StringVar(&config.GraphQLPath, "g", config.GraphQLPath, "GraphQL route")
	fs.StringVar(&config.MetricsPath, "m", config.MetricsPath, "metrics route")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	shutdownTimeout := fs.Int("t", int(config.ShutdownTimeout.Seconds()), "shutdown timeout (in seconds)")
	fs.IntVar(&config.MaxQueryDepth, "q", config.MaxQueryDepth, "max GraphQL query depth")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.ShutdownTimeout = time.Duration(*shutdownTimeout) * time.Second
}
