package main

import (
	"flag"
	"fmt"
	"io"
	"runtime"
	"slices"
	"strings"

	"github.com/redhat-appstudio/my-microservice/internal/config"
	"github.com/redhat-appstudio/my-microservice/internal/version"
)

// Help and version text
const (
	AppName        = "my-microservice"
	AppDescription = "A minimal Go Fiber microservice with health, status and users endpoints"
)

// ServerFlags holds the command-line flags. Empty values leave the
// setting to the environment, the YAML file or the built-in default.
type ServerFlags struct {
	// HTTP server port number
	Port string
	// Deployment environment label
	Environment string
	// Logging verbosity level (debug/info/warn/error)
	LogLevel string
	// Path of the YAML configuration file
	ConfigFile string

	// Show help information and exit
	Help bool
	// Show version information and exit
	Version bool
}

// parseFlags parses args (without the program name) into ServerFlags.
//
// Configuration flags default to the empty string so that an unset flag
// never shadows PORT, ENVIRONMENT or LOG_LEVEL from the environment.
func parseFlags(args []string, output io.Writer) (*ServerFlags, error) {
	f := &ServerFlags{}

	fs := flag.NewFlagSet(AppName, flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&f.Port, "port", "",
		fmt.Sprintf("Server port number (default: %s)", config.DefaultPort))
	fs.StringVar(&f.Environment, "env", "",
		fmt.Sprintf("Deployment environment label, e.g. %s or %s (default: %s)",
			config.ValidEnvironmentDevelopment, config.ValidEnvironmentProduction, config.DefaultEnvironment))
	fs.StringVar(&f.LogLevel, "log-level", "",
		fmt.Sprintf("Log level: %s (default: %s)",
			strings.Join(config.ValidLogLevels, ", "), config.DefaultLogLevel))
	fs.StringVar(&f.ConfigFile, "config", "",
		fmt.Sprintf("Path to the YAML configuration file (default: %s)", config.DefaultConfigFile))

	fs.BoolVar(&f.Help, "help", false, "Show help information and exit")
	fs.BoolVar(&f.Help, "h", false, "Show help information and exit (short form)")
	fs.BoolVar(&f.Version, "version", false, "Show version information and exit")
	fs.BoolVar(&f.Version, "v", false, "Show version information and exit (short form)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// showHelp prints usage, flags and examples.
func (f *ServerFlags) showHelp(w io.Writer) {
	fmt.Fprintf(w, "%s - %s\n", AppName, AppDescription)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "USAGE:")
	fmt.Fprintln(w, "  my-microservice [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "FLAGS:")
	fmt.Fprintln(w, "    -port string")
	fmt.Fprintf(w, "          Server port (env: PORT, default: %s)\n", config.DefaultPort)
	fmt.Fprintln(w, "    -env string")
	fmt.Fprintf(w, "          Environment label (env: ENVIRONMENT or NODE_ENV, default: %s)\n", config.DefaultEnvironment)
	fmt.Fprintln(w, "    -log-level string")
	fmt.Fprintf(w, "          Log level: %s (env: LOG_LEVEL, default: %s)\n",
		strings.Join(config.ValidLogLevels, ", "), config.DefaultLogLevel)
	fmt.Fprintln(w, "    -config string")
	fmt.Fprintf(w, "          YAML configuration file (env: CONFIG_FILE, default: %s)\n", config.DefaultConfigFile)
	fmt.Fprintln(w, "    -help, -h")
	fmt.Fprintln(w, "          Show this help information")
	fmt.Fprintln(w, "    -version, -v")
	fmt.Fprintln(w, "          Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Flags override environment variables, which override the YAML file.")
	fmt.Fprintln(w, "  A .env file in the working directory is loaded when present.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "EXAMPLES:")
	fmt.Fprintln(w, "  # Start with default settings")
	fmt.Fprintln(w, "  my-microservice")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  # Start in production mode on a custom port")
	fmt.Fprintln(w, "  my-microservice -env production -port 8080")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  # Enable the Redis journal and metrics through the environment")
	fmt.Fprintln(w, "  REDIS_ENABLED=true REDIS_HOST=localhost METRICS_ENABLED=true my-microservice")
}

// showVersion prints version and build information.
func (f *ServerFlags) showVersion(w io.Writer) {
	fmt.Fprintf(w, "%s %s\n", AppName, version.GetVersion())
	fmt.Fprintf(w, "Build info: %s\n", version.GetBuildInfo())
	fmt.Fprintf(w, "Go version: %s\n", runtime.Version())
}

// validate checks the flags that were explicitly set. The environment
// label is free-form.
func (f *ServerFlags) validate() error {
	if f.LogLevel != "" && !slices.Contains(config.ValidLogLevels, f.LogLevel) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)",
			f.LogLevel, strings.Join(config.ValidLogLevels, ", "))
	}
	return nil
}

// Interface methods for config.Flags.

// GetPort returns the configured server port number.
func (f *ServerFlags) GetPort() string {
	return f.Port
}

// GetEnvironment returns the configured deployment environment.
func (f *ServerFlags) GetEnvironment() string {
	return f.Environment
}

// GetLogLevel returns the configured logging verbosity level.
func (f *ServerFlags) GetLogLevel() string {
	return f.LogLevel
}

// GetConfigFile returns the configured YAML file path.
func (f *ServerFlags) GetConfigFile() string {
	return f.ConfigFile
}
