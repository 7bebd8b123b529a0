package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/redhat-appstudio/my-microservice/internal/config"
	"github.com/redhat-appstudio/my-microservice/internal/server"
	"github.com/redhat-appstudio/my-microservice/pkg/logger"
)

// main is the entry point for the microservice. It performs the following
// operations:
//  1. Parses and validates command-line flags
//  2. Loads environment variables from .env file if present
//  3. Loads configuration from YAML, environment and flags
//  4. Builds the HTTP server and serves until SIGINT or SIGTERM
//  5. Drains in-flight requests and exits 0
func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags, err := parseFlags(args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if flags.Help {
		flags.showHelp(os.Stdout)
		return 0
	}
	if flags.Version {
		flags.showVersion(os.Stdout)
		return 0
	}
	if err := flags.validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.LoadWithFlags(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	srv, err := server.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Infof("Starting on port %s", cfg.Port)
	logger.Infof("Environment: %s", cfg.Environment)
	logger.Infof("Log level: %s", cfg.LogLevel)
	if cfg.Storage.Redis.Enabled {
		logger.Infof("Redis user journal: enabled (%s)", cfg.Storage.Redis.Address)
	} else {
		logger.Infof("Redis user journal: disabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Errorf("Server stopped with error: %v", err)
		return 1
	}
	return 0
}
