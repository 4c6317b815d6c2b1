// Command thevoices is an MCP server exposing role-based AI personas.
//
// It serves two tools over stdio: list_available_models, which reports the
// models whose provider API keys are present in the environment, and
// ask_the_voice, which answers a task through a persona-shaped completion
// call. Stdout carries the MCP transport; diagnostics go to stderr.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/germanamz/thevoices/pkg/catalog"
	"github.com/germanamz/thevoices/pkg/config"
	"github.com/germanamz/thevoices/pkg/providers/router"
	"github.com/germanamz/thevoices/pkg/tools/mcpserver"
	"github.com/germanamz/thevoices/pkg/voices"
	"github.com/joho/godotenv"
)

const version = "0.2.0"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: thevoices [flags]\n\nServe the voices MCP server over stdio.\n\nFlags:\n")
		flag.PrintDefaults()
	}

	envFile := flag.String("env", ".env", "path to .env file (ignored if missing)")
	catalogPath := flag.String("catalog", "", "path to a YAML provider catalog overriding the built-in one")
	defaultModel := flag.String("model", "", "default model as provider/model (overrides "+config.DefaultModelVar+")")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return
	}

	if err := loadDotEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(*catalogPath, *defaultModel); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadDotEnv loads environment variables from path. If the file does not exist
// it is silently ignored so that .env files remain optional.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// run builds the service from the catalog and an environment snapshot and
// serves MCP requests on stdin/stdout until the context is cancelled.
func run(catalogPath, defaultModel string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	entries := catalog.Default()
	if catalogPath != "" {
		var err error
		entries, err = catalog.Load(catalogPath)
		if err != nil {
			return err
		}
	}

	cfg := config.New(entries, os.Getenv)
	if defaultModel != "" {
		cfg.DefaultModel = defaultModel
	}

	svc := voices.New(cfg, entries, router.New(entries, cfg.Credential, http.DefaultClient))

	srv := mcpserver.New("thevoices", version)
	srv.Register(svc.Tools()...)

	return srv.Serve(ctx, os.Stdin, os.Stdout)
}
