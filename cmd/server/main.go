// Package main - Entry point for the chiller-payback API server
package main

import (
	"flag"
	"fmt"
	"os"

	"chiller-payback/api"
	"chiller-payback/core/engine"
	"chiller-payback/internal/config"
	"chiller-payback/internal/logging"
)

const version = "0.1.0"

func main() {
	addr := flag.String("addr", ":8080", "Server address")
	cfgFile := flag.String("config", "", "Config file path")
	flag.Parse()

	if *cfgFile != "" {
		cfg, err := config.Load(*cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}

	apiServer := api.NewServer(version, engine.New(cfg.Bins))

	logging.Sugar.Infow("starting chiller-payback server",
		"version", version,
		"addr", *addr,
	)

	if err := apiServer.ListenAndServe(*addr); err != nil {
		logging.Sugar.Fatalw("server stopped", "error", err)
	}
}
