package main

import (
	"context"
	"fmt"

	"github.com/jonathan/course-recommender/internal/recorder"
	"github.com/jonathan/course-recommender/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the recommendation, health, course count and reload endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT and the config file)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	ctx := context.Background()
	database := connectOptional(ctx, cfg.DatabaseURL)
	holder := newHolder(ctx, cfg, database)

	srvCfg := server.Config{
		Port:         cfg.Port,
		Holder:       holder,
		DefaultLimit: cfg.DefaultLimit,
	}
	if database != nil {
		srvCfg.Closer = database
		if cfg.ShouldPersist() {
			srvCfg.Recorder = recorder.New(database, cfg.PersistTimeout)
		}
	}

	srv, err := server.New(srvCfg)
	if err != nil {
		database.Close()
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
