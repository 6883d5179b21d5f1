package main

import (
	"context"
	"fmt"

	"github.com/jonathan/course-recommender/internal/catalog"
	"github.com/jonathan/course-recommender/internal/db"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the database tables and optionally seed the courses table",
	Long:  "Create the courses and recommendations tables if missing. With --seed, copy the CSV catalog (or the built-in sample) into an empty courses table.",
	RunE:  runMigrate,
}

var migrateSeed bool

func init() {
	migrateCmd.Flags().BoolVar(&migrateSeed, "seed", false, "Load the CSV catalog into the courses table")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")

	if !migrateSeed {
		return nil
	}

	existing, err := database.ListCourses(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Courses table already has %d rows, skipping seed\n", len(existing))
		return nil
	}

	// Reads the flat file only; a database source would read the empty table.
	courses, source := catalog.NewStore(nil, cfg.CatalogPath).Load(ctx)
	n, err := database.InsertCourses(ctx, courses)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d courses from %s\n", n, source)
	return nil
}
