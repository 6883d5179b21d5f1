package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/course-recommender/internal/catalog"
	"github.com/spf13/cobra"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write the built-in sample catalog as CSV",
	RunE:  runSample,
}

var (
	sampleOut   string
	sampleForce bool
)

func init() {
	sampleCmd.Flags().StringVarP(&sampleOut, "out", "o", "", "Output path (default: the configured catalog path)")
	sampleCmd.Flags().BoolVar(&sampleForce, "force", false, "Overwrite an existing file")
	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path := sampleOut
	if path == "" {
		path = cfg.CatalogPath
	}

	if _, err := os.Stat(path); err == nil && !sampleForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}

	if err := catalog.WriteSampleFile(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d courses to %s\n", len(catalog.SampleCourses()), path)
	return nil
}
