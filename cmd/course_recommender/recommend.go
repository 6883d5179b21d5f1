package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/course-recommender/internal/observability"
	"github.com/jonathan/course-recommender/internal/ranking"
	"github.com/jonathan/course-recommender/internal/types"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Print recommendations for a set of preferences",
	Long:  "Load the catalog once, rank it against the given preferences and print the response JSON to stdout.",
	RunE:  runRecommend,
}

var (
	recCategory    string
	recSkillLevel  string
	recCourseType  string
	recDuration    string
	recDescription string
	recLimit       int
	recFormat      string
)

func init() {
	recommendCmd.Flags().StringVar(&recCategory, "category", "", "Course category, e.g. AI (exact match)")
	recommendCmd.Flags().StringVar(&recSkillLevel, "skill-level", "", "Beginner, Intermediate, Advanced or Any")
	recommendCmd.Flags().StringVar(&recCourseType, "type", "", "Free, Paid or Both")
	recommendCmd.Flags().StringVar(&recDuration, "duration", "", "Short Term, Long Term or Any")
	recommendCmd.Flags().StringVarP(&recDescription, "description", "d", "", "Free-text description of what you want to learn")
	recommendCmd.Flags().IntVarP(&recLimit, "limit", "n", 0, "Maximum number of recommendations (default from config)")
	recommendCmd.Flags().StringVar(&recFormat, "format", "json", "Output format: json or text")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	req := types.RecommendationRequest{
		Preferences: types.Preferences{
			Category:         recCategory,
			SkillLevel:       recSkillLevel,
			CourseType:       recCourseType,
			TimeAvailability: recDuration,
			Description:      recDescription,
		},
		Limit: recLimit,
	}
	if recFormat != "json" && recFormat != "text" {
		return fmt.Errorf("unknown --format %q (want json or text)", recFormat)
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid preferences: %w", err)
	}
	limit := req.Limit
	if limit <= 0 {
		limit = cfg.DefaultLimit
	}

	ctx := context.Background()
	database := connectOptional(ctx, cfg.DatabaseURL)
	defer database.Close()
	holder := newHolder(ctx, cfg, database)

	snap := holder.Current()
	resp := types.RecommendationsResponse{Recommendations: []types.Recommendation{}}
	recs, _, err := ranking.Recommend(snap, req.Preferences, limit)
	if err != nil {
		resp.Error = err.Error()
	} else {
		resp.Recommendations = recs
		resp.TotalCount = len(recs)
	}

	if recFormat == "text" {
		printer := observability.NewPrinter(cmd.OutOrStdout())
		printer.PrintCatalog(snap.Len(), snap.Source, snap.Ready())
		printer.PrintRecommendations(resp)
		return nil
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		return fmt.Errorf("failed to write recommendations: %w", err)
	}
	return nil
}
