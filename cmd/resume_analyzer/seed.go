package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo job postings into the database",
	Long:  `Seeds the database with a few representative job postings for local development and demos.`,
	RunE:  runSeed,
}

var seedDatabaseURL string

func init() {
	seedCmd.Flags().StringVar(&seedDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	rootCmd.AddCommand(seedCmd)
}

func demoJobs() []*types.JobProfile {
	return []*types.JobProfile{
		{
			Title: "Backend Engineer",
			RawText: "We are looking for a backend engineer with strong Python and SQL " +
				"skills. You will build and operate containerized services on AWS, " +
				"so hands-on Docker and Kubernetes experience is expected.",
			RequiredSkills: types.NewSkillSet("python", "sql", "docker", "kubernetes", "aws"),
			Location:       "Remote",
		},
		{
			Title: "Frontend Developer",
			RawText: "Join our product team to build rich web interfaces with React and " +
				"TypeScript. Solid HTML, CSS, and JavaScript fundamentals are required; " +
				"experience with Next.js is a plus.",
			RequiredSkills: types.NewSkillSet("react", "typescript", "html", "css", "javascript"),
			Location:       "Bengaluru",
		},
		{
			Title: "Data Scientist",
			RawText: "We need a data scientist comfortable with machine learning pipelines " +
				"end to end: Python, Pandas, scikit-learn, and TensorFlow, with SQL for " +
				"analysis and Power BI for reporting.",
			RequiredSkills: types.NewSkillSet("python", "pandas", "scikit-learn", "tensorflow", "sql", "power bi"),
			Location:       "Hybrid",
		},
	}
}

func runSeed(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	databaseURL := seedDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	for _, job := range demoJobs() {
		id, err := database.CreateJob(ctx, job)
		if err != nil {
			return fmt.Errorf("failed to seed job %q: %w", job.Title, err)
		}
		fmt.Printf("seeded job %q as %s\n", job.Title, id)
	}

	return nil
}
