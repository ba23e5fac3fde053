package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jonathan/hiring-coordinator/internal/config"
	"github.com/jonathan/hiring-coordinator/internal/observability"
	"github.com/jonathan/hiring-coordinator/internal/questions"
)

var questionCount int

var questionsCmd = &cobra.Command{
	Use:   "questions <interview_type>",
	Short: "Generate interview questions for an interview type",
	Long:  `Generate a question set for an interview type (technical, behavioral, hr, ...). Uses the Gemini model when GEMINI_API_KEY is set, curated question banks otherwise.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runQuestions,
}

func init() {
	questionsCmd.Flags().IntVar(&questionCount, "count", 0, "Number of questions (default 5)")
	rootCmd.AddCommand(questionsCmd)
}

func runQuestions(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return printQuestions(cmd.Context(), cmd.OutOrStdout(), cfg, args[0], questionCount)
}

func printQuestions(ctx context.Context, out io.Writer, cfg *config.App, interviewType string, count int) error {
	var gen questions.Generator = questions.NewStaticGenerator()
	if cfg.GeminiAPIKey != "" {
		g, err := questions.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return fmt.Errorf("failed to create question generator: %w", err)
		}
		defer g.Close()
		gen = g
	}

	qs, err := gen.Generate(ctx, questions.Request{
		InterviewType: interviewType,
		Count:         count,
	})
	if err != nil {
		return fmt.Errorf("failed to generate questions: %w", err)
	}

	observability.NewPrinter(out).PrintQuestions(interviewType, qs)
	return nil
}
