package main

import (
	"context"
	"fmt"
	"idmatch/internal/config"
	"idmatch/internal/match"
	"idmatch/pkg/dataset"
	"idmatch/pkg/domain"

	"github.com/spf13/cobra"
)

// scoreCommand constructs the 'score' subcommand that evaluates a single
// extracted identity against the reference dataset and prints the match
// result as JSON.
func scoreCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Scores a single identity against the reference dataset",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			referencePath, _ := cmd.Flags().GetString("reference")
			name, _ := cmd.Flags().GetString("name")
			identifier, _ := cmd.Flags().GetString("identifier")
			address, _ := cmd.Flags().GetString("address")

			records := loadReference(ctx, referencePath)

			matcher := match.New(match.NewOptions(cfg))
			result := matcher.Evaluate(domain.ExtractedIdentity{
				Name:       name,
				Identifier: identifier,
				Address:    address,
			}, records)

			fmt.Println(string(dataset.EncodeMatchResult(result))) //nolint: forbidigo
		},
	}

	cmd.Flags().String("reference", "", "Reference dataset CSV path")
	cmd.Flags().String("name", "", "Extracted name")
	cmd.Flags().String("identifier", "", "Extracted identifier")
	cmd.Flags().String("address", "", "Extracted address")
	_ = cmd.MarkFlagRequired("reference")
	_ = cmd.MarkFlagRequired("identifier")

	return cmd
}
