package main

import (
	"context"
	"idmatch/internal/config"
	"idmatch/internal/match"
	"idmatch/internal/verifier"
	"idmatch/internal/verifier/metrics"
	"idmatch/pkg/dataset"
	"idmatch/pkg/domain"
	"idmatch/pkg/logger"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// verifyCommand constructs the 'verify' subcommand that checks a batch of
// extracted identities against a reference dataset and writes a JSON Lines
// report.
func verifyCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verifies extracted identities against a reference dataset",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			referencePath, _ := cmd.Flags().GetString("reference")
			identitiesPath, _ := cmd.Flags().GetString("identities")
			reportPath, _ := cmd.Flags().GetString("report")

			records := loadReference(ctx, referencePath)
			identities := loadIdentities(ctx, identitiesPath)

			service := verifier.New(match.New(match.NewOptions(cfg)), records, metrics.New(), verifier.NewOptions(cfg))
			logger.Info(ctx, "reference dataset loaded",
				zap.Int("records", len(records)),
				zap.Int("identifiers", service.Size()))

			report, err := service.VerifyBatch(ctx, identities)
			if err != nil {
				logger.Fatal(ctx, "could not verify batch", zap.Error(err))
			}

			writeReport(ctx, reportPath, report)
		},
	}

	cmd.Flags().String("reference", "", "Reference dataset CSV path")
	cmd.Flags().String("identities", "", "Extracted identities JSONL path")
	cmd.Flags().String("report", "-", "Report JSONL path, '-' for stdout")
	_ = cmd.MarkFlagRequired("reference")
	_ = cmd.MarkFlagRequired("identities")

	return cmd
}

func loadReference(ctx context.Context, path string) []domain.ReferenceRecord {
	f, err := os.Open(path)
	if err != nil {
		logger.Fatal(ctx, "could not open reference dataset", zap.Error(err))
	}
	defer func() { _ = f.Close() }()

	records, err := dataset.LoadReferenceRecords(f)
	if err != nil {
		logger.Fatal(ctx, "could not load reference dataset", zap.Error(err))
	}

	return records
}

func loadIdentities(ctx context.Context, path string) []domain.ExtractedIdentity {
	f, err := os.Open(path)
	if err != nil {
		logger.Fatal(ctx, "could not open identities file", zap.Error(err))
	}
	defer func() { _ = f.Close() }()

	identities, err := dataset.ReadExtractedIdentities(f)
	if err != nil {
		logger.Fatal(ctx, "could not read identities", zap.Error(err))
	}

	return identities
}

func writeReport(ctx context.Context, path string, report domain.BatchReport) {
	out := io.Writer(os.Stdout)
	if path != "" && path != "-" {
		f, err := os.Create(path)
		if err != nil {
			logger.Fatal(ctx, "could not create report file", zap.Error(err))
		}
		defer func() {
			if err := f.Close(); err != nil {
				logger.Warn(ctx, "could not close report file", zap.Error(err))
			}
		}()
		out = f
	}

	w := dataset.NewReportWriter(out)
	for _, result := range report.Results {
		if err := w.Write(result); err != nil {
			logger.Fatal(ctx, "could not write report", zap.Error(err))
		}
	}
	if err := w.Flush(); err != nil {
		logger.Fatal(ctx, "could not write report", zap.Error(err))
	}
}
