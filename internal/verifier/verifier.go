// Package verifier coordinates identity verification: it indexes the
// reference dataset, runs the matching engine over extracted identities and
// assembles batch reports.
package verifier

import (
	"context"
	"idmatch/internal/config"
	"idmatch/internal/match"
	"idmatch/internal/verifier/metrics"
	"idmatch/pkg/domain"
	"idmatch/pkg/logger"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers bounds batch concurrency when none is configured.
const DefaultWorkers = 8

// Score buckets used in summaries and metrics labels.
const (
	bucketFull    = "full"
	bucketPartial = "partial"
	bucketNoMatch = "no_match"
)

// Options configure batch verification.
// These settings are typically derived from application configuration.
type Options struct {
	// Workers is the maximum number of identities verified concurrently
	// within one batch. Values below one fall back to DefaultWorkers.
	Workers int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{Workers: cfg.Verify.Workers}
}

// Service verifies extracted identities against a reference dataset. It is
// immutable after construction and safe for concurrent use.
type Service struct {
	matcher *match.Matcher
	index   map[string]domain.ReferenceRecord
	options Options
	metrics *metrics.Metrics
}

// New builds a Service over the given records. Records are indexed by
// whitespace-stripped identifier; on duplicate identifiers the earliest
// record wins, matching the engine's linear resolution order. A nil metrics
// disables instrumentation.
func New(matcher *match.Matcher, records []domain.ReferenceRecord, m *metrics.Metrics, options Options) *Service {
	if options.Workers < 1 {
		options.Workers = DefaultWorkers
	}

	index := make(map[string]domain.ReferenceRecord, len(records))
	for _, record := range records {
		id := match.NormalizeIdentifier(record.Identifier)
		if id == "" {
			continue
		}
		if _, exists := index[id]; exists {
			continue
		}
		index[id] = record
	}

	return &Service{matcher: matcher, index: index, options: options, metrics: m}
}

// Size returns the number of distinct identifiers in the reference index.
func (s *Service) Size() int { return len(s.index) }

// VerifyOne evaluates a single extracted identity against the reference
// index. An identity that resolves to no record yields the zero result
// rather than an error.
func (s *Service) VerifyOne(ctx context.Context, extracted domain.ExtractedIdentity) domain.MatchResult {
	start := time.Now()

	var result domain.MatchResult
	if record, ok := s.index[match.NormalizeIdentifier(extracted.Identifier)]; ok {
		result = s.matcher.EvaluateRecord(record, extracted)
	}

	s.metrics.ObserveVerification(scoreBucket(result.Score), result.ResolverHit, time.Since(start))
	logger.Debug(ctx, "identity verified",
		zap.String("identifier", match.NormalizeIdentifier(extracted.Identifier)),
		zap.Bool("resolverHit", result.ResolverHit),
		zap.Bool("nameMatched", result.NameMatched),
		zap.Bool("addressMatched", result.AddressMatched),
		zap.Float64("score", result.Score))

	return result
}

// VerifyBatch evaluates identities concurrently and assembles a report.
// Results keep input order regardless of scheduling. The batch stops early
// only when ctx is canceled.
func (s *Service) VerifyBatch(ctx context.Context, identities []domain.ExtractedIdentity) (domain.BatchReport, error) {
	batchID := domain.BatchID(uuid.New())
	ctx = logger.WithFields(ctx, zap.String("batchId", batchID.String()))

	results := make([]domain.VerificationResult, len(identities))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.options.Workers)
	for i, identity := range identities {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return errors.Wrap(err, "batch canceled")
			}

			results[i] = domain.VerificationResult{
				BatchID:  batchID,
				Identity: identity,
				Result:   s.VerifyOne(gctx, identity),
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.BatchReport{}, errors.Wrap(err, "could not verify batch")
	}

	report := domain.BatchReport{BatchID: batchID, Results: results, Summary: summarize(results)}
	logger.Info(ctx, "batch verified",
		zap.Int("total", report.Summary.Total),
		zap.Int("full", report.Summary.Full),
		zap.Int("partial", report.Summary.Partial),
		zap.Int("noMatch", report.Summary.NoMatch))

	return report, nil
}

// summarize buckets results by aggregate score.
func summarize(results []domain.VerificationResult) domain.BatchSummary {
	summary := domain.BatchSummary{Total: len(results)}
	for _, r := range results {
		switch scoreBucket(r.Result.Score) {
		case bucketFull:
			summary.Full++
		case bucketPartial:
			summary.Partial++
		default:
			summary.NoMatch++
		}
	}

	return summary
}

// scoreBucket maps an aggregate score to its reporting bucket. The engine
// only produces 0, 50 and 100.
func scoreBucket(score float64) string {
	switch score {
	case 100:
		return bucketFull
	case 50:
		return bucketPartial
	default:
		return bucketNoMatch
	}
}
