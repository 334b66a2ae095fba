package verifier_test

import (
	"context"
	"fmt"
	"idmatch/internal/match"
	"idmatch/internal/verifier"
	"idmatch/pkg/domain"
	"idmatch/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, records []domain.ReferenceRecord, options verifier.Options) *verifier.Service {
	t.Helper()
	logger.Setup(logger.DevelopmentEnvironment)

	return verifier.New(match.New(match.DefaultOptions()), records, nil, options)
}

func referenceRecords() []domain.ReferenceRecord {
	return []domain.ReferenceRecord{
		{Identifier: "1234 5678 9012", Name: "Ravi Kumar", Address: "12, MG Road, Pune 411001"},
		{Identifier: "9876 5432 1098", Name: "Anita Desai", Address: "7 Green Villa, Baner, Pune 411045"},
	}
}

func TestVerifyOne(t *testing.T) {
	s := newService(t, referenceRecords(), verifier.Options{})

	t.Run("hit", func(t *testing.T) {
		got := s.VerifyOne(context.Background(), domain.ExtractedIdentity{
			Name:       "R. Kumar",
			Identifier: "123456789012",
			Address:    "12 M.G. Road Pune-411001",
		})
		require.Equal(t, domain.MatchResult{
			ResolverHit:    true,
			NameMatched:    true,
			MatchedRule:    domain.NameRuleAbbreviation,
			AddressMatched: true,
			Score:          100,
		}, got)
	})

	t.Run("miss", func(t *testing.T) {
		got := s.VerifyOne(context.Background(), domain.ExtractedIdentity{
			Name:       "Ravi Kumar",
			Identifier: "0000 0000 0000",
			Address:    "12, MG Road, Pune 411001",
		})
		require.Equal(t, domain.MatchResult{}, got)
	})

	t.Run("empty identifier", func(t *testing.T) {
		got := s.VerifyOne(context.Background(), domain.ExtractedIdentity{Name: "Ravi Kumar"})
		require.Equal(t, domain.MatchResult{}, got)
	})
}

func TestServiceIndexFirstRecordWins(t *testing.T) {
	s := newService(t, []domain.ReferenceRecord{
		{Identifier: "1111 2222 3333", Name: "Ravi Kumar"},
		{Identifier: "111122223333", Name: "Someone Else"},
	}, verifier.Options{})

	require.Equal(t, 1, s.Size(), "duplicate identifiers should collapse to one index entry")

	got := s.VerifyOne(context.Background(), domain.ExtractedIdentity{
		Name:       "Ravi Kumar",
		Identifier: "111122223333",
	})
	require.True(t, got.NameMatched, "the earliest record should have been kept")
	require.Equal(t, domain.NameRuleExact, got.MatchedRule)
}

func TestVerifyBatch(t *testing.T) {
	s := newService(t, referenceRecords(), verifier.Options{Workers: 4})

	// alternate hits and misses so result order is observable
	var identities []domain.ExtractedIdentity
	for i := range 30 {
		if i%2 == 0 {
			identities = append(identities, domain.ExtractedIdentity{
				Name:       "Ravi Kumar",
				Identifier: "1234 5678 9012",
			})
		} else {
			identities = append(identities, domain.ExtractedIdentity{
				Name:       "Ravi Kumar",
				Identifier: fmt.Sprintf("no-such-%d", i),
			})
		}
	}

	report, err := s.VerifyBatch(context.Background(), identities)
	require.NoError(t, err)
	require.Len(t, report.Results, len(identities))

	for i, res := range report.Results {
		require.Equal(t, identities[i], res.Identity, "result %d out of order", i)
		require.Equal(t, report.BatchID, res.BatchID)
		if i%2 == 0 {
			require.Equal(t, float64(50), res.Result.Score)
		} else {
			require.Equal(t, float64(0), res.Result.Score)
		}
	}

	require.Equal(t, domain.BatchSummary{Total: 30, Full: 0, Partial: 15, NoMatch: 15}, report.Summary)
}

func TestVerifyBatchEmpty(t *testing.T) {
	s := newService(t, referenceRecords(), verifier.Options{})

	report, err := s.VerifyBatch(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, report.Results)
	require.Equal(t, domain.BatchSummary{}, report.Summary)
}

func TestVerifyBatchDistinctIDs(t *testing.T) {
	s := newService(t, referenceRecords(), verifier.Options{})

	first, err := s.VerifyBatch(context.Background(), referenceIdentities(1))
	require.NoError(t, err)
	second, err := s.VerifyBatch(context.Background(), referenceIdentities(1))
	require.NoError(t, err)
	require.NotEqual(t, first.BatchID, second.BatchID)
}

func TestVerifyBatchCanceled(t *testing.T) {
	s := newService(t, referenceRecords(), verifier.Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.VerifyBatch(ctx, referenceIdentities(3))
	require.ErrorIs(t, err, context.Canceled)
}

func referenceIdentities(n int) []domain.ExtractedIdentity {
	identities := make([]domain.ExtractedIdentity, n)
	for i := range identities {
		identities[i] = domain.ExtractedIdentity{Name: "Ravi Kumar", Identifier: "1234 5678 9012"}
	}

	return identities
}
