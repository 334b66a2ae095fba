package dataset_test

import (
	"idmatch/pkg/dataset"
	"idmatch/pkg/domain"
	"idmatch/pkg/serrors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadReferenceRecords(t *testing.T) {
	input := "name,identifier,address\n" +
		"Ravi Kumar,1234 5678 9012,\"12, MG Road, Pune 411001\"\n" +
		"Anita Desai,987654321098,7 Green Villa Baner\n"

	records, err := dataset.LoadReferenceRecords(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, []domain.ReferenceRecord{
		{Identifier: "1234 5678 9012", Name: "Ravi Kumar", Address: "12, MG Road, Pune 411001"},
		{Identifier: "987654321098", Name: "Anita Desai", Address: "7 Green Villa Baner"},
	}, records)
}

func TestLoadReferenceRecordsHeaderVariants(t *testing.T) {
	t.Run("uid alias and reordered columns", func(t *testing.T) {
		input := "uid,address,name\n111122223333,12 MG Road,Ravi Kumar\n"

		records, err := dataset.LoadReferenceRecords(strings.NewReader(input))
		require.NoError(t, err)
		require.Equal(t, []domain.ReferenceRecord{
			{Identifier: "111122223333", Name: "Ravi Kumar", Address: "12 MG Road"},
		}, records)
	})

	t.Run("case insensitive header with BOM", func(t *testing.T) {
		input := "\uFEFFName,UID,Address\nRavi Kumar,111122223333,12 MG Road\n"

		records, err := dataset.LoadReferenceRecords(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, records, 1)
		require.Equal(t, "Ravi Kumar", records[0].Name)
	})

	t.Run("extra columns ignored", func(t *testing.T) {
		input := "name,identifier,address,enrolled\nRavi Kumar,111122223333,12 MG Road,2019-04-01\n"

		records, err := dataset.LoadReferenceRecords(strings.NewReader(input))
		require.NoError(t, err)
		require.Equal(t, "12 MG Road", records[0].Address)
	})

	t.Run("header only is an empty dataset", func(t *testing.T) {
		records, err := dataset.LoadReferenceRecords(strings.NewReader("name,identifier,address\n"))
		require.NoError(t, err)
		require.Empty(t, records)
	})
}

func TestLoadReferenceRecordsErrors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := dataset.LoadReferenceRecords(strings.NewReader(""))
		require.ErrorIs(t, err, serrors.ErrMalformedDataset)
	})

	t.Run("missing columns", func(t *testing.T) {
		_, err := dataset.LoadReferenceRecords(strings.NewReader("name,address\nRavi,12 MG Road\n"))
		require.ErrorIs(t, err, serrors.ErrMalformedDataset)
		require.ErrorContains(t, err, "identifier")
	})

	t.Run("ragged row", func(t *testing.T) {
		input := "name,identifier,address\nRavi Kumar,111122223333\n"

		_, err := dataset.LoadReferenceRecords(strings.NewReader(input))
		require.ErrorIs(t, err, serrors.ErrMalformedDataset)
		require.ErrorContains(t, err, "row 2")
	})
}
