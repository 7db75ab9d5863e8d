package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glbatch/buko-service/internal/buko"
)

// buildFile encodes a handful of distinct configurations into file lines.
func buildFile(t *testing.T, codes ...string) []string {
	t.Helper()
	svc := NewBukoService(nil)

	var lines []string
	for _, code := range codes {
		res, err := svc.Process(context.Background(), ProcessRequest{
			Code:           code,
			Lines:          lines,
			AllowDuplicate: true,
		})
		require.NoError(t, err)
		lines = res.UpdatedLines
	}
	return lines
}

func testConfigurations(t *testing.T) []buko.Configuration {
	t.Helper()
	lines := buildFile(t,
		"01BC/S/ /UM/E /  /UM/ /K/  / / /AM34   /LEIAUFGL",
		"01BC/V/ /GU/F /  /GU/ / /  / / /AM77   /BUBASIS",
		"01BC/K/G/UM/E /  /UM/ / /  / / /AM12   /",
	)
	return LoadConfigurations(lines)
}

func TestLoadAndFilter(t *testing.T) {
	configs := testConfigurations(t)
	require.Len(t, configs, 3)

	t.Run("empty query keeps everything", func(t *testing.T) {
		assert.Len(t, Filter(configs, ConfigurationQuery{}), 3)
	})

	t.Run("search is case-insensitive and spans all columns", func(t *testing.T) {
		byType := Filter(configs, ConfigurationQuery{Search: "payment"})
		require.Len(t, byType, 1)
		assert.Equal(t, "PAYMENT", byType[0].Classification.BEType)

		byLart := Filter(configs, ConfigurationQuery{Search: "am12"})
		require.Len(t, byLart, 1)
		assert.Equal(t, "AM12", byLart[0].Record.Lart)

		assert.Empty(t, Filter(configs, ConfigurationQuery{Search: "nothing here"}))
	})

	t.Run("exact filters", func(t *testing.T) {
		claims := Filter(configs, ConfigurationQuery{BEType: "CLAIM"})
		require.Len(t, claims, 1)
		assert.Equal(t, 1, claims[0].Line)

		bubasis := Filter(configs, ConfigurationQuery{Source: "BUBASIS"})
		require.Len(t, bubasis, 1)
		assert.Equal(t, "AM77", bubasis[0].Record.Lart)

		um := Filter(configs, ConfigurationQuery{Buchart: "UM"})
		assert.Len(t, um, 2)

		none := Filter(configs, ConfigurationQuery{BEType: "CLAIM", Buchart: "GU"})
		assert.Empty(t, none)
	})

	t.Run("filters combine with search", func(t *testing.T) {
		got := Filter(configs, ConfigurationQuery{Search: "ERROR", BEType: "REBOOKING"})
		require.Len(t, got, 1)
		assert.Equal(t, "REBOOKING", got[0].Classification.BEType)
	})
}

func TestSummarize(t *testing.T) {
	configs := testConfigurations(t)

	s := Summarize(configs)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 3, s.UniqueBETypes)
	assert.Equal(t, 2, s.UniqueSources, "blank SOURCE is not counted")
	assert.Equal(t, map[string]int{"CLAIM": 1, "PAYMENT": 1, "REBOOKING": 1}, s.PerBEType)

	empty := Summarize(nil)
	assert.Zero(t, empty.Total)
	assert.Empty(t, empty.PerBEType)
}

func TestFilterValues(t *testing.T) {
	configs := testConfigurations(t)

	sources := FilterValues(configs, func(c buko.Configuration) string { return c.Record.Source })
	assert.Equal(t, []string{"BUBASIS", "LEIAUFGL"}, sources)

	bucharts := FilterValues(configs, func(c buko.Configuration) string { return c.Record.Buchart })
	assert.Equal(t, []string{"GU", "UM"}, bucharts)
}
