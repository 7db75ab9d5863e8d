package buko

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparisonKey(t *testing.T) {
	r := validRecord()

	key := ComparisonKey(r)
	assert.Equal(t, "01BCS UME   UM K    AM34   LEIAUFGL", key)

	// Key survives an encode/decode round trip.
	_, decoded, ok := DecodeLine(EncodeLine(Classify(r.KontobezSoll, r.KontobezHaben), r))
	require.True(t, ok)
	assert.Equal(t, key, ComparisonKey(&decoded))
}

func TestFindDuplicates(t *testing.T) {
	r := validRecord()
	line := EncodeLine(Classify(r.KontobezSoll, r.KontobezHaben), r)

	other := validRecord()
	other.Lart = "AM99"
	otherLine := EncodeLine(Classify(other.KontobezSoll, other.KontobezHaben), other)

	t.Run("no duplicates in an empty file", func(t *testing.T) {
		assert.Empty(t, FindDuplicates(r, nil))
	})

	t.Run("match reported at 1-based position", func(t *testing.T) {
		assert.Equal(t, []int{1}, FindDuplicates(r, []string{line}))
		assert.Equal(t, []int{2}, FindDuplicates(r, []string{otherLine, line}))
	})

	t.Run("every occurrence is reported in order", func(t *testing.T) {
		assert.Equal(t, []int{1, 3}, FindDuplicates(r, []string{line, otherLine, line}))
	})

	t.Run("classification is excluded from the key", func(t *testing.T) {
		// Same schema fields written under a different (hypothetically
		// forced) classification triple still count as a duplicate.
		forced := EncodeLine(Classification{BEType: "PAYMENT", BEC1: "CONTRACT ERROR", BEC2: "ERROR"}, r)
		assert.Equal(t, []int{1}, FindDuplicates(r, []string{forced}))
	})

	t.Run("short and blank lines are skipped but keep their positions", func(t *testing.T) {
		lines := []string{"", strings.Repeat("X", 10), line}
		assert.Equal(t, []int{3}, FindDuplicates(r, lines))
	})

	t.Run("different schema fields never match", func(t *testing.T) {
		assert.Empty(t, FindDuplicates(other, []string{line}))
	})
}
