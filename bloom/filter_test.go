package bloom_test

import (
	"fmt"
	"testing"

	"github.com/kvrancic/persona-mcp/bloom"
	"github.com/stretchr/testify/assert"
)

func TestSet_AddAndContains(t *testing.T) {
	t.Parallel()

	s := bloom.NewSet(1000, 0.01)

	// URL not yet added should not be contained
	assert.False(t, s.Contains("https://example.com/page1"))

	// First add reports the URL as new
	assert.True(t, s.Add("https://example.com/page1"))
	assert.True(t, s.Contains("https://example.com/page1"))

	// Second add reports it as already present
	assert.False(t, s.Add("https://example.com/page1"))

	// Different URL should still be absent
	assert.False(t, s.Contains("https://example.com/page2"))
}

func TestSet_EstimatedCount(t *testing.T) {
	t.Parallel()

	s := bloom.NewSet(1000, 0.01)

	// Empty set should have count near 0
	assert.Equal(t, uint(0), s.EstimatedCount())

	s.Add("https://example.com/page1")
	s.Add("https://example.com/page2")
	s.Add("https://example.com/page3")

	// Estimated count should be approximately 3
	count := s.EstimatedCount()
	assert.True(t, count >= 2 && count <= 4, "expected count near 3, got %d", count)
}

func TestSet_AddIsIdempotent(t *testing.T) {
	t.Parallel()

	s := bloom.NewSet(1000, 0.01)

	url := "https://example.com/page1"

	s.Add(url)
	countAfterFirst := s.EstimatedCount()

	// Re-adding the same URL should not change the set
	s.Add(url)
	s.Add(url)
	s.Add(url)

	assert.Equal(t, countAfterFirst, s.EstimatedCount())
	assert.True(t, s.Contains(url))
}

func TestSet_FalsePositiveRate(t *testing.T) {
	t.Parallel()

	const (
		numItems   = 10000
		fpRate     = 0.01
		testProbes = 10000
	)

	s := bloom.NewSet(numItems, fpRate)

	for i := range numItems {
		s.Add(fmt.Sprintf("https://example.com/added/%d", i))
	}

	// Probe with URLs that were never added
	falsePositives := 0
	for i := range testProbes {
		url := fmt.Sprintf("https://example.com/notadded/%d", i)
		if s.Contains(url) {
			falsePositives++
		}
	}

	// Allow generous headroom over the configured rate
	observed := float64(falsePositives) / float64(testProbes)
	assert.Less(t, observed, fpRate*3, "false positive rate too high: %f", observed)
}
