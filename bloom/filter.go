// Package bloom provides URL deduplication using Bloom filters.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"
	persona "github.com/kvrancic/persona-mcp"
)

// Ensure Set implements persona.URLSet at compile time.
var _ persona.URLSet = (*Set)(nil)

// Set tracks accepted URLs with a Bloom filter. False positives are
// possible, so a fresh URL may rarely be reported as already present;
// false negatives are not, so an accepted URL is never accepted twice.
// Not safe for concurrent use.
type Set struct {
	f *bloom.BloomFilter
}

// NewSet creates a Set sized for n expected URLs with the given false
// positive rate.
func NewSet(n uint, fpRate float64) *Set {
	return &Set{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records the URL. Returns false if it was already present.
func (s *Set) Add(url string) bool {
	return !s.f.TestAndAddString(url)
}

// Contains returns true if the URL might have been added.
func (s *Set) Contains(url string) bool {
	return s.f.TestString(url)
}

// EstimatedCount returns the approximate number of URLs in the set.
func (s *Set) EstimatedCount() uint {
	return uint(s.f.ApproximatedSize())
}
