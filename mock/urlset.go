package mock

import persona "github.com/kvrancic/persona-mcp"

var _ persona.URLSet = (*URLSet)(nil)

// URLSet is a mock implementation of persona.URLSet.
type URLSet struct {
	AddFn      func(url string) bool
	ContainsFn func(url string) bool
}

func (s *URLSet) Add(url string) bool {
	return s.AddFn(url)
}

func (s *URLSet) Contains(url string) bool {
	return s.ContainsFn(url)
}
