package mock

import persona "github.com/kvrancic/persona-mcp"

var _ persona.BlockedDetector = (*BlockedDetector)(nil)

// BlockedDetector is a mock implementation of persona.BlockedDetector.
type BlockedDetector struct {
	DetectFn func(html string) (bool, string)
}

func (d *BlockedDetector) Detect(html string) (bool, string) {
	return d.DetectFn(html)
}
