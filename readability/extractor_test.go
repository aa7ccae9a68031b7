package readability_test

import (
	"testing"

	persona "github.com/kvrancic/persona-mcp"
	"github.com/kvrancic/persona-mcp/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements persona.Extractor at compile time.
var _ persona.Extractor = (*readability.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts article content", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Ada Lovelace on Imagination</title></head>
<body>
<nav><a href="/">Home</a><a href="/essays">Essays</a></nav>
<article>
<h1>On Imagination</h1>
<p>Imagination is the discovering faculty, pre-eminently. It is that which
penetrates into the unseen worlds around us, the worlds of science.</p>
<p>It is that which feels and discovers what is, the real which we see not,
which exists not for our senses.</p>
</article>
<footer>Newsletter | Privacy | Terms</footer>
</body>
</html>`

		ext := readability.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "discovering faculty")
		assert.Contains(t, result.ContentHTML, "unseen worlds")
	})

	t.Run("extracts title", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>On Imagination - Collected Essays</title></head>
<body>
<article>
<h1>On Imagination</h1>
<p>A long enough paragraph of body text so the readability heuristics have
something substantive to score and keep in the extracted article.</p>
</article>
</body>
</html>`

		ext := readability.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		ext := readability.NewExtractor()
		_, err := ext.Extract("")

		require.Error(t, err)
		assert.Equal(t, persona.EINVALID, persona.ErrorCode(err))
	})
}
