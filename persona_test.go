package persona_test

import (
	"fmt"
	"testing"

	persona "github.com/kvrancic/persona-mcp"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := persona.Errorf(persona.ENOTFOUND, "persona %q not found", "test")

	assert.Equal(t, persona.ENOTFOUND, persona.ErrorCode(err))
	assert.Equal(t, "persona \"test\" not found", persona.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, persona.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, persona.EINTERNAL, persona.ErrorCode(fmt.Errorf("boom")))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("storing page: %w", persona.Errorf(persona.ESTORAGE, "disk full"))

	assert.Equal(t, persona.ESTORAGE, persona.ErrorCode(err))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, persona.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "boom", persona.ErrorMessage(fmt.Errorf("boom")))
}

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: "Ada Lovelace", want: "ada_lovelace"},
		{name: "extra whitespace", in: "  Ada   Lovelace  ", want: "ada_lovelace"},
		{name: "already normalized", in: "ada_lovelace", want: "ada_lovelace"},
		{name: "tabs and newlines", in: "Ada\tLovelace\n", want: "ada_lovelace"},
		{name: "single word", in: "Rumi", want: "rumi"},
		{name: "empty", in: "", want: ""},
		{name: "only whitespace", in: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, persona.NormalizeName(tt.in))
		})
	}
}

func TestHashContent(t *testing.T) {
	t.Parallel()

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, persona.HashContent("some text"), persona.HashContent("some text"))
	})

	t.Run("ignores surrounding whitespace", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, persona.HashContent("some text"), persona.HashContent("\n  some text  \n"))
	})

	t.Run("distinct text distinct hash", func(t *testing.T) {
		t.Parallel()
		assert.NotEqual(t, persona.HashContent("some text"), persona.HashContent("other text"))
	})

	t.Run("sixteen hex characters", func(t *testing.T) {
		t.Parallel()
		hash := persona.HashContent("some text")
		assert.Len(t, hash, 16)
		assert.Regexp(t, "^[0-9a-f]{16}$", hash)
	})
}

func TestChunkValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		c := &persona.Chunk{SourceURL: "https://example.com", Text: "body"}
		assert.NoError(t, c.Validate())
	})

	t.Run("missing source URL", func(t *testing.T) {
		t.Parallel()
		c := &persona.Chunk{Text: "body"}
		assert.Equal(t, persona.EINVALID, persona.ErrorCode(c.Validate()))
	})

	t.Run("missing text", func(t *testing.T) {
		t.Parallel()
		c := &persona.Chunk{SourceURL: "https://example.com"}
		assert.Equal(t, persona.EINVALID, persona.ErrorCode(c.Validate()))
	})
}

func TestSession(t *testing.T) {
	t.Parallel()

	t.Run("empty by default", func(t *testing.T) {
		t.Parallel()
		var s persona.Session
		name, ok := s.Active()
		assert.False(t, ok)
		assert.Empty(t, name)
	})

	t.Run("set active normalizes", func(t *testing.T) {
		t.Parallel()
		var s persona.Session
		s.SetActive("Ada  Lovelace")
		name, ok := s.Active()
		assert.True(t, ok)
		assert.Equal(t, "ada_lovelace", name)
	})

	t.Run("switch replaces", func(t *testing.T) {
		t.Parallel()
		var s persona.Session
		s.SetActive("Ada Lovelace")
		s.SetActive("Alan Turing")
		name, _ := s.Active()
		assert.Equal(t, "alan_turing", name)
	})

	t.Run("clear", func(t *testing.T) {
		t.Parallel()
		var s persona.Session
		s.SetActive("Ada Lovelace")
		s.Clear()
		_, ok := s.Active()
		assert.False(t, ok)
	})
}

func TestFormatChunks(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, persona.FormatChunks(nil))
	})

	t.Run("headers and separation", func(t *testing.T) {
		t.Parallel()
		chunks := []*persona.Chunk{
			{SourceURL: "https://a.example", Text: "first"},
			{SourceURL: "https://b.example", Text: "second"},
		}
		got := persona.FormatChunks(chunks)
		assert.Equal(t, "## Source: https://a.example\nfirst\n\n## Source: https://b.example\nsecond", got)
	})
}

func TestPersonQueries(t *testing.T) {
	t.Parallel()

	queries := persona.PersonQueries("Ada Lovelace")
	assert.Equal(t, []string{
		`"Ada Lovelace" interview`,
		`"Ada Lovelace" quotes`,
		`"Ada Lovelace" blog`,
		`"Ada Lovelace" opinions`,
	}, queries)
}
