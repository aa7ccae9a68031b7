// Package mcp exposes the persona system as an MCP tool server. Clients
// build a knowledge base with init_persona, then converse with ask_persona;
// the active persona is per-session state, so concurrent clients on the
// HTTP transport never see each other's persona.
package mcp

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	persona "github.com/kvrancic/persona-mcp"
	"github.com/kvrancic/persona-mcp/ingest"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Implementation identity reported to MCP clients.
const (
	serverName    = "persona-mcp"
	serverVersion = "0.1.0"
)

const serverInstructions = `Creates AI personas from real online content.

Initialize a persona with init_persona, then ask questions with ask_persona.
The persona answers in the first person based on their actual public
statements.`

// Ingestor builds persona knowledge bases. Implemented by ingest.Ingestor.
type Ingestor interface {
	Ingest(ctx context.Context, sess *persona.Session, person string, maxURLs int, progress ingest.ProgressFunc) (*persona.IngestReport, error)
}

// Answerer answers questions in a persona's voice. Implemented by
// compose.Composer.
type Answerer interface {
	Answer(ctx context.Context, sess *persona.Session, person, question string) (string, error)
}

// Config holds server dependencies.
type Config struct {
	Ingestor Ingestor
	Answerer Answerer
	Store    persona.ContentStore

	// Session carries the active persona. Optional; a fresh session is
	// created when nil.
	Session *persona.Session
}

func (c Config) validate() error {
	if c.Ingestor == nil {
		return persona.Errorf(persona.EINVALID, "ingestor required")
	}
	if c.Answerer == nil {
		return persona.Errorf(persona.EINVALID, "answerer required")
	}
	if c.Store == nil {
		return persona.Errorf(persona.EINVALID, "content store required")
	}
	return nil
}

// Server wraps an MCP server with the persona tools registered.
type Server struct {
	server   *mcp.Server
	ingestor Ingestor
	answerer Answerer
	store    persona.ContentStore
	session  *persona.Session
}

// NewServer creates a configured MCP server with all four persona tools
// registered. One Server serves one logical client session.
func NewServer(cfg Config) (*Server, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	sess := cfg.Session
	if sess == nil {
		sess = &persona.Session{ID: uuid.NewString()}
	}

	s := &Server{
		ingestor: cfg.Ingestor,
		answerer: cfg.Answerer,
		store:    cfg.Store,
		session:  sess,
	}

	s.server = mcp.NewServer(
		&mcp.Implementation{Name: serverName, Version: serverVersion},
		&mcp.ServerOptions{Instructions: serverInstructions},
	)
	s.registerTools()

	return s, nil
}

// Run serves MCP over stdio. It blocks until the client disconnects or the
// context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// NewHTTPHandler returns a streamable-HTTP handler for the persona tools.
// Every MCP session gets its own Server, and with it its own active-persona
// state.
func NewHTTPHandler(cfg Config) (http.Handler, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// A caller-supplied session would be shared across all HTTP sessions.
	cfg.Session = nil

	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		srv, err := NewServer(cfg)
		if err != nil {
			return nil
		}
		return srv.server
	}, nil), nil
}
