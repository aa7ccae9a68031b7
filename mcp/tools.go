package mcp

import (
	"context"
	"fmt"
	"strings"

	persona "github.com/kvrancic/persona-mcp"
	"github.com/kvrancic/persona-mcp/ingest"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// InitPersonaInput is the input schema for the init_persona tool.
type InitPersonaInput struct {
	PersonName string `json:"person_name" jsonschema:"full name of the person to build a knowledge base for (e.g. Ada Lovelace)"`
	MaxURLs    int    `json:"max_urls,omitempty" jsonschema:"maximum number of pages to scrape (default 3, recommended 1-5)"`
}

// InitPersonaOutput reports the outcome of an ingestion run.
type InitPersonaOutput struct {
	Message         string                  `json:"message"`
	Persona         string                  `json:"persona"`
	Attempted       int                     `json:"attempted"`
	Succeeded       int                     `json:"succeeded"`
	NewChunks       int                     `json:"new_chunks"`
	DuplicateChunks int                     `json:"duplicate_chunks"`
	CharsStored     int                     `json:"chars_stored"`
	Failures        []persona.ScrapeFailure `json:"failures,omitempty"`
}

// AskPersonaInput is the input schema for the ask_persona tool.
type AskPersonaInput struct {
	Question string `json:"question" jsonschema:"the question to ask the active persona"`
}

// AskPersonaOutput carries the persona's first-person answer.
type AskPersonaOutput struct {
	Persona string `json:"persona"`
	Answer  string `json:"answer"`
}

// GetCurrentPersonaInput is the input schema for the get_current_persona
// tool. The tool takes no parameters.
type GetCurrentPersonaInput struct{}

// GetCurrentPersonaOutput reports the session's active persona, if any.
type GetCurrentPersonaOutput struct {
	Message string                `json:"message"`
	Active  bool                  `json:"active"`
	Persona string                `json:"persona,omitempty"`
	Stats   *persona.PersonaStats `json:"stats,omitempty"`
}

// SwitchPersonaInput is the input schema for the switch_persona tool.
type SwitchPersonaInput struct {
	PersonName string `json:"person_name" jsonschema:"name of an already initialized persona to switch to"`
}

// SwitchPersonaOutput confirms the switch and summarizes the knowledge base.
type SwitchPersonaOutput struct {
	Message string                `json:"message"`
	Persona string                `json:"persona"`
	Stats   *persona.PersonaStats `json:"stats,omitempty"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "init_persona",
		Description: "Initialize a persona by gathering and storing their online content. Searches the web for the person's public statements, scrapes the results, and makes the persona active for this session.",
	}, s.InitPersona)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask_persona",
		Description: "Ask a question to the currently active persona. The persona answers in the first person, grounded in their stored public statements.",
	}, s.AskPersona)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_current_persona",
		Description: "Get the name of the currently active persona along with its knowledge base statistics.",
	}, s.GetCurrentPersona)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "switch_persona",
		Description: "Switch to a different persona that has already been initialized with init_persona.",
	}, s.SwitchPersona)
}

// InitPersona handles the init_persona tool: it runs the full ingestion
// pipeline and activates the persona on success.
func (s *Server) InitPersona(ctx context.Context, req *mcp.CallToolRequest, input InitPersonaInput) (*mcp.CallToolResult, InitPersonaOutput, error) {
	maxURLs := input.MaxURLs
	if maxURLs <= 0 {
		maxURLs = ingest.DefaultMaxURLs
	}

	report, err := s.ingestor.Ingest(ctx, s.session, input.PersonName, maxURLs, nil)
	if err != nil {
		return errorResult(persona.ErrorMessage(err)), InitPersonaOutput{}, nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "✅ %s ready! Scraped %d/%d URLs (%d chars)",
		persona.DisplayName(report.Person), report.Succeeded, report.Attempted, report.CharsStored)
	for _, f := range report.Failures {
		fmt.Fprintf(&sb, "\n⏭️ Skipped %s (%s)", f.URL, f.Reason)
	}
	msg := sb.String()

	out := InitPersonaOutput{
		Message:         msg,
		Persona:         report.Person,
		Attempted:       report.Attempted,
		Succeeded:       report.Succeeded,
		NewChunks:       report.NewChunks,
		DuplicateChunks: report.DuplicateChunks,
		CharsStored:     report.CharsStored,
		Failures:        report.Failures,
	}
	return textResult(msg), out, nil
}

// AskPersona handles the ask_persona tool: it answers the question in the
// active persona's voice.
func (s *Server) AskPersona(ctx context.Context, req *mcp.CallToolRequest, input AskPersonaInput) (*mcp.CallToolResult, AskPersonaOutput, error) {
	answer, err := s.answerer.Answer(ctx, s.session, "", input.Question)
	if err != nil {
		return errorResult(persona.ErrorMessage(err)), AskPersonaOutput{}, nil
	}

	active, _ := s.session.Active()
	return textResult(answer), AskPersonaOutput{Persona: active, Answer: answer}, nil
}

// GetCurrentPersona handles the get_current_persona tool.
func (s *Server) GetCurrentPersona(ctx context.Context, req *mcp.CallToolRequest, input GetCurrentPersonaInput) (*mcp.CallToolResult, GetCurrentPersonaOutput, error) {
	active, ok := s.session.Active()
	if !ok {
		msg := "❌ No persona is currently active"
		return textResult(msg), GetCurrentPersonaOutput{Message: msg}, nil
	}

	stats, err := s.store.Stats(ctx, active)
	if err != nil {
		return errorResult(persona.ErrorMessage(err)), GetCurrentPersonaOutput{}, nil
	}

	display := persona.DisplayName(active)
	var msg string
	if stats.Exists {
		msg = fmt.Sprintf("✅ Current persona: %s\n📊 %d chunks, %d characters", display, stats.Chunks, stats.TotalChars)
	} else {
		msg = fmt.Sprintf("⚠️ Current persona: %s (no stored content)", display)
	}

	out := GetCurrentPersonaOutput{
		Message: msg,
		Active:  true,
		Persona: active,
		Stats:   stats,
	}
	return textResult(msg), out, nil
}

// SwitchPersona handles the switch_persona tool. The target persona must
// already have stored content.
func (s *Server) SwitchPersona(ctx context.Context, req *mcp.CallToolRequest, input SwitchPersonaInput) (*mcp.CallToolResult, SwitchPersonaOutput, error) {
	name := persona.NormalizeName(input.PersonName)
	if name == "" {
		return errorResult("person_name required"), SwitchPersonaOutput{}, nil
	}

	ok, err := s.store.Exists(ctx, name)
	if err != nil {
		return errorResult(persona.ErrorMessage(err)), SwitchPersonaOutput{}, nil
	}
	display := persona.DisplayName(name)
	if !ok {
		return errorResult(fmt.Sprintf("%s hasn't been initialized yet. Use init_persona first.", display)), SwitchPersonaOutput{}, nil
	}

	s.session.SetActive(name)

	stats, err := s.store.Stats(ctx, name)
	if err != nil {
		return errorResult(persona.ErrorMessage(err)), SwitchPersonaOutput{}, nil
	}

	msg := fmt.Sprintf("✅ Switched to %s\n📊 %d chunks, %d characters", display, stats.Chunks, stats.TotalChars)
	return textResult(msg), SwitchPersonaOutput{Message: msg, Persona: name, Stats: stats}, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// errorResult reports a failed tool call with a user-readable message.
// Expected failures (bad input, nothing found, upstream outage) are tool
// errors, not protocol errors, so the model can read them and react.
func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: "❌ " + msg}},
	}
}
