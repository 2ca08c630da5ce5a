package mcp

import (
	"context"
	"errors"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	dserrors "github.com/deepsearch-ai/deepsearch/internal/errors"
	"github.com/deepsearch-ai/deepsearch/internal/history"
	"github.com/deepsearch-ai/deepsearch/internal/intent"
	"github.com/deepsearch-ai/deepsearch/internal/provider"
	"github.com/deepsearch-ai/deepsearch/internal/search"
	"github.com/deepsearch-ai/deepsearch/internal/usage"
	"github.com/deepsearch-ai/deepsearch/pkg/version"
)

// Server bridges AI clients with the people-search orchestrator over MCP.
type Server struct {
	mcp     *mcp.Server
	orch    *search.Orchestrator
	history *history.Log
	gate    *usage.Gate
	logger  *slog.Logger
}

// PeopleSearchInput is the input schema for the people_search tool.
type PeopleSearchInput struct {
	Query        string `json:"query" jsonschema:"the identifier to search for: a name, email, phone number, or username"`
	Type         string `json:"type,omitempty" jsonschema:"identifier type: name, email, phone, or username; default name"`
	ExtraDetails string `json:"extra_details,omitempty" jsonschema:"optional context such as a city or employer"`
	Premium      bool   `json:"premium,omitempty" jsonschema:"true to bypass the free-tier quota and result cap"`
}

// PeopleSearchOutput is the output schema for the people_search tool.
type PeopleSearchOutput struct {
	Results    []provider.SearchResult `json:"results" jsonschema:"normalized search results"`
	TotalFound int                     `json:"total_found" jsonschema:"result count before the free-tier cap"`
	Degraded   bool                    `json:"degraded" jsonschema:"true when every search backend failed"`
	Remaining  int                     `json:"remaining" jsonschema:"free searches left today"`
}

// ResolveQueryInput is the input schema for the resolve_query tool.
type ResolveQueryInput struct {
	Text    string `json:"text" jsonschema:"free-form text; search intent is detected automatically"`
	Premium bool   `json:"premium,omitempty" jsonschema:"true to bypass the free-tier quota and result cap"`
}

// ResolveQueryOutput is the output schema for the resolve_query tool.
type ResolveQueryOutput struct {
	Text        string                  `json:"text" jsonschema:"natural-language summary or answer"`
	Suggestions []string                `json:"suggestions,omitempty" jsonschema:"refinement hints when nothing was found"`
	Results     []provider.SearchResult `json:"results,omitempty" jsonschema:"search results when a search ran"`
	IntentType  string                  `json:"intent_type,omitempty" jsonschema:"detected identifier type"`
	HasIntent   bool                    `json:"has_intent" jsonschema:"whether person-search intent was detected"`
	Remaining   int                     `json:"remaining" jsonschema:"free searches left today"`
}

// SearchHistoryInput is the input schema for the search_history tool.
type SearchHistoryInput struct {
	Type  string `json:"type,omitempty" jsonschema:"filter by identifier type: name, email, phone, or username"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum entries to return, default 20"`
}

// SearchHistoryOutput is the output schema for the search_history tool.
type SearchHistoryOutput struct {
	Entries []history.Entry `json:"entries" jsonschema:"past searches, newest first"`
}

// UsageStatusInput is the input schema for the usage_status tool (no parameters).
type UsageStatusInput struct{}

// UsageStatusOutput is the output schema for the usage_status tool.
type UsageStatusOutput struct {
	Used       int    `json:"used" jsonschema:"searches used today"`
	Limit      int    `json:"limit" jsonschema:"daily free search limit"`
	Remaining  int    `json:"remaining" jsonschema:"free searches left today"`
	Day        string `json:"day" jsonschema:"local calendar day of the counter"`
	SourcesCap int    `json:"sources_cap" jsonschema:"visible results per free search"`
}

// NewServer creates the MCP server and registers its tools.
func NewServer(orch *search.Orchestrator, log *history.Log, gate *usage.Gate, logger *slog.Logger) (*Server, error) {
	if orch == nil {
		return nil, errors.New("orchestrator is required")
	}
	if log == nil {
		return nil, errors.New("history log is required")
	}
	if gate == nil {
		return nil, errors.New("usage gate is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		orch:    orch,
		history: log,
		gate:    gate,
		logger:  logger,
	}

	s.mcp = mcp.NewServer(
		&mcp.Implementation{
			Name:    "DeepSearch",
			Version: version.Version,
		},
		nil,
	)

	s.registerTools()
	return s, nil
}

// registerTools registers all tools with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "people_search",
		Description: "Search for a person by name, email, phone number, or username. Returns ranked results from people-search backends with per-result confidence scores.",
	}, s.peopleSearchHandler)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "resolve_query",
		Description: "Resolve free-form text end to end: detects person-search intent, runs the search when intent is found, and returns a natural-language summary. Questions without search intent get a direct answer.",
	}, s.resolveQueryHandler)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "search_history",
		Description: "List past searches, newest first. Optionally filter by identifier type.",
	}, s.searchHistoryHandler)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "usage_status",
		Description: "Report today's free-search quota: used, limit, and remaining.",
	}, s.usageStatusHandler)

	s.logger.Info("MCP tools registered", slog.Int("count", 4))
}

// peopleSearchHandler runs a direct typed search.
func (s *Server) peopleSearchHandler(ctx context.Context, _ *mcp.CallToolRequest, input PeopleSearchInput) (
	*mcp.CallToolResult,
	PeopleSearchOutput,
	error,
) {
	if input.Query == "" {
		return nil, PeopleSearchOutput{}, NewInvalidParamsError("query parameter is required")
	}

	queryType := intent.TypeName
	if input.Type != "" {
		parsed, err := intent.ParseType(input.Type)
		if err != nil {
			return nil, PeopleSearchOutput{}, NewInvalidParamsError(err.Error())
		}
		queryType = parsed
	}

	out, err := s.orch.Search(ctx, queryType, input.Query, input.ExtraDetails, input.Premium)
	if err != nil {
		return nil, PeopleSearchOutput{}, MapError(err)
	}

	return nil, PeopleSearchOutput{
		Results:    out.Results,
		TotalFound: out.TotalFound,
		Degraded:   out.Degraded,
		Remaining:  out.Remaining,
	}, nil
}

// resolveQueryHandler answers free-form text.
func (s *Server) resolveQueryHandler(ctx context.Context, _ *mcp.CallToolRequest, input ResolveQueryInput) (
	*mcp.CallToolResult,
	ResolveQueryOutput,
	error,
) {
	if input.Text == "" {
		return nil, ResolveQueryOutput{}, NewInvalidParamsError("text parameter is required")
	}

	resp, err := s.orch.Resolve(ctx, input.Text, input.Premium)
	if err != nil {
		return nil, ResolveQueryOutput{}, MapError(err)
	}

	return nil, ResolveQueryOutput{
		Text:        resp.Text,
		Suggestions: resp.Suggestions,
		Results:     resp.Results,
		IntentType:  string(resp.Intent.Type),
		HasIntent:   resp.Intent.HasIntent,
		Remaining:   resp.Remaining,
	}, nil
}

// searchHistoryHandler lists past searches.
func (s *Server) searchHistoryHandler(_ context.Context, _ *mcp.CallToolRequest, input SearchHistoryInput) (
	*mcp.CallToolResult,
	SearchHistoryOutput,
	error,
) {
	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}

	var entries []history.Entry
	if input.Type != "" {
		queryType, err := intent.ParseType(input.Type)
		if err != nil {
			return nil, SearchHistoryOutput{}, NewInvalidParamsError(err.Error())
		}
		entries = s.history.ListByType(queryType)
	} else {
		entries = s.history.List()
	}

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return nil, SearchHistoryOutput{Entries: entries}, nil
}

// usageStatusHandler reports today's quota.
func (s *Server) usageStatusHandler(_ context.Context, _ *mcp.CallToolRequest, _ UsageStatusInput) (
	*mcp.CallToolResult,
	UsageStatusOutput,
	error,
) {
	st := s.gate.Status()
	return nil, UsageStatusOutput{
		Used:       st.Used,
		Limit:      st.Limit,
		Remaining:  st.Remaining,
		Day:        st.Day,
		SourcesCap: st.SourcesCap,
	}, nil
}

// Serve runs the server over stdio until the context is canceled.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("Starting MCP server", slog.String("transport", "stdio"))

	err := s.mcp.Run(ctx, &mcp.StdioTransport{})
	if err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Error("MCP server stopped with error", dserrors.FormatForLog(err)...)
		return err
	}
	s.logger.Info("MCP server stopped gracefully")
	return nil
}
