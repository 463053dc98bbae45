package usecase

// Log prefixes
const (
	LogPrefixDecide  = "internal.decision.usecase.Decide"
	LogPrefixSummary = "internal.decision.usecase.summary"
	LogPrefixCall    = "internal.decision.usecase.call"
)

// Span names and attributes
const (
	SpanDecide   = "decision.Decide"
	SpanToolCall = "mcp.tools/call"

	AttrDomain  = "decision.domain"
	AttrService = "mcp.service"
	AttrTool    = "mcp.tool"
)
