package decision

// Downstream services
const (
	ServiceHealth       = "health"
	ServiceProductivity = "productivity"
	ServiceCognitive    = "cognitive"
)

// Downstream tools
const (
	ToolAddHealthData   = "add_health_data"
	ToolHealthSignal    = "health_signal"
	ToolSummary         = "summary"
	ToolAddData         = "add_data"
	ToolCognitiveSignal = "cognitive_signal_"
)

// handled_by values
const (
	HandledByHealth       = "health_mcp"
	HandledByProductivity = "productivity_mcp"
	HandledByCognitive    = "cognitive_mcp"
)

const (
	FinalDecision = "Aggregated by Decision MCP"

	UnrecognizedError = "Intent not recognized"
	UnrecognizedHint  = "Provide health, productivity, cognitive data, or ask for summary"

	// DataKeyDate is the optional data field overriding today's date.
	DataKeyDate = "date"
)
