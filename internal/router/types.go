package router

// Domain is the area a user request belongs to.
type Domain string

const (
	DomainHealth       Domain = "health"
	DomainProductivity Domain = "productivity"
	DomainCognitive    Domain = "cognitive"
	DomainSummary      Domain = "summary"
	DomainUnknown      Domain = "unknown"
)

// Rule maps a set of keywords to a domain.
type Rule struct {
	Domain   Domain
	Keywords []string
}

// Match is the outcome of classifying a text.
type Match struct {
	Domain  Domain
	Keyword string // empty for DomainUnknown
}
