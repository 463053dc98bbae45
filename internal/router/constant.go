package router

// DefaultRules are evaluated in order; the first rule with a matching keyword wins.
var DefaultRules = []Rule{
	{Domain: DomainHealth, Keywords: []string{"sleep", "steps", "health", "fatigue"}},
	{Domain: DomainProductivity, Keywords: []string{"task", "work", "deadline", "productivity"}},
	{Domain: DomainCognitive, Keywords: []string{"focus", "stress", "mental", "cognitive"}},
	{Domain: DomainSummary, Keywords: []string{"summary", "overall", "decision"}},
}
