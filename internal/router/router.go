package router

import "strings"

// Classify returns the domain of text. It never fails.
func (c *KeywordClassifier) Classify(text string) Domain {
	return c.Match(text).Domain
}

// Match is Classify that also reports the keyword that decided the domain.
func (c *KeywordClassifier) Match(text string) Match {
	lowered := strings.ToLower(text)
	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lowered, keyword) {
				return Match{Domain: rule.Domain, Keyword: keyword}
			}
		}
	}
	return Match{Domain: DomainUnknown}
}
