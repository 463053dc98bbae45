package router

import "strings"

// Classifier maps free text to a Domain.
type Classifier interface {
	Classify(text string) Domain
}

// KeywordClassifier classifies by case-insensitive substring matching.
type KeywordClassifier struct {
	rules []Rule
}

var _ Classifier = (*KeywordClassifier)(nil)

// New creates a KeywordClassifier with DefaultRules.
func New() *KeywordClassifier {
	return NewWithRules(DefaultRules)
}

// NewWithRules creates a KeywordClassifier with custom rules, kept in order.
func NewWithRules(rules []Rule) *KeywordClassifier {
	copied := make([]Rule, 0, len(rules))
	for _, r := range rules {
		keywords := make([]string, 0, len(r.Keywords))
		for _, k := range r.Keywords {
			if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
				keywords = append(keywords, k)
			}
		}
		copied = append(copied, Rule{Domain: r.Domain, Keywords: keywords})
	}
	return &KeywordClassifier{rules: copied}
}
