package classifier

import "strings"

// DomainRule clamps the fused confidence for documents whose domain matches
// a known hosting pattern. Rules adjust the score after fusion; they never
// bypass the accept/reject thresholds, so a clamped document still goes
// through the same decision gate.
type DomainRule struct {
	// Pattern is matched as a substring of the canonical domain.
	Pattern string

	// Floor and Ceiling bound the fused confidence when the rule matches.
	Floor   float64
	Ceiling float64
}

// Matches reports whether the rule applies to a domain.
func (r DomainRule) Matches(domain string) bool {
	return r.Pattern != "" && strings.Contains(domain, r.Pattern)
}

// Apply clamps a confidence into the rule's [Floor, Ceiling] band.
func (r DomainRule) Apply(confidence float64) float64 {
	if confidence < r.Floor {
		return r.Floor
	}
	if confidence > r.Ceiling {
		return r.Ceiling
	}
	return confidence
}

// DefaultDomainRules returns the built-in hosting patterns. Personal-blog
// hosts raise the confidence floor above the accept threshold; aggregator
// and storefront hosts cap it below the reject threshold.
func DefaultDomainRules() []DomainRule {
	return []DomainRule{
		{Pattern: "github.io", Floor: 0.75, Ceiling: 1},
		{Pattern: "gitlab.io", Floor: 0.75, Ceiling: 1},
		{Pattern: "neocities.org", Floor: 0.75, Ceiling: 1},
		{Pattern: "bearblog.dev", Floor: 0.75, Ceiling: 1},
		{Pattern: "micro.blog", Floor: 0.75, Ceiling: 1},
		{Pattern: "shopify.com", Floor: 0, Ceiling: 0.25},
		{Pattern: "forbes.com", Floor: 0, Ceiling: 0.25},
		{Pattern: "businesswire.com", Floor: 0, Ceiling: 0.25},
		{Pattern: "prnewswire.com", Floor: 0, Ceiling: 0.25},
	}
}
