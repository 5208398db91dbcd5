package scanner

import (
	"fmt"
	"regexp"

	"tfcost/core/types"
)

// resourcePattern matches resource "<type>" "<name>" { <body> }.
// The body ends at the first closing brace, so a nested block truncates it.
var resourcePattern = regexp.MustCompile(`resource\s+"([^"]+)"\s+"([^"]+)"\s*\{([^}]*)\}`)

// Parser scans configuration text for resource declarations
type Parser struct {
	classifier Classifier
	normalizer Normalizer
	inspector  Inspector
}

// NewParser creates a parser
func NewParser(classifier Classifier, normalizer Normalizer) *Parser {
	return &Parser{
		classifier: classifier,
		normalizer: normalizer,
	}
}

// WithInspector attaches a syntax checker whose findings are reported as warnings
func (p *Parser) WithInspector(inspector Inspector) *Parser {
	p.inspector = inspector
	return p
}

// Parse extracts every resource declaration from text.
// Parse never fails; text that does not match the grammar is skipped.
func (p *Parser) Parse(text string) *ParseResult {
	result := &ParseResult{
		Resources:    []types.NormalizedResource{},
		ServiceCodes: []string{},
	}

	seen := make(map[string]bool)
	for _, m := range resourcePattern.FindAllStringSubmatch(text, -1) {
		resourceType, name, body := m[1], m[2], m[3]

		code := p.classifier.Classify(resourceType)
		if code != types.UnknownServiceCode && !seen[code] {
			seen[code] = true
			result.ServiceCodes = append(result.ServiceCodes, code)
		}

		result.Resources = append(result.Resources, p.normalizer.Normalize(resourceType, name, body))
	}

	if p.inspector != nil {
		inspection := p.inspector.Inspect(text)
		result.Warnings = append(result.Warnings, inspection.Warnings...)
		if inspection.ResourceBlocks > len(result.Resources) {
			result.Warnings = append(result.Warnings, Warning{
				Code: WarnTruncated,
				Message: fmt.Sprintf("found %d resource blocks but only %d match the flat grammar; nested blocks end a resource body early",
					inspection.ResourceBlocks, len(result.Resources)),
			})
		}
	}

	return result
}
