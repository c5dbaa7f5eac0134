// Package intel infers heuristic company information and interview round
// sequences from the company name and JD text. No network lookups: every
// inference is a fixed table or regex over the supplied strings.
package intel

import (
	"regexp"
	"strings"

	"github.com/jonathan/placement-readiness/internal/types"
)

// Size labels shown alongside the binary size value.
const (
	labelStartup    = "Startup (<200)"
	labelEnterprise = "Enterprise (2000+)"
)

// Hiring focus templates keyed by company size.
const (
	focusEnterprise = "Structured DSA and core CS fundamentals; standardized online tests and technical rounds."
	focusStartup    = "Practical problem-solving and stack depth; system design and culture fit."
	focusDefault    = "Mix of fundamentals and practical coding; technical and behavioral rounds."
)

// enterpriseNames is the fixed known-enterprise list. A normalized company
// name matching any entry (substring in either direction) is sized as
// enterprise; everything else is sized as startup.
var enterpriseNames = []string{
	"amazon", "infosys", "tcs", "tata consultancy", "wipro", "accenture", "microsoft", "google",
	"capgemini", "cognizant", "hcl", "ibm", "oracle", "tata motors", "tata steel", "tech mahindra",
	"larsen", "l&t", "reliance", "dell", "hp", "cisco", "salesforce", "adobe", "sap",
	"intel", "nvidia", "qualcomm", "goldman sachs", "morgan stanley", "jpmorgan", "barclays",
}

// industryRule maps a keyword pattern to an industry label. Rules are
// evaluated in order; first match wins.
type industryRule struct {
	pattern  *regexp.Regexp
	industry string
}

var industryRules = []industryRule{
	{regexp.MustCompile(`\b(finance|banking|investment|trading)\b`), "Financial Services"},
	{regexp.MustCompile(`\b(retail|ecommerce|e-commerce)\b`), "Retail"},
	{regexp.MustCompile(`\b(healthcare|health|medical|pharma)\b`), "Healthcare"},
	{regexp.MustCompile(`\b(manufacturing|automotive|logistics)\b`), "Manufacturing & Logistics"},
}

const defaultIndustry = "Technology Services"

func normalizeCompany(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func isEnterprise(companyName string) bool {
	n := normalizeCompany(companyName)
	if n == "" {
		return false
	}
	for _, ent := range enterpriseNames {
		if strings.Contains(n, ent) || strings.Contains(ent, n) {
			return true
		}
	}
	return false
}

// inferIndustry matches the combined company name and JD text against the
// industry rule table. Default: Technology Services.
func inferIndustry(companyName, jdText string) string {
	text := strings.ToLower(companyName + " " + jdText)
	for _, rule := range industryRules {
		if rule.pattern.MatchString(text) {
			return rule.industry
		}
	}
	return defaultIndustry
}

func sizeCategory(companyName string) *types.SizeCategory {
	if strings.TrimSpace(companyName) == "" {
		return nil
	}
	if isEnterprise(companyName) {
		return &types.SizeCategory{Label: labelEnterprise, Value: types.SizeEnterprise}
	}
	return &types.SizeCategory{Label: labelStartup, Value: types.SizeStartup}
}

func typicalHiringFocus(sizeValue string) string {
	switch sizeValue {
	case types.SizeEnterprise:
		return focusEnterprise
	case types.SizeStartup:
		return focusStartup
	default:
		return focusDefault
	}
}

// CompanyIntel infers industry, size, and hiring focus for a company.
// Returns nil when the company name is blank; it never fails otherwise.
func CompanyIntel(companyName, jdText string) *types.CompanyIntel {
	name := strings.TrimSpace(companyName)
	if name == "" {
		return nil
	}

	size := sizeCategory(name)
	if size == nil {
		return nil
	}

	return &types.CompanyIntel{
		CompanyName:        name,
		Industry:           inferIndustry(name, jdText),
		SizeCategory:       *size,
		TypicalHiringFocus: typicalHiringFocus(size.Value),
	}
}
