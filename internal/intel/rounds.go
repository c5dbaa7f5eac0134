package intel

import (
	"github.com/jonathan/placement-readiness/internal/skills"
	"github.com/jonathan/placement-readiness/internal/types"
)

// Why-it-matters sentences keyed by round kind.
const (
	whyOnlineTest       = "Filters for basic aptitude and coding speed; often elimination round."
	whyTechnicalDSA     = "Deep dive into data structures and algorithms; expect live coding."
	whyTechProjects     = "Validates real-world experience and how you apply your stack."
	whyHR               = "Assesses fit, motivation, and communication; be ready with STAR examples."
	whyPracticalCoding  = "Tests hands-on coding and problem-solving in your stack."
	whySystemDiscussion = "Evaluates design thinking and trade-offs."
	whyCultureFit       = "Checks alignment with values and team dynamics."
)

func round(title, why string) types.Round {
	return types.Round{RoundTitle: title, FocusAreas: []string{}, WhyItMatters: why}
}

// RoundMapping predicts the interview round sequence from company size and
// detected skills. Size defaults to startup when no intel is available.
// The decision table is keyed on (size, hasCoreCS, hasWeb); first match wins.
func RoundMapping(companyIntel *types.CompanyIntel, ex *skills.Extraction) []types.Round {
	size := types.SizeStartup
	if companyIntel != nil && companyIntel.SizeCategory.Value != "" {
		size = companyIntel.SizeCategory.Value
	}
	hasCoreCS := ex.Has(types.CategoryCoreCS)
	hasWeb := ex.Has(types.CategoryWeb)

	if size == types.SizeEnterprise && hasCoreCS {
		return []types.Round{
			round("Online Test (DSA + Aptitude)", whyOnlineTest),
			round("Technical (DSA + Core CS)", whyTechnicalDSA),
			round("Tech + Projects", whyTechProjects),
			round("HR", whyHR),
		}
	}

	if size == types.SizeEnterprise {
		return []types.Round{
			round("Online Test (Aptitude + Basics)", whyOnlineTest),
			round("Technical (Stack + Fundamentals)", whyTechnicalDSA),
			round("Tech + Projects", whyTechProjects),
			round("HR", whyHR),
		}
	}

	if size == types.SizeStartup && hasWeb {
		return []types.Round{
			round("Practical coding", whyPracticalCoding),
			round("System discussion", whySystemDiscussion),
			round("Culture fit", whyCultureFit),
		}
	}

	if size == types.SizeStartup {
		return []types.Round{
			round("Coding / Problem-solving", whyPracticalCoding),
			round("Technical deep dive", whyTechnicalDSA),
			round("Culture fit", whyCultureFit),
		}
	}

	// Unreachable given the startup default, kept as a safety net for
	// records carrying an unrecognized size value.
	return []types.Round{
		round("Screening (Aptitude / Coding)", whyOnlineTest),
		round("Technical", whyTechnicalDSA),
		round("HR / Fit", whyHR),
	}
}
