package analysis

import (
	"regexp"

	"github.com/jonathan/placement-readiness/internal/skills"
	"github.com/jonathan/placement-readiness/internal/types"
)

// questionCount is the fixed length of the generated question list.
const questionCount = 10

var (
	reSQL        = regexp.MustCompile(`(?i)sql`)
	reReact      = regexp.MustCompile(`(?i)react`)
	reJavaPython = regexp.MustCompile(`(?i)java|python`)
	reMongoNoSQL = regexp.MustCompile(`(?i)mongo|nosql`)
	reNode       = regexp.MustCompile(`(?i)node`)
)

// genericQuestions is the rotating fallback pool used to pad the list to 10.
var genericQuestions = []string{
	"Tell me about a challenging bug you fixed and how you approached it.",
	"Describe a project where you had to learn a new technology quickly.",
	"How do you handle disagreements with a teammate on technical decisions?",
}

func anyTagMatches(tags []string, re *regexp.Regexp) bool {
	for _, tag := range tags {
		if re.MatchString(tag) {
			return true
		}
	}
	return false
}

// BuildQuestions builds the list of exactly 10 likely interview questions.
// Skill-conditioned rules fire in fixed order (Core CS intentionally
// contributes through two separate rules), then the generic pool pads the
// list. The padding keeps the original fallback quirk: when the rotating
// pick is already present it appends the third generic question instead,
// which can itself be a duplicate once all three are taken.
func BuildQuestions(ex *skills.Extraction) []string {
	var questions []string

	if ex.Has(types.CategoryData) && anyTagMatches(ex.Tags(types.CategoryData), reSQL) {
		questions = append(questions, "Explain indexing and when it helps.")
	}
	if ex.Has(types.CategoryWeb) && anyTagMatches(ex.Tags(types.CategoryWeb), reReact) {
		questions = append(questions, "Explain state management options.")
	}
	if ex.Has(types.CategoryCoreCS) {
		questions = append(questions, "How would you optimize search in sorted data?")
	}
	if ex.Has(types.CategoryCoreCS) {
		questions = append(questions,
			"Explain the difference between process and thread.",
			"What is normalization? Why is it used in DBMS?")
	}
	if ex.Has(types.CategoryWeb) {
		questions = append(questions, "Explain REST principles and when you would use PUT vs PATCH.")
	}
	if ex.Has(types.CategoryLanguages) && anyTagMatches(ex.Tags(types.CategoryLanguages), reJavaPython) {
		questions = append(questions, "Explain inheritance and polymorphism with a short code example.")
	}
	if ex.Has(types.CategoryCloud) {
		questions = append(questions, "What is the difference between Docker and Kubernetes? When use which?")
	}
	if ex.Has(types.CategoryData) && anyTagMatches(ex.Tags(types.CategoryData), reMongoNoSQL) {
		questions = append(questions, "When would you choose a NoSQL database over a relational one?")
	}
	if ex.Has(types.CategoryTesting) {
		questions = append(questions, "How do you approach writing tests for a new feature?")
	}
	if ex.Has(types.CategoryWeb) && anyTagMatches(ex.Tags(types.CategoryWeb), reNode) {
		questions = append(questions, "Explain the event loop in Node.js and how it handles async I/O.")
	}

	for len(questions) < questionCount {
		pick := genericQuestions[len(questions)%len(genericQuestions)]
		if !containsQuestion(questions, pick) {
			questions = append(questions, pick)
		} else {
			questions = append(questions, genericQuestions[2])
		}
	}
	return questions[:questionCount]
}

func containsQuestion(questions []string, q string) bool {
	for _, existing := range questions {
		if existing == q {
			return true
		}
	}
	return false
}
