package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/placement-readiness/internal/skills"
)

func TestBuildQuestions_AlwaysTen(t *testing.T) {
	jds := []string{
		"",
		"React developer",
		"DSA, SQL, React, Node.js, Java, Docker, MongoDB, Selenium",
		SampleJD,
	}
	for _, jd := range jds {
		assert.Len(t, BuildQuestions(skills.ExtractSkills(jd)), 10)
	}
}

func TestBuildQuestions_FresherPaddingQuirk(t *testing.T) {
	questions := BuildQuestions(skills.ExtractSkills(""))
	require.Len(t, questions, 10)

	// Rotation fills the first three slots, then every further pick is
	// already present and falls back to the third generic question.
	assert.Equal(t, genericQuestions[0], questions[0])
	assert.Equal(t, genericQuestions[1], questions[1])
	assert.Equal(t, genericQuestions[2], questions[2])
	for i := 3; i < 10; i++ {
		assert.Equal(t, genericQuestions[2], questions[i])
	}
}

func TestBuildQuestions_SQLRule(t *testing.T) {
	questions := BuildQuestions(skills.ExtractSkills("SQL database work"))
	assert.Equal(t, "Explain indexing and when it helps.", questions[0])
}

func TestBuildQuestions_CoreCSFiresTwoRules(t *testing.T) {
	questions := BuildQuestions(skills.ExtractSkills("DSA fundamentals"))

	assert.Contains(t, questions, "How would you optimize search in sorted data?")
	assert.Contains(t, questions, "Explain the difference between process and thread.")
	assert.Contains(t, questions, "What is normalization? Why is it used in DBMS?")
}

func TestBuildQuestions_ReactAndNodeRules(t *testing.T) {
	questions := BuildQuestions(skills.ExtractSkills("React and Node.js stack"))

	assert.Contains(t, questions, "Explain state management options.")
	assert.Contains(t, questions, "Explain REST principles and when you would use PUT vs PATCH.")
	assert.Contains(t, questions, "Explain the event loop in Node.js and how it handles async I/O.")
}

func TestBuildQuestions_MongoRule(t *testing.T) {
	questions := BuildQuestions(skills.ExtractSkills("MongoDB experience"))
	assert.Contains(t, questions, "When would you choose a NoSQL database over a relational one?")
}

func TestBuildQuestions_TestingRule(t *testing.T) {
	questions := BuildQuestions(skills.ExtractSkills("Cypress automation"))
	assert.Contains(t, questions, "How do you approach writing tests for a new feature?")
}

func TestBuildQuestions_RuleOrderFixed(t *testing.T) {
	// SQL then React rules fire before the Core CS pair.
	questions := BuildQuestions(skills.ExtractSkills("SQL, React and DSA"))

	assert.Equal(t, "Explain indexing and when it helps.", questions[0])
	assert.Equal(t, "Explain state management options.", questions[1])
	assert.Equal(t, "How would you optimize search in sorted data?", questions[2])
}

func TestBuildQuestions_Deterministic(t *testing.T) {
	ex := skills.ExtractSkills(SampleJD)
	first := BuildQuestions(ex)
	assert.Equal(t, first, BuildQuestions(ex))
}
