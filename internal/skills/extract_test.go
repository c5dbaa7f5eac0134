package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/placement-readiness/internal/types"
)

func TestExtractSkills_BasicCategories(t *testing.T) {
	jd := "Looking for a developer with React, Node.js and MongoDB. Strong DSA and OOP required. Docker a plus."

	ex := ExtractSkills(jd)
	require.NotNil(t, ex)
	assert.False(t, ex.IsGeneralFresher)

	assert.Equal(t, []string{"DSA", "OOP"}, ex.Tags(types.CategoryCoreCS))
	assert.Equal(t, []string{"Node.js", "React"}, ex.Tags(types.CategoryWeb))
	assert.Equal(t, []string{"MongoDB"}, ex.Tags(types.CategoryData))
	assert.Equal(t, []string{"Docker"}, ex.Tags(types.CategoryCloud))
	assert.Empty(t, ex.Tags(types.CategoryTesting))

	// Substring matching: "mongodb" also lights up the Go keyword.
	assert.Equal(t, []string{"Go"}, ex.Tags(types.CategoryLanguages))
}

func TestExtractSkills_CategoryOrderIsDeclarationOrder(t *testing.T) {
	// Mention categories in reverse declaration order; output order must not
	// depend on text order.
	jd := "Selenium, AWS, SQL, React, Python, DBMS"

	ex := ExtractSkills(jd)
	assert.Equal(t, []string{
		types.CategoryCoreCS,
		types.CategoryLanguages,
		types.CategoryWeb,
		types.CategoryData,
		types.CategoryCloud,
		types.CategoryTesting,
	}, ex.CategoryNames)
}

func TestExtractSkills_GeneralFresherWhenNothingMatches(t *testing.T) {
	ex := ExtractSkills("We want an enthusiastic learner. Freshers welcome.")

	assert.True(t, ex.IsGeneralFresher)
	assert.Equal(t, []string{types.CategoryGeneral}, ex.CategoryNames)
	assert.Equal(t, []string{GeneralFresherSkill}, ex.Tags(types.CategoryGeneral))
}

func TestExtractSkills_EmptyText(t *testing.T) {
	ex := ExtractSkills("   \n\t  ")

	assert.True(t, ex.IsGeneralFresher)
	assert.Equal(t, []string{types.CategoryGeneral}, ex.CategoryNames)
}

func TestExtractSkills_BareCWordBoundary(t *testing.T) {
	ex := ExtractSkills("Systems role: strong C required, plus Linux.")
	assert.Contains(t, ex.Tags(types.CategoryLanguages), "C")

	// "c" inside a word must not match.
	ex = ExtractSkills("We value good communication and collaboration.")
	assert.NotContains(t, ex.Tags(types.CategoryLanguages), "C")
}

func TestExtractSkills_CSuppressedByCppAndCSharp(t *testing.T) {
	ex := ExtractSkills("Experience with C++ and modern C standards.")
	assert.Contains(t, ex.Tags(types.CategoryLanguages), "C++")
	assert.NotContains(t, ex.Tags(types.CategoryLanguages), "C")

	ex = ExtractSkills("C# backend developer, some C interop work.")
	assert.Contains(t, ex.Tags(types.CategoryLanguages), "C#")
	assert.NotContains(t, ex.Tags(types.CategoryLanguages), "C")
}

func TestExtractSkills_JavaScriptImpliesJava(t *testing.T) {
	// Substring matching: "javascript" contains "java". Both tags appear.
	ex := ExtractSkills("Frontend role, JavaScript only.")

	tags := ex.Tags(types.CategoryLanguages)
	assert.Contains(t, tags, "JavaScript")
	assert.Contains(t, tags, "Java")
}

func TestExtractSkills_DedupWithinCategory(t *testing.T) {
	ex := ExtractSkills("React, react, REACT and more React.")

	assert.Equal(t, []string{"React"}, ex.Tags(types.CategoryWeb))
}

func TestExtractSkills_CaseInsensitive(t *testing.T) {
	ex := ExtractSkills("KUBERNETES and mongodb experience")

	assert.Equal(t, []string{"Kubernetes"}, ex.Tags(types.CategoryCloud))
	assert.Equal(t, []string{"MongoDB"}, ex.Tags(types.CategoryData))
}

func TestExtractSkills_Deterministic(t *testing.T) {
	jd := "Python, Go, PostgreSQL, Redis, CI/CD, Cypress, OS, Networks"

	first := ExtractSkills(jd)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ExtractSkills(jd))
	}
}

func TestCategories_ReturnsCopy(t *testing.T) {
	cats := Categories()
	require.NotEmpty(t, cats)
	assert.Equal(t, types.CategoryCoreCS, cats[0].Name)

	cats[0].Name = "mutated"
	assert.Equal(t, types.CategoryCoreCS, Categories()[0].Name)
}
