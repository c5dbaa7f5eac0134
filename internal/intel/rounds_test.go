package intel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/placement-readiness/internal/skills"
	"github.com/jonathan/placement-readiness/internal/types"
)

func roundTitles(rounds []types.Round) []string {
	titles := make([]string, len(rounds))
	for i, r := range rounds {
		titles[i] = r.RoundTitle
	}
	return titles
}

func TestRoundMapping_EnterpriseWithCoreCS(t *testing.T) {
	intel := CompanyIntel("Infosys", "")
	ex := skills.ExtractSkills("Strong DSA and DBMS fundamentals required")

	rounds := RoundMapping(intel, ex)
	require.Len(t, rounds, 4)
	assert.Equal(t, []string{
		"Online Test (DSA + Aptitude)",
		"Technical (DSA + Core CS)",
		"Tech + Projects",
		"HR",
	}, roundTitles(rounds))
}

func TestRoundMapping_EnterpriseWithoutCoreCS(t *testing.T) {
	intel := CompanyIntel("Wipro", "")
	ex := skills.ExtractSkills("React frontend developer")

	rounds := RoundMapping(intel, ex)
	require.Len(t, rounds, 4)
	assert.Equal(t, "Online Test (Aptitude + Basics)", rounds[0].RoundTitle)
	assert.Equal(t, "Technical (Stack + Fundamentals)", rounds[1].RoundTitle)
}

func TestRoundMapping_StartupWithWeb(t *testing.T) {
	intel := CompanyIntel("Pixelgrove Labs", "")
	ex := skills.ExtractSkills("React and Node.js developer")

	rounds := RoundMapping(intel, ex)
	require.Len(t, rounds, 3)
	assert.Equal(t, []string{
		"Practical coding",
		"System discussion",
		"Culture fit",
	}, roundTitles(rounds))
}

func TestRoundMapping_StartupWithoutWeb(t *testing.T) {
	intel := CompanyIntel("Pixelgrove Labs", "")
	ex := skills.ExtractSkills("Python scripting and SQL")

	rounds := RoundMapping(intel, ex)
	require.Len(t, rounds, 3)
	assert.Equal(t, []string{
		"Coding / Problem-solving",
		"Technical deep dive",
		"Culture fit",
	}, roundTitles(rounds))
}

func TestRoundMapping_NilIntelDefaultsToStartup(t *testing.T) {
	ex := skills.ExtractSkills("React developer")

	rounds := RoundMapping(nil, ex)
	require.Len(t, rounds, 3)
	assert.Equal(t, "Practical coding", rounds[0].RoundTitle)
}

func TestRoundMapping_CoreCSBeatsWebAtEnterprise(t *testing.T) {
	intel := CompanyIntel("Amazon", "")
	ex := skills.ExtractSkills("DSA plus React experience")

	rounds := RoundMapping(intel, ex)
	require.Len(t, rounds, 4)
	assert.Equal(t, "Online Test (DSA + Aptitude)", rounds[0].RoundTitle)
}

func TestRoundMapping_EveryRoundHasWhyAndEmptyFocus(t *testing.T) {
	rounds := RoundMapping(nil, skills.ExtractSkills(""))
	for _, r := range rounds {
		assert.NotEmpty(t, r.WhyItMatters)
		assert.NotNil(t, r.FocusAreas)
		assert.Empty(t, r.FocusAreas)
	}
}
