package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/placement-readiness/internal/skills"
)

func TestBuildPlan7Days_FiveBlocks(t *testing.T) {
	plan := BuildPlan7Days(skills.ExtractSkills(""))

	require.Len(t, plan, 5)
	assert.Equal(t, "Day 1–2", plan[0].Day)
	assert.Equal(t, "Day 3–4", plan[1].Day)
	assert.Equal(t, "Day 5", plan[2].Day)
	assert.Equal(t, "Day 6", plan[3].Day)
	assert.Equal(t, "Day 7", plan[4].Day)

	assert.Equal(t, "Basics + core CS", plan[0].Focus)
	assert.Equal(t, "DSA + coding practice", plan[1].Focus)
	assert.Equal(t, "Project + resume alignment", plan[2].Focus)
	assert.Equal(t, "Mock interview questions", plan[3].Focus)
	assert.Equal(t, "Revision + weak areas", plan[4].Focus)
}

func TestBuildPlan7Days_FresherTaskCounts(t *testing.T) {
	plan := BuildPlan7Days(skills.ExtractSkills(""))

	assert.Len(t, plan[0].Tasks, 4)
	assert.Len(t, plan[1].Tasks, 4)
	assert.Len(t, plan[2].Tasks, 2)
	assert.Len(t, plan[3].Tasks, 2)
	assert.Len(t, plan[4].Tasks, 3)
}

func TestBuildPlan7Days_CoreCSAdditions(t *testing.T) {
	plan := BuildPlan7Days(skills.ExtractSkills("DSA and DBMS fundamentals"))

	assert.Contains(t, plan[0].Tasks, "Revise Networks: TCP/IP, HTTP basics.")
	assert.Contains(t, plan[3].Tasks, "Prepare OS/DBMS/Networks short answers.")
}

func TestBuildPlan7Days_LanguageRecapUsesFirstTag(t *testing.T) {
	plan := BuildPlan7Days(skills.ExtractSkills("Python backend role"))

	assert.Contains(t, plan[0].Tasks, "Quick Python syntax and stdlib recap.")
}

func TestBuildPlan7Days_WebAndDataOnDay5(t *testing.T) {
	plan := BuildPlan7Days(skills.ExtractSkills("React with PostgreSQL"))

	assert.Contains(t, plan[2].Tasks, "Frontend revision: React — key concepts.")
	assert.Contains(t, plan[2].Tasks, "DB design and PostgreSQL, SQL usage in projects.")
}

func TestBuildPlan7Days_Deterministic(t *testing.T) {
	jd := "React, Node.js, MongoDB, DSA, Python"

	first := BuildPlan7Days(skills.ExtractSkills(jd))
	assert.Equal(t, first, BuildPlan7Days(skills.ExtractSkills(jd)))
}
