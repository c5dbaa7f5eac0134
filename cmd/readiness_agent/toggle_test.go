package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// analyzeFixture runs a successful analyze so toggle/export have a latest
// entry to operate on. Returns the store path.
func analyzeFixture(t *testing.T) string {
	t.Helper()
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	jdPath := writeTestJD(t, tmpDir)
	storePath := testStorePath(t, tmpDir)

	cmd := exec.Command(binaryPath, "analyze",
		"--company", "Acme",
		"--role", "Backend",
		"--jd", jdPath,
		"--store", storePath)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "fixture analyze should succeed: %s", string(output))
	return storePath
}

func TestToggleCommand_MissingSkillFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)
	storePath := analyzeFixture(t)

	cmd := exec.Command(binaryPath, "toggle", "--confidence", "know", "--store", storePath)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "--skill is required")
}

func TestToggleCommand_InvalidConfidence(t *testing.T) {
	binaryPath := getBinaryPath(t)
	storePath := analyzeFixture(t)

	cmd := exec.Command(binaryPath, "toggle",
		"--skill", "React", "--confidence", "maybe", "--store", storePath)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), `--confidence must be "know" or "practice"`)
}

func TestToggleCommand_NoSavedAnalyses(t *testing.T) {
	binaryPath := getBinaryPath(t)
	storePath := testStorePath(t, t.TempDir())

	cmd := exec.Command(binaryPath, "toggle",
		"--skill", "React", "--confidence", "know", "--store", storePath)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "no saved analyses")
}

func TestToggleCommand_UnknownSkill(t *testing.T) {
	binaryPath := getBinaryPath(t)
	storePath := analyzeFixture(t)

	cmd := exec.Command(binaryPath, "toggle",
		"--skill", "Haskell", "--confidence", "know", "--store", storePath)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "is not part of entry")
}

func TestToggleCommand_UpdatesLiveScore(t *testing.T) {
	binaryPath := getBinaryPath(t)
	storePath := analyzeFixture(t)

	cmd := exec.Command(binaryPath, "toggle",
		"--skill", "React", "--confidence", "know", "--store", storePath)
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "toggle should succeed: %s", string(output))
	assert.Contains(t, string(output), "React → know; live score")
}

func TestToggleCommand_PersistsAcrossInvocations(t *testing.T) {
	binaryPath := getBinaryPath(t)
	storePath := analyzeFixture(t)

	cmd := exec.Command(binaryPath, "toggle",
		"--skill", "React", "--confidence", "know", "--store", storePath)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "first toggle: %s", string(output))

	// A second toggle on another skill sees the persisted first toggle:
	// both count as known, so the live score rises by another 4 relative
	// to a single-toggle run (one more know, one fewer practice).
	cmd = exec.Command(binaryPath, "toggle",
		"--skill", "DSA", "--confidence", "know", "--store", storePath)
	output, err = cmd.CombinedOutput()
	require.NoError(t, err, "second toggle: %s", string(output))
	assert.Contains(t, string(output), "DSA → know; live score")
}
