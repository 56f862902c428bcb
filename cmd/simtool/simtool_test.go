package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestPlanPrintsBothPlanners(t *testing.T) {
	out, err := execute(t, "plan", "--seed", "7", "--events", "1")

	require.NoError(t, err)
	assert.Contains(t, out, "event: ")
	assert.Contains(t, out, "nearest_neighbor: distance=")
	assert.Contains(t, out, "ai_heuristic: distance=")
	assert.Contains(t, out, "D")
}

func TestPlanIsDeterministicForSeed(t *testing.T) {
	first, err := execute(t, "plan", "--seed", "11")
	require.NoError(t, err)

	second, err := execute(t, "plan", "--seed", "11")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPlanRejectsInvalidPointCount(t *testing.T) {
	_, err := execute(t, "plan", "--points", "500")

	assert.Error(t, err)
}

func TestRunCompletes(t *testing.T) {
	out, err := execute(t, "run", "--seed", "3", "--points", "2", "--tick", "2ms", "--timeout", "10s")

	require.NoError(t, err)
	assert.Contains(t, out, "delivered: ")
	assert.Contains(t, out, "completed in ")
}
