package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_WritesTrialsAndImage(t *testing.T) {
	out := filepath.Join(t.TempDir(), "m.pgm")
	var stdout, stderr bytes.Buffer
	code := run([]string{"-width", "32", "-height", "24", "-trials", "3", "-check", "-out", out}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 4)
	for k := 0; k < 3; k++ {
		assert.Truef(t, strings.HasPrefix(lines[k], "Execution time of trial ["), "line %d: %q", k, lines[k])
		assert.True(t, strings.HasSuffix(lines[k], " seconds"))
	}
	assert.True(t, strings.HasPrefix(lines[3], "The average execution time of 3 trials is: "))
	assert.True(t, strings.HasSuffix(lines[3], " ms"))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "P2\n32 24\n255\n"))
}

func TestRun_VerboseLogsToStderr(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-width", "8", "-height", "4", "-trials", "1", "-out", "", "-v", "-policy", "static"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stderr.String(), "schedule: fork")
	assert.Contains(t, stderr.String(), "policy=static")
}

func TestRun_BadFlags(t *testing.T) {
	cases := [][]string{
		{"-policy", "guided"},
		{"-maxiter", "0"},
		{"-trials", "0"},
		{"-chunk", "0"},
		{"-out", "m.jpg"},
		{"extra"},
		{"-nope"},
	}
	for _, args := range cases {
		var stdout, stderr bytes.Buffer
		assert.Equal(t, 2, run(args, &stdout, &stderr), args)
		assert.Empty(t, stdout.String())
	}
}

func TestRun_BadDimensions(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"-width", "0", "-out", ""}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Error:")
}
