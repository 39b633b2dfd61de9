package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_PrintsFourLabeledTimings(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-verify", "24", "3"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 5)
	for i, label := range []string{labelSeq, labelPar, labelSeqT, labelParT} {
		assert.Truef(t, strings.HasPrefix(lines[i], label+": "), "line %d: %q", i, lines[i])
		assert.True(t, strings.HasSuffix(lines[i], " seconds"))
	}
	assert.Equal(t, "Verification: all variants identical", lines[4])
}

func TestRun_MultipleTrials(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-trials", "2", "-seed", "7", "8", "2"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	out := stdout.String()
	assert.Contains(t, out, labelPar+" [1]: ")
	assert.Contains(t, out, labelParT+" average over 2 trials: ")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 4*3)
}

func TestRun_WrongArgumentCount(t *testing.T) {
	for _, args := range [][]string{nil, {"10"}, {"10", "2", "3"}} {
		var stdout, stderr bytes.Buffer
		assert.Equal(t, 1, run(args, &stdout, &stderr))
		assert.Equal(t, msgArgsCount+"\n", stdout.String())
	}
}

func TestRun_BadNumbers(t *testing.T) {
	for _, args := range [][]string{{"x", "2"}, {"0", "2"}, {"10", "-1"}, {"10", "0"}, {"-trials", "0", "4", "1"}} {
		var stdout, stderr bytes.Buffer
		assert.Equal(t, 1, run(args, &stdout, &stderr), args)
		assert.Contains(t, stderr.String(), "Error:")
	}
}

func TestRun_Verbose(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"-v", "6", "2"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "matmul: start")
	assert.Contains(t, stderr.String(), "schedule: fork")
}
