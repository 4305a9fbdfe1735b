package cmd

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestRootCommandReport(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "corpusA.x.3.5.modelM.learningcurve0032.y"),
		[]byte("0.91 0.87 0.90 0.88 0.5 0.6 0.7 0.8 0.2 0.3 0.4 0.1\n"),
		0644,
	))

	out, err := runRoot(t, dir)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "model.id,corpus,data.id"))
	assert.Equal(t, "modelM,corpusA,2,3,5,8,0.91,0.87,0.90,0.88,0.5,0.6,0.7,0.8,0.2,0.3,0.4,0.1", lines[1])
}

func TestRootCommandRanks(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wsj.x.1.2.m1.learningcurve0016.y"), nil, 0644))

	out, err := runRoot(t, "ranks", dir)
	require.NoError(t, err)
	assert.Equal(t, "corpus,label,data.id\nwsj,learningcurve0016,1\nwsj,full,2\n", out)
}

func TestRootCommandArgs(t *testing.T) {
	_, err := runRoot(t)
	assert.Error(t, err)

	_, err = runRoot(t, "a", "b")
	assert.Error(t, err)

	_, err = runRoot(t, "--format", "xlsx", t.TempDir())
	assert.ErrorContains(t, err, "invalid format")
}
