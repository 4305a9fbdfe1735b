package curve

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lehigh-university-libraries/lcscores/internal/resultfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
}

func TestBuildIndex(t *testing.T) {
	tests := []struct {
		name     string
		files    []string
		expected RankTable
	}{
		{
			name: "full follows highest observed rank",
			files: []string{
				"wsj.a.1.2.m1.learningcurve0008.out",
				"wsj.a.1.2.m1.learningcurve0064.out",
				"wsj.a.1.2.m2.learningcurve0064.out",
				"wsj.a.1.2.m1.full.out",
			},
			expected: RankTable{
				"wsj": {"learningcurve0008": 0, "learningcurve0064": 3, Full: 4},
			},
		},
		{
			name:  "corpus with only full runs",
			files: []string{"brown.a.1.2.m1.full.out", "brown.a.3.4.m2.full.out"},
			expected: RankTable{
				"brown": {Full: 1},
			},
		},
		{
			name:  "smallest label alone",
			files: []string{"brown.a.1.2.m1.learningcurve0008.out"},
			expected: RankTable{
				"brown": {"learningcurve0008": 0, Full: 1},
			},
		},
		{
			name: "corpora are ranked independently",
			files: []string{
				"wsj.a.1.2.m1.learningcurve1024.out",
				"brown.a.1.2.m1.learningcurve0016.out",
				"brown.a.1.2.m1.learningcurve0032.out",
			},
			expected: RankTable{
				"wsj":   {"learningcurve1024": 7, Full: 8},
				"brown": {"learningcurve0016": 1, "learningcurve0032": 2, Full: 3},
			},
		},
		{
			name:     "empty directory",
			expected: RankTable{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			touch(t, dir, tt.files...)

			table, err := BuildIndex(context.Background(), dir)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, table)
		})
	}
}

func TestBuildIndexSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "wsj.a.1.2.m1.learningcurve0032.out")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))

	table, err := BuildIndex(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, RankTable{"wsj": {"learningcurve0032": 2, Full: 3}}, table)
}

func TestBuildIndexErrors(t *testing.T) {
	t.Run("unknown label", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, dir, "wsj.a.1.2.m1.learningcurve2048.out")

		_, err := BuildIndex(context.Background(), dir)
		require.ErrorIs(t, err, ErrUnknownLabel)
		assert.Contains(t, err.Error(), "learningcurve2048")
		assert.Contains(t, err.Error(), "wsj")
	})

	t.Run("malformed filename", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, dir, "notes.txt")

		_, err := BuildIndex(context.Background(), dir)
		require.ErrorIs(t, err, resultfile.ErrMalformedFilename)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := BuildIndex(context.Background(), filepath.Join(t.TempDir(), "missing"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("canceled context", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, dir, "wsj.a.1.2.m1.full.out")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := BuildIndex(ctx, dir)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestRankTableLookup(t *testing.T) {
	table := RankTable{"wsj": {"learningcurve0008": 0, Full: 1}}

	rank, err := table.Lookup("wsj", Full)
	require.NoError(t, err)
	assert.Equal(t, 1, rank)

	_, err = table.Lookup("brown", Full)
	require.ErrorIs(t, err, ErrUnknownCorpusOrLabel)
	assert.Contains(t, err.Error(), "brown")

	_, err = table.Lookup("wsj", "learningcurve0016")
	require.ErrorIs(t, err, ErrUnknownCorpusOrLabel)
	assert.Contains(t, err.Error(), "learningcurve0016")
}

func TestRankTableCorpora(t *testing.T) {
	table := RankTable{"wsj": {Full: 1}, "brown": {Full: 1}, "atis": {Full: 1}}
	assert.Equal(t, []string{"atis", "brown", "wsj"}, table.Corpora())
}
