package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/deptbrain"
	main "github.com/fwojciec/deptbrain/cmd/deptbrain"
)

const testFacultyJSON = `[
  {
    "id": "f1",
    "name": "Dr. Asha Menon",
    "subjects": ["DBMS", "Operating Systems"],
    "semesters": [3, 4],
    "cabin": "A-201",
    "availability": "Mon-Fri 10:00-16:00"
  },
  {
    "id": "f2",
    "name": "Prof. Rohan Kulkarni",
    "subjects": ["Statistics"],
    "semesters": [6],
    "cabin": "B-104",
    "availability": "Tue-Thu 11:00-15:00"
  }
]`

// testConfig returns a config rooted in a temp directory. The faculty file
// is written; the notes file is left absent because notes are optional.
func testConfig(t *testing.T) *deptbrain.Config {
	t.Helper()

	dir := t.TempDir()
	config := deptbrain.DefaultConfig()
	config.VectorDBPath = filepath.Join(dir, "vectors.db")
	config.FacultyFile = filepath.Join(dir, "faculty.json")
	config.NotesFile = filepath.Join(dir, "department_notes.json")
	require.NoError(t, os.WriteFile(config.FacultyFile, []byte(testFacultyJSON), 0644))
	return &config
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("answers a structured question end to end", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Config = testConfig(t)

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		err := m.Run(context.Background(), []string{"ask", "Where is Dr. Asha Menon?"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Dr. Asha Menon is in cabin A-201.")
		assert.Contains(t, stdout.String(), "route: structured")
		assert.Contains(t, stderr.String(), "question answered")
	})

	t.Run("help shows kong output", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Config = testConfig(t)

		stdout := &bytes.Buffer{}
		err := m.Run(context.Background(), []string{"--help"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		helpOutput := stdout.String()
		for _, cmd := range []string{"serve", "ingest", "ask"} {
			assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
		}
		assert.Contains(t, helpOutput, "Usage:", "Help should have Kong-style Usage prefix")
	})

	t.Run("errors when no command specified", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Config = testConfig(t)

		err := m.Run(context.Background(), []string{}, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("rejects an unknown command", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Config = testConfig(t)

		err := m.Run(context.Background(), []string{"bogus"}, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
	})

	t.Run("rejects an invalid configuration", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		config := testConfig(t)
		config.TopK = 0
		m.Config = config

		err := m.Run(context.Background(), []string{"ask", "Where is Dr. Asha Menon?"}, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "TOP_K")
	})

	t.Run("errors when the faculty file is missing", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		config := testConfig(t)
		config.FacultyFile = filepath.Join(t.TempDir(), "missing.json")
		m.Config = config

		stderr := &bytes.Buffer{}
		err := m.Run(context.Background(), []string{"ask", "Where is Dr. Asha Menon?"}, &bytes.Buffer{}, stderr)

		require.Error(t, err)
		assert.Equal(t, deptbrain.ENOTFOUND, deptbrain.ErrorCode(err))
		assert.Contains(t, stderr.String(), "Hint: Set FACULTY_FILE")
	})
}
