package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/internacia/dataset/errors"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadDir(t *testing.T) {
	t.Run("lexical path order across subdirectories", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "unions/eu.yaml", "id: EU\nname: European Union\n")
		writeFile(t, dir, "alliances/nato.yaml", "id: NATO\nname: NATO\n")
		writeFile(t, dir, "un.yaml", "id: UN\nname: United Nations\n")

		batch, err := LoadDir(dir)
		require.NoError(t, err)
		require.Len(t, batch.Records, 3)

		var ids []string
		for _, r := range batch.Records {
			id, _ := r.Get("id")
			ids = append(ids, id.(string))
		}
		assert.Equal(t, []string{"NATO", "EU", "UN"}, ids)
	})

	t.Run("skips empty documents silently", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.yaml", "id: A\n")
		writeFile(t, dir, "empty.yaml", "")
		writeFile(t, dir, "null.yaml", "null\n")

		batch, err := LoadDir(dir)
		require.NoError(t, err)
		assert.Len(t, batch.Records, 1)
		assert.Empty(t, batch.Failures)
	})

	t.Run("malformed document is excluded, batch continues", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "bad.yaml", "id: [unclosed\n")
		writeFile(t, dir, "good.yaml", "id: OK\n")

		batch, err := LoadDir(dir)
		require.NoError(t, err)
		assert.Len(t, batch.Records, 1)
		require.Len(t, batch.Failures, 1)
		assert.Contains(t, batch.Failures[0].Path, "bad.yaml")
	})

	t.Run("non-mapping body is a parse failure", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "list.yaml", "- one\n- two\n")

		batch, err := LoadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, batch.Records)
		require.Len(t, batch.Failures, 1)
		assert.True(t, errors.Is(batch.Failures[0].Err, errors.ErrDocumentParse))
	})

	t.Run("missing directory is a missing-input error", func(t *testing.T) {
		_, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
		assert.True(t, errors.IsMissingInput(err))
	})

	t.Run("ignores non-yaml files", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.yaml", "id: A\n")
		writeFile(t, dir, "README.md", "# not data\n")

		batch, err := LoadDir(dir)
		require.NoError(t, err)
		assert.Len(t, batch.Records, 1)
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("parses a list of records", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "blocktypes.yaml",
			"- id: union\n  name: Union\n- id: treaty\n  name: Treaty\n")

		batch, err := LoadFile(filepath.Join(dir, "blocktypes.yaml"))
		require.NoError(t, err)
		require.Len(t, batch.Records, 2)

		id, _ := batch.Records[0].Get("id")
		assert.Equal(t, "union", id)
	})

	t.Run("non-list body is an error", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "blocktypes.yaml", "id: union\n")

		_, err := LoadFile(filepath.Join(dir, "blocktypes.yaml"))
		assert.Error(t, err)
	})

	t.Run("missing file is a missing-input error", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.True(t, errors.IsMissingInput(err))
	})

	t.Run("null body yields empty batch", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "blocktypes.yaml", "null\n")

		batch, err := LoadFile(filepath.Join(dir, "blocktypes.yaml"))
		require.NoError(t, err)
		assert.Empty(t, batch.Records)
	})
}

func TestCountFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", "id: A\n")
	writeFile(t, dir, "sub/b.yaml", "id: B\n")
	writeFile(t, dir, "notes.txt", "x\n")

	n, err := CountFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestSubdirs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "unions"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "alliances"), 0o755))
	writeFile(t, dir, "loose.yaml", "id: X\n")

	names, err := Subdirs(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"alliances", "unions"}, names)
}
