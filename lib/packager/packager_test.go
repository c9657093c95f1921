package packager

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteLayout(t *testing.T) {
	s := NewStaging(t.TempDir())
	err := Write(s, "global.css", "body{}", []byte("assemble: []\n"))
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(s.Dir, "assets", "global.css"))
	require.NoError(t, err)
	require.Equal(t, "body{}", string(content))

	doc, err := os.ReadFile(filepath.Join(s.Dir, "client-extension.yaml"))
	require.NoError(t, err)
	require.Equal(t, "assemble: []\n", string(doc))
}

func TestWriteOverwritesPriorRun(t *testing.T) {
	s := NewStaging(t.TempDir())
	require.NoError(t, Write(s, "global.css", "first", []byte("a")))
	require.NoError(t, Write(s, "global.js", "second", []byte("b")))

	// the css file from the first run is still there; the manifest
	// now belongs to the second run
	_, err := os.Stat(filepath.Join(s.AssetsDir(), "global.css"))
	require.NoError(t, err)
	doc, err := os.ReadFile(s.ManifestPath())
	require.NoError(t, err)
	require.Equal(t, "b", string(doc))
}

func TestArchive(t *testing.T) {
	s := NewStaging(t.TempDir())
	require.NoError(t, Write(s, "global.js", "var a;", []byte("doc")))

	path, err := Archive(s, "global.js", "my-site-js")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(s.Root, "my-site-js.zip"), path)

	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	names := make(map[string]bool)
	for _, f := range r.File {
		names[f.Name] = true
	}
	require.True(t, names["assets/global.js"])
	require.True(t, names["client-extension.yaml"])

	// staging tree is gone after archiving
	_, err = os.Stat(s.Dir)
	require.True(t, os.IsNotExist(err))
}

func TestCleanupIdempotent(t *testing.T) {
	s := NewStaging(t.TempDir())
	require.NoError(t, Cleanup(s))
	require.NoError(t, Cleanup(s))
}
