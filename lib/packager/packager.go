// Package packager lays generated files out on disk and bundles them
// into the distributable archive.
package packager

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"

	"pagepack/lib/manifest"
)

// Staging is the per-run staging context. Callers decide whether runs
// share a staging tree; nothing in here reaches for global paths.
type Staging struct {
	// directory the archive is written into
	Root string
	// transient directory holding generated files before archiving
	Dir string
}

func NewStaging(root string) Staging {
	return Staging{Root: root, Dir: filepath.Join(root, "temp")}
}

func (s Staging) AssetsDir() string {
	return filepath.Join(s.Dir, "assets")
}

func (s Staging) ManifestPath() string {
	return filepath.Join(s.Dir, manifest.FileName)
}

// Write stores the merged content under the staging assets directory
// and the manifest document at the staging root, creating directories
// as needed.
func Write(s Staging, outputFile, content string, manifestDoc []byte) error {
	if err := os.MkdirAll(s.AssetsDir(), 0o755); err != nil {
		return fmt.Errorf("create staging tree: %w", err)
	}
	contentPath := filepath.Join(s.AssetsDir(), outputFile)
	if err := os.WriteFile(contentPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outputFile, err)
	}
	if err := os.WriteFile(s.ManifestPath(), manifestDoc, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// Archive zips the staged files into <root>/<technicalId>.zip with the
// content under an assets/ entry and the manifest at the archive root,
// then removes the staging tree. Returns the archive path.
func Archive(s Staging, outputFile, technicalId string) (string, error) {
	archivePath := filepath.Join(s.Root, technicalId+".zip")
	f, err := os.Create(archivePath)
	if err != nil {
		return "", fmt.Errorf("create archive: %w", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	entries := map[string]string{
		filepath.ToSlash(filepath.Join("assets", outputFile)): filepath.Join(s.AssetsDir(), outputFile),
		manifest.FileName: s.ManifestPath(),
	}
	for name, src := range entries {
		data, err := os.ReadFile(src)
		if err != nil {
			return "", fmt.Errorf("read staged file %s: %w", src, err)
		}
		entry, err := w.Create(name)
		if err != nil {
			return "", fmt.Errorf("add archive entry %s: %w", name, err)
		}
		if _, err := entry.Write(data); err != nil {
			return "", fmt.Errorf("write archive entry %s: %w", name, err)
		}
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize archive: %w", err)
	}

	if err := Cleanup(s); err != nil {
		return "", err
	}
	return archivePath, nil
}

// Cleanup tears down the staging tree. A missing tree is fine.
func Cleanup(s Staging) error {
	err := os.RemoveAll(s.Dir)
	if err != nil {
		return fmt.Errorf("remove staging tree: %w", err)
	}
	return nil
}
