package crossforge

import (
	"os"
	"path/filepath"
	"testing"
)

func TestArchiveRelease_RoundTrip(t *testing.T) {
	for _, format := range []string{"gz", "xz", "zst"} {
		t.Run(format, func(t *testing.T) {
			dir := t.TempDir()
			writeArtifact(t, dir, "demo-x86_64-unknown-linux-gnu", "binary one")
			writeArtifact(t, dir, "demo-aarch64-unknown-linux-gnu", "binary two")

			archivePath, err := archiveRelease(dir, "demo", format)
			if err != nil {
				t.Fatalf("archiveRelease failed: %v", err)
			}
			if filepath.Base(archivePath) != "demo-release.tar."+format {
				t.Errorf("archive name = %q", archivePath)
			}

			extractDir := t.TempDir()
			if err := extractArchive(archivePath, extractDir); err != nil {
				t.Fatalf("extractArchive failed: %v", err)
			}

			got, err := os.ReadFile(filepath.Join(extractDir, "demo-x86_64-unknown-linux-gnu"))
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != "binary one" {
				t.Errorf("extracted content = %q", got)
			}
		})
	}
}

func TestArchiveRelease_RejectsUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, "demo-x86_64-unknown-linux-gnu", "bytes")
	if _, err := archiveRelease(dir, "demo", "7z"); err == nil {
		t.Fatal("expected an error for an unsupported format")
	}
}

func TestArchiveRelease_EmptyDirIsAnError(t *testing.T) {
	if _, err := archiveRelease(t.TempDir(), "demo", "gz"); err == nil {
		t.Fatal("expected an error when there is nothing to archive")
	}
}
