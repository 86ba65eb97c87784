package crossforge

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeArtifact(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o755); err != nil {
		t.Fatal(err)
	}
}

func TestGenerateManifest_OneEntryPerArtifact(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, "demo-x86_64-unknown-linux-gnu", "binary one")
	writeArtifact(t, dir, "demo-aarch64-unknown-linux-gnu", "binary two")
	writeArtifact(t, dir, "unrelated.txt", "not an artifact")

	entries, err := generateManifest(dir, "demo", HostEnvironment{OS: "linux"}, newTestExecutor(t))
	if err != nil {
		t.Fatalf("generateManifest failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	data, err := os.ReadFile(filepath.Join(dir, manifestName))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("manifest has %d lines, want 2:\n%s", len(lines), data)
	}
	// Sorted by name, so aarch64 first.
	if !strings.HasSuffix(lines[0], "  demo-aarch64-unknown-linux-gnu") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "  demo-x86_64-unknown-linux-gnu") {
		t.Errorf("second line = %q", lines[1])
	}
}

func TestGenerateManifest_DigestsMatchSHA256(t *testing.T) {
	dir := t.TempDir()
	content := "deterministic content"
	writeArtifact(t, dir, "demo-x86_64-unknown-linux-gnu", content)

	entries, err := generateManifest(dir, "demo", HostEnvironment{OS: "linux"}, newTestExecutor(t))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries", len(entries))
	}
	want := fmt.Sprintf("%x", sha256.Sum256([]byte(content)))
	if entries[0].Digest != want {
		t.Errorf("digest = %s, want %s", entries[0].Digest, want)
	}
}

func TestGenerateManifest_InternalFallbackMatchesSystemTool(t *testing.T) {
	dir := t.TempDir()
	content := "same bytes either way"
	writeArtifact(t, dir, "demo-x86_64-unknown-linux-gnu", content)

	first, err := generateManifest(dir, "demo", HostEnvironment{OS: "linux"}, newTestExecutor(t))
	if err != nil {
		t.Fatal(err)
	}

	// Empty out PATH so sha256sum disappears and the in-process hash runs.
	t.Setenv("PATH", dir)
	second, err := generateManifest(dir, "demo", HostEnvironment{OS: "linux"}, newTestExecutor(t))
	if err != nil {
		t.Fatal(err)
	}

	if len(first) != 1 || len(second) != 1 || first[0] != second[0] {
		t.Errorf("fallback digest diverged: %v vs %v", first, second)
	}
}

func TestGenerateManifest_RerunIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, "demo-x86_64-unknown-linux-gnu", "one")
	writeArtifact(t, dir, "demo-aarch64-unknown-linux-gnu", "two")

	if _, err := generateManifest(dir, "demo", HostEnvironment{OS: "linux"}, newTestExecutor(t)); err != nil {
		t.Fatal(err)
	}
	firstData, err := os.ReadFile(filepath.Join(dir, manifestName))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := generateManifest(dir, "demo", HostEnvironment{OS: "linux"}, newTestExecutor(t)); err != nil {
		t.Fatal(err)
	}
	secondData, err := os.ReadFile(filepath.Join(dir, manifestName))
	if err != nil {
		t.Fatal(err)
	}

	if string(firstData) != string(secondData) {
		t.Errorf("manifest not stable across reruns:\n%s\nvs\n%s", firstData, secondData)
	}
}

func TestGenerateManifest_TruncatesPriorManifest(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, "demo-x86_64-unknown-linux-gnu", "bytes")
	if err := os.WriteFile(filepath.Join(dir, manifestName), []byte("stale line\nstale line\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := generateManifest(dir, "demo", HostEnvironment{OS: "linux"}, newTestExecutor(t)); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, manifestName))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "stale") {
		t.Error("old manifest content survived the rewrite")
	}
	if got := strings.Count(string(data), "\n"); got != 1 {
		t.Errorf("manifest has %d lines, want 1", got)
	}
}
