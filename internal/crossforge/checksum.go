package crossforge

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const manifestName = "checksums.txt"

// ChecksumEntry is one line of the manifest: a SHA-256 digest paired with
// the artifact filename it was computed over.
type ChecksumEntry struct {
	Digest string
	Name   string
}

func (e ChecksumEntry) String() string {
	return fmt.Sprintf("%s  %s", e.Digest, e.Name)
}

// generateManifest hashes every artifact in outputDir whose name carries
// the binary-name prefix and writes one line per file to checksums.txt,
// replacing any prior manifest. Artifact names are sorted first so the
// manifest is identical across platforms and runs. A file that cannot be
// hashed is logged and omitted; it never aborts the batch.
func generateManifest(outputDir, binName string, host HostEnvironment, exe *Executor) ([]ChecksumEntry, error) {
	printStatus("Creating checksums...")

	dirEntries, err := os.ReadDir(outputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", outputDir, err)
	}

	var names []string
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		if strings.HasPrefix(de.Name(), binName+"-") {
			names = append(names, de.Name())
		}
	}
	sort.Strings(names)

	var entries []ChecksumEntry
	for _, name := range names {
		digest, err := sha256File(filepath.Join(outputDir, name), host, exe)
		if err != nil {
			printError("Failed to hash %s: %v", name, err)
			continue
		}
		entries = append(entries, ChecksumEntry{Digest: digest, Name: name})
	}

	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e.String())
		sb.WriteString("\n")
	}
	manifestPath := filepath.Join(outputDir, manifestName)
	if err := os.WriteFile(manifestPath, []byte(sb.String()), 0o644); err != nil {
		return entries, fmt.Errorf("failed to write %s: %w", manifestPath, err)
	}
	return entries, nil
}

// sha256File prefers the host's native hashing tool, matching what release
// consumers will run to verify: sha256sum on Unix hosts, PowerShell
// Get-FileHash on Windows. When neither is available the digest is
// computed in-process.
func sha256File(path string, host HostEnvironment, exe *Executor) (string, error) {
	if host.OS == "windows" && host.HasTool("powershell") {
		res, err := exe.Capture("powershell", "-Command",
			fmt.Sprintf("Get-FileHash '%s' -Algorithm SHA256 | Select-Object -ExpandProperty Hash", path))
		if err == nil && res.ExitCode == 0 {
			return strings.TrimSpace(res.Stdout), nil
		}
		debugf("Get-FileHash failed for %s, falling back: %v\n", path, err)
	} else if host.HasTool("sha256sum") {
		res, err := exe.Capture("sha256sum", path)
		if err == nil && res.ExitCode == 0 {
			fields := strings.Fields(res.Stdout)
			if len(fields) > 0 {
				return fields[0], nil
			}
		}
		debugf("sha256sum failed for %s, falling back: %v\n", path, err)
	}

	// Fallback: internal Go SHA-256
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
