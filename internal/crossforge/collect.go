package crossforge

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"lukechampine.com/blake3"
)

// Artifact is one collected release binary. Never mutated after creation.
type Artifact struct {
	Path string
	Name string
	Size int64
	Mode os.FileMode
}

// Collector copies built binaries into the flat release directory under
// target-qualified names.
type Collector struct {
	OutputDir string
	BinName   string
	HostOS    string
}

// Collect copies every successfully built binary to
// <OutputDir>/<BinName>-<triple>. A missing source is reported and the
// rest of the batch continues; this step never aborts the run.
func (c *Collector) Collect(results []BuildResult) []Artifact {
	if err := os.MkdirAll(c.OutputDir, 0o755); err != nil {
		printError("Failed to create %s: %v", c.OutputDir, err)
		return nil
	}

	var artifacts []Artifact
	for _, res := range results {
		if res.Status != BuildSucceeded {
			continue
		}

		name := fmt.Sprintf("%s-%s", c.BinName, res.Target)
		dest := filepath.Join(c.OutputDir, name)

		if _, err := os.Stat(res.BinaryPath); err != nil {
			printError("Binary not found: %s", res.BinaryPath)
			continue
		}

		if err := copyFilePreserving(res.BinaryPath, dest); err != nil {
			printError("Failed to copy %s binary: %v", res.Target, err)
			continue
		}

		if c.HostOS != "windows" {
			if err := os.Chmod(dest, 0o755); err != nil {
				printError("Failed to chmod %s: %v", dest, err)
				continue
			}
		}

		if err := verifyCopy(res.BinaryPath, dest); err != nil {
			printError("Copy verification failed for %s: %v", name, err)
			continue
		}

		info, err := os.Stat(dest)
		if err != nil {
			printError("Failed to stat %s: %v", dest, err)
			continue
		}

		printSuccess("Copied %s binary", res.Target)
		artifacts = append(artifacts, Artifact{
			Path: dest,
			Name: name,
			Size: info.Size(),
			Mode: info.Mode(),
		})
	}
	return artifacts
}

// copyFilePreserving copies src to dst, carrying over the modification
// time so the artifact matches what the toolchain produced.
func copyFilePreserving(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}

// verifyCopy confirms the copy is byte-identical to the source by
// comparing BLAKE3 digests.
func verifyCopy(src, dst string) error {
	srcSum, err := blake3File(src)
	if err != nil {
		return err
	}
	dstSum, err := blake3File(dst)
	if err != nil {
		return err
	}
	if srcSum != dstSum {
		return fmt.Errorf("digest mismatch: %s != %s", srcSum, dstSum)
	}
	return nil
}

func blake3File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := blake3.New(32, nil)
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
