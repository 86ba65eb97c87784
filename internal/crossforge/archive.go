package crossforge

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/klauspost/pgzip"
	"github.com/ulikunitz/xz"
)

// archiveRelease bundles every file in the release directory into one
// compressed tarball next to them, named <bin>-release.tar.<format>.
// Format is one of gz, xz, zst.
func archiveRelease(outputDir, binName, format string) (string, error) {
	dirEntries, err := os.ReadDir(outputDir)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", outputDir, err)
	}

	var names []string
	for _, de := range dirEntries {
		if de.IsDir() || strings.HasSuffix(de.Name(), ".tar."+format) {
			continue
		}
		names = append(names, de.Name())
	}
	if len(names) == 0 {
		return "", fmt.Errorf("nothing to archive in %s", outputDir)
	}
	sort.Strings(names)

	archivePath := filepath.Join(outputDir, fmt.Sprintf("%s-release.tar.%s", binName, format))
	dest, err := os.Create(archivePath)
	if err != nil {
		return "", err
	}
	defer dest.Close()

	var compressor io.WriteCloser
	switch format {
	case "gz":
		compressor = pgzip.NewWriter(dest)
	case "xz":
		compressor, err = xz.NewWriter(dest)
		if err != nil {
			return "", err
		}
	case "zst":
		compressor, err = zstd.NewWriter(dest)
		if err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("unsupported archive format %q (want gz, xz or zst)", format)
	}

	tw := tar.NewWriter(compressor)
	for _, name := range names {
		if err := addFileToTar(tw, filepath.Join(outputDir, name), name); err != nil {
			tw.Close()
			compressor.Close()
			os.Remove(archivePath)
			return "", fmt.Errorf("failed to archive %s: %w", name, err)
		}
	}
	if err := tw.Close(); err != nil {
		return "", err
	}
	if err := compressor.Close(); err != nil {
		return "", err
	}
	return archivePath, nil
}

func addFileToTar(tw *tar.Writer, path, name string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	hdr, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return err
	}
	hdr.Name = name
	if err := tw.WriteHeader(hdr); err != nil {
		return err
	}
	_, err = io.Copy(tw, f)
	return err
}

// extractArchive unpacks a tarball produced by archiveRelease into destDir.
// Mostly useful for verification; the format is inferred from the name.
func extractArchive(archivePath, destDir string) error {
	f, err := os.Open(archivePath)
	if err != nil {
		return err
	}
	defer f.Close()

	var reader io.Reader
	switch {
	case strings.HasSuffix(archivePath, ".tar.gz"):
		gz, err := pgzip.NewReader(f)
		if err != nil {
			return err
		}
		defer gz.Close()
		reader = gz
	case strings.HasSuffix(archivePath, ".tar.xz"):
		xr, err := xz.NewReader(f)
		if err != nil {
			return err
		}
		reader = xr
	case strings.HasSuffix(archivePath, ".tar.zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			return err
		}
		defer zr.Close()
		reader = zr
	default:
		return fmt.Errorf("unrecognized archive %s", archivePath)
	}

	tr := tar.NewReader(reader)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}
		// Entries are flat names written by archiveRelease; refuse
		// anything that tries to escape destDir.
		name := filepath.Base(hdr.Name)
		out, err := os.OpenFile(filepath.Join(destDir, name),
			os.O_CREATE|os.O_WRONLY|os.O_TRUNC, os.FileMode(hdr.Mode))
		if err != nil {
			return err
		}
		if _, err := io.Copy(out, tr); err != nil {
			out.Close()
			return err
		}
		if err := out.Close(); err != nil {
			return err
		}
	}
}
