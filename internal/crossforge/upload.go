package crossforge

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// handleUploadCommand implements 'crossforge upload': push every release
// artifact plus the checksum manifest to the configured bucket, optionally
// under a version prefix.
func handleUploadCommand(args []string, cfg *Config, exe *Executor) error {
	ctx := exe.Context

	prefix := ""
	for i := 0; i < len(args); i++ {
		if (args[i] == "--prefix" || args[i] == "-p") && i+1 < len(args) {
			prefix = strings.Trim(args[i+1], "/")
			i++
		}
	}

	client, err := NewStorageClient(cfg)
	if err != nil {
		return err
	}

	printStatus("Scanning local artifacts in %s", OutputDir)
	localFiles, err := filepath.Glob(filepath.Join(OutputDir, BinName+"-*"))
	if err != nil {
		return err
	}
	if manifest := filepath.Join(OutputDir, manifestName); fileExists(manifest) {
		localFiles = append(localFiles, manifest)
	}
	if len(localFiles) == 0 {
		return fmt.Errorf("no artifacts in %s; run a build first", OutputDir)
	}
	sort.Strings(localFiles)

	var uploadedCount int
	for _, path := range localFiles {
		key := filepath.Base(path)
		if prefix != "" {
			key = prefix + "/" + key
		}
		printStatus("Uploading: %s", key)
		if err := client.UploadLocalFile(ctx, key, path); err != nil {
			return fmt.Errorf("failed to upload %s: %w", key, err)
		}
		uploadedCount++
	}
	printSuccess("Uploaded %d files.", uploadedCount)

	// Storage Reporting
	printStatus("Calculating storage usage")
	allObjects, err := client.ListObjects(ctx, "")
	if err == nil {
		var totalSize int64
		for _, obj := range allObjects {
			totalSize += obj.Size
		}
		colArrow.Print("-> ")
		colSuccess.Printf("Storage used: ")
		colNote.Printf("%s across %d objects\n", humanReadableSize(totalSize), len(allObjects))
	}

	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
