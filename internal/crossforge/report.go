package crossforge

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// reportResults prints every file in the release directory with its size,
// then the checksum manifest if one was written. Purely observational.
func reportResults(outputDir string) {
	printSuccess("Build completed successfully!")
	printStatus("Release artifacts:")

	dirEntries, err := os.ReadDir(outputDir)
	if err != nil {
		printError("Failed to read %s: %v", outputDir, err)
		return
	}
	sort.Slice(dirEntries, func(i, j int) bool {
		return dirEntries[i].Name() < dirEntries[j].Name()
	})

	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		info, err := de.Info()
		if err != nil {
			continue
		}
		sizeMB := float64(info.Size()) / (1024 * 1024)
		fmt.Printf("  %s: %.2f MB\n", de.Name(), sizeMB)
	}

	printStatus("Checksums:")
	data, err := os.ReadFile(filepath.Join(outputDir, manifestName))
	if err == nil {
		fmt.Print(string(data))
	}
}
