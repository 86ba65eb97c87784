package crossforge

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const cargoManifestName = "Cargo.toml"

type cargoManifest struct {
	Package struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"package"`
}

// inProjectRoot reports whether the working directory carries a Cargo.toml.
// Its absence is a fatal precondition: nothing else runs without it.
func inProjectRoot(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, cargoManifestName))
	return err == nil
}

// readCargoManifest parses Cargo.toml to learn the package name, which is
// the binary filename cargo emits under target/<triple>/release/.
func readCargoManifest(dir string) (cargoManifest, error) {
	var m cargoManifest
	if _, err := toml.DecodeFile(filepath.Join(dir, cargoManifestName), &m); err != nil {
		return m, fmt.Errorf("failed to parse %s: %w", cargoManifestName, err)
	}
	if m.Package.Name == "" {
		return m, fmt.Errorf("%s has no [package] name", cargoManifestName)
	}
	return m, nil
}
