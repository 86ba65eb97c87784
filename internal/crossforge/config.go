package crossforge

import (
	"bufio"
	"os"
	"strings"
)

// Config struct
type Config struct {
	Values        map[string]string
	Targets       []Triple
	DefaultStrip  bool
	ArchiveFormat string
}

// Targets built when the config does not name its own list. The two Linux
// triples are the ones shipped in release archives.
var defaultTargets = []string{
	"x86_64-unknown-linux-gnu",
	"aarch64-unknown-linux-gnu",
}

// Load crossforge.conf from the project root and apply defaults
func loadConfig(path string) (*Config, error) {
	cfg := &Config{Values: make(map[string]string)}

	// Attempt to read the file
	file, err := os.Open(path)
	if err == nil {
		defer file.Close()
		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			parts := strings.SplitN(line, "=", 2)
			if len(parts) != 2 {
				continue
			}
			key := strings.TrimSpace(parts[0])
			val := strings.TrimSpace(parts[1])
			val = strings.Trim(val, `"'`)
			cfg.Values[key] = val
		}
		if err := scanner.Err(); err != nil {
			return cfg, err
		}
	}

	// Merge CROSSFORGE_* env overrides
	mergeEnvOverrides(cfg)

	return cfg, nil
}

// Merge CROSSFORGE_* env overrides
func mergeEnvOverrides(cfg *Config) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "CROSSFORGE_") {
			parts := strings.SplitN(env, "=", 2)
			if len(parts) == 2 {
				cfg.Values[parts[0]] = parts[1]
			}
		}
	}
}

func initConfig(cfg *Config) {
	OutputDir = cfg.Values["CROSSFORGE_OUTPUT_DIR"]
	if OutputDir == "" {
		OutputDir = "release"
	}

	TargetRoot = cfg.Values["CROSSFORGE_TARGET_DIR"]
	if TargetRoot == "" {
		TargetRoot = "target"
	}

	Debug = cfg.Values["CROSSFORGE_DEBUG"] == "1"

	cfg.DefaultStrip = true
	if cfg.Values["CROSSFORGE_STRIP"] == "0" {
		cfg.DefaultStrip = false
	}

	cfg.ArchiveFormat = cfg.Values["CROSSFORGE_ARCHIVE_FORMAT"]
	if cfg.ArchiveFormat == "" {
		cfg.ArchiveFormat = "gz"
	}

	// Target list: comma or whitespace separated triples. The order is
	// preserved; builds run in exactly this sequence.
	rawTargets := cfg.Values["CROSSFORGE_TARGETS"]
	var names []string
	if rawTargets != "" {
		names = strings.FieldsFunc(rawTargets, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
	} else {
		names = defaultTargets
	}
	cfg.Targets = cfg.Targets[:0]
	for _, n := range names {
		if n == "" {
			continue
		}
		cfg.Targets = append(cfg.Targets, ParseTriple(n))
	}

	// Binary name: explicit override first, Cargo.toml package name later
	// once the project root is known.
	BinName = cfg.Values["CROSSFORGE_BIN"]
}
