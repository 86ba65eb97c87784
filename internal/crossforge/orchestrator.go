package crossforge

import (
	"fmt"
)

// runBuild is the full pipeline: precondition checks, toolchain probe,
// target installation, one sequential build per configured target, artifact
// collection, checksum manifest, report. Per-target failures are logged
// and the batch continues; only the preconditions abort the run.
func runBuild(cfg *Config, exe *Executor, host HostEnvironment) error {
	printStatus("Starting cross-platform build process...")

	if !inProjectRoot(".") {
		return fmt.Errorf("no %s found: please run from the project root directory", cargoManifestName)
	}

	unlock, err := acquireRunLock(LockFile)
	if err != nil {
		return err
	}
	defer unlock()

	// Resolve the binary name from Cargo.toml unless the config overrode it.
	if BinName == "" {
		m, err := readCargoManifest(".")
		if err != nil {
			return err
		}
		BinName = m.Package.Name
	}
	debugf("=> Binary name: %s\n", BinName)

	if !verifyToolchain(exe) {
		return fmt.Errorf("toolchain verification failed")
	}

	if err := installTargets(exe, cfg.Targets); err != nil {
		return fmt.Errorf("failed to install targets: %w", err)
	}

	builder := &Builder{
		Exec:       exe,
		BinName:    BinName,
		TargetRoot: TargetRoot,
		Strip:      cfg.DefaultStrip,
	}

	results := make([]BuildResult, 0, len(cfg.Targets))
	for _, t := range cfg.Targets {
		if exe.Context.Err() != nil {
			return fmt.Errorf("build cancelled: %v", exe.Context.Err())
		}
		results = append(results, builder.Build(t, host))
	}

	collector := &Collector{OutputDir: OutputDir, BinName: BinName, HostOS: host.OS}
	artifacts := collector.Collect(results)

	if _, err := generateManifest(OutputDir, BinName, host, exe); err != nil {
		printError("Failed to generate checksum manifest: %v", err)
	}

	reportResults(OutputDir)

	var failed int
	for _, res := range results {
		if res.Status == BuildFailed {
			failed++
		}
	}
	if failed > 0 {
		printWarning("%d of %d targets failed to build; see errors above.", failed, len(results))
	}
	printSuccess("Builds are ready in the %s directory! (%d artifacts)", OutputDir, len(artifacts))
	return nil
}
