package crossforge

// verifyToolchain probes rustc and cargo by running their version queries.
// Either one missing or erroring makes the whole batch pointless, so the
// caller aborts when this returns false.
func verifyToolchain(exe *Executor) bool {
	if _, err := exe.Run("rustc", "--version"); err != nil {
		printError("Rust is not installed. Please install Rust from https://rustup.rs/")
		return false
	}
	if _, err := exe.Run("cargo", "--version"); err != nil {
		printError("cargo is not available. Please install Rust from https://rustup.rs/")
		return false
	}
	return true
}

// installTargets adds every configured cross-compilation target through
// rustup. Failure propagates: building against a target rustup could not
// install would only fail later with a worse message.
func installTargets(exe *Executor, targets []Triple) error {
	for _, t := range targets {
		printStatus("Installing target: %s", t)
		if _, err := exe.Run("rustup", "target", "add", t.String()); err != nil {
			return err
		}
	}
	return nil
}
