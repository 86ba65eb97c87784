package crossforge

import "strings"

// Triple identifies one build target as architecture-vendor-OS-environment,
// e.g. x86_64-unknown-linux-gnu. The raw string is kept verbatim: it is what
// rustup and cargo are handed, and what artifact names are suffixed with.
type Triple struct {
	Arch   string
	Vendor string
	OS     string
	Env    string

	raw string
}

// ParseTriple splits a target triple into its named fields. A triple that
// does not carry at least an arch, vendor and OS token keeps the literal OS
// "unknown" so the skip policy still has something to compare against.
func ParseTriple(s string) Triple {
	t := Triple{raw: s, OS: "unknown"}
	parts := strings.Split(s, "-")
	if len(parts) > 0 {
		t.Arch = parts[0]
	}
	if len(parts) > 1 {
		t.Vendor = parts[1]
	}
	if len(parts) > 2 {
		t.OS = parts[2]
	}
	if len(parts) > 3 {
		t.Env = strings.Join(parts[3:], "-")
	}
	return t
}

func (t Triple) String() string {
	return t.raw
}
