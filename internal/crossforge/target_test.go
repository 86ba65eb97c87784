package crossforge

import "testing"

func TestParseTriple_FullTriple(t *testing.T) {
	tr := ParseTriple("x86_64-unknown-linux-gnu")
	if tr.Arch != "x86_64" || tr.Vendor != "unknown" || tr.OS != "linux" || tr.Env != "gnu" {
		t.Errorf("unexpected fields: %+v", tr)
	}
	if tr.String() != "x86_64-unknown-linux-gnu" {
		t.Errorf("String() lost the raw triple: %q", tr.String())
	}
}

func TestParseTriple_OSFallback(t *testing.T) {
	cases := []struct {
		in     string
		wantOS string
	}{
		{"aarch64-unknown-linux-gnu", "linux"},
		{"x86_64-pc-windows-msvc", "windows"},
		{"x86_64-apple-darwin", "darwin"},
		{"wasm32-wasi", "unknown"},
		{"justonefield", "unknown"},
		{"", "unknown"},
	}
	for _, c := range cases {
		if got := ParseTriple(c.in).OS; got != c.wantOS {
			t.Errorf("ParseTriple(%q).OS = %q, want %q", c.in, got, c.wantOS)
		}
	}
}

func TestParseTriple_MultiPartEnv(t *testing.T) {
	tr := ParseTriple("arm-unknown-linux-gnueabi-hf")
	if tr.Env != "gnueabi-hf" {
		t.Errorf("env should keep trailing fields joined, got %q", tr.Env)
	}
}
