package platzhalter

import (
	"net/url"
	"strconv"
	"testing"
)

func mustSpec(t *testing.T, dims string, query url.Values) *RequestSpec {
	t.Helper()
	spec, err := ParseRequestSpec(dims, query)
	if err != nil {
		t.Fatalf("ParseRequestSpec(%q) failed: %v", dims, err)
	}
	return spec
}

func TestFingerprintDeterministic(t *testing.T) {
	q := url.Values{"bg": {"336699"}, "br": {"000"}, "br_s": {"4"}}
	a := mustSpec(t, "400x300", q).Fingerprint()
	b := mustSpec(t, "400x300", q).Fingerprint()
	if a != b {
		t.Errorf("identical specs fingerprint differently: %d != %d", a, b)
	}
	if a != mustSpec(t, "400x300", q).Fingerprint() {
		t.Error("fingerprint not stable across repeated computation")
	}
}

func TestFingerprintPresenceSensitive(t *testing.T) {
	absent := mustSpec(t, "400x300", url.Values{}).Fingerprint()
	zero := mustSpec(t, "400x300", url.Values{"br_s": {"0"}}).Fingerprint()
	if absent == zero {
		t.Error("br_s absent and br_s=0 must fingerprint differently")
	}

	// Explicitly requesting the default background is not the same request
	// as omitting it.
	explicitDefault := mustSpec(t, "400x300", url.Values{"bg": {"FFD8C2"}}).Fingerprint()
	if absent == explicitDefault {
		t.Error("bg absent and bg=FFD8C2 must fingerprint differently")
	}
}

func TestFingerprintSensitivity(t *testing.T) {
	base := mustSpec(t, "400x300", url.Values{}).Fingerprint()
	variants := []*RequestSpec{
		mustSpec(t, "400x301", url.Values{}),
		mustSpec(t, "400x300", url.Values{"bg": {"fff"}}),
		mustSpec(t, "400x300", url.Values{"br": {"fff"}}),
		mustSpec(t, "400x300", url.Values{"br_s": {"1"}}),
	}
	for _, v := range variants {
		if v.Fingerprint() == base {
			t.Errorf("variant %+v collides with the base request", v)
		}
	}
}

func TestFingerprintString(t *testing.T) {
	fp := mustSpec(t, "400x300", url.Values{}).Fingerprint()
	n, err := strconv.ParseUint(fp.String(), 10, 64)
	if err != nil {
		t.Fatalf("String() is not decimal: %v", err)
	}
	if Fingerprint(n) != fp {
		t.Errorf("round-trip = %d, want %d", n, fp)
	}
}
