package model

import "testing"

// TestParseHashAlgorithm tests conversion from CLI names.
func TestParseHashAlgorithm(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		expected HashAlgorithm
		wantErr  bool
	}{
		{"md5", HashMD5, false},
		{"sha1", HashSHA1, false},
		{"photodna", HashPhotoDNA, false},
		{"MD5", HashMD5, false},
		{" PhotoDNA ", HashPhotoDNA, false},
		{"sha256", HashNone, true},
		{"", HashNone, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseHashAlgorithm(tc.name)
			if tc.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tc.name)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("got %v, expected %v", got, tc.expected)
			}
		})
	}
}

// TestHashAlgorithmFieldName tests the mapping to Project VIC field names.
func TestHashAlgorithmFieldName(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		alg      HashAlgorithm
		expected string
	}{
		{HashMD5, "MD5"},
		{HashSHA1, "SHA1"},
		{HashPhotoDNA, "PhotoDNA"},
		{HashNone, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.alg.String(), func(t *testing.T) {
			t.Parallel()
			if got := tc.alg.FieldName(); got != tc.expected {
				t.Errorf("got %q, expected %q", got, tc.expected)
			}
		})
	}

	if HashNone.IsValid() {
		t.Error("expected HashNone to be invalid")
	}
}

// TestParseFormat tests conversion from CLI format names.
func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, f := range Formats() {
		got, err := ParseFormat(f.String())
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", f, err)
		}
		if got != f {
			t.Errorf("got %v, expected %v", got, f)
		}
	}

	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for unsupported format")
	}

	got, err := ParseFormat("HashOnly")
	if err != nil || got != FormatHashOnly {
		t.Errorf("expected case-insensitive match, got %v (%v)", got, err)
	}
}
