package model

import (
	"fmt"
	"strings"
)

// HashAlgorithm identifies one of the hash fields carried by Project VIC records.
type HashAlgorithm int

const (
	// HashNone means no algorithm was selected.
	HashNone HashAlgorithm = iota

	// HashMD5 selects the MD5 field.
	HashMD5

	// HashSHA1 selects the SHA1 field.
	HashSHA1

	// HashPhotoDNA selects the PhotoDNA perceptual hash field.
	HashPhotoDNA
)

// HashAlgorithms returns every selectable algorithm in CLI order.
func HashAlgorithms() []HashAlgorithm {
	return []HashAlgorithm{HashMD5, HashSHA1, HashPhotoDNA}
}

// HashAlgorithmNames returns the CLI names of every selectable algorithm.
func HashAlgorithmNames() []string {
	algs := HashAlgorithms()
	names := make([]string, len(algs))
	for i, alg := range algs {
		names[i] = alg.String()
	}
	return names
}

// ParseHashAlgorithm converts a CLI name (md5, sha1, photodna) to a HashAlgorithm.
// Matching ignores case and surrounding whitespace.
func ParseHashAlgorithm(name string) (HashAlgorithm, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, alg := range HashAlgorithms() {
		if alg.String() == normalized {
			return alg, nil
		}
	}
	return HashNone, fmt.Errorf("unsupported hash algorithm %q (choose from %s)",
		name, strings.Join(HashAlgorithmNames(), ", "))
}

// String returns the CLI name of the algorithm.
func (h HashAlgorithm) String() string {
	switch h {
	case HashMD5:
		return "md5"
	case HashSHA1:
		return "sha1"
	case HashPhotoDNA:
		return "photodna"
	default:
		return ""
	}
}

// FieldName returns the Project VIC record field holding this hash.
func (h HashAlgorithm) FieldName() string {
	switch h {
	case HashMD5:
		return "MD5"
	case HashSHA1:
		return "SHA1"
	case HashPhotoDNA:
		return "PhotoDNA"
	default:
		return ""
	}
}

// IsValid reports whether h is a selectable algorithm.
func (h HashAlgorithm) IsValid() bool {
	return h >= HashMD5 && h <= HashPhotoDNA
}
