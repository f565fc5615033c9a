package prime

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/mod/semver"
)

// Version information for the pico-prime benchmark.
const (
	// Version is the current version of the benchmark runtime.
	Version = "1.0.0"

	// VersionMajor is the major version number.
	VersionMajor = 1

	// VersionMinor is the minor version number.
	VersionMinor = 0

	// VersionPatch is the patch version number.
	VersionPatch = 0
)

// Info provides runtime information about the benchmark.
type Info struct {
	// Version is the runtime version string.
	Version string

	// Algorithm is the prime-generation algorithm used.
	Algorithm string

	// Capacity is the reference prime count per trial.
	Capacity int
}

// GetInfo returns information about the benchmark runtime.
//
// Example:
//
//	info := prime.GetInfo()
//	fmt.Printf("pico-prime %s (%s)\n", info.Version, info.Algorithm)
func GetInfo() Info {
	return Info{
		Version:   Version,
		Algorithm: "incremental trial division",
		Capacity:  DefaultCapacity,
	}
}

// AtLeast reports whether the runtime version is min or newer.
//
// min accepts plain ("1.2.0") or v-prefixed ("v1.2.0") semver. Scripts
// that parse the report lines pin a minimum version with it before
// trusting the output format:
//
//	ok, err := prime.AtLeast("1.0.0")
//
// Returns an error when min is not valid semver.
func AtLeast(min string) (bool, error) {
	min = canonical(min)
	if !semver.IsValid(min) {
		return false, errors.Errorf("invalid version %q", min)
	}
	return semver.Compare(canonical(Version), min) >= 0, nil
}

// canonical normalizes to the v-prefixed form the semver package
// requires.
func canonical(v string) string {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
