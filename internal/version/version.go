package version

import (
	"fmt"
	"strconv"
	"strings"
)

// FallbackName is reported whenever no tagged version can be derived.
const FallbackName = "0.0.0"

// Version is the version derived from a single git describe output.
type Version struct {
	Name   string
	Major  uint64
	Minor  uint64
	Micro  uint64
	Nano   uint64 // commits past the nearest tag
	Commit string
}

// Fallback returns the all-zero version with an empty commit.
func Fallback() Version {
	return Version{Name: FallbackName}
}

// String returns the display name.
func (v Version) String() string {
	return v.Name
}

// IsRelease reports whether the version sits exactly on a tag.
func (v Version) IsRelease() bool {
	return v.Nano == 0
}

// FormatName returns the display name for the given components. A non-zero nano
// is rendered as a dev pre-release of micro, where micro has already been bumped.
func FormatName(major, minor, micro, nano uint64) string {
	if nano == 0 {
		return fmt.Sprintf("%d.%d.%d", major, minor, micro)
	}
	return fmt.Sprintf("%d.%d.%d-dev.%d", major, minor, micro, nano-1)
}

// Parse converts the output of `git describe --tags --always --long` into a Version.
//
// The major, minor and micro components are always taken from the first three
// tokens and the distance and commit from the last two, so tags that themselves
// contain '-' or '.' are still handled.
func Parse(descriptor string) (Version, error) {
	descriptor = strings.TrimPrefix(descriptor, "v")
	tokens := strings.Split(strings.ReplaceAll(strings.TrimSpace(descriptor), "-", "."), ".")

	v := Fallback()
	if len(tokens) == 1 {
		v.Commit = tokens[0]
		return v, nil
	}

	components := [3]*uint64{&v.Major, &v.Minor, &v.Micro}
	for i, dst := range components {
		if i >= len(tokens) {
			return Version{}, &InvalidComponentError{Component: componentNames[i], Descriptor: descriptor}
		}
		n, err := strconv.ParseUint(tokens[i], 10, 64)
		if err != nil {
			return Version{}, &InvalidComponentError{
				Component:  componentNames[i],
				Value:      tokens[i],
				Descriptor: descriptor,
				Wrapped:    err,
			}
		}
		*dst = n
	}

	// A tag ending in non-numeric text leaves no usable distance.
	if n, err := strconv.ParseUint(tokens[len(tokens)-2], 10, 64); err == nil {
		v.Nano = n
	}
	v.Commit = tokens[len(tokens)-1]

	if v.Nano > 0 {
		v.Micro++
	}
	v.Name = FormatName(v.Major, v.Minor, v.Micro, v.Nano)

	return v, nil
}

var componentNames = [3]string{"major", "minor", "micro"}
