// Package piecevi is a modal terminal text editor built on a piece table.
//
// The editing core lives in the buffer and editor packages; cmd/piecevi is
// the terminal program.
package piecevi

import (
	_ "embed"
	"regexp"
	"strings"
)

// Name is the program name used in the banner and log prefix.
const Name = "piecevi"

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the release version in SemVer format, without `v`.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns Version with a leading `v`.
func VersionTag() string {
	return "v" + Version()
}

// Banner is the line printed by `piecevi -version`.
func Banner() string {
	return Name + " " + VersionTag()
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
