// Package edtable is an editable table component for Bubble Tea programs.
//
// The state model lives in package table, the component in package
// tableview. Packages tablefile and sink help hosts load table definitions
// and persist the data sets the component reports.
package edtable

import (
	_ "embed"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the module version in SemVer form, without a leading v.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

// Banner formats the version line printed by the demo programs. A build
// whose embedded version is not SemVer reports itself as devel.
func Banner(program string) string {
	return banner(program, Version())
}

func banner(program, version string) string {
	if !IsSemver(version) {
		version = "devel"
	}
	return program + " " + version
}
