// Package quill is a live-styling markdown editing core for terminal
// editors.
//
// The styling pipeline lives in mdstyle (with codeblock and checkbox), list
// editing in lists, suggestions in ghost, and session ties them to an
// undoable buffer. The editor package paints a session with Bubble Tea.
package quill

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// Version returns the module version in SemVer form, without the leading v.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag form of Version.
func VersionTag() string {
	return "v" + Version()
}

// Banner is the one-line identification printed by the quill command.
func Banner() string {
	return "quill " + VersionTag()
}
