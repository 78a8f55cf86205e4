// ============================================================================
// chronox - Version information
// ============================================================================
//
// Package:     version
// Description: Release version of the chronox module and its components
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for chronox and its packages
const (
	// Release version of the module
	Release = "0.1.0"

	// Component versions
	Calendar = "0.1.0"
	Civil    = "0.1.0"
	Duration = "0.1.0"
	Batch    = "0.1.0"
	CLI      = "0.1.0"
)

// Build metadata, set with -ldflags "-X .../version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info describes the running binary
type Info struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Version:   Release,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders the information on one line
func (i Info) String() string {
	return fmt.Sprintf("chronox %s (commit %s, built %s, %s, %s)",
		i.Version, i.Commit, i.BuildDate, i.GoVersion, i.Platform)
}

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "calendar":
		return Calendar
	case "civil":
		return Civil
	case "duration":
		return Duration
	case "batch":
		return Batch
	case "cli":
		return CLI
	default:
		return Release
	}
}
