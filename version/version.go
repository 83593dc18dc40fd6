// Package version identifies the declgen build that produced a set of
// declarations. Release builds stamp the values through ldflags:
//
//	go build -ldflags "-X github.com/teranos/declgen/version.Release=v0.4.0 \
//	  -X github.com/teranos/declgen/version.Commit=$(git rev-parse HEAD) \
//	  -X github.com/teranos/declgen/version.BuiltAt=$(date -u +%FT%TZ)"
//
// Unstamped builds fall back to the VCS settings the go tool records.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Stamped at link time; empty in development builds.
var (
	Release = ""
	Commit  = ""
	BuiltAt = ""
)

const (
	devRelease    = "dev"
	revisionWidth = 12
)

// Build describes the running generator binary.
type Build struct {
	Release   string `json:"release"`
	Commit    string `json:"commit,omitempty"`
	Dirty     bool   `json:"dirty,omitempty"`
	BuiltAt   string `json:"built_at,omitempty"`
	Toolchain string `json:"toolchain"`
	Platform  string `json:"platform"`
}

// Current returns the stamped build, completed from the binary's build info.
func Current() Build {
	b := Build{
		Release:   Release,
		Commit:    Commit,
		BuiltAt:   BuiltAt,
		Toolchain: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		b = withBuildInfo(b, info)
	}
	if b.Release == "" {
		b.Release = devRelease
	}
	return b
}

// withBuildInfo fills what ldflags left empty from the module and VCS data.
func withBuildInfo(b Build, info *debug.BuildInfo) Build {
	if b.Release == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		b.Release = info.Main.Version
	}
	stamped := b.Commit != ""
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if !stamped {
				b.Commit = s.Value
			}
		case "vcs.time":
			if b.BuiltAt == "" {
				b.BuiltAt = s.Value
			}
		case "vcs.modified":
			if !stamped {
				b.Dirty = s.Value == "true"
			}
		}
	}
	return b
}

// Tagged reports whether Release is a semantic version.
func (b Build) Tagged() bool {
	_, err := semver.NewVersion(b.Release)
	return err == nil
}

// Revision is the abbreviated commit.
func (b Build) Revision() string {
	if len(b.Commit) > revisionWidth {
		return b.Commit[:revisionWidth]
	}
	return b.Commit
}

func (b Build) String() string {
	release := b.Release
	if !b.Tagged() {
		release = devRelease
	}
	var details []string
	if rev := b.Revision(); rev != "" {
		if b.Dirty {
			rev += "+dirty"
		}
		details = append(details, rev)
	}
	if b.BuiltAt != "" {
		details = append(details, "built "+b.BuiltAt)
	}
	if len(details) == 0 {
		return "declgen " + release
	}
	return fmt.Sprintf("declgen %s (%s)", release, strings.Join(details, ", "))
}
