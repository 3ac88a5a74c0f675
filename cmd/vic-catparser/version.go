package main

import (
	"fmt"
	"runtime/debug"

	"github.com/fcgreg/VIC-CatParser/internal/config"
)

// Version information set at build time via ldflags.
var (
	version = ""
	commit  = ""
	date    = ""
)

// getVersion returns version string.
// Priority: ldflags > debug.ReadBuildInfo > "(devel)"
func getVersion() string {
	if version != "" {
		return version
	}
	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		if buildInfo.Main.Version != "" {
			return buildInfo.Main.Version
		}
	}
	return "(devel)"
}

// getCommit returns commit hash.
// Priority: ldflags > debug.ReadBuildInfo > "unknown"
func getCommit() string {
	if commit != "" {
		return commit
	}
	return buildSetting("vcs.revision", 7)
}

// getDate returns build date.
// Priority: ldflags > debug.ReadBuildInfo > "unknown"
func getDate() string {
	if date != "" {
		return date
	}
	return buildSetting("vcs.time", 0)
}

// buildSetting looks up a build setting, truncated to limit runes when limit > 0.
func buildSetting(key string, limit int) string {
	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range buildInfo.Settings {
			if setting.Key == key && setting.Value != "" {
				if limit > 0 && len(setting.Value) > limit {
					return setting.Value[:limit]
				}
				return setting.Value
			}
		}
	}
	return "unknown"
}

// versionTemplate returns the text printed by --version.
func versionTemplate() string {
	return fmt.Sprintf("%s version {{.Version}}\n  commit: %s\n  built:  %s\n",
		config.AppName, getCommit(), getDate())
}
