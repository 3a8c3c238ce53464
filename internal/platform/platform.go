// Package platform reports host operating system information used by
// machine start-policy decisions.
package platform

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/host"
)

// Info describes the host operating system.
type Info struct {
	// OS is the operating system family: "linux", "darwin", "windows".
	OS string
	// Platform is the distribution or product name (e.g. "arch", "darwin").
	Platform string
	// Version is the platform version string.
	Version string
}

// Detect queries the host via gopsutil. On failure it falls back to
// runtime.GOOS so callers always get a usable OS value.
func Detect() Info {
	info, err := host.Info()
	if err != nil {
		return Info{OS: runtime.GOOS}
	}
	return Info{OS: info.OS, Platform: info.Platform, Version: info.PlatformVersion}
}

// IsLinux reports whether the host OS family is Linux.
func (i Info) IsLinux() bool {
	return i.OS == "linux"
}
