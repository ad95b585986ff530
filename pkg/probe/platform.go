package probe

import (
	"context"
	"fmt"
	"runtime"

	osutils "github.com/projectdiscovery/utils/os"
	"github.com/shirou/gopsutil/v3/host"
)

// DetectPlatform returns the platform name used to pick the ping
// invocation, e.g. "linux", "windows" or "darwin". Platforms without a
// dedicated check are reported by their GOOS name.
func DetectPlatform() string {
	switch {
	case osutils.IsWindows():
		return "windows"
	case osutils.IsLinux():
		return "linux"
	case osutils.IsOSX():
		return "darwin"
	default:
		return runtime.GOOS
	}
}

// HostDetails describes the host distribution and kernel, for logs.
func HostDetails(ctx context.Context) (string, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("could not query host info: %w", err)
	}
	return fmt.Sprintf("%s %s (kernel %s, %s)", info.Platform, info.PlatformVersion, info.KernelVersion, info.KernelArch), nil
}
