package collectors

import (
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v3/host"

	"github.com/glebbrain/manager-arent-ai-sub002/internal/models"
)

// CollectHostProfile records the machine the analysis ran on. Best effort:
// a failing host query leaves the corresponding fields empty.
func CollectHostProfile() models.HostProfile {
	hostname, _ := os.Hostname()

	profile := models.HostProfile{
		Hostname:     hostname,
		Platform:     runtime.GOOS,
		Architecture: runtime.GOARCH,
		NumCPUs:      runtime.NumCPU(),
	}

	if info, err := host.Info(); err == nil {
		profile.Platform = info.Platform
		profile.PlatformVersion = info.PlatformVersion
		profile.KernelVersion = info.KernelVersion
	}

	return profile
}
