package services

import (
	"runtime"

	"github.com/portico-apps/searchkit/internal/core/domain"
)

// DetectPlatform reports which native search service the current OS
// offers. Detection is informational only; engine behaviour is identical
// everywhere and just the native index adapter differs per platform.
func DetectPlatform() domain.Platform {
	return platformForOS(runtime.GOOS)
}

// platformForOS maps a GOOS value to its native search service.
func platformForOS(goos string) domain.Platform {
	switch goos {
	case "darwin", "ios":
		return domain.PlatformSpotlight
	case "android":
		return domain.PlatformAppSearch
	case "windows":
		return domain.PlatformWindowsSearch
	default:
		return domain.PlatformUnknown
	}
}
