package domain

// Platform identifies the native search service available on the host
// operating system. It is informational; engine behaviour is identical
// everywhere and only the native index adapter differs per platform.
type Platform string

const (
	PlatformSpotlight     Platform = "spotlight"
	PlatformAppSearch     Platform = "appsearch"
	PlatformWindowsSearch Platform = "windows_search"
	PlatformUnknown       Platform = "unknown"
)

// IsValid checks if the platform is one of the known values.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformSpotlight, PlatformAppSearch, PlatformWindowsSearch, PlatformUnknown:
		return true
	default:
		return false
	}
}

// String returns the string representation of the platform.
func (p Platform) String() string {
	return string(p)
}

// Description returns a human-readable description of the platform.
func (p Platform) Description() string {
	switch p {
	case PlatformSpotlight:
		return "Apple Core Spotlight"
	case PlatformAppSearch:
		return "Android AppSearch"
	case PlatformWindowsSearch:
		return "Windows Search"
	default:
		return "No native search service"
	}
}

// AllPlatforms returns all known platforms.
func AllPlatforms() []Platform {
	return []Platform{
		PlatformSpotlight,
		PlatformAppSearch,
		PlatformWindowsSearch,
		PlatformUnknown,
	}
}
