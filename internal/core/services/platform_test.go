package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/portico-apps/searchkit/internal/core/domain"
)

func TestPlatformForOS(t *testing.T) {
	tests := []struct {
		goos     string
		expected domain.Platform
	}{
		{goos: "darwin", expected: domain.PlatformSpotlight},
		{goos: "ios", expected: domain.PlatformSpotlight},
		{goos: "android", expected: domain.PlatformAppSearch},
		{goos: "windows", expected: domain.PlatformWindowsSearch},
		{goos: "linux", expected: domain.PlatformUnknown},
		{goos: "plan9", expected: domain.PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			assert.Equal(t, tt.expected, platformForOS(tt.goos))
		})
	}
}

func TestDetectPlatform_ReturnsValidPlatform(t *testing.T) {
	platform := DetectPlatform()
	assert.True(t, platform.IsValid())
}
