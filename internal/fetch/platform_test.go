package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://job-boards.greenhouse.io/doordashusa/jobs/7063751", PlatformGreenhouse},
		{"https://boards.greenhouse.io/company/jobs/123", PlatformGreenhouse},
		{"https://greenhouse.io/jobs/456", PlatformGreenhouse},
		{"https://jobs.lever.co/company/job-id", PlatformLever},
		{"https://company.wd5.myworkdayjobs.com/en-US/External", PlatformWorkday},
		{"https://jobs.ashbyhq.com/acme/123", PlatformAshby},
		{"https://jobs.smartrecruiters.com/Acme/1234-intern", PlatformSmartRecruiters},
		{"https://app.joinhandshake.com/jobs/9876", PlatformHandshake},
		{"https://www.linkedin.com/jobs/view/123", PlatformLinkedIn},
		{"https://example.com/careers/intern", PlatformUnknown},
		{"https://notgreenhouse.io.example.com/jobs", PlatformUnknown},
		{"https://evil-lever.co/jobs", PlatformUnknown},
		{"://bad", PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectPlatform(tt.url))
		})
	}
}

func TestPlatformContentSelectors(t *testing.T) {
	assert.Equal(t, ".job__description.body", PlatformContentSelectors(PlatformGreenhouse)[0])
	assert.Equal(t, ".posting-page", PlatformContentSelectors(PlatformLever)[0])
	assert.Equal(t, JobPostingSelectors(), PlatformContentSelectors(PlatformUnknown))
}

func TestPlatformNoiseSelectors(t *testing.T) {
	greenhouse := PlatformNoiseSelectors(PlatformGreenhouse)
	assert.Contains(t, greenhouse, "form")
	assert.Contains(t, greenhouse, ".post-apply")

	unknown := PlatformNoiseSelectors(PlatformUnknown)
	assert.Equal(t, commonNoise, unknown)

	// Appending board noise must not grow the shared slice.
	_ = PlatformNoiseSelectors(PlatformLever)
	assert.Len(t, commonNoise, len(unknown))
}

func TestRendersClientSide(t *testing.T) {
	assert.True(t, RendersClientSide(PlatformWorkday))
	assert.False(t, RendersClientSide(PlatformGreenhouse))
	assert.False(t, RendersClientSide(PlatformUnknown))
}
