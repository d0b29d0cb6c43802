package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known job board.
type Platform string

const (
	PlatformGreenhouse      Platform = "greenhouse"
	PlatformLever           Platform = "lever"
	PlatformWorkday         Platform = "workday"
	PlatformAshby           Platform = "ashby"
	PlatformSmartRecruiters Platform = "smartrecruiters"
	PlatformHandshake       Platform = "handshake"
	PlatformLinkedIn        Platform = "linkedin"
	PlatformUnknown         Platform = "unknown"
)

type boardSpec struct {
	platform Platform
	domains  []string
	content  []string
	noise    []string
	// spa boards render the posting client-side.
	spa bool
}

var boards = []boardSpec{
	{
		platform: PlatformGreenhouse,
		domains:  []string{"greenhouse.io"},
		content:  []string{".job__description.body", ".job__description", ".job-description__content", "#content", ".job-post-container"},
		noise:    []string{".application--wrapper", ".voluntary-self-id", ".voluntary-self-id-wrapper", "#usa_self_id_section", ".post-apply"},
	},
	{
		platform: PlatformLever,
		domains:  []string{"lever.co"},
		content:  []string{".posting-page", ".section-wrapper.page-full-width", ".posting-description", ".content"},
		noise:    []string{".apply-section", ".lever-application-form", ".posting-apply"},
	},
	{
		platform: PlatformWorkday,
		domains:  []string{"myworkdayjobs.com", "workday.com"},
		content:  []string{"[data-automation-id='jobPostingDescription']", "[data-automation-id='jobDescription']", ".job-description"},
		noise:    []string{"[data-automation-id='applyButton']", ".application-section"},
		spa:      true,
	},
	{
		platform: PlatformAshby,
		domains:  []string{"ashbyhq.com"},
		content:  []string{"[class*='descriptionText']", "main"},
		noise:    []string{"[class*='applicationForm']"},
		spa:      true,
	},
	{
		platform: PlatformSmartRecruiters,
		domains:  []string{"smartrecruiters.com"},
		content:  []string{".job-sections", "[itemprop='description']", "main"},
		noise:    []string{".job-apply", ".sr-apply"},
	},
	{
		platform: PlatformHandshake,
		domains:  []string{"joinhandshake.com"},
		content:  []string{"[data-hook='job-description']", ".job-description", "main"},
		spa:      true,
	},
	{
		platform: PlatformLinkedIn,
		domains:  []string{"linkedin.com"},
		content:  []string{".show-more-less-html__markup", ".description__text", ".jobs-description__content"},
		noise:    []string{".sign-in-modal", ".join-form", ".top-card-layout__cta-container"},
	},
}

// commonNoise applies to every board.
var commonNoise = []string{
	"form",
	"#application-form",
	".application-form",
	".apply-button-container",
	"[data-testid='application-form']",
	".voluntary-disclosure",
	".eeo-statement",
	".eeo-section",
	"[data-testid='eeo']",
	".legal-disclosure",
	".self-identification",
	".social-share",
	".share-buttons",
	".cookie-consent",
	".gdpr-notice",
}

// JobPostingSelectors returns selectors that suit job pages on unknown sites.
func JobPostingSelectors() []string {
	return []string{
		".job-description",
		".job-content",
		"#job-description",
		"#job-content",
		".posting-content",
		".job-details",
		"[data-testid='job-description']",
		"main",
		"article",
		".content",
		"#content",
	}
}

func lookupBoard(platform Platform) (boardSpec, bool) {
	for _, b := range boards {
		if b.platform == platform {
			return b, true
		}
	}
	return boardSpec{}, false
}

// DetectPlatform identifies the job board from a URL's host.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}
	host := strings.ToLower(parsed.Hostname())

	for _, b := range boards {
		for _, domain := range b.domains {
			if host == domain || strings.HasSuffix(host, "."+domain) {
				return b.platform
			}
		}
	}
	return PlatformUnknown
}

// PlatformContentSelectors returns content selectors for a board, most specific first.
func PlatformContentSelectors(platform Platform) []string {
	if b, ok := lookupBoard(platform); ok {
		return b.content
	}
	return JobPostingSelectors()
}

// PlatformNoiseSelectors returns the elements to drop before extracting text.
func PlatformNoiseSelectors(platform Platform) []string {
	noise := append([]string{}, commonNoise...)
	if b, ok := lookupBoard(platform); ok {
		noise = append(noise, b.noise...)
	}
	return noise
}

// RendersClientSide reports whether a board is known to need a browser.
func RendersClientSide(platform Platform) bool {
	b, ok := lookupBoard(platform)
	return ok && b.spa
}
