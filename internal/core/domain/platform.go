package domain

// Platform identifies the ad network a campaign is configured for. The zero
// value means no platform has been chosen yet.
type Platform string

const (
	PlatformGoogle Platform = "google"
	PlatformMeta   Platform = "meta"
)

// Valid reports whether p is one of the supported platforms.
func (p Platform) Valid() bool {
	return p == PlatformGoogle || p == PlatformMeta
}

// Title returns the display name used in reports.
func (p Platform) Title() string {
	switch p {
	case PlatformGoogle:
		return "Google"
	case PlatformMeta:
		return "Meta"
	default:
		return ""
	}
}
