package catalog

import (
	"slices"

	"adsim/internal/core/domain"
)

var (
	locations = []string{"United States", "Canada", "United Kingdom", "Australia", "Germany", "France"}
	ageGroups = []string{"18-24", "25-34", "35-44", "45-54", "55-64", "65+"}
	genders   = []string{"Male", "Female", "All"}
	interests = []string{
		"Technology", "Travel", "Fitness", "Fashion", "Food & Drink",
		"Sports", "Home & Garden", "Business", "Entertainment", "Education",
	}
	keywords = []string{
		"buy online", "best products", "discount", "shop now", "deals",
		"free shipping", "new collection", "sale", "official store", "premium",
	}
	behaviors = []string{
		"Frequent Traveler", "Digital Purchaser", "Mobile Device User",
		"New Business Owner", "Recently Moved", "Engaged Shopper",
	}
	callsToAction = []string{
		"Shop Now", "Learn More", "Sign Up", "Book Now", "Contact Us",
		"Download", "Get Offer", "Subscribe", "Apply Now", "Get Quote",
	}
)

// TargetingChoices lists every value the targeting step accepts. Keywords
// are only offered on Google and Behaviors only on Meta.
type TargetingChoices struct {
	Locations []string `json:"locations"`
	Ages      []string `json:"ages"`
	Genders   []string `json:"genders"`
	Interests []string `json:"interests"`
	Keywords  []string `json:"keywords,omitempty"`
	Behaviors []string `json:"behaviors,omitempty"`
}

// Targeting returns the targeting choices for a platform.
func Targeting(p domain.Platform) TargetingChoices {
	c := TargetingChoices{
		Locations: slices.Clone(locations),
		Ages:      slices.Clone(ageGroups),
		Genders:   slices.Clone(genders),
		Interests: slices.Clone(interests),
	}
	switch p {
	case domain.PlatformGoogle:
		c.Keywords = slices.Clone(keywords)
	case domain.PlatformMeta:
		c.Behaviors = slices.Clone(behaviors)
	}
	return c
}

// CallsToAction returns the button labels an ad may use.
func CallsToAction() []string {
	return slices.Clone(callsToAction)
}
