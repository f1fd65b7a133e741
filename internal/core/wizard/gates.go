package wizard

import (
	"fmt"
	"unicode/utf8"

	"adsim/internal/core/domain"
)

// Creative text limits. Google search ads are shorter than the rest.
const (
	searchHeadlineMax    = 30
	searchDescriptionMax = 90
	headlineMax          = 40
	descriptionMax       = 125
)

// Missing lists what the current step still needs before Next succeeds.
// The results step never has missing requirements.
func (s State) Missing() []string {
	cfg := s.Config
	var missing []string
	switch s.Step {
	case StepPlatform:
		if !cfg.Platform.Valid() {
			missing = append(missing, "platform")
		}
	case StepObjective:
		if cfg.Objective == "" {
			missing = append(missing, "objective")
		}
	case StepCampaignType:
		if cfg.CampaignType == "" {
			missing = append(missing, "campaign type")
		}
	case StepTargeting:
		t := cfg.Targeting
		if len(t.Locations) == 0 {
			missing = append(missing, "at least one location")
		}
		if len(t.Ages) == 0 {
			missing = append(missing, "at least one age group")
		}
		if len(t.Interests) == 0 {
			missing = append(missing, "at least one interest")
		}
		switch cfg.Platform {
		case domain.PlatformGoogle:
			if len(t.Keywords) == 0 {
				missing = append(missing, "at least one keyword")
			}
		case domain.PlatformMeta:
			if len(t.Behaviors) == 0 {
				missing = append(missing, "at least one behavior")
			}
		}
	case StepCreative:
		missing = creativeMissing(cfg)
	case StepBudget:
		if cfg.Budget.Amount <= 0 {
			missing = append(missing, "a positive budget amount")
		}
		if cfg.Budget.BidStrategy == "" {
			missing = append(missing, "bid strategy")
		}
	}
	return missing
}

// NeedsImage reports whether the chosen ad format requires an image.
// Only Google search ads are text-only.
func NeedsImage(cfg domain.CampaignConfig) bool {
	return !isGoogleSearch(cfg)
}

func isGoogleSearch(cfg domain.CampaignConfig) bool {
	return cfg.Platform == domain.PlatformGoogle && cfg.CampaignType == "search"
}

func creativeMissing(cfg domain.CampaignConfig) []string {
	c := cfg.Creative
	var missing []string
	if c.Headline == "" {
		missing = append(missing, "headline")
	}
	if c.Description == "" {
		missing = append(missing, "description")
	}
	if NeedsImage(cfg) && c.ImageURL == "" {
		missing = append(missing, "image url")
	}
	hMax, dMax := headlineMax, descriptionMax
	if isGoogleSearch(cfg) {
		hMax, dMax = searchHeadlineMax, searchDescriptionMax
	}
	if n := utf8.RuneCountInString(c.Headline); n > hMax {
		missing = append(missing, fmt.Sprintf("headline of at most %d characters (has %d)", hMax, n))
	}
	if n := utf8.RuneCountInString(c.Description); n > dMax {
		missing = append(missing, fmt.Sprintf("description of at most %d characters (has %d)", dMax, n))
	}
	return missing
}
