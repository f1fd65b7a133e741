package wizard

import (
	"fmt"
	"math"
	"net/url"
	"slices"

	"adsim/internal/core/catalog"
	"adsim/internal/core/domain"
)

// TargetingPatch replaces the targeting facets that are non-nil. An empty,
// non-nil slice clears a facet.
type TargetingPatch struct {
	Locations []string `json:"locations,omitempty"`
	Ages      []string `json:"ages,omitempty"`
	Genders   []string `json:"genders,omitempty"`
	Interests []string `json:"interests,omitempty"`
	Keywords  []string `json:"keywords,omitempty"`
	Behaviors []string `json:"behaviors,omitempty"`
}

// CreativePatch replaces the creative fields that are non-nil.
type CreativePatch struct {
	Headline     *string `json:"headline,omitempty"`
	Description  *string `json:"description,omitempty"`
	ImageURL     *string `json:"image_url,omitempty"`
	CallToAction *string `json:"call_to_action,omitempty"`
}

// BudgetPatch replaces the budget fields that are non-nil.
type BudgetPatch struct {
	Amount      *float64           `json:"amount,omitempty"`
	Type        *domain.BudgetType `json:"type,omitempty"`
	BidStrategy *string            `json:"bid_strategy,omitempty"`
}

// WithPlatform chooses the platform. Switching platforms drops the
// objective, campaign type, bid strategy and the targeting facet that only
// exists on the previous platform.
func (s State) WithPlatform(p domain.Platform) (State, error) {
	if !p.Valid() {
		return s, fmt.Errorf("%w: platform %q", ErrInvalidOption, p)
	}
	out := s.clone()
	if out.Config.Platform == p {
		return out, nil
	}
	out.Config.Platform = p
	out.Config.Objective = ""
	out.Config.CampaignType = ""
	out.Config.Budget.BidStrategy = ""
	switch p {
	case domain.PlatformGoogle:
		out.Config.Targeting.Behaviors = nil
	case domain.PlatformMeta:
		out.Config.Targeting.Keywords = nil
	}
	return out, nil
}

// WithObjective chooses the objective. A campaign type or bid strategy
// that the new objective does not offer is dropped.
func (s State) WithObjective(objective string) (State, error) {
	p := s.Config.Platform
	if !p.Valid() {
		return s, fmt.Errorf("%w: choose a platform before the objective", ErrInvalidOption)
	}
	if !catalog.Contains(catalog.Objectives(p), objective) {
		return s, fmt.Errorf("%w: objective %q is not offered on %s", ErrInvalidOption, objective, p)
	}
	out := s.clone()
	out.Config.Objective = objective
	if !catalog.Contains(catalog.CampaignTypes(p, objective), out.Config.CampaignType) {
		out.Config.CampaignType = ""
	}
	if !catalog.Contains(catalog.BidStrategies(p, objective), out.Config.Budget.BidStrategy) {
		out.Config.Budget.BidStrategy = ""
	}
	return out, nil
}

// WithCampaignType chooses the ad format. The available formats depend on
// the objective, so none can be chosen before it.
func (s State) WithCampaignType(campaignType string) (State, error) {
	cfg := s.Config
	if cfg.Objective == "" {
		return s, fmt.Errorf("%w: choose an objective before the campaign type", ErrInvalidOption)
	}
	if !catalog.Contains(catalog.CampaignTypes(cfg.Platform, cfg.Objective), campaignType) {
		return s, fmt.Errorf("%w: campaign type %q is not offered for %s %s", ErrInvalidOption, campaignType, cfg.Platform, cfg.Objective)
	}
	out := s.clone()
	out.Config.CampaignType = campaignType
	return out, nil
}

// WithTargeting replaces the targeting facets present in the patch. Values
// are checked against the catalog and de-duplicated in order.
func (s State) WithTargeting(patch TargetingPatch) (State, error) {
	p := s.Config.Platform
	if !p.Valid() {
		return s, fmt.Errorf("%w: choose a platform before targeting", ErrInvalidOption)
	}
	choices := catalog.Targeting(p)
	out := s.clone()
	t := &out.Config.Targeting

	facets := []struct {
		name    string
		value   []string
		allowed []string
		dst     *[]string
	}{
		{"location", patch.Locations, choices.Locations, &t.Locations},
		{"age", patch.Ages, choices.Ages, &t.Ages},
		{"gender", patch.Genders, choices.Genders, &t.Genders},
		{"interest", patch.Interests, choices.Interests, &t.Interests},
		{"keyword", patch.Keywords, choices.Keywords, &t.Keywords},
		{"behavior", patch.Behaviors, choices.Behaviors, &t.Behaviors},
	}
	for _, f := range facets {
		if f.value == nil {
			continue
		}
		if len(f.allowed) == 0 && len(f.value) > 0 {
			return s, fmt.Errorf("%w: %s targeting is not available on %s", ErrInvalidOption, f.name, p)
		}
		set, err := uniqueFrom(f.name, f.value, f.allowed)
		if err != nil {
			return s, err
		}
		*f.dst = set
	}
	return out, nil
}

// WithCreative replaces the creative fields present in the patch. Length
// limits are enforced by the step gate, not here, so text can be edited
// freely.
func (s State) WithCreative(patch CreativePatch) (State, error) {
	if patch.CallToAction != nil && *patch.CallToAction != "" &&
		!slices.Contains(catalog.CallsToAction(), *patch.CallToAction) {
		return s, fmt.Errorf("%w: call to action %q", ErrInvalidOption, *patch.CallToAction)
	}
	if patch.ImageURL != nil && *patch.ImageURL != "" {
		u, err := url.ParseRequestURI(*patch.ImageURL)
		if err != nil || u.Host == "" {
			return s, fmt.Errorf("%w: image url %q", ErrInvalidOption, *patch.ImageURL)
		}
	}
	out := s.clone()
	c := &out.Config.Creative
	if patch.Headline != nil {
		c.Headline = *patch.Headline
	}
	if patch.Description != nil {
		c.Description = *patch.Description
	}
	if patch.ImageURL != nil {
		c.ImageURL = *patch.ImageURL
	}
	if patch.CallToAction != nil {
		c.CallToAction = *patch.CallToAction
	}
	return out, nil
}

// WithBudget replaces the budget fields present in the patch. An empty bid
// strategy clears the choice.
func (s State) WithBudget(patch BudgetPatch) (State, error) {
	cfg := s.Config
	if patch.Amount != nil {
		a := *patch.Amount
		if math.IsNaN(a) || math.IsInf(a, 0) || a <= 0 {
			return s, fmt.Errorf("%w: budget amount must be positive, got %v", ErrInvalidOption, a)
		}
	}
	if patch.Type != nil && *patch.Type != domain.BudgetDaily && *patch.Type != domain.BudgetLifetime {
		return s, fmt.Errorf("%w: budget type %q", ErrInvalidOption, *patch.Type)
	}
	if patch.BidStrategy != nil && *patch.BidStrategy != "" {
		if _, ok := catalog.BidStrategy(cfg.Platform, cfg.Objective, *patch.BidStrategy); !ok {
			return s, fmt.Errorf("%w: bid strategy %q is not offered for %s %s", ErrInvalidOption, *patch.BidStrategy, cfg.Platform, cfg.Objective)
		}
	}
	out := s.clone()
	b := &out.Config.Budget
	if patch.Amount != nil {
		b.Amount = *patch.Amount
	}
	if patch.Type != nil {
		b.Type = *patch.Type
	}
	if patch.BidStrategy != nil {
		b.BidStrategy = *patch.BidStrategy
	}
	return out, nil
}

func uniqueFrom(name string, values, allowed []string) ([]string, error) {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !slices.Contains(allowed, v) {
			return nil, fmt.Errorf("%w: %s %q", ErrInvalidOption, name, v)
		}
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out, nil
}
