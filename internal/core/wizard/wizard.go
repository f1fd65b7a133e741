// Package wizard sequences the campaign setup steps over immutable
// snapshots. Every operation returns a new State; the receiver is never
// modified, so a caller may keep older snapshots around safely.
package wizard

import (
	"fmt"
	"math"
	"strings"

	"adsim/internal/core/domain"
)

// State is one snapshot of the wizard.
type State struct {
	Step   Step                  `json:"step"`
	Config domain.CampaignConfig `json:"config"`
}

// New returns the initial snapshot: step 1 with default configuration.
func New() State {
	return State{Step: StepPlatform, Config: domain.DefaultConfig()}
}

// FromSession rebuilds the snapshot stored on a session. An out of range
// step is clamped into 1..TotalSteps.
func FromSession(s *domain.Session) State {
	step := Step(s.Step)
	if step < StepPlatform {
		step = StepPlatform
	}
	if step > StepResults {
		step = StepResults
	}
	return State{Step: step, Config: s.Config.Clone()}
}

// Reset discards every choice and returns to step 1.
func (s State) Reset() State {
	return New()
}

// Progress is the completion percentage shown above the steps.
func (s State) Progress() int {
	return int(math.Round(float64(s.Step) / float64(TotalSteps) * 100))
}

// Next validates the current step and moves forward.
func (s State) Next() (State, error) {
	if s.Step >= StepResults {
		return s, ErrTerminalStep
	}
	if missing := s.Missing(); len(missing) > 0 {
		return s, fmt.Errorf("%w: %s: %s", ErrStepIncomplete, s.Step, strings.Join(missing, "; "))
	}
	out := s.clone()
	out.Step++
	return out, nil
}

// Back moves one step back. Nothing is cleared; at step 1 it is a no-op.
func (s State) Back() State {
	out := s.clone()
	if out.Step > StepPlatform {
		out.Step--
	}
	return out
}

// Rewind moves the snapshot back to the earliest step before the current
// one whose requirements no longer hold. A snapshot whose earlier steps are
// all satisfied is returned unchanged.
func (s State) Rewind() State {
	out := s.clone()
	for step := StepPlatform; step < s.Step; step++ {
		if len(State{Step: step, Config: s.Config}.Missing()) > 0 {
			out.Step = step
			break
		}
	}
	return out
}

// Complete runs cfg through every step from the beginning and returns the
// snapshot at the results step, or the first error encountered. It is the
// way to validate a configuration that did not come through the wizard.
func Complete(cfg domain.CampaignConfig) (State, error) {
	s := New()
	var err error
	if s, err = s.WithPlatform(cfg.Platform); err != nil {
		return s, err
	}
	if s, err = s.Next(); err != nil {
		return s, err
	}
	if s, err = s.WithObjective(cfg.Objective); err != nil {
		return s, err
	}
	if s, err = s.Next(); err != nil {
		return s, err
	}
	if s, err = s.WithCampaignType(cfg.CampaignType); err != nil {
		return s, err
	}
	if s, err = s.Next(); err != nil {
		return s, err
	}
	t := cfg.Targeting
	patch := TargetingPatch{
		Locations: nonNil(t.Locations),
		Ages:      nonNil(t.Ages),
		Genders:   nonNil(t.Genders),
		Interests: nonNil(t.Interests),
		Keywords:  t.Keywords,
		Behaviors: t.Behaviors,
	}
	if s, err = s.WithTargeting(patch); err != nil {
		return s, err
	}
	if s, err = s.Next(); err != nil {
		return s, err
	}
	c := cfg.Creative
	if s, err = s.WithCreative(CreativePatch{
		Headline:     &c.Headline,
		Description:  &c.Description,
		ImageURL:     &c.ImageURL,
		CallToAction: &c.CallToAction,
	}); err != nil {
		return s, err
	}
	if s, err = s.Next(); err != nil {
		return s, err
	}
	b := cfg.Budget
	budgetType := b.Type
	if budgetType == "" {
		budgetType = domain.BudgetDaily
	}
	if s, err = s.WithBudget(BudgetPatch{
		Amount:      &b.Amount,
		Type:        &budgetType,
		BidStrategy: &b.BidStrategy,
	}); err != nil {
		return s, err
	}
	return s.Next()
}

func (s State) clone() State {
	return State{Step: s.Step, Config: s.Config.Clone()}
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
