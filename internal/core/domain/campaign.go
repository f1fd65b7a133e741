package domain

// BudgetType tells whether the budget amount is spent per day or over the
// whole campaign.
type BudgetType string

const (
	BudgetDaily    BudgetType = "daily"
	BudgetLifetime BudgetType = "lifetime"
)

// DefaultBudgetAmount is the amount a fresh campaign starts with.
const DefaultBudgetAmount = 10

// CampaignConfig is the full set of choices made in the wizard. Values are
// replaced as whole snapshots; see the wizard package.
type CampaignConfig struct {
	Platform     Platform   `json:"platform" yaml:"platform"`
	Objective    string     `json:"objective" yaml:"objective"`
	CampaignType string     `json:"campaign_type" yaml:"campaign_type"`
	Targeting    Targeting  `json:"targeting" yaml:"targeting"`
	Creative     AdCreative `json:"creative" yaml:"creative"`
	Budget       Budget     `json:"budget" yaml:"budget"`
}

// Budget describes spend and bidding.
type Budget struct {
	Amount      float64    `json:"amount" yaml:"amount"`
	Type        BudgetType `json:"type" yaml:"type"`
	BidStrategy string     `json:"bid_strategy" yaml:"bid_strategy"`
}

// DefaultConfig returns the configuration a new wizard starts from.
func DefaultConfig() CampaignConfig {
	return CampaignConfig{
		Targeting: Targeting{
			Locations: []string{},
			Ages:      []string{},
			Genders:   []string{},
			Interests: []string{},
		},
		Budget: Budget{
			Amount: DefaultBudgetAmount,
			Type:   BudgetDaily,
		},
	}
}

// Clone returns a deep copy so callers can derive a new snapshot without
// touching the receiver's slices.
func (c CampaignConfig) Clone() CampaignConfig {
	c.Targeting = c.Targeting.Clone()
	return c
}
