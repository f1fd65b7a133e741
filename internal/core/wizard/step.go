package wizard

// Step is a 1-based wizard position.
type Step int

const (
	StepPlatform Step = iota + 1
	StepObjective
	StepCampaignType
	StepTargeting
	StepCreative
	StepBudget
	StepResults
)

// TotalSteps is the number of wizard steps, the results step included.
const TotalSteps = int(StepResults)

var stepNames = map[Step]string{
	StepPlatform:     "platform",
	StepObjective:    "objective",
	StepCampaignType: "campaign_type",
	StepTargeting:    "targeting",
	StepCreative:     "creative",
	StepBudget:       "budget",
	StepResults:      "results",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether s is inside 1..TotalSteps.
func (s Step) Valid() bool {
	return s >= StepPlatform && s <= StepResults
}
