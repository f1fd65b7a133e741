package domain

// Targeting describes who should see a campaign. Keywords only apply to
// Google campaigns and Behaviors only to Meta campaigns.
type Targeting struct {
	Locations []string `json:"locations" yaml:"locations"`
	Ages      []string `json:"ages" yaml:"ages"`
	Genders   []string `json:"genders" yaml:"genders"`
	Interests []string `json:"interests" yaml:"interests"`
	Keywords  []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Behaviors []string `json:"behaviors,omitempty" yaml:"behaviors,omitempty"`
}

// Clone returns a copy with its own backing arrays.
func (t Targeting) Clone() Targeting {
	return Targeting{
		Locations: cloneStrings(t.Locations),
		Ages:      cloneStrings(t.Ages),
		Genders:   cloneStrings(t.Genders),
		Interests: cloneStrings(t.Interests),
		Keywords:  cloneStrings(t.Keywords),
		Behaviors: cloneStrings(t.Behaviors),
	}
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
