package domain

import "time"

// Session is a persisted wizard run. Step and Config together form the
// wizard snapshot; Report holds the result of the last simulation and is
// cleared whenever the configuration changes. Simulations counts the runs
// since the session last started a new campaign.
type Session struct {
	ID          string         `json:"id"`
	OwnerID     string         `json:"owner_id,omitempty"`
	Step        int            `json:"step"`
	Config      CampaignConfig `json:"config"`
	Report      *Report        `json:"report,omitempty"`
	Simulations int            `json:"simulations"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Clone returns a deep copy of the session.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := *s
	out.Config = s.Config.Clone()
	if s.Report != nil {
		r := *s.Report
		r.Daily = make([]DayPerformance, len(s.Report.Daily))
		for i, d := range s.Report.Daily {
			d.Hourly = append([]HourActivity(nil), d.Hourly...)
			r.Daily[i] = d
		}
		r.Recommendations = append([]Recommendation(nil), s.Report.Recommendations...)
		r.Breakdown.Devices = append([]Share(nil), s.Report.Breakdown.Devices...)
		r.Breakdown.Regions = append([]Share(nil), s.Report.Breakdown.Regions...)
		out.Report = &r
	}
	return &out
}
