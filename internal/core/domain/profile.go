package domain

import "time"

// UserProfile is the mock account that owns wizard sessions.
type UserProfile struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Avatar           string    `json:"avatar,omitempty"`
	Company          string    `json:"company,omitempty"`
	Role             string    `json:"role,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	LastActive       time.Time `json:"last_active"`
	CampaignsCreated int       `json:"campaigns_created"`
}
