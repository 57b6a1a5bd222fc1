package domain

import "time"

// PerformanceNote is an admin remark on a freelancer's work.
type PerformanceNote struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"`
	Note string    `json:"note"`
	Type string    `json:"type"`
}

// TeamMember is a freelancer the studio books onto projects.
// PortalAccessID scopes the freelancer portal to this record.
type TeamMember struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Role             string            `json:"role"`
	Email            string            `json:"email"`
	Phone            string            `json:"phone"`
	StandardFee      float64           `json:"standardFee"`
	BankAccount      string            `json:"noRek"`
	RewardBalance    float64           `json:"rewardBalance"`
	Rating           float64           `json:"rating"`
	PerformanceNotes []PerformanceNote `json:"performanceNotes"`
	PortalAccessID   string            `json:"portalAccessId"`
}

type TeamMemberUpdate struct {
	Name             *string            `json:"name,omitempty"`
	Role             *string            `json:"role,omitempty"`
	Email            *string            `json:"email,omitempty"`
	Phone            *string            `json:"phone,omitempty"`
	StandardFee      *float64           `json:"standardFee,omitempty"`
	BankAccount      *string            `json:"noRek,omitempty"`
	RewardBalance    *float64           `json:"rewardBalance,omitempty"`
	Rating           *float64           `json:"rating,omitempty"`
	PerformanceNotes *[]PerformanceNote `json:"performanceNotes,omitempty"`
	PortalAccessID   *string            `json:"portalAccessId,omitempty"`
}
