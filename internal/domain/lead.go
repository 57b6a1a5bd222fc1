package domain

import (
	"fmt"
	"time"
)

type LeadStatus string

const (
	LeadStatusNew        LeadStatus = "New"
	LeadStatusDiscussing LeadStatus = "Discussing"
	LeadStatusFollowUp   LeadStatus = "FollowUp"
	LeadStatusConverted  LeadStatus = "Converted"
	LeadStatusRejected   LeadStatus = "Rejected"
)

func ParseLeadStatus(s string) (LeadStatus, error) {
	switch v := LeadStatus(s); v {
	case LeadStatusNew, LeadStatusDiscussing, LeadStatusFollowUp, LeadStatusConverted, LeadStatusRejected:
		return v, nil
	}
	return "", fmt.Errorf("%w: lead status %q", ErrInvalidValue, s)
}

type ContactChannel string

const (
	ChannelWhatsApp  ContactChannel = "WhatsApp"
	ChannelInstagram ContactChannel = "Instagram"
	ChannelWebsite   ContactChannel = "Website"
	ChannelPhone     ContactChannel = "Phone"
	ChannelReferral  ContactChannel = "Referral"
	ChannelOther     ContactChannel = "Other"
)

func ParseContactChannel(s string) (ContactChannel, error) {
	switch v := ContactChannel(s); v {
	case ChannelWhatsApp, ChannelInstagram, ChannelWebsite, ChannelPhone, ChannelReferral, ChannelOther:
		return v, nil
	}
	return "", fmt.Errorf("%w: contact channel %q", ErrInvalidValue, s)
}

// Lead is a prospective client captured before any booking exists.
type Lead struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	ContactChannel ContactChannel `json:"contactChannel"`
	Location       string         `json:"location"`
	Status         LeadStatus     `json:"status"`
	Date           time.Time      `json:"date"`
	Notes          string         `json:"notes"`
}

type LeadUpdate struct {
	Name           *string         `json:"name,omitempty"`
	ContactChannel *ContactChannel `json:"contactChannel,omitempty"`
	Location       *string         `json:"location,omitempty"`
	Status         *LeadStatus     `json:"status,omitempty"`
	Date           *time.Time      `json:"date,omitempty"`
	Notes          *string         `json:"notes,omitempty"`
}
