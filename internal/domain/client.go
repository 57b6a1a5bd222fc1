package domain

import (
	"fmt"
	"time"
)

type ClientStatus string

const (
	ClientStatusProspect ClientStatus = "Prospect"
	ClientStatusActive   ClientStatus = "Active"
	ClientStatusInactive ClientStatus = "Inactive"
	ClientStatusLost     ClientStatus = "Lost"
)

func ParseClientStatus(s string) (ClientStatus, error) {
	switch v := ClientStatus(s); v {
	case ClientStatusProspect, ClientStatusActive, ClientStatusInactive, ClientStatusLost:
		return v, nil
	}
	return "", fmt.Errorf("%w: client status %q", ErrInvalidValue, s)
}

type ClientType string

const (
	ClientTypeDirect ClientType = "Direct"
	ClientTypeVendor ClientType = "Vendor"
)

func ParseClientType(s string) (ClientType, error) {
	switch v := ClientType(s); v {
	case ClientTypeDirect, ClientTypeVendor:
		return v, nil
	}
	return "", fmt.Errorf("%w: client type %q", ErrInvalidValue, s)
}

// Client is a customer of the studio. PortalAccessID is the opaque token
// that scopes the public client portal to this record.
type Client struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	Phone          string       `json:"phone"`
	Instagram      string       `json:"instagram"`
	Since          time.Time    `json:"since"`
	Status         ClientStatus `json:"status"`
	ClientType     ClientType   `json:"clientType"`
	LastContact    time.Time    `json:"lastContact"`
	PortalAccessID string       `json:"portalAccessId"`
}

type ClientUpdate struct {
	Name           *string       `json:"name,omitempty"`
	Email          *string       `json:"email,omitempty"`
	Phone          *string       `json:"phone,omitempty"`
	Instagram      *string       `json:"instagram,omitempty"`
	Since          *time.Time    `json:"since,omitempty"`
	Status         *ClientStatus `json:"status,omitempty"`
	ClientType     *ClientType   `json:"clientType,omitempty"`
	LastContact    *time.Time    `json:"lastContact,omitempty"`
	PortalAccessID *string       `json:"portalAccessId,omitempty"`
}
