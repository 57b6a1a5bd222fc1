package domain

import (
	"fmt"
	"time"
)

type AssetStatus string

const (
	AssetAvailable   AssetStatus = "Available"
	AssetInUse       AssetStatus = "InUse"
	AssetMaintenance AssetStatus = "Maintenance"
)

func ParseAssetStatus(s string) (AssetStatus, error) {
	switch v := AssetStatus(s); v {
	case AssetAvailable, AssetInUse, AssetMaintenance:
		return v, nil
	}
	return "", fmt.Errorf("%w: asset status %q", ErrInvalidValue, s)
}

// Asset is a piece of equipment the studio owns.
type Asset struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Category      string      `json:"category"`
	PurchaseDate  time.Time   `json:"purchaseDate"`
	PurchasePrice float64     `json:"purchasePrice"`
	SerialNumber  string      `json:"serialNumber"`
	Status        AssetStatus `json:"status"`
	Notes         string      `json:"notes"`
}

type AssetUpdate struct {
	Name          *string      `json:"name,omitempty"`
	Category      *string      `json:"category,omitempty"`
	PurchaseDate  *time.Time   `json:"purchaseDate,omitempty"`
	PurchasePrice *float64     `json:"purchasePrice,omitempty"`
	SerialNumber  *string      `json:"serialNumber,omitempty"` // empty string clears
	Status        *AssetStatus `json:"status,omitempty"`
	Notes         *string      `json:"notes,omitempty"` // empty string clears
}
