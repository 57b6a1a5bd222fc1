package domain

import "time"

// Contract is the signed agreement backing a project. The two client slots
// cover weddings where both partners sign.
type Contract struct {
	ID                string     `json:"id"`
	ContractNumber    string     `json:"contractNumber"`
	ClientID          string     `json:"clientId"`
	ProjectID         string     `json:"projectId"`
	SigningDate       time.Time  `json:"signingDate"`
	SigningLocation   string     `json:"signingLocation"`
	ClientName1       string     `json:"clientName1"`
	ClientAddress1    string     `json:"clientAddress1"`
	ClientPhone1      string     `json:"clientPhone1"`
	ClientName2       string     `json:"clientName2"`
	ClientAddress2    string     `json:"clientAddress2"`
	ClientPhone2      string     `json:"clientPhone2"`
	ShootingDuration  string     `json:"shootingDuration"`
	GuaranteedPhotos  string     `json:"guaranteedPhotos"`
	AlbumDetails      string     `json:"albumDetails"`
	DigitalFilesFormat string    `json:"digitalFilesFormat"`
	OtherItems        string     `json:"otherItems"`
	PersonnelCount    string     `json:"personnelCount"`
	DeliveryTimeframe string     `json:"deliveryTimeframe"`
	DPDate            *time.Time `json:"dpDate,omitempty"`
	FinalPaymentDate  *time.Time `json:"finalPaymentDate,omitempty"`
	CancellationPolicy string    `json:"cancellationPolicy"`
	Jurisdiction      string     `json:"jurisdiction"`
	VendorSignature   string     `json:"vendorSignature"`
	ClientSignature   string     `json:"clientSignature"`
	CreatedAt         time.Time  `json:"createdAt"`
}

type ContractUpdate struct {
	ContractNumber     *string    `json:"contractNumber,omitempty"`
	ClientID           *string    `json:"clientId,omitempty"`
	ProjectID          *string    `json:"projectId,omitempty"`
	SigningDate        *time.Time `json:"signingDate,omitempty"`
	SigningLocation    *string    `json:"signingLocation,omitempty"`
	ClientName1        *string    `json:"clientName1,omitempty"`
	ClientAddress1     *string    `json:"clientAddress1,omitempty"`
	ClientPhone1       *string    `json:"clientPhone1,omitempty"`
	ClientName2        *string    `json:"clientName2,omitempty"`    // empty clears
	ClientAddress2     *string    `json:"clientAddress2,omitempty"` // empty clears
	ClientPhone2       *string    `json:"clientPhone2,omitempty"`   // empty clears
	ShootingDuration   *string    `json:"shootingDuration,omitempty"`
	GuaranteedPhotos   *string    `json:"guaranteedPhotos,omitempty"`
	AlbumDetails       *string    `json:"albumDetails,omitempty"`
	DigitalFilesFormat *string    `json:"digitalFilesFormat,omitempty"`
	OtherItems         *string    `json:"otherItems,omitempty"`
	PersonnelCount     *string    `json:"personnelCount,omitempty"`
	DeliveryTimeframe  *string    `json:"deliveryTimeframe,omitempty"`
	DPDate             *time.Time `json:"dpDate,omitempty"`           // zero clears
	FinalPaymentDate   *time.Time `json:"finalPaymentDate,omitempty"` // zero clears
	CancellationPolicy *string    `json:"cancellationPolicy,omitempty"`
	Jurisdiction       *string    `json:"jurisdiction,omitempty"`
	VendorSignature    *string    `json:"vendorSignature,omitempty"` // empty clears
	ClientSignature    *string    `json:"clientSignature,omitempty"` // empty clears
}
