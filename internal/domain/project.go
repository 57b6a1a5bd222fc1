package domain

import (
	"fmt"
	"time"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "Unpaid"
	PaymentStatusPartial PaymentStatus = "Partial"
	PaymentStatusPaid    PaymentStatus = "Paid"
)

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch v := PaymentStatus(s); v {
	case PaymentStatusUnpaid, PaymentStatusPartial, PaymentStatusPaid:
		return v, nil
	}
	return "", fmt.Errorf("%w: payment status %q", ErrInvalidValue, s)
}

type RevisionStatus string

const (
	RevisionStatusPending    RevisionStatus = "Pending"
	RevisionStatusInProgress RevisionStatus = "InProgress"
	RevisionStatusCompleted  RevisionStatus = "Completed"
)

func ParseRevisionStatus(s string) (RevisionStatus, error) {
	switch v := RevisionStatus(s); v {
	case RevisionStatusPending, RevisionStatusInProgress, RevisionStatusCompleted:
		return v, nil
	}
	return "", fmt.Errorf("%w: revision status %q", ErrInvalidValue, s)
}

// Revision is one round of client-requested changes on a project.
type Revision struct {
	ID              string         `json:"id"`
	Date            time.Time      `json:"date"`
	AdminNotes      string         `json:"adminNotes"`
	Deadline        time.Time      `json:"deadline"`
	FreelancerID    string         `json:"freelancerId"`
	FreelancerNotes string         `json:"freelancerNotes"`
	DriveLink       string         `json:"driveLink"`
	Status          RevisionStatus `json:"status"`
	CompletedDate   *time.Time     `json:"completedDate,omitempty"`
}

// AssignedMember is a team member booked on a project, with the agreed fee.
type AssignedMember struct {
	MemberID string  `json:"memberId"`
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	Fee      float64 `json:"fee"`
	Reward   float64 `json:"reward"`
}

// PrintingItem is one physical deliverable line on a project.
type PrintingItem struct {
	ID         string  `json:"id"`
	Type       string  `json:"type"`
	CustomName string  `json:"customName"`
	Details    string  `json:"details"`
	Cost       float64 `json:"cost"`
}

// Project is the central entity: one booked job for one client.
// Status is free-form because the set of stages is configured per studio
// in Profile.ProjectStatusConfig.
type Project struct {
	ID                          string            `json:"id"`
	ProjectName                 string            `json:"projectName"`
	ClientID                    string            `json:"clientId"`
	ClientName                  string            `json:"clientName"`
	ProjectType                 string            `json:"projectType"`
	PackageID                   string            `json:"packageId"`
	PackageName                 string            `json:"packageName"`
	AddOns                      []AddOn           `json:"addOns"`
	Date                        time.Time         `json:"date"`
	DeadlineDate                *time.Time        `json:"deadlineDate,omitempty"`
	Location                    string            `json:"location"`
	Progress                    int               `json:"progress"`
	Status                      string            `json:"status"`
	ActiveSubStatuses           []string          `json:"activeSubStatuses"`
	TotalCost                   float64           `json:"totalCost"`
	AmountPaid                  float64           `json:"amountPaid"`
	PaymentStatus               PaymentStatus     `json:"paymentStatus"`
	Team                        []AssignedMember  `json:"team"`
	Notes                       string            `json:"notes"`
	Accommodation               string            `json:"accommodation"`
	DriveLink                   string            `json:"driveLink"`
	ClientDriveLink             string            `json:"clientDriveLink"`
	FinalDriveLink              string            `json:"finalDriveLink"`
	StartTime                   string            `json:"startTime"`
	EndTime                     string            `json:"endTime"`
	Image                       string            `json:"image"`
	Revisions                   []Revision        `json:"revisions"`
	PromoCodeID                 string            `json:"promoCodeId"`
	DiscountAmount              float64           `json:"discountAmount"`
	ShippingDetails             string            `json:"shippingDetails"`
	DPProofURL                  string            `json:"dpProofUrl"`
	PrintingDetails             []PrintingItem    `json:"printingDetails"`
	PrintingCost                float64           `json:"printingCost"`
	TransportCost               float64           `json:"transportCost"`
	EditingConfirmedByClient    bool              `json:"isEditingConfirmedByClient"`
	PrintingConfirmedByClient   bool              `json:"isPrintingConfirmedByClient"`
	DeliveryConfirmedByClient   bool              `json:"isDeliveryConfirmedByClient"`
	ConfirmedSubStatuses        []string          `json:"confirmedSubStatuses"`
	ClientSubStatusNotes        map[string]string `json:"clientSubStatusNotes"`
	SubStatusConfirmationSentAt map[string]string `json:"subStatusConfirmationSentAt"`
	CompletedDigitalItems       []string          `json:"completedDigitalItems"`
	InvoiceSignature            string            `json:"invoiceSignature"`
}

type ProjectUpdate struct {
	ProjectName                 *string            `json:"projectName,omitempty"`
	ClientID                    *string            `json:"clientId,omitempty"`
	ClientName                  *string            `json:"clientName,omitempty"`
	ProjectType                 *string            `json:"projectType,omitempty"`
	PackageID                   *string            `json:"packageId,omitempty"`
	PackageName                 *string            `json:"packageName,omitempty"`
	AddOns                      *[]AddOn           `json:"addOns,omitempty"`
	Date                        *time.Time         `json:"date,omitempty"`
	DeadlineDate                *time.Time         `json:"deadlineDate,omitempty"` // zero value clears

	Location                    *string            `json:"location,omitempty"`
	Progress                    *int               `json:"progress,omitempty"`
	Status                      *string            `json:"status,omitempty"`
	ActiveSubStatuses           *[]string          `json:"activeSubStatuses,omitempty"`
	TotalCost                   *float64           `json:"totalCost,omitempty"`
	AmountPaid                  *float64           `json:"amountPaid,omitempty"`
	PaymentStatus               *PaymentStatus     `json:"paymentStatus,omitempty"`
	Team                        *[]AssignedMember  `json:"team,omitempty"`
	Notes                       *string            `json:"notes,omitempty"`
	Accommodation               *string            `json:"accommodation,omitempty"`
	DriveLink                   *string            `json:"driveLink,omitempty"`
	ClientDriveLink             *string            `json:"clientDriveLink,omitempty"`
	FinalDriveLink              *string            `json:"finalDriveLink,omitempty"`
	StartTime                   *string            `json:"startTime,omitempty"`
	EndTime                     *string            `json:"endTime,omitempty"`
	Image                       *string            `json:"image,omitempty"`
	Revisions                   *[]Revision        `json:"revisions,omitempty"`
	PromoCodeID                 *string            `json:"promoCodeId,omitempty"`
	DiscountAmount              *float64           `json:"discountAmount,omitempty"`
	ShippingDetails             *string            `json:"shippingDetails,omitempty"`
	DPProofURL                  *string            `json:"dpProofUrl,omitempty"`
	PrintingDetails             *[]PrintingItem    `json:"printingDetails,omitempty"`
	PrintingCost                *float64           `json:"printingCost,omitempty"`
	TransportCost               *float64           `json:"transportCost,omitempty"`
	EditingConfirmedByClient    *bool              `json:"isEditingConfirmedByClient,omitempty"`
	PrintingConfirmedByClient   *bool              `json:"isPrintingConfirmedByClient,omitempty"`
	DeliveryConfirmedByClient   *bool              `json:"isDeliveryConfirmedByClient,omitempty"`
	ConfirmedSubStatuses        *[]string          `json:"confirmedSubStatuses,omitempty"`
	ClientSubStatusNotes        *map[string]string `json:"clientSubStatusNotes,omitempty"`
	SubStatusConfirmationSentAt *map[string]string `json:"subStatusConfirmationSentAt,omitempty"`
	CompletedDigitalItems       *[]string          `json:"completedDigitalItems,omitempty"`
	InvoiceSignature            *string            `json:"invoiceSignature,omitempty"`
}
