package domain

import (
	"fmt"
	"time"
)

type TransactionType string

const (
	TransactionIncome  TransactionType = "Income"
	TransactionExpense TransactionType = "Expense"
)

func ParseTransactionType(s string) (TransactionType, error) {
	switch v := TransactionType(s); v {
	case TransactionIncome, TransactionExpense:
		return v, nil
	}
	return "", fmt.Errorf("%w: transaction type %q", ErrInvalidValue, s)
}

type PaymentMethod string

const (
	MethodCash     PaymentMethod = "Cash"
	MethodTransfer PaymentMethod = "Transfer"
	MethodCard     PaymentMethod = "Card"
	MethodEWallet  PaymentMethod = "EWallet"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch v := PaymentMethod(s); v {
	case MethodCash, MethodTransfer, MethodCard, MethodEWallet:
		return v, nil
	}
	return "", fmt.Errorf("%w: payment method %q", ErrInvalidValue, s)
}

// Transaction is a single money movement. The sign convention of Amount
// follows Type (income vs expense) and is not validated here, matching
// the storage contract.
type Transaction struct {
	ID              string          `json:"id"`
	Date            time.Time       `json:"date"`
	Description     string          `json:"description"`
	Amount          float64         `json:"amount"`
	Type            TransactionType `json:"type"`
	ProjectID       string          `json:"projectId"`
	Category        string          `json:"category"`
	Method          PaymentMethod   `json:"method"`
	PocketID        string          `json:"pocketId"`
	CardID          string          `json:"cardId"`
	PrintingItemID  string          `json:"printingItemId"`
	VendorSignature string          `json:"vendorSignature"`
}

type TransactionUpdate struct {
	Date            *time.Time       `json:"date,omitempty"`
	Description     *string          `json:"description,omitempty"`
	Amount          *float64         `json:"amount,omitempty"`
	Type            *TransactionType `json:"type,omitempty"`
	ProjectID       *string          `json:"projectId,omitempty"`
	Category        *string          `json:"category,omitempty"`
	Method          *PaymentMethod   `json:"method,omitempty"`
	PocketID        *string          `json:"pocketId,omitempty"`
	CardID          *string          `json:"cardId,omitempty"`
	PrintingItemID  *string          `json:"printingItemId,omitempty"`
	VendorSignature *string          `json:"vendorSignature,omitempty"`
}

type CardType string

const (
	CardTypeDebit   CardType = "Debit"
	CardTypeCredit  CardType = "Credit"
	CardTypePrepaid CardType = "Prepaid"
)

func ParseCardType(s string) (CardType, error) {
	switch v := CardType(s); v {
	case CardTypeDebit, CardTypeCredit, CardTypePrepaid:
		return v, nil
	}
	return "", fmt.Errorf("%w: card type %q", ErrInvalidValue, s)
}

// Card is a payment card whose balance the studio tracks.
type Card struct {
	ID             string   `json:"id"`
	CardHolderName string   `json:"cardHolderName"`
	BankName       string   `json:"bankName"`
	CardType       CardType `json:"cardType"`
	LastFourDigits string   `json:"lastFourDigits"`
	ExpiryDate     string   `json:"expiryDate"`
	Balance        float64  `json:"balance"`
	ColorGradient  string   `json:"colorGradient"`
}

type CardUpdate struct {
	CardHolderName *string   `json:"cardHolderName,omitempty"`
	BankName       *string   `json:"bankName,omitempty"`
	CardType       *CardType `json:"cardType,omitempty"`
	LastFourDigits *string   `json:"lastFourDigits,omitempty"`
	ExpiryDate     *string   `json:"expiryDate,omitempty"` // empty string clears
	Balance        *float64  `json:"balance,omitempty"`
	ColorGradient  *string   `json:"colorGradient,omitempty"`
}

type PocketType string

const (
	PocketSaving     PocketType = "Saving"
	PocketLocked     PocketType = "Locked"
	PocketShared     PocketType = "Shared"
	PocketExpense    PocketType = "Expense"
	PocketRewardPool PocketType = "RewardPool"
)

func ParsePocketType(s string) (PocketType, error) {
	switch v := PocketType(s); v {
	case PocketSaving, PocketLocked, PocketShared, PocketExpense, PocketRewardPool:
		return v, nil
	}
	return "", fmt.Errorf("%w: pocket type %q", ErrInvalidValue, s)
}

// MemberRef points at a team member sharing a pocket.
type MemberRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FinancialPocket is an earmarked pot of money. GoalAmount and LockEndDate
// are data only; nothing enforces them anywhere in the system.
type FinancialPocket struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Icon         string      `json:"icon"`
	Type         PocketType  `json:"type"`
	Amount       float64     `json:"amount"`
	GoalAmount   *float64    `json:"goalAmount,omitempty"`
	LockEndDate  *time.Time  `json:"lockEndDate,omitempty"`
	Members      []MemberRef `json:"members"`
	SourceCardID string      `json:"sourceCardId"`
}

type FinancialPocketUpdate struct {
	Name         *string      `json:"name,omitempty"`
	Description  *string      `json:"description,omitempty"`
	Icon         *string      `json:"icon,omitempty"`
	Type         *PocketType  `json:"type,omitempty"`
	Amount       *float64     `json:"amount,omitempty"`
	GoalAmount   *float64     `json:"goalAmount,omitempty"`  // zero clears
	LockEndDate  *time.Time   `json:"lockEndDate,omitempty"` // zero clears
	Members      *[]MemberRef `json:"members,omitempty"`
	SourceCardID *string      `json:"sourceCardId,omitempty"` // empty clears
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "Percentage"
	DiscountFlat       DiscountType = "Flat"
)

func ParseDiscountType(s string) (DiscountType, error) {
	switch v := DiscountType(s); v {
	case DiscountPercentage, DiscountFlat:
		return v, nil
	}
	return "", fmt.Errorf("%w: discount type %q", ErrInvalidValue, s)
}

// PromoCode is a discount code. UsageCount against MaxUsage is tracked but
// deliberately not enforced here.
type PromoCode struct {
	ID            string       `json:"id"`
	Code          string       `json:"code"`
	DiscountType  DiscountType `json:"discountType"`
	DiscountValue float64      `json:"discountValue"`
	IsActive      bool         `json:"isActive"`
	UsageCount    int          `json:"usageCount"`
	MaxUsage      *int         `json:"maxUsage,omitempty"`
	ExpiryDate    *time.Time   `json:"expiryDate,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
}

type PromoCodeUpdate struct {
	Code          *string       `json:"code,omitempty"`
	DiscountType  *DiscountType `json:"discountType,omitempty"`
	DiscountValue *float64      `json:"discountValue,omitempty"`
	IsActive      *bool         `json:"isActive,omitempty"`
	UsageCount    *int          `json:"usageCount,omitempty"`
	MaxUsage      *int          `json:"maxUsage,omitempty"`   // zero clears
	ExpiryDate    *time.Time    `json:"expiryDate,omitempty"` // zero clears
}
