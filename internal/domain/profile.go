package domain

// SubStatusConfig is one sub-stage within a configured project status.
type SubStatusConfig struct {
	Name string `json:"name"`
	Note string `json:"note"`
}

// ProjectStatusConfig is one studio-defined project stage.
type ProjectStatusConfig struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Color       string            `json:"color"`
	SubStatuses []SubStatusConfig `json:"subStatuses"`
	Note        string            `json:"note"`
}

// NotificationSettings toggles which events raise notifications.
type NotificationSettings struct {
	NewProject          bool `json:"newProject"`
	PaymentConfirmation bool `json:"paymentConfirmation"`
	DeadlineReminder    bool `json:"deadlineReminder"`
}

// SecuritySettings holds account-security toggles.
type SecuritySettings struct {
	TwoFactorEnabled bool `json:"twoFactorEnabled"`
}

// Profile is the studio's own identity and configuration. At most one
// record exists.
type Profile struct {
	FullName            string                `json:"fullName"`
	Email               string                `json:"email"`
	Phone               string                `json:"phone"`
	CompanyName         string                `json:"companyName"`
	Website             string                `json:"website"`
	Address             string                `json:"address"`
	BankAccount         string                `json:"bankAccount"`
	AuthorizedSigner    string                `json:"authorizedSigner"`
	IDNumber            string                `json:"idNumber"`
	Bio                 string                `json:"bio"`
	IncomeCategories    []string              `json:"incomeCategories"`
	ExpenseCategories   []string              `json:"expenseCategories"`
	ProjectTypes        []string              `json:"projectTypes"`
	EventTypes          []string              `json:"eventTypes"`
	AssetCategories     []string              `json:"assetCategories"`
	SOPCategories       []string              `json:"sopCategories"`
	ProjectStatusConfig []ProjectStatusConfig `json:"projectStatusConfig"`
	NotificationSettings NotificationSettings `json:"notificationSettings"`
	SecuritySettings    SecuritySettings      `json:"securitySettings"`
	BriefingTemplate    string                `json:"briefingTemplate"`
	TermsAndConditions  string                `json:"termsAndConditions"`
	ContractTemplate    string                `json:"contractTemplate"`
}
