package domain

// PhysicalItem is one tangible deliverable bundled into a package.
type PhysicalItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Package is a sellable service bundle.
type Package struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Price          float64        `json:"price"`
	PhysicalItems  []PhysicalItem `json:"physicalItems"`
	DigitalItems   []string       `json:"digitalItems"`
	ProcessingTime string         `json:"processingTime"`
	Photographers  string         `json:"photographers"`
	Videographers  string         `json:"videographers"`
}

type PackageUpdate struct {
	Name           *string         `json:"name,omitempty"`
	Price          *float64        `json:"price,omitempty"`
	PhysicalItems  *[]PhysicalItem `json:"physicalItems,omitempty"`
	DigitalItems   *[]string       `json:"digitalItems,omitempty"`
	ProcessingTime *string         `json:"processingTime,omitempty"`
	Photographers  *string         `json:"photographers,omitempty"`
	Videographers  *string         `json:"videographers,omitempty"`
}

// AddOn is a single optional extra sold alongside a package.
type AddOn struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type AddOnUpdate struct {
	Name  *string  `json:"name,omitempty"`
	Price *float64 `json:"price,omitempty"`
}
