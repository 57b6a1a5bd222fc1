package domain

import "time"

// SOP is a standard operating procedure document.
type SOP struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Content     string    `json:"content"`
	LastUpdated time.Time `json:"lastUpdated"`
}

type SOPUpdate struct {
	Title    *string `json:"title,omitempty"`
	Category *string `json:"category,omitempty"`
	Content  *string `json:"content,omitempty"`
}
