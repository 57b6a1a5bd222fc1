package domain

import "time"

// NotificationLink is an optional in-app navigation target: the view to open
// plus free-form action parameters for that view.
type NotificationLink struct {
	View   string            `json:"view"`
	Action map[string]string `json:"action,omitempty"`
}

// Notification is an in-app alert for the admin shell.
type Notification struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Timestamp time.Time         `json:"timestamp"`
	IsRead    bool              `json:"isRead"`
	Icon      string            `json:"icon"`
	Link      *NotificationLink `json:"link,omitempty"`
}
