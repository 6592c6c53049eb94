package models

// Notification is one reminder or social alert generated server-side.
type Notification struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

// NotificationsResponse is returned by GET /api/notifications.
type NotificationsResponse struct {
	APIResponse
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unread_count"`
}
