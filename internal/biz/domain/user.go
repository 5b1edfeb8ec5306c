package domain

// User represents a registered household member.
// Users are created lazily on first contact and never deleted.
type User struct {
	ID          int64
	TelegramID  int64
	DisplayName string
}
