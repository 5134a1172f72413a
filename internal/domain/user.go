package domain

// UserContact is the read-only contact view of a user, consumed by the
// notification dispatcher. Identity and account management live in the
// external identity layer.
type UserContact struct {
	UserID         string `json:"user_id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
