package models

import "time"

// Exchange is one logged chat turn: the user's message and the model's reply.
// Rows are immutable once written.
type Exchange struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	UserMessage string    `json:"user_message"`
	BotResponse string    `json:"bot_response"`
	CreatedAt   time.Time `json:"created_at"`
}
