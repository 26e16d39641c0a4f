package models

import "time"

// Chat is a conversation between a student and an advisor.
type Chat struct {
	ID           string    `json:"id"`
	Participants []User    `json:"participants"`
	LastMessage  string    `json:"lastMessage,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Message is a single chat message.
type Message struct {
	ID       string    `json:"id"`
	ChatID   string    `json:"chatId"`
	SenderID string    `json:"senderId"`
	Text     string    `json:"text"`
	SentAt   time.Time `json:"sentAt"`
}
