package domain

import "time"

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

type ChatMessage struct {
	ID        string    `json:"id"`
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatTurn is the {role, content} pair sent as history to the chatbot.
type ChatTurn struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

type ChatQuery struct {
	Query   string     `json:"query"`
	History []ChatTurn `json:"history"`
}

type ChatAnswer struct {
	Response  string `json:"response"`
	Timestamp string `json:"timestamp,omitempty"`
}
