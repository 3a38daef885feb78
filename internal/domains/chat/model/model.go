package model

import (
	"time"

	"atria/shared/model"
)

const (
	MessageTableName  = "messages"
	MessageEntityName = "message"

	NotificationTableName  = "notifications"
	NotificationEntityName = "notification"
)

const (
	FieldID             = "id"
	FieldConversationID = "conversation_id"
	FieldSenderID       = "sender_id"
	FieldUserID         = "user_id"
	FieldRead           = "read"
	FieldReadAt         = "read_at"
)

type Message struct {
	ID             string `db:"id"`
	ConversationID string `db:"conversation_id"`
	SenderID       string `db:"sender_id"`
	Body           string `db:"body"`
	model.Metadata
}

type Notification struct {
	ID     string     `db:"id"`
	UserID string     `db:"user_id"`
	Title  string     `db:"title"`
	Body   string     `db:"body"`
	Kind   string     `db:"kind"`
	Read   bool       `db:"read"`
	ReadAt *time.Time `db:"read_at"`
	model.Metadata
}
