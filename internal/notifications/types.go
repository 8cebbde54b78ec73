// Package notifications tells the site owner about new contact messages
// by posting them to webhooks.
package notifications

import "time"

// Kind categorises what triggered the notification.
type Kind string

const KindContactReceived Kind = "contact_received"

// Notification is the JSON body posted to every webhook.
type Notification struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	From      string    `json:"from"`
	ReplyTo   string    `json:"reply_to"`
	CreatedAt time.Time `json:"created_at"`
}
