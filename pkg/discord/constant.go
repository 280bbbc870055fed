package discord

import "time"

const (
	// DefaultTimeout is the default HTTP timeout for webhook requests.
	DefaultTimeout = 10 * time.Second
	// DefaultRetryCount is the default number of retries on failure.
	DefaultRetryCount = 2
	// DefaultRetryDelay is the delay between retries.
	DefaultRetryDelay = 2 * time.Second
	// DefaultUsername is the webhook display name.
	DefaultUsername = "AquaMon"

	webhookURLTemplate = "https://discord.com/api/webhooks/%s/%s"
)

// MessageType selects the embed color for a message.
type MessageType int

const (
	MessageTypeInfo MessageType = iota
	MessageTypeWarning
	MessageTypeError
)

var messageTypeColors = map[MessageType]int{
	MessageTypeInfo:    0x3498DB, // Blue
	MessageTypeWarning: 0xFFA500, // Orange
	MessageTypeError:   0xFF0000, // Red
}
