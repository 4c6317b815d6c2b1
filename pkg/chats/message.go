// Package chats provides a provider-agnostic data model for LLM chat
// interactions: roles, text messages, and a conversation container.
// No provider or API code is included — chats is a foundation layer
// that adapters build on.
package chats

// Message is a single text message in a conversation.
// It is a value type that copies cheaply.
type Message struct {
	Role Role
	Text string
}

// NewMessage creates a message with the given role and text.
func NewMessage(r Role, text string) Message {
	return Message{Role: r, Text: text}
}
