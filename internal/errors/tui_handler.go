package errors

import (
	"sync"
	"time"
)

// TUIHandler stores messages for display as a transient notice line.
type TUIHandler struct {
	mu       sync.RWMutex
	messages []Message
	onNotice func(msg Message)
	now      func() time.Time
	limit    int
}

// Message is a single notice.
type Message struct {
	Text      string
	Type      MessageType
	Timestamp time.Time
}

// MessageType classifies a notice for styling.
type MessageType int

const (
	MessageTypeError MessageType = iota
	MessageTypeWarning
	MessageTypeInfo
	MessageTypeSuccess
)

// String returns the lower-case name of the type.
func (t MessageType) String() string {
	switch t {
	case MessageTypeError:
		return "error"
	case MessageTypeWarning:
		return "warning"
	case MessageTypeSuccess:
		return "success"
	default:
		return "info"
	}
}

const defaultMessageLimit = 32

var _ ErrorHandler = (*TUIHandler)(nil)

// NewTUIHandler creates a handler that calls onNotice for every new message.
func NewTUIHandler(onNotice func(msg Message)) *TUIHandler {
	return &TUIHandler{
		onNotice: onNotice,
		now:      time.Now,
		limit:    defaultMessageLimit,
	}
}

func (h *TUIHandler) Error(msg string) {
	h.addMessage(msg, MessageTypeError)
}

func (h *TUIHandler) Warning(msg string) {
	h.addMessage(msg, MessageTypeWarning)
}

func (h *TUIHandler) Info(msg string) {
	h.addMessage(msg, MessageTypeInfo)
}

func (h *TUIHandler) Success(msg string) {
	h.addMessage(msg, MessageTypeSuccess)
}

func (h *TUIHandler) addMessage(msg string, msgType MessageType) {
	h.mu.Lock()
	message := Message{Text: msg, Type: msgType, Timestamp: h.now()}
	h.messages = append(h.messages, message)
	if len(h.messages) > h.limit {
		h.messages = h.messages[len(h.messages)-h.limit:]
	}
	cb := h.onNotice
	h.mu.Unlock()

	if cb != nil {
		cb(message)
	}
}

// GetLatest returns the most recent message.
func (h *TUIHandler) GetLatest() (Message, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.messages) == 0 {
		return Message{}, false
	}
	return h.messages[len(h.messages)-1], true
}

// Active returns the most recent message if it is younger than ttl.
func (h *TUIHandler) Active(ttl time.Duration) (Message, bool) {
	msg, ok := h.GetLatest()
	if !ok || h.now().Sub(msg.Timestamp) >= ttl {
		return Message{}, false
	}
	return msg, true
}

// Clear drops all messages.
func (h *TUIHandler) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = nil
}

// GetAll returns a copy of the retained messages, oldest first.
func (h *TUIHandler) GetAll() []Message {
	h.mu.RLock()
	defer h.mu.RUnlock()
	copied := make([]Message, len(h.messages))
	copy(copied, h.messages)
	return copied
}
