package internal

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Key prefixes used by the cursorDiskKV naming convention.
const (
	composerKeyPrefix = "composerData:"
	bubbleKeyPrefix   = "bubbleId:"
)

// RawComposer represents decoded composer data from the database
type RawComposer struct {
	ComposerID                  string               `json:"composerId"`
	Name                        string               `json:"name,omitempty"`
	FullConversationHeadersOnly []ConversationHeader `json:"fullConversationHeadersOnly,omitempty"`
	CreatedAt                   int64                `json:"createdAt,omitempty"`
	LastUpdatedAt               int64                `json:"lastUpdatedAt,omitempty"`
}

// ConversationHeader is one ordered entry in a composer's conversation
type ConversationHeader struct {
	BubbleID string `json:"bubbleId"`
	Type     int    `json:"type"` // 1=user, 2=assistant
}

// RawBubble represents a decoded message bubble from the database
type RawBubble struct {
	ComposerID string         `json:"-"`
	BubbleID   string         `json:"bubbleId"`
	Text       string         `json:"text,omitempty"`
	RichText   string         `json:"richText,omitempty"`
	Thinking   *ThinkingBlock `json:"thinking,omitempty"`
	CodeBlocks []CodeBlock    `json:"codeBlocks,omitempty"`
	Timestamp  int64          `json:"timestamp,omitempty"`
}

// ThinkingBlock holds a bubble's reasoning text
type ThinkingBlock struct {
	Text string `json:"text"`
}

// CodeBlock represents a code block attached to a bubble
type CodeBlock struct {
	Language string `json:"language,omitempty"`
	Content  string `json:"content"`
}

// ParseComposerKey extracts the composer ID from a composerData:<id> key.
func ParseComposerKey(key string) (string, bool) {
	if !strings.HasPrefix(key, composerKeyPrefix) {
		return "", false
	}
	id := strings.TrimSpace(key[len(composerKeyPrefix):])
	if id == "" {
		return "", false
	}
	return id, true
}

// ParseBubbleKey extracts composer and bubble IDs from a
// bubbleId:<composerId>:<bubbleId> key.
func ParseBubbleKey(key string) (composerID, bubbleID string, ok bool) {
	if !strings.HasPrefix(key, bubbleKeyPrefix) {
		return "", "", false
	}
	rest := key[len(bubbleKeyPrefix):]
	sep := strings.Index(rest, ":")
	if sep < 0 {
		return "", "", false
	}
	composerID = strings.TrimSpace(rest[:sep])
	bubbleID = strings.TrimSpace(rest[sep+1:])
	if composerID == "" || bubbleID == "" {
		return "", "", false
	}
	return composerID, bubbleID, true
}

// unwrapEnvelope strips the versioned {"_v": N, "data": {...}} wrapper some
// rows carry. Rows without the wrapper pass through untouched.
func unwrapEnvelope(value []byte) []byte {
	var envelope struct {
		V    *int            `json:"_v"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(value, &envelope); err != nil {
		return value
	}
	if envelope.V == nil || len(envelope.Data) == 0 {
		return value
	}
	trimmed := strings.TrimSpace(string(envelope.Data))
	if !strings.HasPrefix(trimmed, "{") {
		return value
	}
	return envelope.Data
}

// ParseComposerRow decodes a composerData row. Composers without conversation
// headers carry nothing exportable and are rejected.
func ParseComposerRow(key, value string) (*RawComposer, error) {
	composerID, ok := ParseComposerKey(key)
	if !ok {
		return nil, &ParseError{Key: key, Err: fmt.Errorf("invalid composerData key format")}
	}

	var composer RawComposer
	if err := json.Unmarshal(unwrapEnvelope([]byte(value)), &composer); err != nil {
		return nil, &ParseError{Key: key, Err: err}
	}
	composer.ComposerID = composerID

	headers := composer.FullConversationHeadersOnly[:0]
	for _, h := range composer.FullConversationHeadersOnly {
		if h.BubbleID != "" {
			headers = append(headers, h)
		}
	}
	composer.FullConversationHeadersOnly = headers

	if len(composer.FullConversationHeadersOnly) == 0 {
		return nil, &ParseError{Key: key, Err: fmt.Errorf("no conversation headers")}
	}

	return &composer, nil
}

// ParseBubbleRow decodes a bubbleId row.
func ParseBubbleRow(key, value string) (*RawBubble, error) {
	composerID, bubbleID, ok := ParseBubbleKey(key)
	if !ok {
		return nil, &ParseError{Key: key, Err: fmt.Errorf("invalid bubbleId key format")}
	}

	var bubble RawBubble
	if err := json.Unmarshal(unwrapEnvelope([]byte(value)), &bubble); err != nil {
		return nil, &ParseError{Key: key, Err: err}
	}
	bubble.ComposerID = composerID
	bubble.BubbleID = bubbleID

	return &bubble, nil
}

// GetCreatedAt returns the composer creation time
func (rc *RawComposer) GetCreatedAt() time.Time {
	if rc.CreatedAt == 0 {
		return time.Time{}
	}
	return time.Unix(0, rc.CreatedAt*int64(time.Millisecond))
}

// GetLastUpdatedAt returns the composer update time, falling back to creation
func (rc *RawComposer) GetLastUpdatedAt() time.Time {
	if rc.LastUpdatedAt == 0 {
		return rc.GetCreatedAt()
	}
	return time.Unix(0, rc.LastUpdatedAt*int64(time.Millisecond))
}

// GetTimestamp returns the bubble timestamp as a time.Time
func (rb *RawBubble) GetTimestamp() time.Time {
	if rb.Timestamp == 0 {
		return time.Time{}
	}
	return time.Unix(0, rb.Timestamp*int64(time.Millisecond))
}
