package internal

import "strings"

// Block kinds for message content.
const (
	BlockText     = "text"
	BlockThinking = "thinking"
	BlockCode     = "code"
)

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Session is one conversation reconstructed from the store. Sessions are
// read-only snapshots; nothing mutates them after construction.
type Session struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title,omitempty" yaml:"title,omitempty"`
	CreatedAt string    `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt string    `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
	Messages  []Message `json:"messages" yaml:"messages"`
}

// Message is a single conversation turn.
type Message struct {
	Role      string         `json:"role" yaml:"role"`
	Timestamp string         `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	Blocks    []ContentBlock `json:"blocks" yaml:"blocks"`
}

// ContentBlock is one ordered piece of message content.
type ContentBlock struct {
	Kind     string `json:"kind" yaml:"kind"`
	Language string `json:"language,omitempty" yaml:"language,omitempty"`
	Content  string `json:"content" yaml:"content"`
}

// DisplayTitle returns the session title, falling back to "untitled".
func (s *Session) DisplayTitle() string {
	if strings.TrimSpace(s.Title) == "" {
		return "untitled"
	}
	return s.Title
}

// PlainText flattens all blocks of a message into a single string, with code
// blocks rendered as markdown fences.
func (m Message) PlainText() string {
	var parts []string
	for _, b := range m.Blocks {
		switch b.Kind {
		case BlockCode:
			parts = append(parts, "```"+b.Language+"\n"+b.Content+"\n```")
		default:
			parts = append(parts, b.Content)
		}
	}
	return strings.Join(parts, "\n\n")
}
