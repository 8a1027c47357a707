package internal

import "time"

type bubbleKey struct {
	composerID string
	bubbleID   string
}

// SessionBuilder groups decoded bubbles into ordered sessions using the
// conversation headers stored on each composer.
type SessionBuilder struct {
	bubbles map[bubbleKey]*RawBubble
}

// NewSessionBuilder creates a builder indexed over the given bubbles
func NewSessionBuilder(bubbles []*RawBubble) *SessionBuilder {
	index := make(map[bubbleKey]*RawBubble, len(bubbles))
	for _, b := range bubbles {
		index[bubbleKey{b.ComposerID, b.BubbleID}] = b
	}
	return &SessionBuilder{bubbles: index}
}

// Build reconstructs one session from a composer. Messages follow the
// composer's header order exactly; headers whose bubble is missing or empty
// are skipped. Returns nil when no message survives.
func (sb *SessionBuilder) Build(composer *RawComposer) *Session {
	if composer == nil {
		return nil
	}

	messages := make([]Message, 0, len(composer.FullConversationHeadersOnly))
	for _, header := range composer.FullConversationHeadersOnly {
		bubble, ok := sb.bubbles[bubbleKey{composer.ComposerID, header.BubbleID}]
		if !ok {
			LogDebug("bubble %s not found for composer %s", header.BubbleID, composer.ComposerID)
			continue
		}

		blocks := ExtractBlocks(bubble)
		if len(blocks) == 0 {
			LogDebug("skipping empty bubble %s", header.BubbleID)
			continue
		}

		msg := Message{
			Role:   roleForType(header.Type),
			Blocks: blocks,
		}
		if ts := bubble.GetTimestamp(); !ts.IsZero() {
			msg.Timestamp = ts.Format(time.RFC3339)
		}
		messages = append(messages, msg)
	}

	if len(messages) == 0 {
		return nil
	}

	session := &Session{
		ID:       composer.ComposerID,
		Title:    composer.Name,
		Messages: messages,
	}
	if created := composer.GetCreatedAt(); !created.IsZero() {
		session.CreatedAt = created.Format(time.RFC3339)
	}
	if updated := composer.GetLastUpdatedAt(); !updated.IsZero() {
		session.UpdatedAt = updated.Format(time.RFC3339)
	}
	return session
}

// BuildAll reconstructs sessions for all composers, keeping input order and
// dropping composers that yield no messages.
func (sb *SessionBuilder) BuildAll(composers []*RawComposer) []*Session {
	sessions := make([]*Session, 0, len(composers))
	for _, composer := range composers {
		if session := sb.Build(composer); session != nil {
			sessions = append(sessions, session)
		}
	}
	return sessions
}

func roleForType(msgType int) string {
	switch msgType {
	case 1:
		return RoleUser
	case 2:
		return RoleAssistant
	default:
		return RoleUser
	}
}
