package export

import (
	"fmt"
	"io"

	"github.com/iksnae/cursor-chat-export/internal"
)

// MarkdownExporter exports sessions in Markdown format
type MarkdownExporter struct{}

// Export renders a session as a Markdown document: the title as a top-level
// heading, then one "### <Role> [thinking|chat]" section per content block in
// stored order.
func (e *MarkdownExporter) Export(session *internal.Session, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "# %s\n\n", session.DisplayTitle()); err != nil {
		return err
	}

	for _, msg := range session.Messages {
		role := roleLabel(msg.Role)
		for _, block := range msg.Blocks {
			var err error
			switch block.Kind {
			case internal.BlockThinking:
				_, err = fmt.Fprintf(w, "### %s [thinking]\n\n%s\n\n", role, block.Content)
			case internal.BlockCode:
				_, err = fmt.Fprintf(w, "### %s [chat]\n\n```%s\n%s\n```\n\n", role, block.Language, block.Content)
			default:
				_, err = fmt.Fprintf(w, "### %s [chat]\n\n%s\n\n", role, block.Content)
			}
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}

func roleLabel(role string) string {
	switch role {
	case internal.RoleUser:
		return "User"
	case internal.RoleAssistant:
		return "Assistant"
	default:
		return "Unknown"
	}
}
