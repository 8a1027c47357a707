package internal

import "strings"

// ExtractBlocks turns a decoded bubble into ordered content blocks:
// thinking first, then the message text, then attached code blocks. When the
// primary text field is empty the richText tree is used as a fallback source.
// Returns nil when the bubble carries nothing exportable.
func ExtractBlocks(bubble *RawBubble) []ContentBlock {
	var blocks []ContentBlock

	if bubble.Thinking != nil && strings.TrimSpace(bubble.Thinking.Text) != "" {
		blocks = append(blocks, ContentBlock{
			Kind:    BlockThinking,
			Content: bubble.Thinking.Text,
		})
	}

	text := bubble.Text
	if strings.TrimSpace(text) == "" && bubble.RichText != "" {
		extracted, err := ExtractTextFromRichText(bubble.RichText)
		if err != nil {
			LogDebug("richText extraction failed for bubble %s: %v", bubble.BubbleID, err)
		} else {
			text = extracted
		}
	}
	if strings.TrimSpace(text) != "" {
		blocks = append(blocks, ContentBlock{
			Kind:    BlockText,
			Content: text,
		})
	}

	for _, cb := range bubble.CodeBlocks {
		if cb.Content == "" {
			continue
		}
		blocks = append(blocks, ContentBlock{
			Kind:     BlockCode,
			Language: cb.Language,
			Content:  cb.Content,
		})
	}

	return blocks
}
