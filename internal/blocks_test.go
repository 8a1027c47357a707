package internal

import "testing"

func TestExtractBlocks_Order(t *testing.T) {
	bubble := &RawBubble{
		BubbleID: "b1",
		Text:     "the answer",
		Thinking: &ThinkingBlock{Text: "reasoning first"},
		CodeBlocks: []CodeBlock{
			{Language: "go", Content: "fmt.Println(42)"},
		},
	}

	blocks := ExtractBlocks(bubble)
	if len(blocks) != 3 {
		t.Fatalf("ExtractBlocks() returned %d blocks, want 3", len(blocks))
	}

	if blocks[0].Kind != BlockThinking || blocks[0].Content != "reasoning first" {
		t.Errorf("blocks[0] = %+v, want thinking block", blocks[0])
	}
	if blocks[1].Kind != BlockText || blocks[1].Content != "the answer" {
		t.Errorf("blocks[1] = %+v, want text block", blocks[1])
	}
	if blocks[2].Kind != BlockCode || blocks[2].Language != "go" {
		t.Errorf("blocks[2] = %+v, want go code block", blocks[2])
	}
}

func TestExtractBlocks_Empty(t *testing.T) {
	tests := []struct {
		name   string
		bubble *RawBubble
	}{
		{"no content", &RawBubble{BubbleID: "b1"}},
		{"whitespace text", &RawBubble{BubbleID: "b2", Text: "   \n  "}},
		{"empty thinking", &RawBubble{BubbleID: "b3", Thinking: &ThinkingBlock{Text: "  "}}},
		{"empty code", &RawBubble{BubbleID: "b4", CodeBlocks: []CodeBlock{{Content: ""}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if blocks := ExtractBlocks(tt.bubble); len(blocks) != 0 {
				t.Errorf("ExtractBlocks() = %+v, want none", blocks)
			}
		})
	}
}

func TestExtractBlocks_RichTextFallback(t *testing.T) {
	bubble := &RawBubble{
		BubbleID: "b1",
		RichText: `{"root":{"children":[{"type":"paragraph","children":[{"type":"text","text":"from rich text"}]}]}}`,
	}

	blocks := ExtractBlocks(bubble)
	if len(blocks) != 1 {
		t.Fatalf("ExtractBlocks() returned %d blocks, want 1", len(blocks))
	}
	if blocks[0].Kind != BlockText || blocks[0].Content != "from rich text" {
		t.Errorf("blocks[0] = %+v, want text from richText", blocks[0])
	}
}

func TestExtractBlocks_TextWinsOverRichText(t *testing.T) {
	bubble := &RawBubble{
		BubbleID: "b1",
		Text:     "primary",
		RichText: `{"root":{"children":[{"type":"text","text":"secondary"}]}}`,
	}

	blocks := ExtractBlocks(bubble)
	if len(blocks) != 1 || blocks[0].Content != "primary" {
		t.Errorf("ExtractBlocks() = %+v, want only the primary text", blocks)
	}
}
