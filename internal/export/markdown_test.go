package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iksnae/cursor-chat-export/internal"
)

func sampleSession() *internal.Session {
	return &internal.Session{
		ID:    "c1",
		Title: "Go strings",
		Messages: []internal.Message{
			{
				Role: internal.RoleUser,
				Blocks: []internal.ContentBlock{
					{Kind: internal.BlockText, Content: "How do I reverse a string?"},
				},
			},
			{
				Role: internal.RoleAssistant,
				Blocks: []internal.ContentBlock{
					{Kind: internal.BlockThinking, Content: "They want a Go snippet."},
					{Kind: internal.BlockText, Content: "Use a rune slice."},
					{Kind: internal.BlockCode, Language: "go", Content: "r := []rune(s)"},
				},
			},
		},
	}
}

func TestMarkdownExport(t *testing.T) {
	var buf bytes.Buffer
	if err := (&MarkdownExporter{}).Export(sampleSession(), &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "# Go strings\n") {
		t.Errorf("output should start with the title heading, got %q", out[:min(len(out), 40)])
	}

	wantParts := []string{
		"### User [chat]",
		"How do I reverse a string?",
		"### Assistant [thinking]",
		"They want a Go snippet.",
		"### Assistant [chat]",
		"```go\nr := []rune(s)\n```",
	}
	for _, want := range wantParts {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	// Thinking comes before the answer, matching block order.
	if strings.Index(out, "[thinking]") > strings.Index(out, "Use a rune slice.") {
		t.Error("thinking section should precede the answer text")
	}
}

func TestMarkdownExport_UntitledFallback(t *testing.T) {
	session := &internal.Session{
		ID: "c1",
		Messages: []internal.Message{
			{Role: internal.RoleUser, Blocks: []internal.ContentBlock{{Kind: internal.BlockText, Content: "hi"}}},
		},
	}

	var buf bytes.Buffer
	if err := (&MarkdownExporter{}).Export(session, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "# untitled\n") {
		t.Errorf("untitled session should use the fallback heading, got %q", buf.String())
	}
}
