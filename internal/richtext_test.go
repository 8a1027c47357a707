package internal

import (
	"strings"
	"testing"
)

func TestExtractTextFromRichText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "lexical root with paragraphs",
			input: `{"root":{"children":[{"type":"paragraph","children":[{"type":"text","text":"hello "},{"type":"text","text":"world"}]}]}}`,
			want:  []string{"hello world"},
		},
		{
			name:  "code node fenced",
			input: `{"root":{"children":[{"type":"code","children":[{"type":"text","text":"x := 1"}]}]}}`,
			want:  []string{"```", "x := 1"},
		},
		{
			name:  "direct children array",
			input: `{"children":[{"type":"text","text":"direct"}]}`,
			want:  []string{"direct"},
		},
		{
			name:  "unknown node types recursed",
			input: `{"root":{"children":[{"type":"mystery","children":[{"type":"text","text":"nested"}]}]}}`,
			want:  []string{"nested"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:    "invalid JSON",
			input:   `{broken`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractTextFromRichText(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractTextFromRichText() error = %v, wantErr %v", err, tt.wantErr)
			}
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("output should contain %q, got %q", want, got)
				}
			}
		})
	}
}
