package export

import "testing"

func TestNewExporter(t *testing.T) {
	tests := []struct {
		format  string
		wantExt string
		wantErr bool
	}{
		{"md", "md", false},
		{"markdown", "md", false},
		{"html", "html", false},
		{"json", "json", false},
		{"jsonl", "jsonl", false},
		{"yaml", "yaml", false},
		{"csv", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			exporter, err := NewExporter(tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewExporter(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if ext := exporter.Extension(); ext != tt.wantExt {
				t.Errorf("Extension() = %q, want %q", ext, tt.wantExt)
			}
		})
	}
}
