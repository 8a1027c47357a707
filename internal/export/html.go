package export

import (
	"html/template"
	"io"

	"github.com/iksnae/cursor-chat-export/internal"
)

const tailwindCDN = "https://cdn.jsdelivr.net/npm/tailwindcss@latest/dist/tailwind.min.css"

// htmlPage is the standalone page rendered per session. Content flows through
// html/template so everything is escaped.
const htmlPage = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>{{.Title}}</title>
  <link href="{{.Stylesheet}}" rel="stylesheet" />
  <style>
    body { font-family: ui-sans-serif, system-ui, -apple-system, Segoe UI, Roboto, Arial, Noto Sans, Ubuntu, Cantarell, Helvetica Neue, sans-serif; }
    .prose { white-space: pre-wrap; }
  </style>
</head>
<body class="bg-gray-100">
  <main class="max-w-3xl mx-auto py-8 px-4">
    <h1 class="text-3xl font-bold mb-6">{{.Title}}</h1>
{{- range .Items}}
    <div class="p-4 my-3 border rounded {{.Tint}}">
      <div class="text-xs text-gray-500 mb-1">{{.Label}}</div>
{{- if .Preformatted}}
      <pre class="whitespace-pre-wrap text-gray-700">{{.Content}}</pre>
{{- else}}
      <div class="prose max-w-none">{{.Content}}</div>
{{- end}}
    </div>
{{- end}}
  </main>
</body>
</html>
`

var htmlTemplate = template.Must(template.New("session").Parse(htmlPage))

type htmlItem struct {
	Label        string
	Tint         string
	Preformatted bool
	Content      string
}

type htmlData struct {
	Title      string
	Stylesheet string
	Items      []htmlItem
}

// HTMLExporter exports sessions as styled standalone HTML pages
type HTMLExporter struct{}

// Export renders a session as a Tailwind-styled HTML document, one card per
// content block with role-tinted borders.
func (e *HTMLExporter) Export(session *internal.Session, w io.Writer) error {
	data := htmlData{
		Title:      session.DisplayTitle(),
		Stylesheet: tailwindCDN,
	}

	for _, msg := range session.Messages {
		role := roleLabel(msg.Role)
		tint := roleTint(msg.Role)
		for _, block := range msg.Blocks {
			item := htmlItem{Tint: tint}
			switch block.Kind {
			case internal.BlockThinking:
				item.Label = role + " [thinking]"
				item.Preformatted = true
				item.Content = block.Content
			case internal.BlockCode:
				item.Label = role + " [chat]"
				item.Preformatted = true
				item.Content = block.Content
			default:
				item.Label = role + " [chat]"
				item.Content = block.Content
			}
			data.Items = append(data.Items, item)
		}
	}

	return htmlTemplate.Execute(w, data)
}

// Extension returns the file extension for this format
func (e *HTMLExporter) Extension() string {
	return "html"
}

func roleTint(role string) string {
	switch role {
	case internal.RoleUser:
		return "bg-blue-50 border-blue-200"
	case internal.RoleAssistant:
		return "bg-green-50 border-green-200"
	default:
		return "bg-gray-50 border-gray-200"
	}
}
