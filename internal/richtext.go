package internal

import (
	"encoding/json"
	"strings"
)

// ExtractTextFromRichText walks a bubble's richText tree (a Lexical editor
// document) and collects the plain text it contains. Code nodes are rendered
// as markdown fences. Returns "" when nothing readable is found.
func ExtractTextFromRichText(richTextJSON string) (string, error) {
	if richTextJSON == "" {
		return "", nil
	}

	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(richTextJSON), &doc); err != nil {
		return "", &ParseError{Key: "richText", Err: err}
	}

	if root, ok := doc["root"].(map[string]interface{}); ok {
		if children, ok := root["children"].([]interface{}); ok {
			return strings.TrimSpace(collectRichText(children)), nil
		}
	}
	if children, ok := doc["children"].([]interface{}); ok {
		return strings.TrimSpace(collectRichText(children)), nil
	}

	return "", nil
}

func collectRichText(children []interface{}) string {
	var sb strings.Builder
	for _, child := range children {
		node, ok := child.(map[string]interface{})
		if !ok {
			continue
		}

		nodeType, _ := node["type"].(string)
		nodeText, _ := node["text"].(string)

		switch nodeType {
		case "text":
			sb.WriteString(nodeText)
		case "linebreak", "paragraph":
			if nested, ok := node["children"].([]interface{}); ok {
				sb.WriteString(collectRichText(nested))
			}
			sb.WriteString("\n")
		case "code":
			if nested, ok := node["children"].([]interface{}); ok {
				code := collectRichText(nested)
				if code != "" {
					sb.WriteString("\n```\n" + code + "\n```\n")
				}
			}
		default:
			if nodeText != "" {
				sb.WriteString(nodeText)
			}
			if nested, ok := node["children"].([]interface{}); ok {
				sb.WriteString(collectRichText(nested))
			}
		}
	}
	return sb.String()
}
