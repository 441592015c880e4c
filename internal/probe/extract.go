package probe

import "strings"

const (
	nameStart = "<p>Server Name: "
	nameEnd   = "</p>"
)

// ExtractServerName pulls the server name out of a greeting page. It returns
// "" when the page has no name line.
func ExtractServerName(html string) string {
	start := strings.Index(html, nameStart)
	if start == -1 {
		return ""
	}
	start += len(nameStart)

	end := strings.Index(html[start:], nameEnd)
	if end == -1 {
		return ""
	}

	return html[start : start+end]
}
