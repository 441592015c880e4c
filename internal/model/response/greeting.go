package response

import (
	"strconv"
	"strings"
)

// GreetingPage is the body every greeting server returns. Name is only
// rendered when HasName is set, so an empty name still produces its line.
type GreetingPage struct {
	Address string
	Port    int
	Name    string
	HasName bool
}

func (p GreetingPage) Render() string {
	var b strings.Builder

	b.WriteString("<html><body><h1>Hello, World!</h1>")
	b.WriteString("<p>Server Address: ")
	b.WriteString(p.Address)
	b.WriteString("</p><p>Server Port: ")
	b.WriteString(strconv.Itoa(p.Port))
	b.WriteString("</p>")
	if p.HasName {
		b.WriteString("<p>Server Name: ")
		b.WriteString(p.Name)
		b.WriteString("</p>")
	}
	b.WriteString("</body></html>")

	return b.String()
}
