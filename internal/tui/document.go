package tui

import "strings"

// document is the payload the editor autosaves.
type document struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// documentFromText derives the title from the first non-empty line.
func documentFromText(text string) document {
	var title string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			title = line
			break
		}
	}
	return document{Title: title, Body: text}
}

// text is what the editor shows for a document received from the server.
func (d document) text() string {
	if d.Body == "" {
		return d.Title
	}
	return d.Body
}
