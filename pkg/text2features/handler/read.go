package handler

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// readText loads a document as text. Bytes that are not valid UTF-8 are
// dropped. HTML files are reduced to their visible text.
func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	text := strings.ToValidUTF8(string(data), "")

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return htmlText(text), nil
	}
	return text, nil
}

// skipped elements never contribute text.
var skipped = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Noscript: true,
	atom.Template: true,
}

// blocks end with a blank line so their text never runs into the next
// block's sentence.
var blocks = map[atom.Atom]bool{
	atom.Title: true, atom.P: true, atom.Div: true, atom.Br: true,
	atom.Li: true, atom.Tr: true, atom.Td: true, atom.Th: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Section: true, atom.Article: true, atom.Blockquote: true, atom.Pre: true,
	atom.Header: true, atom.Footer: true, atom.Dd: true, atom.Dt: true,
}

func htmlText(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// Fallback to string if parsing fails
		return s
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.ElementNode && skipped[n.DataAtom] {
			return
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
		if n.Type == html.ElementNode && blocks[n.DataAtom] {
			buf.WriteString("\n\n")
		}
	}
	extractText(doc)

	return strings.TrimSpace(buf.String())
}
