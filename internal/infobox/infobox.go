// Package infobox isolates the summary box of a reference page and extracts
// fixed fields from its text with per-field regular expressions.
package infobox

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// ErrNoInfobox is returned when a page carries no summary box
var ErrNoInfobox = errors.New("page has no infobox")

// Elements that end a line of infobox text.
var blockTags = map[string]bool{
	"br":      true,
	"caption": true,
	"div":     true,
	"li":      true,
	"p":       true,
	"table":   true,
	"td":      true,
	"th":      true,
	"tr":      true,
	"ul":      true,
}

// FirstInfoboxText returns the text of the first element on the page
// classified as an infobox
func FirstInfoboxText(pageHTML string) (string, error) {
	doc, err := html.Parse(strings.NewReader(pageHTML))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	box := findFirst(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && hasClass(n, "infobox")
	})
	if box == nil {
		return "", ErrNoInfobox
	}

	return nodeText(box), nil
}

// findFirst finds the first node matching a predicate, depth first
func findFirst(n *html.Node, predicate func(*html.Node) bool) *html.Node {
	var result *html.Node

	var walk func(*html.Node) bool
	walk = func(node *html.Node) bool {
		if predicate(node) {
			result = node
			return true
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}

	walk(n)
	return result
}

// hasClass checks if a node carries a specific CSS class
func hasClass(n *html.Node, className string) bool {
	for _, attr := range n.Attr {
		if attr.Key == "class" {
			for _, class := range strings.Fields(attr.Val) {
				if class == className {
					return true
				}
			}
		}
	}
	return false
}

// nodeText flattens a node subtree to text, breaking lines at block-level
// element boundaries so adjacent infobox labels and values do not run
// together
func nodeText(n *html.Node) string {
	var b strings.Builder

	var walk func(*html.Node)
	walk = func(node *html.Node) {
		switch node.Type {
		case html.TextNode:
			b.WriteString(node.Data)
			return
		case html.ElementNode:
			if node.Data == "script" || node.Data == "style" {
				return
			}
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if node.Type == html.ElementNode && blockTags[node.Data] {
			b.WriteByte('\n')
		}
	}

	walk(n)
	return b.String()
}

var (
	spaceRuns   = regexp.MustCompile(` +`)
	newlineRuns = regexp.MustCompile(`\n+`)
)

// CleanText replaces every character outside the printable ASCII set with a
// space, then collapses runs of spaces to one space and runs of newlines to
// one newline
func CleanText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if printableASCII(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}

	noDupSpaces := spaceRuns.ReplaceAllString(b.String(), " ")
	return newlineRuns.ReplaceAllString(noDupSpaces, "\n")
}

func printableASCII(r rune) bool {
	if r >= 0x20 && r < 0x7f {
		return true
	}
	switch r {
	case '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
