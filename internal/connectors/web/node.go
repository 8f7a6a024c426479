package web

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Parse parses an HTML document.
func Parse(page []byte) (*html.Node, error) {
	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return doc, nil
}

// Match is a node predicate.
type Match func(*html.Node) bool

// Element matches element nodes with the given tag.
func Element(tag string) Match {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	}
}

// ElementWithClass matches elements with the given tag whose class list
// contains class as a whole token.
func ElementWithClass(tag, class string) Match {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag && HasClass(n, class)
	}
}

// ElementWithAttr matches elements with the given tag and attribute value.
func ElementWithAttr(tag, key, val string) Match {
	return func(n *html.Node) bool {
		if n.Type != html.ElementNode || n.Data != tag {
			return false
		}
		v, ok := Attr(n, key)
		return ok && v == val
	}
}

// Find returns the first descendant of n, in document order, that matches.
func Find(n *html.Node, match Match) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if match(c) {
			return c
		}
		if found := Find(c, match); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant of n, in document order, that matches.
// Matching nodes are still descended into.
func FindAll(n *html.Node, match Match) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if match(c) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

// Attr returns the value of an attribute.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasClass reports whether the class attribute of n contains class.
func HasClass(n *html.Node, class string) bool {
	v, ok := Attr(n, "class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

// Fragments returns the text nodes under n in document order, each trimmed,
// with empty ones dropped. Script and style content is ignored.
func Fragments(n *html.Node) []string {
	var out []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			if s := strings.TrimSpace(n.Data); s != "" {
				out = append(out, s)
			}
			return
		case n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style"):
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

// Text joins the trimmed text fragments under n with sep.
func Text(n *html.Node, sep string) string {
	return strings.Join(Fragments(n), sep)
}

// RawText returns all text under n exactly as written.
func RawText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
