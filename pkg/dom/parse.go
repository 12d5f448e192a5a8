package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Parse builds a Document from HTML markup. The markup is parsed with the
// HTML5 algorithm, so a fragment is wrapped in html/head/body like a browser
// would. Comments are dropped.
func Parse(r io.Reader) (*Document, error) {
	tree, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parse html: %w", err)
	}

	var root *Node
	doctype := false
	for c := tree.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.DoctypeNode:
			doctype = true
		case html.ElementNode:
			if root == nil {
				root = convert(c)
			}
		}
	}
	if root == nil {
		return nil, fmt.Errorf("dom: no root element")
	}

	doc := NewDocument(root)
	doc.doctype = doctype
	return doc, nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(markup string) (*Document, error) {
	return Parse(strings.NewReader(markup))
}

// convert copies an x/net/html subtree into a detached Node tree.
func convert(src *html.Node) *Node {
	switch src.Type {
	case html.TextNode:
		return Text(src.Data)
	case html.ElementNode:
		n := &Node{Kind: ElementNode, Tag: src.Data}
		for _, a := range src.Attr {
			key := a.Key
			if a.Namespace != "" {
				key = a.Namespace + ":" + a.Key
			}
			n.setInitial(Attr{Key: key, Value: a.Val})
		}
		for c := src.FirstChild; c != nil; c = c.NextSibling {
			if child := convert(c); child != nil {
				n.AppendChild(child)
			}
		}
		return n
	default:
		return nil
	}
}
