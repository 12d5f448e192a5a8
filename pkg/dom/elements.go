package dom

// Attr is a single attribute passed to an element factory.
type Attr struct {
	Key   string
	Value string
}

// El creates an element with the given tag.
// Arguments can be: nil, Attr, []Attr, *Node, []*Node, string (text).
func El(tag string, args ...any) *Node {
	node := &Node{
		Kind: ElementNode,
		Tag:  tag,
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case Attr:
			node.setInitial(v)
		case []Attr:
			for _, a := range v {
				node.setInitial(a)
			}
		case *Node:
			node.AppendChild(v)
		case []*Node:
			for _, c := range v {
				node.AppendChild(c)
			}
		case string:
			node.AppendChild(Text(v))
		}
	}

	return node
}

// setInitial sets an attribute during construction, merging classes.
func (n *Node) setInitial(a Attr) {
	if a.Key == "" {
		return
	}
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	if a.Key == "class" {
		if existing := n.attrs["class"]; existing != "" && a.Value != "" {
			n.attrs["class"] = existing + " " + a.Value
			return
		}
	}
	n.attrs[a.Key] = a.Value
}

// Text creates a text node.
func Text(content string) *Node {
	return &Node{Kind: TextNode, Text: content}
}

// Html creates an <html> element.
func Html(args ...any) *Node { return El("html", args...) }

// Head creates a <head> element.
func Head(args ...any) *Node { return El("head", args...) }

// Body creates a <body> element.
func Body(args ...any) *Node { return El("body", args...) }

// Div creates a <div> element.
func Div(args ...any) *Node { return El("div", args...) }

// Section creates a <section> element.
func Section(args ...any) *Node { return El("section", args...) }

// Button creates a <button> element.
func Button(args ...any) *Node { return El("button", args...) }

// Span creates a <span> element.
func Span(args ...any) *Node { return El("span", args...) }

// P creates a <p> element.
func P(args ...any) *Node { return El("p", args...) }
