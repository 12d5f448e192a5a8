package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/vango-dev/tabs/pkg/dom"
)

// HIDAttr carries an element's hydration ID in rendered HTML.
const HIDAttr = "data-hid"

// EventAttrPrefix prefixes the markers for events the server listens to.
const EventAttrPrefix = "data-on-"

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables indented output. Whitespace text nodes are added, so
	// it should only be used for inspection.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces.
	Indent string
}

// Renderer writes dom trees as HTML.
type Renderer struct {
	config RendererConfig

	// beforeClose runs before an element's closing tag is written.
	beforeClose func(w io.Writer, n *dom.Node) error
	// afterClose runs after an element's closing tag is written.
	afterClose func(n *dom.Node)
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a node and its subtree.
func (r *Renderer) RenderToString(node *dom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a node and its subtree to w.
func (r *Renderer) RenderToWriter(w io.Writer, node *dom.Node) error {
	return r.renderNode(w, node, 0, false)
}

func (r *Renderer) renderNode(w io.Writer, node *dom.Node, depth int, raw bool) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case dom.ElementNode:
		return r.renderElement(w, node, depth)
	case dom.TextNode:
		text := node.Text
		if !raw {
			text = escapeHTML(text)
		}
		_, err := io.WriteString(w, text)
		return err
	default:
		return fmt.Errorf("render: unknown node kind %s", node.Kind)
	}
}

func (r *Renderer) renderElement(w io.Writer, node *dom.Node, depth int) error {
	tag := node.Tag

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if isVoidElement(tag) {
		if r.config.Pretty {
			io.WriteString(w, "\n")
		}
		return nil
	}

	raw := isRawTextElement(tag)
	block := r.config.Pretty && !raw && !isInlineElement(tag) && hasElementChild(node)
	if block {
		io.WriteString(w, "\n")
	}

	for _, child := range node.Children {
		if block && child.Kind == dom.TextNode && strings.TrimSpace(child.Text) == "" {
			continue
		}
		if err := r.renderNode(w, child, depth+1, raw); err != nil {
			return err
		}
		if block && child.Kind == dom.TextNode {
			io.WriteString(w, "\n")
		}
	}

	if r.beforeClose != nil {
		if err := r.beforeClose(w, node); err != nil {
			return err
		}
	}

	if block {
		r.writeIndent(w, depth)
	}
	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	if r.config.Pretty {
		io.WriteString(w, "\n")
	}

	if r.afterClose != nil {
		r.afterClose(node)
	}
	return nil
}

// renderAttributes writes attributes in sorted order, then the hydration ID
// and event markers. Empty values are written as bare attributes.
func (r *Renderer) renderAttributes(w io.Writer, node *dom.Node) error {
	for _, key := range node.AttributeNames() {
		if key == HIDAttr {
			continue
		}
		value, _ := node.Attribute(key)
		var err error
		if value == "" {
			_, err = fmt.Fprintf(w, " %s", key)
		} else {
			_, err = fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(value))
		}
		if err != nil {
			return err
		}
	}

	if node.HID != "" {
		if _, err := fmt.Fprintf(w, ` %s="%s"`, HIDAttr, node.HID); err != nil {
			return err
		}
	}

	for _, ev := range node.ListenerTypes() {
		if _, err := fmt.Fprintf(w, ` %s%s="true"`, EventAttrPrefix, ev); err != nil {
			return err
		}
	}

	return nil
}

func hasElementChild(n *dom.Node) bool {
	for _, c := range n.Children {
		if c.Kind == dom.ElementNode {
			return true
		}
	}
	return false
}

func (r *Renderer) writeIndent(w io.Writer, depth int) {
	io.WriteString(w, strings.Repeat(r.config.Indent, depth))
}
