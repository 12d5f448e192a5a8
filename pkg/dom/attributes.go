package dom

import (
	"strconv"
	"strings"
)

// A creates an arbitrary attribute.
func A(key, value string) Attr { return Attr{Key: key, Value: value} }

// ID sets the id attribute.
func ID(id string) Attr { return A("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return A("class", strings.Join(classes, " ")) }

// ClassIf adds a class conditionally.
func ClassIf(condition bool, class string) Attr {
	if condition {
		return A("class", class)
	}
	return Attr{}
}

// Data creates a data-* attribute.
// Example: Data("js-tabs", "") → data-js-tabs=""
func Data(key, value string) Attr { return A("data-"+key, value) }

// Role sets the role attribute.
func Role(role string) Attr { return A("role", role) }

// AriaSelected sets the aria-selected attribute.
func AriaSelected(selected bool) Attr { return A("aria-selected", strconv.FormatBool(selected)) }

// AriaControls sets the aria-controls attribute.
func AriaControls(id string) Attr { return A("aria-controls", id) }

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attr { return A("tabindex", strconv.Itoa(index)) }

// Type sets the type attribute.
func Type(t string) Attr { return A("type", t) }
