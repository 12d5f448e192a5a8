// Package tabs implements accessible tab groups over a dom.Document.
//
// A tab group is a root element carrying the root marker, with button and
// panel descendants carrying the button and panel markers. Exactly one
// button/panel pair is active at a time; the active pair carries the state
// class, the active button has aria-selected="true" and tabindex="0", and
// every other button has aria-selected="false" and tabindex="-1".
//
//	<div data-js-tabs>
//	  <button data-js-tabs-button>One</button>
//	  <button data-js-tabs-button class="is-active">Two</button>
//	  <div data-js-tabs-content>...</div>
//	  <div data-js-tabs-content>...</div>
//	</div>
//
// # Input
//
// Clicking a button selects it without moving focus. Keyboard navigation on
// the root selects and focuses:
//
//	ArrowLeft / ArrowRight   previous / next, wrapping around
//	Home / End               first / last
//	Meta+ArrowLeft / Right   first / last
//
// # Usage
//
//	doc, _ := dom.ParseString(markup)
//	c, err := tabs.NewCollection(doc)
//	if err != nil {
//	    // some roots were rejected; c still holds the valid groups
//	}
//	c.Group(0).Next()
//
// Button and panel lists are snapshots taken at construction. Tabs added to
// the tree later are not picked up.
package tabs
