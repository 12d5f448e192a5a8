// Package tabstest provides testing helpers for pages with tab groups.
//
// A Page parses markup, builds every tab group and then replays clicks and
// key presses the way the browser client would, returning the patches each
// interaction produced.
//
// # Quick Start
//
//	func TestFAQTabs(t *testing.T) {
//	    p := tabstest.NewPage(t, faqMarkup)
//	    g := p.Group(t, 0)
//
//	    p.ClickTab(t, g, 2)
//	    tabstest.ExpectActive(t, g, 2)
//
//	    p.Press(t, g, "ArrowRight", false)
//	    tabstest.ExpectActive(t, g, 0)
//	    tabstest.ExpectFocused(t, p, g.Buttons()[0])
//	}
//
// # Render Assertions
//
// Assert on rendered HTML output:
//
//	tabstest.ExpectContains(t, p, `aria-selected="true"`)
//	tabstest.ExpectAttribute(t, p, "tabindex", "0")
package tabstest
