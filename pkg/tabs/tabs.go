package tabs

import (
	"slices"
	"strconv"

	"github.com/vango-dev/tabs/internal/errors"
	"github.com/vango-dev/tabs/pkg/dom"
)

// Group is the controller for one tab group root.
//
// A Group is not safe for concurrent use; all calls must come from the
// goroutine that owns the document.
type Group struct {
	root    *dom.Node
	buttons []*dom.Node
	panels  []*dom.Node
	active  int
	limit   int
	cfg     config
}

// New builds a Group for root, binds its input listeners and renders the
// initial state. root must be attached to a dom.Document.
func New(root *dom.Node, opts ...Option) (*Group, error) {
	cfg := newConfig(opts)
	if err := cfg.markers.Validate(); err != nil {
		return nil, err
	}
	return newGroup(root, cfg)
}

func newGroup(root *dom.Node, cfg config) (*Group, error) {
	if root == nil || root.Document() == nil {
		return nil, errors.New("E004")
	}

	buttons := root.QueryAll(cfg.markers.Button)
	panels := root.QueryAll(cfg.markers.Panel)

	if len(buttons) == 0 {
		return nil, errors.New("E001").
			WithDetailf("root %s has no [%s] descendants", root.HID, cfg.markers.Button).
			WithSuggestion("Add at least one tab button or remove the " + cfg.markers.Root + " marker")
	}
	if len(panels) != len(buttons) {
		return nil, errors.New("E002").
			WithDetailf("root %s has %d buttons and %d panels", root.HID, len(buttons), len(panels)).
			WithSuggestion("Give every [" + cfg.markers.Button + "] a matching [" + cfg.markers.Panel + "]")
	}

	g := &Group{
		root:    root,
		buttons: buttons,
		panels:  panels,
		limit:   len(buttons) - 1,
		cfg:     cfg,
	}

	g.active = slices.IndexFunc(buttons, func(b *dom.Node) bool {
		return b.HasClass(cfg.markers.ActiveClass)
	})
	if g.active == -1 {
		g.active = 0
	}

	g.bindEvents()
	g.Render()

	return g, nil
}

// Root returns the group's root element.
func (g *Group) Root() *dom.Node { return g.root }

// Buttons returns the button snapshot in document order.
func (g *Group) Buttons() []*dom.Node { return slices.Clone(g.buttons) }

// Panels returns the panel snapshot in document order.
func (g *Group) Panels() []*dom.Node { return slices.Clone(g.panels) }

// Len returns the number of tabs.
func (g *Group) Len() int { return len(g.buttons) }

// Active returns the active index.
func (g *Group) Active() int { return g.active }

// Markers returns the markers the group was built with.
func (g *Group) Markers() Markers { return g.cfg.markers }

// Render writes the active index into the tree: the state class on buttons
// and panels, aria-selected and tabindex on buttons. Nothing else is touched.
func (g *Group) Render() {
	for i, b := range g.buttons {
		isActive := i == g.active
		b.ToggleClass(g.cfg.markers.ActiveClass, isActive)
		b.SetAttribute(AttrAriaSelected, strconv.FormatBool(isActive))
		if isActive {
			b.SetAttribute(AttrTabIndex, "0")
		} else {
			b.SetAttribute(AttrTabIndex, "-1")
		}
	}
	for i, p := range g.panels {
		p.ToggleClass(g.cfg.markers.ActiveClass, i == g.active)
	}
}

// Activate selects index, renders and moves focus to its button.
// index must be in [0, Len()); it is not clamped.
func (g *Group) Activate(index int) {
	g.activate(index, SourceProgrammatic, ActionNone)
}

// Previous selects the previous tab, wrapping from the first to the last.
func (g *Group) Previous() { g.step(ActionPrevious, SourceProgrammatic) }

// Next selects the next tab, wrapping from the last to the first.
func (g *Group) Next() { g.step(ActionNext, SourceProgrammatic) }

// First selects the first tab.
func (g *Group) First() { g.step(ActionFirst, SourceProgrammatic) }

// Last selects the last tab.
func (g *Group) Last() { g.step(ActionLast, SourceProgrammatic) }

// Perform runs a navigation action. ActionNone does nothing.
func (g *Group) Perform(a Action) { g.step(a, SourceProgrammatic) }

// HandleClick selects index and renders without moving focus; the pointer
// already focused the button on the client.
func (g *Group) HandleClick(index int) {
	from := g.active
	g.active = index
	g.Render()
	g.notify(from, SourceClick, ActionNone)
}

// HandleKeyDown applies the key binding for code, if any.
func (g *Group) HandleKeyDown(code string, meta bool) {
	g.step(ActionForKey(code, meta), SourceKeyboard)
}

func (g *Group) step(a Action, src Source) {
	if target, ok := g.target(a); ok {
		g.activate(target, src, a)
	}
}

// target computes the index an action leads to.
func (g *Group) target(a Action) (int, bool) {
	switch a {
	case ActionPrevious:
		if g.active == 0 {
			return g.limit, true
		}
		return g.active - 1, true
	case ActionNext:
		if g.active == g.limit {
			return 0, true
		}
		return g.active + 1, true
	case ActionFirst:
		return 0, true
	case ActionLast:
		return g.limit, true
	default:
		return 0, false
	}
}

// activate is the single path that changes the index and moves focus.
func (g *Group) activate(index int, src Source, a Action) {
	from := g.active
	g.active = index
	g.Render()
	g.root.Document().Focus(g.buttons[index])
	g.notify(from, src, a)
}

func (g *Group) notify(from int, src Source, a Action) {
	g.cfg.logger.Debug("tab activated",
		"root", g.root.HID,
		"from", from,
		"to", g.active,
		"source", src.String(),
		"action", a.String())

	if g.cfg.onChange != nil {
		g.cfg.onChange(Change{
			Group:  g,
			From:   from,
			To:     g.active,
			Source: src,
			Action: a,
		})
	}
}

func (g *Group) bindEvents() {
	for _, b := range g.buttons {
		b.AddEventListener(dom.EventClick, g.onButtonClick)
	}
	g.root.AddEventListener(dom.EventKeyDown, g.onKeyDown)
}

func (g *Group) onButtonClick(ev *dom.Event) {
	if i := slices.Index(g.buttons, ev.CurrentTarget); i >= 0 {
		g.HandleClick(i)
	}
}

func (g *Group) onKeyDown(ev *dom.Event) {
	g.HandleKeyDown(ev.Code, ev.Meta)
}
