package tabs

import (
	stderrors "errors"

	"github.com/vango-dev/tabs/pkg/dom"
)

// Collection holds one Group per root in a document.
type Collection struct {
	groups []*Group
}

// NewCollection builds a Group for every element carrying the root marker,
// in document order. A root that cannot be built is skipped and its error is
// joined into the returned error; the collection still holds the rest.
func NewCollection(doc *dom.Document, opts ...Option) (*Collection, error) {
	cfg := newConfig(opts)
	if err := cfg.markers.Validate(); err != nil {
		return nil, err
	}

	c := &Collection{}
	var errs []error
	for _, root := range doc.QueryAll(cfg.markers.Root) {
		g, err := newGroup(root, cfg)
		if err != nil {
			cfg.logger.Warn("tab group skipped", "root", root.HID, "error", err)
			errs = append(errs, err)
			continue
		}
		c.groups = append(c.groups, g)
	}

	return c, stderrors.Join(errs...)
}

// Groups returns the groups in document order.
func (c *Collection) Groups() []*Group {
	out := make([]*Group, len(c.groups))
	copy(out, c.groups)
	return out
}

// Group returns the i-th group, or nil when out of range.
func (c *Collection) Group(i int) *Group {
	if i < 0 || i >= len(c.groups) {
		return nil
	}
	return c.groups[i]
}

// Len returns the number of groups.
func (c *Collection) Len() int {
	return len(c.groups)
}

// GroupFor returns the group whose root is n or the nearest ancestor of n.
func (c *Collection) GroupFor(n *dom.Node) *Group {
	for cur := n; cur != nil; cur = cur.Parent() {
		for _, g := range c.groups {
			if g.root == cur {
				return g
			}
		}
	}
	return nil
}
