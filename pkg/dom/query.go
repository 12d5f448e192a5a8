package dom

// QueryAll returns the descendants of n (excluding n) that carry the
// attribute, in document order.
func (n *Node) QueryAll(attr string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		c.Walk(func(d *Node) bool {
			if d.Kind == ElementNode && d.HasAttribute(attr) {
				out = append(out, d)
			}
			return true
		})
	}
	return out
}

// Query returns the first descendant carrying the attribute, or nil.
func (n *Node) Query(attr string) *Node {
	if all := n.QueryAll(attr); len(all) > 0 {
		return all[0]
	}
	return nil
}
