package integrity

import "github.com/partbench/partbench/pkg/craft"

// isAncestor reports whether candidate equals p or any transitive parent of
// p. The walk follows the parent chain to the root, so it terminates on any
// tree whose parent references are acyclic.
func (e *Engine) isAncestor(p *craft.Part, candidate craft.UID) bool {
	for cur := p; cur != nil; {
		if cur.UID == candidate {
			return true
		}
		next, ok := e.tree.Part(cur.Parent)
		if !ok {
			return false
		}
		cur = next
	}
	return false
}

// isDescendant reports whether candidate appears anywhere in the transitive
// child set of p.
func (e *Engine) isDescendant(p *craft.Part, candidate craft.UID) bool {
	found := false
	e.tree.Walk(p.UID, func(d *craft.Part) bool {
		if d.UID != p.UID && d.UID == candidate {
			found = true
			return false
		}
		return true
	})
	return found
}

// hasChildCounterparts reports whether any member of p's symmetry group is a
// structural descendant of p.
func (e *Engine) hasChildCounterparts(p *craft.Part) (craft.UID, bool) {
	for _, uid := range p.Symmetry {
		if e.isDescendant(p, uid) {
			return uid, true
		}
	}
	return craft.None, false
}

// hasAncestralCounterpart reports whether any member of p's symmetry group
// is a structural ancestor of p.
func (e *Engine) hasAncestralCounterpart(p *craft.Part) (craft.UID, bool) {
	for _, uid := range p.Symmetry {
		if e.isAncestor(p, uid) {
			return uid, true
		}
	}
	return craft.None, false
}

// breakability runs the six-rule analysis for p, short-circuiting on the
// first failing rule. Rule 5 recurses through symmetric children, so the
// result is derived bottom-up through every symmetry-bearing descendant.
func (e *Engine) breakability(p *craft.Part) Verdict {
	// Rule 1: the part must be in a symmetry group.
	if !p.HasSymmetry() {
		return notBreakable(p, CategoryNotSymmetrical, craft.None,
			"%s is not in a symmetry group", label(p))
	}

	// Rule 2: no counterpart below the part. Breaking would entangle the
	// group with the part's own subtree.
	if uid, ok := e.hasChildCounterparts(p); ok {
		return notBreakable(p, CategoryDescendantCounterpart, uid,
			"%s has counterpart %s among its descendants", label(p), e.labelUID(uid))
	}

	// Rule 3: no counterpart above the part.
	if uid, ok := e.hasAncestralCounterpart(p); ok {
		return notBreakable(p, CategoryAncestralCounterpart, uid,
			"%s has counterpart %s among its ancestors", label(p), e.labelUID(uid))
	}

	// Rule 4: the part must hang off a common parent.
	if p.IsRoot() {
		return notBreakable(p, CategoryNoParent, craft.None,
			"%s is the root part and has no parent", label(p))
	}

	// Rule 5: every child is either asymmetric or itself breakable.
	for _, childUID := range p.Children {
		child, ok := e.tree.Part(childUID)
		if !ok {
			continue
		}
		if !child.HasSymmetry() {
			continue
		}
		if v := e.breakability(child); !v.OK {
			return notBreakable(p, CategoryChildNotBreakable, child.UID,
				"symmetry of %s cannot be broken: child %s is not breakable",
				label(p), label(child))
		}
	}

	// Rule 6: every counterpart still hangs in the tree.
	for _, uid := range p.Symmetry {
		counterpart, ok := e.tree.Part(uid)
		if !ok || counterpart.IsRoot() {
			return notBreakable(p, CategoryCounterpartNoParent, uid,
				"counterpart %s of %s has no parent", e.labelUID(uid), label(p))
		}
	}

	return breakable(p)
}

// labelUID formats a UID for rationale text, tolerating parts that no longer
// resolve in the tree.
func (e *Engine) labelUID(uid craft.UID) string {
	if p, ok := e.tree.Part(uid); ok {
		return label(p)
	}
	return label(&craft.Part{UID: uid})
}
