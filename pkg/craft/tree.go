package craft

import (
	"errors"
	"maps"
	"slices"
)

var (
	// ErrInvalidUID is returned by [Tree.AddPart] when the part's UID is
	// None. All parts must have non-zero identifiers.
	ErrInvalidUID = errors.New("part UID must not be zero")

	// ErrDuplicateUID is returned by [Tree.AddPart] when a part with the
	// same UID already exists in the tree. UIDs must be unique.
	ErrDuplicateUID = errors.New("duplicate part UID")

	// ErrUnknownPart is returned when an operation references a UID that
	// does not exist in the tree.
	ErrUnknownPart = errors.New("unknown part")

	// ErrUnknownParent is returned by [Tree.AddPart] when the part's Parent
	// references a UID that does not exist in the tree.
	ErrUnknownParent = errors.New("unknown parent part")

	// ErrMultipleRoots is returned by [Tree.AddPart] when a second parentless
	// part is added. A craft has exactly one root.
	ErrMultipleRoots = errors.New("tree already has a root part")

	// ErrRootPart is returned by [Tree.Remove] when the target is the tree
	// root. The root is never removable.
	ErrRootPart = errors.New("cannot remove the root part")

	// ErrHasChildren is returned by [Tree.Remove] when the target still has
	// children. Children must be removed or re-attached first; the tree
	// never re-parents orphans implicitly.
	ErrHasChildren = errors.New("part still has children")

	// ErrSelfSymmetry is returned by [Tree.LinkSymmetry] when a group of
	// fewer than two parts is requested, or when the designated root is not
	// a member of the group.
	ErrSelfSymmetry = errors.New("symmetry group needs at least two distinct parts")
)

// Tree is a rooted tree of parts with symmetry cross links.
//
// The zero value is not usable - use New to create a valid Tree instance.
// Tree is not safe for concurrent use without external synchronization.
type Tree struct {
	parts map[UID]*Part
	root  UID
}

// New creates an empty part tree.
func New() *Tree {
	return &Tree{parts: make(map[UID]*Part)}
}

// AddPart adds a part to the tree and attaches it to its parent's child
// list. The first part added with Parent == None becomes the tree root.
//
// Returns ErrInvalidUID if the UID is None, ErrDuplicateUID if the UID is
// already in use, ErrUnknownParent if Parent references a missing part, or
// ErrMultipleRoots if a root already exists and Parent is None.
//
// The part's Children and Symmetry lists are ignored on insert; structure
// is built up through parent references and [Tree.LinkSymmetry].
func (t *Tree) AddPart(p Part) error {
	if p.UID == None {
		return ErrInvalidUID
	}
	if _, exists := t.parts[p.UID]; exists {
		return ErrDuplicateUID
	}
	if p.Parent == None && t.root != None {
		return ErrMultipleRoots
	}
	if p.Parent != None {
		if _, ok := t.parts[p.Parent]; !ok {
			return ErrUnknownParent
		}
	}

	p.Children = nil
	p.Symmetry = nil
	part := &p
	t.parts[part.UID] = part
	if part.Parent == None {
		t.root = part.UID
	} else {
		parent := t.parts[part.Parent]
		parent.Children = append(parent.Children, part.UID)
	}
	return nil
}

// Remove detaches a leaf part from its parent and deletes its record from
// the arena. The part's UID is never reused by the tree.
//
// Returns ErrUnknownPart if the UID does not exist, ErrRootPart if the
// target is the tree root, or ErrHasChildren if the target still has
// children. Remove does not touch symmetry links - callers are expected to
// dissolve the part's symmetry group first (see package integrity).
func (t *Tree) Remove(uid UID) error {
	part, ok := t.parts[uid]
	if !ok {
		return ErrUnknownPart
	}
	if part.IsRoot() {
		return ErrRootPart
	}
	if !part.IsLeaf() {
		return ErrHasChildren
	}

	parent := t.parts[part.Parent]
	parent.Children = slices.DeleteFunc(parent.Children, func(c UID) bool { return c == uid })
	delete(t.parts, uid)
	return nil
}

// LinkSymmetry establishes a mutual symmetry group over the given parts,
// with root as the designated representative (marker 0). Every member's
// counterpart list is replaced with the other members, in the order given.
//
// Returns ErrSelfSymmetry if fewer than two distinct parts are given or if
// root is not among them, and ErrUnknownPart if any UID does not exist.
// Existing symmetry links on the members are overwritten, not merged.
func (t *Tree) LinkSymmetry(group []UID, root UID) error {
	members := slices.Compact(slices.Clone(group))
	if len(members) < 2 || !slices.Contains(members, root) {
		return ErrSelfSymmetry
	}
	for _, uid := range members {
		if _, ok := t.parts[uid]; !ok {
			return ErrUnknownPart
		}
	}

	for _, uid := range members {
		part := t.parts[uid]
		part.Symmetry = part.Symmetry[:0]
		for _, other := range members {
			if other != uid {
				part.Symmetry = append(part.Symmetry, other)
			}
		}
		if uid == root {
			part.SymmetryMode = SymmetryRoot
		} else {
			part.SymmetryMode = 1
		}
	}
	return nil
}

// SetSymmetry overwrites the part's counterpart list and symmetry marker
// verbatim, without the mutual-consistency bookkeeping of [Tree.LinkSymmetry].
// It exists for importers that reconstruct symmetry state recorded
// elsewhere; run [Tree.Validate] afterwards to reject one-sided groups.
// Returns ErrUnknownPart if the UID does not exist.
func (t *Tree) SetSymmetry(uid UID, counterparts []UID, mode int) error {
	p, ok := t.parts[uid]
	if !ok {
		return ErrUnknownPart
	}
	p.Symmetry = slices.Clone(counterparts)
	p.SymmetryMode = mode
	return nil
}

// ClearSymmetry empties the part's counterpart list and resets its symmetry
// marker to [SymmetryRoot]. Returns ErrUnknownPart if the UID does not exist.
//
// Mutual consistency across the group is the caller's concern: during a
// group-wide break the relation is transiently one-sided until every member
// has been cleared.
func (t *Tree) ClearSymmetry(uid UID) error {
	p, ok := t.parts[uid]
	if !ok {
		return ErrUnknownPart
	}
	p.Symmetry = nil
	p.SymmetryMode = SymmetryRoot
	return nil
}

// Part returns the part with the given UID and true, or nil and false if
// not found. The returned pointer refers to the live record, so field reads
// observe subsequent tree mutations; callers must not modify it directly.
func (t *Tree) Part(uid UID) (*Part, bool) {
	p, ok := t.parts[uid]
	return p, ok
}

// Root returns the tree's root part, or nil for an empty tree.
func (t *Tree) Root() *Part {
	if t.root == None {
		return nil
	}
	return t.parts[t.root]
}

// Count returns the number of parts in the tree.
func (t *Tree) Count() int { return len(t.parts) }

// Parts returns all parts sorted by UID. The slice is freshly allocated but
// contains pointers to the live records.
func (t *Tree) Parts() []*Part {
	uids := slices.Sorted(maps.Keys(t.parts))
	parts := make([]*Part, len(uids))
	for i, uid := range uids {
		parts[i] = t.parts[uid]
	}
	return parts
}

// Children returns the UIDs of the part's direct children in attachment
// order. Returns nil if the part has no children or doesn't exist. The
// returned slice should not be modified - use it as a read-only view.
func (t *Tree) Children(uid UID) []UID {
	if p, ok := t.parts[uid]; ok {
		return p.Children
	}
	return nil
}

// Walk visits the part and every transitive descendant in depth-first
// pre-order, following attachment order at each level. Walk stops early if
// fn returns false. Unknown UIDs are silently ignored.
func (t *Tree) Walk(uid UID, fn func(*Part) bool) {
	t.walk(uid, fn)
}

// walk reports whether traversal should continue past this subtree.
func (t *Tree) walk(uid UID, fn func(*Part) bool) bool {
	part, ok := t.parts[uid]
	if !ok {
		return true
	}
	if !fn(part) {
		return false
	}
	for _, child := range part.Children {
		if !t.walk(child, fn) {
			return false
		}
	}
	return true
}
