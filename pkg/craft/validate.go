package craft

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrNoRoot is returned by [Tree.Validate] when a non-empty tree has no
	// root part. This indicates arena corruption.
	ErrNoRoot = errors.New("tree has no root part")

	// ErrDanglingParent is returned by [Tree.Validate] when a part's Parent
	// references a UID that no longer exists.
	ErrDanglingParent = errors.New("dangling parent reference")

	// ErrChildMismatch is returned by [Tree.Validate] when the parent/child
	// edge is not mutual: a part lists a child that does not point back, or
	// points at a parent that does not list it.
	ErrChildMismatch = errors.New("parent/child references disagree")

	// ErrUnreachablePart is returned by [Tree.Validate] when a part cannot
	// be reached from the root by following child edges. This covers both
	// orphaned subtrees and parent-chain cycles.
	ErrUnreachablePart = errors.New("part not reachable from root")

	// ErrAsymmetricGroup is returned by [Tree.Validate] when symmetry
	// membership is not mutual: part A lists B as a counterpart but B does
	// not list A, or a part lists itself or a missing part.
	ErrAsymmetricGroup = errors.New("symmetry group references disagree")
)

// Validate checks tree integrity and returns nil if valid.
// It verifies three families of constraints:
//
//  1. There is exactly one root, every Parent reference resolves, and
//     parent/child edges are mutual.
//  2. Every part is reachable from the root by child edges (which also
//     rules out parent-chain cycles).
//  3. Symmetry membership is mutual and never self-referential.
//
// Use this after importing a craft file or after bulk edits. The integrity
// engine assumes a tree that passes Validate; its own rule checks cover
// the finer symmetry/structure interactions (descendant counterparts and
// the like) that are legal tree states but unsafe to operate on.
func (t *Tree) Validate() error {
	if len(t.parts) == 0 {
		return nil
	}
	if t.root == None || t.parts[t.root] == nil {
		return ErrNoRoot
	}
	if err := t.validateEdges(); err != nil {
		return err
	}
	if err := t.validateReachability(); err != nil {
		return err
	}
	return t.validateSymmetry()
}

func (t *Tree) validateEdges() error {
	for uid, part := range t.parts {
		if part.Parent != None {
			parent, ok := t.parts[part.Parent]
			if !ok {
				return fmt.Errorf("part %d: %w", uid, ErrDanglingParent)
			}
			if !slices.Contains(parent.Children, uid) {
				return fmt.Errorf("part %d: %w", uid, ErrChildMismatch)
			}
		}
		for _, child := range part.Children {
			c, ok := t.parts[child]
			if !ok || c.Parent != uid {
				return fmt.Errorf("part %d child %d: %w", uid, child, ErrChildMismatch)
			}
		}
	}
	return nil
}

func (t *Tree) validateReachability() error {
	seen := make(map[UID]bool, len(t.parts))
	t.Walk(t.root, func(p *Part) bool {
		seen[p.UID] = true
		return true
	})
	for uid := range t.parts {
		if !seen[uid] {
			return fmt.Errorf("part %d: %w", uid, ErrUnreachablePart)
		}
	}
	return nil
}

func (t *Tree) validateSymmetry() error {
	for uid, part := range t.parts {
		for _, other := range part.Symmetry {
			if other == uid {
				return fmt.Errorf("part %d: %w", uid, ErrAsymmetricGroup)
			}
			counterpart, ok := t.parts[other]
			if !ok || !counterpart.InSymmetryGroup(uid) {
				return fmt.Errorf("part %d counterpart %d: %w", uid, other, ErrAsymmetricGroup)
			}
		}
	}
	return nil
}
