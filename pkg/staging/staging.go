// Package staging derives the build/staging order of a craft from its part
// tree.
//
// The staging order is the sequence in which parts activate during a launch
// (and the order the editor lists them in). It is derived state: any
// structural change to the tree - a part removed, a symmetry group broken -
// invalidates it, and the editor asks for a resequence through the
// integrity engine's host notification. The order itself is a deterministic
// function of the tree: root-first depth-first traversal following
// attachment order, with the stage number of each part equal to its depth.
package staging

import (
	"slices"

	"github.com/partbench/partbench/pkg/craft"
)

// Order computes the staging order for the tree: every part UID in
// root-first depth-first pre-order, following attachment order at each
// level. Returns nil for an empty tree.
func Order(t *craft.Tree) []craft.UID {
	root := t.Root()
	if root == nil {
		return nil
	}
	order := make([]craft.UID, 0, t.Count())
	t.Walk(root.UID, func(p *craft.Part) bool {
		order = append(order, p.UID)
		return true
	})
	return order
}

// Sequencer maintains a cached staging order for one tree and recomputes it
// on demand. It is the usual target of the integrity engine's
// ResequenceStaging notification.
//
// Sequencer is not safe for concurrent use.
type Sequencer struct {
	tree        *craft.Tree
	order       []craft.UID
	stages      map[craft.UID]int
	resequences int
}

// NewSequencer creates a sequencer for the tree and computes the initial
// order.
func NewSequencer(t *craft.Tree) *Sequencer {
	s := &Sequencer{tree: t}
	s.Resequence()
	return s
}

// Resequence recomputes the staging order and stage assignments from the
// current tree. Safe to call any number of times; each call fully rebuilds
// the derived state, so repeated calls on an unchanged tree are idempotent.
func (s *Sequencer) Resequence() {
	s.resequences++
	s.order = Order(s.tree)
	s.stages = make(map[craft.UID]int, len(s.order))
	for _, uid := range s.order {
		s.stages[uid] = s.depth(uid)
	}
}

// Order returns a copy of the current staging order.
func (s *Sequencer) Order() []craft.UID { return slices.Clone(s.order) }

// Stage returns the stage number assigned to the part at the last
// resequence, and whether the part was present then. Stage numbers equal
// tree depth: the root is stage 0.
func (s *Sequencer) Stage(uid craft.UID) (int, bool) {
	stage, ok := s.stages[uid]
	return stage, ok
}

// Resequences returns how many times Resequence has run, including the one
// triggered by NewSequencer.
func (s *Sequencer) Resequences() int { return s.resequences }

func (s *Sequencer) depth(uid craft.UID) int {
	depth := 0
	for p, ok := s.tree.Part(uid); ok && p.Parent != craft.None; p, ok = s.tree.Part(p.Parent) {
		depth++
	}
	return depth
}
