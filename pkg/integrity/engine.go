package integrity

import (
	"slices"

	"github.com/partbench/partbench/pkg/craft"
	"github.com/partbench/partbench/pkg/errors"
)

// Host receives structural-change notifications from the engine. The editor
// owning the tree implements this to keep derived state (live part objects,
// selection, staging order) in sync with the tree.
//
// All methods are synchronous and must not call back into the engine.
type Host interface {
	// DestroyPart tears down the live representation of a removed part.
	DestroyPart(uid craft.UID)

	// ClearSelection drops any "currently selected" state referencing the
	// part. Called before the part record is gone from the tree.
	ClearSelection(uid craft.UID)

	// ResequenceStaging recomputes the staging/build order. Invoked exactly
	// once per successful structural change; implementations should be
	// idempotent.
	ResequenceStaging()
}

// NoopHost is a Host implementation that ignores all notifications. It is
// the default for engines constructed without a host, useful for headless
// analysis and tests.
type NoopHost struct{}

func (NoopHost) DestroyPart(craft.UID)    {}
func (NoopHost) ClearSelection(craft.UID) {}
func (NoopHost) ResequenceStaging()       {}

// Engine evaluates deletion eligibility and symmetry breakability over a
// craft tree, and applies the corresponding mutations.
//
// The engine holds transient, exclusive access to the tree for the duration
// of each call; it performs no locking and must not be used concurrently.
type Engine struct {
	tree *craft.Tree
	host Host
}

// New creates an engine over the given tree. A nil host defaults to
// [NoopHost].
func New(tree *craft.Tree, host Host) *Engine {
	if host == nil {
		host = NoopHost{}
	}
	return &Engine{tree: tree, host: host}
}

// Tree returns the tree the engine operates on.
func (e *Engine) Tree() *craft.Tree { return e.tree }

// resolve maps a UID to its live part record, or an invalid-argument error.
// Every entry point funnels through this check.
func (e *Engine) resolve(uid craft.UID) (*craft.Part, error) {
	if uid == craft.None {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "part UID must not be zero")
	}
	p, ok := e.tree.Part(uid)
	if !ok {
		return nil, errors.New(errors.ErrCodePartNotFound, "part %d does not exist", uid)
	}
	return p, nil
}

// HasSymmetry reports whether the part belongs to a symmetry group.
// Returns an invalid-argument error for a zero or unknown UID.
func (e *Engine) HasSymmetry(uid craft.UID) (bool, error) {
	p, err := e.resolve(uid)
	if err != nil {
		return false, err
	}
	return p.HasSymmetry(), nil
}

// IsDeletable reports whether the part can be removed right now. A part is
// deletable iff it has a parent (the root is never deletable), has no
// children, and either has no symmetry group or that group is breakable.
//
// Returns an invalid-argument error for a zero or unknown UID.
func (e *Engine) IsDeletable(uid craft.UID) (bool, error) {
	p, err := e.resolve(uid)
	if err != nil {
		return false, err
	}
	if p.IsRoot() || !p.IsLeaf() {
		return false, nil
	}
	if !p.HasSymmetry() {
		return true, nil
	}
	return e.breakability(p).OK, nil
}

// HasBreakableSymmetry runs the breakability analysis for the part and
// returns the verdict: outcome, deciding-rule category, and rationale text.
// See the package documentation for the rule sequence.
//
// The analysis is a pure query with no side effects; calling it repeatedly
// without intervening tree mutation yields identical verdicts. Returns an
// invalid-argument error for a zero or unknown UID.
func (e *Engine) HasBreakableSymmetry(uid craft.UID) (Verdict, error) {
	p, err := e.resolve(uid)
	if err != nil {
		return Verdict{}, err
	}
	return e.breakability(p), nil
}

// Delete removes a leaf part: it detaches the part from its parent's child
// list, tells the host to destroy the live representation and clear stale
// selection, and fires one staging resequence.
//
// Returns an invalid-argument error for a zero or unknown UID, a ROOT_PART
// error for the tree root, and a HAS_CHILDREN error if the part is not a
// leaf. Delete does not check for unbroken symmetry - callers must gate on
// [Engine.IsDeletable]; deleting a still-symmetric part leaves stale group
// references on its former counterparts.
func (e *Engine) Delete(uid craft.UID) error {
	p, err := e.resolve(uid)
	if err != nil {
		return err
	}
	if p.IsRoot() {
		return errors.New(errors.ErrCodeRootPart, "part %d is the root part", uid)
	}
	if !p.IsLeaf() {
		return errors.New(errors.ErrCodeHasChildren, "part %d still has %d children", uid, len(p.Children))
	}

	if err := e.tree.Remove(uid); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "removing part %d", uid)
	}
	e.host.DestroyPart(uid)
	e.host.ClearSelection(uid)
	e.host.ResequenceStaging()
	return nil
}

// BreakSymmetry dissolves the part's symmetry group: the group's root (the
// member with marker 0) is located, every member's counterpart list and
// marker are cleared, and the break cascades recursively through every
// member's children so nested symmetric descendants are unlinked too. One
// staging resequence fires after the cascade completes.
//
// Returns an invalid-argument error for a zero or unknown UID, and a
// MALFORMED_SYMMETRY_GROUP error if the part is in a group where no member
// carries marker 0 (an invariant violation; the tree is left untouched).
// BreakSymmetry does not re-run the breakability rules - callers must gate
// on [Engine.HasBreakableSymmetry].
func (e *Engine) BreakSymmetry(uid craft.UID) error {
	p, err := e.resolve(uid)
	if err != nil {
		return err
	}
	if _, err := e.symmetryRoot(p); err != nil {
		return err
	}
	e.breakRecursive(p)
	e.host.ResequenceStaging()
	return nil
}

// symmetryRoot resolves the designated representative of p's group: p
// itself if it carries marker 0, otherwise the counterpart that does. For
// an asymmetric part, p is its own (trivial) root.
func (e *Engine) symmetryRoot(p *craft.Part) (*craft.Part, error) {
	if !p.HasSymmetry() || p.IsSymmetryRoot() {
		return p, nil
	}
	for _, uid := range p.Symmetry {
		if c, ok := e.tree.Part(uid); ok && c.IsSymmetryRoot() {
			return c, nil
		}
	}
	return nil, errors.New(errors.ErrCodeMalformedGroup,
		"no member of part %d's symmetry group carries the root marker", p.UID)
}

// breakRecursive clears the group containing p and cascades through the
// children of every member. Parts whose group was already cleared earlier
// in the cascade pass through as trivial single-member groups, so revisits
// terminate immediately.
func (e *Engine) breakRecursive(p *craft.Part) {
	root, err := e.symmetryRoot(p)
	if err != nil {
		// Malformed nested group: clear what we can reach from p itself
		// rather than abandoning the cascade halfway through.
		root = p
	}

	counterparts := slices.Clone(root.Symmetry)
	for _, uid := range counterparts {
		member, ok := e.tree.Part(uid)
		if !ok {
			continue
		}
		e.clearSymmetry(member)
		for _, child := range member.Children {
			if c, ok := e.tree.Part(child); ok {
				e.breakRecursive(c)
			}
		}
	}

	e.clearSymmetry(root)
	for _, child := range root.Children {
		if c, ok := e.tree.Part(child); ok {
			e.breakRecursive(c)
		}
	}
}

func (e *Engine) clearSymmetry(p *craft.Part) {
	// The part was resolved from this tree, so the lookup cannot fail.
	_ = e.tree.ClearSymmetry(p.UID)
}
