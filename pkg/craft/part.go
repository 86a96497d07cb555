package craft

import "slices"

// UID is a stable integer identifier for a part, distinct from the part's
// structural position. The zero value is reserved and means "no part"; it is
// used as the Parent of the root part.
type UID uint32

// None is the reserved UID meaning "no part".
const None UID = 0

// SymmetryRoot is the symmetry marker value designating the representative
// member of a symmetry group. Non-root members carry a nonzero marker.
const SymmetryRoot = 0

// Part is a node in the craft tree.
//
// The zero value is not usable - UID must be set before adding to a Tree.
// Parent, Children, and Symmetry are maintained by the owning Tree; callers
// should treat them as read-only views and mutate through Tree methods.
type Part struct {
	UID    UID    // Stable unique identifier (never None for a live part)
	Name   string // Display name (not required to be unique)
	Parent UID    // Parent part, or None for the root

	// Children lists direct child parts in attachment order.
	Children []UID

	// Symmetry lists the part's counterparts: the other members of its
	// symmetry group, excluding the part itself. Membership is mutual -
	// if A lists B, B lists A. Empty for asymmetric parts.
	Symmetry []UID

	// SymmetryMode is the symmetry marker. SymmetryRoot (0) designates the
	// group's representative member; nonzero designates a non-root member.
	// Only meaningful while Symmetry is non-empty.
	SymmetryMode int
}

// IsRoot reports whether the part is the tree root (has no parent).
func (p *Part) IsRoot() bool { return p.Parent == None }

// IsLeaf reports whether the part has no children.
func (p *Part) IsLeaf() bool { return len(p.Children) == 0 }

// HasSymmetry reports whether the part belongs to a symmetry group.
func (p *Part) HasSymmetry() bool { return len(p.Symmetry) > 0 }

// IsSymmetryRoot reports whether the part is the designated representative
// of its symmetry group. Meaningless for parts without symmetry.
func (p *Part) IsSymmetryRoot() bool { return p.SymmetryMode == SymmetryRoot }

// InSymmetryGroup reports whether uid is one of the part's counterparts.
func (p *Part) InSymmetryGroup(uid UID) bool { return slices.Contains(p.Symmetry, uid) }
