package integrity

import (
	"fmt"

	"github.com/partbench/partbench/pkg/craft"
)

// Category is a machine-readable classification of a breakability verdict.
// Exactly one category is produced per [Engine.HasBreakableSymmetry] call:
// CategoryBreakable on success, or the category of the first failing rule.
type Category string

const (
	// CategoryBreakable means every rule passed: the symmetry group can be
	// dissolved safely.
	CategoryBreakable Category = "BREAKABLE"

	// CategoryNotSymmetrical means the part has no symmetry group.
	CategoryNotSymmetrical Category = "NOT_SYMMETRICAL"

	// CategoryDescendantCounterpart means a counterpart is a structural
	// descendant of the part.
	CategoryDescendantCounterpart Category = "HAS_DESCENDANT_COUNTERPART"

	// CategoryAncestralCounterpart means a counterpart is a structural
	// ancestor of the part.
	CategoryAncestralCounterpart Category = "HAS_ANCESTRAL_COUNTERPART"

	// CategoryNoParent means the part is the tree root.
	CategoryNoParent Category = "NO_PARENT"

	// CategoryChildNotBreakable means a symmetric child of the part is
	// itself not breakable. The verdict's Blocker names the failing child.
	CategoryChildNotBreakable Category = "CHILD_NOT_BREAKABLE"

	// CategoryCounterpartNoParent means a counterpart has no parent. The
	// verdict's Blocker names the failing counterpart.
	CategoryCounterpartNoParent Category = "COUNTERPART_NO_PARENT"
)

// Verdict is the result of a breakability analysis: a boolean outcome plus
// the category and human-readable rationale of the deciding rule.
//
// A negative verdict is an ordinary expected outcome (the UI disables a
// button), not an error. Contract violations (nil or unknown parts) are
// reported separately as errors by the engine entry points.
type Verdict struct {
	OK       bool      // Whether the symmetry group can be broken
	Category Category  // Deciding rule classification
	Part     craft.UID // The part the analysis was asked about
	Blocker  craft.UID // Failing child or counterpart, if the rule names one
	Reason   string    // Human-readable rationale for UI display
}

// Breakable reports whether the verdict is positive. Equivalent to reading
// OK; provided for call-site readability.
func (v Verdict) Breakable() bool { return v.OK }

// String returns the verdict's rationale text.
func (v Verdict) String() string { return v.Reason }

func breakable(p *craft.Part) Verdict {
	return Verdict{
		OK:       true,
		Category: CategoryBreakable,
		Part:     p.UID,
		Reason:   fmt.Sprintf("symmetry of %s can be broken", label(p)),
	}
}

func notBreakable(p *craft.Part, cat Category, blocker craft.UID, format string, args ...any) Verdict {
	return Verdict{
		Category: cat,
		Part:     p.UID,
		Blocker:  blocker,
		Reason:   fmt.Sprintf(format, args...),
	}
}

// label formats a part for rationale text as "name (uid)".
func label(p *craft.Part) string {
	if p.Name == "" {
		return fmt.Sprintf("part %d", p.UID)
	}
	return fmt.Sprintf("%s (%d)", p.Name, p.UID)
}
