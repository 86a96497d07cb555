// Package integrity implements the part graph integrity engine: the rules
// that decide whether a part can be safely removed from a craft tree or have
// its symmetry relationship dissolved, and the operations that apply those
// mutations.
//
// # Overview
//
// The engine operates over a [craft.Tree] owned by a host editor. It exposes
// four query-and-mutate operations:
//
//   - [Engine.IsDeletable]: may this part be removed right now?
//   - [Engine.Delete]: detach a leaf part and notify the host.
//   - [Engine.HasBreakableSymmetry]: may this part's symmetry group be
//     dissolved, and if not, why not?
//   - [Engine.BreakSymmetry]: dissolve a symmetry group across all members
//     and their symmetric descendants.
//
// Callers are expected to gate mutations on the corresponding query: check
// IsDeletable before Delete, HasBreakableSymmetry before BreakSymmetry. The
// mutating operations defend against nil/unknown parts, parts with children,
// and malformed groups, but deliberately do not re-run the full rule engine;
// calling them on a configuration the queries would have rejected is a
// caller bug with unspecified (though never memory-unsafe) results.
//
// # Breakability Rules
//
// HasBreakableSymmetry evaluates six rules in order, short-circuiting on the
// first failure. Each failure carries a distinct [Category] and a
// human-readable reason suitable for UI tooltips:
//
//  1. The part must be in a symmetry group (NOT_SYMMETRICAL).
//  2. No counterpart may be a structural descendant of the part
//     (HAS_DESCENDANT_COUNTERPART) - breaking would create a circular
//     structure/symmetry relationship.
//  3. No counterpart may be a structural ancestor of the part
//     (HAS_ANCESTRAL_COUNTERPART).
//  4. The part must have a parent (NO_PARENT) - the tree root's children
//     include unrelated subtrees, so breakability cannot be determined.
//  5. Every child must either be asymmetric or itself breakable
//     (CHILD_NOT_BREAKABLE) - evaluated recursively, bottom-up.
//  6. Every counterpart must have a parent (COUNTERPART_NO_PARENT).
//
// The analysis is a pure query: it is re-derived on every call (the tree may
// have changed between calls) and never mutates the tree.
//
// # Host Collaboration
//
// Structural changes have host-visible side effects beyond the tree itself:
// the live part representation must be destroyed, stale selection cleared,
// and the staging sequence recomputed. The engine signals these through the
// [Host] interface, with a no-op default for headless use. Hosts receive
// exactly one ResequenceStaging call per successful Delete or BreakSymmetry.
//
// # Concurrency
//
// The engine is single-threaded and synchronous. It assumes exclusive access
// to the tree for the duration of each call and performs no locking.
package integrity
