// Package craft provides the part tree data structure for vehicle assemblies.
//
// # Overview
//
// A craft is a rooted tree of parts. Every part except the root has exactly
// one parent, and parts may additionally belong to a symmetry group: a set of
// counterparts treated as mirrored duplicates of one another. Symmetry
// membership is a mutual relation stored per part, with one member of each
// group designated as the symmetry root (marker value 0).
//
// Parts are records in an arena addressed by stable integer identifiers
// ([UID]); parent, child, and symmetry relations are stored as UID lists
// rather than native references. A UID never changes for the lifetime of a
// part, regardless of structural moves.
//
// # Basic Usage
//
// Create a tree with [New], add parts with [Tree.AddPart] (the first part
// with no parent becomes the root), and link mirrored parts with
// [Tree.LinkSymmetry]:
//
//	t := craft.New()
//	t.AddPart(craft.Part{UID: 1, Name: "pod"})
//	t.AddPart(craft.Part{UID: 2, Name: "tank", Parent: 1})
//	t.AddPart(craft.Part{UID: 3, Name: "fin", Parent: 2})
//	t.AddPart(craft.Part{UID: 4, Name: "fin", Parent: 2})
//	t.LinkSymmetry([]craft.UID{3, 4}, 3)
//
// Use [Tree.Validate] to verify structural integrity after bulk edits or
// after importing a craft file of unknown provenance.
//
// # Mutation
//
// The tree supports leaf removal ([Tree.Remove]) and symmetry-link editing;
// it deliberately does not support removing a part that still has children,
// since re-parenting orphans has no reliable semantics. Higher-level
// eligibility rules (when a removal or symmetry break is safe) live in
// package integrity.
//
// # Concurrency
//
// Tree is not safe for concurrent use without external synchronization.
package craft
