// Package craftio provides import and export of craft files.
//
// A craft file is a JSON document describing a part tree: a flat list of
// part records with parent references and symmetry links. The format is the
// canonical serialization for CLI round trips, API payloads, and stored
// craft documents (the same structs carry BSON tags for the store).
//
//	{
//	  "name": "Kestrel 1",
//	  "parts": [
//	    {"uid": 1, "name": "pod"},
//	    {"uid": 2, "name": "tank", "parent": 1},
//	    {"uid": 3, "name": "fin", "parent": 2, "symmetry": [4], "symmetry_mode": 0},
//	    {"uid": 4, "name": "fin", "parent": 2, "symmetry": [3], "symmetry_mode": 1}
//	  ]
//	}
//
// Import is forgiving about record order (parents may appear after their
// children) but strict about structure: duplicate UIDs, dangling parents,
// multiple roots, parent cycles, and one-sided symmetry links are rejected.
// Symmetry markers are carried through verbatim, so a craft with a
// malformed group (no marker-0 member) loads fine and the integrity engine
// reports the malformation when asked to break it.
package craftio
