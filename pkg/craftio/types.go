package craftio

import "github.com/partbench/partbench/pkg/craft"

// Document is the canonical serialization format for craft files.
// Used for CLI round trips, API payloads, and stored craft documents.
type Document struct {
	// ID identifies a stored craft document. Empty for crafts that only
	// live in files; assigned by the store on first save.
	ID string `json:"id,omitempty" bson:"_id,omitempty"`

	Name        string `json:"name" bson:"name"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`

	Parts []PartRecord `json:"parts" bson:"parts"`
}

// PartRecord is the wire form of a single part. Children are implied by
// Parent references; attachment order is file order.
type PartRecord struct {
	UID          uint32   `json:"uid" bson:"uid"`
	Name         string   `json:"name,omitempty" bson:"name,omitempty"`
	Parent       uint32   `json:"parent,omitempty" bson:"parent,omitempty"`
	Symmetry     []uint32 `json:"symmetry,omitempty" bson:"symmetry,omitempty"`
	SymmetryMode int      `json:"symmetry_mode,omitempty" bson:"symmetry_mode,omitempty"`
}

func recordFromPart(p *craft.Part) PartRecord {
	rec := PartRecord{
		UID:          uint32(p.UID),
		Name:         p.Name,
		Parent:       uint32(p.Parent),
		SymmetryMode: p.SymmetryMode,
	}
	for _, uid := range p.Symmetry {
		rec.Symmetry = append(rec.Symmetry, uint32(uid))
	}
	return rec
}
