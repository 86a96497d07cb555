package craftio

import (
	"encoding/json"
	"io"

	"github.com/partbench/partbench/pkg/craft"
	"github.com/partbench/partbench/pkg/errors"
)

// ReadJSON decodes a craft document from r. The document is validated only
// syntactically; call [Document.Tree] to build and structurally validate
// the part tree. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCraft, err, "decode craft document")
	}
	return &doc, nil
}

// Tree builds a validated part tree from the document.
//
// Records may appear in any order; parts are attached parent-first, with
// siblings keeping file order. Tree returns an INVALID_CRAFT error if the
// document has duplicate UIDs, more than one root, a parent reference that
// never resolves (dangling or cyclic), or one-sided symmetry links.
func (d *Document) Tree() (*craft.Tree, error) {
	byUID := make(map[craft.UID]PartRecord, len(d.Parts))
	childOrder := make(map[craft.UID][]craft.UID)
	var root craft.UID

	for _, rec := range d.Parts {
		uid := craft.UID(rec.UID)
		if uid == craft.None {
			return nil, errors.New(errors.ErrCodeInvalidCraft, "part with zero UID")
		}
		if _, dup := byUID[uid]; dup {
			return nil, errors.New(errors.ErrCodeInvalidCraft, "duplicate part UID %d", uid)
		}
		byUID[uid] = rec
		parent := craft.UID(rec.Parent)
		if parent == craft.None {
			if root != craft.None {
				return nil, errors.New(errors.ErrCodeInvalidCraft,
					"multiple root parts (%d and %d)", root, uid)
			}
			root = uid
		} else {
			childOrder[parent] = append(childOrder[parent], uid)
		}
	}

	t := craft.New()
	if len(d.Parts) == 0 {
		return t, nil
	}
	if root == craft.None {
		return nil, errors.New(errors.ErrCodeInvalidCraft, "craft has no root part")
	}

	// Attach parent-first so every AddPart sees its parent already present.
	var attach func(uid craft.UID) error
	attach = func(uid craft.UID) error {
		rec := byUID[uid]
		err := t.AddPart(craft.Part{
			UID:    uid,
			Name:   rec.Name,
			Parent: craft.UID(rec.Parent),
		})
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidCraft, err, "part %d", uid)
		}
		for _, child := range childOrder[uid] {
			if err := attach(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := attach(root); err != nil {
		return nil, err
	}
	if t.Count() != len(byUID) {
		// Records never reached from the root: dangling parents or cycles.
		for uid := range byUID {
			if _, ok := t.Part(uid); !ok {
				return nil, errors.New(errors.ErrCodeInvalidCraft,
					"part %d is not connected to the root (missing or cyclic parent)", uid)
			}
		}
	}

	// Symmetry links and markers are carried through verbatim; Validate
	// rejects one-sided groups below.
	for uid, rec := range byUID {
		if len(rec.Symmetry) == 0 && rec.SymmetryMode == 0 {
			continue
		}
		counterparts := make([]craft.UID, len(rec.Symmetry))
		for i, other := range rec.Symmetry {
			counterparts[i] = craft.UID(other)
		}
		if err := t.SetSymmetry(uid, counterparts, rec.SymmetryMode); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidCraft, err, "part %d symmetry", uid)
		}
	}

	if err := t.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCraft, err, "craft %q", d.Name)
	}
	return t, nil
}
