package craftio

import (
	"encoding/json"
	"io"

	"github.com/partbench/partbench/pkg/craft"
	"github.com/partbench/partbench/pkg/errors"
)

// FromTree builds a craft document from a part tree. Part records are
// emitted in tree pre-order: [Document.Tree] reads sibling file order as
// attachment order, so emitting in attachment order keeps the staging
// sequence stable across a save/load round trip. ID and Description are
// left for the caller.
func FromTree(name string, t *craft.Tree) *Document {
	doc := &Document{Name: name}
	root := t.Root()
	if root == nil {
		return doc
	}
	t.Walk(root.UID, func(p *craft.Part) bool {
		doc.Parts = append(doc.Parts, recordFromPart(p))
		return true
	})
	return doc
}

// WriteJSON encodes the document to w as indented JSON, matching the
// on-disk craft file format. WriteJSON does not close w.
func WriteJSON(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode craft document")
	}
	return nil
}
