package cli

import (
	"os"

	"github.com/partbench/partbench/pkg/craft"
	"github.com/partbench/partbench/pkg/craftio"
	"github.com/partbench/partbench/pkg/errors"
)

// loadCraftFile reads and validates a craft file, returning both the wire
// document and the built part tree.
func loadCraftFile(path string) (*craftio.Document, *craft.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, errors.New(errors.ErrCodeFileNotFound, "craft file %s not found", path)
		}
		return nil, nil, errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
	}
	defer f.Close()

	doc, err := craftio.ReadJSON(f)
	if err != nil {
		return nil, nil, err
	}
	tree, err := doc.Tree()
	if err != nil {
		return nil, nil, err
	}
	return doc, tree, nil
}

// saveCraftFile writes the tree back to path as a craft document, keeping
// the original document's name, ID, and description.
func saveCraftFile(path string, orig *craftio.Document, tree *craft.Tree) error {
	doc := craftio.FromTree(orig.Name, tree)
	doc.ID = orig.ID
	doc.Description = orig.Description

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	defer f.Close()
	return craftio.WriteJSON(f, doc)
}
