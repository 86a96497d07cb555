package cli

import (
	"github.com/charmbracelet/log"

	"github.com/partbench/partbench/pkg/craft"
	"github.com/partbench/partbench/pkg/integrity"
	"github.com/partbench/partbench/pkg/staging"
)

// editorHost is the CLI's integrity.Host: it keeps the staging sequence in
// step with the tree and tracks the selected part for the interactive
// editor. Destroyed parts have no live scene representation here, so
// DestroyPart only logs.
type editorHost struct {
	seq      *staging.Sequencer
	logger   *log.Logger
	selected craft.UID
}

var _ integrity.Host = (*editorHost)(nil)

func newEditorHost(seq *staging.Sequencer, logger *log.Logger) *editorHost {
	return &editorHost{seq: seq, logger: logger}
}

func (h *editorHost) DestroyPart(uid craft.UID) {
	h.logger.Debug("part destroyed", "uid", uid)
}

func (h *editorHost) ClearSelection(uid craft.UID) {
	if h.selected == uid {
		h.selected = craft.None
	}
}

func (h *editorHost) ResequenceStaging() {
	h.seq.Resequence()
	h.logger.Debug("staging resequenced", "parts", len(h.seq.Order()))
}
