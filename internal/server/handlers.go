package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/partbench/partbench/pkg/craft"
	"github.com/partbench/partbench/pkg/craftio"
	"github.com/partbench/partbench/pkg/errors"
	"github.com/partbench/partbench/pkg/integrity"
	"github.com/partbench/partbench/pkg/store"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListCrafts(w http.ResponseWriter, r *http.Request) {
	ids, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeStore, err, "list crafts"))
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"crafts": ids})
}

func (s *Server) handleCreateCraft(w http.ResponseWriter, r *http.Request) {
	doc, err := craftio.ReadJSON(r.Body)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := errors.ValidateCraftName(doc.Name); err != nil {
		s.writeError(w, err)
		return
	}
	// Reject structurally broken crafts at the door.
	if _, err := doc.Tree(); err != nil {
		s.writeError(w, err)
		return
	}

	id, err := s.store.Put(r.Context(), doc)
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeStore, err, "store craft"))
		return
	}
	s.logger.Info("craft stored", "id", id, "name", doc.Name, "parts", len(doc.Parts))
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) handleGetCraft(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.loadCraft(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleDeleteCraft(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidateCraftID(id); err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.store.Delete(r.Context(), id); err != nil {
		if err == store.ErrNotFound {
			s.writeError(w, errors.New(errors.ErrCodeCraftNotFound, "craft %s not found", id))
			return
		}
		s.writeError(w, errors.Wrap(errors.ErrCodeStore, err, "delete craft %s", id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeletable(w http.ResponseWriter, r *http.Request) {
	_, eng, uid, ok := s.loadEngine(w, r)
	if !ok {
		return
	}
	deletable, err := eng.IsDeletable(uid)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"uid": uid, "deletable": deletable})
}

func (s *Server) handleBreakable(w http.ResponseWriter, r *http.Request) {
	_, eng, uid, ok := s.loadEngine(w, r)
	if !ok {
		return
	}
	verdict, err := eng.HasBreakableSymmetry(uid)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, verdictPayload(verdict))
}

func (s *Server) handleDeletePart(w http.ResponseWriter, r *http.Request) {
	s.mutateCraft(w, r, func(eng *integrity.Engine, uid craft.UID) error {
		return eng.Delete(uid)
	})
}

func (s *Server) handleBreakSymmetry(w http.ResponseWriter, r *http.Request) {
	s.mutateCraft(w, r, func(eng *integrity.Engine, uid craft.UID) error {
		return eng.BreakSymmetry(uid)
	})
}

// mutateCraft loads the craft, applies op through a fresh engine, persists
// the updated tree, and responds with the new document.
func (s *Server) mutateCraft(w http.ResponseWriter, r *http.Request, op func(*integrity.Engine, craft.UID) error) {
	doc, eng, uid, ok := s.loadEngine(w, r)
	if !ok {
		return
	}
	tree := eng.Tree()
	if err := op(eng, uid); err != nil {
		s.writeError(w, err)
		return
	}

	updated := craftio.FromTree(doc.Name, tree)
	updated.ID = doc.ID
	updated.Description = doc.Description
	if _, err := s.store.Put(r.Context(), updated); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeStore, err, "store craft %s", doc.ID))
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// loadCraft fetches the craft document named in the route.
func (s *Server) loadCraft(w http.ResponseWriter, r *http.Request) (*craftio.Document, bool) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidateCraftID(id); err != nil {
		s.writeError(w, err)
		return nil, false
	}
	doc, err := s.store.Get(r.Context(), id)
	if err != nil {
		if err == store.ErrNotFound {
			s.writeError(w, errors.New(errors.ErrCodeCraftNotFound, "craft %s not found", id))
			return nil, false
		}
		s.writeError(w, errors.Wrap(errors.ErrCodeStore, err, "load craft %s", id))
		return nil, false
	}
	return doc, true
}

// loadEngine fetches the craft, builds its tree, and parses the part UID
// from the route. The returned engine has no host: server-side crafts have
// no live scene or selection, and staging order is derived on demand.
func (s *Server) loadEngine(w http.ResponseWriter, r *http.Request) (*craftio.Document, *integrity.Engine, craft.UID, bool) {
	doc, ok := s.loadCraft(w, r)
	if !ok {
		return nil, nil, craft.None, false
	}
	tree, err := doc.Tree()
	if err != nil {
		s.writeError(w, err)
		return nil, nil, craft.None, false
	}
	raw := chi.URLParam(r, "uid")
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		s.writeError(w, errors.New(errors.ErrCodeInvalidArgument, "invalid part UID %q", raw))
		return nil, nil, craft.None, false
	}
	return doc, integrity.New(tree, nil), craft.UID(n), true
}

func verdictPayload(v integrity.Verdict) map[string]any {
	return map[string]any{
		"uid":      v.Part,
		"ok":       v.OK,
		"category": v.Category,
		"blocker":  v.Blocker,
		"reason":   v.Reason,
	}
}

// statusFor maps structured error codes to HTTP statuses.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidArgument, errors.ErrCodeHasChildren, errors.ErrCodeRootPart,
		errors.ErrCodeInvalidCraft, errors.ErrCodeInvalidCraftName:
		return http.StatusBadRequest
	case errors.ErrCodeMalformedGroup:
		return http.StatusConflict
	case errors.ErrCodePartNotFound, errors.ErrCodeCraftNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status := statusFor(code)
	if status >= 500 {
		s.logger.Error("request failed", "code", code, "err", err)
	}
	writeJSON(w, status, map[string]string{
		"code":  string(code),
		"error": errors.UserMessage(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
