package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/partbench/partbench/pkg/store"
)

const testCraft = `{
  "name": "test-rocket",
  "parts": [
    {"uid": 1, "name": "pod"},
    {"uid": 2, "name": "tank", "parent": 1},
    {"uid": 3, "name": "fin", "parent": 2, "symmetry": [4], "symmetry_mode": 0},
    {"uid": 4, "name": "fin", "parent": 2, "symmetry": [3], "symmetry_mode": 1}
  ]
}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(New(store.NewMemory(), nil).Router())
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url, body string) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	var payload map[string]any
	if resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil && err != io.EOF {
			t.Fatalf("decode response: %v", err)
		}
	}
	return resp, payload
}

// storeCraft posts the test craft and returns its assigned ID.
func storeCraft(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	resp, payload := do(t, http.MethodPost, srv.URL+"/crafts", testCraft)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("POST /crafts = %d, want 201", resp.StatusCode)
	}
	id, _ := payload["id"].(string)
	if id == "" {
		t.Fatal("POST /crafts returned no id")
	}
	return id
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, payload := do(t, http.MethodGet, srv.URL+"/healthz", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /healthz = %d, want 200", resp.StatusCode)
	}
	if payload["status"] != "ok" {
		t.Errorf("status = %v, want ok", payload["status"])
	}
}

func TestCreateAndGetCraft(t *testing.T) {
	srv := newTestServer(t)
	id := storeCraft(t, srv)

	resp, payload := do(t, http.MethodGet, srv.URL+"/crafts/"+id, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /crafts/%s = %d, want 200", id, resp.StatusCode)
	}
	if payload["name"] != "test-rocket" {
		t.Errorf("name = %v, want test-rocket", payload["name"])
	}
	parts, _ := payload["parts"].([]any)
	if len(parts) != 4 {
		t.Errorf("len(parts) = %d, want 4", len(parts))
	}
}

func TestCreateCraft_Invalid(t *testing.T) {
	srv := newTestServer(t)

	// Structurally broken: two roots.
	body := `{"name": "bad", "parts": [{"uid": 1}, {"uid": 2}]}`
	resp, payload := do(t, http.MethodPost, srv.URL+"/crafts", body)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("POST /crafts = %d, want 400", resp.StatusCode)
	}
	if payload["code"] != "INVALID_CRAFT" {
		t.Errorf("code = %v, want INVALID_CRAFT", payload["code"])
	}
}

func TestListCrafts(t *testing.T) {
	srv := newTestServer(t)

	_, payload := do(t, http.MethodGet, srv.URL+"/crafts", "")
	if got, _ := payload["crafts"].([]any); len(got) != 0 {
		t.Errorf("crafts = %v, want empty list", got)
	}

	id := storeCraft(t, srv)
	_, payload = do(t, http.MethodGet, srv.URL+"/crafts", "")
	got, _ := payload["crafts"].([]any)
	if len(got) != 1 || got[0] != id {
		t.Errorf("crafts = %v, want [%s]", got, id)
	}
}

func TestDeleteCraft(t *testing.T) {
	srv := newTestServer(t)
	id := storeCraft(t, srv)

	resp, _ := do(t, http.MethodDelete, srv.URL+"/crafts/"+id, "")
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("DELETE /crafts/%s = %d, want 204", id, resp.StatusCode)
	}
	resp, payload := do(t, http.MethodGet, srv.URL+"/crafts/"+id, "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("GET deleted craft = %d, want 404", resp.StatusCode)
	}
	if payload["code"] != "CRAFT_NOT_FOUND" {
		t.Errorf("code = %v, want CRAFT_NOT_FOUND", payload["code"])
	}
}

func TestDeletableEndpoint(t *testing.T) {
	srv := newTestServer(t)
	id := storeCraft(t, srv)

	resp, payload := do(t, http.MethodGet, srv.URL+"/crafts/"+id+"/parts/4/deletable", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET deletable = %d, want 200", resp.StatusCode)
	}
	if payload["deletable"] != true {
		t.Errorf("deletable = %v, want true", payload["deletable"])
	}

	// The root is never deletable, but that is a 200 with a false verdict.
	resp, payload = do(t, http.MethodGet, srv.URL+"/crafts/"+id+"/parts/1/deletable", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET deletable(root) = %d, want 200", resp.StatusCode)
	}
	if payload["deletable"] != false {
		t.Errorf("deletable(root) = %v, want false", payload["deletable"])
	}
}

func TestBreakableEndpoint(t *testing.T) {
	srv := newTestServer(t)
	id := storeCraft(t, srv)

	resp, payload := do(t, http.MethodGet, srv.URL+"/crafts/"+id+"/parts/3/breakable", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET breakable = %d, want 200", resp.StatusCode)
	}
	if payload["ok"] != true {
		t.Errorf("ok = %v, want true", payload["ok"])
	}
	if payload["category"] != "BREAKABLE" {
		t.Errorf("category = %v, want BREAKABLE", payload["category"])
	}

	resp, payload = do(t, http.MethodGet, srv.URL+"/crafts/"+id+"/parts/2/breakable", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET breakable(tank) = %d, want 200", resp.StatusCode)
	}
	if payload["category"] != "NOT_SYMMETRICAL" {
		t.Errorf("category = %v, want NOT_SYMMETRICAL", payload["category"])
	}
}

func TestBreakAndDeletePart(t *testing.T) {
	srv := newTestServer(t)
	id := storeCraft(t, srv)

	resp, _ := do(t, http.MethodPost, srv.URL+"/crafts/"+id+"/parts/4/break", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("POST break = %d, want 200", resp.StatusCode)
	}

	resp, payload := do(t, http.MethodPost, srv.URL+"/crafts/"+id+"/parts/4/delete", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("POST delete = %d, want 200", resp.StatusCode)
	}
	parts, _ := payload["parts"].([]any)
	if len(parts) != 3 {
		t.Errorf("len(parts) after delete = %d, want 3", len(parts))
	}

	// The mutation persisted.
	_, payload = do(t, http.MethodGet, srv.URL+"/crafts/"+id, "")
	parts, _ = payload["parts"].([]any)
	if len(parts) != 3 {
		t.Errorf("len(parts) on reload = %d, want 3", len(parts))
	}
}

func TestCraftID_Validated(t *testing.T) {
	srv := newTestServer(t)

	for _, id := range []string{"a..b", "a%5Cb"} {
		resp, payload := do(t, http.MethodGet, srv.URL+"/crafts/"+id, "")
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("GET /crafts/%s = %d, want 400", id, resp.StatusCode)
			continue
		}
		if payload["code"] != "INVALID_ARGUMENT" {
			t.Errorf("code for %s = %v, want INVALID_ARGUMENT", id, payload["code"])
		}
	}

	resp, _ := do(t, http.MethodDelete, srv.URL+"/crafts/a..b", "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("DELETE /crafts/a..b = %d, want 400", resp.StatusCode)
	}
}

func TestDeletePart_Errors(t *testing.T) {
	srv := newTestServer(t)
	id := storeCraft(t, srv)

	// The tank still has children.
	resp, payload := do(t, http.MethodPost, srv.URL+"/crafts/"+id+"/parts/2/delete", "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("POST delete(parent) = %d, want 400", resp.StatusCode)
	}
	if payload["code"] != "HAS_CHILDREN" {
		t.Errorf("code = %v, want HAS_CHILDREN", payload["code"])
	}

	resp, payload = do(t, http.MethodPost, srv.URL+"/crafts/"+id+"/parts/99/delete", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("POST delete(unknown part) = %d, want 404", resp.StatusCode)
	}
	if payload["code"] != "PART_NOT_FOUND" {
		t.Errorf("code = %v, want PART_NOT_FOUND", payload["code"])
	}

	resp, payload = do(t, http.MethodGet, srv.URL+"/crafts/"+id+"/parts/bogus/deletable", "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("GET deletable(bogus uid) = %d, want 400", resp.StatusCode)
	}
	if payload["code"] != "INVALID_ARGUMENT" {
		t.Errorf("code = %v, want INVALID_ARGUMENT", payload["code"])
	}
}
