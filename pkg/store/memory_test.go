package store

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/partbench/partbench/pkg/craftio"
)

func sampleDoc(name string) *craftio.Document {
	return &craftio.Document{
		Name: name,
		Parts: []craftio.PartRecord{
			{UID: 1, Name: "pod"},
			{UID: 2, Name: "fin", Parent: 1, Symmetry: []uint32{3}},
			{UID: 3, Name: "fin", Parent: 1, Symmetry: []uint32{2}, SymmetryMode: 1},
		},
	}
}

func TestMemory_PutGet(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()

	id, err := st.Put(ctx, sampleDoc("vessel"))
	if err != nil {
		t.Fatalf("Put() = %v", err)
	}
	if id == "" {
		t.Fatal("Put() assigned empty ID")
	}

	got, err := st.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get() = %v", err)
	}
	if got.ID != id {
		t.Errorf("ID = %q, want %q", got.ID, id)
	}
	if got.Name != "vessel" {
		t.Errorf("Name = %q, want %q", got.Name, "vessel")
	}
	if len(got.Parts) != 3 {
		t.Fatalf("len(Parts) = %d, want 3", len(got.Parts))
	}
	if got.Parts[1].Symmetry[0] != 3 {
		t.Errorf("Parts[1].Symmetry = %v, want [3]", got.Parts[1].Symmetry)
	}
}

func TestMemory_PutKeepsID(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()

	doc := sampleDoc("vessel")
	doc.ID = "fixed-id"
	id, err := st.Put(ctx, doc)
	if err != nil {
		t.Fatalf("Put() = %v", err)
	}
	if id != "fixed-id" {
		t.Errorf("Put() = %q, want %q", id, "fixed-id")
	}
}

func TestMemory_Overwrite(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()

	doc := sampleDoc("before")
	id, _ := st.Put(ctx, doc)

	doc2 := sampleDoc("after")
	doc2.ID = id
	if _, err := st.Put(ctx, doc2); err != nil {
		t.Fatalf("Put(overwrite) = %v", err)
	}

	got, err := st.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get() = %v", err)
	}
	if got.Name != "after" {
		t.Errorf("Name = %q, want %q", got.Name, "after")
	}
	ids, _ := st.List(ctx)
	if len(ids) != 1 {
		t.Errorf("List() = %v, want one ID", ids)
	}
}

func TestMemory_GetIsCopy(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()

	id, _ := st.Put(ctx, sampleDoc("vessel"))
	first, _ := st.Get(ctx, id)
	first.Parts[0].Name = "mutated"

	second, _ := st.Get(ctx, id)
	if second.Parts[0].Name != "pod" {
		t.Errorf("Parts[0].Name = %q after caller mutation, want %q", second.Parts[0].Name, "pod")
	}
}

func TestMemory_NotFound(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()

	if _, err := st.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) = %v, want ErrNotFound", err)
	}
	if err := st.Delete(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete(missing) = %v, want ErrNotFound", err)
	}
}

func TestMemory_DeleteAndList(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()

	a, _ := st.Put(ctx, sampleDoc("a"))
	b, _ := st.Put(ctx, sampleDoc("b"))

	ids, err := st.List(ctx)
	if err != nil {
		t.Fatalf("List() = %v", err)
	}
	want := []string{a, b}
	slices.Sort(want)
	if !slices.Equal(ids, want) {
		t.Errorf("List() = %v, want %v", ids, want)
	}

	if err := st.Delete(ctx, a); err != nil {
		t.Fatalf("Delete() = %v", err)
	}
	ids, _ = st.List(ctx)
	if !slices.Equal(ids, []string{b}) {
		t.Errorf("List() after delete = %v, want [%s]", ids, b)
	}
}
