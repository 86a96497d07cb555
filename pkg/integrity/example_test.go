package integrity_test

import (
	"fmt"

	"github.com/partbench/partbench/pkg/craft"
	"github.com/partbench/partbench/pkg/integrity"
)

// ExampleEngine shows the full removal flow for a symmetric part: query the
// verdict, break the group, then delete the part.
func ExampleEngine() {
	tree := craft.New()
	tree.AddPart(craft.Part{UID: 1, Name: "pod"})
	tree.AddPart(craft.Part{UID: 2, Name: "fin", Parent: 1})
	tree.AddPart(craft.Part{UID: 3, Name: "fin", Parent: 1})
	tree.LinkSymmetry([]craft.UID{2, 3}, 2)

	eng := integrity.New(tree, nil)

	verdict, _ := eng.HasBreakableSymmetry(2)
	fmt.Println(verdict.Breakable())

	eng.BreakSymmetry(2)
	eng.Delete(2)

	fmt.Println(tree.Count())
	// Output:
	// true
	// 2
}

// ExampleEngine_verdict shows a blocked verdict with its rationale.
func ExampleEngine_verdict() {
	tree := craft.New()
	tree.AddPart(craft.Part{UID: 1, Name: "pod"})
	tree.AddPart(craft.Part{UID: 2, Name: "tank", Parent: 1})
	tree.AddPart(craft.Part{UID: 3, Name: "fin", Parent: 2})
	tree.LinkSymmetry([]craft.UID{2, 3}, 2)

	eng := integrity.New(tree, nil)

	verdict, _ := eng.HasBreakableSymmetry(3)
	fmt.Println(verdict.Category)
	fmt.Println(verdict)
	// Output:
	// HAS_ANCESTRAL_COUNTERPART
	// fin (3) has counterpart tank (2) among its ancestors
}
