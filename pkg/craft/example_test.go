package craft_test

import (
	"fmt"

	"github.com/partbench/partbench/pkg/craft"
)

func ExampleTree_basic() {
	// Build a small rocket: pod → tank → two mirrored fins
	t := craft.New()
	_ = t.AddPart(craft.Part{UID: 1, Name: "pod"})
	_ = t.AddPart(craft.Part{UID: 2, Name: "tank", Parent: 1})
	_ = t.AddPart(craft.Part{UID: 3, Name: "fin", Parent: 2})
	_ = t.AddPart(craft.Part{UID: 4, Name: "fin", Parent: 2})
	_ = t.LinkSymmetry([]craft.UID{3, 4}, 3)

	fmt.Println("Parts:", t.Count())
	fmt.Println("Children of tank:", t.Children(2))

	fin, _ := t.Part(3)
	fmt.Println("Fin counterparts:", fin.Symmetry)
	// Output:
	// Parts: 4
	// Children of tank: [3 4]
	// Fin counterparts: [4]
}

func ExampleTree_Walk() {
	t := craft.New()
	_ = t.AddPart(craft.Part{UID: 1, Name: "pod"})
	_ = t.AddPart(craft.Part{UID: 2, Name: "tank", Parent: 1})
	_ = t.AddPart(craft.Part{UID: 3, Name: "engine", Parent: 2})

	t.Walk(1, func(p *craft.Part) bool {
		fmt.Println(p.Name)
		return true
	})
	// Output:
	// pod
	// tank
	// engine
}
