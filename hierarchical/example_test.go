package hierarchical_test

import (
	"fmt"

	"github.com/katalvlaran/rewind/hierarchical"
)

// ExampleEnumerator shows a full cycle over 10 positions with 3 slots.
func ExampleEnumerator() {
	e, err := hierarchical.New(10, 3)
	if err != nil {
		fmt.Println(err)
		return
	}
	for e.Next() {
	}
	fmt.Println("at", e.Position(), "checkpoints", e.Checkpoints())
	if err = e.RunFullCycle(); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("ops", e.OperationCount())
	// Output:
	// at 10 checkpoints [10 10 10]
	// ops 25
}
