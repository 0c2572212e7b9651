package oracle_test

import (
	"fmt"

	"github.com/katalvlaran/rewind/oracle"
)

// ExampleOracle_T prints the optimal cost of a 4-step round trip with two
// slots and both optimal split points.
func ExampleOracle_T() {
	o := oracle.New()
	cost, err := o.T(4, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	left, _, _ := o.SplitLeft(4, 2)
	right, _, _ := o.SplitRight(4, 2)
	fmt.Printf("T(4,2)=%v split=[%d,%d]\n", cost, left, right)
	// Output:
	// T(4,2)=6 split=[2,3]
}

// ExampleOracle_Candidates lists the recurrence value of every split point.
func ExampleOracle_Candidates() {
	o := oracle.New()
	cands, _ := o.Candidates(10, 3)
	fmt.Println(cands)
	// Output:
	// [21 20 19 18 18 19 20 21 23 25]
}
