// SPDX-License-Identifier: MIT
package terrain_test

import (
	"fmt"

	"github.com/katalvlaran/terragrid/terrain"
)

// ExampleTable_Classify maps raw values to bands of the default table.
func ExampleTable_Classify() {
	table := terrain.DefaultTable()
	for _, v := range []float64{0.1, 0.33, 0.6, 0.93} {
		b, _ := table.Classify(v)
		fmt.Printf("%.2f %s %d\n", v, b.Name, b.Code)
	}
	// Output:
	// 0.10 GRASS 0
	// 0.33 SHORE 4
	// 0.60 OCEAN 6
	// 0.93 MOUNTAIN_PEAK 10
}
