package mapping_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/sublattice/mapping"
)

// ExampleReadJSONL decodes two candidates; numeric qubit labels become strings.
func ExampleReadJSONL() {
	src := "{\"0\": 128, \"1\": 133}\n{\"0\": \"7\", \"1\": \"9\"}\n"
	for tbl, err := range mapping.ReadJSONL(strings.NewReader(src)) {
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		img, _ := tbl.Map("1")
		fmt.Println(tbl.Keys(), img)
	}

	// Output:
	// [0 1] 133
	// [0 1] 9
}
