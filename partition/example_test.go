package partition_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/districtcut/geo"
	"github.com/katalvlaran/districtcut/partition"
)

// ExampleEngine_Run splits a six-unit corridor into three districts.
func ExampleEngine_Run() {
	const input = `[
	  {"GEOID": "u1", "adj": [1], "pop": 10, "weights": [1]},
	  {"GEOID": "u2", "adj": [2], "pop": 10, "weights": [5]},
	  {"GEOID": "u3", "adj": [3], "pop": 10, "weights": [1]},
	  {"GEOID": "u4", "adj": [4], "pop": 10, "weights": [5]},
	  {"GEOID": "u5", "adj": [5], "pop": 10, "weights": [1]},
	  {"GEOID": "u6", "adj": [],  "pop": 10, "weights": []}
	]`
	model, err := geo.Load(strings.NewReader(input))
	if err != nil {
		fmt.Println(err)
		return
	}

	plan, err := partition.NewEngine(nil, partition.WithDistricts(3)).Run(context.Background(), model)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, d := range plan.Districts {
		fmt.Println(d.Number, len(d.Units), d.Population)
	}
	fmt.Println("cuts:", len(plan.Runtimes))
	// Output:
	// 1 2 20
	// 2 2 20
	// 3 2 20
	// cuts: 2
}
