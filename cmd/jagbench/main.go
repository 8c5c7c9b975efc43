// Command jagbench times a single segmented reduction over a jagged array
// loaded from a JSON file.
//
// Usage:
//
//	jagbench -input data.json -reducer sum -repeat 100
//
// The input file holds the flat offsets and content of a single list level:
//
//	{"offsets": [0, 3, 3, 5], "content": [1, 2, 3, 4, 5]}
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jagged-go/jagged"
	"github.com/jagged-go/jagged/contrib/list"
	"github.com/jagged-go/jagged/contrib/reduce"
)

var (
	inputFile = flag.String("input", "", "Input JSON file with offsets/content (required)")
	reducer   = flag.String("reducer", "sum", "Reducer: count,count_nonzero,sum,prod,min,max,argmin,argmax")
	negaxis   = flag.Int("negaxis", -1, "Negative axis to reduce, per the list layer's own depth count")
	repeat    = flag.Int("repeat", 1, "Number of times to run the reduction for timing")
	mask      = flag.Bool("mask", false, "Report empty groups as missing rather than an identity value")
)

type inputData struct {
	Offsets []int64 `json:"offsets"`
	Content []int64 `json:"content"`
}

func main() {
	flag.Parse()

	if *inputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: -input flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	data, err := loadInput(*inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	r, err := resolveReducer(*reducer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	l := list.New(jagged.NewIndexI64(data.Offsets), jagged.NewNumericArray(data.Content))

	var result jagged.Content
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		result, err = l.ReduceNext(r, *negaxis, nil, nil, 0, *mask, false)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: reduction failed on run %d: %v\n", i, err)
			os.Exit(1)
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("reducer=%s negaxis=%d runs=%d total=%s per-run=%s\n",
		*reducer, *negaxis, *repeat, elapsed, elapsed/time.Duration(*repeat))
	printResult(result)
}

func loadInput(path string) (inputData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return inputData{}, fmt.Errorf("reading %s: %w", path, err)
	}
	var data inputData
	if err := json.Unmarshal(raw, &data); err != nil {
		return inputData{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return data, nil
}

func resolveReducer(name string) (jagged.Reducer, error) {
	switch name {
	case "count":
		return reduce.Count{}, nil
	case "count_nonzero":
		return reduce.CountNonzero{}, nil
	case "sum":
		return reduce.Sum{}, nil
	case "prod":
		return reduce.Prod{}, nil
	case "min":
		return reduce.Min{}, nil
	case "max":
		return reduce.Max{}, nil
	case "argmin":
		return reduce.ArgMin{}, nil
	case "argmax":
		return reduce.ArgMax{}, nil
	default:
		return nil, fmt.Errorf("unknown reducer %q", name)
	}
}

func printResult(result jagged.Content) {
	switch v := result.(type) {
	case list.List[int64]:
		leaf, ok := v.Contained().(jagged.NumericArray[int64])
		if !ok {
			fmt.Printf("result: %T (non-int64 leaf, not printed)\n", v.Contained())
			return
		}
		fmt.Printf("result offsets=%v values=%v\n", v.Offsets().ToInt64(), leaf.Raw())
	case jagged.NumericArray[int64]:
		fmt.Printf("result values=%v\n", v.Raw())
	default:
		fmt.Printf("result: %T\n", result)
	}
}
