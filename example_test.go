package isaw_test

import (
	"fmt"
	"log"

	"github.com/aretw0/isaw"
	"github.com/aretw0/isaw/pkg/adapters/memory"
	"github.com/aretw0/isaw/pkg/domain"
)

// ExampleEngine_GeneratePermutations shows a search with a result cap.
func ExampleEngine_GeneratePermutations() {
	eng := isaw.New()

	f := domain.FilterConfig{Pattern: domain.Literal("b")}
	stream, err := eng.GeneratePermutations("abc", domain.LengthRange{Min: 2}, 4, f)
	if err != nil {
		log.Fatal(err)
	}

	for word := range stream.All() {
		fmt.Println(word)
	}
	// Output:
	// ab
	// ba
	// bc
	// cb
}

// ExampleEngine_GenerateWords validates permutations against an in-memory dictionary.
func ExampleEngine_GenerateWords() {
	dict := memory.NewDictionary("act", "cat", "at", "ta")
	eng := isaw.New(isaw.WithDictionary(dict))

	stream, err := eng.GenerateWords("tac", domain.LengthRange{Min: 2}, nil, 0, domain.FilterConfig{Unique: true})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(stream.Collect())
	// Output:
	// [ta at act cat]
}

// ExampleEngine_Count computes totals without generating anything.
func ExampleEngine_Count() {
	table, err := isaw.New().Count(6, domain.LengthRange{})
	if err != nil {
		log.Fatal(err)
	}

	for _, row := range table.Rows {
		fmt.Printf("%d: %s\n", row.Length, row.Permutations)
	}
	fmt.Println("total:", table.Total(domain.ModePermutation))
	// Output:
	// 1: 6
	// 2: 30
	// 3: 120
	// 4: 360
	// 5: 720
	// 6: 720
	// total: 1956
}
