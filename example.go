// Package internal provides example code demonstrating how to use the
// bisect search library. This file contains examples for every search
// flavor: plain ranges, collections, key extraction, and custom domains.
package internal

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/Johniel/bisect/bsearch"
	"github.com/Johniel/bisect/collection"
	"github.com/Johniel/bisect/funcs"
	"github.com/Johniel/bisect/keycodec"
)

// ExampleRangeSearch demonstrates searching a plain integer range with a
// monotonic predicate: the first value of i with i*i >= 2000.
func ExampleRangeSearch() {
	got := bsearch.Search(int32(0), int32(1000), func(i int32) bool {
		return i*i >= 2000
	})
	fmt.Printf("first i with i*i >= 2000: %d\n", got)
}

// ExampleInvertedRange demonstrates a descending search: from stays
// inclusive and to stays exclusive even with the bounds reversed.
func ExampleInvertedRange() {
	got := bsearch.Search(int32(9), int32(-1), func(i int32) bool {
		return i < 5
	})
	fmt.Printf("descending boundary: %d\n", got)
}

// ExampleUnsignedDomain demonstrates searching the full 32-bit unsigned
// span without overflow.
func ExampleUnsignedDomain() {
	got := bsearch.Search(uint32(0), uint32(0xFFFFFFFF), func(i uint32) bool {
		return i >= 0x80000000
	})
	fmt.Printf("unsigned boundary: %#x\n", got)
}

// ExampleCollectionSearch demonstrates the collection flavors over a
// sorted slice.
func ExampleCollectionSearch() {
	names := collection.Slice[string]{"alice", "bob", "carol", "dave", "erin"}

	key := func(c collection.Slice[string], i int) string { return c.At(i) }

	// By extracted key and predicate.
	i := collection.KeySearchAll(names, key, funcs.Predicate[string](func(name string) bool {
		return name >= "carol"
	}))
	fmt.Printf("first name >= carol at index %d\n", i)

	// Generalized lower bound with a comparator.
	i = collection.LowerBoundAll(names, "bz", key, strings.Compare)
	fmt.Printf("insertion point for 'bz' is %d\n", i)
}

// ExampleSortedBlock demonstrates the contiguous record block with
// composite keys encoded by keycodec.
func ExampleSortedBlock() {
	block := collection.NewBlock(4096)

	rows := [][][]byte{
		{[]byte("smith"), []byte("alice")},
		{[]byte("johnson"), []byte("bob")},
		{[]byte("smith"), []byte("zoe")},
	}
	for _, row := range rows {
		var rec []byte
		keycodec.Append(row, &rec)
		if err := block.Insert(rec); err != nil {
			fmt.Printf("insert failed: %v\n", err)
			return
		}
	}

	for i := 0; i < block.Len(); i++ {
		var fields [][]byte
		keycodec.Split(block.At(i), &fields)
		fmt.Printf("record %d: %s %s\n", i, fields[0], fields[1])
	}
}

// ExampleBigIntSqrt demonstrates an object-domain search: the integer
// square root of a number far beyond any fixed-width type, with a
// caller-supplied midpoint function in big.Int arithmetic.
func ExampleBigIntSqrt() {
	midpoint := func(from, to *big.Int) *big.Int {
		mid := new(big.Int).Sub(to, from)
		mid.Rsh(mid, 1)
		return mid.Add(mid, from)
	}
	equal := func(a, b *big.Int) bool { return a.Cmp(b) == 0 }

	square, _ := new(big.Int).SetString("152415787532388367501905199875019052100", 10)
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(25), nil)

	root := bsearch.FindFunc(big.NewInt(0), limit, midpoint, equal, func(n *big.Int) bool {
		return new(big.Int).Mul(n, n).Cmp(square) >= 0
	})
	fmt.Printf("isqrt: %s\n", root)
}

// RunAllExamples runs all example functions.
func RunAllExamples() {
	fmt.Println("=== Example: Range Search ===")
	ExampleRangeSearch()
	fmt.Println()

	fmt.Println("=== Example: Inverted Range ===")
	ExampleInvertedRange()
	fmt.Println()

	fmt.Println("=== Example: Unsigned Domain ===")
	ExampleUnsignedDomain()
	fmt.Println()

	fmt.Println("=== Example: Collection Search ===")
	ExampleCollectionSearch()
	fmt.Println()

	fmt.Println("=== Example: Sorted Block ===")
	ExampleSortedBlock()
	fmt.Println()

	fmt.Println("=== Example: BigInt Square Root ===")
	ExampleBigIntSqrt()
	fmt.Println()
}
