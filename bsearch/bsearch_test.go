package bsearch

import (
	"math"
	"math/big"
	"math/rand"
	"testing"
)

func TestSearchThreshold(t *testing.T) {
	tests := []struct {
		name     string
		from     int32
		to       int32
		test     func(int32) bool
		expected int32
	}{
		{"threshold inside range", 0, 10, func(i int32) bool { return i >= 4 }, 4},
		{"threshold at upper bound", 0, 10, func(i int32) bool { return i >= 10 }, 10},
		{"never satisfied", 0, 10, func(i int32) bool { return false }, 10},
		{"always satisfied", 0, 10, func(i int32) bool { return true }, 0},
		{"negative bounds", -20, -5, func(i int32) bool { return i >= -13 }, -13},
		{"single element satisfied", 3, 4, func(i int32) bool { return true }, 3},
		{"single element unsatisfied", 3, 4, func(i int32) bool { return false }, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(tt.from, tt.to, tt.test)
			if got != tt.expected {
				t.Errorf("Search(%d, %d): expected %d, got %d", tt.from, tt.to, tt.expected, got)
			}
		})
	}
}

func TestSearchEmptyRange(t *testing.T) {
	for _, x := range []int64{0, 1, -1, 42, math.MinInt64, math.MaxInt64} {
		if got := Search(x, x, func(int64) bool { return true }); got != x {
			t.Errorf("Search(%d, %d, true): expected %d, got %d", x, x, x, got)
		}
		if got := Search(x, x, func(int64) bool { return false }); got != x {
			t.Errorf("Search(%d, %d, false): expected %d, got %d", x, x, x, got)
		}
	}
}

func TestSearchInvertedRange(t *testing.T) {
	// from stays inclusive and to stays exclusive; only the narrowing
	// direction changes.
	tests := []struct {
		name     string
		from     int32
		to       int32
		test     func(int32) bool
		expected int32
	}{
		{"descending threshold", 9, -1, func(i int32) bool { return i < 5 }, 5},
		{"descending near lower end", 9, -1, func(i int32) bool { return i <= 0 }, 1},
		{"descending never satisfied", 9, -1, func(i int32) bool { return false }, -1},
		{"descending always satisfied", 9, -1, func(i int32) bool { return true }, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(tt.from, tt.to, tt.test)
			if got != tt.expected {
				t.Errorf("Search(%d, %d): expected %d, got %d", tt.from, tt.to, tt.expected, got)
			}
		})
	}
}

func TestSearchUnsignedDomain(t *testing.T) {
	// The full 32-bit unsigned span; the naive (from+to)/2 midpoint or a
	// signed shift would both go wrong here.
	got := Search(uint32(0), uint32(0xFFFFFFFF), func(i uint32) bool {
		return i >= 0x80000000
	})
	if got != 0x80000000 {
		t.Errorf("expected 0x80000000, got %#x", got)
	}

	got64 := Search(uint64(0), uint64(math.MaxUint64), func(i uint64) bool {
		return i >= 1<<63
	})
	if got64 != 1<<63 {
		t.Errorf("expected 1<<63, got %#x", got64)
	}
}

func TestFindUnsignedBitPatterns(t *testing.T) {
	// Same search as TestSearchUnsignedDomain but with the values held in
	// signed variables; MidpointUint32 supplies the unsigned ordering.
	from := int32(0)
	to := int32(-1) // 0xFFFFFFFF
	got := Find(from, to, MidpointUint32, func(i int32) bool {
		return uint32(i) >= 0x80000000
	})
	if uint32(got) != 0x80000000 {
		t.Errorf("expected bit pattern 0x80000000, got %#x", uint32(got))
	}
}

func TestSearchLargeMagnitudeBounds(t *testing.T) {
	hi := int64(math.MaxInt64)
	got := Search(hi-10, hi, func(i int64) bool { return i >= hi-3 })
	if got != hi-3 {
		t.Errorf("expected %d, got %d", hi-3, got)
	}

	lo := int64(math.MinInt64)
	got = Search(lo, lo+10, func(i int64) bool { return i >= lo+7 })
	if got != lo+7 {
		t.Errorf("expected %d, got %d", lo+7, got)
	}
}

func TestSearchAgainstLinearScan(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 500; trial++ {
		from := int64(rng.Intn(2000) - 1000)
		to := from + int64(rng.Intn(100))
		// Threshold possibly outside the range, making the predicate
		// always-true or always-false over it.
		threshold := from + int64(rng.Intn(120)) - 10

		test := func(i int64) bool { return i >= threshold }
		got := Search(from, to, test)

		want := to
		for i := from; i < to; i++ {
			if test(i) {
				want = i
				break
			}
		}
		if got != want {
			t.Fatalf("Search(%d, %d, >=%d): expected %d, got %d", from, to, threshold, want, got)
		}
	}
}

func TestFindFuncBigInt(t *testing.T) {
	// Integer square root of a value far beyond fixed-width range, using
	// a caller-supplied midpoint in big.Int arithmetic. Convergence is
	// detected with Cmp, not pointer identity.
	midpoint := func(from, to *big.Int) *big.Int {
		mid := new(big.Int).Sub(to, from)
		mid.Rsh(mid, 1)
		return mid.Add(mid, from)
	}
	equal := func(a, b *big.Int) bool { return a.Cmp(b) == 0 }

	root := new(big.Int).Exp(big.NewInt(10), big.NewInt(20), nil) // 10^20
	square := new(big.Int).Mul(root, root)
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(21), nil)

	got := FindFunc(big.NewInt(0), limit, midpoint, equal, func(n *big.Int) bool {
		sq := new(big.Int).Mul(n, n)
		return sq.Cmp(square) >= 0
	})
	if got.Cmp(root) != 0 {
		t.Errorf("expected %s, got %s", root, got)
	}
}

func TestFindCustomMidpoint(t *testing.T) {
	// A biased but still converging midpoint narrows to the same boundary.
	biased := func(from, to int32) int32 {
		mid := from + (to-from)/4
		if mid == from {
			return Midpoint(from, to)
		}
		return mid
	}
	got := Find(int32(0), int32(1000), biased, func(i int32) bool { return i >= 637 })
	if got != 637 {
		t.Errorf("expected 637, got %d", got)
	}
}
