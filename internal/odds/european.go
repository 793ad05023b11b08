package odds

import (
	"fmt"
	"strings"
)

const (
	// Pockets on a single zero wheel, 0..36
	europeanPockets = 37
	// A winning straight returns 36 times the stake, wider bets 36/n
	europeanFullPayout = 36
)

var europeanRed = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true, 14: true, 16: true, 18: true,
	19: true, 21: true, 23: true, 25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

// Code formats a pocket number the way outcomes and selectors encode it.
func Code(n int) string {
	return fmt.Sprintf("%02d", n)
}

func newEuropeanTable() *Table {
	t := &Table{
		outcomes: make([]string, europeanPockets),
		entries:  make(map[string]Entry),
	}
	for n := 0; n < europeanPockets; n++ {
		t.outcomes[n] = Code(n)
	}

	// Straight up
	for n := 0; n <= 36; n++ {
		t.addNumbers(n)
	}

	// Splits. Layout rows are n, n+1, n+2 with n = 1, 4, ..., 34
	for n := 1; n <= 36; n++ {
		if n%3 != 0 {
			t.addNumbers(n, n+1)
		}
		if n <= 33 {
			t.addNumbers(n, n+3)
		}
	}
	t.addNumbers(0, 1)
	t.addNumbers(0, 2)
	t.addNumbers(0, 3)

	// Streets and the two zero trios
	for n := 1; n <= 34; n += 3 {
		t.addNumbers(n, n+1, n+2)
	}
	t.addNumbers(0, 1, 2)
	t.addNumbers(0, 2, 3)

	// Corners and the first four
	for n := 1; n <= 32; n++ {
		if n%3 != 0 {
			t.addNumbers(n, n+1, n+3, n+4)
		}
	}
	t.addNumbers(0, 1, 2, 3)

	// Six lines
	for n := 1; n <= 31; n += 3 {
		t.addNumbers(n, n+1, n+2, n+3, n+4, n+5)
	}

	// Outside bets
	t.addNamed("1ST12", func(n int) bool { return n >= 1 && n <= 12 })
	t.addNamed("2ND12", func(n int) bool { return n >= 13 && n <= 24 })
	t.addNamed("3RD12", func(n int) bool { return n >= 25 && n <= 36 })
	t.addNamed("COL1", func(n int) bool { return n > 0 && n%3 == 1 })
	t.addNamed("COL2", func(n int) bool { return n > 0 && n%3 == 2 })
	t.addNamed("COL3", func(n int) bool { return n > 0 && n%3 == 0 })
	t.addNamed("RED", func(n int) bool { return europeanRed[n] })
	t.addNamed("BLACK", func(n int) bool { return n > 0 && !europeanRed[n] })
	t.addNamed("ODD", func(n int) bool { return n > 0 && n%2 == 1 })
	t.addNamed("EVEN", func(n int) bool { return n > 0 && n%2 == 0 })
	t.addNamed("LOW", func(n int) bool { return n >= 1 && n <= 18 })
	t.addNamed("HIGH", func(n int) bool { return n >= 19 && n <= 36 })

	return t
}

// addNumbers registers an inside bet. Its selector is the CSV of the
// ascending two digit codes, e.g. "00,01,02".
func (t *Table) addNumbers(numbers ...int) {
	codes := make([]string, len(numbers))
	for i, n := range numbers {
		codes[i] = Code(n)
	}
	t.add(strings.Join(codes, ","), uint64(europeanFullPayout/len(codes)), codes...)
}

func (t *Table) addNamed(selector string, covered func(n int) bool) {
	var codes []string
	for n := 0; n < europeanPockets; n++ {
		if covered(n) {
			codes = append(codes, Code(n))
		}
	}
	t.add(selector, uint64(europeanFullPayout/len(codes)), codes...)
}
