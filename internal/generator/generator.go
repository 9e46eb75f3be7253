// Package generator enumerates arrangements of an alphabet as lazy sequences.
//
// Every sequence walks lengths in ascending order and, within a length, visits
// alphabet positions in increasing index order. Sequences are built on a single
// depth-first walk per length that extends one shared buffer in place, so stopping
// the range loop halts the whole enumeration immediately.
//
// Duplicate letters are distinct positions here; collapsing them is left to the caller.
package generator

import "iter"

// Permutations yields every ordered selection of k distinct positions for k in [min, max].
func Permutations(alphabet []rune, min, max int) iter.Seq[string] {
	return PermutationsPruned(alphabet, min, max, nil)
}

// PermutationsPruned is Permutations, except that a partial selection is abandoned as
// soon as viable rejects it, along with every arrangement it would extend to.
// A nil viable prunes nothing. Order of the survivors is unchanged.
func PermutationsPruned(alphabet []rune, min, max int, viable func(prefix string) bool) iter.Seq[string] {
	return func(yield func(string) bool) {
		min, max, ok := clamp(len(alphabet), min, max)
		if !ok {
			return
		}

		used := make([]bool, len(alphabet))
		buf := make([]rune, 0, max)
		for k := min; k <= max; k++ {
			if !permute(alphabet, k, used, buf, viable, yield) {
				return
			}
		}
	}
}

func permute(alphabet []rune, k int, used []bool, buf []rune, viable func(string) bool, yield func(string) bool) bool {
	if len(buf) == k {
		return yield(string(buf))
	}

	for i, r := range alphabet {
		if used[i] {
			continue
		}
		next := append(buf, r)
		if viable != nil && !viable(string(next)) {
			continue
		}
		used[i] = true
		more := permute(alphabet, k, used, next, viable, yield)
		used[i] = false
		if !more {
			return false
		}
	}
	return true
}

// Combinations yields every unordered selection of k distinct positions for k in [min, max],
// rendered in alphabet order.
func Combinations(alphabet []rune, min, max int) iter.Seq[string] {
	return func(yield func(string) bool) {
		min, max, ok := clamp(len(alphabet), min, max)
		if !ok {
			return
		}

		buf := make([]rune, 0, max)
		for k := min; k <= max; k++ {
			if !combine(alphabet, k, 0, buf, yield) {
				return
			}
		}
	}
}

func combine(alphabet []rune, k, start int, buf []rune, yield func(string) bool) bool {
	if len(buf) == k {
		return yield(string(buf))
	}

	// Stop early enough to leave room for the remaining picks.
	last := len(alphabet) - (k - len(buf))
	for i := start; i <= last; i++ {
		if !combine(alphabet, k, i+1, append(buf, alphabet[i]), yield) {
			return false
		}
	}
	return true
}

// Products yields every length-k sequence with repetition for k in [min, max],
// the last position varying fastest.
func Products(alphabet []rune, min, max int) iter.Seq[string] {
	return func(yield func(string) bool) {
		if len(alphabet) == 0 || max < 1 {
			return
		}
		if min < 1 {
			min = 1
		}

		for k := min; k <= max; k++ {
			idx := make([]int, k)
			word := make([]rune, k)

			for {
				for i, j := range idx {
					word[i] = alphabet[j]
				}
				if !yield(string(word)) {
					return
				}

				pos := k - 1
				for pos >= 0 {
					idx[pos]++
					if idx[pos] < len(alphabet) {
						break
					}
					idx[pos] = 0
					pos--
				}
				if pos < 0 {
					break
				}
			}
		}
	}
}

// clamp normalizes bounds for selections without repetition.
func clamp(n, min, max int) (int, int, bool) {
	if n == 0 {
		return 0, 0, false
	}
	if min < 1 {
		min = 1
	}
	if max > n {
		max = n
	}
	return min, max, min <= max
}
