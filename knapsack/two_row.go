// File: two_row.go
// Role: rolling-array strategy. Benefits live in two rows; the decision for
// each (item, w) cell is kept as one bit so the selection can still be rebuilt.

package knapsack

const wordBits = 64

// bitRow is a fixed-size bit set over capacities 0..W.
type bitRow []uint64

func newBitRow(capacity int) bitRow { return make(bitRow, capacity/wordBits+1) }

func (r bitRow) set(w int)      { r[w/wordBits] |= 1 << (uint(w) % wordBits) }
func (r bitRow) has(w int) bool { return r[w/wordBits]&(1<<(uint(w)%wordBits)) != 0 }

// selectTwoRow returns the same indices as selectTable.
func selectTwoRow(items []Item, capacity int) []int {
	n := len(items)
	prev := make([]int64, capacity+1)
	curr := make([]int64, capacity+1)
	taken := make([]bitRow, n)

	for i, it := range items {
		taken[i] = newBitRow(capacity)
		for w := 0; w <= capacity; w++ {
			curr[w] = prev[w]
			if it.Size <= w {
				if with := prev[w-it.Size] + it.Benefit; with > curr[w] {
					curr[w] = with
					taken[i].set(w)
				}
			}
		}
		prev, curr = curr, prev
	}

	chosen := []int{}
	w := capacity
	for i := n - 1; i >= 0; i-- {
		if taken[i].has(w) {
			chosen = append(chosen, i)
			w -= items[i].Size
		}
	}

	return reverse(chosen)
}
