package ledger

import "math/rand"

// unusedAmounts returns the values in [MinAmount, MaxAmount] absent from used,
// in ascending order.
func unusedAmounts(used []int) []int {
	taken := make(map[int]struct{}, len(used))
	for _, a := range used {
		taken[a] = struct{}{}
	}
	free := make([]int, 0, MaxAmount-MinAmount+1-len(taken))
	for n := MinAmount; n <= MaxAmount; n++ {
		if _, ok := taken[n]; !ok {
			free = append(free, n)
		}
	}
	return free
}

// pickUnused draws one unused amount uniformly at random. ok is false when
// the pool is exhausted.
func pickUnused(used []int) (int, bool) {
	free := unusedAmounts(used)
	if len(free) == 0 {
		return 0, false
	}
	return free[rand.Intn(len(free))], true
}
