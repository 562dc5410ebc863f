// Package fuzzy scores string similarity with the Ratcliff Obershelp measure
package fuzzy

// matcher holds the precomputed index of b so one needle can be
// scored against many candidates without rebuilding state
type matcher struct {
	a, b []rune
	b2j  map[rune][]int
}

func newMatcher(a, b string) *matcher {
	m := &matcher{a: []rune(a), b: []rune(b)}
	m.b2j = make(map[rune][]int, len(m.b))
	for j, r := range m.b {
		m.b2j[r] = append(m.b2j[r], j)
	}
	return m
}

type match struct {
	a, b, size int
}

// longestMatch finds the longest block of equal runes in
// a[alo:ahi] and b[blo:bhi], leftmost first on ties
func (m *matcher) longestMatch(alo, ahi, blo, bhi int) match {
	best := match{a: alo, b: blo}
	j2len := map[int]int{}
	for i := alo; i < ahi; i++ {
		newj2len := map[int]int{}
		for _, j := range m.b2j[m.a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > best.size {
				best = match{a: i - k + 1, b: j - k + 1, size: k}
			}
		}
		j2len = newj2len
	}
	return best
}

// matches sums the sizes of all matching blocks between a and b
func (m *matcher) matches() int {
	type span struct{ alo, ahi, blo, bhi int }
	queue := []span{{0, len(m.a), 0, len(m.b)}}
	total := 0
	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		mt := m.longestMatch(s.alo, s.ahi, s.blo, s.bhi)
		if mt.size == 0 {
			continue
		}
		total += mt.size
		if s.alo < mt.a && s.blo < mt.b {
			queue = append(queue, span{s.alo, mt.a, s.blo, mt.b})
		}
		if mt.a+mt.size < s.ahi && mt.b+mt.size < s.bhi {
			queue = append(queue, span{mt.a + mt.size, s.ahi, mt.b + mt.size, s.bhi})
		}
	}
	return total
}

// Ratio scores similarity of a and b in [0,1]
// 1 means identical, 0 means nothing in common, two empty strings score 1
func Ratio(a, b string) float64 {
	m := newMatcher(a, b)
	total := len(m.a) + len(m.b)
	if total == 0 {
		return 1
	}
	return 2 * float64(m.matches()) / float64(total)
}

// Closest returns the index and score of the candidate most similar to
// needle, or -1 when no candidate reaches cutoff
// the earliest candidate wins ties
func Closest(needle string, candidates []string, cutoff float64) (int, float64) {
	bestIdx, bestScore := -1, -1.0
	for i, c := range candidates {
		if s := Ratio(needle, c); s >= cutoff && s > bestScore {
			bestIdx, bestScore = i, s
		}
	}
	if bestIdx < 0 {
		return -1, 0
	}
	return bestIdx, bestScore
}
