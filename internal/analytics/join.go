package analytics

// Joined pairs a left row with one matching right row.
type Joined[L, R any] struct {
	Left  L
	Right R
}

// JoinStats counts what a join kept and what it dropped. Dropped left rows
// are expected attrition (dangling references), not failures.
type JoinStats struct {
	Input   int `json:"input"`
	Output  int `json:"output"`
	Dropped int `json:"dropped"`
}

// Then composes the stats of a follow-up join applied to this join's output.
func (s JoinStats) Then(next JoinStats) JoinStats {
	return JoinStats{
		Input:   s.Input,
		Output:  next.Output,
		Dropped: s.Dropped + next.Dropped,
	}
}

// IndexBy groups rows by key, keeping input order inside each bucket.
func IndexBy[T any, K comparable](rows []T, key func(T) K) map[K][]T {
	idx := make(map[K][]T, len(rows))
	for _, r := range rows {
		k := key(r)
		idx[k] = append(idx[k], r)
	}
	return idx
}

// InnerJoin pairs every left row with all right rows sharing its key. Output
// follows left order, then right order within a key. Left rows without a
// match are dropped and counted.
func InnerJoin[L, R any, K comparable](left []L, right []R, leftKey func(L) K, rightKey func(R) K) ([]Joined[L, R], JoinStats) {
	idx := IndexBy(right, rightKey)
	stats := JoinStats{Input: len(left)}

	out := make([]Joined[L, R], 0, len(left))
	for _, l := range left {
		matches, ok := idx[leftKey(l)]
		if !ok {
			stats.Dropped++
			continue
		}
		for _, r := range matches {
			out = append(out, Joined[L, R]{Left: l, Right: r})
		}
	}
	stats.Output = len(out)
	return out, stats
}
