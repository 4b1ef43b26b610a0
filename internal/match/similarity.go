package match

// Similarity scores two clause bodies in [0,1] using the Dice coefficient over
// token multisets: 2*|intersection| / (|a|+|b|). Monotonic with token overlap
// and symmetric; identical texts score 1.
func Similarity(a, b string) float64 {
	ta, tb := Tokenize(a), Tokenize(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	counts := make(map[string]int, len(ta))
	for _, t := range ta {
		counts[t]++
	}
	overlap := 0
	for _, t := range tb {
		if counts[t] > 0 {
			counts[t]--
			overlap++
		}
	}
	return 2 * float64(overlap) / float64(len(ta)+len(tb))
}
