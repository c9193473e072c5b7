package view

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// signF returns -1 for negative v and 1 otherwise.
func signF(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
