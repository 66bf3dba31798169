package dice

// WinRate is the probability that a shows a strictly higher face than b
// when both are thrown independently.
func WinRate(a, b *Die) float64 {
	wins := 0
	for _, fa := range a.faces {
		for _, fb := range b.faces {
			if fa > fb {
				wins++
			}
		}
	}
	return float64(wins) / float64(Faces*Faces)
}

// SharedIndexWinRate is the probability that a shows a strictly higher face
// than b when both are resolved at the same uniformly chosen index.
func SharedIndexWinRate(a, b *Die) float64 {
	wins := 0
	for i := range a.faces {
		if a.faces[i] > b.faces[i] {
			wins++
		}
	}
	return float64(wins) / float64(Faces)
}
