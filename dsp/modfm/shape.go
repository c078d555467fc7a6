package modfm

// ShapeToRS maps one shape control in [0, 1] onto the (r, s) weights of
// Kernel. The control is split into four equal segments:
//
//	[0, 0.25)    r rises 0 -> 1 while s falls 1 -> -1 (symmetric to one-sided)
//	[0.25, 0.5)  r = 1, s rises -1 -> 0
//	[0.5, 0.75)  r = 1, s rises 0 -> 1
//	[0.75, 1]    r falls 1 -> 0, s = 1
//
// At exactly 1 the map lands on r = 0, s = 1.
func ShapeToRS(v float64) (r, s float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}

	x := v * 4
	if x < 4 {
		x -= float64(int(x))
	} else {
		x = 1
	}

	switch {
	case v < 0.25:
		return x, 1 - 2*x
	case v < 0.5:
		return 1, x - 1
	case v < 0.75:
		return 1, x
	default:
		return 1 - x, 1
	}
}
