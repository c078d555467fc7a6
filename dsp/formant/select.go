package formant

// Selector values 0..3 pick a register directly; 4..7 choose one per note.
const (
	FirstAutoSelector = 4
	MaxSelector       = 7
)

// splitPoints are the ascending note thresholds of the automatic selectors.
// A note below the first threshold sings bass, below the second tenor, below
// the third alto, and soprano from the third threshold up. Each higher
// selector shifts all three splits down a whole tone.
var splitPoints = [MaxSelector - FirstAutoSelector + 1][3]int{
	{54, 64, 74},
	{52, 62, 72},
	{50, 60, 70},
	{48, 58, 68},
}

// Select returns the register for a selector and note. Selectors outside
// 0..7 are clamped. Comparisons are strict: a note equal to a threshold
// selects the higher register.
func Select(selector, note int) Register {
	if selector < 0 {
		selector = 0
	}
	if selector > MaxSelector {
		selector = MaxSelector
	}
	if selector < FirstAutoSelector {
		return Register(selector)
	}

	split := &splitPoints[selector-FirstAutoSelector]
	switch {
	case note < split[0]:
		return Bass
	case note < split[1]:
		return Tenor
	case note < split[2]:
		return Alto
	default:
		return Soprano
	}
}

// SplitPoints returns the three note thresholds of an automatic selector.
// ok is false for direct selectors.
func SplitPoints(selector int) (points [3]int, ok bool) {
	if selector < FirstAutoSelector || selector > MaxSelector {
		return points, false
	}
	return splitPoints[selector-FirstAutoSelector], true
}
