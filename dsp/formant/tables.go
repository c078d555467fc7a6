package formant

// unity is the amplitude row of the first formant, which is the reference
// level of the other three.
var unity = [ShapePoints]float64{1, 1, 1, 1, 1, 1}

var bank = [numRegisters]Table{
	Bass: {
		{
			Frequency: [ShapePoints]float64{600, 400, 250, 400, 350, 600},
			Bandwidth: [ShapePoints]float64{60, 40, 60, 40, 40, 60},
			Amplitude: unity,
		},
		{
			Frequency: [ShapePoints]float64{1040, 1620, 1750, 750, 600, 1040},
			Bandwidth: [ShapePoints]float64{70, 80, 90, 80, 80, 70},
			Amplitude: [ShapePoints]float64{0.45, 0.25, 0.031, 0.27, 0.1, 0.45},
		},
		{
			Frequency: [ShapePoints]float64{2250, 2400, 2600, 2400, 2400, 2250},
			Bandwidth: [ShapePoints]float64{110, 100, 100, 100, 100, 110},
			Amplitude: [ShapePoints]float64{0.35, 0.35, 0.15, 0.1, 0.032, 0.35},
		},
		{
			Frequency: [ShapePoints]float64{2450, 2800, 3200, 2650, 2675, 2450},
			Bandwidth: [ShapePoints]float64{120, 120, 120, 120, 120, 120},
			Amplitude: [ShapePoints]float64{0.35, 0.25, 0.1, 0.1, 0.04, 0.35},
		},
	},
	Tenor: {
		{
			Frequency: [ShapePoints]float64{650, 400, 290, 400, 350, 650},
			Bandwidth: [ShapePoints]float64{80, 70, 40, 70, 40, 80},
			Amplitude: unity,
		},
		{
			Frequency: [ShapePoints]float64{1080, 1700, 1870, 800, 600, 1080},
			Bandwidth: [ShapePoints]float64{90, 80, 90, 80, 60, 90},
			Amplitude: [ShapePoints]float64{0.5, 0.2, 0.18, 0.32, 0.1, 0.5},
		},
		{
			Frequency: [ShapePoints]float64{2650, 2600, 2800, 2600, 2700, 2650},
			Bandwidth: [ShapePoints]float64{120, 100, 100, 100, 100, 120},
			Amplitude: [ShapePoints]float64{0.45, 0.25, 0.12, 0.25, 0.2, 0.45},
		},
		{
			Frequency: [ShapePoints]float64{2900, 3200, 3250, 2800, 2900, 2900},
			Bandwidth: [ShapePoints]float64{130, 120, 120, 130, 120, 130},
			Amplitude: [ShapePoints]float64{0.4, 0.2, 0.1, 0.25, 0.2, 0.4},
		},
	},
	Alto: {
		{
			Frequency: [ShapePoints]float64{800, 400, 350, 450, 325, 800},
			Bandwidth: [ShapePoints]float64{80, 60, 50, 70, 50, 80},
			Amplitude: unity,
		},
		{
			Frequency: [ShapePoints]float64{1150, 1600, 1700, 800, 700, 1150},
			Bandwidth: [ShapePoints]float64{90, 80, 100, 80, 60, 90},
			Amplitude: [ShapePoints]float64{0.63, 0.063, 0.1, 0.35, 0.25, 0.63},
		},
		{
			Frequency: [ShapePoints]float64{2800, 2700, 2700, 2830, 2530, 2800},
			Bandwidth: [ShapePoints]float64{120, 120, 120, 100, 170, 120},
			Amplitude: [ShapePoints]float64{0.1, 0.031, 0.031, 0.15, 0.031, 0.1},
		},
		{
			Frequency: [ShapePoints]float64{3500, 3300, 3700, 3500, 3500, 3500},
			Bandwidth: [ShapePoints]float64{130, 150, 150, 130, 180, 130},
			Amplitude: [ShapePoints]float64{0.015, 0.015, 0.015, 0.04, 0.01, 0.015},
		},
	},
	Soprano: {
		{
			Frequency: [ShapePoints]float64{800, 350, 270, 450, 325, 800},
			Bandwidth: [ShapePoints]float64{80, 60, 60, 40, 50, 80},
			Amplitude: unity,
		},
		{
			Frequency: [ShapePoints]float64{1150, 2000, 2140, 800, 700, 1150},
			Bandwidth: [ShapePoints]float64{90, 100, 90, 80, 60, 90},
			Amplitude: [ShapePoints]float64{0.5, 0.1, 0.25, 0.28, 0.15, 0.5},
		},
		{
			Frequency: [ShapePoints]float64{2900, 2800, 2950, 2830, 2700, 2900},
			Bandwidth: [ShapePoints]float64{120, 120, 100, 100, 170, 120},
			Amplitude: [ShapePoints]float64{0.03, 0.16, 0.05, 0.1, 0.017, 0.03},
		},
		{
			Frequency: [ShapePoints]float64{3900, 3600, 3900, 3800, 3800, 3900},
			Bandwidth: [ShapePoints]float64{130, 150, 120, 120, 180, 130},
			Amplitude: [ShapePoints]float64{0.1, 0.01, 0.05, 0.1, 0.01, 0.01},
		},
	},
}
