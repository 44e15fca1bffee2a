package render

// Theme holds colors for pair graph rendering.
type Theme struct {
	Background string
	NodeFill   string
	NodeBorder string
	TextColor  string

	// Edge colors by heat relative to the hottest pair.
	EdgeHot  string // >= half of the maximum count
	EdgeWarm string // >= a tenth of the maximum count
	EdgeCold string

	// CFG edge colors.
	EdgeTaken       string
	EdgeFallthrough string

	// Node accents.
	CompressedFill   string // RVC subjects
	UnclassifiedText string // fallback bucket

	BarColor string // HTML summary bars
}

// NASA is the NASA/Bauhaus theme: geometric, monochrome, sparse color.
var NASA = Theme{
	Background: "#F5F5F5",
	NodeFill:   "white",
	NodeBorder: "#1A1A1A",
	TextColor:  "#1A1A1A",

	EdgeHot:  "#FC3D21", // NASA red
	EdgeWarm: "#E65100", // deep orange
	EdgeCold: "#9E9E9E", // gray

	EdgeTaken:       "#0B3D91", // NASA blue
	EdgeFallthrough: "#424242", // dark gray

	CompressedFill:   "#ECEFF1", // blue-gray 50
	UnclassifiedText: "#9E9E9E",

	BarColor: "#0B3D91",
}

// edgeColor returns the DOT color for an edge with count n given the
// hottest count.
func edgeColor(n, hottest uint64, t Theme) string {
	switch {
	case hottest == 0:
		return t.EdgeCold
	case n*2 >= hottest:
		return t.EdgeHot
	case n*10 >= hottest:
		return t.EdgeWarm
	default:
		return t.EdgeCold
	}
}

// edgeWidth scales pen width between 0.5 and 3.5 by relative count.
func edgeWidth(n, hottest uint64) float64 {
	if hottest == 0 {
		return 0.5
	}
	return 0.5 + 3*float64(n)/float64(hottest)
}
