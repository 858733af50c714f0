package chart

import (
	grob "github.com/MetalBlueberry/go-plotly/graph_objects"
	"gonum.org/v1/gonum/floats"
)

// Row is one ranked institution as the charts see it. AdmitRate stays
// nullable; a nil marshals to null and plotly renders the gap.
type Row struct {
	Name      string
	Sticker   float64
	Grant     float64
	NetPrice  float64
	GradRate  float64
	AdmitRate *float64
	Composite float64
}

// dimension is one parcoords axis. The generated Parcoords type leaves
// Dimensions untyped, so the axis objects are declared here with the json
// keys plotly expects.
type dimension struct {
	Label  string    `json:"label"`
	Range  []float64 `json:"range"`
	Values any       `json:"values"`
}

// Dumbbell builds the discount-gap view: one gray connector per institution
// between net price and sticker price, with a marker at each end.
func Dumbbell(rows []Row, opts ...Opt) *Plot {
	p := NewPlot(opts...)

	names := make([]string, len(rows))
	nets := make([]float64, len(rows))
	stickers := make([]float64, len(rows))
	for ind, r := range rows {
		names[ind] = r.Name
		nets[ind] = r.NetPrice
		stickers[ind] = r.Sticker
	}

	for ind := range rows {
		p.Fig.AddTraces(&grob.Scatter{
			X:          []float64{nets[ind], stickers[ind]},
			Y:          []string{names[ind], names[ind]},
			Mode:       grob.ScatterModeLines,
			Line:       &grob.ScatterLine{Color: "gray", Width: 2},
			Showlegend: grob.False,
		})
	}

	p.Fig.AddTraces(&grob.Scatter{
		Name:   "Net Price (Middle Class)",
		X:      nets,
		Y:      names,
		Mode:   grob.ScatterModeMarkers,
		Marker: &grob.ScatterMarker{Color: "green", Size: 12},
	})

	p.Fig.AddTraces(&grob.Scatter{
		Name:   "Sticker Price",
		X:      stickers,
		Y:      names,
		Mode:   grob.ScatterModeMarkers,
		Marker: &grob.ScatterMarker{Color: "red", Size: 12},
	})

	return p
}

// Parcoords builds the five-metric comparison, lines colored by composite
// score. The rate axes are fixed ranges; the currency axes span the data.
func Parcoords(rows []Row, opts ...Opt) *Plot {
	p := NewPlot(opts...)

	stickers := make([]float64, len(rows))
	grants := make([]float64, len(rows))
	nets := make([]float64, len(rows))
	grads := make([]float64, len(rows))
	admits := make([]*float64, len(rows))
	scores := make([]float64, len(rows))
	for ind, r := range rows {
		stickers[ind] = r.Sticker
		grants[ind] = r.Grant
		nets[ind] = r.NetPrice
		grads[ind] = r.GradRate
		admits[ind] = r.AdmitRate
		scores[ind] = r.Composite
	}

	p.Fig.AddTraces(&grob.Parcoords{
		Line: &grob.ParcoordsLine{
			Color:      scores,
			Colorscale: "Tealrose",
			Showscale:  grob.True,
			Cmin:       floats.Min(scores),
			Cmax:       floats.Max(scores),
		},
		Dimensions: []dimension{
			{Label: "Sticker Price", Range: []float64{floats.Min(stickers), floats.Max(stickers)}, Values: stickers},
			{Label: "Avg Merit/Inst Grant", Range: []float64{floats.Min(grants), floats.Max(grants)}, Values: grants},
			{Label: "Admissions Rate", Range: []float64{0, 1}, Values: admits},
			{Label: "Graduation Rate", Range: []float64{0.5, 1}, Values: grads},
			{Label: "Your Net Price", Range: []float64{floats.Min(nets), floats.Max(nets)}, Values: nets},
		},
	})

	return p
}
