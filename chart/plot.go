// Package chart renders the two report views: the discount-gap dumbbell and
// the parallel-coordinates comparison. Charts are a display boundary: they
// consume ranked rows, never compute anything the report depends on, and a
// failed render does not invalidate the persisted report.
package chart

import (
	"fmt"
	"os"
	"path/filepath"

	grob "github.com/MetalBlueberry/go-plotly/graph_objects"
	"github.com/MetalBlueberry/go-plotly/offline"
)

type Plot struct {
	Fig *grob.Fig
	Lay *grob.Layout
}

type Opt func(plot *Plot) *Plot

func NewPlot(opt ...Opt) *Plot {
	fig := &grob.Fig{}
	lay := &grob.Layout{}
	fig.Layout = lay
	p := &Plot{Fig: fig, Lay: lay}
	for _, o := range opt {
		o(p)
	}

	return p
}

func WithTitle(title string) Opt {
	return func(p *Plot) *Plot { p.Lay.Title = &grob.LayoutTitle{Text: title}; return p }
}

func WithXlabel(label string) Opt {
	return func(p *Plot) *Plot {
		if p.Lay.Xaxis == nil {
			p.Lay.Xaxis = &grob.LayoutXaxis{}
		}
		if p.Lay.Xaxis.Title == nil {
			p.Lay.Xaxis.Title = &grob.LayoutXaxisTitle{}
		}

		p.Lay.Xaxis.Title.Text = label
		return p
	}
}

func WithYlabel(label string) Opt {
	return func(p *Plot) *Plot {
		if p.Lay.Yaxis == nil {
			p.Lay.Yaxis = &grob.LayoutYaxis{}
		}
		if p.Lay.Yaxis.Title == nil {
			p.Lay.Yaxis.Title = &grob.LayoutYaxisTitle{}
		}

		p.Lay.Yaxis.Title.Text = label
		return p
	}
}

func WithLegend(show bool) Opt {
	return func(p *Plot) *Plot {
		if show {
			p.Lay.Showlegend = grob.True
		} else {
			p.Lay.Showlegend = grob.False
		}

		return p
	}
}

// Save writes the figure as a self-contained HTML artifact.
func (p *Plot) Save(fileName string) error {
	if p.Fig == nil {
		return fmt.Errorf("no figure to save")
	}

	if dir := filepath.Dir(fileName); dir != "." {
		if e := os.MkdirAll(dir, os.ModePerm); e != nil {
			return e
		}
	}

	offline.ToHtml(p.Fig, fileName)

	return nil
}
