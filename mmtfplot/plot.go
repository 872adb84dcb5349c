/*
 * plot.go, part of gommtf.
 *
 *
 * Copyright 2024 rmeraaatacademicosdotutadotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * gommtf is developed at Universidad de Tarapaca (UTA)
 *
 *
 */

//Package mmtfplot draws simple quality plots from decoded structures:
//per-residue B-factor profiles and B-factor distributions. It is kept
//out of the main package so that programs that do not plot do not pull
//the plotting libraries in.
package mmtfplot

import (
	"fmt"

	mmtf "github.com/rmera/gommtf"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

//BFactorPlot draws the per-group mean B-factor profile of the first
//model of S as a line over the group numbers, and saves it as
//plotname.png. When chain is not empty only that chain (by ID) is
//considered. Returns an error or nil.
func BFactorPlot(S *mmtf.Structure, chain, title, plotname string) error {
	if S == nil || len(S.Models) == 0 {
		return &Error{message: NoData, deco: []string{"BFactorPlot"}}
	}
	pts := make(plotter.XYs, 0, 128)
	for _, c := range S.Models[0].Chains {
		if chain != "" && c.ID != chain {
			continue
		}
		for _, g := range c.Groups {
			if len(g.Atoms) == 0 {
				continue
			}
			mean := 0.0
			for _, a := range g.Atoms {
				mean += a.BFactor
			}
			mean /= float64(len(g.Atoms))
			pts = append(pts, plotter.XY{X: float64(g.ID), Y: mean})
		}
	}
	if len(pts) == 0 {
		return &Error{message: NoData, deco: []string{"BFactorPlot"}}
	}
	p := basicPlot(title, "Residue", "B-factor")
	l, err := plotter.NewLine(pts)
	if err != nil {
		return &Error{message: err.Error(), deco: []string{"BFactorPlot"}}
	}
	p.Add(l)
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(4*vg.Inch, 4*vg.Inch, filename); err != nil {
		return &Error{message: err.Error(), deco: []string{"BFactorPlot"}}
	}
	return nil
}

//BFactorHisto draws the distribution of the per-atom B-factors of the
//first model of S as a histogram with the given number of bins, and
//saves it as plotname.png. Returns an error or nil.
func BFactorHisto(S *mmtf.Structure, bins int, title, plotname string) error {
	if S == nil || len(S.Models) == 0 {
		return &Error{message: NoData, deco: []string{"BFactorHisto"}}
	}
	vals := make(plotter.Values, 0, 1024)
	for _, c := range S.Models[0].Chains {
		for _, g := range c.Groups {
			for _, a := range g.Atoms {
				vals = append(vals, a.BFactor)
			}
		}
	}
	if len(vals) == 0 {
		return &Error{message: NoData, deco: []string{"BFactorHisto"}}
	}
	if bins <= 0 {
		bins = 16
	}
	p := basicPlot(title, "B-factor", "Atoms")
	h, err := plotter.NewHist(vals, bins)
	if err != nil {
		return &Error{message: err.Error(), deco: []string{"BFactorHisto"}}
	}
	p.Add(h)
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(4*vg.Inch, 4*vg.Inch, filename); err != nil {
		return &Error{message: err.Error(), deco: []string{"BFactorHisto"}}
	}
	return nil
}

//Errors

//The reasons a plot can fail, other than the plotting library itself
//failing.
const (
	NoData = "nothing to plot"
)

//Error is the error type of the package. It implements mmtf.Error.
type Error struct {
	message string
	deco    []string
}

func (err *Error) Error() string {
	return "mmtf plot: " + err.message
}

//Decorate adds new information to the error and returns the accumulated
//trace.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}
