/*
 * plot.go, part of gogeom
 *
 * Copyright 2023 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 * gogeom is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
*/

//Package gplot produces diagnostic plots for generated coordination
//shells.
package gplot

import (
	"fmt"
	"math"

	v3 "github.com/rmera/gogeom/v3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const rad2deg = 180 / math.Pi

func basicShellPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Theta"
	p.Y.Label.Text = "Phi"
	//Constant axes
	p.X.Min = 0
	p.X.Max = 180
	p.Y.Min = -180
	p.Y.Max = 180
	p.Add(plotter.NewGrid())
	return p
}

//ShellPlot produces a png plot of the angular distribution of a
//coordination shell: the polar angle against the azimuth for each
//position, in degrees. The azimuth is reduced to [-180,180) only for
//display. The extension must not be included in plotname.
func ShellPlot(shell *v3.Matrix, title, plotname string) error {
	if shell == nil {
		panic("Given nil data")
	}
	p := basicShellPlot(title)
	temp := make(plotter.XYs, 1)
	n := shell.NVecs()
	for key := 0; key < n; key++ {
		v := shell.VecView(key)
		r := v.Norm(2)
		if r == 0 {
			continue //an atom at the origin has no angular position
		}
		theta := math.Acos(v.At(0, 2)/r) * rad2deg
		phi := math.Atan2(v.At(0, 1), v.At(0, 0)) * rad2deg
		temp[0].X = theta
		temp[0].Y = phi
		s, err := plotter.NewScatter(temp)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = plotutil.Color(key)
		p.Add(s)
	}
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(4*vg.Inch, 4*vg.Inch, filename); err != nil {
		return err
	}
	return nil
}

//DistancesPlot produces a png plot of the distance of each position of
//a shell to the given center, against its index. All points should fall
//on a horizontal line for an ideal shell.
func DistancesPlot(shell, center *v3.Matrix, title, plotname string) error {
	if shell == nil || center == nil {
		panic("Given nil data")
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Position"
	p.Y.Label.Text = "Distance (A)"
	p.Add(plotter.NewGrid())
	pts := make(plotter.XYs, shell.NVecs())
	for i := 0; i < shell.NVecs(); i++ {
		pts[i].X = float64(i)
		pts[i].Y = v3.Dist(shell.VecView(i), center)
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = plotutil.Color(0)
	p.Add(s)
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(4*vg.Inch, 4*vg.Inch, filename); err != nil {
		return err
	}
	return nil
}
