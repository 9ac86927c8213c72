/*
 * templates.go, part of gogeom.
 *
 * Copyright 2023 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 * gogeom is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package geom

import (
	"math"

	v3 "github.com/rmera/gogeom/v3"
)

//The idealized coordination shells. Each function takes a metal-ligand
//bond length d (in A) and returns its number of positions, all at
//distance d from the origin, where the metal sits. They are
//deterministic and (barring a wrong gonum installation) cannot fail.
//Dispatch is by coordination number through shellTemplates; anything
//not in the map goes to the golden-angle sphere fallback.
var shellTemplates = map[int]func(d float64) *v3.Matrix{
	2: LinearShell,
	3: TrigonalPlanarShell,
	4: TetrahedralShell,
	5: TrigonalBipyramidalShell,
	6: OctahedralShell,
	7: PentagonalBipyramidalShell,
	8: CubicShell,
}

//mustNewMatrix wraps v3.NewMatrix for the shell constructors, where the
//data slices are built right here and an error is a programming mistake.
func mustNewMatrix(data []float64) *v3.Matrix {
	M, err := v3.NewMatrix(data)
	if err != nil {
		panic(err.Error())
	}
	return M
}

//LinearShell returns the 2 positions of a linear coordination shell,
//on the +/-x axis.
func LinearShell(d float64) *v3.Matrix {
	return mustNewMatrix([]float64{
		d, 0, 0,
		-d, 0, 0,
	})
}

//TrigonalPlanarShell returns the 3 positions of a trigonal planar
//shell, 120 degrees apart in the xy-plane.
func TrigonalPlanarShell(d float64) *v3.Matrix {
	return mustNewMatrix([]float64{
		d, 0, 0,
		-d / 2, d * math.Sqrt(3) / 2, 0,
		-d / 2, -d * math.Sqrt(3) / 2, 0,
	})
}

//TetrahedralShell returns the 4 positions of a tetrahedral shell
//(Td symmetry): alternating corners of a cube scaled by 1/sqrt(3).
func TetrahedralShell(d float64) *v3.Matrix {
	a := d / math.Sqrt(3)
	return mustNewMatrix([]float64{
		a, a, a,
		a, -a, -a,
		-a, a, -a,
		-a, -a, a,
	})
}

//TrigonalBipyramidalShell returns the 5 positions of a trigonal
//bipyramidal shell: 2 apical on the z axis plus a trigonal girdle.
func TrigonalBipyramidalShell(d float64) *v3.Matrix {
	return mustNewMatrix([]float64{
		0, 0, d,
		0, 0, -d,
		d, 0, 0,
		-d / 2, d * math.Sqrt(3) / 2, 0,
		-d / 2, -d * math.Sqrt(3) / 2, 0,
	})
}

//OctahedralShell returns the 6 positions of a perfect octahedral shell
//(Oh symmetry), on the +/-x, +/-y and +/-z axes.
func OctahedralShell(d float64) *v3.Matrix {
	return mustNewMatrix([]float64{
		d, 0, 0,
		-d, 0, 0,
		0, d, 0,
		0, -d, 0,
		0, 0, d,
		0, 0, -d,
	})
}

//PentagonalBipyramidalShell returns the 7 positions of a pentagonal
//bipyramidal shell: 2 apical on the z axis plus a pentagon in the
//xy-plane, 72 degrees apart.
func PentagonalBipyramidalShell(d float64) *v3.Matrix {
	data := make([]float64, 0, 21)
	data = append(data, 0, 0, d)
	data = append(data, 0, 0, -d)
	for i := 0; i < 5; i++ {
		ang := 2 * math.Pi * float64(i) / 5
		data = append(data, d*math.Cos(ang), d*math.Sin(ang), 0)
	}
	return mustNewMatrix(data)
}

//CubicShell returns the 8 positions of a cubic shell: the corners of a
//cube scaled by 1/sqrt(3) so each corner lies at distance d.
func CubicShell(d float64) *v3.Matrix {
	a := d / math.Sqrt(3)
	return mustNewMatrix([]float64{
		a, a, a,
		a, a, -a,
		a, -a, a,
		a, -a, -a,
		-a, a, a,
		-a, a, -a,
		-a, -a, a,
		-a, -a, -a,
	})
}

//SphereShell distributes n positions approximately evenly on a sphere
//of radius d, with the Fibonacci (golden-angle) construction, for
//coordination numbers with no named polyhedron. The azimuthal angle
//grows by the golden angle on each position and is deliberately not
//reduced modulo 2*pi. n=1 is a special case (the formula is undefined
//there) and returns a single position on the +x axis. n=0 returns an
//empty (nil) matrix.
func SphereShell(n int, d float64) *v3.Matrix {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return mustNewMatrix([]float64{d, 0, 0})
	}
	data := make([]float64, 0, 3*n)
	for i := 0; i < n; i++ {
		theta := math.Acos(1 - 2*float64(i)/float64(n))
		phi := math.Pi * (1 + math.Sqrt(5)) * float64(i)
		data = append(data,
			d*math.Sin(theta)*math.Cos(phi),
			d*math.Sin(theta)*math.Sin(phi),
			d*math.Cos(theta))
	}
	return mustNewMatrix(data)
}

//BondLength returns a typical bond length (in A) between a metal and a
//ligand donor atom, given their symbols. It first tries the exact pair,
//then a default for the donor element, and finally a global default, so
//it always returns something usable.
func BondLength(metal, ligand string) float64 {
	if d, ok := bondLengths[[2]string{metal, ligand}]; ok {
		return d
	}
	if d, ok := ligandMLLength[ligand]; ok {
		return d
	}
	return defaultMLLength
}
