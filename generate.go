/*
 * generate.go, part of gogeom.
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
	"fmt"

	v3 "github.com/rmera/gogeom/v3"
)

//GenerateCoords produces starting 3D coordinates for mol. If mol is a
//coordination complex per Classify, the coordinates come from the
//idealized polyhedral shells (ComplexCoords), centered on the first
//metal found; no error is possible on that path. Otherwise the job is
//handed to emb, the external embedding/force-field collaborator, and
//its failure, if any, is returned as-is: no retry, and never a partial
//coordinate set. On success the returned matrix has exactly one vector
//per atom of mol, in the same order.
func GenerateCoords(mol AtomMultiCharger, emb Embedder) (*v3.Matrix, error) {
	if mol == nil || mol.Len() == 0 {
		return nil, CError{"geom: nil or empty molecule given", []string{"GenerateCoords"}}
	}
	class := Classify(mol)
	if class.Complex {
		return ComplexCoords(mol, class, class.Metals[0]), nil
	}
	if emb == nil {
		return nil, CError{"geom: molecule requires embedding but no Embedder was given", []string{"GenerateCoords"}}
	}
	coords, err := emb.Embed(mol)
	if err != nil {
		return nil, errDecorate(err, "GenerateCoords")
	}
	if coords == nil || coords.NVecs() != mol.Len() {
		return nil, CError{fmt.Sprintf("geom: embedder returned a wrong number of coordinates for a %d-atom molecule", mol.Len()), []string{"GenerateCoords"}}
	}
	return coords, nil
}

//ComplexCoords builds an idealized geometry for a coordination complex:
//the metal center given by the index center is placed at the origin and
//the ligand atoms of class are placed around it. The shell shape is set
//by the (metal, first-ligand) bond length, but each ligand position is
//then scaled to the typical length for its own element. Coordination
//numbers 2-8 get their named polyhedra; anything else is distributed on
//a sphere with the golden-angle construction. The returned matrix
//always has class.N vectors: atoms with no generated position (extra
//metals, or a zero-ligand complex) stay at the origin placeholder. If
//class is nil it is computed here. The center must be an atom of mol,
//or the function panics; a caller dealing with a multi-metal system can
//pre-partition the molecule and call this once per center.
func ComplexCoords(mol Atomer, class *Classification, center int) *v3.Matrix {
	if mol == nil {
		panic("geom: nil molecule given to ComplexCoords")
	}
	if class == nil {
		class = Classify(mol)
	}
	coords := v3.Zeros(class.N) //the center is at the origin already, as is every placeholder
	n := len(class.Ligands)
	if n == 0 {
		return coords
	}
	metal := mol.Atom(center).Symbol
	ligand := mol.Atom(class.Ligands[0]).Symbol
	d := BondLength(metal, ligand)
	var shell *v3.Matrix
	if f, ok := shellTemplates[n]; ok {
		shell = f(d)
	} else {
		shell = SphereShell(n, d)
	}
	//Each ligand atom gets the shell position matching its rank in the
	//ligand list. The shell always has n positions, but any atom beyond
	//that is left at the origin rather than dropped, to keep the
	//one-vector-per-atom contract.
	nv := shell.NVecs()
	buf := v3.Zeros(1)
	for i, idx := range class.Ligands {
		if i >= nv {
			break
		}
		pos := shell.VecView(i)
		if li := BondLength(metal, mol.Atom(idx).Symbol); li != d {
			buf.Unit(pos)
			buf.Scale(li, buf.Dense)
			pos = buf
		}
		coords.SetVecs(pos, []int{idx})
	}
	return coords
}
