/*
 * classify.go, part of gogeom.
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

//Classification is the result of partitioning a molecule into metal
//centers and ligand atoms. It is a throwaway value, created fresh for
//each molecule.
type Classification struct {
	//Complex is true if the molecule is taken to be a coordination
	//complex: at least one metal center and at least two other atoms.
	Complex bool
	//Metals contains the indexes of the d-block atoms, in molecule order.
	Metals []int
	//Ligands contains the indexes of all non-d-block atoms, in molecule order.
	Ligands []int
	//N is the total number of atoms in the molecule.
	N int
}

//CoordinationNumber returns the number of ligand atoms around the
//(single) metal center.
func (C *Classification) CoordinationNumber() int {
	return len(C.Ligands)
}

//Classify inspects the atoms of mol and partitions them into metal
//centers and ligand atoms. An atom is a metal if its atomic number
//falls in one of the d-block ranges. A molecule is a coordination
//complex if it has at least one metal and at least two other atoms:
//with fewer than 2 ligand atoms no directional chemistry can be
//inferred, so such molecules are deliberately routed to the organic
//path. Classify is a pure function of mol and never fails, though it
//panics on a nil or empty molecule, as there is nothing sane to return
//for one.
func Classify(mol Atomer) *Classification {
	if mol == nil || mol.Len() == 0 {
		panic("geom: Attempted to classify a nil or empty molecule")
	}
	C := new(Classification)
	C.N = mol.Len()
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		z := at.Z
		if z == 0 {
			z = symbolZ[at.Symbol]
		}
		if IsMetal(z) {
			C.Metals = append(C.Metals, i)
		} else {
			C.Ligands = append(C.Ligands, i)
		}
	}
	C.Complex = len(C.Metals) >= 1 && len(C.Ligands) >= 2
	return C
}
