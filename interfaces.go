/*
 * interfaces.go, part of gogeom.
 *
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
 *
 * gogeom is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package geom

import v3 "github.com/rmera/gogeom/v3"

// Atomer is the basic interface for a topology. The only capabilities
// the geometry generators consume are enumerating atoms in a stable
// order and reading each atom's element data.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i
	//of the Atom slice in the Topology. Should panic if
	//out of range.
	Atom(i int) *Atom

	Len() int
}

// AtomMultiCharger is an Atomer that also gives a charge
// and multiplicity.
type AtomMultiCharger interface {
	Atomer

	//Charge gets the total charge of the topology
	Charge() int

	//Multi returns the multiplicity of the topology
	Multi() int
}

// AtomIndexesFiller is an Atomer that can set the Index field of its
// atoms to their current positions.
type AtomIndexesFiller interface {
	Atomer
	FillIndexes()
}

// Embedder is the external collaborator for the organic-molecule path:
// something that can produce 3D coordinates for a molecular graph, by
// adding explicit hydrogens, embedding a conformer and relaxing it with
// a force field. The returned matrix must have exactly mol.Len() vectors,
// index-aligned with the molecule. Any failure is returned as an error,
// never as a partial coordinate set.
type Embedder interface {
	Embed(mol AtomMultiCharger) (*v3.Matrix, error)
}
