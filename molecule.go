/*
 * molecule.go, part of gogeom.
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

import "fmt"

//Atom contains the per-atom information of a molecule, except for the
//coordinates, which are kept in a separate v3.Matrix.
type Atom struct {
	Name   string //PDB-like name, if any
	Id     int    //The PDB-like Id, normally 1-based
	Index  int    //The position of the atom in its Topology, 0-based
	Z      int    //Atomic number
	Symbol string
	Mass   float64
	Bonds  []*Bond
}

//Copy returns a copy of the Atom object. The bond slice is shared,
//not copied, as bonds reference other atoms.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("geom: Attempted to copy a nil atom")
	}
	Newat := new(Atom)
	Newat.Name = A.Name
	Newat.Id = A.Id
	Newat.Index = A.Index
	Newat.Z = A.Z
	Newat.Symbol = A.Symbol
	Newat.Mass = A.Mass
	Newat.Bonds = A.Bonds
	return Newat
}

//Topology contains the information about a molecule which is not expected
//to change in time, i.e. everything except for the coordinates.
type Topology struct {
	Atoms    []*Atom
	charge   int
	multi    int
}

//NewTopology returns a topology with ats atoms, charge charge and
//multiplicity multi. It returns an error if ats is nil or empty.
//It doesn't check charge or multiplicity for chemical consistency.
func NewTopology(ats []*Atom, charge, multi int) (*Topology, error) {
	if len(ats) == 0 {
		return nil, CError{"geom: Attempted to make a topology with no atoms", []string{"NewTopology"}}
	}
	top := new(Topology)
	top.Atoms = ats
	top.charge = charge
	top.multi = multi
	top.FillIndexes()
	return top, nil
}

//Charge returns the total charge of the topology.
func (T *Topology) Charge() int {
	return T.charge
}

//Multi returns the multiplicity of the topology.
func (T *Topology) Multi() int {
	return T.multi
}

//SetCharge sets the total charge of the topology to i.
func (T *Topology) SetCharge(i int) {
	T.charge = i
}

//SetMulti sets the multiplicity of the topology to i.
func (T *Topology) SetMulti(i int) {
	T.multi = i
}

//Atom returns the Atom corresponding to the index i of the Atom slice
//in the Topology. Panics if out of range.
func (T *Topology) Atom(i int) *Atom {
	if i >= T.Len() {
		panic("geom: Requested Atom out of bounds")
	}
	return T.Atoms[i]
}

//SetAtom sets the (i+1)th Atom of the topology to at.
//Panics if out of range.
func (T *Topology) SetAtom(i int, at *Atom) {
	if i >= T.Len() {
		panic("geom: Tried to set Atom out of bounds")
	}
	T.Atoms[i] = at
}

//AddAtom appends an atom at the end of the topology.
func (T *Topology) AddAtom(at *Atom) {
	at.Index = len(T.Atoms)
	T.Atoms = append(T.Atoms, at)
}

//SomeAtoms returns a new Topology with the atoms in the positions given
//by atomlist, in that order. Changes to those atoms affect the original
//topology. The charge and multiplicity are just those of the parent and
//are not guaranteed to be correct for the selection.
func (T *Topology) SomeAtoms(atomlist []int) (*Topology, error) {
	var ret []*Atom
	lenatoms := T.Len()
	for k, j := range atomlist {
		if j > lenatoms-1 {
			return nil, CError{fmt.Sprintf("Atom requested (Number: %d, value: %d) out of range", k, j), []string{"SomeAtoms"}}
		}
		ret = append(ret, T.Atoms[j])
	}
	fin := &Topology{Atoms: ret, charge: T.charge, multi: T.multi}
	return fin, nil
}

//Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.Atoms)
}

//FillIndexes sets the Index field of each atom to its current position
//in the topology.
func (T *Topology) FillIndexes() {
	for key := range T.Atoms {
		T.Atoms[key].Index = key
	}
}

//FillZ assigns the atomic number of each atom from its symbol, for
//atoms which don't have one set. Unknown symbols are left at 0.
func (T *Topology) FillZ() {
	for _, at := range T.Atoms {
		if at.Z == 0 {
			at.Z = symbolZ[at.Symbol]
		}
	}
}

//Masses returns a slice with the masses of all atoms, and an error if
//any of them has not been assigned.
func (T *Topology) Masses() ([]float64, error) {
	mass := make([]float64, T.Len())
	for i := 0; i < T.Len(); i++ {
		at := T.Atom(i)
		if at.Mass == 0 {
			return nil, CError{fmt.Sprintf("Not all the masses have been obtained: %d %v", i, at), []string{"Masses"}}
		}
		mass[i] = at.Mass
	}
	return mass, nil
}
