/*
 * embed.go, part of gogeom.
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

//Package embed obtains 3D coordinates for organic molecules from an
//external structure-generation program. In order to use this package you
//need the Open Babel program (the obabel executable must be in your PATH).
//Please cite the Open Babel reference if you use it.
package embed

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	geom "github.com/rmera/gogeom"
	v3 "github.com/rmera/gogeom/v3"
)

//OBHandle runs Open Babel to produce an initial 3D structure followed by
//a force-field cleanup. Right now it is quite limited: only the overall
//topology (elements and bonds) is passed to the program, so formal charges
//on individual atoms are lost, and only singlets are supported.
type OBHandle struct {
	command    string
	inputname  string
	forcefield string
	addH       bool
}

func NewOBHandle() *OBHandle {
	run := new(OBHandle)
	run.SetDefaults()
	return run
}

//OBHandle methods

func (O *OBHandle) Command() string {
	return O.command
}

func (O *OBHandle) SetName(name string) {
	O.inputname = name
}

func (O *OBHandle) SetCommand(name string) {
	O.command = name
}

//SetForceField sets the force field used for the cleanup. Open Babel
//supports, at least, "mmff94", "uff" and "gaff".
func (O *OBHandle) SetForceField(ff string) {
	O.forcefield = ff
}

//SetAddH controls whether Open Babel adds the hydrogens missing from the
//topology before embedding. The added atoms are discarded from the
//returned coordinates, they only improve the generated geometry.
func (O *OBHandle) SetAddH(add bool) {
	O.addH = add
}

func (O *OBHandle) SetDefaults() {
	O.command = os.ExpandEnv("obabel")
	O.forcefield = "mmff94"
	O.addH = true
}

//BuildInput writes a MOL (V2000) file with the molecule's elements and
//bonds, and no coordinates, for Open Babel to embed. Bonds of undetermined
//order are written as single bonds.
func (O *OBHandle) BuildInput(mol geom.AtomMultiCharger) error {
	if O.inputname == "" {
		O.inputname = "gogeom"
	}
	if mol == nil || mol.Len() == 0 {
		return Error{ErrMissingTopology, OB, O.inputname, "", []string{"BuildInput"}, true}
	}
	bonds := geom.Bonds(mol)
	var in strings.Builder
	in.WriteString(O.inputname + "\n  gogeom\n\n")
	fmt.Fprintf(&in, "%3d%3d  0  0  0  0  0  0  0  0999 V2000\n", mol.Len(), len(bonds))
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		if at.Symbol == "" {
			return Error{ErrCantInput, OB, O.inputname, fmt.Sprintf("atom %d has no element symbol", i), []string{"BuildInput"}, true}
		}
		fmt.Fprintf(&in, "%10.4f%10.4f%10.4f %-3s 0  0  0  0  0  0  0  0  0  0  0  0\n", 0.0, 0.0, 0.0, at.Symbol)
	}
	for _, b := range bonds {
		order := int(b.Order)
		if order < 1 {
			order = 1
		}
		fmt.Fprintf(&in, "%3d%3d%3d  0\n", b.At1.Index+1, b.At2.Index+1, order)
	}
	in.WriteString("M  END\n")
	err := os.WriteFile(O.inputname+".mol", []byte(in.String()), 0644)
	if err != nil {
		return Error{ErrCantInput, OB, O.inputname, err.Error(), []string{"os.WriteFile", "BuildInput"}, true}
	}
	return nil
}

//Run runs the command given by the string O.command.
//it waits or not for the result depending on wait.
//Not waiting for results works only for unix-compatible systems,
//as it uses bash and nohup.
func (O *OBHandle) Run(wait bool) (err error) {
	hydrogens := ""
	if O.addH {
		hydrogens = " -h"
	}
	com := fmt.Sprintf(" %s.mol -O %s.xyz%s --gen3d --ff %s > %s.out 2>&1", O.inputname, O.inputname, hydrogens, O.forcefield, O.inputname)
	if wait == true {
		command := exec.Command("sh", "-c", O.command+com)
		err = command.Run()
	} else {
		command := exec.Command("sh", "-c", "nohup "+O.command+com)
		err = command.Start()
	}
	if err != nil {
		return Error{ErrNotRunning, OB, O.inputname, err.Error(), []string{"exec.Run", "Run"}, true}
	}
	return nil
}

//Geometry reads the coordinates produced by a previous run. Open Babel
//appends any hydrogens it adds after the original atoms, so only the first
//mol.Len() positions are returned.
func (O *OBHandle) Geometry(mol geom.Atomer) (*v3.Matrix, error) {
	_, coords, err := geom.XYZFileRead(O.inputname + ".xyz")
	if err != nil {
		return nil, Error{ErrNoGeometry, OB, O.inputname, err.Error(), []string{"geom.XYZFileRead", "Geometry"}, true}
	}
	if coords.NVecs() < mol.Len() {
		return nil, Error{ErrNoGeometry, OB, O.inputname, fmt.Sprintf("only %d coordinates for %d atoms", coords.NVecs(), mol.Len()), []string{"Geometry"}, true}
	}
	if coords.NVecs() == mol.Len() {
		return coords, nil
	}
	ret := v3.Zeros(mol.Len())
	ret.SetMatrix(0, 0, coords.View(0, 0, mol.Len(), 3))
	return ret, nil
}

//Embed builds the input, runs the program and retrieves the resulting
//coordinates. It satisfies geom.Embedder.
func (O *OBHandle) Embed(mol geom.AtomMultiCharger) (*v3.Matrix, error) {
	err := O.BuildInput(mol)
	if err != nil {
		return nil, err
	}
	err = O.Run(true)
	if err != nil {
		return nil, err
	}
	return O.Geometry(mol)
}

const OB = "OpenBabel"

//Errors

//Error messages for the embed package.
const (
	ErrMissingTopology = "embed: Missing or empty topology"
	ErrCantInput       = "embed: Can't build input file"
	ErrNotRunning      = "embed: Couldn't run or finish running the program"
	ErrNoGeometry      = "embed: Couldn't read the geometry"
)

//Error is the error type of the embed package, implementing geom.Error.
type Error struct {
	message   string
	program   string
	inputname string
	extra     string //any additional information
	deco      []string
	critical  bool
}

func (err Error) Error() string {
	return fmt.Sprintf("%s (program: %s, input: %s) %s", err.message, err.program, err.inputname, err.extra)
}

//Decorate adds the dec string to the decoration slice of strings of the error,
//and returns the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or it can be ignored.
func (err Error) Critical() bool { return err.critical }

//InputName returns the name of the input file that caused the error.
func (err Error) InputName() string { return err.inputname }
