/*
 * xyz.go, part of gogeom.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	v3 "github.com/rmera/gogeom/v3"
)

//XYZFileRead reads an XYZ file. It returns the topology, the coordinates
//and an error or nil. Only the first geometry of a multi-XYZ file is read.
func XYZFileRead(xyzname string) (*Topology, *v3.Matrix, error) {
	xyzfile, err := os.Open(xyzname)
	if err != nil {
		return nil, nil, err
	}
	defer xyzfile.Close()
	top, coords, err := XYZRead(xyzfile)
	if err != nil {
		err = errDecorate(err, "XYZFileRead: "+xyzname)
	}
	return top, coords, err
}

//XYZRead reads an XYZ-formatted geometry from in. It returns the
//topology, the coordinates and an error or nil.
func XYZRead(in io.Reader) (*Topology, *v3.Matrix, error) {
	xyz := bufio.NewReader(in)
	line, err := xyz.ReadString('\n')
	if err != nil {
		return nil, nil, CError{"Ill formatted XYZ: " + err.Error(), []string{"XYZRead"}}
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return nil, nil, CError{"Ill formatted XYZ: Can't read the number of atoms", []string{"XYZRead"}}
	}
	atoms := make([]*Atom, natoms)
	coords := make([]float64, natoms*3)
	_, err = xyz.ReadString('\n') //the title line, we don't care about it
	if err != nil {
		return nil, nil, CError{"Ill formatted XYZ: " + err.Error(), []string{"XYZRead"}}
	}
	errs := make([]error, 3)
	for i := 0; i < natoms; i++ {
		line, errs[0] = xyz.ReadString('\n')
		if errs[0] != nil && !(errs[0] == io.EOF && i == natoms-1 && line != "") {
			break
		}
		errs[0] = nil
		fields := strings.Fields(line)
		if len(fields) < 4 {
			errs[0] = CError{fmt.Sprintf("Line number %d ill formed", i), []string{"XYZRead"}}
			break
		}
		atoms[i] = new(Atom)
		atoms[i].Symbol = fields[0]
		atoms[i].Mass = symbolMass[atoms[i].Symbol]
		atoms[i].Z = symbolZ[atoms[i].Symbol]
		atoms[i].Index = i
		coords[i*3], errs[0] = strconv.ParseFloat(fields[1], 64)
		coords[i*3+1], errs[1] = strconv.ParseFloat(fields[2], 64)
		coords[i*3+2], errs[2] = strconv.ParseFloat(fields[3], 64)
	}
	for _, i := range errs {
		if i != nil {
			return nil, nil, errDecorate(i, "XYZRead")
		}
	}
	mcoords, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, nil, errDecorate(err, "XYZRead")
	}
	top := &Topology{Atoms: atoms}
	return top, mcoords, nil
}

//XYZFileWrite writes the molecule mol and the coordinates coords in an XYZ
//file with name xyzname, which will be created for that. If the file exists
//it will be overwritten.
func XYZFileWrite(xyzname string, coords *v3.Matrix, mol Atomer) error {
	out, err := os.Create(xyzname)
	if err != nil {
		return CError{err.Error(), []string{"XYZFileWrite"}}
	}
	defer out.Close()
	err = XYZWrite(out, coords, mol)
	if err != nil {
		return errDecorate(err, "XYZFileWrite: "+xyzname)
	}
	return nil
}

//XYZWrite writes the molecule mol and the coordinates coords in XYZ format
//to out.
func XYZWrite(out io.Writer, coords *v3.Matrix, mol Atomer) error {
	if mol == nil || coords == nil {
		return CError{"Given nil data", []string{"XYZWrite"}}
	}
	if mol.Len() != coords.NVecs() {
		return CError{fmt.Sprintf("Coordinates for %d atoms given, but the molecule has %d", coords.NVecs(), mol.Len()), []string{"XYZWrite"}}
	}
	_, err := fmt.Fprintf(out, "%-4d\n\n", mol.Len())
	if err != nil {
		return CError{err.Error(), []string{"XYZWrite"}}
	}
	for i := 0; i < mol.Len(); i++ {
		_, err = fmt.Fprintf(out, "%-2s  %12.6f%12.6f%12.6f \n", mol.Atom(i).Symbol, coords.At(i, 0), coords.At(i, 1), coords.At(i, 2))
		if err != nil {
			return CError{err.Error(), []string{"XYZWrite"}}
		}
	}
	return nil
}
