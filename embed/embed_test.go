/*
 * embed_test.go, part of gogeom.
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
 */

package embed

import (
	"fmt"
	"os"
	"strings"
	"testing"

	geom "github.com/rmera/gogeom"
)

//The tests here only exercise the input building, as we can't assume
//the Open Babel executable is installed.

func methanolHeavy() *geom.Topology {
	c := &geom.Atom{Symbol: "C", Z: 6}
	o := &geom.Atom{Symbol: "O", Z: 8}
	b := &geom.Bond{Index: 0, At1: c, At2: o, Order: 1}
	c.Bonds = append(c.Bonds, b)
	o.Bonds = append(o.Bonds, b)
	mol, err := geom.NewTopology([]*geom.Atom{c, o}, 0, 1)
	if err != nil {
		panic(err.Error())
	}
	return mol
}

func TestBuildInput(Te *testing.T) {
	O := NewOBHandle()
	O.SetName("test_methanol")
	mol := methanolHeavy()
	err := O.BuildInput(mol)
	if err != nil {
		Te.Error(err)
	}
	data, err := os.ReadFile("test_methanol.mol")
	if err != nil {
		Te.Error(err)
	}
	in := string(data)
	if !strings.Contains(in, "  2  1  0  0  0  0  0  0  0  0999 V2000") {
		Te.Error("Wrong counts line in the MOL input")
	}
	if !strings.Contains(in, "  1  2  1  0") {
		Te.Error("Missing bond line in the MOL input")
	}
	if !strings.Contains(in, "M  END") {
		Te.Error("Missing terminator in the MOL input")
	}
	fmt.Println("MOL input:\n", in)
	os.Remove("test_methanol.mol")
}

func TestBuildInputEmpty(Te *testing.T) {
	O := NewOBHandle()
	O.SetName("test_empty")
	err := O.BuildInput(nil)
	if err == nil {
		Te.Error("An empty molecule should be rejected")
	}
	fmt.Println("Expected error:", err)
}

func TestDefaults(Te *testing.T) {
	O := NewOBHandle()
	if O.Command() != "obabel" {
		Te.Error("Wrong default command", O.Command())
	}
	O.SetCommand("/opt/openbabel/bin/obabel")
	O.SetForceField("uff")
	if O.Command() != "/opt/openbabel/bin/obabel" || O.forcefield != "uff" {
		Te.Error("Setters did not take effect")
	}
}
