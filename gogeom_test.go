/*
 * gogeom_test.go, part of gogeom.
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

package geom

import (
	"fmt"
	"math"
	"testing"

	v3 "github.com/rmera/gogeom/v3"
)

const tol = 1e-6

//builds a topology from element symbols, neutral singlet.
func molFromSymbols(symbols ...string) *Topology {
	ats := make([]*Atom, len(symbols))
	for i, s := range symbols {
		ats[i] = &Atom{Symbol: s, Z: symbolZ[s], Mass: symbolMass[s], Index: i}
	}
	top, err := NewTopology(ats, 0, 1)
	if err != nil {
		panic(err.Error())
	}
	return top
}

func TestClassify(Te *testing.T) {
	mol := molFromSymbols("Mn", "Cl", "Cl", "Cl", "Cl", "Cl", "Cl")
	c := Classify(mol)
	if !c.Complex {
		Te.Error("MnCl6 should be a coordination complex")
	}
	if len(c.Metals) != 1 || c.Metals[0] != 0 {
		Te.Error("Wrong metal indexes", c.Metals)
	}
	if c.CoordinationNumber() != 6 {
		Te.Error("Wrong coordination number", c.CoordinationNumber())
	}
	water := molFromSymbols("O", "H", "H")
	if Classify(water).Complex {
		Te.Error("Water should not be a coordination complex")
	}
	//A metal with a single non-metal atom carries no directional
	//information, so it is not treated as a complex.
	mono := molFromSymbols("Fe", "O")
	if Classify(mono).Complex {
		Te.Error("FeO should not be classified as a complex")
	}
	fmt.Println("Classification OK", c)
}

func TestBondLength(Te *testing.T) {
	if BondLength("Mn", "Cl") != 2.4 {
		Te.Error("Mn-Cl should be 2.4")
	}
	if BondLength("Fe", "Cl") != 2.3 {
		Te.Error("Fe-Cl should be 2.3")
	}
	//Zn-Cl is not tabulated as a pair, so the Cl default applies
	if BondLength("Zn", "Cl") != 2.3 {
		Te.Error("Zn-Cl should fall back to the Cl default")
	}
	//and a completely unknown pair gets the global default
	if BondLength("Zn", "Br") != 2.4 {
		Te.Error("Zn-Br should fall back to the global default")
	}
	//determinism
	if BondLength("Mn", "Cl") != BondLength("Mn", "Cl") {
		Te.Error("BondLength is not deterministic")
	}
	fmt.Println("Bond lengths OK")
}

//All shell templates must put every position at the requested distance
//from the origin.
func TestShellRadii(Te *testing.T) {
	d := 2.1
	for n, f := range shellTemplates {
		shell := f(d)
		if shell.NVecs() != n {
			Te.Errorf("Template for N=%d returned %d positions", n, shell.NVecs())
		}
		for i := 0; i < shell.NVecs(); i++ {
			r := shell.VecView(i).Norm(2)
			if math.Abs(r-d) > tol {
				Te.Errorf("Position %d of template N=%d at distance %f, want %f", i, n, r, d)
			}
		}
	}
	fmt.Println("All templates at the right radius")
}

func TestOctahedral(Te *testing.T) {
	d := 2.4
	want := [][3]float64{
		{d, 0, 0}, {-d, 0, 0}, {0, d, 0}, {0, -d, 0}, {0, 0, d}, {0, 0, -d},
	}
	shell := OctahedralShell(d)
	for i, w := range want {
		for j := 0; j < 3; j++ {
			if math.Abs(shell.At(i, j)-w[j]) > tol {
				Te.Errorf("Octahedral position %d is %v", i, shell.RawRowView(i))
			}
		}
	}
	//cis angles must be 90 degrees, trans 180
	ang := v3.Angle(shell.VecView(0), shell.VecView(2))
	if math.Abs(ang-math.Pi/2) > tol {
		Te.Errorf("Wrong cis angle %f", ang)
	}
	ang = v3.Angle(shell.VecView(0), shell.VecView(1))
	if math.Abs(ang-math.Pi) > tol {
		Te.Errorf("Wrong trans angle %f", ang)
	}
	fmt.Println("Octahedral shell OK")
}

func TestSphereShell(Te *testing.T) {
	//N=1 is a special case, the golden-angle formula is undefined there
	single := SphereShell(1, 2.0)
	if single.NVecs() != 1 || math.Abs(single.At(0, 0)-2.0) > tol || single.At(0, 1) != 0 || single.At(0, 2) != 0 {
		Te.Error("Wrong N=1 sphere position", single)
	}
	if SphereShell(0, 2.0) != nil {
		Te.Error("N=0 should produce no positions")
	}
	n := 9
	d := 2.4
	shell := SphereShell(n, d)
	if shell.NVecs() != n {
		Te.Errorf("Wrong number of positions %d", shell.NVecs())
	}
	for i := 0; i < n; i++ {
		if math.Abs(shell.VecView(i).Norm(2)-d) > tol {
			Te.Errorf("Sphere position %d not at radius: %f", i, shell.VecView(i).Norm(2))
		}
		for j := i + 1; j < n; j++ {
			if v3.Dist(shell.VecView(i), shell.VecView(j)) < 0.1 {
				Te.Errorf("Sphere positions %d and %d coincide", i, j)
			}
		}
	}
	fmt.Println("Golden-angle sphere OK")
}

//End to end: MnCl6 gets the octahedral template at the Mn-Cl distance.
func TestGenerateOctahedral(Te *testing.T) {
	mol := molFromSymbols("Mn", "Cl", "Cl", "Cl", "Cl", "Cl", "Cl")
	coords, err := GenerateCoords(mol, nil)
	if err != nil {
		Te.Error(err)
	}
	if coords.NVecs() != mol.Len() {
		Te.Errorf("Got %d coordinates for %d atoms", coords.NVecs(), mol.Len())
	}
	if coords.VecView(0).Norm(2) != 0 {
		Te.Error("The metal should sit exactly at the origin")
	}
	want := OctahedralShell(2.4)
	for i := 1; i < mol.Len(); i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(coords.At(i, j)-want.At(i-1, j)) > tol {
				Te.Errorf("Ligand %d at %v, want %v", i, coords.RawRowView(i), want.RawRowView(i-1))
			}
		}
	}
	fmt.Println("MnCl6 end to end OK\n", coords)
}

func TestGenerateLinear(Te *testing.T) {
	mol := molFromSymbols("Fe", "Cl", "Cl")
	coords, err := GenerateCoords(mol, nil)
	if err != nil {
		Te.Error(err)
	}
	d := BondLength("Fe", "Cl")
	if math.Abs(coords.At(1, 0)-d) > tol || math.Abs(coords.At(2, 0)+d) > tol {
		Te.Error("Wrong linear positions\n", coords)
	}
	fmt.Println("Linear complex OK")
}

//With chemically different ligands, each one is placed at the typical
//length for its own element.
func TestGenerateHeterogeneous(Te *testing.T) {
	mol := molFromSymbols("Fe", "Cl", "O")
	coords, err := GenerateCoords(mol, nil)
	if err != nil {
		Te.Error(err)
	}
	if math.Abs(v3.Dist(coords.VecView(0), coords.VecView(1))-2.3) > tol {
		Te.Error("Wrong Fe-Cl distance", coords)
	}
	if math.Abs(v3.Dist(coords.VecView(0), coords.VecView(2))-2.0) > tol {
		Te.Error("Wrong Fe-O distance", coords)
	}
	fmt.Println("Heterogeneous ligands OK")
}

//9 ligands have no named polyhedron, so the sphere fallback is used.
func TestGenerateFallback(Te *testing.T) {
	symbols := []string{"Mn"}
	for i := 0; i < 9; i++ {
		symbols = append(symbols, "Cl")
	}
	mol := molFromSymbols(symbols...)
	coords, err := GenerateCoords(mol, nil)
	if err != nil {
		Te.Error(err)
	}
	for i := 1; i < mol.Len(); i++ {
		if math.Abs(coords.VecView(i).Norm(2)-2.4) > tol {
			Te.Errorf("Fallback ligand %d not on the sphere", i)
		}
		for j := i + 1; j < mol.Len(); j++ {
			if v3.Dist(coords.VecView(i), coords.VecView(j)) < 0.1 {
				Te.Errorf("Fallback ligands %d and %d coincide", i, j)
			}
		}
	}
	fmt.Println("Sphere fallback end to end OK")
}

//The metal goes at the origin even when it is not the first atom.
func TestMetalNotFirst(Te *testing.T) {
	mol := molFromSymbols("Cl", "Cl", "Fe", "Cl", "Cl")
	coords, err := GenerateCoords(mol, nil)
	if err != nil {
		Te.Error(err)
	}
	if coords.VecView(2).Norm(2) != 0 {
		Te.Error("The metal is not at the origin")
	}
	for _, i := range []int{0, 1, 3, 4} {
		if math.Abs(coords.VecView(i).Norm(2)-2.3) > tol {
			Te.Errorf("Ligand %d not at the Fe-Cl distance", i)
		}
	}
	fmt.Println("Off-center metal OK")
}

//a stub collaborator for the organic path.
type fixedEmbedder struct {
	coords *v3.Matrix
	err    error
}

func (f *fixedEmbedder) Embed(mol AtomMultiCharger) (*v3.Matrix, error) {
	return f.coords, f.err
}

func TestOrganicDelegation(Te *testing.T) {
	water := molFromSymbols("O", "H", "H")
	wanted, _ := v3.NewMatrix([]float64{0, 0, 0.12, 0, 0.76, -0.48, 0, -0.76, -0.48})
	coords, err := GenerateCoords(water, &fixedEmbedder{coords: wanted})
	if err != nil {
		Te.Error(err)
	}
	if v3.Dist(coords.VecView(1), wanted.VecView(1)) > tol {
		Te.Error("The embedder's coordinates were not passed through")
	}
	//failures propagate, with no partial coordinates
	_, err = GenerateCoords(water, &fixedEmbedder{err: CError{"embedding failed", nil}})
	if err == nil {
		Te.Error("An embedder failure should propagate")
	}
	fmt.Println("Expected embedding error:", err)
	//a size mismatch from the collaborator is also an error
	short, _ := v3.NewMatrix([]float64{0, 0, 0})
	_, err = GenerateCoords(water, &fixedEmbedder{coords: short})
	if err == nil {
		Te.Error("A wrongly sized embedding should be an error")
	}
	//and with no embedder at all, the organic path must fail cleanly
	_, err = GenerateCoords(water, nil)
	if err == nil {
		Te.Error("Expected an error when no embedder is available")
	}
}

//The decoration trail must survive being passed up through several
//callers.
func TestErrorDecoration(Te *testing.T) {
	var err error = CError{"base failure", nil}
	err = errDecorate(err, "FirstCaller")
	err = errDecorate(err, "SecondCaller")
	deco := err.(Error).Decorate("")
	if len(deco) != 2 || deco[0] != "FirstCaller" || deco[1] != "SecondCaller" {
		Te.Error("Decoration was lost along the way", deco)
	}
	if err.Error() != "base failure" {
		Te.Error("The message changed while decorating", err)
	}
	fmt.Println("Decoration trail:", deco)
}

func TestXYZIO(Te *testing.T) {
	mol, coords, err := XYZFileRead("test/ethanol.xyz")
	if err != nil {
		fmt.Println("There was an error!", err.Error())
		Te.Error(err)
	}
	if mol.Len() != 9 || coords.NVecs() != 9 {
		Te.Error("Wrong number of atoms read", mol.Len())
	}
	if mol.Atom(2).Symbol != "O" || mol.Atom(2).Z != 8 {
		Te.Error("Wrong atom data", mol.Atom(2))
	}
	fmt.Println("XYZ read!")
	err = XYZFileWrite("test/ethanolIO.xyz", coords, mol)
	if err != nil {
		Te.Error(err)
	}
	mol2, coords2, err := XYZFileRead("test/ethanolIO.xyz")
	if err != nil {
		Te.Error(err)
	}
	if mol2.Len() != mol.Len() || v3.Dist(coords.VecView(8), coords2.VecView(8)) > 1e-5 {
		Te.Error("XYZ did not survive a round trip")
	}
}

func TestAssignBonds(Te *testing.T) {
	mol, coords, err := XYZFileRead("test/ethanol.xyz")
	if err != nil {
		Te.Error(err)
	}
	err = AssignBonds(coords, mol)
	if err != nil {
		Te.Error(err)
	}
	all := Bonds(mol)
	if len(all) != 8 {
		Te.Errorf("Ethanol should have 8 bonds, got %d", len(all))
	}
	if len(mol.Atom(0).Bonds) != 4 || len(mol.Atom(1).Bonds) != 4 {
		Te.Error("Each carbon should have 4 bonds")
	}
	if len(mol.Atom(2).Bonds) != 2 {
		Te.Error("The oxygen should have 2 bonds")
	}
	fmt.Println("Ethanol bonds:", len(all))
}
