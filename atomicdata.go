/*
 * atomicdata.go, part of gogeom.
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

//dBlocks contains the atomic-number ranges (both ends included) of the
//d-block (transition metal) elements used to detect metal centers.
var dBlocks = [4][2]int{
	{21, 30},
	{39, 48},
	{57, 79},
	{89, 111},
}

//IsMetal reports whether the atomic number z belongs to the d-block.
func IsMetal(z int) bool {
	for _, b := range dBlocks {
		if z >= b[0] && z <= b[1] {
			return true
		}
	}
	return false
}

//The default metal-ligand bond length (in A) used when nothing more
//specific is known about the pair.
const defaultMLLength = 2.4

//Experimentally typical metal-ligand bond lengths (A), indexed by the
//metal and the donor atom symbols. It can be expanded as needed,
//missing pairs fall back to ligandMLLength and then to defaultMLLength.
var bondLengths = map[[2]string]float64{
	{"Mn", "Cl"}: 2.4,
	{"Fe", "Cl"}: 2.3,
	{"Co", "Cl"}: 2.3,
	{"Ni", "Cl"}: 2.3,
	{"Cu", "Cl"}: 2.3,
	{"Cr", "Cl"}: 2.4,
}

//Fallback metal-ligand bond lengths (A) by the donor atom only.
//Most M-Cl bonds are around 2.3 A, M-O bonds are typically shorter,
//M-S bonds typically longer.
var ligandMLLength = map[string]float64{
	"Cl": 2.3,
	"O":  2.0,
	"N":  2.1,
	"S":  2.5,
}

//A map for assigning atomic numbers to element symbols.
var symbolZ = map[string]int{
	"H": 1, "He": 2, "Li": 3, "Be": 4, "B": 5, "C": 6, "N": 7, "O": 8,
	"F": 9, "Ne": 10, "Na": 11, "Mg": 12, "Al": 13, "Si": 14, "P": 15,
	"S": 16, "Cl": 17, "Ar": 18, "K": 19, "Ca": 20, "Sc": 21, "Ti": 22,
	"V": 23, "Cr": 24, "Mn": 25, "Fe": 26, "Co": 27, "Ni": 28, "Cu": 29,
	"Zn": 30, "Ga": 31, "Ge": 32, "As": 33, "Se": 34, "Br": 35, "Kr": 36,
	"Rb": 37, "Sr": 38, "Y": 39, "Zr": 40, "Nb": 41, "Mo": 42, "Tc": 43,
	"Ru": 44, "Rh": 45, "Pd": 46, "Ag": 47, "Cd": 48, "In": 49, "Sn": 50,
	"Sb": 51, "Te": 52, "I": 53, "Xe": 54, "Cs": 55, "Ba": 56, "La": 57,
	"Ce": 58, "Pr": 59, "Nd": 60, "Pm": 61, "Sm": 62, "Eu": 63, "Gd": 64,
	"Tb": 65, "Dy": 66, "Ho": 67, "Er": 68, "Tm": 69, "Yb": 70, "Lu": 71,
	"Hf": 72, "Ta": 73, "W": 74, "Re": 75, "Os": 76, "Ir": 77, "Pt": 78,
	"Au": 79, "Hg": 80, "Tl": 81, "Pb": 82, "Bi": 83, "Po": 84, "At": 85,
	"Rn": 86, "Fr": 87, "Ra": 88, "Ac": 89, "Th": 90, "Pa": 91, "U": 92,
	"Np": 93, "Pu": 94, "Am": 95, "Cm": 96, "Bk": 97, "Cf": 98, "Es": 99,
	"Fm": 100, "Md": 101, "No": 102, "Lr": 103, "Rf": 104, "Db": 105,
	"Sg": 106, "Bh": 107, "Hs": 108, "Mt": 109, "Ds": 110, "Rg": 111,
	"Cn": 112,
}

//SymbolZ returns the atomic number for an element symbol, or 0 if the
//symbol is not known.
func SymbolZ(symbol string) int {
	return symbolZ[symbol]
}

//A map for assigning mass to elements.
//Note that just common "bio-elements" and first-row transition
//metals are present.
var symbolMass = map[string]float64{
	"H":  1.0,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"Se": 78.96,
	"K":  39.1,
	"Ca": 40.08,
	"Mg": 24.30,
	"Cl": 35.45,
	"Na": 22.99,
	"Sc": 44.96,
	"Ti": 47.87,
	"V":  50.94,
	"Cr": 51.996,
	"Mn": 54.94,
	"Fe": 55.84,
	"Co": 58.93,
	"Ni": 58.69,
	"Cu": 63.55,
	"Zn": 65.38,
	"Si": 28.08,
	"Be": 9.012,
	"F":  18.998,
	"Br": 79.904,
	"I":  126.90,
}

//A map for assigning covalent radii to elements.
//Values from Cordero et al., 2008 (DOI:10.1039/B801115J)
//Note that just common "bio-elements" and first-row transition
//metals are present.
var symbolCovrad = map[string]float64{
	"H":  0.4, // 0.31 in the reference. Since H always has only one bond, a longer radius does no harm, the extra bonds get eliminated later.
	"C":  0.76, //the sp3 radius
	"O":  0.66,
	"N":  0.71,
	"P":  1.07,
	"S":  1.05,
	"Se": 1.2,
	"K":  2.03,
	"Ca": 1.76,
	"Mg": 1.41,
	"Cl": 1.02,
	"Na": 1.66,
	"Sc": 1.7,
	"Ti": 1.6,
	"V":  1.53,
	"Cr": 1.39,
	"Mn": 1.61, //hs
	"Fe": 1.52, //hs
	"Co": 1.5,  //hs
	"Ni": 1.24,
	"Cu": 1.32,
	"Zn": 1.22,
	"Si": 1.11,
	"Be": 0.96,
	"F":  0.57,
	"Br": 1.2,
	"I":  1.39,
}

//A map for checking that atoms don't have too many bonds.
//A value of 0 means undefined, i.e. that this atom shouldn't
//be checked for max bonds.
var symbolMaxBonds = map[string]int{
	"H":  1, //this is the only one truly important.
	"C":  4,
	"O":  2,
	"N":  0, //undefined
	"P":  0,
	"S":  0,
	"Se": 0,
	"Be": 0,
	"F":  1,
	"Br": 1,
	"I":  1,
}
