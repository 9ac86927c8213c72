/*
 * v3_test.go, part of gogeom.
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

package v3

import (
	"fmt"
	"math"
	"testing"
)

func TestVecView(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Error(err)
	}
	View := A.VecView(1)
	View.Set(0, 0, 100)
	if A.At(1, 0) != 100 {
		Te.Errorf("View is not reflected in the original matrix: %f", A.At(1, 0))
	}
	fmt.Println("View\n", A, "\n", View)
}

func TestSomeVecs(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Error(err)
	}
	B := Zeros(3)
	cind := []int{1, 3, 5}
	err = B.SomeVecsSafe(A, cind)
	if err != nil {
		Te.Error(err)
	}
	for k, j := range cind {
		if B.At(k, 0) != A.At(j, 0) {
			Te.Errorf("Vector %d not copied correctly", j)
		}
	}
	B.Set(1, 1, 55)
	A.SetVecs(B, cind)
	if A.At(3, 1) != 55 {
		Te.Error("SetVecs did not write the vector back")
	}
	fmt.Println(A, "\n", B)
}

func TestSomeVecsSafeOutOfRange(Te *testing.T) {
	A := Zeros(2)
	B := Zeros(2)
	err := B.SomeVecsSafe(A, []int{0, 5})
	if err == nil {
		Te.Error("Expected an error for an out of range index")
	}
	fmt.Println("Got the expected error:", err)
}

func TestNormDistAngle(Te *testing.T) {
	x, _ := NewMatrix([]float64{2, 0, 0})
	y, _ := NewMatrix([]float64{0, 3, 0})
	if math.Abs(x.Norm(2)-2) > appzero {
		Te.Errorf("Wrong norm %f", x.Norm(2))
	}
	if math.Abs(Dist(x, y)-math.Sqrt(13)) > appzero {
		Te.Errorf("Wrong distance %f", Dist(x, y))
	}
	ang := Angle(x, y)
	if math.Abs(ang-math.Pi/2) > appzero {
		Te.Errorf("Wrong angle %f", ang)
	}
	cross := Zeros(1)
	cross.Cross(x, y)
	if cross.At(0, 2) != 6 {
		Te.Errorf("Wrong cross product %v", cross)
	}
	fmt.Println("norm, dist, angle and cross OK", ang)
}

func TestAddSubVec(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6}
	A, _ := NewMatrix(a)
	row, _ := NewMatrix([]float64{10, 20, 30})
	B := Zeros(2)
	B.AddVec(A, row)
	if B.At(1, 2) != 36 {
		Te.Errorf("AddVec failed: %v", B)
	}
	B.SubVec(B, row)
	if B.At(1, 2) != 6 {
		Te.Errorf("In-place SubVec failed: %v", B)
	}
	//the displacement may even be a view into the receiver itself
	first := B.VecView(0)
	B.SubVec(B, first)
	if B.At(0, 0) != 0 || B.At(1, 2) != 3 {
		Te.Errorf("SubVec with an aliased vector failed: %v", B)
	}
	fmt.Println("Additions", A, "\n", B)
}
