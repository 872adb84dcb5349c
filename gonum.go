/*
 * gonum.go, part of gommtf.
 *
 *
 * Copyright 2024 rmeraaatacademicosdotutadotcl
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
 * gommtf is developed at Universidad de Tarapaca (UTA)
 *
 *
 */

package mmtf

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//CoordsDense returns the coordinates of every atom of S as an N x 3
//gonum matrix, one row per atom, in file order. The matrix is a copy;
//use SetCoordsDense to push modified coordinates back.
func (S *Structure) CoordsDense() *mat.Dense {
	atoms := S.Atoms()
	if len(atoms) == 0 {
		return &mat.Dense{}
	}
	m := mat.NewDense(len(atoms), 3, nil)
	for i, at := range atoms {
		m.Set(i, 0, at.X)
		m.Set(i, 1, at.Y)
		m.Set(i, 2, at.Z)
	}
	return m
}

//SetCoordsDense replaces the coordinates of every atom of S with the
//rows of m, which must be N x 3 with one row per atom, in the order
//Atoms returns. The other atom values are untouched.
func (S *Structure) SetCoordsDense(m mat.Matrix) error {
	atoms := S.Atoms()
	r, c := m.Dims()
	if c != 3 || r != len(atoms) {
		return &CError{kind: StructuralInconsistency, message: fmt.Sprintf("a %dx%d matrix for %d atoms, one row per atom and 3 columns needed", r, c, len(atoms)), deco: []string{"SetCoordsDense"}}
	}
	for i, at := range atoms {
		at.X = m.At(i, 0)
		at.Y = m.At(i, 1)
		at.Z = m.At(i, 2)
	}
	return nil
}
