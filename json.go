/*
 * json.go, part of gommtf.
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
	"encoding/json"
	"io"
)

//JSON serialization of the object graph, for interchange with
//visualization tools and scripts in other languages. The encoding is
//the Structure graph itself, so WriteJSON followed by ReadJSON gives
//back the same graph, with none of the lossy fixed-point rounding of
//the binary format.

//WriteJSON writes S to w as one JSON document.
func WriteJSON(w io.Writer, S *Structure) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(S); err != nil {
		return &CError{kind: BadFile, message: err.Error(), deco: []string{"WriteJSON"}}
	}
	return nil
}

//ReadJSON reads a structure written by WriteJSON, or by anything else
//producing the same layout.
func ReadJSON(r io.Reader) (*Structure, error) {
	S := new(Structure)
	dec := json.NewDecoder(r)
	if err := dec.Decode(S); err != nil {
		return nil, &CError{kind: BadFile, message: err.Error(), deco: []string{"ReadJSON"}}
	}
	return S, nil
}
