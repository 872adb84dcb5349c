/*
 * container.go, part of gommtf.
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
	"github.com/vmihailenco/msgpack/v5"
)

//The MMTF container is a MessagePack map. The struct tags on Data carry
//the format's key names, so the whole (de)serialization of the outer
//layer reduces to these two functions; keys this library does not know
//are ignored on reading, and optional fields that were never set are
//left out on writing.

//UnmarshalData reads a raw MMTF container into its field table, without
//decoding any of the binary fields.
func UnmarshalData(b []byte) (*Data, error) {
	D := new(Data)
	if err := msgpack.Unmarshal(b, D); err != nil {
		return nil, &CError{kind: BadFile, message: "container: " + err.Error()}
	}
	return D, nil
}

//Marshal serializes the field table back into a raw MMTF container.
func (D *Data) Marshal() ([]byte, error) {
	b, err := msgpack.Marshal(D)
	if err != nil {
		return nil, &CError{kind: BadFile, message: "container: " + err.Error()}
	}
	return b, nil
}
