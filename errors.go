/*
 * errors.go, part of gommtf.
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

import "fmt"

//Error is the interface for errors that the packages in this library
//implement. The Decorate method allows to add and retrieve info from the
//error without changing its message.
type Error interface {
	Error() string
	Decorate(string) []string
}

//Kinder is implemented by every error in this library: Kind returns one
//of the kind constants of this package or of the codec subpackage, so
//callers can tell failure modes apart without parsing messages.
type Kinder interface {
	Kind() string
}

//The kinds of error raised at the structure level. The codec subpackage
//has its own constants for the field level. All of them are terminal for
//the call that produced them: a caller receiving any of these must
//discard the in-progress result, and none is ever downgraded to a
//warning. In a structural format, guessing is corruption.
const (
	//StructuralInconsistency: a decoded array's length, or a count
	//derived from one, disagrees with the structure-wide counts.
	StructuralInconsistency = "cross-field count mismatch"
	//UnknownGroupType: a group occurrence references a type index
	//outside the group type table.
	UnknownGroupType = "group type index out of range"
	//MissingField: a field the format requires is absent.
	MissingField = "required field missing"
	//BadFile: the bytes are not an MMTF container, or the file can not
	//be opened or decompressed.
	BadFile = "file can not be read as MMTF"
)

//CError is the concrete error type of this package (the "C" is for
//concrete). The field member names the container field involved, when
//there is one.
type CError struct {
	kind    string
	message string
	field   string
	deco    []string
}

func (err *CError) Error() string {
	m := "mmtf: " + err.kind
	if err.field != "" {
		m = fmt.Sprintf("%s (field %s)", m, err.field)
	}
	if err.message != "" {
		m = m + ": " + err.message
	}
	return m
}

//Kind returns the kind constant this error was built with.
func (err *CError) Kind() string { return err.kind }

//Field returns the name of the container field involved in the error, or
//an empty string.
func (err *CError) Field() string { return err.field }

//Decorate adds new information to the error and returns the accumulated
//trace.
func (err *CError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Is reports whether err carries the given kind, from this package or
//from the codec subpackage.
func Is(err error, kind string) bool {
	e, ok := err.(Kinder)
	return ok && e.Kind() == kind
}

//errDecorate adds the caller's name to an error on its way up, when the
//error supports it.
func errDecorate(err error, caller string) error {
	if e, ok := err.(Error); ok {
		e.Decorate(caller)
	}
	return err
}

//wrapField ties a field name to an error coming up from the codec,
//keeping the original kind visible through Kinder.
func wrapField(field string, err error) error {
	kind := BadFile
	if e, ok := err.(Kinder); ok {
		kind = e.Kind()
	}
	return &CError{kind: kind, message: err.Error(), field: field}
}
