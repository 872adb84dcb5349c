/*
 * assemble_test.go, part of gommtf.
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
	"testing"

	"github.com/rmera/gommtf/codec"
)

func mustData(Te *testing.T, S *Structure) *Data {
	D, err := NewData(S)
	if err != nil {
		Te.Fatal(err)
	}
	return D
}

func mustEncode(Te *testing.T, a *codec.Array, id, param int32) []byte {
	f, err := codec.Encode(a, id, param)
	if err != nil {
		Te.Fatal(err)
	}
	return f
}

//TestStructureErrors tampers with a valid container in several ways and
//checks that assembly refuses each one with the right error kind,
//instead of guessing a structure out of disagreeing fields.
func TestStructureErrors(Te *testing.T) {
	//a yCoordList shorter than the declared atom count
	D := mustData(Te, testStructure())
	D.YCoordList = mustEncode(Te, codec.NewFloats([]float64{1}), codec.FloatRaw, 0)
	_, err := D.Structure()
	if !Is(err, StructuralInconsistency) {
		Te.Errorf("a short yCoordList gave %v", err)
	}
	ce, ok := err.(*CError)
	if !ok || ce.Field() != "yCoordList" {
		Te.Errorf("the error does not name the failing field: %v", err)
	}
	if deco := ce.Decorate(""); len(deco) == 0 || deco[0] != "Structure" {
		Te.Errorf("the error does not carry its origin: %v", deco)
	}

	//a group occurrence pointing outside the type table
	D = mustData(Te, testStructure())
	D.GroupTypeList = mustEncode(Te, codec.NewInts([]int32{0, 1, 99}), codec.Int32Raw, 0)
	if _, err = D.Structure(); !Is(err, UnknownGroupType) {
		Te.Errorf("a type index of 99 gave %v", err)
	}

	//a required field missing altogether
	D = mustData(Te, testStructure())
	D.XCoordList = nil
	if _, err = D.Structure(); !Is(err, MissingField) {
		Te.Errorf("a missing xCoordList gave %v", err)
	}

	//a bond count that does not match the bond lists
	D = mustData(Te, testStructure())
	D.NumBonds++
	if _, err = D.Structure(); !Is(err, StructuralInconsistency) {
		Te.Errorf("a lying numBonds gave %v", err)
	}

	//per-chain group counts that do not add up to numGroups
	D = mustData(Te, testStructure())
	D.GroupsPerChain = []int32{1, 1}
	if _, err = D.Structure(); !Is(err, StructuralInconsistency) {
		Te.Errorf("short groupsPerChain counts gave %v", err)
	}
	fmt.Println("inconsistent containers rejected!")
}

//TestEmptyOptionalFields checks that optional arrays present with zero
//elements read exactly like absent ones: the defaults apply, and nothing
//indexes into them.
func TestEmptyOptionalFields(Te *testing.T) {
	D := mustData(Te, testStructure())
	D.BFactorList = mustEncode(Te, codec.NewFloats(nil), codec.FloatRaw, 0)
	D.OccupancyList = mustEncode(Te, codec.NewFloats(nil), codec.FloatRunLength, 100)
	D.AtomIDList = mustEncode(Te, codec.NewInts(nil), codec.IntDeltaRunLength, 0)
	D.AltLocList = mustEncode(Te, codec.NewChars(nil), codec.CharRunLength, 0)
	D.ChainNameList = mustEncode(Te, codec.NewStrings(nil), codec.StringFixed, 4)
	D.SecStructList = mustEncode(Te, codec.NewInt8s(nil), codec.Int8Raw, 0)
	S, err := D.Structure()
	if err != nil {
		Te.Fatal(err)
	}
	at := S.Atoms()[0]
	if at.BFactor != 0 || at.Occupancy != 1 {
		Te.Errorf("the atom defaults were not applied: %+v", at)
	}
	if at.ID != 1 {
		Te.Errorf("atom ids were not synthesized: %d", at.ID)
	}
	if al := S.Atoms()[4].AltLoc; al != "" {
		Te.Errorf("an empty altLocList still gave atom 4 location %q", al)
	}
	if S.Models[0].Chains[0].Name != "" {
		Te.Error("an empty chainNameList still named the chains")
	}
	if g := S.Groups()[0]; g.SecStruct != -1 {
		Te.Errorf("group secondary structure %d, -1 expected", g.SecStruct)
	}
	fmt.Println("empty optional fields read as absent!")
}

//TestBondOrders checks that orders outside 1 to 4 and -1 are rejected in
//both directions.
func TestBondOrders(Te *testing.T) {
	S := testStructure()
	S.Models[0].Chains[0].Groups[0].Bonds[0].Order = 9
	if _, err := NewData(S); !Is(err, StructuralInconsistency) {
		Te.Errorf("flattening a bond of order 9 gave %v", err)
	}

	S = testStructure()
	S.Bonds[0].Order = 5
	if _, err := NewData(S); !Is(err, StructuralInconsistency) {
		Te.Errorf("flattening an inter-group bond of order 5 gave %v", err)
	}

	D := mustData(Te, testStructure())
	D.GroupList[0].BondOrderList[0] = 7
	if _, err := D.Structure(); !Is(err, StructuralInconsistency) {
		Te.Errorf("assembling a group bond of order 7 gave %v", err)
	}

	D = mustData(Te, testStructure())
	D.BondOrderList = mustEncode(Te, codec.NewInt8s([]int8{0}), codec.Int8Raw, 0)
	if _, err := D.Structure(); !Is(err, StructuralInconsistency) {
		Te.Errorf("assembling an inter-group bond of order 0 gave %v", err)
	}
	fmt.Println("bond orders outside the format rejected!")
}

//TestNewDataErrors checks the flattening failures: values the wire
//format can not hold.
func TestNewDataErrors(Te *testing.T) {
	S := testStructure()
	S.Models[0].Chains[0].ID = "TOOLONG"
	if _, err := NewData(S); !Is(err, codec.EncodingOverflow) {
		Te.Errorf("a 7-character chain id gave %v", err)
	}

	S = testStructure()
	S.Atoms()[0].AltLoc = "AB"
	if _, err := NewData(S); !Is(err, codec.EncodingOverflow) {
		Te.Errorf("a 2-character altLoc gave %v", err)
	}

	S = testStructure()
	S.Bonds[0].A = 99
	if _, err := NewData(S); !Is(err, StructuralInconsistency) {
		Te.Errorf("a bond to atom 99 of 7 gave %v", err)
	}
}
