/*
 * tables.go, part of gommtf.
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

import "strings"

//A map from the DSSP codes of the secStructList field to their names.
//-1 (not assigned) maps to the empty string.
var secStructName = map[int8]string{
	0: "pi helix",
	1: "bend",
	2: "alpha helix",
	3: "extended",
	4: "3-10 helix",
	5: "bridge",
	6: "turn",
	7: "coil",
}

//The chemCompType values of the chemical component dictionary that
//correspond to peptide monomers.
//Note that just the types seen in actual depositions are present.
var peptideType = map[string]bool{
	"PEPTIDE LINKING":                  true,
	"L-PEPTIDE LINKING":                true,
	"D-PEPTIDE LINKING":                true,
	"PEPTIDE-LIKE":                     true,
	"L-PEPTIDE NH3 AMINO TERMINUS":     true,
	"L-PEPTIDE COOH CARBOXY TERMINUS":  true,
	"D-PEPTIDE NH3 AMINO TERMINUS":     true,
	"D-PEPTIDE COOH CARBOXY TERMINUS":  true,
	"L-GAMMA-PEPTIDE, C-DELTA LINKING": true,
	"D-GAMMA-PEPTIDE, C-DELTA LINKING": true,
	"L-BETA-PEPTIDE, C-GAMMA LINKING":  true,
	"D-BETA-PEPTIDE, C-GAMMA LINKING":  true,
}

//Same for nucleotides.
var nucleotideType = map[string]bool{
	"DNA LINKING":             true,
	"RNA LINKING":             true,
	"L-DNA LINKING":           true,
	"L-RNA LINKING":           true,
	"DNA OH 5 PRIME TERMINUS": true,
	"DNA OH 3 PRIME TERMINUS": true,
	"RNA OH 5 PRIME TERMINUS": true,
	"RNA OH 3 PRIME TERMINUS": true,
}

//Same for saccharides.
var saccharideType = map[string]bool{
	"SACCHARIDE":                  true,
	"L-SACCHARIDE":                true,
	"D-SACCHARIDE":                true,
	"L-SACCHARIDE, ALPHA LINKING": true,
	"L-SACCHARIDE, BETA LINKING":  true,
	"D-SACCHARIDE, ALPHA LINKING": true,
	"D-SACCHARIDE, BETA LINKING":  true,
}

//The group names commonly used for water.
var waterName = map[string]bool{
	"HOH": true,
	"DOD": true,
	"WAT": true,
}

//SecStructName returns the name of the group's DSSP secondary structure
//code ("alpha helix", "bend", ...), or an empty string when the code is
//-1 (not assigned) or unknown.
func (G *Group) SecStructName() string {
	return secStructName[G.SecStruct]
}

//SecStructQ3 reduces the group's DSSP code to the 3-state convention:
//"H" for helices, "E" for extended/bridge, "C" for the rest. Groups
//without an assignment get an empty string.
func (G *Group) SecStructQ3() string {
	switch G.SecStruct {
	case 0, 2, 4:
		return "H"
	case 3, 5:
		return "E"
	case 1, 6, 7:
		return "C"
	}
	return ""
}

//IsPeptide returns whether the group's chemical component type is one
//of the peptide monomer types.
func (G *Group) IsPeptide() bool {
	return peptideType[strings.ToUpper(G.ChemCompType)]
}

//IsNucleotide returns whether the group's chemical component type is
//one of the nucleotide monomer types.
func (G *Group) IsNucleotide() bool {
	return nucleotideType[strings.ToUpper(G.ChemCompType)]
}

//IsSaccharide returns whether the group's chemical component type is
//one of the saccharide types.
func (G *Group) IsSaccharide() bool {
	return saccharideType[strings.ToUpper(G.ChemCompType)]
}

//IsPolymer returns whether the group is a polymer monomer of any of the
//three kinds the format distinguishes.
func (G *Group) IsPolymer() bool {
	return G.IsPeptide() || G.IsNucleotide() || G.IsSaccharide()
}

//IsWater returns whether the group is a water molecule, by name.
func (G *Group) IsWater() bool {
	return waterName[strings.ToUpper(G.Name)]
}

//Sequence returns the one-letter sequence of the polymer groups of the
//chain, in order. Monomers without a proper single letter code appear
//as X. Waters and other non-polymer groups are skipped.
func (C *Chain) Sequence() string {
	var b strings.Builder
	for _, g := range C.Groups {
		if !g.IsPolymer() {
			continue
		}
		if len(g.SingleLetterCode) == 1 && g.SingleLetterCode != "?" {
			b.WriteString(g.SingleLetterCode)
		} else {
			b.WriteByte('X')
		}
	}
	return b.String()
}
