/*
 * structure.go, part of gommtf.
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

//The object graph a decoded MMTF file assembles into, and an encoded one
//flattens from: a Structure holds Models, a Model holds Chains, a Chain
//holds Groups (residues), a Group holds Atoms and its internal Bonds.
//The graph is built once per decode and not modified afterwards by this
//library; coordinates and the other per-atom values are float64 no
//matter the narrower types the wire uses.

//Structure is the root of the graph. It owns everything below it.
type Structure struct {
	ID                  string        `json:"structureId,omitempty"`
	Title               string        `json:"title,omitempty"`
	DepositionDate      string        `json:"depositionDate,omitempty"`
	ReleaseDate         string        `json:"releaseDate,omitempty"`
	SpaceGroup          string        `json:"spaceGroup,omitempty"`
	UnitCell            []float64     `json:"unitCell,omitempty"`
	Resolution          float64       `json:"resolution,omitempty"` //0 when not given (NMR, cryo-EM without one)
	RFree               float64       `json:"rFree,omitempty"`
	RWork               float64       `json:"rWork,omitempty"`
	ExperimentalMethods []string      `json:"experimentalMethods,omitempty"`
	Entities            []Entity      `json:"entities,omitempty"`
	Assemblies          []BioAssembly `json:"assemblies,omitempty"`
	NCSOperators        [][]float32   `json:"ncsOperators,omitempty"`
	Models              []*Model      `json:"models"`
	//Bonds between atoms of different groups (the peptide backbone
	//links, disulfides, coordination bonds). Indices are structure-wide
	//atom indices, in the same order Atoms returns.
	Bonds []Bond `json:"bonds,omitempty"`
}

//Model is one set of coordinates for the whole system. X-ray structures
//have one; NMR ensembles have many, all with the same topology.
type Model struct {
	Chains []*Chain `json:"chains"`
}

//Chain is a macromolecular chain or a grouping of heteroatoms. ID is the
//format's internal identifier; Name, when present, is the author's
//(often what the PDB file showed).
type Chain struct {
	ID     string   `json:"id"`
	Name   string   `json:"name,omitempty"`
	Groups []*Group `json:"groups"`
}

//Group is one residue/monomer occurrence. The definition shared by every
//occurrence of the same monomer (atom names, elements, internal bonds)
//comes from the group type table; the per-occurrence values (sequence
//number, insertion code, secondary structure) live here.
type Group struct {
	Name             string `json:"name"`
	SingleLetterCode string `json:"singleLetterCode,omitempty"`
	ChemCompType     string `json:"chemCompType,omitempty"`
	//ID is the author's sequence number for the group (what PDB calls
	//the residue number).
	ID      int32  `json:"id"`
	InsCode string `json:"insCode,omitempty"`
	//SeqIndex is the 0-based position in the entity sequence, -1 when
	//not given.
	SeqIndex int32 `json:"seqIndex"`
	//SecStruct is the DSSP secondary structure code, -1 when not given.
	//See SecStructName for the meaning of each code.
	SecStruct int8    `json:"secStruct"`
	Atoms     []*Atom `json:"atoms"`
	//Bonds within the group; indices are local to Atoms.
	Bonds []Bond `json:"bonds,omitempty"`
}

//Atom is a single atom occurrence with its decoded values.
type Atom struct {
	ID        int32   `json:"id"`
	Name      string  `json:"name"`
	Element   string  `json:"element"`
	Charge    int32   `json:"charge,omitempty"` //formal charge
	AltLoc    string  `json:"altLoc,omitempty"` //empty when the atom has a single location
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Z         float64 `json:"z"`
	Occupancy float64 `json:"occupancy"`
	BFactor   float64 `json:"bFactor"`
}

//Bond joins two atoms. Order is the bond order, 1 to 4, or -1 when the
//file does not give one.
type Bond struct {
	A     int  `json:"a"`
	B     int  `json:"b"`
	Order int8 `json:"order"`
}

//NModels returns the number of models in the structure.
func (S *Structure) NModels() int {
	return len(S.Models)
}

//NChains returns the total number of chains over all models.
func (S *Structure) NChains() int {
	n := 0
	for _, m := range S.Models {
		n += len(m.Chains)
	}
	return n
}

//NGroups returns the total number of groups over all models.
func (S *Structure) NGroups() int {
	n := 0
	for _, m := range S.Models {
		for _, c := range m.Chains {
			n += len(c.Groups)
		}
	}
	return n
}

//NAtoms returns the total number of atoms over all models.
func (S *Structure) NAtoms() int {
	n := 0
	for _, m := range S.Models {
		for _, c := range m.Chains {
			for _, g := range c.Groups {
				n += len(g.Atoms)
			}
		}
	}
	return n
}

//NBonds returns the total number of bonds: those defined within each
//group occurrence plus those between groups.
func (S *Structure) NBonds() int {
	n := len(S.Bonds)
	for _, m := range S.Models {
		for _, c := range m.Chains {
			for _, g := range c.Groups {
				n += len(g.Bonds)
			}
		}
	}
	return n
}

//Atoms returns every atom of the structure in file order, the order the
//flat per-atom arrays of the format use and the structure-wide bond
//indices refer to.
func (S *Structure) Atoms() []*Atom {
	out := make([]*Atom, 0, S.NAtoms())
	for _, m := range S.Models {
		for _, c := range m.Chains {
			for _, g := range c.Groups {
				out = append(out, g.Atoms...)
			}
		}
	}
	return out
}

//Groups returns every group of the structure in file order.
func (S *Structure) Groups() []*Group {
	out := make([]*Group, 0, S.NGroups())
	for _, m := range S.Models {
		for _, c := range m.Chains {
			out = append(out, c.Groups...)
		}
	}
	return out
}
