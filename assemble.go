/*
 * assemble.go, part of gommtf.
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
	"strings"

	"github.com/rmera/gommtf/codec"
)

//Assembly walks the decoded parallel arrays in lock step, guided by the
//per-level counts (chains per model, groups per chain, atoms per group
//type), and builds the object graph. Every disagreement between an array
//length and the declared counts kills the whole decode; a structural
//format that guesses produces corrupt science quietly, which is worse
//than failing.

//decode helpers, one per element kind the assembler consumes. Both a
//nil field and a present field with zero elements come back as a nil
//slice: an empty array carries no information, so it gets the same
//treatment as an absent one. Required fields are checked against their
//counts before use.

func decodeFloats(name string, field []byte) ([]float64, error) {
	if field == nil {
		return nil, nil
	}
	a, err := codec.Decode(field)
	if err != nil {
		return nil, wrapField(name, err)
	}
	if a.Kind() != codec.KindFloat {
		return nil, &CError{kind: StructuralInconsistency, field: name, message: fmt.Sprintf("decodes to %v, expected float64", a.Kind())}
	}
	if a.Len() == 0 {
		return nil, nil
	}
	return a.Floats(), nil
}

func decodeInts(name string, field []byte) ([]int32, error) {
	if field == nil {
		return nil, nil
	}
	a, err := codec.Decode(field)
	if err != nil {
		return nil, wrapField(name, err)
	}
	if a.Kind() != codec.KindInt {
		return nil, &CError{kind: StructuralInconsistency, field: name, message: fmt.Sprintf("decodes to %v, expected int32", a.Kind())}
	}
	if a.Len() == 0 {
		return nil, nil
	}
	return a.Ints(), nil
}

func decodeInt8s(name string, field []byte) ([]int8, error) {
	if field == nil {
		return nil, nil
	}
	a, err := codec.Decode(field)
	if err != nil {
		return nil, wrapField(name, err)
	}
	if a.Kind() != codec.KindInt8 {
		return nil, &CError{kind: StructuralInconsistency, field: name, message: fmt.Sprintf("decodes to %v, expected int8", a.Kind())}
	}
	if a.Len() == 0 {
		return nil, nil
	}
	return a.Int8s(), nil
}

func decodeChars(name string, field []byte) ([]byte, error) {
	if field == nil {
		return nil, nil
	}
	a, err := codec.Decode(field)
	if err != nil {
		return nil, wrapField(name, err)
	}
	if a.Kind() != codec.KindChar {
		return nil, &CError{kind: StructuralInconsistency, field: name, message: fmt.Sprintf("decodes to %v, expected characters", a.Kind())}
	}
	if a.Len() == 0 {
		return nil, nil
	}
	return a.Chars(), nil
}

func decodeStrings(name string, field []byte) ([]string, error) {
	if field == nil {
		return nil, nil
	}
	a, err := codec.Decode(field)
	if err != nil {
		return nil, wrapField(name, err)
	}
	if a.Kind() != codec.KindString {
		return nil, &CError{kind: StructuralInconsistency, field: name, message: fmt.Sprintf("decodes to %v, expected strings", a.Kind())}
	}
	if a.Len() == 0 {
		return nil, nil
	}
	return a.Strings(), nil
}

//checkLen verifies one parallel array against the count its level
//declares. Absent optional arrays pass.
func checkLen(name string, got, want int, optional bool) error {
	if optional && got == 0 {
		return nil
	}
	if got != want {
		return &CError{kind: StructuralInconsistency, field: name, message: fmt.Sprintf("%d elements, %d declared", got, want)}
	}
	return nil
}

func f32(p *float32) float64 {
	if p == nil {
		return 0
	}
	return float64(*p)
}

func f32ptr(v float64) *float32 {
	if v == 0 {
		return nil
	}
	f := float32(v)
	return &f
}

//Structure decodes every encoded field of the container and assembles
//the object graph, enforcing the cross-field invariants of the format:
//all per-atom arrays as long as the declared atom count, all per-group
//and per-chain arrays likewise, every group type index inside the table,
//every bond index inside the structure. The graph owns none of the Data
//buffers and can outlive them.
func (D *Data) Structure() (*Structure, error) {
	for _, req := range []struct {
		name  string
		field []byte
	}{
		{"xCoordList", D.XCoordList},
		{"yCoordList", D.YCoordList},
		{"zCoordList", D.ZCoordList},
		{"groupIdList", D.GroupIDList},
		{"groupTypeList", D.GroupTypeList},
		{"chainIdList", D.ChainIDList},
	} {
		if req.field == nil {
			return nil, &CError{kind: MissingField, field: req.name}
		}
	}
	if D.GroupList == nil && D.NumGroups > 0 {
		return nil, &CError{kind: MissingField, field: "groupList"}
	}
	natoms := int(D.NumAtoms)
	ngroups := int(D.NumGroups)
	nchains := int(D.NumChains)
	nmodels := int(D.NumModels)
	if natoms < 0 || ngroups < 0 || nchains < 0 || nmodels < 0 {
		return nil, &CError{kind: StructuralInconsistency, field: "numAtoms", message: "negative counts"}
	}

	xs, err := decodeFloats("xCoordList", D.XCoordList)
	if err != nil {
		return nil, errDecorate(err, "Structure")
	}
	ys, err := decodeFloats("yCoordList", D.YCoordList)
	if err != nil {
		return nil, errDecorate(err, "Structure")
	}
	zs, err := decodeFloats("zCoordList", D.ZCoordList)
	if err != nil {
		return nil, errDecorate(err, "Structure")
	}
	bfactors, err := decodeFloats("bFactorList", D.BFactorList)
	if err != nil {
		return nil, errDecorate(err, "Structure")
	}
	occupancies, err := decodeFloats("occupancyList", D.OccupancyList)
	if err != nil {
		return nil, errDecorate(err, "Structure")
	}
	atomIDs, err := decodeInts("atomIdList", D.AtomIDList)
	if err != nil {
		return nil, errDecorate(err, "Structure")
	}
	altLocs, err := decodeChars("altLocList", D.AltLocList)
	if err != nil {
		return nil, errDecorate(err, "Structure")
	}
	groupIDs, err := decodeInts("groupIdList", D.GroupIDList)
	if err != nil {
		return nil, errDecorate(err, "Structure")
	}
	groupTypes, err := decodeInts("groupTypeList", D.GroupTypeList)
	if err != nil {
		return nil, errDecorate(err, "Structure")
	}
	secStructs, err := decodeInt8s("secStructList", D.SecStructList)
	if err != nil {
		return nil, errDecorate(err, "Structure")
	}
	insCodes, err := decodeChars("insCodeList", D.InsCodeList)
	if err != nil {
		return nil, errDecorate(err, "Structure")
	}
	seqIndices, err := decodeInts("sequenceIndexList", D.SequenceIndexList)
	if err != nil {
		return nil, errDecorate(err, "Structure")
	}
	chainIDs, err := decodeStrings("chainIdList", D.ChainIDList)
	if err != nil {
		return nil, errDecorate(err, "Structure")
	}
	chainNames, err := decodeStrings("chainNameList", D.ChainNameList)
	if err != nil {
		return nil, errDecorate(err, "Structure")
	}
	interAtoms, err := decodeInts("bondAtomList", D.BondAtomList)
	if err != nil {
		return nil, errDecorate(err, "Structure")
	}
	interOrders, err := decodeInt8s("bondOrderList", D.BondOrderList)
	if err != nil {
		return nil, errDecorate(err, "Structure")
	}

	//the lock-step invariants
	for _, chk := range []struct {
		name     string
		got      int
		want     int
		optional bool
	}{
		{"xCoordList", len(xs), natoms, false},
		{"yCoordList", len(ys), natoms, false},
		{"zCoordList", len(zs), natoms, false},
		{"bFactorList", len(bfactors), natoms, true},
		{"occupancyList", len(occupancies), natoms, true},
		{"atomIdList", len(atomIDs), natoms, true},
		{"altLocList", len(altLocs), natoms, true},
		{"groupIdList", len(groupIDs), ngroups, false},
		{"groupTypeList", len(groupTypes), ngroups, false},
		{"secStructList", len(secStructs), ngroups, true},
		{"insCodeList", len(insCodes), ngroups, true},
		{"sequenceIndexList", len(seqIndices), ngroups, true},
		{"chainIdList", len(chainIDs), nchains, false},
		{"chainNameList", len(chainNames), nchains, true},
		{"groupsPerChain", len(D.GroupsPerChain), nchains, false},
		{"chainsPerModel", len(D.ChainsPerModel), nmodels, false},
	} {
		if err := checkLen(chk.name, chk.got, chk.want, chk.optional); err != nil {
			return nil, errDecorate(err, "Structure")
		}
	}
	var sum int
	for _, n := range D.ChainsPerModel {
		if n < 0 {
			return nil, &CError{kind: StructuralInconsistency, field: "chainsPerModel", message: fmt.Sprintf("negative count %d", n)}
		}
		sum += int(n)
	}
	if sum != nchains {
		return nil, &CError{kind: StructuralInconsistency, field: "chainsPerModel", message: fmt.Sprintf("adds up to %d chains, %d declared", sum, nchains)}
	}
	sum = 0
	for _, n := range D.GroupsPerChain {
		if n < 0 {
			return nil, &CError{kind: StructuralInconsistency, field: "groupsPerChain", message: fmt.Sprintf("negative count %d", n)}
		}
		sum += int(n)
	}
	if sum != ngroups {
		return nil, &CError{kind: StructuralInconsistency, field: "groupsPerChain", message: fmt.Sprintf("adds up to %d groups, %d declared", sum, ngroups)}
	}

	S := &Structure{
		ID:                  D.StructureID,
		Title:               D.Title,
		DepositionDate:      D.DepositionDate,
		ReleaseDate:         D.ReleaseDate,
		SpaceGroup:          D.SpaceGroup,
		Resolution:          f32(D.Resolution),
		RFree:               f32(D.RFree),
		RWork:               f32(D.RWork),
		ExperimentalMethods: D.ExperimentalMethods,
		Entities:            D.EntityList,
		Assemblies:          D.BioAssemblyList,
		NCSOperators:        D.NCSOperatorList,
	}
	if D.UnitCell != nil {
		S.UnitCell = make([]float64, len(D.UnitCell))
		for i, v := range D.UnitCell {
			S.UnitCell[i] = float64(v)
		}
	}

	ai, gi, ci := 0, 0, 0
	for m := 0; m < nmodels; m++ {
		model := &Model{Chains: make([]*Chain, 0, D.ChainsPerModel[m])}
		for c := int32(0); c < D.ChainsPerModel[m]; c++ {
			chain := &Chain{ID: chainIDs[ci]}
			if chainNames != nil {
				chain.Name = chainNames[ci]
			}
			for g := int32(0); g < D.GroupsPerChain[ci]; g++ {
				t := groupTypes[gi]
				if t < 0 || int(t) >= len(D.GroupList) {
					return nil, &CError{kind: UnknownGroupType, field: "groupTypeList", message: fmt.Sprintf("group %d references type %d, table has %d", gi, t, len(D.GroupList))}
				}
				gt := &D.GroupList[t]
				group := &Group{
					Name:             gt.GroupName,
					SingleLetterCode: gt.SingleLetterCode,
					ChemCompType:     gt.ChemCompType,
					ID:               groupIDs[gi],
					SeqIndex:         -1,
					SecStruct:        -1,
				}
				if insCodes != nil && insCodes[gi] != 0 {
					group.InsCode = string(insCodes[gi])
				}
				if seqIndices != nil {
					group.SeqIndex = seqIndices[gi]
				}
				if secStructs != nil {
					group.SecStruct = secStructs[gi]
				}
				na := len(gt.AtomNameList)
				if len(gt.ElementList) != na || len(gt.FormalChargeList) != na {
					return nil, &CError{kind: StructuralInconsistency, field: "groupList", message: fmt.Sprintf("type %d: atom name, element and charge lists disagree", t)}
				}
				if ai+na > natoms {
					return nil, &CError{kind: StructuralInconsistency, field: "numAtoms", message: "the group types imply more atoms than declared"}
				}
				group.Atoms = make([]*Atom, 0, na)
				for k := 0; k < na; k++ {
					atom := &Atom{
						Name:      gt.AtomNameList[k],
						Element:   gt.ElementList[k],
						Charge:    gt.FormalChargeList[k],
						X:         xs[ai],
						Y:         ys[ai],
						Z:         zs[ai],
						Occupancy: 1,
						ID:        int32(ai) + 1,
					}
					if bfactors != nil {
						atom.BFactor = bfactors[ai]
					}
					if occupancies != nil {
						atom.Occupancy = occupancies[ai]
					}
					if atomIDs != nil {
						atom.ID = atomIDs[ai]
					}
					if altLocs != nil && altLocs[ai] != 0 {
						atom.AltLoc = string(altLocs[ai])
					}
					group.Atoms = append(group.Atoms, atom)
					ai++
				}
				if len(gt.BondAtomList)%2 != 0 {
					return nil, &CError{kind: StructuralInconsistency, field: "groupList", message: fmt.Sprintf("type %d: odd bond atom list", t)}
				}
				nb := len(gt.BondAtomList) / 2
				if len(gt.BondOrderList) != nb && len(gt.BondOrderList) != 0 {
					return nil, &CError{kind: StructuralInconsistency, field: "groupList", message: fmt.Sprintf("type %d: %d bond orders for %d bonds", t, len(gt.BondOrderList), nb)}
				}
				for b := 0; b < nb; b++ {
					a1, a2 := gt.BondAtomList[2*b], gt.BondAtomList[2*b+1]
					if a1 < 0 || int(a1) >= na || a2 < 0 || int(a2) >= na {
						return nil, &CError{kind: StructuralInconsistency, field: "groupList", message: fmt.Sprintf("type %d: bond atom index out of range", t)}
					}
					order := int8(-1)
					if len(gt.BondOrderList) > 0 {
						o := gt.BondOrderList[b]
						if o != -1 && (o < 1 || o > 4) {
							return nil, &CError{kind: StructuralInconsistency, field: "groupList", message: fmt.Sprintf("type %d: bond order %d, the format allows 1 to 4 or -1", t, o)}
						}
						order = int8(o)
					}
					group.Bonds = append(group.Bonds, Bond{A: int(a1), B: int(a2), Order: order})
				}
				chain.Groups = append(chain.Groups, group)
				gi++
			}
			model.Chains = append(model.Chains, chain)
			ci++
		}
		S.Models = append(S.Models, model)
	}
	if ai != natoms {
		return nil, &CError{kind: StructuralInconsistency, field: "numAtoms", message: fmt.Sprintf("the group types imply %d atoms, %d declared", ai, natoms)}
	}

	if interAtoms != nil {
		if len(interAtoms)%2 != 0 {
			return nil, &CError{kind: StructuralInconsistency, field: "bondAtomList", message: "odd number of atom indices"}
		}
		nb := len(interAtoms) / 2
		if interOrders != nil && len(interOrders) != nb {
			return nil, &CError{kind: StructuralInconsistency, field: "bondOrderList", message: fmt.Sprintf("%d orders for %d bonds", len(interOrders), nb)}
		}
		S.Bonds = make([]Bond, 0, nb)
		for b := 0; b < nb; b++ {
			a1, a2 := interAtoms[2*b], interAtoms[2*b+1]
			if a1 < 0 || int(a1) >= natoms || a2 < 0 || int(a2) >= natoms {
				return nil, &CError{kind: StructuralInconsistency, field: "bondAtomList", message: fmt.Sprintf("bond %d joins atoms %d and %d, structure has %d", b, a1, a2, natoms)}
			}
			order := int8(-1)
			if interOrders != nil {
				order = interOrders[b]
				if order != -1 && (order < 1 || order > 4) {
					return nil, &CError{kind: StructuralInconsistency, field: "bondOrderList", message: fmt.Sprintf("bond %d has order %d, the format allows 1 to 4 or -1", b, order)}
				}
			}
			S.Bonds = append(S.Bonds, Bond{A: int(a1), B: int(a2), Order: order})
		}
	}
	if int(D.NumBonds) != S.NBonds() {
		return nil, &CError{kind: StructuralInconsistency, field: "numBonds", message: fmt.Sprintf("%d declared, %d found in group types and bond lists", D.NumBonds, S.NBonds())}
	}
	return S, nil
}

//Options collects the tunable parts of encoding a structure. The zero
//value is not usable; start from DefaultOptions.
type Options struct {
	coordDivisor     int32
	bFactorDivisor   int32
	occupancyDivisor int32
	producer         string
	level            int
}

//DefaultOptions returns the divisors in universal use by MMTF writers:
//coordinates kept to a thousandth of an Angstrom, B-factors and
//occupancies to a hundredth.
func DefaultOptions() *Options {
	O := new(Options)
	O.coordDivisor = 1000
	O.bFactorDivisor = 100
	O.occupancyDivisor = 100
	O.producer = "gommtf"
	O.level = 6
	return O
}

//CoordDivisor returns the fixed-point divisor used for coordinates, and
//sets it first if given a positive value.
func (O *Options) CoordDivisor(d ...int32) int32 {
	if len(d) > 0 && d[0] > 0 {
		O.coordDivisor = d[0]
	}
	return O.coordDivisor
}

//BFactorDivisor returns the fixed-point divisor used for B-factors, and
//sets it first if given a positive value.
func (O *Options) BFactorDivisor(d ...int32) int32 {
	if len(d) > 0 && d[0] > 0 {
		O.bFactorDivisor = d[0]
	}
	return O.bFactorDivisor
}

//OccupancyDivisor returns the fixed-point divisor used for occupancies,
//and sets it first if given a positive value.
func (O *Options) OccupancyDivisor(d ...int32) int32 {
	if len(d) > 0 && d[0] > 0 {
		O.occupancyDivisor = d[0]
	}
	return O.occupancyDivisor
}

//Producer returns the producer string to record in written files, and
//sets it first if given.
func (O *Options) Producer(p ...string) string {
	if len(p) > 0 && p[0] != "" {
		O.producer = p[0]
	}
	return O.producer
}

//CompressionLevel returns the compression level WriteFile hands to the
//compressor, and sets it first if given.
func (O *Options) CompressionLevel(l ...int) int {
	if len(l) > 0 {
		O.level = l[0]
	}
	return O.level
}

//typeKey gives the identity under which group definitions are interned:
//the full ordered record. Two groups get the same table entry only when
//name, codes, atoms, elements, charges and bonds all coincide.
func typeKey(t *GroupType) string {
	var b strings.Builder
	b.WriteString(t.GroupName)
	b.WriteByte(0)
	b.WriteString(t.SingleLetterCode)
	b.WriteByte(0)
	b.WriteString(t.ChemCompType)
	b.WriteByte(0)
	for i := range t.AtomNameList {
		fmt.Fprintf(&b, "%s\x01%s\x01%d;", t.AtomNameList[i], t.ElementList[i], t.FormalChargeList[i])
	}
	b.WriteByte(0)
	for _, v := range t.BondAtomList {
		fmt.Fprintf(&b, "%d,", v)
	}
	for _, v := range t.BondOrderList {
		fmt.Fprintf(&b, "%d.", v)
	}
	return b.String()
}

//oneChar turns an insertion or alternate-location code back into its
//wire character. Only empty or single-byte codes can be stored.
func oneChar(name, s string) (byte, error) {
	if s == "" {
		return 0, nil
	}
	if len(s) > 1 {
		return 0, &CError{kind: codec.EncodingOverflow, field: name, message: fmt.Sprintf("%q is not a single character", s)}
	}
	return s[0], nil
}

//NewData flattens the graph back into the container's parallel arrays
//and encodes every binary field with the strategies standard MMTF
//writers use, taking the fixed-point divisors from the options. The
//group type table is rebuilt by interning one entry per distinct
//definition, however many occurrences reference it. The optional fields
//are written only when they carry information: an altLocList is not
//emitted for a structure where no atom has alternate locations.
func NewData(S *Structure, opts ...*Options) (*Data, error) {
	O := DefaultOptions()
	if len(opts) > 0 && opts[0] != nil {
		O = opts[0]
	}
	natoms := S.NAtoms()
	ngroups := S.NGroups()
	nchains := S.NChains()

	xs := make([]float64, 0, natoms)
	ys := make([]float64, 0, natoms)
	zs := make([]float64, 0, natoms)
	bfactors := make([]float64, 0, natoms)
	occupancies := make([]float64, 0, natoms)
	atomIDs := make([]int32, 0, natoms)
	altLocs := make([]byte, 0, natoms)
	groupIDs := make([]int32, 0, ngroups)
	groupTypes := make([]int32, 0, ngroups)
	secStructs := make([]int8, 0, ngroups)
	insCodes := make([]byte, 0, ngroups)
	seqIndices := make([]int32, 0, ngroups)
	chainIDs := make([]string, 0, nchains)
	chainNames := make([]string, 0, nchains)
	groupsPerChain := make([]int32, 0, nchains)
	chainsPerModel := make([]int32, 0, len(S.Models))

	index := make(map[string]int32)
	types := []GroupType{}
	nbonds := 0
	haveAltLoc, haveInsCode, haveSecStruct, haveSeqIndex, haveChainName := false, false, false, false, false

	for _, m := range S.Models {
		chainsPerModel = append(chainsPerModel, int32(len(m.Chains)))
		for _, c := range m.Chains {
			chainIDs = append(chainIDs, c.ID)
			chainNames = append(chainNames, c.Name)
			if c.Name != "" {
				haveChainName = true
			}
			groupsPerChain = append(groupsPerChain, int32(len(c.Groups)))
			for _, g := range c.Groups {
				gt := GroupType{
					GroupName:        g.Name,
					SingleLetterCode: g.SingleLetterCode,
					ChemCompType:     g.ChemCompType,
					FormalChargeList: make([]int32, 0, len(g.Atoms)),
					AtomNameList:     make([]string, 0, len(g.Atoms)),
					ElementList:      make([]string, 0, len(g.Atoms)),
				}
				for _, a := range g.Atoms {
					gt.FormalChargeList = append(gt.FormalChargeList, a.Charge)
					gt.AtomNameList = append(gt.AtomNameList, a.Name)
					gt.ElementList = append(gt.ElementList, a.Element)
				}
				for _, b := range g.Bonds {
					if b.A < 0 || b.A >= len(g.Atoms) || b.B < 0 || b.B >= len(g.Atoms) {
						return nil, &CError{kind: StructuralInconsistency, field: "groupList", message: fmt.Sprintf("group %s bonds atoms %d and %d, has %d", g.Name, b.A, b.B, len(g.Atoms))}
					}
					if b.Order != -1 && (b.Order < 1 || b.Order > 4) {
						return nil, &CError{kind: StructuralInconsistency, field: "groupList", message: fmt.Sprintf("group %s has a bond of order %d, the format allows 1 to 4 or -1", g.Name, b.Order)}
					}
					gt.BondAtomList = append(gt.BondAtomList, int32(b.A), int32(b.B))
					gt.BondOrderList = append(gt.BondOrderList, int32(b.Order))
				}
				nbonds += len(g.Bonds)
				key := typeKey(&gt)
				ti, ok := index[key]
				if !ok {
					ti = int32(len(types))
					types = append(types, gt)
					index[key] = ti
				}
				groupTypes = append(groupTypes, ti)
				groupIDs = append(groupIDs, g.ID)
				secStructs = append(secStructs, g.SecStruct)
				if g.SecStruct != -1 {
					haveSecStruct = true
				}
				seqIndices = append(seqIndices, g.SeqIndex)
				if g.SeqIndex != -1 {
					haveSeqIndex = true
				}
				ic, err := oneChar("insCodeList", g.InsCode)
				if err != nil {
					return nil, errDecorate(err, "NewData")
				}
				insCodes = append(insCodes, ic)
				if ic != 0 {
					haveInsCode = true
				}
				for _, a := range g.Atoms {
					xs = append(xs, a.X)
					ys = append(ys, a.Y)
					zs = append(zs, a.Z)
					bfactors = append(bfactors, a.BFactor)
					occupancies = append(occupancies, a.Occupancy)
					atomIDs = append(atomIDs, a.ID)
					al, err := oneChar("altLocList", a.AltLoc)
					if err != nil {
						return nil, errDecorate(err, "NewData")
					}
					altLocs = append(altLocs, al)
					if al != 0 {
						haveAltLoc = true
					}
				}
			}
		}
	}

	D := &Data{
		MMTFVersion:         "1.0.0",
		MMTFProducer:        O.producer,
		StructureID:         S.ID,
		Title:               S.Title,
		DepositionDate:      S.DepositionDate,
		ReleaseDate:         S.ReleaseDate,
		SpaceGroup:          S.SpaceGroup,
		Resolution:          f32ptr(S.Resolution),
		RFree:               f32ptr(S.RFree),
		RWork:               f32ptr(S.RWork),
		ExperimentalMethods: S.ExperimentalMethods,
		EntityList:          S.Entities,
		BioAssemblyList:     S.Assemblies,
		NCSOperatorList:     S.NCSOperators,
		NumAtoms:            int32(natoms),
		NumGroups:           int32(ngroups),
		NumChains:           int32(nchains),
		NumModels:           int32(len(S.Models)),
		NumBonds:            int32(nbonds + len(S.Bonds)),
		GroupList:           types,
		GroupsPerChain:      groupsPerChain,
		ChainsPerModel:      chainsPerModel,
	}
	if S.UnitCell != nil {
		D.UnitCell = make([]float32, len(S.UnitCell))
		for i, v := range S.UnitCell {
			D.UnitCell[i] = float32(v)
		}
	}

	//the encoded fields, with the strategy roster standard writers use
	var err error
	encode := func(name string, a *codec.Array, id, param int32) []byte {
		if err != nil {
			return nil
		}
		f, e := codec.Encode(a, id, param)
		if e != nil {
			err = wrapField(name, e)
			return nil
		}
		return f
	}
	D.XCoordList = encode("xCoordList", codec.NewFloats(xs), codec.FloatDeltaRecursive, O.coordDivisor)
	D.YCoordList = encode("yCoordList", codec.NewFloats(ys), codec.FloatDeltaRecursive, O.coordDivisor)
	D.ZCoordList = encode("zCoordList", codec.NewFloats(zs), codec.FloatDeltaRecursive, O.coordDivisor)
	D.BFactorList = encode("bFactorList", codec.NewFloats(bfactors), codec.FloatDeltaRecursive, O.bFactorDivisor)
	D.OccupancyList = encode("occupancyList", codec.NewFloats(occupancies), codec.FloatRunLength, O.occupancyDivisor)
	D.AtomIDList = encode("atomIdList", codec.NewInts(atomIDs), codec.IntDeltaRunLength, 0)
	D.GroupIDList = encode("groupIdList", codec.NewInts(groupIDs), codec.IntDeltaRunLength, 0)
	D.GroupTypeList = encode("groupTypeList", codec.NewInts(groupTypes), codec.Int32Raw, 0)
	D.ChainIDList = encode("chainIdList", codec.NewStrings(chainIDs), codec.StringFixed, 4)
	if haveChainName {
		D.ChainNameList = encode("chainNameList", codec.NewStrings(chainNames), codec.StringFixed, 4)
	}
	if haveAltLoc {
		D.AltLocList = encode("altLocList", codec.NewChars(altLocs), codec.CharRunLength, 0)
	}
	if haveInsCode {
		D.InsCodeList = encode("insCodeList", codec.NewChars(insCodes), codec.CharRunLength, 0)
	}
	if haveSecStruct {
		D.SecStructList = encode("secStructList", codec.NewInt8s(secStructs), codec.Int8Raw, 0)
	}
	if haveSeqIndex {
		D.SequenceIndexList = encode("sequenceIndexList", codec.NewInts(seqIndices), codec.IntDeltaRunLength, 0)
	}
	if len(S.Bonds) > 0 {
		interAtoms := make([]int32, 0, 2*len(S.Bonds))
		interOrders := make([]int8, 0, len(S.Bonds))
		for _, b := range S.Bonds {
			if b.A < 0 || b.A >= natoms || b.B < 0 || b.B >= natoms {
				return nil, &CError{kind: StructuralInconsistency, field: "bondAtomList", message: fmt.Sprintf("bond joins atoms %d and %d, structure has %d", b.A, b.B, natoms)}
			}
			if b.Order != -1 && (b.Order < 1 || b.Order > 4) {
				return nil, &CError{kind: StructuralInconsistency, field: "bondOrderList", message: fmt.Sprintf("bond between atoms %d and %d has order %d, the format allows 1 to 4 or -1", b.A, b.B, b.Order)}
			}
			interAtoms = append(interAtoms, int32(b.A), int32(b.B))
			interOrders = append(interOrders, b.Order)
		}
		D.BondAtomList = encode("bondAtomList", codec.NewInts(interAtoms), codec.Int32Raw, 0)
		D.BondOrderList = encode("bondOrderList", codec.NewInt8s(interOrders), codec.Int8Raw, 0)
	}
	if err != nil {
		return nil, errDecorate(err, "NewData")
	}
	return D, nil
}
