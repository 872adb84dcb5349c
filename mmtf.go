/*
 * mmtf.go, part of gommtf.
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

//The fields of the MMTF container, with the key names the format defines.
//An MMTF file is a MessagePack map from those keys to either plain values
//(counts, metadata, the group type table) or binary blobs holding an
//encoded array each; the blobs are what the codec subpackage understands.
//Data is the container laid bare: what was read, before any decoding, or
//what is about to be written, after all encoding. Most users will not
//touch it and work with Structure instead.
type Data struct {
	MMTFVersion         string        `msgpack:"mmtfVersion"`
	MMTFProducer        string        `msgpack:"mmtfProducer"`
	UnitCell            []float32     `msgpack:"unitCell,omitempty"`
	SpaceGroup          string        `msgpack:"spaceGroup,omitempty"`
	StructureID         string        `msgpack:"structureId,omitempty"`
	Title               string        `msgpack:"title,omitempty"`
	DepositionDate      string        `msgpack:"depositionDate,omitempty"`
	ReleaseDate         string        `msgpack:"releaseDate,omitempty"`
	NCSOperatorList     [][]float32   `msgpack:"ncsOperatorList,omitempty"`
	BioAssemblyList     []BioAssembly `msgpack:"bioAssemblyList,omitempty"`
	EntityList          []Entity      `msgpack:"entityList,omitempty"`
	ExperimentalMethods []string      `msgpack:"experimentalMethods,omitempty"`
	Resolution          *float32      `msgpack:"resolution,omitempty"`
	RFree               *float32      `msgpack:"rFree,omitempty"`
	RWork               *float32      `msgpack:"rWork,omitempty"`
	NumBonds            int32         `msgpack:"numBonds"`
	NumAtoms            int32         `msgpack:"numAtoms"`
	NumGroups           int32         `msgpack:"numGroups"`
	NumChains           int32         `msgpack:"numChains"`
	NumModels           int32         `msgpack:"numModels"`
	GroupList           []GroupType   `msgpack:"groupList"`
	//The encoded fields. Each value is a full codec field: the 12-byte
	//header followed by the payload.
	BondAtomList      []byte `msgpack:"bondAtomList,omitempty"`
	BondOrderList     []byte `msgpack:"bondOrderList,omitempty"`
	XCoordList        []byte `msgpack:"xCoordList"`
	YCoordList        []byte `msgpack:"yCoordList"`
	ZCoordList        []byte `msgpack:"zCoordList"`
	BFactorList       []byte `msgpack:"bFactorList,omitempty"`
	AtomIDList        []byte `msgpack:"atomIdList,omitempty"`
	AltLocList        []byte `msgpack:"altLocList,omitempty"`
	OccupancyList     []byte `msgpack:"occupancyList,omitempty"`
	GroupIDList       []byte `msgpack:"groupIdList"`
	GroupTypeList     []byte `msgpack:"groupTypeList"`
	SecStructList     []byte `msgpack:"secStructList,omitempty"`
	InsCodeList       []byte `msgpack:"insCodeList,omitempty"`
	SequenceIndexList []byte `msgpack:"sequenceIndexList,omitempty"`
	ChainIDList       []byte `msgpack:"chainIdList"`
	ChainNameList     []byte `msgpack:"chainNameList,omitempty"`
	//Plain per-chain and per-model counts.
	GroupsPerChain []int32 `msgpack:"groupsPerChain"`
	ChainsPerModel []int32 `msgpack:"chainsPerModel"`
}

//GroupType is one distinct residue/monomer definition in the group type
//table. Group occurrences reference an entry of the table by index, so a
//protein with 300 alanines still carries a single alanine definition.
//The bond lists pair atom indices local to the group, two consecutive
//values per bond.
type GroupType struct {
	FormalChargeList []int32  `msgpack:"formalChargeList"`
	AtomNameList     []string `msgpack:"atomNameList"`
	ElementList      []string `msgpack:"elementList"`
	BondAtomList     []int32  `msgpack:"bondAtomList"`
	BondOrderList    []int32  `msgpack:"bondOrderList"`
	GroupName        string   `msgpack:"groupName"`
	SingleLetterCode string   `msgpack:"singleLetterCode"`
	ChemCompType     string   `msgpack:"chemCompType"`
}

//Entity groups chains that share a molecular identity (a polymer, a
//ligand, the waters) with its description and, for polymers, the full
//sequence. Chain indices are structure-wide, 0-based.
type Entity struct {
	ChainIndexList []int32 `msgpack:"chainIndexList"`
	Description    string  `msgpack:"description"`
	Type           string  `msgpack:"type"`
	Sequence       string  `msgpack:"sequence"`
}

//BioAssembly describes how to build one biological assembly from the
//deposited coordinates.
type BioAssembly struct {
	TransformList []Transform `msgpack:"transformList"`
	Name          string      `msgpack:"name"`
}

//Transform applies a 4x4 transformation matrix, row-major in 16 values,
//to the chains it lists.
type Transform struct {
	ChainIndexList []int32   `msgpack:"chainIndexList"`
	Matrix         []float32 `msgpack:"matrix"`
}
