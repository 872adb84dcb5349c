/*
 * doc.go, part of gommtf.
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

/*Package mmtf reads and writes the Macromolecular Transmission Format, the
compact binary format for macromolecular structures. An MMTF file is a
MessagePack container whose binary fields hold arrays compressed with a
small set of encoding strategies; the codec subpackage implements those
strategies, and this package assembles the decoded arrays into a
Structure object graph, and flattens a graph back into a container.


	**gommtf Capabilities**


    Reads/writes MMTF files, plain or gzip/zstd compressed, with the
	compression picked from the file name.

    Decodes and encodes the 15 array encoding strategies of the format,
	including the recursive-index and fixed-point representations.

    Enforces the cross-field consistency rules of the format on both
	directions: array lengths against the declared counts, group type
	references against the type table, bond indices against the atom
	count. A file that disagrees with itself is rejected, never guessed
	at.

    Assembles a Structure/Model/Chain/Group/Atom object graph with the
	per-atom values as float64, however narrow the wire types.

    Exports coordinates to and imports them from gonum matrices.

    Serializes the object graph as JSON for interchange with non-Go
	tools.

    Classifies groups by their chemical component type (peptide,
	nucleotide, saccharide) and extracts one-letter sequences.

    Plots per-residue B-factor profiles and distributions through the
	mmtfplot subpackage.

Most users only need ReadFile and WriteFile, or Read and Write on open
streams. The Data type exposes the raw container for the cases where the
defaults of the Structure assembly are not wanted.*/
package mmtf
