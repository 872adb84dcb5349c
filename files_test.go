/*
 * files_test.go, part of gommtf.
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
	"bytes"
	"fmt"
	"math"
	"os"
	"testing"
)

//TestFileIO writes the test structure in every compression flavor the
//suffixes select, and reads each file back.
func TestFileIO(Te *testing.T) {
	if err := os.MkdirAll("test", 0755); err != nil {
		Te.Fatal(err)
	}
	S := testStructure()
	for _, name := range []string{"test/rt.mmtf", "test/rt.mmtf.gz", "test/rt.mmtf.zst"} {
		if err := WriteFile(name, S); err != nil {
			Te.Error(name, err)
			continue
		}
		S2, err := ReadFile(name)
		if err != nil {
			Te.Error(name, err)
			continue
		}
		if S2.NAtoms() != S.NAtoms() || S2.NBonds() != S.NBonds() {
			Te.Errorf("%s: read back %d atoms and %d bonds", name, S2.NAtoms(), S2.NBonds())
		}
		w, g := S.Atoms()[3], S2.Atoms()[3]
		if math.Abs(w.X-g.X) > 0.0005 || math.Abs(w.Y-g.Y) > 0.0005 || math.Abs(w.Z-g.Z) > 0.0005 {
			Te.Errorf("%s: atom 3 read back at (%.4f %.4f %.4f)", name, g.X, g.Y, g.Z)
		}
		fmt.Println(name, "round tripped!")
	}
	if _, err := ReadFile("test/does-not-exist.mmtf"); !Is(err, BadFile) {
		Te.Errorf("a missing file gave %v", err)
	}
}

//TestStreamIO round trips through a plain buffer, and checks that the
//options reach the written container.
func TestStreamIO(Te *testing.T) {
	S := testStructure()
	var buf bytes.Buffer
	if err := Write(&buf, S); err != nil {
		Te.Fatal(err)
	}
	S2, err := Read(&buf)
	if err != nil {
		Te.Fatal(err)
	}
	if S2.NAtoms() != S.NAtoms() {
		Te.Errorf("read back %d atoms, %d written", S2.NAtoms(), S.NAtoms())
	}

	O := DefaultOptions()
	O.Producer("gommtf test suite")
	O.CoordDivisor(10000)
	var fine bytes.Buffer
	if err := Write(&fine, S, O); err != nil {
		Te.Fatal(err)
	}
	D, err := UnmarshalData(fine.Bytes())
	if err != nil {
		Te.Fatal(err)
	}
	if D.MMTFProducer != "gommtf test suite" {
		Te.Errorf("the producer option did not reach the container: %q", D.MMTFProducer)
	}
	S3, err := D.Structure()
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(S3.Atoms()[1].X-S.Atoms()[1].X) > 0.0001 {
		Te.Errorf("a divisor of 10000 still lost precision: %.5f", S3.Atoms()[1].X)
	}
	fmt.Println("stream round trip survived!")
}
