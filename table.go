// SGI FREE SOFTWARE LICENSE B (Version 2.0, Sept. 18, 2008)
// Copyright (C) [dates of first publication] Silicon Graphics, Inc.
// All Rights Reserved.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice including the dates of first publication and either this
// permission notice or a reference to http://oss.sgi.com/projects/FreeB/ shall be
// included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED,
// INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A
// PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL SILICON GRAPHICS, INC.
// BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT,
// TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE
// OR OTHER DEALINGS IN THE SOFTWARE.
//
// Except as contained in this notice, the name of Silicon Graphics, Inc. shall not
// be used in advertising or otherwise to promote the sale, use or other dealings in
// this Software without prior written authorization from Silicon Graphics, Inc.

package halfedge

import (
	"encoding/csv"
	"io"
	"strconv"
)

var tableHeader = []string{
	"HalfEdge", "Src", "Dst", "Prev", "Next", "Twin",
	"Face", "HalfEdge",
	"Vertex", "X", "Y", "Z", "Outgoing",
}

func refString(i int) string {
	if i < 0 {
		return "null"
	}
	return strconv.Itoa(i)
}

func coordString(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}

// WriteTable dumps the connectivity of m as a table, one row per index, with
// the half-edge, face and vertex columns side by side. Columns are separated by
// sep. Cells past the end of a shorter arena are empty.
func (m *Mesh) WriteTable(w io.Writer, sep rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = sep

	if err := cw.Write(tableHeader); err != nil {
		return err
	}

	rows := len(m.halfEdges)
	if len(m.faces) > rows {
		rows = len(m.faces)
	}
	if len(m.vertices) > rows {
		rows = len(m.vertices)
	}

	for i := 0; i < rows; i++ {
		row := make([]string, 0, len(tableHeader))
		if i < len(m.halfEdges) {
			e := m.halfEdges[i]
			row = append(row,
				strconv.Itoa(i),
				strconv.Itoa(e.Source),
				strconv.Itoa(m.Dest(i)),
				strconv.Itoa(e.Prev),
				strconv.Itoa(e.Next),
				refString(e.Twin))
		} else {
			row = append(row, "", "", "", "", "", "")
		}
		if i < len(m.faces) {
			row = append(row, strconv.Itoa(i), strconv.Itoa(m.faces[i].Edge))
		} else {
			row = append(row, "", "")
		}
		if i < len(m.vertices) {
			v := m.vertices[i]
			row = append(row,
				strconv.Itoa(i),
				coordString(v.Position.X),
				coordString(v.Position.Y),
				coordString(v.Position.Z),
				refString(v.Outgoing))
		} else {
			row = append(row, "", "", "", "", "")
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
