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
	"image"
	"image/color"
	"math"
)

// HeightMap rasterizes the vertices of fv into a resolution×resolution image.
// A vertex at (x, y, z) with x and z in [0, 1) sets the pixel
// (floor(x*resolution), floor(z*resolution)) to its height y, clamped to
// [0, 1]. Later vertices overwrite earlier ones. Other pixels stay black.
func (fv *FaceVertexMesh) HeightMap(resolution int) *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, resolution, resolution))
	for _, p := range fv.Positions {
		x := int(math.Floor(p.X * float64(resolution)))
		y := int(math.Floor(p.Z * float64(resolution)))
		if !(image.Point{X: x, Y: y}).In(img.Rect) {
			continue
		}
		img.SetGray16(x, y, color.Gray16{Y: uint16(math.Round(clamp01(p.Y) * 0xffff))})
	}
	return img
}
