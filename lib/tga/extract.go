// Copyright 2025 The Tga Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package tga

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// defaultLayout returns the Layout that EncodeImage uses for src when the
// caller doesn't pick one.
func defaultLayout(src image.Image) Layout {
	switch src.(type) {
	case *image.Gray, *image.Gray16:
		return LayoutL8
	}
	if o, ok := src.(interface{ Opaque() bool }); ok && o.Opaque() {
		return LayoutRGB8
	}
	return LayoutRGBA8
}

// extract returns src's pixels as a tightly packed, row-major buffer in the
// given (supported) layout.
func extract(src image.Image, layout Layout) []byte {
	b := src.Bounds()
	bpp := layout.BytesPerPixel()
	ret := make([]byte, 0, b.Dx()*b.Dy()*bpp)
	if b.Empty() {
		return ret
	}

	if layout == LayoutL8 {
		gray := toGray(src)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			i := gray.PixOffset(b.Min.X, y)
			ret = append(ret, gray.Pix[i:i+b.Dx()]...)
		}
		return ret
	}

	nrgba := toNRGBA(src)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := nrgba.PixOffset(b.Min.X, y)
		row := nrgba.Pix[i : i+(4*b.Dx())]
		for ; len(row) >= 4; row = row[4:] {
			r, g, bl, a := row[0], row[1], row[2], row[3]
			switch layout {
			case LayoutLA8:
				ret = append(ret, grayOf(r, g, bl), a)
			case LayoutRGB8:
				ret = append(ret, r, g, bl)
			case LayoutBGR8:
				ret = append(ret, bl, g, r)
			case LayoutRGBA8:
				ret = append(ret, r, g, bl, a)
			case LayoutBGRA8:
				ret = append(ret, bl, g, r, a)
			}
		}
	}
	return ret
}

func toGray(src image.Image) *image.Gray {
	if m, ok := src.(*image.Gray); ok {
		return m
	}
	b := src.Bounds()
	dst := image.NewGray(b)
	draw.Draw(dst, b, src, b.Min, draw.Src)
	return dst
}

func toNRGBA(src image.Image) *image.NRGBA {
	if m, ok := src.(*image.NRGBA); ok {
		return m
	}
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, src, b.Min, draw.Src)
	return dst
}

// grayOf uses the same luma weights as the standard library's color.GrayModel.
func grayOf(r uint8, g uint8, b uint8) uint8 {
	return color.GrayModel.Convert(color.NRGBA{R: r, G: g, B: b, A: 0xFF}).(color.Gray).Y
}
