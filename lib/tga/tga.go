// Copyright 2025 The Tga Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package tga implements an encoder for the TGA (Truevision Targa) image file
// format, limited to uncompressed true-color and grayscale images.
//
// Every file starts with a fixed 18 byte header, followed immediately by the
// pixel data. Pixel rows are written top-to-bottom (the header's "upper left
// origin" bit is set) and color pixels are stored in BGR or BGRA order.
//
// Color-mapped and run-length-encoded images, and the optional extension area
// and footer, are not produced.
package tga

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrBadArgument       = errors.New("tga: bad argument")
	ErrDimensionInvalid  = errors.New("tga: invalid dimension")
	ErrEncoderUsed       = errors.New("tga: encoder already used")
	ErrUnsupportedLayout = errors.New("tga: unsupported pixel layout")
)

// Dimension identifies which of an image's two extents a DimensionError is
// about.
type Dimension uint8

const (
	DimensionWidth  = Dimension(0)
	DimensionHeight = Dimension(1)
)

func (d Dimension) String() string {
	if d == DimensionHeight {
		return "height"
	}
	return "width"
}

// DimensionError is returned when a width or height does not fit in the
// header's 16 bit fields.
type DimensionError struct {
	Dimension Dimension
	Value     uint32
}

func (e *DimensionError) Error() string {
	return "tga: invalid " + e.Dimension.String() + ": " + strconv.FormatUint(uint64(e.Value), 10)
}

// Unwrap returns ErrDimensionInvalid.
func (e *DimensionError) Unwrap() error { return ErrDimensionInvalid }

// UnsupportedLayoutError is returned when asked to encode a Layout that has no
// TGA counterpart.
type UnsupportedLayoutError struct {
	Layout Layout
}

func (e *UnsupportedLayoutError) Error() string {
	return fmt.Sprintf("tga: unsupported pixel layout %v", e.Layout)
}

// Unwrap returns ErrUnsupportedLayout.
func (e *UnsupportedLayoutError) Unwrap() error { return ErrUnsupportedLayout }

// Layout is the in-memory arrangement of a pixel buffer's channels: how many
// there are, in what order and how wide each one is.
//
// Only the 8 bits per channel gray, gray+alpha, RGB, BGR, RGBA and BGRA
// layouts can be encoded. The others exist so that callers can describe what
// they have, and get an UnsupportedLayoutError back.
//
// The "RGBA" and "BGRA" layouts use non-premultiplied alpha.
type Layout uint8

const (
	LayoutInvalid = Layout(0)

	LayoutL8    = Layout(1)
	LayoutLA8   = Layout(2)
	LayoutRGB8  = Layout(3)
	LayoutBGR8  = Layout(4)
	LayoutRGBA8 = Layout(5)
	LayoutBGRA8 = Layout(6)

	LayoutL16     = Layout(7)
	LayoutLA16    = Layout(8)
	LayoutRGB16   = Layout(9)
	LayoutRGBA16  = Layout(10)
	LayoutRGB32F  = Layout(11)
	LayoutRGBA32F = Layout(12)
)

var layoutNames = [...]string{
	LayoutInvalid: "Invalid",
	LayoutL8:      "L8",
	LayoutLA8:     "LA8",
	LayoutRGB8:    "RGB8",
	LayoutBGR8:    "BGR8",
	LayoutRGBA8:   "RGBA8",
	LayoutBGRA8:   "BGRA8",
	LayoutL16:     "L16",
	LayoutLA16:    "LA16",
	LayoutRGB16:   "RGB16",
	LayoutRGBA16:  "RGBA16",
	LayoutRGB32F:  "RGB32F",
	LayoutRGBA32F: "RGBA32F",
}

func (l Layout) String() string {
	if int(l) < len(layoutNames) {
		return layoutNames[l]
	}
	return "Layout(" + strconv.Itoa(int(l)) + ")"
}

// BytesPerPixel returns the Layout-dependent number of bytes in each pixel,
// or 0 for an unknown Layout.
func (l Layout) BytesPerPixel() int {
	switch l {
	case LayoutL8:
		return 1
	case LayoutLA8,
		LayoutL16:
		return 2
	case LayoutRGB8,
		LayoutBGR8:
		return 3
	case LayoutRGBA8,
		LayoutBGRA8,
		LayoutLA16:
		return 4
	case LayoutRGB16:
		return 6
	case LayoutRGBA16:
		return 8
	case LayoutRGB32F:
		return 12
	case LayoutRGBA32F:
		return 16
	}

	return 0
}

// Supported returns whether the Layout can be encoded.
func (l Layout) Supported() bool {
	_, ok := l.pixelInfo()
	return ok
}

// imageType is the header's image type code. Zero means no image data.
type imageType uint8

const (
	imageTypeRawTrueColor = imageType(2)
	imageTypeRawGrayScale = imageType(3)
)

type pixelInfo struct {
	alphaBits uint8
	otherBits uint8
	imageType imageType
}

func (l Layout) pixelInfo() (pixelInfo, bool) {
	switch l {
	case LayoutL8:
		return pixelInfo{0, 8, imageTypeRawGrayScale}, true
	case LayoutLA8:
		return pixelInfo{8, 8, imageTypeRawGrayScale}, true
	case LayoutRGB8,
		LayoutBGR8:
		return pixelInfo{0, 24, imageTypeRawTrueColor}, true
	case LayoutRGBA8,
		LayoutBGRA8:
		return pixelInfo{8, 24, imageTypeRawTrueColor}, true
	}

	return pixelInfo{}, false
}

// swapsRedAndBlue returns whether the Layout's first and third channels have
// to be exchanged to get TGA's blue-first order.
func (l Layout) swapsRedAndBlue() bool {
	return (l == LayoutRGB8) || (l == LayoutRGBA8)
}
