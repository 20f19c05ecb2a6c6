// Copyright 2025 The Tga Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package tga

import (
	"io"
)

// HeaderSize is the length, in bytes, of every TGA file header.
const HeaderSize = 18

const (
	descriptorAlphaBitsMask   = 0x0F
	descriptorUpperLeftOrigin = 0x20
	maxDimension              = 0xFFFF
)

type header struct {
	idLength        uint8
	colorMapType    uint8
	imageType       imageType
	colorMapOrigin  uint16
	colorMapLength  uint16
	colorMapEntry   uint8
	xOrigin         uint16
	yOrigin         uint16
	width           uint16
	height          uint16
	pixelDepth      uint8
	imageDescriptor uint8
}

// checkDimensions returns a *DimensionError if width or height does not fit
// in 16 bits. Width is checked first.
func checkDimensions(width uint32, height uint32) error {
	if width > maxDimension {
		return &DimensionError{Dimension: DimensionWidth, Value: width}
	}
	if height > maxDimension {
		return &DimensionError{Dimension: DimensionHeight, Value: height}
	}
	return nil
}

// headerFromPixelInfo returns the header for an image with the given layout
// and dimensions.
//
// A zero width or height gives the all-zero header, even for an unsupported
// layout.
func headerFromPixelInfo(layout Layout, width uint32, height uint32) (header, error) {
	if err := checkDimensions(width, height); err != nil {
		return header{}, err
	}

	h := header{}
	if (width == 0) || (height == 0) {
		return h, nil
	}

	info, ok := layout.pixelInfo()
	if !ok {
		return header{}, &UnsupportedLayoutError{Layout: layout}
	}

	h.imageType = info.imageType
	h.width = uint16(width)
	h.height = uint16(height)
	h.pixelDepth = info.alphaBits + info.otherBits
	h.imageDescriptor = (info.alphaBits & descriptorAlphaBitsMask) | descriptorUpperLeftOrigin
	return h, nil
}

// appendTo appends the 18 byte little-endian encoding of h to b.
func (h *header) appendTo(b []byte) []byte {
	b = append(b, h.idLength, h.colorMapType, uint8(h.imageType))
	b = appendU16LE(b, h.colorMapOrigin)
	b = appendU16LE(b, h.colorMapLength)
	b = append(b, h.colorMapEntry)
	b = appendU16LE(b, h.xOrigin)
	b = appendU16LE(b, h.yOrigin)
	b = appendU16LE(b, h.width)
	b = appendU16LE(b, h.height)
	b = append(b, h.pixelDepth, h.imageDescriptor)
	return b
}

func (h *header) writeTo(w io.Writer) error {
	buf := [HeaderSize]byte{}
	_, err := w.Write(h.appendTo(buf[:0]))
	return err
}

// AppendHeader appends the TGA header for an image with the given layout and
// dimensions to dst. It returns the same errors as Encode would, before
// anything is written.
func AppendHeader(dst []byte, width uint32, height uint32, layout Layout) ([]byte, error) {
	h, err := headerFromPixelInfo(layout, width, height)
	if err != nil {
		return dst, err
	}
	return h.appendTo(dst), nil
}

func appendU16LE(b []byte, u uint16) []byte {
	return append(b,
		uint8(u>>0),
		uint8(u>>8),
	)
}
