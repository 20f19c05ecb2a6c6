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
	"io"
)

// Encoder writes a single TGA image to an io.Writer. It cannot be reused:
// calling Encode a second time returns ErrEncoderUsed.
type Encoder struct {
	w    io.Writer
	used bool
}

// NewEncoder returns an Encoder that writes its output to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the width×height image held in buf, whose pixels are laid out
// in row-major order as per layout, as a TGA file.
//
// Width and height must be at most 65535. If either is zero then the header is
// all zeroes, whatever the layout, and buf is written as is.
//
// buf is never modified. Its length is not checked against width, height and
// layout.
//
// Nothing is written if an error is returned for the arguments. Errors from
// the underlying io.Writer are returned unchanged, after however many bytes
// it accepted.
func (e *Encoder) Encode(buf []byte, width uint32, height uint32, layout Layout) error {
	if e.used {
		return ErrEncoderUsed
	} else if e.w == nil {
		return ErrBadArgument
	}
	e.used = true

	h, err := headerFromPixelInfo(layout, width, height)
	if err != nil {
		return err
	}
	if err := h.writeTo(e.w); err != nil {
		return err
	}

	if layout.swapsRedAndBlue() {
		buf = reorder(append([]byte(nil), buf...), layout.BytesPerPixel())
	}
	if len(buf) == 0 {
		return nil
	}
	_, err = e.w.Write(buf)
	return err
}

// Encode writes the width×height image held in buf to w in the TGA format.
// See Encoder.Encode for details.
func Encode(w io.Writer, buf []byte, width uint32, height uint32, layout Layout) error {
	return NewEncoder(w).Encode(buf, width, height, layout)
}

// reorder exchanges the first and third byte of every stride-sized chunk of
// pix, in place, and returns pix. A trailing partial chunk is left alone.
func reorder(pix []byte, stride int) []byte {
	if stride < 3 {
		return pix
	}
	for i := 0; (i + stride) <= len(pix); i += stride {
		pix[i+0], pix[i+2] = pix[i+2], pix[i+0]
	}
	return pix
}

// EncodeOptions are optional arguments to EncodeImage. The zero value is
// valid and means to use the default configuration.
type EncodeOptions struct {
	// If zero, the default is to pick LayoutL8 for gray source images,
	// LayoutRGB8 for opaque ones and LayoutRGBA8 for everything else.
	Layout Layout
}

// EncodeImage writes src to w in the TGA format.
//
// options may be nil, which means to use the default configuration.
func EncodeImage(w io.Writer, src image.Image, options *EncodeOptions) error {
	if (w == nil) || (src == nil) {
		return ErrBadArgument
	}

	layout := LayoutInvalid
	if options != nil {
		layout = options.Layout
	}
	if layout == LayoutInvalid {
		layout = defaultLayout(src)
	}

	b := src.Bounds()
	width, height := b.Dx(), b.Dy()
	if err := checkDimensions(uint32(width), uint32(height)); err != nil {
		return err
	} else if !layout.Supported() {
		return &UnsupportedLayoutError{Layout: layout}
	}

	return Encode(w, extract(src, layout), uint32(width), uint32(height), layout)
}
