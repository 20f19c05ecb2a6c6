// Copyright 2025 The Tga Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// tgapack encodes images in the uncompressed TGA (Truevision Targa) file
// format.
package main

import (
	"bufio"
	"errors"
	"flag"
	"image"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/nigeltao/tga/lib/tga"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	layoutFlag = flag.String("layout", "auto", "output pixel layout")
)

const usageStr = `tgapack encodes images in the uncompressed TGA file format.

Usage:

    tgapack [path]

The path to the input image file is optional. If omitted, stdin is read. A
path ending in ".zst" is Zstandard-decompressed before decoding.

You can also pass one of these flags (before the path):

    -layout=auto (this is the default)
    -layout=l8
    -layout=la8
    -layout=rgb8
    -layout=bgr8
    -layout=rgba8
    -layout=bgra8

The "auto" layout picks l8 for gray images, rgb8 for opaque images and rgba8
otherwise.

The output image (in TGA format) is written to stdout.

Inputs can be BMP, GIF, JPEG, PNG, TIFF or WEBP.
`

var ErrBadLayoutFlag = errors.New("main: bad -layout flag")

var layoutFlagValues = map[string]tga.Layout{
	"auto":  tga.LayoutInvalid,
	"l8":    tga.LayoutL8,
	"la8":   tga.LayoutLA8,
	"rgb8":  tga.LayoutRGB8,
	"bgr8":  tga.LayoutBGR8,
	"rgba8": tga.LayoutRGBA8,
	"bgra8": tga.LayoutBGRA8,
}

func main() {
	if err := main1(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func main1() error {
	flag.Usage = func() { os.Stderr.WriteString(usageStr) }
	flag.Parse()

	layout, ok := layoutFlagValues[strings.ToLower(*layoutFlag)]
	if !ok {
		return ErrBadLayoutFlag
	}

	var in io.Reader = os.Stdin
	switch flag.NArg() {
	case 0:
		// No-op.
	case 1:
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		in = f

		if strings.HasSuffix(flag.Arg(0), ".zst") {
			z, err := zstd.NewReader(f)
			if err != nil {
				return err
			}
			defer z.Close()
			in = z
		}
	default:
		return errors.New("too many filenames; the maximum is one")
	}

	return encode(os.Stdout, in, layout)
}

func encode(w io.Writer, r io.Reader, layout tga.Layout) error {
	src, _, err := image.Decode(r)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if err := tga.EncodeImage(bw, src, &tga.EncodeOptions{Layout: layout}); err != nil {
		return err
	}
	return bw.Flush()
}
