// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package resource

import (
	"image"
	"image/png"
	"os"

	"github.com/gogpu/gputypes"
)

// ImageInfo describes parameters for creating an image target.
type ImageInfo struct {
	// Label is an optional debug label.
	Label string

	// Width is the image width in pixels.
	Width uint32

	// Height is the image height in pixels.
	Height uint32
}

// Image is a writable RGBA8 render target backed by a CPU pixel buffer.
//
// Image is the destination of the kernel's only side effect: Store writes
// one pixel at the invocation's own coordinate. Invocations of a single
// dispatch write disjoint coordinates, so concurrent Store calls never
// touch the same bytes and the image needs no internal locking.
type Image struct {
	label string
	img   *image.RGBA
}

// newImage creates an image target with the given dimensions.
func newImage(info ImageInfo) *Image {
	return &Image{
		label: info.Label,
		img:   image.NewRGBA(image.Rect(0, 0, int(info.Width), int(info.Height))),
	}
}

// Label returns the debug label the image was created with.
func (im *Image) Label() string { return im.label }

// Width returns the image width in pixels.
func (im *Image) Width() uint32 { return uint32(im.img.Bounds().Dx()) }

// Height returns the image height in pixels.
func (im *Image) Height() uint32 { return uint32(im.img.Bounds().Dy()) }

// Format returns the pixel format of the target.
func (im *Image) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Pixels returns direct access to the pixel data.
// For RGBA format, each pixel is 4 bytes: R, G, B, A.
func (im *Image) Pixels() []byte { return im.img.Pix }

// Stride returns the number of bytes per row.
func (im *Image) Stride() int { return im.img.Stride }

// Store writes one pixel at (x, y). Color components are in [0, 1] and are
// clamped on conversion; out-of-range coordinates are ignored. This mirrors
// the shader's imageStore with a vec4 texel.
func (im *Image) Store(x, y uint32, r, g, b, a float32) {
	b0 := im.img.Bounds()
	if int(x) >= b0.Dx() || int(y) >= b0.Dy() {
		return
	}
	i := int(y)*im.img.Stride + int(x)*4
	im.img.Pix[i+0] = unitToByte(r)
	im.img.Pix[i+1] = unitToByte(g)
	im.img.Pix[i+2] = unitToByte(b)
	im.img.Pix[i+3] = unitToByte(a)
}

// Load returns the stored pixel at (x, y) as [0, 1] components.
// Out-of-range coordinates return zeros.
func (im *Image) Load(x, y uint32) (r, g, b, a float32) {
	b0 := im.img.Bounds()
	if int(x) >= b0.Dx() || int(y) >= b0.Dy() {
		return 0, 0, 0, 0
	}
	i := int(y)*im.img.Stride + int(x)*4
	return float32(im.img.Pix[i+0]) / 255,
		float32(im.img.Pix[i+1]) / 255,
		float32(im.img.Pix[i+2]) / 255,
		float32(im.img.Pix[i+3]) / 255
}

// RGBA returns the underlying *image.RGBA.
// The returned image shares memory with the target.
func (im *Image) RGBA() *image.RGBA { return im.img }

// SavePNG saves the image to a PNG file.
func (im *Image) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, im.img)
}

// unitToByte converts a [0, 1] component to an 8-bit channel value.
func unitToByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
