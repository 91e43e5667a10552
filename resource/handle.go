// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package resource provides bindless-style resource indirection for the
// fractal renderer: image targets live in a pool and are addressed through
// opaque packed handles rather than direct references, mirroring how a GPU
// shader reaches a storage image through a bindless descriptor table.
package resource

// Type identifies the kind of resource a packed handle refers to.
type Type uint32

const (
	// TypeStorageImage is a writable 2D image target.
	TypeStorageImage Type = 0

	// TypeBuffer is a linear data buffer.
	TypeBuffer Type = 1
)

// String returns the resource type name.
func (t Type) String() string {
	switch t {
	case TypeStorageImage:
		return "storage-image"
	case TypeBuffer:
		return "buffer"
	default:
		return "unknown"
	}
}

// ImageID identifies an image in a Pool. The zero value is the first pool
// slot; IDs are only meaningful together with the pool that issued them.
type ImageID uint32

// PackedID is an opaque handle packed into a single u32, in the layout the
// compute kernel receives through its parameter block:
//
//   - bits 0..19:  index of the resource in the pool
//   - bits 20..23: resource type
//   - bit  24:     whether the resource is mutable (writable)
//
// The packed form is what crosses the host/kernel boundary; the kernel
// resolves it back through the pool before its single pixel write.
type PackedID uint32

const (
	indexBits  = 20
	indexMask  = 1<<indexBits - 1
	typeBits   = 4
	typeShift  = indexBits
	typeMask   = 1<<typeBits - 1
	mutableBit = 1 << (indexBits + typeBits)

	// MaxPoolSize is the largest number of resources a pool can address:
	// the index field is 20 bits wide.
	MaxPoolSize = 1 << indexBits
)

// Pack returns the packed handle for this image ID.
func (id ImageID) Pack(mutable bool) PackedID {
	p := PackedID(uint32(id)&indexMask) | PackedID(uint32(TypeStorageImage)&typeMask)<<typeShift
	if mutable {
		p |= mutableBit
	}
	return p
}

// Index returns the pool index encoded in the handle.
func (p PackedID) Index() uint32 {
	return uint32(p) & indexMask
}

// Type returns the resource type encoded in the handle.
func (p PackedID) Type() Type {
	return Type(uint32(p) >> typeShift & typeMask)
}

// Mutable reports whether the handle grants write access.
func (p PackedID) Mutable() bool {
	return uint32(p)&mutableBit != 0
}
