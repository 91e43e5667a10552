// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"math"

	"github.com/gogpu/gpucontext"
)

// DeviceHandle provides GPU device access from the host application.
//
// Key principle: fractal RECEIVES the device from the host, it does NOT
// create one. The host application (e.g. a gogpu.App) implements
// gpucontext.DeviceProvider and passes it down, so the fractal pipeline
// shares the host's device and queue instead of owning a second one.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, providing a
// fractal-specific name while staying fully compatible with the
// gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// ParamsToBytes serializes the uniform block in the little-endian layout
// the shader expects, for upload into the params buffer.
func ParamsToBytes(p GPUParams) []byte {
	buf := make([]byte, paramsSize)
	writeUint32(buf, 0, p.Width)
	writeUint32(buf, 4, p.Height)
	writeUint32(buf, 8, p.Target)
	writeFloat32(buf, 12, p.Time)
	return buf
}

func writeUint32(buf []byte, offset int, val uint32) {
	buf[offset] = byte(val)
	buf[offset+1] = byte(val >> 8)
	buf[offset+2] = byte(val >> 16)
	buf[offset+3] = byte(val >> 24)
}

func writeFloat32(buf []byte, offset int, val float32) {
	writeUint32(buf, offset, math.Float32bits(val))
}
