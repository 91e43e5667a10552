// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpu provides the WebGPU compute path for the fractal renderer.
//
// The kernel lives in shaders/mandelbrot.wgsl and is compiled to SPIR-V
// with gogpu/naga at pipeline creation. The package follows the gogpu
// integration principle: it RECEIVES a device and queue from the host
// application and never creates its own. Hosts built on gpucontext can
// hand over their device through the DeviceHandle alias.
//
// Until the HAL exposes buffer binding for compute dispatch, Render
// executes a CPU mirror of the shader (the same kernel the root fractal
// package exports), so output is byte-identical between the two paths.
package gpu
