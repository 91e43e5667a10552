// Package fractal renders an animated, zooming view of the Mandelbrot set.
//
// # Overview
//
// fractal is a Pure Go escape-time fractal renderer designed to integrate
// with the GoGPU ecosystem. The core is a per-pixel compute kernel: each
// invocation maps one integer pixel coordinate to a point on the complex
// plane, runs the z = z² + c escape-time recurrence for up to 128 steps,
// derives a smooth (fractional) iteration count, and writes one opaque
// HSV-shaded pixel. A continuous zoom toward a fixed point in the plane is
// driven by a single time parameter supplied fresh every frame.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/fractal"
//	    "github.com/gogpu/fractal/resource"
//	)
//
//	pool := resource.NewPool()
//	id, _ := pool.CreateImage(resource.ImageInfo{Width: 1280, Height: 720})
//
//	r := fractal.NewRenderer(pool)
//	defer r.Close()
//
//	err := r.RenderFrame(fractal.PushConstants{
//	    Width:  1280,
//	    Height: 720,
//	    Target: id.Pack(true),
//	    Time:   1.0, // strictly positive; grows over the animation
//	})
//
//	img, _ := pool.Image(id)
//	img.SavePNG("frame.png")
//
// # Architecture
//
// The library is organized into:
//   - Public API: PushConstants, Renderer, the kernel functions, HSV color
//   - resource: bindless-style image pool addressed by packed handles
//   - dispatch: 16x16 tile grid and worker pool (parallel for-each)
//   - gpu: WebGPU compute path (WGSL shader compiled via gogpu/naga)
//
// # Coordinate System
//
// Pixel coordinates use standard image conventions: origin (0,0) at the
// top-left, X increasing right, Y increasing down. The complex-plane
// mapping flips Y so the positive imaginary axis points up.
//
// # Execution Model
//
// A frame is a data-parallel dispatch over the pixel domain, grouped into
// 16x16 tiles. Invocations never communicate: each one writes exactly one
// pixel at its own coordinate, so tiles run concurrently without locks.
package fractal

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
