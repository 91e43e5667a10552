package fractal

import "github.com/gogpu/fractal/resource"

// PushConstants is the per-frame parameter block. It is shared read-only
// by every invocation of a dispatch: the host fills it once per frame and
// passes it by value, never through a mutable singleton.
//
// The fields mirror the small constant block a compute shader receives:
//
//	resolution  (Width, Height)
//	destination (Target, a packed bindless handle)
//	time        (Time, drives the zoom)
//
// Preconditions are the host's responsibility and are not validated here:
// Time must be strictly positive (the zoom divides by Time², so zero is a
// singularity; animations typically start near 1 and increase), and the
// resolution must match the target image's actual dimensions.
type PushConstants struct {
	// Width, Height is the output resolution in pixels.
	Width  uint32
	Height uint32

	// Target is the packed handle of the destination image.
	Target resource.PackedID

	// Time is the elapsed animation time in seconds. Strictly positive.
	Time float32
}
