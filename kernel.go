package fractal

import "github.com/chewxy/math32"

// Iteration parameters. The step cap is fixed at this layer, matching the
// shader's loop bound; callers that want a different budget need a
// different kernel.
const (
	// MaxIterations is the escape-time step cap.
	MaxIterations = 128

	// bailoutSq is the squared escape radius. Escape is tested against the
	// squared magnitude to avoid a square root per step; a threshold of 4
	// also guarantees |z| > 1 at escape, which keeps the smoothing
	// logarithms defined.
	bailoutSq = 4.0
)

// Zoom target: the point in the complex plane the animation dives toward.
// A deep-zoom location on the boundary of the set; the view centers here
// as Time grows.
const (
	// ZoomTargetRe is the real part of the zoom target.
	ZoomTargetRe float32 = -0.7436438870371587

	// ZoomTargetIm is the imaginary part of the zoom target.
	ZoomTargetIm float32 = 0.1318259042053119
)

// MapSample maps an in-bounds pixel coordinate to its complex-plane sample
// c for the given frame parameters.
//
// The pipeline is: normalize to [0,1]², recentre to [-1,1]² with a vertical
// flip (image row 0 is the top, the positive imaginary axis points up),
// correct the real axis for aspect ratio, apply the inverse-square zoom,
// and translate to the zoom target.
//
// The caller guarantees x < pc.Width and y < pc.Height; coordinates beyond
// the resolution are rejected by the dispatch grid before any invocation
// runs. pc.Time must be strictly positive (trusted-caller contract).
func MapSample(x, y uint32, pc PushConstants) (re, im float32) {
	ndcX := float32(x) / float32(pc.Width)
	ndcY := float32(y) / float32(pc.Height)

	re = ndcX*2 - 1
	im = 1 - 2*ndcY

	re *= float32(pc.Width) / float32(pc.Height)

	// Inverse-square zoom: dividing by Time² accelerates the dive as the
	// animation progresses.
	zoom := pc.Time * pc.Time
	re /= zoom
	im /= zoom

	return re + ZoomTargetRe, im + ZoomTargetIm
}

// EscapeRecord is the result of one escape-time iteration.
type EscapeRecord struct {
	// Steps is the number of completed iteration steps before escape.
	// Equal to MaxIterations when the point never escaped.
	Steps int

	// ZRe, ZIm is the final iterate.
	ZRe, ZIm float32

	// MinSum is the running minimum of z.re + z.im across all steps, a
	// distance-like diagnostic carried through from the iteration. The
	// default shading does not consume it.
	MinSum float32
}

// Escaped reports whether the point left the escape radius within the
// step budget. Points that exhaust the budget are treated as inside the
// set.
func (r EscapeRecord) Escaped() bool {
	return r.Steps < MaxIterations
}

// MagnitudeSq returns the squared magnitude of the final iterate.
func (r EscapeRecord) MagnitudeSq() float32 {
	return r.ZRe*r.ZRe + r.ZIm*r.ZIm
}

// SmoothCount returns the continuous escape estimate
//
//	n + 1 − ln(log₂|z|)
//
// which interpolates fractionally between integer step counts using the
// magnitude at escape, removing the banding an integer count produces.
//
// The expression is only defined for |z| > 1, which the bailout radius
// guarantees whenever escape occurred. For points that reached the step
// cap it is numerically unstable, so those are clamped to the sentinel
// value MaxIterations instead; shading maps them to the interior color.
func (r EscapeRecord) SmoothCount() float32 {
	if !r.Escaped() {
		return MaxIterations
	}
	return float32(r.Steps) + 1 - math32.Log(0.5*math32.Log2(r.MagnitudeSq()))
}

// Iterate runs the escape-time recurrence z' = z² + c from z = (0,0).
//
// Each step computes (z.re² − z.im², 2·z.re·z.im) + c, tracks the minimum
// of z.re + z.im, and stops as soon as the squared magnitude exceeds the
// bailout. The iteration is fully deterministic: the same c always yields
// the identical step count and final iterate.
func Iterate(cRe, cIm float32) EscapeRecord {
	var zRe, zIm float32
	var minSum float32 = math32.MaxFloat32

	for n := 0; n < MaxIterations; n++ {
		zRe, zIm = zRe*zRe-zIm*zIm+cRe, 2*zRe*zIm+cIm

		if s := zRe + zIm; s < minSum {
			minSum = s
		}

		if zRe*zRe+zIm*zIm > bailoutSq {
			return EscapeRecord{Steps: n + 1, ZRe: zRe, ZIm: zIm, MinSum: minSum}
		}
	}

	return EscapeRecord{Steps: MaxIterations, ZRe: zRe, ZIm: zIm, MinSum: minSum}
}

// Shade maps an escape record to the output color: t = clamp(smooth/128),
// hue = 1−t, saturation 1, value t. Alpha is always fully opaque.
//
// Interior points (step cap reached) shade to opaque black rather than
// trusting the undefined smoothing value; see SmoothCount.
func Shade(r EscapeRecord) RGBA {
	if !r.Escaped() {
		return Black
	}
	t := clampUnit(r.SmoothCount() / MaxIterations)
	return HSV(1-t, 1, t)
}

// EvalPixel runs the full per-invocation pipeline for one in-bounds
// coordinate: coordinate → complex sample → iteration → color.
func EvalPixel(x, y uint32, pc PushConstants) RGBA {
	re, im := MapSample(x, y, pc)
	return Shade(Iterate(re, im))
}
