package fractal

import (
	"errors"
	"fmt"
	"image"
	"time"

	"golang.org/x/image/draw"

	"github.com/gogpu/fractal/dispatch"
	"github.com/gogpu/fractal/resource"
)

// Renderer errors.
var (
	// ErrNilPool is returned when a renderer is created without a resource pool.
	ErrNilPool = errors.New("fractal: renderer requires a resource pool")

	// ErrClosed is returned when rendering with a closed renderer.
	ErrClosed = errors.New("fractal: renderer is closed")
)

// RendererOption configures a Renderer during creation.
type RendererOption func(*rendererOptions)

type rendererOptions struct {
	workers     int
	supersample int
}

// WithWorkers sets the number of worker goroutines for tile execution.
// Zero or negative selects GOMAXPROCS.
func WithWorkers(n int) RendererOption {
	return func(o *rendererOptions) { o.workers = n }
}

// WithSupersample renders each frame at factor× resolution and downsamples
// to the target with a Catmull-Rom filter. Factors below 2 disable
// supersampling.
func WithSupersample(factor int) RendererOption {
	return func(o *rendererOptions) { o.supersample = factor }
}

// Renderer executes fractal dispatches against a resource pool.
//
// One Renderer can serve many frames and many targets; it owns only the
// worker pool. Frames are rendered synchronously: RenderFrame returns once
// every tile has completed.
//
// Thread safety: a Renderer may be shared across goroutines, but frames
// that write the same target must not overlap; disjoint pixel writes are
// only guaranteed within a single dispatch.
type Renderer struct {
	pool        *resource.Pool
	workers     *dispatch.WorkerPool
	supersample int
	closed      bool
}

// NewRenderer creates a renderer for targets registered in pool.
func NewRenderer(pool *resource.Pool, opts ...RendererOption) *Renderer {
	o := rendererOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	r := &Renderer{
		pool:        pool,
		workers:     dispatch.NewWorkerPool(o.workers),
		supersample: o.supersample,
	}
	Logger().Info("fractal: renderer created",
		"workers", r.workers.Workers(),
		"supersample", r.supersample)
	return r
}

// RenderFrame renders one frame described by the parameter block: it
// resolves pc.Target through the pool, dispatches ceil(W/16) × ceil(H/16)
// workgroup tiles over the worker pool, and runs the kernel once per
// in-bounds pixel.
//
// The kernel itself validates nothing beyond the grid's bounds clipping;
// pc.Time must be strictly positive and the resolution must match the
// target's dimensions (host preconditions). An unresolvable handle is the
// one precondition a Go host can observe, so it surfaces as an error.
func (r *Renderer) RenderFrame(pc PushConstants) error {
	if r.closed {
		return ErrClosed
	}
	if r.pool == nil {
		return ErrNilPool
	}

	target, err := r.pool.ResolveImage(pc.Target)
	if err != nil {
		return fmt.Errorf("fractal: render frame: %w", err)
	}

	start := time.Now()

	if r.supersample >= 2 {
		r.renderSupersampled(target, pc)
	} else {
		r.renderInto(target, pc)
	}

	Logger().Debug("fractal: frame rendered",
		"width", pc.Width,
		"height", pc.Height,
		"time", pc.Time,
		"elapsed", time.Since(start))
	return nil
}

// renderInto runs the plain dispatch against a target.
func (r *Renderer) renderInto(target *resource.Image, pc PushConstants) {
	grid := dispatch.NewGrid(pc.Width, pc.Height)
	dispatch.ForEach(r.workers, grid, func(x, y uint32) {
		c := EvalPixel(x, y, pc)
		target.Store(x, y, c.R, c.G, c.B, c.A)
	})
}

// renderSupersampled renders at k× resolution into a scratch buffer and
// downsamples into the target. The scratch frame uses the same Time, so
// the sample positions are a strict refinement of the base grid.
func (r *Renderer) renderSupersampled(target *resource.Image, pc PushConstants) {
	k := uint32(r.supersample) //nolint:gosec // factor checked >= 2
	hi := PushConstants{
		Width:  pc.Width * k,
		Height: pc.Height * k,
		Target: pc.Target,
		Time:   pc.Time,
	}

	scratch := image.NewRGBA(image.Rect(0, 0, int(hi.Width), int(hi.Height)))
	grid := dispatch.NewGrid(hi.Width, hi.Height)
	dispatch.ForEach(r.workers, grid, func(x, y uint32) {
		c := EvalPixel(x, y, hi)
		i := int(y)*scratch.Stride + int(x)*4
		scratch.Pix[i+0] = uint8(clamp255(c.R*255 + 0.5))
		scratch.Pix[i+1] = uint8(clamp255(c.G*255 + 0.5))
		scratch.Pix[i+2] = uint8(clamp255(c.B*255 + 0.5))
		scratch.Pix[i+3] = uint8(clamp255(c.A*255 + 0.5))
	})

	dst := target.RGBA()
	draw.CatmullRom.Scale(dst, dst.Bounds(), scratch, scratch.Bounds(), draw.Src, nil)
}

// Close releases the worker pool. The renderer must not be used after
// Close; Close is idempotent.
func (r *Renderer) Close() {
	if r.closed {
		return
	}
	r.closed = true
	r.workers.Close()
}
