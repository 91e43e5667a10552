// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/gogpu/naga"
	types "github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/fractal"
)

//go:embed shaders/mandelbrot.wgsl
var mandelbrotWGSL string

// paramsSize is the byte size of the Params uniform in the shader:
// width, height, target, time, four 4-byte scalars.
const paramsSize = 16

// GPUParams is the GPU-compatible layout of fractal.PushConstants.
// Must match the Params struct in mandelbrot.wgsl.
type GPUParams struct {
	Width  uint32  // Output width in pixels
	Height uint32  // Output height in pixels
	Target uint32  // Packed bindless handle
	Time   float32 // Animation time in seconds
}

// ConvertParams converts the host parameter block to the shader layout.
func ConvertParams(pc fractal.PushConstants) GPUParams {
	return GPUParams{
		Width:  pc.Width,
		Height: pc.Height,
		Target: uint32(pc.Target),
		Time:   pc.Time,
	}
}

// ZoomPipeline owns the compute pipeline for the mandelbrot kernel.
// It compiles the WGSL shader, creates the bind group layouts (uniform
// params + storage output) and the pipeline on a host-supplied device.
//
// Note: HAL buffer binding for compute dispatch is not exposed yet, so
// Render currently executes the CPU mirror of the shader. The pipeline
// objects are still created, which validates the shader end-to-end.
type ZoomPipeline struct {
	mu sync.Mutex

	device hal.Device
	queue  hal.Queue

	pipeline       hal.ComputePipeline
	shaderModule   hal.ShaderModule
	pipelineLayout hal.PipelineLayout
	paramsLayout   hal.BindGroupLayout
	outputLayout   hal.BindGroupLayout

	// Compiled SPIR-V (cached for verification)
	spirvCode []uint32

	initialized bool
	shaderReady bool
}

// NewZoomPipeline creates the mandelbrot compute pipeline on the given
// device. Returns an error if shader compilation or pipeline creation
// fails; callers should fall back to the CPU renderer in that case.
func NewZoomPipeline(device hal.Device, queue hal.Queue) (*ZoomPipeline, error) {
	if device == nil || queue == nil {
		return nil, fmt.Errorf("gpu: device and queue are required")
	}

	p := &ZoomPipeline{device: device, queue: queue}
	if err := p.init(); err != nil {
		p.Destroy()
		return nil, err
	}
	return p, nil
}

// init compiles the shader and creates GPU objects.
func (p *ZoomPipeline) init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	spirvBytes, err := naga.Compile(mandelbrotWGSL)
	if err != nil {
		return fmt.Errorf("gpu: failed to compile shader: %w", err)
	}

	p.spirvCode = make([]uint32, len(spirvBytes)/4)
	for i := range p.spirvCode {
		p.spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	p.shaderReady = true

	shaderModule, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: "mandelbrot_shader",
		Source: hal.ShaderSource{
			SPIRV: p.spirvCode,
		},
	})
	if err != nil {
		return fmt.Errorf("gpu: failed to create shader module: %w", err)
	}
	p.shaderModule = shaderModule

	if err := p.createBindGroupLayouts(); err != nil {
		return err
	}

	layout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "mandelbrot_pipeline_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.paramsLayout, p.outputLayout},
	})
	if err != nil {
		return fmt.Errorf("gpu: failed to create pipeline layout: %w", err)
	}
	p.pipelineLayout = layout

	pipeline, err := p.device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label:  "mandelbrot_pipeline",
		Layout: p.pipelineLayout,
		Compute: hal.ComputeState{
			Module:     p.shaderModule,
			EntryPoint: "cs_mandelbrot",
		},
	})
	if err != nil {
		return fmt.Errorf("gpu: failed to create compute pipeline: %w", err)
	}
	p.pipeline = pipeline

	p.initialized = true
	fractal.Logger().Info("gpu: mandelbrot pipeline created",
		"spirv_words", len(p.spirvCode))
	return nil
}

// createBindGroupLayouts creates the two bind group layouts: group 0 holds
// the params uniform, group 1 the output texel buffer.
func (p *ZoomPipeline) createBindGroupLayouts() error {
	paramsLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "mandelbrot_params_layout",
		Entries: []types.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: types.ShaderStageCompute,
				Buffer: &types.BufferBindingLayout{
					Type:           types.BufferBindingTypeUniform,
					MinBindingSize: paramsSize,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("gpu: failed to create params bind group layout: %w", err)
	}
	p.paramsLayout = paramsLayout

	outputLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "mandelbrot_output_layout",
		Entries: []types.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: types.ShaderStageCompute,
				Buffer: &types.BufferBindingLayout{
					Type: types.BufferBindingTypeStorage,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("gpu: failed to create output bind group layout: %w", err)
	}
	p.outputLayout = outputLayout

	return nil
}

// Render evaluates one frame and returns the packed RGBA8 texels in
// row-major order, one u32 per pixel, exactly as the shader's output
// buffer lays them out.
//
// GPU dispatch needs HAL buffer binding that is not exposed yet, so the
// texels are produced by the CPU mirror of the shader. The mirror runs
// the identical kernel the root package exports, keeping the two paths
// byte-identical.
func (p *ZoomPipeline) Render(pc fractal.PushConstants) ([]uint32, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return nil, fmt.Errorf("gpu: pipeline not initialized")
	}
	if pc.Width == 0 || pc.Height == 0 {
		return nil, nil
	}

	return p.renderCPU(pc), nil
}

// renderCPU mirrors the shader loop on the CPU.
func (p *ZoomPipeline) renderCPU(pc fractal.PushConstants) []uint32 {
	texels := make([]uint32, int(pc.Width)*int(pc.Height))
	for y := uint32(0); y < pc.Height; y++ {
		for x := uint32(0); x < pc.Width; x++ {
			c := fractal.EvalPixel(x, y, pc)
			texels[int(y)*int(pc.Width)+int(x)] = packRGBA8(c)
		}
	}
	return texels
}

// packRGBA8 packs a [0,1] float color into a little-endian RGBA8 texel,
// matching pack_rgba8 in the shader.
func packRGBA8(c fractal.RGBA) uint32 {
	return uint32(unitToByte(c.R)) |
		uint32(unitToByte(c.G))<<8 |
		uint32(unitToByte(c.B))<<16 |
		uint32(unitToByte(c.A))<<24
}

func unitToByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// IsInitialized returns whether the pipeline is ready.
func (p *ZoomPipeline) IsInitialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// IsShaderReady returns whether the shader compiled successfully.
func (p *ZoomPipeline) IsShaderReady() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.shaderReady
}

// SPIRVCode returns the compiled SPIR-V code (for debugging/verification).
func (p *ZoomPipeline) SPIRVCode() []uint32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.spirvCode
}

// Destroy releases all GPU resources. Safe to call on a partially
// initialized pipeline.
func (p *ZoomPipeline) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.device == nil {
		return
	}

	if p.pipeline != nil {
		p.device.DestroyComputePipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.pipelineLayout != nil {
		p.device.DestroyPipelineLayout(p.pipelineLayout)
		p.pipelineLayout = nil
	}
	if p.paramsLayout != nil {
		p.device.DestroyBindGroupLayout(p.paramsLayout)
		p.paramsLayout = nil
	}
	if p.outputLayout != nil {
		p.device.DestroyBindGroupLayout(p.outputLayout)
		p.outputLayout = nil
	}
	if p.shaderModule != nil {
		p.device.DestroyShaderModule(p.shaderModule)
		p.shaderModule = nil
	}

	p.initialized = false
}
