package gfx

import (
	"fmt"
	"log"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rajveermalviya/go-webgpu/wgpu"
	wgpuext_glfw "github.com/rajveermalviya/go-webgpu/wgpuext/glfw"
)

// Gfx bundles the GPU resources needed to draw into one window: the
// surface, the logical device, its command queue, the triangle
// pipeline and the configured swap chain.
type Gfx struct {
	surface   *wgpu.Surface
	device    *wgpu.Device
	queue     *wgpu.Queue
	pipeline  *wgpu.RenderPipeline
	swapChain *wgpu.SwapChain
	config    *wgpu.SwapChainDescriptor
}

// New negotiates a GPU context for the given window.
//
// The steps run in a fixed order: surface creation, adapter selection
// (default power preference, no software fallback, compatible with the
// surface), device and queue creation with default limits and no
// optional features, shader compilation, pipeline creation against the
// surface's first reported format, and finally swap chain
// configuration for the window's current framebuffer size. Each step
// failing aborts construction; resources created so far are released.
func New(window *glfw.Window) (*Gfx, error) {
	g := &Gfx{}

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	g.surface = instance.CreateSurface(wgpuext_glfw.GetSurfaceDescriptor(window))
	if g.surface == nil {
		return nil, fmt.Errorf("%w: surface creation returned nil", ErrNoConfig)
	}

	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface:    g.surface,
		PowerPreference:      wgpu.PowerPreference_Undefined,
		ForceFallbackAdapter: false,
	})
	if err != nil {
		g.release()
		return nil, fmt.Errorf("%w: %w", ErrNoAdapter, err)
	}
	defer adapter.Release()

	g.device, err = adapter.RequestDevice(nil)
	if err != nil {
		g.release()
		return nil, fmt.Errorf("%w: %w", ErrDeviceRequest, err)
	}
	g.queue = g.device.GetQueue()

	shader, err := g.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "shader.wgsl",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaderSource},
	})
	if err != nil {
		g.release()
		return nil, fmt.Errorf("%w: %w", ErrShaderCompile, err)
	}
	defer shader.Release()

	layout, err := g.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label: "triangle_pipeline_layout",
	})
	if err != nil {
		g.release()
		return nil, fmt.Errorf("gfx: create pipeline layout: %w", err)
	}
	defer layout.Release()

	caps := g.surface.GetCapabilities(adapter)
	format, err := chooseFormat(caps.Formats)
	if err != nil {
		g.release()
		return nil, err
	}

	g.pipeline, err = g.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "triangle_pipeline",
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
		},
		Primitive: wgpu.PrimitiveState{
			Topology:         wgpu.PrimitiveTopology_TriangleList,
			StripIndexFormat: wgpu.IndexFormat_Undefined,
			FrontFace:        wgpu.FrontFace_CCW,
			CullMode:         wgpu.CullMode_None,
		},
		Multisample: wgpu.MultisampleState{
			Count:                  1,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{{
				Format:    format,
				Blend:     &wgpu.BlendState_Replace,
				WriteMask: wgpu.ColorWriteMask_All,
			}},
		},
	})
	if err != nil {
		g.release()
		return nil, fmt.Errorf("gfx: create render pipeline: %w", err)
	}

	width, height := window.GetFramebufferSize()
	g.config = swapChainDescriptor(format, width, height, caps.AlphaModes)
	g.swapChain, err = g.device.CreateSwapChain(g.surface, g.config)
	if err != nil {
		g.release()
		return nil, fmt.Errorf("%w: %w", ErrNoConfig, err)
	}

	props := adapter.GetProperties()
	log.Printf("gfx: adapter: %s (%v, %v)", props.Name, props.AdapterType, props.BackendType)
	log.Printf("gfx: surface format: %v, %dx%d", format, width, height)

	return g, nil
}

// Close releases all GPU resources. The Gfx must not be used
// afterwards.
func (g *Gfx) Close() error {
	g.release()
	return nil
}

// release drops resources in reverse order of creation. Safe to call
// on a partially constructed Gfx.
func (g *Gfx) release() {
	g.swapChain = nil
	g.config = nil
	if g.pipeline != nil {
		g.pipeline.Release()
		g.pipeline = nil
	}
	if g.queue != nil {
		g.queue.Release()
		g.queue = nil
	}
	if g.device != nil {
		g.device.Release()
		g.device = nil
	}
	if g.surface != nil {
		g.surface.Release()
		g.surface = nil
	}
}
