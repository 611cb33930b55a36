package gfx

import "github.com/rajveermalviya/go-webgpu/wgpu"

// chooseFormat picks the presentation format: the first format the
// surface reports. Capabilities are listed in the surface's preference
// order, so the choice is deterministic.
func chooseFormat(formats []wgpu.TextureFormat) (wgpu.TextureFormat, error) {
	if len(formats) == 0 {
		return wgpu.TextureFormat_Undefined, ErrNoConfig
	}
	return formats[0], nil
}

// swapChainDescriptor builds the surface's presentation configuration
// for the given pixel size: render-attachment usage, FIFO presentation
// and the surface's preferred alpha mode.
func swapChainDescriptor(format wgpu.TextureFormat, width, height int, alphaModes []wgpu.CompositeAlphaMode) *wgpu.SwapChainDescriptor {
	alpha := wgpu.CompositeAlphaMode_Auto
	if len(alphaModes) > 0 {
		alpha = alphaModes[0]
	}
	return &wgpu.SwapChainDescriptor{
		Usage:       wgpu.TextureUsage_RenderAttachment,
		Format:      format,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: wgpu.PresentMode_Fifo,
		AlphaMode:   alpha,
	}
}
