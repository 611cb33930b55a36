package gfx

import (
	"fmt"

	"github.com/rajveermalviya/go-webgpu/wgpu"
)

// clearColor is the load value for every frame's color attachment:
// pure green.
var clearColor = wgpu.Color{R: 0, G: 1, B: 0, A: 1}

// RenderFrame produces exactly one rendered and presented frame: it
// acquires the next swap chain texture, records a single render pass
// that clears to green and draws the three shader-generated vertices,
// submits the commands and presents.
//
// A failed acquisition (for example a lost surface) is fatal; there is
// no reconfigure-and-retry path.
func (g *Gfx) RenderFrame() error {
	view, err := g.swapChain.GetCurrentTextureView()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSurfaceAcquire, err)
	}
	defer view.Release()

	encoder, err := g.device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{
		Label: "frame_encoder",
	})
	if err != nil {
		return fmt.Errorf("gfx: create command encoder: %w", err)
	}
	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "triangle_pass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOp_Clear,
			StoreOp:    wgpu.StoreOp_Store,
			ClearValue: clearColor,
		}},
	})
	defer pass.Release()

	pass.SetPipeline(g.pipeline)
	pass.Draw(3, 1, 0, 0)
	pass.End()

	cmd, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("gfx: finish command encoder: %w", err)
	}
	defer cmd.Release()

	g.queue.Submit(cmd)
	g.swapChain.Present()

	return nil
}
