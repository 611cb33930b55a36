// Command hello-triangle opens a 1280x720 native window and draws a
// single hardcoded triangle with WebGPU until the window is closed.
//
// The main goroutine owns the GLFW poll loop; a second goroutine runs
// the state machine that builds the GPU context and renders frames.
// The two communicate only through the unbounded event queue.
package main

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/paulfrische/wgpu-hello-triangle/internal/app"
	"github.com/paulfrische/wgpu-hello-triangle/internal/gfx"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	windowTitle  = "hello-triangle"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("hello-triangle: %v", err)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	// WebGPU owns the surface; GLFW must not attach a GL context.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	queue := app.NewQueue()
	bridge := app.NewBridge(queue)
	state := app.NewState(queue, newRenderer)

	done := make(chan error, 1)
	go func() {
		done <- state.Run()
	}()

	window.SetCloseCallback(func(*glfw.Window) {
		bridge.CloseRequested()
	})
	window.SetRefreshCallback(func(*glfw.Window) {
		bridge.RedrawRequested()
	})

	bridge.WindowReady(window)

	for !window.ShouldClose() {
		glfw.PollEvents()
	}

	queue.Close()
	if err := <-done; err != nil {
		return err
	}
	log.Println("hello-triangle: clean shutdown")
	return nil
}

// newRenderer builds the graphics context for the window the event
// bridge reported. The state machine calls it exactly once.
func newRenderer(w app.WindowHandle) (app.Renderer, error) {
	window, ok := w.(*glfw.Window)
	if !ok {
		return nil, fmt.Errorf("unexpected window handle type %T", w)
	}
	return gfx.New(window)
}
