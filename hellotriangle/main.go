package main

import (
	"log"
	"os"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/gpusamples/d3d12hello/assets"
	"github.com/gpusamples/d3d12hello/d3d"
	"github.com/gpusamples/d3d12hello/renderer"
	"github.com/veandco/go-sdl2/sdl"
)

// sdlWindow hands the renderer the native handle resolved when the window
// was created. ClientSize is the client area in pixels, which differs from
// SDL's logical window size when DPI scaling is active.
type sdlWindow struct {
	window *sdl.Window
	hwnd   uintptr
}

func (w *sdlWindow) Handle() uintptr {
	return w.hwnd
}

func (w *sdlWindow) ClientSize() (width, height int32) {
	width, height, err := d3d.ClientSize(w.hwnd)
	if err != nil {
		log.Printf("reading client size: %v", err)
		return w.window.GetSize()
	}
	return width, height
}

type HelloTriangleApplication struct {
	cfg      renderer.Config
	window   *sdlWindow
	driver   d3d.Driver
	renderer *renderer.Renderer
}

func (app *HelloTriangleApplication) Run() error {
	defer app.cleanup()

	err := app.initWindow()
	if err != nil {
		return err
	}

	err = app.initD3D()
	if err != nil {
		return err
	}

	return app.mainLoop()
}

func (app *HelloTriangleApplication) initWindow() error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}

	window, err := sdl.CreateWindow(app.cfg.Title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, app.cfg.Width, app.cfg.Height, sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return err
	}
	app.window = &sdlWindow{window: window}

	info, err := window.GetWMInfo()
	if err != nil {
		return err
	}
	if info.Subsystem != sdl.SYSWM_WINDOWS {
		return errors.Newf("window subsystem %d is not Win32", info.Subsystem)
	}
	app.window.hwnd = uintptr(info.GetWindowsInfo().Window)

	return nil
}

func (app *HelloTriangleApplication) initD3D() error {
	var err error
	app.driver, err = d3d.Load()
	if err != nil {
		return err
	}

	a, err := assets.Load()
	if err != nil {
		return err
	}

	app.renderer, err = renderer.New(app.driver, app.window, app.cfg, a)
	return err
}

func (app *HelloTriangleApplication) mainLoop() error {
appLoop:
	for true {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				break appLoop
			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
					app.renderer.RequestResize()
				}
			}
		}

		err := app.renderer.Frame()
		if err != nil {
			return err
		}
	}

	return nil
}

func (app *HelloTriangleApplication) cleanup() {
	if app.renderer != nil {
		app.renderer.Release()
	}
	if app.window != nil {
		app.window.window.Destroy()
	}
	sdl.Quit()
}

func main() {
	runtime.LockOSThread()

	cfg, showHelp, err := renderer.ProcessCommandLineArgs(os.Args[1:])
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
	if showHelp {
		renderer.Usage(os.Stdout)
		return
	}

	app := &HelloTriangleApplication{cfg: cfg}
	err = app.Run()
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
}
