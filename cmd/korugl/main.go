// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"sync/atomic"
	"time"

	"github.com/devblok/korugl/core"
	"github.com/devblok/korugl/driver"
	"github.com/devblok/korugl/driver/glcore"
	"github.com/devblok/korugl/model"
	"github.com/devblok/korugl/render"
	"github.com/devblok/korugl/resources"
	glm "github.com/go-gl/mathgl/mgl32"
	"github.com/gobuffalo/packr"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	runtime.LockOSThread()
}

var frameCounter int64

// Profiling
var (
	cpuProfile   = flag.String("cpuprof", "", "Profile CPU usage to file")
	memProfile   = flag.String("memprof", "", "Profile memory usage into a file")
	traceProfile = flag.String("trace", "", "Trace output for profiling")
)

var (
	envFile = flag.String("env", ".env", "Dotenv file with KORUGL_* settings")
	scene   = flag.String("scene", "", "Scene to draw, overrides KORUGL_SCENE")
)

func newWindow(cfg core.WindowConfiguration) (*sdl.Window, sdl.GLContext) {
	for attr, value := range map[sdl.GLattr]int{
		sdl.GL_CONTEXT_MAJOR_VERSION: 4,
		sdl.GL_CONTEXT_MINOR_VERSION: 1,
		sdl.GL_CONTEXT_PROFILE_MASK:  sdl.GL_CONTEXT_PROFILE_CORE,
		sdl.GL_DOUBLEBUFFER:          1,
	} {
		if err := sdl.GLSetAttribute(attr, value); err != nil {
			log.Fatal(err)
		}
	}

	flags := uint32(sdl.WINDOW_OPENGL)
	if cfg.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	window, err := sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags)
	if err != nil {
		log.Fatal(err)
	}
	glContext, err := window.GLCreateContext()
	if err != nil {
		log.Fatal(err)
	}
	return window, glContext
}

func newLoader(cfg core.ResourcesConfiguration) *resources.Loader {
	loader, err := resources.FromRelativeExePath(cfg.Assets)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Archive != "" {
		archive, err := resources.OpenArchive(cfg.Archive)
		if err != nil {
			log.Fatal(err)
		}
		loader.Append(archive)
	}
	// Assets next to the sources, for go run and packr builds.
	loader.Append(resources.BoxSource{Box: packr.NewBox("../../assets")})
	return loader
}

func main() {
	flag.Parse()

	configuration, err := core.LoadConfiguration(*envFile)
	if err != nil {
		log.Fatal(err)
	}
	if *scene != "" {
		configuration.Renderer.Scene = *scene
	}
	log.SetLevel(configuration.LogLevel)

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	if *traceProfile != "" {
		f, err := os.Create(*traceProfile)
		if err != nil {
			log.Fatal(err)
		}
		if err := trace.Start(f); err != nil {
			log.Fatal(err)
		}
		defer trace.Stop()
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		log.Fatal(err)
	}
	defer sdl.Quit()

	window, glContext := newWindow(configuration.Window)
	defer window.Destroy()
	defer sdl.GLDeleteContext(glContext)

	gl, err := glcore.New(sdl.GLGetProcAddress)
	if err != nil {
		log.Fatal(err)
	}

	viewport := render.ViewportForSize(configuration.Window.Width, configuration.Window.Height)
	viewport.SetUsed(gl)
	colorBuffer := render.ColorBufferFromColor(configuration.Renderer.ClearColor)
	colorBuffer.SetUsed(gl)

	units := render.NewUnitAllocator(configuration.Renderer.TextureUnits)
	current, err := model.New(configuration.Renderer.Scene, gl, newLoader(configuration.Resources), units)
	if err != nil {
		log.Fatal(err)
	}
	defer current.Release()
	log.WithField("scene", configuration.Renderer.Scene).Info("scene loaded")

	timeService := core.NewTime(configuration.Time)
	defer timeService.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	programSync := sync.WaitGroup{}

	/* Frame counter loop */
	programSync.Add(1)
	go func(ctx context.Context, wg *sync.WaitGroup) {
		defer wg.Done()
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				log.WithFields(log.Fields{
					"frames":    atomic.SwapInt64(&frameCounter, 0),
					"cgo_calls": runtime.NumCgoCall(),
				}).Debug("frame count")
			}
		}
	}(ctx, &programSync)

	/* Render and event loop, both bound to the context thread */
EventLoop:
	for {
		select {
		case <-ctx.Done():
			log.Info("Event loop exited")
			break EventLoop
		case <-timeService.EventTicker().C:
			for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
				switch et := event.(type) {
				case *sdl.KeyboardEvent:
					if et.Keysym.Sym == sdl.K_ESCAPE {
						cancel()
					}
				case *sdl.QuitEvent:
					cancel()
				case *sdl.WindowEvent:
					if et.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
						viewport.UpdateSize(int(et.Data1), int(et.Data2))
						viewport.SetUsed(gl)
					}
				}
			}
		case <-timeService.FpsTicker().C:
			if square, ok := current.(*model.Square); ok {
				angle := float32(timeService.Elapsed().Seconds())
				square.SetRotation(glm.HomogRotate3DZ(angle))
			}
			colorBuffer.Clear(gl)
			current.Render()
			if e := gl.GetError(); e != driver.NO_ERROR {
				log.WithField("error", e).Warn("OpenGL error")
			}
			window.GLSwap()
			atomic.AddInt64(&frameCounter, 1)
		}
	}

	cancel()
	programSync.Wait()

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatal(err)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal(err)
		}
	}
}
