package main

import (
	"fmt"
	"math"

	"github.com/ByteArena/box2d"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/spritephys/internal/config"
	"github.com/Faultbox/spritephys/pkg/geom"
)

const (
	timeStep      = 1.0 / 60
	velocityIters = 8
	positionIters = 3
	panSpeed      = 10.0
	zoomStep      = 0.01
	carSpeed      = 120.0
)

// app owns the SDL window and the camera.
type app struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	width    int32
	height   int32
	vsync    bool

	camX, camY float64
	zoom       float64
}

func newApp(cfg config.WindowConfig) (*app, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	window, err := sdl.CreateWindow(
		"colliderview",
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	flags := uint32(sdl.RENDERER_ACCELERATED)
	if cfg.VSync {
		flags |= sdl.RENDERER_PRESENTVSYNC
	}
	renderer, err := sdl.CreateRenderer(window, -1, flags)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateRenderer failed: %w", err)
	}

	return &app{
		window:   window,
		renderer: renderer,
		width:    int32(cfg.Width),
		height:   int32(cfg.Height),
		vsync:    cfg.VSync,
		zoom:     1,
	}, nil
}

func (a *app) close() {
	if a.renderer != nil {
		a.renderer.Destroy()
	}
	if a.window != nil {
		a.window.Destroy()
	}
	sdl.Quit()
}

// run steps the simulation and redraws until the window closes.
func (a *app) run(s *scene) {
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return
			case *sdl.KeyboardEvent:
				if e.Type != sdl.KEYDOWN {
					continue
				}
				switch e.Keysym.Sym {
				case sdl.K_ESCAPE:
					return
				case sdl.K_1:
					if s.car != nil {
						s.car.SetTransform(s.carStart, 0)
						s.car.SetLinearVelocity(box2d.MakeB2Vec2(0, 0))
						s.car.SetAngularVelocity(0)
					}
				}
			}
		}

		a.handleHeldKeys(s)
		s.world.Step(timeStep, velocityIters, positionIters)
		a.draw(s)

		if !a.vsync {
			sdl.Delay(16)
		}
	}
}

func (a *app) handleHeldKeys(s *scene) {
	keys := sdl.GetKeyboardState()
	if keys[sdl.SCANCODE_LEFT] != 0 {
		a.camX -= panSpeed / a.zoom
	}
	if keys[sdl.SCANCODE_RIGHT] != 0 {
		a.camX += panSpeed / a.zoom
	}
	if keys[sdl.SCANCODE_UP] != 0 {
		a.camY += panSpeed / a.zoom
	}
	if keys[sdl.SCANCODE_DOWN] != 0 {
		a.camY -= panSpeed / a.zoom
	}
	if keys[sdl.SCANCODE_W] != 0 {
		a.zoom += zoomStep
	}
	if keys[sdl.SCANCODE_S] != 0 && a.zoom > zoomStep*2 {
		a.zoom -= zoomStep
	}

	if s.car != nil {
		vel := s.car.GetLinearVelocity()
		if keys[sdl.SCANCODE_D] != 0 {
			s.car.SetLinearVelocity(box2d.MakeB2Vec2(carSpeed, vel.Y))
		}
		if keys[sdl.SCANCODE_A] != 0 {
			s.car.SetLinearVelocity(box2d.MakeB2Vec2(-carSpeed, vel.Y))
		}
	}
}

func (a *app) draw(s *scene) {
	a.renderer.SetDrawColor(0, 0, 0, 255)
	a.renderer.Clear()

	for _, e := range s.entities {
		pos := e.body.GetPosition()
		angle := e.body.GetAngle()

		if e.fill && len(e.outline) > 0 {
			// Filled look comes from the convex fixture pieces; the traced
			// outline is drawn on top.
			for _, piece := range e.pieces {
				a.fillConvex(a.toScreen(piece, pos, angle), e.color)
			}
			a.drawLoop(a.toScreen(e.outline, pos, angle), colorBoulderO)
			continue
		}

		for _, piece := range e.pieces {
			a.drawLoop(a.toScreen(piece, pos, angle), e.color)
		}
		if len(e.outline) > 0 {
			a.drawLoop(a.toScreen(e.outline, pos, angle), e.color)
		}
		if len(e.strip) > 0 {
			a.drawStrip(a.toScreen(e.strip, pos, angle), e.color)
		}
	}

	a.renderer.Present()
}

// toScreen maps body-local points through the body transform, the camera
// and the y-flip to window coordinates.
func (a *app) toScreen(pts []geom.Vec2, pos box2d.B2Vec2, angle float64) []sdl.FPoint {
	sin, cos := math.Sincos(angle)
	out := make([]sdl.FPoint, len(pts))
	for i, p := range pts {
		wx := pos.X + p.X*cos - p.Y*sin
		wy := pos.Y + p.X*sin + p.Y*cos
		out[i] = sdl.FPoint{
			X: float32((wx-a.camX)*a.zoom) + float32(a.width)/2,
			Y: float32(a.height)/2 - float32((wy-a.camY)*a.zoom),
		}
	}
	return out
}

func (a *app) drawLoop(pts []sdl.FPoint, c sdl.Color) {
	if len(pts) < 2 {
		return
	}
	closed := append(pts, pts[0])
	a.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	a.renderer.DrawLinesF(closed)
}

func (a *app) drawStrip(pts []sdl.FPoint, c sdl.Color) {
	if len(pts) < 2 {
		return
	}
	a.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	a.renderer.DrawLinesF(pts)
}

// fillConvex renders a convex polygon as a triangle fan.
func (a *app) fillConvex(pts []sdl.FPoint, c sdl.Color) {
	if len(pts) < 3 {
		return
	}
	verts := make([]sdl.Vertex, 0, (len(pts)-2)*3)
	for i := 1; i < len(pts)-1; i++ {
		verts = append(verts,
			sdl.Vertex{Position: pts[0], Color: c},
			sdl.Vertex{Position: pts[i], Color: c},
			sdl.Vertex{Position: pts[i+1], Color: c},
		)
	}
	a.renderer.RenderGeometry(nil, verts, nil)
}
