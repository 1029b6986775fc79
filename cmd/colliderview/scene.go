package main

import (
	"fmt"
	"image"
	_ "image/png" // PNG decoder
	"os"

	"github.com/ByteArena/box2d"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp" // BMP decoder registration

	"github.com/Faultbox/spritephys/internal/config"
	"github.com/Faultbox/spritephys/internal/logger"
	"github.com/Faultbox/spritephys/pkg/collider"
	"github.com/Faultbox/spritephys/pkg/geom"
	"github.com/Faultbox/spritephys/pkg/physics"
	"github.com/Faultbox/spritephys/pkg/pixel"
)

var (
	colorCar      = sdl.Color{R: 235, G: 64, B: 52, A: 255}
	colorTerrain  = sdl.Color{R: 52, G: 235, B: 113, A: 255}
	colorBoulder  = sdl.Color{R: 84, G: 84, B: 84, A: 255}
	colorCustom   = sdl.Color{R: 66, G: 135, B: 245, A: 255}
	colorBoulderO = sdl.Color{R: 200, G: 200, B: 200, A: 255}
)

// entity ties one rigid body to the local-space geometry drawn for it.
type entity struct {
	body    *box2d.B2Body
	pieces  []geom.Polygon // convex fixture shapes, local space
	outline geom.Polygon   // traced boundary ring, local space
	strip   []geom.Vec2    // terrain surface polyline, local space
	fill    bool
	color   sdl.Color
}

// scene is the simulated world plus everything the renderer needs.
type scene struct {
	world    *box2d.B2World
	entities []*entity
	car      *box2d.B2Body
	carStart box2d.B2Vec2
	density  float64
	extract  config.ExtractConfig
}

// buildScene loads the configured sprites, runs the extraction pipeline
// on each and spawns the matching Box2D bodies. Missing sprites are
// skipped with a warning so a partial asset set still shows something.
func buildScene(cfg *config.Config, customPNG string) (*scene, error) {
	s := &scene{
		world:   physics.NewWorld(cfg.Physics.Gravity),
		density: cfg.Physics.Density,
		extract: cfg.Extract,
	}
	opts := cfg.Extract.Options()

	if customPNG != "" {
		if err := s.spawnCustom(customPNG, opts); err != nil {
			return nil, err
		}
		return s, nil
	}

	if img, ok := loadSprite(cfg.Sprites.Car); ok {
		if err := s.spawnCar(img, opts); err != nil {
			return nil, fmt.Errorf("car: %w", err)
		}
	}
	if img, ok := loadSprite(cfg.Sprites.Terrain); ok {
		if err := s.spawnTerrain(img, opts); err != nil {
			return nil, fmt.Errorf("terrain: %w", err)
		}
	}
	if img, ok := loadSprite(cfg.Sprites.Boulders); ok {
		if err := s.spawnBoulders(img, opts); err != nil {
			return nil, fmt.Errorf("boulders: %w", err)
		}
	}
	return s, nil
}

// spawnCustom shows a user-supplied PNG as fixed multi-blob colliders.
func (s *scene) spawnCustom(path string, opts []collider.Option) error {
	img, ok := loadSprite(path)
	if !ok {
		return fmt.Errorf("cannot load %s", path)
	}
	rings, err := collider.BoundaryGroups(img, opts...)
	if err != nil {
		return err
	}
	spawned := 0
	for _, ring := range rings {
		pieces := collider.Decompose(ring, s.extract.MinPolygonArea, s.extract.MaxVertices)
		if len(pieces) == 0 {
			continue
		}
		s.entities = append(s.entities, &entity{
			body:    physics.StaticBody(s.world, pieces, 0, 0),
			pieces:  pieces,
			outline: ring,
			color:   colorCustom,
		})
		spawned++
	}
	logger.Info("custom colliders", zap.String("path", path), zap.Int("groups", spawned))
	return nil
}

// spawnCar drops a dynamic body built from the sprite's dominant blob.
func (s *scene) spawnCar(img pixel.Image, opts []collider.Option) error {
	polys, err := collider.SingleConvexCollider(img, opts...)
	if err != nil {
		return err
	}
	if len(polys) == 0 {
		return fmt.Errorf("sprite produced no collider")
	}
	s.carStart = box2d.MakeB2Vec2(-200, 2)
	s.car = physics.DynamicBody(s.world, polys, s.carStart.X, s.carStart.Y, s.density)
	s.entities = append(s.entities, &entity{
		body:   s.car,
		pieces: polys,
		color:  colorCar,
	})
	logger.Info("car collider", zap.Int("pieces", len(polys)))
	return nil
}

// spawnTerrain builds the fixed heightfield chain.
func (s *scene) spawnTerrain(img pixel.Image, opts []collider.Option) error {
	profile, err := collider.Heightfield(img, opts...)
	if err != nil {
		return err
	}
	body := physics.TerrainBody(s.world, profile, 0, 0)
	s.entities = append(s.entities, &entity{
		body:  body,
		strip: profile.WorldPoints(),
		color: colorTerrain,
	})
	logger.Info("terrain heightfield", zap.Int("samples", len(profile.Samples)))
	return nil
}

// spawnBoulders turns each blob into its own dynamic body, with the
// traced outline kept for filled rendering. Rings are decomposed here
// rather than through MultiConvexColliders so each outline stays paired
// with the body built from it even when a ring decomposes to nothing.
func (s *scene) spawnBoulders(img pixel.Image, opts []collider.Option) error {
	rings, err := collider.BoundaryGroups(img, opts...)
	if err != nil {
		return err
	}
	spawned := 0
	for _, ring := range rings {
		pieces := collider.Decompose(ring, s.extract.MinPolygonArea, s.extract.MaxVertices)
		if len(pieces) == 0 {
			continue
		}
		s.entities = append(s.entities, &entity{
			body:    physics.DynamicBody(s.world, pieces, 0, 40, s.density),
			pieces:  pieces,
			outline: ring,
			fill:    true,
			color:   colorBoulder,
		})
		spawned++
	}
	logger.Info("boulder colliders", zap.Int("bodies", spawned))
	return nil
}

// loadSprite decodes one image into an alpha grid. A missing or broken
// file demotes to a warning; the scene builder skips the role.
func loadSprite(path string) (*pixel.Grid, bool) {
	if path == "" {
		return nil, false
	}
	f, err := os.Open(path)
	if err != nil {
		logger.Warn("skipping sprite", zap.String("path", path), zap.Error(err))
		return nil, false
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		logger.Warn("skipping undecodable sprite", zap.String("path", path), zap.Error(err))
		return nil, false
	}
	return pixel.FromImage(img), true
}
