// Package physics builds Box2D bodies from extracted collider geometry.
// It is the bridge between the pure extraction pipeline and the rigid-body
// engine: polygon sets become fixtures on a body, heightfield profiles
// become chain shapes.
package physics

import (
	"github.com/ByteArena/box2d"

	"github.com/Faultbox/spritephys/pkg/collider"
	"github.com/Faultbox/spritephys/pkg/geom"
)

// NewWorld creates a Box2D world with the given downward gravity
// (negative pulls toward -y, matching the centered y-up world space).
func NewWorld(gravityY float64) *box2d.B2World {
	world := box2d.MakeB2World(box2d.MakeB2Vec2(0, gravityY))
	return &world
}

// StaticBody creates a fixed body at the given position with one fixture
// per convex piece. Used for level geometry that never moves.
func StaticBody(world *box2d.B2World, polys []geom.Polygon, x, y float64) *box2d.B2Body {
	def := box2d.MakeB2BodyDef()
	def.Type = box2d.B2BodyType.B2_staticBody
	def.Position.Set(x, y)
	body := world.CreateBody(&def)
	attachPolygons(body, polys, 0)
	return body
}

// DynamicBody creates a simulated body at the given position with one
// fixture per convex piece, all sharing one density.
func DynamicBody(world *box2d.B2World, polys []geom.Polygon, x, y, density float64) *box2d.B2Body {
	def := box2d.MakeB2BodyDef()
	def.Type = box2d.B2BodyType.B2_dynamicBody
	def.Position.Set(x, y)
	body := world.CreateBody(&def)
	attachPolygons(body, polys, density)
	return body
}

// TerrainBody creates a fixed body whose surface is the heightfield
// profile as a chain shape. Profiles narrower than 2 columns produce a
// body with no fixture.
func TerrainBody(world *box2d.B2World, profile *collider.Profile, x, y float64) *box2d.B2Body {
	def := box2d.MakeB2BodyDef()
	def.Type = box2d.B2BodyType.B2_staticBody
	def.Position.Set(x, y)
	body := world.CreateBody(&def)

	pts := profile.WorldPoints()
	if len(pts) < 2 {
		return body
	}
	verts := make([]box2d.B2Vec2, len(pts))
	for i, p := range pts {
		verts[i] = box2d.MakeB2Vec2(p.X, p.Y)
	}
	chain := box2d.MakeB2ChainShape()
	chain.CreateChain(verts, len(verts))
	body.CreateFixture(&chain, 0)
	return body
}

// attachPolygons adds one polygon fixture per convex piece. Pieces wider
// than Box2D's vertex limit are fan-split first; a fan over a convex ring
// yields convex parts, so the extraction pipeline's convex pass-through
// stays intact while every fixture satisfies the engine limit.
func attachPolygons(body *box2d.B2Body, polys []geom.Polygon, density float64) {
	for _, poly := range polys {
		for _, piece := range splitForFixture(poly) {
			verts := make([]box2d.B2Vec2, len(piece))
			for i, p := range piece {
				verts[i] = box2d.MakeB2Vec2(p.X, p.Y)
			}
			shape := box2d.MakeB2PolygonShape()
			shape.Set(verts, len(verts))
			body.CreateFixture(&shape, density)
		}
	}
}

// splitForFixture fans a convex polygon into pieces of at most
// B2_maxPolygonVertices vertices. Polygons already within the limit come
// back untouched.
func splitForFixture(p geom.Polygon) []geom.Polygon {
	limit := box2d.B2_maxPolygonVertices
	if len(p) <= limit {
		return []geom.Polygon{p}
	}
	var out []geom.Polygon
	anchor := p[0]
	for start := 1; start < len(p)-1; start += limit - 2 {
		end := start + limit - 1
		if end > len(p) {
			end = len(p)
		}
		piece := make(geom.Polygon, 0, limit)
		piece = append(piece, anchor)
		piece = append(piece, p[start:end]...)
		if len(piece) >= 3 {
			out = append(out, piece)
		}
	}
	return out
}
