package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/motioncore/common"
	"github.com/milk9111/motioncore/ecs"
	"github.com/milk9111/motioncore/ecs/component"
	"golang.org/x/image/colornames"
)

const (
	debugCircleSegments = 24
	debugDotSize        = 0.1
	// world origin sits this many pixels above the bottom edge
	groundMargin = 32
)

// spaceDrawer renders a y-up Chipmunk space onto a y-down screen.
type spaceDrawer struct {
	screen *ebiten.Image
}

func drawSpace(space *cp.Space, screen *ebiten.Image) {
	if space == nil || screen == nil {
		return
	}
	cp.DrawSpace(space, &spaceDrawer{screen: screen})
}

func (d *spaceDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		return
	}
	d.drawPolygon(circlePoints(pos, radius), outline)
	end := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.drawLine(pos, end, outline)
}

func (d *spaceDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *spaceDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, outline)
	if radius > 0 {
		d.drawPolygon(circlePoints(a, radius), outline)
		d.drawPolygon(circlePoints(b, radius), outline)
	}
}

func (d *spaceDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], fill)
}

func (d *spaceDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	half := debugDotSize / 2
	d.drawLine(cp.Vector{X: pos.X - half, Y: pos.Y}, cp.Vector{X: pos.X + half, Y: pos.Y}, fill)
	d.drawLine(cp.Vector{X: pos.X, Y: pos.Y - half}, cp.Vector{X: pos.X, Y: pos.Y + half}, fill)
}

func (d *spaceDrawer) Flags() uint {
	return cp.DRAW_SHAPES | cp.DRAW_COLLISION_POINTS
}

func (d *spaceDrawer) OutlineColor() cp.FColor {
	return toFColor(colornames.Lightgray)
}

// ShapeColor tints shapes by collision category.
func (d *spaceDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	switch category := shape.Filter.Categories; {
	case category&component.CategoryPlayer != 0:
		return toFColor(colornames.Deepskyblue)
	case category&component.CategoryCrate != 0:
		return toFColor(colornames.Sandybrown)
	case category&component.CategoryHazard != 0:
		return toFColor(colornames.Crimson)
	default:
		return toFColor(colornames.Limegreen)
	}
}

func (d *spaceDrawer) ConstraintColor() cp.FColor {
	return toFColor(colornames.Orange)
}

func (d *spaceDrawer) CollisionPointColor() cp.FColor {
	return toFColor(colornames.Red)
}

func (d *spaceDrawer) Data() interface{} {
	return nil
}

func (d *spaceDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	x1, y1 := toScreen(a)
	x2, y2 := toScreen(b)
	ebitenutil.DrawLine(d.screen, x1, y1, x2, y2, toNRGBA(c))
}

func (d *spaceDrawer) drawPolygon(verts []cp.Vector, c cp.FColor) {
	for i := range verts {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], c)
	}
}

func circlePoints(center cp.Vector, radius float64) []cp.Vector {
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		points = append(points, cp.Vector{X: center.X + math.Cos(t)*radius, Y: center.Y + math.Sin(t)*radius})
	}
	return points
}

// drawProbe outlines the box the player's ground sensor queried last tick.
func drawProbe(w *ecs.World, screen *ebiten.Image) {
	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	mc, ok := ecs.Get(w, player, component.MotionComponent)
	if !ok || mc.Controller == nil {
		return
	}
	bb := mc.Controller.Probe()
	c := colornames.Yellow
	if mc.Last.Grounded {
		c = colornames.Lime
	}
	corners := []cp.Vector{{X: bb.L, Y: bb.B}, {X: bb.R, Y: bb.B}, {X: bb.R, Y: bb.T}, {X: bb.L, Y: bb.T}}
	d := &spaceDrawer{screen: screen}
	d.drawPolygon(corners, toFColor(c))
}

func drawMotionState(w *ecs.World, screen *ebiten.Image) {
	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	mc, ok := ecs.Get(w, player, component.MotionComponent)
	if !ok || mc.Controller == nil {
		return
	}
	s := mc.Controller.Snapshot()
	text := fmt.Sprintf("State: %s (prev %s)\nFacing: %s\nGrounded: %v\nVelocity: %.2f, %.2f\nJumps: %d chain=%v\nMagnet: %s",
		s.State, s.PreviousState, s.Facing, s.Grounded, s.Velocity.X, s.Velocity.Y, s.RemainingJumps, s.ChainActive, s.Magnet)
	ebitenutil.DebugPrintAt(screen, text, 10, 10)
}

func toScreen(v cp.Vector) (float64, float64) {
	return v.X * common.PixelsPerUnit, common.BaseHeight - groundMargin - v.Y*common.PixelsPerUnit
}

func toFColor(c color.RGBA) cp.FColor {
	return cp.FColor{R: float32(c.R) / 255, G: float32(c.G) / 255, B: float32(c.B) / 255, A: float32(c.A) / 255}
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
