package main

import (
	"image"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/broadside/assets"
	"github.com/milk9111/broadside/common"
	"github.com/milk9111/broadside/ecs"
	"github.com/milk9111/broadside/ecs/component"
	"golang.org/x/image/colornames"
)

var kindColors = map[assets.Kind]color.RGBA{
	assets.KindPlayerShip:   colornames.Steelblue,
	assets.KindEnemyStation: colornames.Firebrick,
	assets.KindCannonTurret: colornames.Lightsteelblue,
	assets.KindRocketTurret: colornames.Slategray,
	assets.KindMediumTurret: colornames.Darkred,
	assets.KindCannonShot:   colornames.Gold,
	assets.KindRocket:       colornames.Orange,
	assets.KindMediumRocket: colornames.Orangered,
	assets.KindExplosion:    colornames.Yellow,
	assets.KindHealthBar:    colornames.Limegreen,
}

// Renderer draws sprites as flat placeholder sheets built from the catalog.
type Renderer struct {
	catalog *assets.Catalog
	sheets  map[assets.Handle]*ebiten.Image
}

func NewRenderer(catalog *assets.Catalog) *Renderer {
	if catalog == nil {
		catalog = assets.DefaultCatalog()
	}
	return &Renderer{catalog: catalog, sheets: make(map[assets.Handle]*ebiten.Image)}
}

func (r *Renderer) Draw(w *ecs.World, cam *Camera, screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		ti, _ := ecs.Get(w, entities[i], component.TransformComponent.Kind())
		tj, _ := ecs.Get(w, entities[j], component.TransformComponent.Kind())
		if ti.Z != tj.Z {
			return ti.Z < tj.Z
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	zoom := cam.Zoom()
	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())

		if bar, ok := ecs.Get(w, e, component.HealthBarComponent.Kind()); ok {
			r.drawHealthBar(cam, screen, t, bar)
			continue
		}

		img, sheet, ok := r.frame(s)
		if !ok {
			continue
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-(float64(sheet.FrameW)/2 + s.OriginX), -(float64(sheet.FrameH)/2 + s.OriginY))
		sx, sy := t.ScaleX, t.ScaleY
		if sx == 0 {
			sx = 1
		}
		if sy == 0 {
			sy = 1
		}
		op.GeoM.Scale(sx*zoom, sy*zoom)
		op.GeoM.Rotate(t.Rotation)
		x, y := cam.WorldToScreen(t.X, t.Y)
		op.GeoM.Translate(x, y)
		screen.DrawImage(img, op)
	}
}

func (r *Renderer) drawHealthBar(cam *Camera, screen *ebiten.Image, t *component.Transform, bar *component.HealthBar) {
	if !bar.Visible {
		return
	}
	zoom := cam.Zoom()
	x, y := cam.WorldToScreen(t.X, t.Y)
	w, h := float32(bar.Width*zoom), float32(bar.Height*zoom)
	vector.FillRect(screen, float32(x), float32(y), w, h, colornames.Darkslategray, false)
	vector.FillRect(screen, float32(x), float32(y), w*float32(bar.Fill), h, colornames.Limegreen, false)
	vector.StrokeRect(screen, float32(x), float32(y), w, h, 1, colornames.Black, false)
}

// DrawColliders outlines every capsule the physics world knows about.
func (r *Renderer) DrawColliders(w *ecs.World, cam *Camera, screen *ebiten.Image) {
	zoom := cam.Zoom()
	ecs.ForEach2(w, component.ColliderComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, c *component.Collider, t *component.Transform) {
		sc := c.Scaled()
		a := t.Local(common.V(sc.AX, sc.AY))
		b := t.Local(common.V(sc.BX, sc.BY))
		ax, ay := cam.WorldToScreen(a.X, a.Y)
		bx, by := cam.WorldToScreen(b.X, b.Y)
		radius := float32(sc.Radius * zoom)
		vector.StrokeCircle(screen, float32(ax), float32(ay), radius, 1, colornames.Lime, true)
		vector.StrokeCircle(screen, float32(bx), float32(by), radius, 1, colornames.Lime, true)
		vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), 1, colornames.Lime, true)
	})
}

func (r *Renderer) frame(s *component.Sprite) (*ebiten.Image, assets.Sheet, bool) {
	sheet, err := r.catalog.Sheet(s.Handle)
	if err != nil || sheet.FrameW <= 0 || sheet.FrameH <= 0 {
		return nil, assets.Sheet{}, false
	}

	img, ok := r.sheets[s.Handle]
	if !ok {
		img = buildSheet(sheet)
		r.sheets[s.Handle] = img
	}

	frames := max(sheet.Frames, 1)
	i := s.Frame % frames
	if i < 0 {
		i += frames
	}
	rect := image.Rect(i*sheet.FrameW, 0, (i+1)*sheet.FrameW, sheet.FrameH)
	sub, ok := img.SubImage(rect).(*ebiten.Image)
	if !ok {
		return nil, assets.Sheet{}, false
	}
	return sub, sheet, true
}

// buildSheet lays out one flat frame per sheet frame, dimming as the
// animation advances.
func buildSheet(sheet assets.Sheet) *ebiten.Image {
	frames := max(sheet.Frames, 1)
	img := ebiten.NewImage(sheet.FrameW*frames, sheet.FrameH)
	base, ok := kindColors[sheet.Kind]
	if !ok {
		base = colornames.White
	}
	for i := range frames {
		k := 1 - 0.5*float64(i)/float64(frames)
		c := color.RGBA{R: uint8(float64(base.R) * k), G: uint8(float64(base.G) * k), B: uint8(float64(base.B) * k), A: 255}
		vector.FillRect(img, float32(i*sheet.FrameW), 0, float32(sheet.FrameW), float32(sheet.FrameH), c, false)
	}
	return img
}
