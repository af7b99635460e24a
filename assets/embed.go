package assets

import (
	"fmt"
	"sort"
	"strings"
)

// Handle is an opaque reference to a loaded visual. The combat core copies
// handles into sprites without interpreting them.
type Handle uint32

// Kind names a visual the combat core asks for.
type Kind string

const (
	KindPlayerShip   Kind = "player_ship"
	KindEnemyStation Kind = "enemy_station"
	KindCannonTurret Kind = "cannon_turret"
	KindRocketTurret Kind = "rocket_turret"
	KindMediumTurret Kind = "medium_rocket_turret"
	KindCannonShot   Kind = "cannon_shot"
	KindRocket       Kind = "rocket"
	KindMediumRocket Kind = "medium_rocket"
	KindExplosion    Kind = "explosion"
	KindHealthBar    Kind = "health_bar"
)

// Sheet describes the frames behind a handle.
type Sheet struct {
	Kind   Kind
	Frames int
	FrameW int
	FrameH int
}

// Catalog maps visual kinds to handles.
type Catalog struct {
	handles map[Kind]Handle
	sheets  []Sheet
}

// DefaultCatalog registers every kind the combat core uses. Frame counts
// match the sprite sheets the demo draws.
func DefaultCatalog() *Catalog {
	c := &Catalog{}
	c.Register(Sheet{Kind: KindPlayerShip, Frames: 1, FrameW: 64, FrameH: 96})
	c.Register(Sheet{Kind: KindEnemyStation, Frames: 1, FrameW: 128, FrameH: 128})
	c.Register(Sheet{Kind: KindCannonTurret, Frames: 1, FrameW: 16, FrameH: 24})
	c.Register(Sheet{Kind: KindRocketTurret, Frames: 1, FrameW: 20, FrameH: 24})
	c.Register(Sheet{Kind: KindMediumTurret, Frames: 1, FrameW: 24, FrameH: 28})
	c.Register(Sheet{Kind: KindCannonShot, Frames: 4, FrameW: 6, FrameH: 12})
	c.Register(Sheet{Kind: KindRocket, Frames: 1, FrameW: 8, FrameH: 14})
	c.Register(Sheet{Kind: KindMediumRocket, Frames: 1, FrameW: 10, FrameH: 16})
	c.Register(Sheet{Kind: KindExplosion, Frames: 8, FrameW: 16, FrameH: 16})
	c.Register(Sheet{Kind: KindHealthBar, Frames: 1, FrameW: 1, FrameH: 1})
	return c
}

// Register adds or replaces a sheet and returns its handle.
func (c *Catalog) Register(s Sheet) Handle {
	if c.handles == nil {
		c.handles = make(map[Kind]Handle)
	}
	if s.Frames <= 0 {
		s.Frames = 1
	}
	if h, ok := c.handles[s.Kind]; ok {
		c.sheets[h-1] = s
		return h
	}
	c.sheets = append(c.sheets, s)
	h := Handle(len(c.sheets))
	c.handles[s.Kind] = h
	return h
}

// Handle returns the handle for kind, or zero when it was never registered.
func (c *Catalog) Handle(kind Kind) Handle {
	if c == nil {
		return 0
	}
	return c.handles[kind]
}

// Sheet resolves a handle back to its frames.
func (c *Catalog) Sheet(h Handle) (Sheet, error) {
	if c == nil || h == 0 || int(h) > len(c.sheets) {
		return Sheet{}, fmt.Errorf("assets: unknown handle %d", h)
	}
	return c.sheets[h-1], nil
}

// Kinds lists registered kinds in name order.
func (c *Catalog) Kinds() []Kind {
	out := make([]Kind, 0, len(c.handles))
	for k := range c.handles {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return strings.Compare(string(out[i]), string(out[j])) < 0 })
	return out
}
