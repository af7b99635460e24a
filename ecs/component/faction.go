package component

import "fmt"

// Faction is the side an entity fights for.
type Faction uint8

const (
	FactionPlayer Faction = iota + 1
	FactionEnemy
)

// Collision layer bits.
const (
	PlayerLayer     uint32 = 1 << 0
	EnemyLayer      uint32 = 1 << 1
	ProjectileLayer uint32 = 1 << 2
)

func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "player"
	case FactionEnemy:
		return "enemy"
	default:
		return fmt.Sprintf("faction(%d)", uint8(f))
	}
}

// Layer is the collision category of the faction's vessels.
func (f Faction) Layer() uint32 {
	switch f {
	case FactionPlayer:
		return PlayerLayer
	case FactionEnemy:
		return EnemyLayer
	default:
		return 0
	}
}

// Opposing returns the layer this faction's projectiles may hit.
func (f Faction) Opposing() uint32 {
	switch f {
	case FactionPlayer:
		return EnemyLayer
	case FactionEnemy:
		return PlayerLayer
	default:
		return 0
	}
}

// CollisionLayer declares what an entity is (Layer) and what it may hit (Mask).
type CollisionLayer struct {
	Layer uint32 `yaml:"layer"`
	Mask  uint32 `yaml:"mask"`
}

// VesselLayer is the layer/mask pair of a vessel of faction f: it can only be
// struck by projectiles.
func VesselLayer(f Faction) CollisionLayer {
	return CollisionLayer{Layer: f.Layer(), Mask: ProjectileLayer}
}

// ProjectileLayerFor is the layer/mask pair stamped on a projectile fired
// with the given mask.
func ProjectileLayerFor(mask uint32) CollisionLayer {
	return CollisionLayer{Layer: ProjectileLayer, Mask: mask}
}

// Accepts reports whether an entity on layer other may be hit through this mask.
func (c CollisionLayer) Accepts(other CollisionLayer) bool {
	return c.Mask&other.Layer != 0
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()
