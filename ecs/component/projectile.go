package component

import "fmt"

type ProjectileType uint8

const (
	ProjectileNone ProjectileType = iota
	ProjectileCannon
	ProjectileRocket
	ProjectileMediumRocket
)

func (p ProjectileType) String() string {
	switch p {
	case ProjectileNone:
		return "none"
	case ProjectileCannon:
		return "cannon"
	case ProjectileRocket:
		return "rocket"
	case ProjectileMediumRocket:
		return "medium_rocket"
	default:
		return fmt.Sprintf("projectile(%d)", uint8(p))
	}
}

// Explodes reports whether a despawn of this type leaves an explosion.
func (p ProjectileType) Explodes() bool {
	return p == ProjectileRocket || p == ProjectileMediumRocket
}

// Projectile is a fired shot. Type, Origin and Damage never change after
// spawn; Disabled is one-way.
type Projectile struct {
	Type   ProjectileType
	Origin uint64
	Damage float64
	Speed  float64

	// inherited source velocity, added to Speed along the heading
	InheritedX float64
	InheritedY float64

	AngularRate float64
	Spray       float64

	Lifetime  Timer
	Disabled  bool
	SpawnTick uint64
}

var ProjectileComponent = NewComponent[Projectile]()

type DespawnReason uint8

const (
	DespawnExpired DespawnReason = iota + 1
	DespawnHit
)

func (r DespawnReason) String() string {
	switch r {
	case DespawnExpired:
		return "expired"
	case DespawnHit:
		return "hit"
	default:
		return "unknown"
	}
}

// Despawning marks a projectile disabled by collision so the despawn pass
// reports it as a hit rather than an expiry.
type Despawning struct {
	Reason DespawnReason
}

var DespawningComponent = NewComponent[Despawning]()
