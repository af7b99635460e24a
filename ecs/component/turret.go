package component

import (
	"fmt"
	"strings"
)

// TurretType is the weapon carried by a mount.
type TurretType uint8

const (
	TurretNone TurretType = iota
	TurretCannon
	TurretRocket
	TurretMediumRocket
)

func (t TurretType) String() string {
	switch t {
	case TurretNone:
		return "none"
	case TurretCannon:
		return "cannon"
	case TurretRocket:
		return "rocket"
	case TurretMediumRocket:
		return "medium_rocket"
	default:
		return fmt.Sprintf("turret(%d)", uint8(t))
	}
}

// ParseTurretType accepts the names used in prefab files. An empty string
// or "none" is an empty mount.
func ParseTurretType(s string) (TurretType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "-":
		return TurretNone, nil
	case "cannon":
		return TurretCannon, nil
	case "rocket":
		return TurretRocket, nil
	case "medium_rocket", "mediumrocket", "medium-rocket":
		return TurretMediumRocket, nil
	default:
		return TurretNone, fmt.Errorf("unknown turret type %q", s)
	}
}

func (t TurretType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TurretType) UnmarshalText(b []byte) error {
	v, err := ParseTurretType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ProjectileType maps one-to-one onto the turret that fires it.
func (t TurretType) ProjectileType() ProjectileType {
	switch t {
	case TurretCannon:
		return ProjectileCannon
	case TurretRocket:
		return ProjectileRocket
	case TurretMediumRocket:
		return ProjectileMediumRocket
	default:
		return ProjectileNone
	}
}

type CooldownState uint8

const (
	CooldownReady CooldownState = iota
	CooldownCoolingDown
)

func (s CooldownState) String() string {
	if s == CooldownReady {
		return "ready"
	}
	return "cooling_down"
}

// Turret is a weapon mount on a vessel. Owner is a weak ecs.Entity handle
// resolved every tick.
type Turret struct {
	Owner      uint64
	Type       TurretType
	Faction    Faction
	OffsetX    float64
	OffsetY    float64
	AimX       float64
	AimY       float64
	StatsScale float64

	State    CooldownState
	Cooldown Timer
}

// Ready reports whether the turret may fire this tick.
func (t *Turret) Ready() bool {
	return t.State == CooldownReady
}

var TurretComponent = NewComponent[Turret]()
