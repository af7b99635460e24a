package prefabs

import (
	"errors"
	"fmt"

	"github.com/milk9111/broadside/common"
	"github.com/milk9111/broadside/ecs/component"
	"gopkg.in/yaml.v3"
)

const (
	WeaponsFile  = "weapons.yaml"
	VesselsFile  = "vessels.yaml"
	TargetScript = "target.tengo"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type AnimationSpec struct {
	Frames    int     `yaml:"frames"`
	FrameTime float64 `yaml:"frame_time"`
	Loop      bool    `yaml:"loop"`
	Scale     float64 `yaml:"scale"`
}

// FPS converts FrameTime to frames per second.
func (a AnimationSpec) FPS() float64 {
	if a.FrameTime <= 0 {
		return 0
	}
	return 1 / a.FrameTime
}

type VolleySpec struct {
	Pairs        int     `yaml:"pairs"`
	BaseAngle    float64 `yaml:"base_angle"`
	StepAngle    float64 `yaml:"step_angle"`
	DefaultRange float64 `yaml:"default_range"`
}

type WeaponSpec struct {
	Cooldown      float64            `yaml:"cooldown"`
	Damage        float64            `yaml:"damage"`
	Lifetime      float64            `yaml:"lifetime"`
	Speed         float64            `yaml:"speed"`
	Spray         float64            `yaml:"spray"`
	Collider      component.Collider `yaml:"collider"`
	LaunchOffsets []common.Vec2      `yaml:"launch_offsets"`
	Animation     *AnimationSpec     `yaml:"animation"`
	Volley        *VolleySpec        `yaml:"volley"`
}

// WeaponsSpec is the parsed weapons.yaml.
type WeaponsSpec struct {
	Cannon       WeaponSpec    `yaml:"cannon"`
	Rocket       WeaponSpec    `yaml:"rocket"`
	MediumRocket WeaponSpec    `yaml:"medium_rocket"`
	Explosion    AnimationSpec `yaml:"explosion"`
}

// Weapon returns the tuning for a turret type.
func (s *WeaponsSpec) Weapon(t component.TurretType) (*WeaponSpec, bool) {
	if s == nil {
		return nil, false
	}
	switch t {
	case component.TurretCannon:
		return &s.Cannon, true
	case component.TurretRocket:
		return &s.Rocket, true
	case component.TurretMediumRocket:
		return &s.MediumRocket, true
	default:
		return nil, false
	}
}

func (s *WeaponsSpec) validate() error {
	for _, t := range []component.TurretType{component.TurretCannon, component.TurretRocket, component.TurretMediumRocket} {
		w, _ := s.Weapon(t)
		if w.Cooldown <= 0 {
			return fmt.Errorf("%w: %s cooldown must be positive", ErrInvalidSpec, t)
		}
		if w.Speed <= 0 {
			return fmt.Errorf("%w: %s speed must be positive", ErrInvalidSpec, t)
		}
		if len(w.LaunchOffsets) == 0 {
			return fmt.Errorf("%w: %s needs at least one launch offset", ErrInvalidSpec, t)
		}
	}
	if v := s.MediumRocket.Volley; v == nil || v.Pairs <= 0 {
		return fmt.Errorf("%w: medium_rocket needs a volley", ErrInvalidSpec)
	}
	return nil
}

func LoadWeapons() (*WeaponsSpec, error) {
	spec, err := LoadSpec[WeaponsSpec](WeaponsFile)
	if err != nil {
		return nil, err
	}
	if err := spec.validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", WeaponsFile, err)
	}
	return &spec, nil
}

type VesselSpec struct {
	Faction    string                  `yaml:"faction"`
	Collider   component.Collider      `yaml:"collider"`
	ShipStats  *component.ShipStats    `yaml:"ship_stats"`
	StatsScale float64                 `yaml:"stats_scale"`
	MaxHealth  float64                 `yaml:"max_health"`
	BarScale   float64                 `yaml:"bar_scale"`
	Spawn      common.Vec2             `yaml:"spawn"`
	Mounts     []component.MountOffset `yaml:"mounts"`
	Loadout    []component.TurretType  `yaml:"loadout"`
}

// FactionValue resolves the faction name.
func (v *VesselSpec) FactionValue() (component.Faction, error) {
	switch v.Faction {
	case "player":
		return component.FactionPlayer, nil
	case "enemy":
		return component.FactionEnemy, nil
	default:
		return 0, fmt.Errorf("%w: unknown faction %q", ErrInvalidSpec, v.Faction)
	}
}

// VesselsSpec is the parsed vessels.yaml.
type VesselsSpec struct {
	PlayerShip   VesselSpec `yaml:"player_ship"`
	EnemyStation VesselSpec `yaml:"enemy_station"`
}

func (v *VesselSpec) validate(name string) error {
	if _, err := v.FactionValue(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if len(v.Loadout) > len(v.Mounts) {
		return fmt.Errorf("%w: %s has %d loadout slots but %d mounts", ErrInvalidSpec, name, len(v.Loadout), len(v.Mounts))
	}
	if v.MaxHealth <= 0 {
		return fmt.Errorf("%w: %s max_health must be positive", ErrInvalidSpec, name)
	}
	return nil
}

func LoadVessels() (*VesselsSpec, error) {
	spec, err := LoadSpec[VesselsSpec](VesselsFile)
	if err != nil {
		return nil, err
	}
	if err := spec.PlayerShip.validate("player_ship"); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", VesselsFile, err)
	}
	if err := spec.EnemyStation.validate("enemy_station"); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", VesselsFile, err)
	}
	return &spec, nil
}
