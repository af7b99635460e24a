package component

// FireTrigger is emitted once per ready turret per tick and consumed by
// projectile spawning.
type FireTrigger struct {
	Turret     TurretType
	Origin     uint64
	Source     uint64
	X          float64
	Y          float64
	Rotation   float64
	VelocityX  float64
	VelocityY  float64
	StatsScale float64
	Layer      CollisionLayer

	TargetX   float64
	TargetY   float64
	HasTarget bool
}

// CollisionEvent carries a copy of the projectile payload at hit time.
type CollisionEvent struct {
	Target     uint64
	Projectile uint64
	Payload    Projectile
}

// ProjectileDespawned reports a projectile removed this tick.
type ProjectileDespawned struct {
	Type   ProjectileType
	X      float64
	Y      float64
	Reason DespawnReason
}

// VesselSpawned announces a new vessel so turrets can be mounted on it.
// Loadout[i] pairs with Mounts[i]; TurretNone leaves the slot empty.
type VesselSpawned struct {
	Entity     uint64
	Faction    Faction
	StatsScale float64
	Loadout    []TurretType
	Mounts     []MountOffset
	MaxHealth  float64
	BarScale   float64
}

type MountOffset struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}
