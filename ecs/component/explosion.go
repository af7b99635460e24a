package component

// Explosion is the visual left where a rocket despawned.
type Explosion struct {
	Source ProjectileType
}

var ExplosionComponent = NewComponent[Explosion]()
