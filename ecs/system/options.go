package system

import (
	"log"
	"math/rand/v2"

	"github.com/milk9111/broadside/assets"
)

// Options carries the collaborators shared by the combat systems.
type Options struct {
	// Logger receives fail-soft diagnostics. Nil logs to log.Default().
	Logger *log.Logger
	// Rand drives rocket spray. Nil seeds a fixed PCG so runs repeat.
	Rand *rand.Rand
	// Catalog resolves sprite handles. Nil uses assets.DefaultCatalog().
	Catalog *assets.Catalog
	// Weapons is the weapon tuning. Nil loads prefabs/weapons.yaml.
	Weapons *Weapons
	// Input feeds the player's intent. Nil leaves the player idle.
	Input InputSource
	// Targeter picks enemy volley targets. Nil aims at the player.
	Targeter Targeter
	// Collisions answers overlap queries. Nil uses the world's PhysicsWorld.
	Collisions CollisionProvider
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.Default()
}

func (o Options) rand() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	return rand.New(rand.NewPCG(1, 2))
}

func (o Options) catalog() *assets.Catalog {
	if o.Catalog != nil {
		return o.Catalog
	}
	return assets.DefaultCatalog()
}

// diagnostics logs a repeating condition once, then stays quiet until the
// condition clears.
type diagnostics struct {
	logger *log.Logger
	active map[string]bool
}

func newDiagnostics(logger *log.Logger) *diagnostics {
	if logger == nil {
		logger = log.Default()
	}
	return &diagnostics{logger: logger, active: make(map[string]bool)}
}

func (d *diagnostics) warn(key, format string, args ...any) {
	if d == nil || d.active[key] {
		return
	}
	d.active[key] = true
	d.logger.Printf(format, args...)
}

func (d *diagnostics) clear(key string) {
	if d == nil {
		return
	}
	delete(d.active, key)
}
