package system

import (
	"fmt"
	"strings"

	"github.com/milk9111/broadside/ecs/component"
)

// Stats counts what happened during a run.
type Stats struct {
	Triggers    int
	Projectiles map[component.ProjectileType]int
	Hits        int
	Damage      float64
	Kills       int
	Explosions  int
	Expired     int
}

func NewStats() *Stats {
	return &Stats{Projectiles: make(map[component.ProjectileType]int)}
}

func (s *Stats) addProjectile(t component.ProjectileType) {
	if s == nil {
		return
	}
	if s.Projectiles == nil {
		s.Projectiles = make(map[component.ProjectileType]int)
	}
	s.Projectiles[t]++
}

// TotalProjectiles sums projectiles of every type.
func (s *Stats) TotalProjectiles() int {
	total := 0
	for _, n := range s.Projectiles {
		total += n
	}
	return total
}

// Report renders the counters as plain text.
func (s *Stats) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "triggers:    %d\n", s.Triggers)
	for _, t := range []component.ProjectileType{component.ProjectileCannon, component.ProjectileRocket, component.ProjectileMediumRocket} {
		fmt.Fprintf(&b, "  %-13s %d\n", t.String()+":", s.Projectiles[t])
	}
	fmt.Fprintf(&b, "hits:        %d\n", s.Hits)
	fmt.Fprintf(&b, "damage:      %.1f\n", s.Damage)
	fmt.Fprintf(&b, "expired:     %d\n", s.Expired)
	fmt.Fprintf(&b, "kills:       %d\n", s.Kills)
	fmt.Fprintf(&b, "explosions:  %d\n", s.Explosions)
	return b.String()
}
