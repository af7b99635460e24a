package component

// ShipStats drives a vessel's motion. Stations carry none and never move.
type ShipStats struct {
	DeltaSteering float64 `yaml:"delta_steering"`
	DeltaSpeed    float64 `yaml:"delta_speed"`
	MinSpeed      float64 `yaml:"min_speed"`
	MaxSpeed      float64 `yaml:"max_speed"`

	CurrentSpeed float64 `yaml:"-"`
	// -1, 0 or 1; positive turns counter-clockwise
	Steering float64 `yaml:"-"`
	// Coasting ships bleed speed at half DeltaSpeed per second.
	Coasting bool `yaml:"-"`
}

var ShipStatsComponent = NewComponent[ShipStats]()
