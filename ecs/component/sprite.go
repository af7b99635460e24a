package component

import "github.com/milk9111/broadside/assets"

// Sprite references a visual by opaque handle.
type Sprite struct {
	Handle  assets.Handle
	Frame   int
	OriginX float64
	OriginY float64
}

var SpriteComponent = NewComponent[Sprite]()
