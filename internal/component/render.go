// internal/component/render.go
package component

import "image/color"

// Renderable is the only thing the presentation layer needs per entity.
type Renderable struct {
	Color  color.RGBA
	Radius float32
}
