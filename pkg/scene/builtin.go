package scene

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/raytracer-challenge/pkg/core"
	"github.com/df07/raytracer-challenge/pkg/geometry"
	"github.com/df07/raytracer-challenge/pkg/material"
	"github.com/df07/raytracer-challenge/pkg/renderer"
)

// ErrUnknownScene is returned when a scene name matches no built-in scene
var ErrUnknownScene = errors.New("unknown scene")

// builtinScene describes a scene that ships with the renderer
type builtinScene struct {
	description string
	build       func() *Scene
}

var builtins = map[string]builtinScene{
	"silhouette": {"Flat red silhouette of a sheared, squashed sphere", NewSilhouetteScene},
	"shaded":     {"Magenta sphere with Phong shading", NewShadedScene},
	"squashed":   {"Yellow sphere squashed along y and rotated about z", NewSquashedScene},
	"trio":       {"Three spheres of different sizes and finishes", NewTrioScene},
}

// Names returns the built-in scene names in alphabetical order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup builds the named built-in scene
func Lookup(name string) (*Scene, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
	}
	return b.build(), nil
}

// Resolve returns a built-in scene by name, or loads a scene file when given a .json path
func Resolve(nameOrPath string) (*Scene, error) {
	if strings.EqualFold(filepath.Ext(nameOrPath), ".json") {
		return Load(nameOrPath)
	}
	return Lookup(nameOrPath)
}

// mustSphere is NewSphere for transforms known to be invertible
func mustSphere(m material.Material, transforms ...core.Matrix) *geometry.Sphere {
	sphere, err := NewSphere(m, transforms...)
	if err != nil {
		panic(fmt.Sprintf("built-in sphere: %v", err))
	}
	return sphere
}

// NewSilhouetteScene creates a flat-colored sphere that shows only its outline
func NewSilhouetteScene() *Scene {
	flat := material.NewMaterial()
	flat.Color = core.NewColor(1, 0, 0)
	flat.Ambient = 1
	flat.Diffuse = 0
	flat.Specular = 0

	sphere := mustSphere(flat,
		core.Scaling(0.5, 1, 1),
		core.Shearing(1, 0, 0, 0, 0, 0),
	)

	return &Scene{
		Name:     "silhouette",
		Shapes:   []*geometry.Sphere{sphere},
		Light:    defaultLight(),
		Viewport: renderer.DefaultViewportConfig(),
	}
}

// NewShadedScene creates a single magenta sphere lit from the upper left
func NewShadedScene() *Scene {
	m := material.NewMaterial()
	m.Color = core.NewColor(1, 0.2, 1)

	return &Scene{
		Name:     "shaded",
		Shapes:   []*geometry.Sphere{mustSphere(m)},
		Light:    defaultLight(),
		Viewport: renderer.DefaultViewportConfig(),
	}
}

// NewSquashedScene creates a yellow sphere rotated about z and then squashed along y
func NewSquashedScene() *Scene {
	m := material.NewMaterial()
	m.Color = core.NewColor(1, 1, 0.2)

	sphere := mustSphere(m,
		core.RotationZ(math.Pi/5),
		core.Scaling(1, 0.5, 1),
	)

	return &Scene{
		Name:     "squashed",
		Shapes:   []*geometry.Sphere{sphere},
		Light:    defaultLight(),
		Viewport: renderer.DefaultViewportConfig(),
	}
}

// NewTrioScene creates three spheres with different sizes and materials
func NewTrioScene() *Scene {
	middle := material.NewMaterial()
	middle.Color = core.NewColor(0.1, 1, 0.5)

	left := material.NewMaterial()
	left.Color = core.NewColor(1, 0.8, 0.1)
	left.Specular = 0.3
	left.Shininess = 50

	right := material.NewMaterial()
	right.Color = core.NewColor(0.5, 0.6, 1)
	right.Diffuse = 0.7
	right.Shininess = 400

	viewport := renderer.DefaultViewportConfig()
	viewport.Width = 160
	viewport.WallSize = 14 // twice the default so the outer spheres fit

	return &Scene{
		Name: "trio",
		Shapes: []*geometry.Sphere{
			mustSphere(middle),
			mustSphere(left,
				core.Scaling(0.5, 0.5, 0.5),
				core.Translation(-1.5, 0.5, -0.5),
			),
			mustSphere(right,
				core.Scaling(0.6, 0.6, 0.6),
				core.Translation(1.6, -0.2, 0.3),
			),
		},
		Light:    defaultLight(),
		Viewport: viewport,
	}
}
