package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/raytracer-challenge/pkg/core"
	"github.com/df07/raytracer-challenge/pkg/geometry"
	"github.com/df07/raytracer-challenge/pkg/lights"
	"github.com/df07/raytracer-challenge/pkg/material"
	"github.com/df07/raytracer-challenge/pkg/renderer"
)

// sceneFile is the JSON layout of a scene description.
// Pointer fields are optional and fall back to defaults when absent.
type sceneFile struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Viewport    *viewportFile `json:"viewport"`
	Light       *lightFile    `json:"light"`
	Spheres     []sphereFile  `json:"spheres"`
}

type viewportFile struct {
	Origin   *[3]float64 `json:"origin"`
	WallZ    *float64    `json:"wallZ"`
	WallSize *float64    `json:"wallSize"`
	Width    *int        `json:"width"`
	Height   *int        `json:"height"`
}

type lightFile struct {
	Position  *[3]float64 `json:"position"`
	Intensity *[3]float64 `json:"intensity"`
}

type sphereFile struct {
	Transforms []transformFile `json:"transforms"`
	Material   *materialFile   `json:"material"`
}

type transformFile struct {
	Op   string    `json:"op"`
	Args []float64 `json:"args"`
}

type materialFile struct {
	Color     *[3]float64 `json:"color"`
	Ambient   *float64    `json:"ambient"`
	Diffuse   *float64    `json:"diffuse"`
	Specular  *float64    `json:"specular"`
	Shininess *float64    `json:"shininess"`
}

// transformOps maps each transform name to its argument count and builder
var transformOps = map[string]struct {
	arity int
	build func(a []float64) core.Matrix
}{
	"translate": {3, func(a []float64) core.Matrix { return core.Translation(a[0], a[1], a[2]) }},
	"scale":     {3, func(a []float64) core.Matrix { return core.Scaling(a[0], a[1], a[2]) }},
	"rotateX":   {1, func(a []float64) core.Matrix { return core.RotationX(a[0]) }},
	"rotateY":   {1, func(a []float64) core.Matrix { return core.RotationY(a[0]) }},
	"rotateZ":   {1, func(a []float64) core.Matrix { return core.RotationZ(a[0]) }},
	"shear":     {6, func(a []float64) core.Matrix { return core.Shearing(a[0], a[1], a[2], a[3], a[4], a[5]) }},
}

// Load reads a JSON scene file. The scene is named after the file when the file gives no name.
func Load(path string) (*Scene, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	s, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		base := filepath.Base(path)
		s.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return s, nil
}

// Parse decodes and validates a JSON scene description
func Parse(r io.Reader) (*Scene, error) {
	var f sceneFile
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	return f.build()
}

// build converts the decoded file into a validated scene
func (f sceneFile) build() (*Scene, error) {
	s := &Scene{
		Name:     f.Name,
		Light:    defaultLight(),
		Viewport: renderer.DefaultViewportConfig(),
	}

	if v := f.Viewport; v != nil {
		if v.Origin != nil {
			s.Viewport.RayOrigin = core.NewPoint(v.Origin[0], v.Origin[1], v.Origin[2])
		}
		setIfPresent(&s.Viewport.WallZ, v.WallZ)
		setIfPresent(&s.Viewport.WallSize, v.WallSize)
		setIfPresent(&s.Viewport.Width, v.Width)
		setIfPresent(&s.Viewport.Height, v.Height)
	}

	if l := f.Light; l != nil {
		position, intensity := s.Light.Position, s.Light.Intensity
		if l.Position != nil {
			position = core.NewPoint(l.Position[0], l.Position[1], l.Position[2])
		}
		if l.Intensity != nil {
			intensity = core.NewColor(l.Intensity[0], l.Intensity[1], l.Intensity[2])
		}
		s.Light = lights.NewPointLight(position, intensity)
	}

	for i, sf := range f.Spheres {
		sphere, err := sf.build()
		if err != nil {
			return nil, fmt.Errorf("%w: sphere %d: %w", ErrInvalidScene, i, err)
		}
		s.Shapes = append(s.Shapes, sphere)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (sf sphereFile) build() (*geometry.Sphere, error) {
	transforms := make([]core.Matrix, 0, len(sf.Transforms))
	for _, tf := range sf.Transforms {
		m, err := tf.matrix()
		if err != nil {
			return nil, err
		}
		transforms = append(transforms, m)
	}
	return NewSphere(sf.Material.material(), transforms...)
}

func (tf transformFile) matrix() (core.Matrix, error) {
	op, ok := transformOps[tf.Op]
	if !ok {
		return core.Matrix{}, fmt.Errorf("unknown transform %q", tf.Op)
	}
	if len(tf.Args) != op.arity {
		return core.Matrix{}, fmt.Errorf("transform %q takes %d arguments, got %d", tf.Op, op.arity, len(tf.Args))
	}
	return op.build(tf.Args), nil
}

// material returns the default material with any provided fields applied
func (mf *materialFile) material() material.Material {
	m := material.NewMaterial()
	if mf == nil {
		return m
	}
	if mf.Color != nil {
		m.Color = core.NewColor(mf.Color[0], mf.Color[1], mf.Color[2])
	}
	setIfPresent(&m.Ambient, mf.Ambient)
	setIfPresent(&m.Diffuse, mf.Diffuse)
	setIfPresent(&m.Specular, mf.Specular)
	setIfPresent(&m.Shininess, mf.Shininess)
	return m
}

func setIfPresent[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
