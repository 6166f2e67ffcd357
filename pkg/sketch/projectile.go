// Package sketch draws simple figures straight onto a canvas without ray tracing.
package sketch

import (
	"math"

	"github.com/df07/raytracer-challenge/pkg/core"
	"github.com/df07/raytracer-challenge/pkg/renderer"
)

// Projectile is a point moving with a velocity
type Projectile struct {
	Position core.Tuple // point
	Velocity core.Tuple // vector
}

// Environment holds the constant forces acting on a projectile
type Environment struct {
	Gravity core.Tuple
	Wind    core.Tuple
}

// DefaultProjectile returns a projectile launched up and to the right from (0, 1, 0)
func DefaultProjectile() Projectile {
	return Projectile{
		Position: core.NewPoint(0, 1, 0),
		Velocity: core.NewVector(1, 1.8, 0).Normalize().Multiply(11.25),
	}
}

// DefaultEnvironment returns light gravity with a slight headwind
func DefaultEnvironment() Environment {
	return Environment{
		Gravity: core.NewVector(0, -0.1, 0),
		Wind:    core.NewVector(-0.01, 0, 0),
	}
}

// Tick advances the projectile by one time step
func Tick(env Environment, p Projectile) Projectile {
	return Projectile{
		Position: p.Position.Add(p.Velocity),
		Velocity: p.Velocity.Add(env.Gravity).Add(env.Wind),
	}
}

// speedColor shades slow points green and fast points blue
func speedColor(velocity core.Tuple) core.Tuple {
	mag := 4 / velocity.Magnitude()
	return core.NewColor(1, mag, 1-mag)
}

// DrawProjectile plots the projectile's path until it drops to the ground or
// maxTicks steps have run, and returns the number of steps taken.
// World y grows upward, so rows are flipped; positions off the canvas are skipped.
func DrawProjectile(canvas *renderer.Canvas, p Projectile, env Environment, maxTicks int) int {
	ticks := 0
	for p.Position.Y > 0 && ticks < maxTicks {
		ticks++

		x := int(math.Round(p.Position.X))
		y := canvas.Height() - int(math.Round(p.Position.Y))
		if canvas.InBounds(x, y) {
			canvas.WritePixel(x, y, speedColor(p.Velocity))
		}

		p = Tick(env, p)
	}
	return ticks
}
