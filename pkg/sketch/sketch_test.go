package sketch

import (
	"math"
	"testing"

	"github.com/df07/raytracer-challenge/pkg/core"
	"github.com/df07/raytracer-challenge/pkg/renderer"
)

func litPixels(c *renderer.Canvas) int {
	count := 0
	black := core.NewColor(0, 0, 0)
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if px, _ := c.PixelAt(x, y); !px.Equals(black) {
				count++
			}
		}
	}
	return count
}

func TestTick(t *testing.T) {
	p := Projectile{
		Position: core.NewPoint(0, 1, 0),
		Velocity: core.NewVector(1, 1, 0).Normalize(),
	}
	env := Environment{
		Gravity: core.NewVector(0, -0.1, 0),
		Wind:    core.NewVector(-0.01, 0, 0),
	}

	next := Tick(env, p)
	s := math.Sqrt2 / 2

	if !next.Position.Equals(core.NewPoint(s, 1+s, 0)) {
		t.Errorf("Unexpected position %v", next.Position)
	}
	if !next.Velocity.Equals(core.NewVector(s-0.01, s-0.1, 0)) {
		t.Errorf("Unexpected velocity %v", next.Velocity)
	}
	if !next.Position.IsPoint() || !next.Velocity.IsVector() {
		t.Error("Tick must keep position a point and velocity a vector")
	}
}

func TestDrawProjectile(t *testing.T) {
	canvas := renderer.NewCanvas(900, 550)
	ticks := DrawProjectile(canvas, DefaultProjectile(), DefaultEnvironment(), 1000)

	if ticks <= 1 || ticks >= 1000 {
		t.Fatalf("Expected the projectile to land within the tick limit, got %d ticks", ticks)
	}
	if lit := litPixels(canvas); lit == 0 || lit > ticks {
		t.Errorf("Expected between 1 and %d lit pixels, got %d", ticks, lit)
	}

	// Launch point (0, 1) lands on the bottom row after flipping
	if px, _ := canvas.PixelAt(0, 549); px.Equals(core.NewColor(0, 0, 0)) {
		t.Error("Expected the launch point to be plotted")
	}
}

func TestDrawProjectile_TickLimit(t *testing.T) {
	canvas := renderer.NewCanvas(900, 550)
	if ticks := DrawProjectile(canvas, DefaultProjectile(), DefaultEnvironment(), 5); ticks != 5 {
		t.Errorf("Expected 5 ticks, got %d", ticks)
	}
}

func TestDrawProjectile_SkipsOffCanvasPoints(t *testing.T) {
	small := renderer.NewCanvas(10, 10)
	large := renderer.NewCanvas(900, 550)

	smallTicks := DrawProjectile(small, DefaultProjectile(), DefaultEnvironment(), 1000)
	largeTicks := DrawProjectile(large, DefaultProjectile(), DefaultEnvironment(), 1000)

	if smallTicks != largeTicks {
		t.Errorf("Canvas size must not change the flight: %d vs %d ticks", smallTicks, largeTicks)
	}
	if litPixels(small) >= litPixels(large) {
		t.Error("Expected fewer points on the small canvas")
	}
}

func TestHourMarks(t *testing.T) {
	marks := HourMarks()
	if len(marks) != 12 {
		t.Fatalf("Expected 12 marks, got %d", len(marks))
	}

	expected := map[int]core.Tuple{
		0: core.NewPoint(0, 0, 1),
		3: core.NewPoint(1, 0, 0),
		6: core.NewPoint(0, 0, -1),
		9: core.NewPoint(-1, 0, 0),
	}
	for hour, e := range expected {
		if !marks[hour].Equals(e) {
			t.Errorf("Hour %d: expected %v, got %v", hour, e, marks[hour])
		}
	}
	origin := core.NewPoint(0, 0, 0)
	for hour, m := range marks {
		if math.Abs(m.Subtract(origin).Magnitude()-1) > core.Epsilon {
			t.Errorf("Hour %d is not on the unit circle: %v", hour, m)
		}
	}
}

func TestDrawClock(t *testing.T) {
	canvas := renderer.NewCanvas(100, 100)
	white := core.NewColor(1, 1, 1)
	DrawClock(canvas, white)

	if lit := litPixels(canvas); lit != 12 {
		t.Errorf("Expected 12 hour marks, got %d lit pixels", lit)
	}

	for _, pos := range [][2]int{{50, 88}, {88, 50}, {50, 13}, {13, 50}} {
		px, err := canvas.PixelAt(pos[0], pos[1])
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !px.Equals(white) {
			t.Errorf("Expected a mark at (%d, %d)", pos[0], pos[1])
		}
	}
}
