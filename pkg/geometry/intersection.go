package geometry

import "sort"

// Intersection pairs a ray parameter with the sphere that was hit
type Intersection struct {
	T      float64
	Object *Sphere
}

// NewIntersection creates a new intersection
func NewIntersection(t float64, object *Sphere) Intersection {
	return Intersection{T: t, Object: object}
}

// Intersections is a collection of intersections along a single ray
type Intersections []Intersection

// NewIntersections returns the given intersections as a new collection sorted by ascending t
func NewIntersections(xs ...Intersection) Intersections {
	result := make(Intersections, len(xs))
	copy(result, xs)
	result.Sort()
	return result
}

// Sort orders the collection by ascending t, keeping ties in their original order
func (xs Intersections) Sort() {
	sort.SliceStable(xs, func(i, j int) bool {
		return xs[i].T < xs[j].T
	})
}

// Hit returns the visible intersection: the one with the smallest non-negative t.
// The collection does not need to be sorted.
func (xs Intersections) Hit() (Intersection, bool) {
	return Hit(xs)
}

// Hit returns the intersection with the smallest non-negative t, or false when
// the collection is empty or every intersection lies behind the ray origin
func Hit(xs []Intersection) (Intersection, bool) {
	var best Intersection
	found := false
	for _, x := range xs {
		if x.T < 0 {
			continue
		}
		if !found || x.T < best.T {
			best = x
			found = true
		}
	}
	return best, found
}
