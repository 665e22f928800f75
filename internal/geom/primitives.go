package geom

import "math"

// NewCuboid builds an axis-aligned box of the given dimensions, one
// corner at the origin.
func NewCuboid(l, w, h float64) *Solid {
	v := [8]Vec3{
		{0, 0, 0}, {l, 0, 0}, {l, w, 0}, {0, w, 0},
		{0, 0, h}, {l, 0, h}, {l, w, h}, {0, w, h},
	}
	quads := [6][4]int{
		{0, 1, 2, 3}, // bottom
		{4, 5, 6, 7}, // top
		{0, 1, 5, 4}, // front
		{1, 2, 6, 5}, // right
		{2, 3, 7, 6}, // back
		{3, 0, 4, 7}, // left
	}
	var tris []Triangle
	for _, q := range quads {
		tris = append(tris, newTriangle(v[q[0]], v[q[1]], v[q[2]]))
		tris = append(tris, newTriangle(v[q[0]], v[q[2]], v[q[3]]))
	}
	return &Solid{Triangles: tris}
}

// NewSphere builds a latitude/longitude-tessellated sphere of the
// given radius centered at the origin.
func NewSphere(r float64) *Solid {
	const stacks, slices = 12, 16
	var tris []Triangle
	point := func(stack, slice int) Vec3 {
		phi := math.Pi * float64(stack) / stacks
		theta := 2 * math.Pi * float64(slice) / slices
		return Vec3{
			X: r * math.Sin(phi) * math.Cos(theta),
			Y: r * math.Sin(phi) * math.Sin(theta),
			Z: r * math.Cos(phi),
		}
	}
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := point(i, j)
			b := point(i+1, j)
			c := point(i+1, j+1)
			d := point(i, j+1)
			if i > 0 {
				tris = append(tris, newTriangle(a, b, c))
			}
			if i < stacks-1 {
				tris = append(tris, newTriangle(a, c, d))
			}
		}
	}
	return &Solid{Triangles: tris}
}

// NewCylinder builds a tessellated cylinder of the given radius and
// height, axis along Z, base centered at the origin.
func NewCylinder(r, h float64) *Solid {
	const slices = 24
	var tris []Triangle
	top := Vec3{0, 0, h}
	bottom := Vec3{0, 0, 0}
	ring := func(z float64, i int) Vec3 {
		theta := 2 * math.Pi * float64(i) / slices
		return Vec3{r * math.Cos(theta), r * math.Sin(theta), z}
	}
	for i := 0; i < slices; i++ {
		b0, b1 := ring(0, i), ring(0, i+1)
		t0, t1 := ring(h, i), ring(h, i+1)
		tris = append(tris, newTriangle(b0, b1, t1))
		tris = append(tris, newTriangle(b0, t1, t0))
		tris = append(tris, newTriangle(bottom, b1, b0))
		tris = append(tris, newTriangle(top, t0, t1))
	}
	return &Solid{Triangles: tris}
}

// Vec2 is a 2D point.
type Vec2 struct {
	X, Y float64
}

// Polygon is an opaque handle to a 2D outline: an ordered ring of
// vertices, so products may also emit flat outlines alongside solids.
type Polygon struct {
	Points []Vec2
}

// NewRectanglePolygon builds an axis-aligned rectangle, one corner at
// the origin.
func NewRectanglePolygon(w, h float64) *Polygon {
	return &Polygon{Points: []Vec2{{0, 0}, {w, 0}, {w, h}, {0, h}}}
}

// NewCirclePolygon builds a regular polygon approximating a circle of
// the given radius.
func NewCirclePolygon(r float64) *Polygon {
	const sides = 32
	pts := make([]Vec2, sides)
	for i := 0; i < sides; i++ {
		theta := 2 * math.Pi * float64(i) / sides
		pts[i] = Vec2{r * math.Cos(theta), r * math.Sin(theta)}
	}
	return &Polygon{Points: pts}
}
