// Package spheremesh builds small sphere-tiling triangulations used by the
// examples and by property tests: any mesh whose faces exactly tile the unit
// sphere must integrate to a total area of 4π.
package spheremesh

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/markus-wa/quickhull-go/v2"
	"github.com/pkg/errors"
)

// RandomPoints returns reproducible uniform-ish random points on the unit
// sphere.
func RandomPoints(n int, seed int64) []r3.Vector {
	rnd := rand.New(rand.NewSource(seed))
	pts := make([]r3.Vector, n)
	for i := range pts {
		p := s2.PointFromLatLng(s2.LatLng{
			Lat: s1.Angle(math.Asin(rnd.Float64()*2 - 1)),
			Lng: s1.Angle((rnd.Float64()*2 - 1) * math.Pi),
		})
		pts[i] = p.Vector
	}
	return pts
}

// HullTriangles triangulates the sphere spanned by the given points via
// their convex hull. All points must lie on the unit sphere so that every
// input point becomes a hull vertex and the triangles tile the full sphere.
func HullTriangles(points []r3.Vector) ([][3]int, error) {
	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(points, true, true, 1e-12)
	if len(ch.Indices)%3 != 0 {
		return nil, errors.Errorf("quickhull returned %d indices, not a multiple of 3", len(ch.Indices))
	}
	tris := make([][3]int, len(ch.Indices)/3)
	for i := range tris {
		tris[i] = [3]int{ch.Indices[3*i], ch.Indices[3*i+1], ch.Indices[3*i+2]}
	}
	return tris, nil
}

// SubdividedOctahedron returns a unit-sphere triangulation obtained by
// midpoint-subdividing the octahedron the given number of times and
// renormalizing. levels=0 yields the 8 octant triangles; each level
// quadruples the face count.
func SubdividedOctahedron(levels int) (verts []r3.Vector, faces [][3]int) {
	verts = []r3.Vector{
		{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
	}
	faces = [][3]int{
		{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
		{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
	}
	for l := 0; l < levels; l++ {
		mids := make(map[[2]int]int)
		midpoint := func(a, b int) int {
			k := [2]int{min(a, b), max(a, b)}
			if id, ok := mids[k]; ok {
				return id
			}
			verts = append(verts, verts[a].Add(verts[b]).Normalize())
			mids[k] = len(verts) - 1
			return len(verts) - 1
		}
		next := make([][3]int, 0, 4*len(faces))
		for _, f := range faces {
			ab := midpoint(f[0], f[1])
			bc := midpoint(f[1], f[2])
			ca := midpoint(f[2], f[0])
			next = append(next,
				[3]int{f[0], ab, ca},
				[3]int{f[1], bc, ab},
				[3]int{f[2], ca, bc},
				[3]int{ab, bc, ca})
		}
		faces = next
	}
	return verts, faces
}

// LonLatArrays converts unit-sphere vertices into the spherical node
// coordinate convention of the area engine: x holds longitude degrees, y
// latitude degrees, z is unused.
func LonLatArrays(verts []r3.Vector) (x, y, z []float64) {
	x = make([]float64, len(verts))
	y = make([]float64, len(verts))
	z = make([]float64, len(verts))
	for i, v := range verts {
		ll := s2.LatLngFromPoint(s2.Point{Vector: v})
		x[i] = ll.Lng.Degrees()
		y[i] = ll.Lat.Degrees()
	}
	return x, y, z
}

// FaceRows widens fixed-degree triangles into the ragged connectivity shape
// consumed by the driver.
func FaceRows(tris [][3]int) [][]int {
	rows := make([][]int, len(tris))
	for i, t := range tris {
		rows[i] = []int{t[0], t[1], t[2]}
	}
	return rows
}

// Counts returns a constant node-count array for triangle meshes.
func Counts(nFaces int) []int {
	counts := make([]int, nFaces)
	for i := range counts {
		counts[i] = 3
	}
	return counts
}
