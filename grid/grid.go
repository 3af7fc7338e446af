// Package grid provides the mesh-level facade over the face-area engine:
// a container for node coordinates and ragged face-node connectivity, unit
// sniffing, explicit float coercion at the boundary and a keyed cache of
// computed face areas.
package grid

import (
	"context"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"

	"github.com/uxmesh/uxmesh/area"
	"github.com/uxmesh/uxmesh/geometry"
	"github.com/uxmesh/uxmesh/quadrature"
)

const (
	// DefaultFillValue marks unused trailing slots in ragged face-node rows.
	DefaultFillValue = -1
	// DefaultNodeXUnits marks node x coordinates as longitude degrees.
	DefaultNodeXUnits = "degrees_east"

	// DefaultRule and DefaultOrder are the quadrature defaults of the
	// FaceAreas accessor.
	DefaultRule  = quadrature.Triangular
	DefaultOrder = 4
)

// Config carries the optional grid metadata.
type Config struct {
	// NodeXUnits is the unit metadata of the node x coordinate variable. A
	// value containing the substring "degree" marks the grid as spherical;
	// anything else is treated as cartesian. Empty defaults to
	// DefaultNodeXUnits.
	NodeXUnits string
	// TopologyDimension is the declared topological dimension of the mesh.
	// Node z coordinates are ignored unless it exceeds 2. Zero defaults to 2.
	TopologyDimension int
	// FillValue is the sentinel padding ragged face-node rows. Zero defaults
	// to DefaultFillValue; node id 0 cannot serve as a fill value.
	FillValue int
	// Workers bounds the per-face parallelism of area computations.
	// Zero selects GOMAXPROCS.
	Workers int
}

// Grid is an unstructured-grid topology snapshot. The coordinate and
// connectivity arrays are treated as read-only once handed to NewGrid.
type Grid struct {
	nodeX, nodeY, nodeZ []float64
	faceNodes           [][]int
	fillValue           int
	nodeXUnits          string
	topologyDimension   int
	workers             int

	mu           sync.Mutex
	nodesPerFace []int
	areas        []float64
	areasKey     areaKey
	hasAreas     bool
}

// areaKey identifies one cached area computation. Caching keyed by rule,
// order and coordinate type avoids serving a stale array computed under
// different parameters.
type areaKey struct {
	rule   quadrature.Rule
	order  int
	coords geometry.CoordsType
}

// NewGrid builds a grid from node coordinate arrays and padded face-node
// connectivity. z may be nil for 2D meshes.
func NewGrid(x, y, z []float64, faceNodes [][]int, cfg Config) (*Grid, error) {
	if len(y) != len(x) {
		return nil, errors.Errorf("coordinate lengths differ: x=%d y=%d", len(x), len(y))
	}
	if z != nil && len(z) != len(x) {
		return nil, errors.Errorf("coordinate lengths differ: x=%d z=%d", len(x), len(z))
	}
	if z == nil {
		z = make([]float64, len(x))
	}
	if cfg.NodeXUnits == "" {
		cfg.NodeXUnits = DefaultNodeXUnits
	}
	if cfg.TopologyDimension == 0 {
		cfg.TopologyDimension = 2
	}
	if cfg.FillValue == 0 {
		cfg.FillValue = DefaultFillValue
	}
	return &Grid{
		nodeX:             x,
		nodeY:             y,
		nodeZ:             z,
		faceNodes:         faceNodes,
		fillValue:         cfg.FillValue,
		nodeXUnits:        cfg.NodeXUnits,
		topologyDimension: cfg.TopologyDimension,
		workers:           cfg.Workers,
	}, nil
}

// FromFaceVertices builds a grid from raw per-face vertex lists, each vertex
// given as (lon, lat) degrees when latlon is true or as 2D/3D cartesian
// coordinates otherwise. Shared vertices are deduplicated into single nodes
// and ragged faces are padded with the fill value.
func FromFaceVertices(faces [][][]float64, latlon bool) (*Grid, error) {
	if len(faces) == 0 {
		return nil, errors.New("no faces supplied")
	}

	type vkey struct{ x, y, z float64 }
	nodeIDs := make(map[vkey]int)
	var x, y, z []float64
	dim := 2

	faceNodes := make([][]int, len(faces))
	maxDegree := 0
	for i, face := range faces {
		if len(face) < 3 {
			return nil, errors.Wrapf(area.ErrInvalidFaceDegree, "face %d has %d vertices", i, len(face))
		}
		row := make([]int, 0, len(face))
		for _, v := range face {
			if len(v) != 2 && len(v) != 3 {
				return nil, errors.Errorf("face %d: vertex has %d components, want 2 or 3", i, len(v))
			}
			k := vkey{x: v[0], y: v[1]}
			if len(v) == 3 {
				k.z = v[2]
				dim = 3
			}
			id, ok := nodeIDs[k]
			if !ok {
				id = len(x)
				nodeIDs[k] = id
				x = append(x, k.x)
				y = append(y, k.y)
				z = append(z, k.z)
			}
			row = append(row, id)
		}
		faceNodes[i] = row
		if len(row) > maxDegree {
			maxDegree = len(row)
		}
	}

	units := DefaultNodeXUnits
	if !latlon {
		units = "m"
	} else {
		// Geographic input is 2D regardless of a vertex z component.
		dim = 2
	}

	// Right-pad to a rectangular connectivity array.
	for i, row := range faceNodes {
		for len(row) < maxDegree {
			row = append(row, DefaultFillValue)
		}
		faceNodes[i] = row
	}

	return NewGrid(x, y, z, faceNodes, Config{
		NodeXUnits:        units,
		TopologyDimension: dim,
	})
}

// NodeCount returns the number of nodes.
func (g *Grid) NodeCount() int { return len(g.nodeX) }

// FaceCount returns the number of faces.
func (g *Grid) FaceCount() int { return len(g.faceNodes) }

// CoordsType derives the coordinate mode from the node x unit metadata.
func (g *Grid) CoordsType() geometry.CoordsType {
	if strings.Contains(g.nodeXUnits, "degree") {
		return geometry.Spherical
	}
	return geometry.Cartesian
}

// NodesPerFace returns the number of non-fill leading entries of every face.
// The result is derived once and cached; callers must not modify it.
func (g *Grid) NodesPerFace() []int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.nodesPerFaceLocked()
}

func (g *Grid) nodesPerFaceLocked() []int {
	if g.nodesPerFace == nil {
		g.nodesPerFace = lo.Map(g.faceNodes, func(row []int, _ int) int {
			count := 0
			for _, id := range row {
				if id == g.fillValue {
					break
				}
				count++
			}
			return count
		})
	}
	return g.nodesPerFace
}

// ComputeFaceAreas computes the area of every face with the given quadrature
// rule and order, caching the result keyed by (rule, order, coords type). A
// repeated call with the same key returns the cached array; a failed
// computation leaves any previously cached result intact. The returned slice
// is owned by the grid and must not be modified.
func (g *Grid) ComputeFaceAreas(ctx context.Context, rule quadrature.Rule, order int) ([]float64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	key := areaKey{rule: rule, order: order, coords: g.CoordsType()}
	if g.hasAreas && g.areasKey == key {
		return g.areas, nil
	}

	res, err := area.AllFaceAreas(ctx, g.nodeX, g.nodeY, g.nodeZ, g.faceNodes,
		g.nodesPerFaceLocked(), g.topologyDimension, area.Options{
			Rule:       rule,
			Order:      order,
			CoordsType: key.coords,
			Workers:    g.workers,
		})
	if err != nil {
		return nil, err
	}
	g.areas = res
	g.areasKey = key
	g.hasAreas = true
	return res, nil
}

// FaceAreas returns the cached face areas if any computation has already
// run, else computes them with the default triangular order-4 rule.
func (g *Grid) FaceAreas(ctx context.Context) ([]float64, error) {
	g.mu.Lock()
	if g.hasAreas {
		defer g.mu.Unlock()
		return g.areas, nil
	}
	g.mu.Unlock()
	return g.ComputeFaceAreas(ctx, DefaultRule, DefaultOrder)
}

// TotalFaceArea returns the sum of all face areas computed with the given
// rule and order.
func (g *Grid) TotalFaceArea(ctx context.Context, rule quadrature.Rule, order int) (float64, error) {
	areas, err := g.ComputeFaceAreas(ctx, rule, order)
	if err != nil {
		return 0, err
	}
	return floats.Sum(areas), nil
}

// Numeric constrains CoerceFloat64 to coordinate array element types.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// CoerceFloat64 converts an integral (or lower-precision) coordinate array
// to float64. The area engine requires floating-point input; conversion is
// explicit at this boundary rather than implicit inside the hot loop.
func CoerceFloat64[T Numeric](vals []T) []float64 {
	return lo.Map(vals, func(v T, _ int) float64 { return float64(v) })
}
