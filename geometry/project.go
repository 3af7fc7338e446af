// Package geometry provides the spherical and planar building blocks of the
// face-area engine: projection of geographic coordinates onto the unit
// sphere and the local area-element (Jacobian) of parameterized triangle
// patches.
package geometry

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// EarthRadiusKm is the nominal sphere radius applied before renormalization.
const EarthRadiusKm = 6371.0

// CoordsType tells the engine how to interpret node coordinate arrays.
type CoordsType uint8

const (
	// Spherical input carries longitude degrees in x and latitude degrees
	// in y; nodes are projected onto the unit sphere before integration.
	Spherical CoordsType = iota
	// Cartesian input carries ambient 3D coordinates; faces are integrated
	// as flat patches.
	Cartesian
)

func (c CoordsType) String() string {
	switch c {
	case Spherical:
		return "spherical"
	case Cartesian:
		return "cartesian"
	}
	return fmt.Sprintf("CoordsType(%d)", uint8(c))
}

// ToUnitSphere converts geographic coordinates in degrees to a cartesian
// point on the unit sphere. The point is scaled to EarthRadiusKm and then
// renormalized to unit length; the renormalization is mandatory, it removes
// floating-point drift so that the Jacobian formulas can assume points lie
// exactly on the unit sphere. Pole inputs are handled naturally.
func ToUnitSphere(lonDeg, latDeg float64) r3.Vector {
	ll := s2.LatLngFromDegrees(latDeg, lonDeg)
	lat, lon := ll.Lat.Radians(), ll.Lng.Radians()
	v := r3.Vector{
		X: EarthRadiusKm * math.Cos(lat) * math.Cos(lon),
		Y: EarthRadiusKm * math.Cos(lat) * math.Sin(lon),
		Z: EarthRadiusKm * math.Sin(lat),
	}
	return v.Normalize()
}
