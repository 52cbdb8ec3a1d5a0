// Package lighting holds the light and material descriptions fed to the lit shader.
package lighting

import "github.com/Faultbox/roomview/pkg/math"

// SunDirection converts a longitude/latitude pair in degrees into a unit
// direction. Longitude rotates around Y, latitude is elevation from the horizon.
// The result points from the scene towards the light.
func SunDirection(longitude, latitude float32) math.Vec3 {
	lon := math.Radians(longitude)
	lat := math.Radians(latitude)

	return math.Vec3{
		X: math.Cos(lat) * math.Sin(lon),
		Y: math.Sin(lat),
		Z: math.Cos(lat) * math.Cos(lon),
	}
}
