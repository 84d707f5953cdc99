// Public domain.

// Package lunar, the geocentric lunar quantities behind moon_history.csv.
package lunar

import (
	"math"

	"github.com/soniakeys/astro"
	"github.com/soniakeys/coord"
	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/unit"
)

// AU in km.
const auKM = 149597870.7

// Inclination of the mean lunar equator to the ecliptic.
var inclination = unit.AngleFromDeg(1.54242)

// Eph holds the quantities of a single observation row.
type Eph struct {
	DistanceKM float64    // Earth-Moon center distance
	ELat       unit.Angle // optical libration in ecliptic latitude
	ELon       unit.Angle // optical libration in ecliptic longitude
	PhaseAngle unit.Angle // Sun-Moon-Earth angle
	Illum      float64    // illuminated fraction of the disk, [0,1]
}

// Ephemeris computes geocentric lunar quantities for a JDE.
//
// Distance and the geocentric position come from the truncated ELP series
// of Meeus chapter 47, good to a few km, far beyond the tenth-km precision
// carried downstream.  Libration here is the optical term only; physical
// libration, two orders of magnitude smaller than our output precision,
// is ignored.
func Ephemeris(jde float64) Eph {
	λ, β, Δ := moonposition.Position(jde)
	Δψ, _ := nutation.Nutation(jde)
	T := base.J2000Century(jde)

	// mean argument of latitude and longitude of ascending node of the
	// lunar orbit.  Meeus (47.5), (47.7).
	F := unit.AngleFromDeg(base.Horner(T,
		93.272095, 483202.0175233, -.0036539, -1/3526000.0, 1/863310000.0))
	Ω := unit.AngleFromDeg(base.Horner(T,
		125.0445479, -1934.1362891, .0020754, 1/467441.0, -1/60616000.0))

	// optical libration, Meeus (53.1).  W wants the apparent longitude,
	// λ + Δψ, and then subtracts Δψ again, so nutation cancels here.
	W := λ.Rad() - Ω.Rad()
	sW, cW := math.Sincos(W)
	sβ, cβ := math.Sincos(β.Rad())
	sI, cI := math.Sincos(inclination.Rad())
	A := math.Atan2(sW*cβ*cI-sβ*sI, cW*cβ)

	e := Eph{
		DistanceKM: Δ,
		ELon:       wrap(unit.Angle(A) - F),
		ELat:       unit.Angle(math.Asin(-sW*cβ*sI - sβ*cI)),
	}
	e.PhaseAngle = phase(jde, λ+Δψ, β, Δ)
	e.Illum = (1 + e.PhaseAngle.Cos()) / 2
	return e
}

// phase computes the phase angle from the elongation of the Moon from the
// Sun, Meeus (48.2) and (48.3), with the solar position from the USNO
// approximation in package astro.
func phase(jde float64, λ, β unit.Angle, Δ float64) unit.Angle {
	sunEarth, soe, coe := astro.Se2000(jde - 2400000.5)
	r := math.Sqrt(sunEarth.Square())

	// geocentric unit vector to the Moon, rotated from ecliptic to the
	// equatorial frame sunEarth is expressed in
	sλ, cλ := math.Sincos(λ.Rad())
	sβ, cβ := math.Sincos(β.Rad())
	moon := coord.Cart{
		X: cβ * cλ,
		Y: cβ*sλ*coe - sβ*soe,
		Z: cβ*sλ*soe + sβ*coe,
	}
	earthSun := coord.Cart{X: -sunEarth.X, Y: -sunEarth.Y, Z: -sunEarth.Z}
	cψ := moon.Dot(&earthSun) / r
	if cψ > 1 {
		cψ = 1
	} else if cψ < -1 {
		cψ = -1
	}
	ψ := math.Acos(cψ)
	ΔAU := Δ / auKM
	return unit.Angle(math.Atan2(r*math.Sin(ψ), ΔAU-r*math.Cos(ψ)))
}

// wrap reduces an angle to (-π, π].
func wrap(a unit.Angle) unit.Angle {
	r := math.Mod(a.Rad(), 2*math.Pi)
	if r > math.Pi {
		r -= 2 * math.Pi
	} else if r <= -math.Pi {
		r += 2 * math.Pi
	}
	return unit.Angle(r)
}
