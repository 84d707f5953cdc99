// Public domain.

package lunar_test

import (
	"math"
	"testing"

	"github.com/soniakeys/asciimoon/lunar"
	"github.com/soniakeys/meeus/v3/julian"
)

// Sweep a full year at quarter-day steps and check every quantity stays
// inside its physical envelope.  The envelopes are generous; the point is
// catching a wrong unit or a dropped term, which misses by miles.
func TestEnvelope(t *testing.T) {
	jd0 := julian.CalendarGregorianToJD(2024, 1, 1)
	jd1 := julian.CalendarGregorianToJD(2025, 1, 1)
	minD, maxD := math.Inf(1), math.Inf(-1)
	for jd := jd0; jd < jd1; jd += .25 {
		e := lunar.Ephemeris(jd)
		if e.DistanceKM < 356000 || e.DistanceKM > 407000 {
			t.Fatalf("jd %.2f: distance %.1f km", jd, e.DistanceKM)
		}
		if d := e.ELat.Deg(); math.Abs(d) > 8 {
			t.Fatalf("jd %.2f: libration lat %.3f deg", jd, d)
		}
		if d := e.ELon.Deg(); math.Abs(d) > 9 {
			t.Fatalf("jd %.2f: libration lon %.3f deg", jd, d)
		}
		if e.Illum < 0 || e.Illum > 1 {
			t.Fatalf("jd %.2f: illuminated fraction %g", jd, e.Illum)
		}
		if p := e.PhaseAngle.Deg(); p < 0 || p > 180 {
			t.Fatalf("jd %.2f: phase angle %.2f deg", jd, p)
		}
		if e.DistanceKM < minD {
			minD = e.DistanceKM
		}
		if e.DistanceKM > maxD {
			maxD = e.DistanceKM
		}
	}
	// the orbit must actually be exercised:  at least one perigee under
	// 358000 km and one apogee over 406000 km occur in any year
	if minD > 358000 {
		t.Errorf("year minimum distance %.1f km, expected a perigee below 358000", minD)
	}
	if maxD < 406000 {
		t.Errorf("year maximum distance %.1f km, expected an apogee above 406000", maxD)
	}
	t.Logf("2024 distance range %.1f .. %.1f km", minD, maxD)
}

// The 2016 Nov 14 perigee was the closest since 1948, about 356509 km.
func TestClosePerigee(t *testing.T) {
	jd := julian.CalendarGregorianToJD(2016, 11, 14.5)
	e := lunar.Ephemeris(jd)
	if e.DistanceKM > 356700 {
		t.Errorf("2016-11-14.5 distance %.1f km, want < 356700", e.DistanceKM)
	}
	t.Logf("2016-11-14.5: %.1f km, libration %.3f lat %.3f lon, %.0f%% illuminated",
		e.DistanceKM, e.ELat.Deg(), e.ELon.Deg(), e.Illum*100)
	// that perigee coincided with a full moon
	if e.Illum < .97 {
		t.Errorf("2016-11-14.5 illuminated fraction %.3f, want nearly full", e.Illum)
	}
}

// Libration angles oscillate with the anomalistic and draconic months; over
// a year each must visit both signs and reach a few degrees of amplitude.
func TestLibrationOscillates(t *testing.T) {
	jd0 := julian.CalendarGregorianToJD(2024, 1, 1)
	minLat, maxLat := math.Inf(1), math.Inf(-1)
	minLon, maxLon := math.Inf(1), math.Inf(-1)
	for jd := jd0; jd < jd0+365; jd += .5 {
		e := lunar.Ephemeris(jd)
		minLat = math.Min(minLat, e.ELat.Deg())
		maxLat = math.Max(maxLat, e.ELat.Deg())
		minLon = math.Min(minLon, e.ELon.Deg())
		maxLon = math.Max(maxLon, e.ELon.Deg())
	}
	if minLat > -4 || maxLat < 4 {
		t.Errorf("libration lat range [%.2f,%.2f], want beyond ±4°", minLat, maxLat)
	}
	if minLon > -4 || maxLon < 4 {
		t.Errorf("libration lon range [%.2f,%.2f], want beyond ±4°", minLon, maxLon)
	}
}
