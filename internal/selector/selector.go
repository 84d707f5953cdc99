// Public domain.

// Package selector implements the asciimoon point-selection algorithm.
//
// A Selector reduces an arbitrarily large lunar observation table to a
// fixed, small number of representative parameter combinations.  The
// observations are augmented with a synthetic grid of points spread evenly
// over the observed ranges, the combined set is min-max normalized and
// clustered with mini-batch k-means, and the cluster centers are mapped
// back to physical units, rounded, sorted by distance and indexed.
//
// The synthetic grid is the load-bearing trick.  Real lunar sampling is
// temporally biased, so clustering the raw table concentrates centers where
// history happened to look.  Grid points pull the centers toward even
// coverage of the observed volume; they participate in the fit but are
// never emitted.
package selector

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/soniakeys/asciimoon/internal/moontab"
)

// The three clustering features, in column order of the output table.
const nFeature = 3

var featureName = [nFeature]string{
	moontab.ColDistance, moontab.ColELat, moontab.ColELon}

// Output rounding, decimal places per feature.
var featurePrec = [nFeature]int{1, 3, 3}

// ConfigError indicates a Config invalid in itself or incompatible with the
// size of the input table.
type ConfigError string

func (e ConfigError) Error() string { return string(e) }

// DataError indicates an observation table too degenerate to cluster:
// no rows, or a feature with zero observed range.
type DataError string

func (e DataError) Error() string { return string(e) }

// Config holds the selector parameters.  Zero values are not useful;
// start from DefaultConfig.
type Config struct {
	Clusters  int    // number of centers selected
	GridRes   int    // synthetic grid points per dimension
	Seed      uint64 // seed for the clustering RNG
	BatchSize int    // mini-batch size, clamped to the point count
	NInit     int    // number of seeded restarts
}

// DefaultConfig returns the parameters of the production pipeline.
func DefaultConfig() Config {
	return Config{Clusters: 31, GridRes: 10, Seed: 42, BatchSize: 1000, NInit: 3}
}

// A Selector selects cluster centers from observation tables.
type Selector struct {
	cfg Config
}

// New validates cfg and creates a Selector.
func New(cfg Config) (*Selector, error) {
	switch {
	case cfg.Clusters < 1:
		return nil, ConfigError("cluster count must be positive")
	case cfg.GridRes < 2:
		return nil, ConfigError("grid resolution must be at least 2")
	case cfg.BatchSize < 1:
		return nil, ConfigError("batch size must be positive")
	case cfg.NInit < 1:
		return nil, ConfigError("initialization count must be positive")
	}
	return &Selector{cfg}, nil
}

// Select runs the point-selection algorithm on an observation table.
//
// The returned centers are in physical units, rounded to output precision,
// sorted ascending by distance and indexed "01", "02", ...  For a fixed
// table and fixed Config the result is deterministic.
func (s *Selector) Select(tab *moontab.Table) ([]moontab.Center, error) {
	if tab.Len() == 0 {
		return nil, DataError("empty observation table")
	}
	cols := [nFeature][]float64{tab.Distance, tab.ELat, tab.ELon}
	var min, max [nFeature]float64
	for i, c := range cols {
		min[i] = floats.Min(c)
		max[i] = floats.Max(c)
		if max[i] == min[i] {
			return nil, DataError(fmt.Sprintf(
				"zero observed range on %s: cannot cluster a degenerate table",
				featureName[i]))
		}
	}

	// augmented feature space: real observations then synthetic grid,
	// all in physical units.
	g := s.cfg.GridRes
	pts := make([][]float64, 0, tab.Len()+g*g*g)
	for r := 0; r < tab.Len(); r++ {
		pts = append(pts, []float64{cols[0][r], cols[1][r], cols[2][r]})
	}
	pts = appendGrid(pts, g, min, max)
	if s.cfg.Clusters > len(pts) {
		return nil, ConfigError(fmt.Sprintf(
			"%d clusters requested from %d points (%d observed + %d grid)",
			s.cfg.Clusters, len(pts), tab.Len(), g*g*g))
	}

	// The normalizer is fitted over the augmented set and its parameters
	// reused to invert the centers.  Fitting over any other point set
	// would silently corrupt the physical-unit mapping.  With the grid
	// bounded by observed min/max the fitted parameters equal min/max of
	// the raw table, but the fit stays over the augmented set so the
	// invariant survives any change to grid construction.
	sc := fitScaler(pts)
	norm := make([][]float64, len(pts))
	for i, p := range pts {
		norm[i] = sc.transform(p)
	}

	centers := s.cluster(norm)

	out := make([]moontab.Center, s.cfg.Clusters)
	for i, c := range centers {
		sc.invert(c)
		out[i] = moontab.Center{
			DistanceKM: roundTo(c[0], featurePrec[0]),
			ELat:       roundTo(c[1], featurePrec[1]),
			ELon:       roundTo(c[2], featurePrec[2]),
		}
	}
	// ties on rounded distance broken on the remaining features so the
	// ordering, and with it the index assignment, stays deterministic.
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.DistanceKM != b.DistanceKM {
			return a.DistanceKM < b.DistanceKM
		}
		if a.ELat != b.ELat {
			return a.ELat < b.ELat
		}
		return a.ELon < b.ELon
	})
	for i := range out {
		out[i].Index = fmt.Sprintf("%02d", i+1)
	}
	return out, nil
}

// appendGrid appends the g³ synthetic grid points to pts.  Each point is g
// evenly spaced fractional positions per dimension mapped onto the observed
// range, so grid points interpolate and never extrapolate.
func appendGrid(pts [][]float64, g int, min, max [nFeature]float64) [][]float64 {
	frac := make([]float64, g)
	for i := range frac {
		frac[i] = float64(i) / float64(g-1)
	}
	for _, fd := range frac {
		for _, fa := range frac {
			for _, fo := range frac {
				pts = append(pts, []float64{
					min[0] + fd*(max[0]-min[0]),
					min[1] + fa*(max[1]-min[1]),
					min[2] + fo*(max[2]-min[2]),
				})
			}
		}
	}
	return pts
}

// scaler is the per-feature min-max transform, invertible given the same
// fitted parameters.
type scaler struct {
	min, rng [nFeature]float64
}

func fitScaler(pts [][]float64) *scaler {
	var sc scaler
	for j := 0; j < nFeature; j++ {
		lo, hi := pts[0][j], pts[0][j]
		for _, p := range pts[1:] {
			if p[j] < lo {
				lo = p[j]
			}
			if p[j] > hi {
				hi = p[j]
			}
		}
		sc.min[j] = lo
		sc.rng[j] = hi - lo
	}
	return &sc
}

func (sc *scaler) transform(p []float64) []float64 {
	q := make([]float64, nFeature)
	for j := range q {
		q[j] = (p[j] - sc.min[j]) / sc.rng[j]
	}
	return q
}

// invert maps a point in normalized space back to physical units, in place.
func (sc *scaler) invert(p []float64) {
	for j := range p {
		p[j] = sc.min[j] + p[j]*sc.rng[j]
	}
}

func roundTo(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}
