// Public domain.

package selector

import (
	"math"

	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

// Rand is the source of randomness for center seeding and mini-batch
// sampling.  It is satisfied by *rand.Rand of golang.org/x/exp/rand; the
// interface exists so tests can substitute fixed sequences.
type Rand interface {
	Intn(int) int
	Float64() float64
}

// some parameters for the algorithm
const (
	maxIter      = 100  // mini-batch iterations per restart
	shiftTol     = 1e-4 // center movement, squared, considered converged
	reassignIter = 10   // iterations between empty-cluster reassignment
)

// cluster runs mini-batch k-means on the normalized point set and returns
// exactly cfg.Clusters centers, still in normalized space.
//
// The run is restarted cfg.NInit times, seeding the PCG with Seed, Seed+1,
// ...  Each restart is cheap at this data scale; the restart with the
// lowest inertia over the full point set wins.  Everything is single
// threaded and iteration order is stable, so a fixed Config gives a fixed
// result.
func (s *Selector) cluster(pts [][]float64) [][]float64 {
	batch := s.cfg.BatchSize
	if batch > len(pts) {
		batch = len(pts)
	}
	rnd := xrand.New(&xrand.PCGSource{})
	var best [][]float64
	bestInertia := math.Inf(1)
	for i := 0; i < s.cfg.NInit; i++ {
		rnd.Seed(s.cfg.Seed + uint64(i))
		r := newRun(pts, s.cfg.Clusters, batch, rnd)
		r.fit()
		if in := r.inertia(); in < bestInertia {
			best, bestInertia = r.centers, in
		}
	}
	return best
}

// Workspace for one mini-batch k-means restart.
type kmRun struct {
	pts     [][]float64
	batch   int
	rnd     Rand
	centers [][]float64
	counts  []float64 // per-center assignment counts, drive the learning rate
	prev    []float64 // flattened center snapshot for the convergence test
}

func newRun(pts [][]float64, k, batch int, rnd Rand) *kmRun {
	r := &kmRun{
		pts:     pts,
		batch:   batch,
		rnd:     rnd,
		centers: make([][]float64, k),
		counts:  make([]float64, k),
		prev:    make([]float64, k*nFeature),
	}
	r.seed()
	return r
}

// seed places the k initial centers on points of the data set, k-means++
// style:  the first uniformly, each further point with probability
// proportional to its squared distance from the centers chosen so far.
func (r *kmRun) seed() {
	k := len(r.centers)
	c0 := r.pts[r.rnd.Intn(len(r.pts))]
	r.centers[0] = append([]float64{}, c0...)
	d2 := make([]float64, len(r.pts))
	for i, p := range r.pts {
		d2[i] = sqDist(p, c0)
	}
	for c := 1; c < k; c++ {
		total := floats.Sum(d2)
		var next []float64
		if total == 0 {
			// all remaining points coincide with chosen centers
			next = r.pts[r.rnd.Intn(len(r.pts))]
		} else {
			target := r.rnd.Float64() * total
			i := 0
			for sum := d2[0]; sum < target && i < len(d2)-1; {
				i++
				sum += d2[i]
			}
			next = r.pts[i]
		}
		r.centers[c] = append([]float64{}, next...)
		for i, p := range r.pts {
			if d := sqDist(p, next); d < d2[i] {
				d2[i] = d
			}
		}
	}
}

// fit runs mini-batch updates until the centers stop moving or maxIter is
// reached.
func (r *kmRun) fit() {
	for it := 0; it < maxIter; it++ {
		r.snapshot()
		for b := 0; b < r.batch; b++ {
			p := r.pts[r.rnd.Intn(len(r.pts))]
			c := r.nearest(p)
			r.counts[c]++
			eta := 1 / r.counts[c]
			floats.AddScaledTo(r.centers[c], r.centers[c], eta,
				diff(p, r.centers[c]))
		}
		if it > 0 && it%reassignIter == 0 {
			r.reassignEmpty()
		}
		if r.shift() < shiftTol {
			break
		}
	}
	r.reassignEmpty()
}

// reassignEmpty moves any center that no batch sample has ever claimed onto
// a random data point.  With the grid augmentation this is rare, but the
// output contract is exactly k meaningful centers, never a stranded seed.
func (r *kmRun) reassignEmpty() {
	for c, n := range r.counts {
		if n == 0 {
			copy(r.centers[c], r.pts[r.rnd.Intn(len(r.pts))])
		}
	}
}

func (r *kmRun) nearest(p []float64) int {
	best, bestD := 0, math.Inf(1)
	for c, ctr := range r.centers {
		if d := sqDist(p, ctr); d < bestD {
			best, bestD = c, d
		}
	}
	return best
}

func (r *kmRun) snapshot() {
	for c, ctr := range r.centers {
		copy(r.prev[c*nFeature:], ctr)
	}
}

// shift returns the total squared center displacement since snapshot.
func (r *kmRun) shift() float64 {
	var sum float64
	for c, ctr := range r.centers {
		sum += sqDist(ctr, r.prev[c*nFeature:(c+1)*nFeature])
	}
	return sum
}

// inertia is the sum over all points of squared distance to the nearest
// center, the quality measure used to pick among restarts.
func (r *kmRun) inertia() float64 {
	var sum float64
	for _, p := range r.pts {
		sum += sqDist(p, r.centers[r.nearest(p)])
	}
	return sum
}

func sqDist(a, b []float64) float64 {
	d := floats.Distance(a, b, 2)
	return d * d
}

func diff(a, b []float64) []float64 {
	d := make([]float64, len(a))
	floats.SubTo(d, a, b)
	return d
}
