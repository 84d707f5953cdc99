// Public domain.

// Package moontab defines the tabular artifacts passed between the asciimoon
// commands:  the observation history table read by the selector and the
// cluster center table it writes.
package moontab

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Column names required of an observation table.  Tables may carry any
// number of additional columns; they are ignored.
const (
	ColDistance = "distance_km"
	ColELat     = "libration_elat"
	ColELon     = "libration_elon"
)

// SchemaError lists required columns absent from an input table header.
type SchemaError []string

func (e SchemaError) Error() string {
	return "observation table missing required columns: " + strings.Join(e, ", ")
}

// Table holds the three clustering features of an observation table,
// column major, one element per observation.
type Table struct {
	Distance []float64 // Earth-Moon distance, km
	ELat     []float64 // libration in ecliptic latitude, degrees
	ELon     []float64 // libration in ecliptic longitude, degrees
}

// Len returns the number of observations in the table.
func (t *Table) Len() int { return len(t.Distance) }

// Center is one row of the output table, a cluster center in physical units.
// Index is assigned after sorting by distance, 1-based, zero padded to two
// digits.
type Center struct {
	Index      string
	DistanceKM float64
	ELat       float64
	ELon       float64
}

// ReadObservations reads an observation history table.
//
// The file must be CSV with a header line naming, in any order and possibly
// among other columns, the three required feature columns.  Every row must
// supply a parseable float in each required column; a row that doesn't is a
// hard error, not a skip.  Partial input would silently shift the observed
// ranges and with them every cluster center downstream.
func ReadObservations(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readObservations(f, path)
}

func readObservations(r io.Reader, name string) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	hdr, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: empty observation table", name)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %v", name, err)
	}
	cols := map[string]int{}
	for i, h := range hdr {
		cols[strings.TrimSpace(h)] = i
	}
	var missing SchemaError
	for _, c := range []string{ColDistance, ColELat, ColELon} {
		if _, ok := cols[c]; !ok {
			missing = append(missing, c)
		}
	}
	if missing != nil {
		return nil, missing
	}
	dx, ax, ox := cols[ColDistance], cols[ColELat], cols[ColELon]
	var t Table
	for ln := 2; ; ln++ {
		rec, err := cr.Read()
		if err == io.EOF {
			return &t, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %v", name, err)
		}
		d, err := strconv.ParseFloat(rec[dx], 64)
		if err == nil {
			var la float64
			la, err = strconv.ParseFloat(rec[ax], 64)
			if err == nil {
				var lo float64
				lo, err = strconv.ParseFloat(rec[ox], 64)
				if err == nil {
					t.Distance = append(t.Distance, d)
					t.ELat = append(t.ELat, la)
					t.ELon = append(t.ELon, lo)
					continue
				}
			}
		}
		return nil, fmt.Errorf("%s line %d: %v", name, ln, err)
	}
}

// WriteCenters writes the cluster center table.
//
// Distance is written with exactly one decimal place, the libration angles
// with exactly three, matching the precision of the selector's rounding.
// The table is written to a temporary file in the destination directory and
// renamed into place so that a failure part way never leaves a truncated
// table under the output name.
func WriteCenters(path string, centers []Center) (err error) {
	dir, base := filepath.Split(path)
	f, err := os.CreateTemp(dir, base+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()
	w := csv.NewWriter(f)
	if err = w.Write([]string{"index", ColDistance, ColELat, ColELon}); err != nil {
		return err
	}
	for _, c := range centers {
		err = w.Write([]string{
			c.Index,
			strconv.FormatFloat(c.DistanceKM, 'f', 1, 64),
			strconv.FormatFloat(c.ELat, 'f', 3, 64),
			strconv.FormatFloat(c.ELon, 'f', 3, 64),
		})
		if err != nil {
			return err
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

// ReadCenters reads a table written by WriteCenters.  Used by mkascii to
// join centers with their rendered images.
func ReadCenters(path string) ([]Center, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cr := csv.NewReader(f)
	hdr, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	want := []string{"index", ColDistance, ColELat, ColELon}
	if len(hdr) < len(want) {
		return nil, fmt.Errorf("%s: not a cluster center table", path)
	}
	for i, h := range want {
		if strings.TrimSpace(hdr[i]) != h {
			return nil, fmt.Errorf("%s: not a cluster center table", path)
		}
	}
	var cs []Center
	for ln := 2; ; ln++ {
		rec, err := cr.Read()
		if err == io.EOF {
			return cs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %v", path, err)
		}
		var c Center
		c.Index = rec[0]
		c.DistanceKM, err = strconv.ParseFloat(rec[1], 64)
		if err == nil {
			c.ELat, err = strconv.ParseFloat(rec[2], 64)
			if err == nil {
				c.ELon, err = strconv.ParseFloat(rec[3], 64)
			}
		}
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %v", path, ln, err)
		}
		cs = append(cs, c)
	}
}
