// Public domain.

package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/soniakeys/exit"
	"github.com/soniakeys/meeus/v3/julian"

	"github.com/soniakeys/asciimoon/lunar"
)

const versionString = "mkhist version 1.0 Go source."
const copyrightString = "Public domain."

func main() {
	defer exit.Handler()

	flag.Usage = func() {
		os.Stderr.WriteString(`Usage:
  mkhist [options]   generate the observation history table
  mkhist -v          display version and copyright

Options:
  -from <YYYY-MM-DD>   first epoch, default 1925-01-01
  -to <YYYY-MM-DD>     last epoch, exclusive, default 2025-01-01
  -s <days>            step between epochs, default 1
  -o <file>            output file, default data/moon_history.csv

For full documentation:
   go doc github.com/soniakeys/asciimoon/mkhist
`)
	}
	from := flag.String("from", "1925-01-01", "")
	to := flag.String("to", "2025-01-01", "")
	step := flag.Float64("s", 1, "")
	fnOut := flag.String("o", "data/moon_history.csv", "")
	vers := flag.Bool("v", false, "")
	flag.Parse()
	if *vers {
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		os.Exit(0)
	}
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}
	jd0 := parseDate(*from)
	jd1 := parseDate(*to)
	if jd1 <= jd0 || *step <= 0 {
		exit.Log("date range and step must be positive")
	}

	f, err := os.Create(*fnOut)
	if err != nil {
		exit.Log(err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	mustWrite := func(rec []string) {
		if err := w.Write(rec); err != nil {
			exit.Log(err)
		}
	}
	mustWrite([]string{"date", "distance_km", "libration_elat",
		"libration_elon", "phase_deg", "illum"})
	rows := 0
	for jd := jd0; jd < jd1; jd += *step {
		e := lunar.Ephemeris(jd)
		y, m, d := julian.JDToCalendar(jd)
		mustWrite([]string{
			fmt.Sprintf("%04d-%02d-%05.2f", y, m, d),
			strconv.FormatFloat(e.DistanceKM, 'f', 1, 64),
			strconv.FormatFloat(e.ELat.Deg(), 'f', 3, 64),
			strconv.FormatFloat(e.ELon.Deg(), 'f', 3, 64),
			strconv.FormatFloat(e.PhaseAngle.Deg(), 'f', 2, 64),
			strconv.FormatFloat(e.Illum, 'f', 3, 64),
		})
		rows++
	}
	w.Flush()
	if err := w.Error(); err != nil {
		exit.Log(err)
	}
	fmt.Printf("Writing %s, %d observations.\n", *fnOut, rows)
}

func parseDate(s string) float64 {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		exit.Log(err)
	}
	y, m, d := t.Date()
	return julian.CalendarGregorianToJD(y, int(m), float64(d))
}
