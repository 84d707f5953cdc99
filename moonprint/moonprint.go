// Public domain.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"

	"github.com/soniakeys/exit"

	"github.com/soniakeys/asciimoon/internal/render"
)

const versionString = "moonprint version 1.0 Go source."
const copyrightString = "Public domain."

func main() {
	defer exit.Handler()

	flag.Usage = func() {
		os.Stderr.WriteString(`Usage:
  moonprint [options]   display assembled moon renderings
  moonprint -v          display version and copyright

Options:
  -f <file>   assembled renderings file

For full documentation:
   go doc github.com/soniakeys/asciimoon/moonprint
`)
	}
	fn := flag.String("f", filepath.Join("src", "render", "ascii.json"), "")
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

	f, err := render.ReadFile(*fn)
	if err != nil {
		exit.Log(err)
	}
	if len(f.Moons) == 0 {
		fmt.Println("No moon data found.")
		return
	}
	fmt.Println(len(f.Moons), "moons in the dataset.")
	fmt.Println()
	for i, m := range f.Moons {
		if m.ASCII == "" {
			log.Printf("moon %02d has no rendering, skipped", m.Index)
			continue
		}
		printMoon(m)
		if i < len(f.Moons)-1 {
			fmt.Println()
			fmt.Println()
		}
	}
}

func printMoon(m render.Moon) {
	fmt.Printf("Moon %02d | %.1f km | libration %v lat, %v lon\n",
		m.Index, m.DistanceKM,
		sexa.FmtAngle(unit.AngleFromDeg(m.ELat)),
		sexa.FmtAngle(unit.AngleFromDeg(m.ELon)))
	st := render.Measure(m.ASCII)
	fmt.Printf("%d lines (%d inked), %d columns (%d inked)\n",
		st.Lines, st.InkLines, st.Columns, st.InkColumns)
	fmt.Println(m.ASCII)
}
