/*
Command mkascii joins the cluster center table with rendered moon imagery.

For each row of data/cluster_centers.csv, mkascii locates the image
renders/NN_moon.png named by the row's index, converts it to character art
with the external program chafa, and collects the row's numeric fields and
the art into one record.  The records, in table order, are written as the
"moons" array of src/render/ascii.json, which moonprint displays.

Usage:

   mkascii [options]
   mkascii -v

Options:

   -i <file>   cluster center table, default data/cluster_centers.csv
   -r <dir>    rendered image directory, default renders
   -o <file>   output file, default src/render/ascii.json

A missing or unconvertible image is reported and skipped; one botched
render should not cost the whole batch.  The exit status is still zero in
that case, as the output file is complete for every image that exists.

-------------
Public domain.
*/
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/soniakeys/exit"

	"github.com/soniakeys/asciimoon/internal/moontab"
	"github.com/soniakeys/asciimoon/internal/render"
)

const versionString = "mkascii version 1.0 Go source."
const copyrightString = "Public domain."

func main() {
	defer exit.Handler()

	flag.Usage = func() {
		os.Stderr.WriteString(`Usage:
  mkascii [options]   assemble ascii.json from centers and renders
  mkascii -v          display version and copyright

Options:
  -i <file>   cluster center table
  -r <dir>    rendered image directory
  -o <file>   output file

For full documentation:
   go doc github.com/soniakeys/asciimoon/mkascii
`)
	}
	fnIn := flag.String("i", "data/cluster_centers.csv", "")
	dirR := flag.String("r", "renders", "")
	fnOut := flag.String("o", filepath.Join("src", "render", "ascii.json"), "")
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

	centers, err := moontab.ReadCenters(*fnIn)
	if err != nil {
		exit.Log(err)
	}
	var f render.File
	skipped := 0
	for _, c := range centers {
		idx, err := strconv.Atoi(c.Index)
		if err != nil {
			log.Printf("%s: bad index %q: %v", *fnIn, c.Index, err)
			skipped++
			continue
		}
		art, err := render.Chafa(filepath.Join(*dirR, c.Index+"_moon.png"))
		if err != nil {
			log.Println(err)
			skipped++
			continue
		}
		f.Moons = append(f.Moons, render.Moon{
			Index:      idx,
			DistanceKM: c.DistanceKM,
			ELat:       c.ELat,
			ELon:       c.ELon,
			ASCII:      art,
		})
	}
	if err := f.WriteFile(*fnOut); err != nil {
		exit.Log(err)
	}
	fmt.Printf("Created %s with %d moon renderings.\n", *fnOut, len(f.Moons))
	if skipped > 0 {
		fmt.Println(skipped, "centers skipped.")
	}
}
