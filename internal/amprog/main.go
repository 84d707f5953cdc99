// Public domain.

// Package amprog implements the asciimoon command.
package amprog

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/soniakeys/exit"

	"github.com/soniakeys/asciimoon/internal/moontab"
	"github.com/soniakeys/asciimoon/internal/selector"
)

const versionString = "asciimoon version 1.0 Go source."
const copyrightString = "Public domain."

const defaultObs = "data/moon_history.csv"
const defaultOut = "data/cluster_centers.csv"

func Main() {
	defer exit.Handler()

	cl := parseCommandLine()
	cfg, repeatable := readConfig(cl)
	if !repeatable {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	s, err := selector.New(cfg)
	if err != nil {
		exit.Log(err)
	}
	tab, err := moontab.ReadObservations(cl.fnObs)
	if err != nil {
		exit.Log(err)
	}
	fmt.Printf("Reading %s, %d observations.\n", cl.fnObs, tab.Len())
	g3 := cfg.GridRes * cfg.GridRes * cfg.GridRes
	fmt.Printf("Clustering %d points, %d clusters.\n", tab.Len()+g3, cfg.Clusters)
	centers, err := s.Select(tab)
	if err != nil {
		exit.Log(err)
	}
	if err = moontab.WriteCenters(cl.fnOut, centers); err != nil {
		exit.Log(err)
	}
	fmt.Println("Writing", cl.fnOut)
}

type commandLine struct {
	dc    string // config file
	fnObs string // observations
	fnOut string // output table
	// command line overrides of config file settings.  flagSet records
	// which were given explicitly.
	k, g, b int
	seed    uint64
	flagSet map[string]bool
}

func parseCommandLine() *commandLine {
	var cl commandLine
	def := selector.DefaultConfig()
	dh := flag.Bool("h", false, "")
	dv := flag.Bool("v", false, "")
	flag.StringVar(&cl.dc, "c", "", "")
	flag.StringVar(&cl.fnOut, "o", defaultOut, "")
	flag.IntVar(&cl.k, "k", def.Clusters, "")
	flag.IntVar(&cl.g, "g", def.GridRes, "")
	flag.IntVar(&cl.b, "b", def.BatchSize, "")
	flag.Uint64Var(&cl.seed, "seed", def.Seed, "")
	flag.Usage = func() {
		os.Stderr.WriteString(`
Usage: asciimoon [options] [obsfile]   select cluster centers from obsfile
       asciimoon -h                    display help
       asciimoon -v                    display version and copyright

Obsfile defaults to ` + defaultObs + `.

Options:
       -c <config-file>
       -o <output-file>
       -k <clusters>
       -g <grid resolution>
       -seed <random seed>
       -b <mini-batch size>

For full documentation:
   go doc github.com/soniakeys/asciimoon
`)
	}
	flag.Parse()
	switch {
	case *dh:
		flag.Usage()
		os.Exit(0)
	case *dv:
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		os.Exit(0)
	case flag.NArg() > 1:
		flag.Usage()
		os.Exit(1)
	}
	cl.fnObs = defaultObs
	if flag.NArg() == 1 {
		cl.fnObs = flag.Arg(0)
	}
	cl.flagSet = map[string]bool{}
	flag.Visit(func(f *flag.Flag) { cl.flagSet[f.Name] = true })
	return &cl
}

// readConfig resolves the selector configuration:  defaults, then the
// config file if one was named, then explicit command line options.
func readConfig(cl *commandLine) (cfg selector.Config, repeatable bool) {
	cfg = selector.DefaultConfig()
	repeatable = true
	if cl.dc > "" {
		f, err := os.Open(cl.dc)
		if err != nil {
			exit.Log(err)
		}
		repeatable, err = parseConfig(f, &cfg)
		f.Close()
		if err != nil {
			exit.Log(err)
		}
	}
	if cl.flagSet["k"] {
		cfg.Clusters = cl.k
	}
	if cl.flagSet["g"] {
		cfg.GridRes = cl.g
	}
	if cl.flagSet["b"] {
		cfg.BatchSize = cl.b
	}
	if cl.flagSet["seed"] {
		cfg.Seed = cl.seed
	}
	return
}
