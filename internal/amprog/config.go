// Public domain.

package amprog

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/soniakeys/asciimoon/internal/selector"
)

var rxSetting = regexp.MustCompile(`^[ \t]*([a-z]+)[ \t]*=[ \t]*(.+?)[ \t]*$`)

// parseConfig reads a configuration file, updating cfg in place.
//
// Recognized are comment lines starting with #, blank lines, the bare
// keywords repeatable and random, and key = value settings for clusters,
// grid, seed, batch and ninit.  Anything else is an error; a typo silently
// ignored here would mean clustering with the wrong parameters.
func parseConfig(r io.Reader, cfg *selector.Config) (repeatable bool, err error) {
	repeatable = true
	lr := bufio.NewScanner(r)
	for ln := 1; lr.Scan(); ln++ {
		l := lr.Text()
		if len(l) == 0 || l[0] == '#' {
			continue
		}
		switch l {
		case "repeatable":
			repeatable = true
			continue
		case "random":
			repeatable = false
			continue
		}
		ss := rxSetting.FindStringSubmatch(l)
		if ss == nil {
			return repeatable, fmt.Errorf(
				"unrecognized line in config file: %s", l)
		}
		bad := func(err error) error {
			return fmt.Errorf("config file line %d: %v", ln, err)
		}
		switch ss[1] {
		case "seed":
			var s uint64
			if s, err = strconv.ParseUint(ss[2], 10, 64); err != nil {
				return repeatable, bad(err)
			}
			cfg.Seed = s
			continue
		}
		var v int
		if v, err = strconv.Atoi(ss[2]); err != nil {
			return repeatable, bad(err)
		}
		switch ss[1] {
		case "clusters":
			cfg.Clusters = v
		case "grid":
			cfg.GridRes = v
		case "batch":
			cfg.BatchSize = v
		case "ninit":
			cfg.NInit = v
		default:
			return repeatable, fmt.Errorf(
				"unrecognized line in config file: %s", l)
		}
	}
	return repeatable, lr.Err()
}
