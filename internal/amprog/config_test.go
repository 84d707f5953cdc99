// Public domain.

package amprog

import (
	"strings"
	"testing"

	"github.com/soniakeys/asciimoon/internal/selector"
)

func TestParseConfig(t *testing.T) {
	cfg := selector.DefaultConfig()
	in := `# production settings
clusters = 12
grid=4
seed = 7
batch = 200
ninit = 2
repeatable
`
	rep, err := parseConfig(strings.NewReader(in), &cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !rep {
		t.Error("repeatable lost")
	}
	want := selector.Config{Clusters: 12, GridRes: 4, Seed: 7, BatchSize: 200, NInit: 2}
	if cfg != want {
		t.Errorf("got %+v, want %+v", cfg, want)
	}
}

func TestParseConfigRandom(t *testing.T) {
	cfg := selector.DefaultConfig()
	rep, err := parseConfig(strings.NewReader("random\n"), &cfg)
	if err != nil {
		t.Fatal(err)
	}
	if rep {
		t.Error("random keyword ignored")
	}
	if cfg != selector.DefaultConfig() {
		t.Error("random keyword changed settings")
	}
}

func TestParseConfigUnknown(t *testing.T) {
	for _, in := range []string{
		"klusters = 12\n",
		"clusters 12\n",
		"clusters = twelve\n",
	} {
		cfg := selector.DefaultConfig()
		if _, err := parseConfig(strings.NewReader(in), &cfg); err == nil {
			t.Errorf("accepted %q", in)
		}
	}
}
