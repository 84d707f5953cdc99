// Public domain.

package moontab

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "moon_history.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadObservations(t *testing.T) {
	// columns in a non-canonical order, extra columns present
	path := writeTemp(t, `date,libration_elon,distance_km,phase_deg,libration_elat
1925-01-01.00,4.8,356500.0,12.00,-6.1
1925-01-02.00,-7.2,370212.4,24.00,2.3
`)
	tab, err := ReadObservations(path)
	if err != nil {
		t.Fatal(err)
	}
	if tab.Len() != 2 {
		t.Fatalf("got %d rows, want 2", tab.Len())
	}
	if tab.Distance[1] != 370212.4 || tab.ELat[0] != -6.1 || tab.ELon[0] != 4.8 {
		t.Errorf("columns misassigned: %+v", tab)
	}
}

func TestReadObservationsMissingColumns(t *testing.T) {
	path := writeTemp(t, "date,distance_km\n1925-01-01.00,384400.0\n")
	_, err := ReadObservations(path)
	se, ok := err.(SchemaError)
	if !ok {
		t.Fatalf("got %v, want SchemaError", err)
	}
	for _, c := range []string{ColELat, ColELon} {
		if !strings.Contains(se.Error(), c) {
			t.Errorf("error %q does not name %s", se, c)
		}
	}
	if strings.Contains(se.Error(), ColDistance) {
		t.Errorf("error %q names a column that is present", se)
	}
}

func TestReadObservationsBadRow(t *testing.T) {
	path := writeTemp(t, `distance_km,libration_elat,libration_elon
384400.0,0.4,1.1
nope,0.4,1.1
`)
	_, err := ReadObservations(path)
	if err == nil {
		t.Fatal("unparseable row accepted")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error %q does not locate the bad line", err)
	}
}

func TestReadObservationsNoRows(t *testing.T) {
	path := writeTemp(t, "distance_km,libration_elat,libration_elon\n")
	tab, err := ReadObservations(path)
	if err != nil {
		t.Fatal(err)
	}
	if tab.Len() != 0 {
		t.Errorf("got %d rows, want 0", tab.Len())
	}
}

func TestWriteCentersPrecision(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cluster_centers.csv")
	cs := []Center{
		{"01", 357234.125, -1.4, 3}, // values that don't fill the precision
		{"02", 384400, 2.95, -4.186},
	}
	if err := WriteCenters(path, cs); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := `index,distance_km,libration_elat,libration_elon
01,357234.1,-1.400,3.000
02,384400.0,2.950,-4.186
`
	if string(b) != want {
		t.Errorf("got:\n%s\nwant:\n%s", b, want)
	}
}

func TestWriteCentersAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cluster_centers.csv")
	if err := WriteCenters(path, []Center{{"01", 384400, 0, 0}}); err != nil {
		t.Fatal(err)
	}
	// no temporary should survive a successful write
	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(ents) != 1 || ents[0].Name() != "cluster_centers.csv" {
		for _, e := range ents {
			t.Log(e.Name())
		}
		t.Error("stray files next to the output table")
	}
}

func TestCentersRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cluster_centers.csv")
	cs := []Center{
		{"01", 357234.1, -1.422, 3.018},
		{"02", 359119.6, 2.95, -4.185},
	}
	if err := WriteCenters(path, cs); err != nil {
		t.Fatal(err)
	}
	got, err := ReadCenters(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(cs) {
		t.Fatalf("got %d centers, want %d", len(got), len(cs))
	}
	for i := range cs {
		if got[i] != cs[i] {
			t.Errorf("row %d: got %+v, want %+v", i, got[i], cs[i])
		}
	}
}

func TestReadCentersWrongHeader(t *testing.T) {
	path := writeTemp(t, "a,b,c,d\n01,1,2,3\n")
	if _, err := ReadCenters(path); err == nil {
		t.Error("foreign table accepted as a center table")
	}
}
