// Public domain.

// Package render holds the ascii.json data model shared by the mkascii and
// moonprint commands, the chafa invocation that produces the art, and a few
// statistics over finished art.
package render

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Moon is one record of ascii.json:  the physical parameters of a cluster
// center joined with its rendered text representation.
type Moon struct {
	Index      int     `json:"index"`
	DistanceKM float64 `json:"distance_km"`
	ELat       float64 `json:"libration_elat"`
	ELon       float64 `json:"libration_elon"`
	ASCII      string  `json:"ascii"`
}

// File is the envelope of ascii.json, an ordered list under one named key.
type File struct {
	Moons []Moon `json:"moons"`
}

// ReadFile loads an ascii.json file.
func ReadFile(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err = json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return &f, nil
}

// WriteFile writes an ascii.json file, indented for the curious, renamed
// into place like the tables are.
func (f *File) WriteFile(path string) error {
	b, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	dir, base := filepath.Split(path)
	t, err := os.CreateTemp(dir, base+".*")
	if err != nil {
		return err
	}
	if _, err = t.Write(b); err != nil {
		t.Close()
		os.Remove(t.Name())
		return err
	}
	if err = t.Close(); err != nil {
		os.Remove(t.Name())
		return err
	}
	return os.Rename(t.Name(), path)
}

// Chafa converts an image to fixed-width character art with the external
// program chafa.  The symbol set and sizing arguments are pinned; moonprint
// output depends on them.
func Chafa(imgPath string) (string, error) {
	out, err := exec.Command("chafa",
		"-f", "symbols",
		"-c", "none",
		"--symbols", "ascii,-block",
		"--work", "2",
		"--font-ratio", "10/22",
		"-s", "60x",
		"-p", "off",
		imgPath).Output()
	if err != nil {
		return "", fmt.Errorf("chafa %s: %v", imgPath, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Stats summarizes the shape of a piece of character art.
type Stats struct {
	Lines      int // total lines
	InkLines   int // lines with at least one non-space character
	Columns    int // widest line, in runes
	InkColumns int // most non-space runes on any one line
}

// Measure computes Stats for art as produced by Chafa.
func Measure(art string) Stats {
	var st Stats
	for _, line := range strings.Split(art, "\n") {
		st.Lines++
		if strings.TrimSpace(line) != "" {
			st.InkLines++
		}
		if w := utf8.RuneCountInString(line); w > st.Columns {
			st.Columns = w
		}
		ink := 0
		for _, r := range line {
			if !unicode.IsSpace(r) {
				ink++
			}
		}
		if ink > st.InkColumns {
			st.InkColumns = ink
		}
	}
	return st
}
