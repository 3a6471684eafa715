package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Faultbox/lumen/internal/lightmap"
	"github.com/Faultbox/lumen/internal/scenario"
	"github.com/Faultbox/lumen/pkg/geom"
)

const cellDoc = `
name: cell
sun_elevation: -30
levels:
  - z: 0
    rows:
      - "#######"
      - "#.....#"
      - "#.L...#"
      - "#.....#"
      - "#######"
viewer:
  pos: [4, 2, 0]
`

func TestRender(t *testing.T) {
	sc, err := scenario.Parse([]byte(cellDoc))
	if err != nil {
		t.Fatalf("failed to parse scenario: %v", err)
	}
	w, err := sc.Build()
	if err != nil {
		t.Fatalf("failed to build world: %v", err)
	}

	opts := lightmap.DefaultOptions()
	opts.SunElevation = *sc.SunElevation
	m := lightmap.New(w, opts, nil)
	v := lightmap.Viewer{Pos: sc.Viewer.Position()}
	if err := m.BuildMapCache(context.Background(), v.Pos); err != nil {
		t.Fatalf("failed to build map cache: %v", err)
	}

	var buf bytes.Buffer
	if err := render(&buf, m, w, v); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	lines := strings.Split(buf.String(), "\n")
	// header, grid, blank, header, grid, trailing newline
	if want := 2*(w.Height()+1) + 2; len(lines) != want {
		t.Fatalf("expected %d lines, got %d", want, len(lines))
	}
	if lines[0] != "light z=0" {
		t.Errorf("expected light header, got %q", lines[0])
	}
	for i, row := range lines[1 : w.Height()+1] {
		if len(row) != w.Width() {
			t.Errorf("light row %d: expected width %d, got %d", i, w.Width(), len(row))
		}
	}

	view := lines[w.Height()+3:]
	if view[2][4] != '@' {
		t.Errorf("expected viewer glyph at (4,2), got %q", view[2][4])
	}
	if got, want := view[2][2], litGlyphs[m.ApparentLightAt(geom.Tripoint{X: 2, Y: 2}, v)]; got != want {
		t.Errorf("expected lamp tile %q, got %q", want, got)
	}
	if view[2][2] == ' ' {
		t.Error("expected lamp tile to be visible")
	}
}
