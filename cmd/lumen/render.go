package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Faultbox/lumen/internal/lightmap"
	"github.com/Faultbox/lumen/internal/world"
	"github.com/Faultbox/lumen/pkg/geom"
)

// litGlyphs maps each lit level to its map character.
var litGlyphs = map[lightmap.LitLevel]byte{
	lightmap.Dark:       '.',
	lightmap.Low:        ':',
	lightmap.BrightOnly: '*',
	lightmap.Lit:        'o',
	lightmap.Bright:     'O',
	lightmap.Blank:      ' ',
}

// render writes two maps of the viewer's level: the light falling on
// every tile, then what the viewer makes of it.
func render(out io.Writer, m *lightmap.Map, w *world.World, v lightmap.Viewer) error {
	bw := bufio.NewWriter(out)
	z := v.Pos.Z

	fmt.Fprintf(bw, "light z=%d\n", z)
	writeGrid(bw, w, func(x, y int) byte {
		return litGlyphs[m.LightAt(geom.Tripoint{X: x, Y: y, Z: z})]
	})

	fmt.Fprintf(bw, "\nview from (%d,%d,%d)\n", v.Pos.X, v.Pos.Y, z)
	writeGrid(bw, w, func(x, y int) byte {
		if x == v.Pos.X && y == v.Pos.Y {
			return '@'
		}
		return litGlyphs[m.ApparentLightAt(geom.Tripoint{X: x, Y: y, Z: z}, v)]
	})
	return bw.Flush()
}

func writeGrid(bw *bufio.Writer, w *world.World, glyph func(x, y int) byte) {
	for y := 0; y < w.Height(); y++ {
		for x := 0; x < w.Width(); x++ {
			bw.WriteByte(glyph(x, y))
		}
		bw.WriteByte('\n')
	}
}
