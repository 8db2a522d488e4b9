// Package storage persists chunks, enemies and the player between runs.
package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samdwyer/backrooms/internal/world"
)

// ErrMalformedTilemap is returned when tile data cannot be parsed.
var ErrMalformedTilemap = errors.New("malformed tilemap")

const layerMarker = "layer 0"

// Tilemap is the on-disk form of a chunk. Cells are indexed [y][x].
type Tilemap struct {
	Wide       int
	High       int
	TileWidth  int
	TileHeight int
	Cells      [][]int
}

// ChunkTilemap converts a resolved chunk to its file form.
func ChunkTilemap(c *world.Chunk) Tilemap {
	t := Tilemap{
		Wide:       world.ChunkCells,
		High:       world.ChunkCells,
		TileWidth:  world.TileSize,
		TileHeight: world.TileSize,
		Cells:      make([][]int, world.ChunkCells),
	}
	for y := range c.Tiles {
		row := make([]int, world.ChunkCells)
		for x, code := range c.Tiles[y] {
			row[x] = int(code)
		}
		t.Cells[y] = row
	}
	return t
}

// Chunk converts the tilemap back into a chunk at coord. The tilemap must
// be exactly one chunk in size.
func (t Tilemap) Chunk(coord world.ChunkCoord) (*world.Chunk, error) {
	if t.Wide != world.ChunkCells || t.High != world.ChunkCells {
		return nil, fmt.Errorf("%w: %dx%d tiles, want %dx%d",
			ErrMalformedTilemap, t.Wide, t.High, world.ChunkCells, world.ChunkCells)
	}
	c := &world.Chunk{Coord: coord}
	for y, row := range t.Cells {
		for x, v := range row {
			c.Tiles[y][x] = world.TileCode(v)
		}
	}
	return c, nil
}

// EncodeTilemap writes t in the text tilemap format: a four line header,
// a blank line, "layer 0", then one line per row of comma-terminated values.
func EncodeTilemap(w io.Writer, t Tilemap) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "tileswide %d\ntileshigh %d\ntilewidth %d\ntileheight %d\n\n%s\n",
		t.Wide, t.High, t.TileWidth, t.TileHeight, layerMarker)
	for _, row := range t.Cells {
		for _, v := range row {
			bw.WriteString(strconv.Itoa(v))
			bw.WriteByte(',')
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Decoded is the result of DecodeTilemap. Warnings lists header problems
// that did not stop parsing.
type Decoded struct {
	Tilemap  Tilemap
	Warnings []string
}

// DecodeTilemap parses the text tilemap format. A wrong "tileswide" or
// "tileshigh" label is recorded as a warning and parsing continues. Lines
// between the size header and "layer 0" are skipped.
func DecodeTilemap(r io.Reader) (Decoded, error) {
	var d Decoded
	br := bufio.NewReader(r)

	wide, err := readSize(br, "tileswide", &d.Warnings)
	if err != nil {
		return d, err
	}
	high, err := readSize(br, "tileshigh", &d.Warnings)
	if err != nil {
		return d, err
	}
	d.Tilemap = Tilemap{Wide: wide, High: high, TileWidth: world.TileSize, TileHeight: world.TileSize}

	for {
		line, err := br.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == layerMarker {
			break
		}
		if n, ok := headerValue(line, "tilewidth"); ok {
			d.Tilemap.TileWidth = n
		}
		if n, ok := headerValue(line, "tileheight"); ok {
			d.Tilemap.TileHeight = n
		}
		if err != nil {
			return d, fmt.Errorf("%w: no %q line", ErrMalformedTilemap, layerMarker)
		}
	}

	d.Tilemap.Cells = make([][]int, high)
	for y := 0; y < high; y++ {
		row := make([]int, wide)
		for x := 0; x < wide; x++ {
			tok, err := br.ReadString(',')
			tok = strings.TrimSpace(strings.TrimSuffix(tok, ","))
			if tok == "" && err != nil {
				return d, fmt.Errorf("%w: tile data ends at row %d column %d", ErrMalformedTilemap, y, x)
			}
			v, convErr := strconv.Atoi(tok)
			if convErr != nil {
				return d, fmt.Errorf("%w: row %d column %d: %v", ErrMalformedTilemap, y, x, convErr)
			}
			row[x] = v
		}
		d.Tilemap.Cells[y] = row
	}
	return d, nil
}

// readSize reads a "<label> <n>" line.
func readSize(br *bufio.Reader, label string, warnings *[]string) (int, error) {
	line, err := br.ReadString('\n')
	if err != nil && line == "" {
		return 0, fmt.Errorf("%w: missing %s line", ErrMalformedTilemap, label)
	}
	line = strings.TrimRight(line, "\r\n")

	got, value, _ := strings.Cut(line, " ")
	if got != label {
		*warnings = append(*warnings, fmt.Sprintf("unexpected tilemap format: got %q, want %q", got, label))
	}
	n, convErr := strconv.Atoi(strings.TrimSpace(value))
	if convErr != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrMalformedTilemap, label, convErr)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %s is negative", ErrMalformedTilemap, label)
	}
	if n > world.ChunkCells {
		return 0, fmt.Errorf("%w: %s %d exceeds %d", ErrMalformedTilemap, label, n, world.ChunkCells)
	}
	return n, nil
}

func headerValue(line, label string) (int, bool) {
	got, value, ok := strings.Cut(line, " ")
	if !ok || got != label {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	return n, err == nil
}
