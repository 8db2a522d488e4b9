package storage

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samdwyer/backrooms/internal/entity"
	"github.com/samdwyer/backrooms/internal/world"
)

// Save records are one "label: value" pair per line in a fixed order.
var (
	enemyLabels  = []string{"chunk_x", "chunk_y", "pos_x", "pos_y"}
	playerLabels = []string{"chunk_x", "chunk_y", "pos_x", "pos_y", "camera_x", "camera_y", "stamina", "health"}
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeRecord(w io.Writer, labels, values []string) error {
	bw := bufio.NewWriter(w)
	for i, label := range labels {
		fmt.Fprintf(bw, "%s: %s\n", label, values[i])
	}
	return bw.Flush()
}

// readRecord reads one value per expected label. A wrong label is recorded
// as a warning and the value is still taken by position.
func readRecord(r io.Reader, labels []string) (values, warnings []string, err error) {
	sc := bufio.NewScanner(r)
	for i, label := range labels {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, warnings, err
			}
			return nil, warnings, fmt.Errorf("record ends before line %d (%s): %w", i+1, label, io.ErrUnexpectedEOF)
		}
		got, value, _ := strings.Cut(sc.Text(), " ")
		if got != label+":" {
			warnings = append(warnings, fmt.Sprintf("line %d: got label %q, want %q", i+1, got, label+":"))
		}
		values = append(values, strings.TrimSpace(value))
	}
	return values, warnings, nil
}

// fieldParser accumulates the first conversion error over a record.
type fieldParser struct {
	values []string
	labels []string
	err    error
}

func (p *fieldParser) intAt(i int) int {
	n, err := strconv.Atoi(p.values[i])
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("%s: %w", p.labels[i], err)
	}
	return n
}

func (p *fieldParser) floatAt(i int) float64 {
	v, err := strconv.ParseFloat(p.values[i], 64)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("%s: %w", p.labels[i], err)
	}
	return v
}

// EncodeEnemy writes an enemy save record.
func EncodeEnemy(w io.Writer, e *entity.Enemy) error {
	return writeRecord(w, enemyLabels, []string{
		strconv.Itoa(e.Chunk.X), strconv.Itoa(e.Chunk.Y),
		formatFloat(e.Pos.X), formatFloat(e.Pos.Y),
	})
}

// DecodeEnemy reads an enemy save record and gives it id.
func DecodeEnemy(r io.Reader, id int) (*entity.Enemy, []string, error) {
	values, warnings, err := readRecord(r, enemyLabels)
	if err != nil {
		return nil, warnings, fmt.Errorf("enemy %d: %w", id, err)
	}
	p := fieldParser{values: values, labels: enemyLabels}
	e := entity.NewEnemy(id,
		world.ChunkCoord{X: p.intAt(0), Y: p.intAt(1)},
		world.Vec2{X: p.floatAt(2), Y: p.floatAt(3)},
	)
	if p.err != nil {
		return nil, warnings, fmt.Errorf("enemy %d: %w", id, p.err)
	}
	return e, warnings, nil
}

// EncodePlayer writes the player save record.
func EncodePlayer(w io.Writer, pl *entity.Player) error {
	return writeRecord(w, playerLabels, []string{
		strconv.Itoa(pl.Chunk.X), strconv.Itoa(pl.Chunk.Y),
		formatFloat(pl.Pos.X), formatFloat(pl.Pos.Y),
		formatFloat(pl.Camera.X), formatFloat(pl.Camera.Y),
		formatFloat(pl.Stamina), strconv.Itoa(pl.Health),
	})
}

// DecodePlayer reads the player save record.
func DecodePlayer(r io.Reader) (*entity.Player, []string, error) {
	values, warnings, err := readRecord(r, playerLabels)
	if err != nil {
		return nil, warnings, fmt.Errorf("player: %w", err)
	}
	p := fieldParser{values: values, labels: playerLabels}
	pl := &entity.Player{
		Chunk:   world.ChunkCoord{X: p.intAt(0), Y: p.intAt(1)},
		Pos:     world.Vec2{X: p.floatAt(2), Y: p.floatAt(3)},
		Camera:  world.Vec2{X: p.floatAt(4), Y: p.floatAt(5)},
		Stamina: p.floatAt(6),
		Health:  p.intAt(7),
	}
	if p.err != nil {
		return nil, warnings, fmt.Errorf("player: %w", p.err)
	}
	return pl, warnings, nil
}
