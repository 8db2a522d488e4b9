package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

const paletteFile = "palette.json"

// StyleDef is one palette entry. Colours are "#RRGGBB"; an empty colour
// keeps the terminal default.
type StyleDef struct {
	FG   string `json:"fg"`
	BG   string `json:"bg"`
	Bold bool   `json:"bold"`
}

// Style converts the entry to a tcell style.
func (d StyleDef) Style() (tcell.Style, error) {
	style := tcell.StyleDefault.Bold(d.Bold)
	if d.FG != "" {
		fg, err := ParseHexColor(d.FG)
		if err != nil {
			return style, err
		}
		style = style.Foreground(fg)
	}
	if d.BG != "" {
		bg, err := ParseHexColor(d.BG)
		if err != nil {
			return style, err
		}
		style = style.Background(bg)
	}
	return style, nil
}

// Palette holds the render styles of every drawn element.
type Palette struct {
	Wall   StyleDef `json:"wall"`
	Floor  StyleDef `json:"floor"`
	Player StyleDef `json:"player"`
	Enemy  StyleDef `json:"enemy"`
	HUD    StyleDef `json:"hud"`
}

// Styles are the resolved tcell styles of a palette.
type Styles struct {
	Wall, Floor, Player, Enemy, HUD tcell.Style
}

// LoadPalette reads the embedded palette.json.
func LoadPalette() (Palette, error) {
	return load[Palette](paletteFile)
}

// Styles resolves every entry, failing on the first bad colour.
func (p Palette) Styles() (Styles, error) {
	var s Styles
	entries := []struct {
		name string
		def  StyleDef
		dst  *tcell.Style
	}{
		{"wall", p.Wall, &s.Wall},
		{"floor", p.Floor, &s.Floor},
		{"player", p.Player, &s.Player},
		{"enemy", p.Enemy, &s.Enemy},
		{"hud", p.HUD, &s.HUD},
	}
	for _, e := range entries {
		style, err := e.def.Style()
		if err != nil {
			return s, fmt.Errorf("palette %s: %w", e.name, err)
		}
		*e.dst = style
	}
	return s, nil
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}
	return tcell.NewHexColor(int32(rgb)), nil
}
