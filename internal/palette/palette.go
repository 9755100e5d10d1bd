// Package palette holds the ANSI sequences and color palettes behind the
// built-in themes.
package palette

import "strconv"

const (
	Reset         = "\x1b[0m"
	Bold          = "\x1b[1m"
	Dim           = "\x1b[2m"
	Italic        = "\x1b[3m"
	Strikethrough = "\x1b[9m"
)

// Palette assigns a foreground color sequence to each semantic role.
type Palette struct {
	Text          string
	Bold          string
	Italic        string
	Strikethrough string
	Status        string
}

func fg(r, g, b int) string {
	return "\x1b[38;2;" + strconv.Itoa(r) + ";" + strconv.Itoa(g) + ";" + strconv.Itoa(b) + "m"
}

var (
	PaletteDefault = Palette{
		Status: Dim,
	}
	PaletteGruvbox = Palette{
		Text:          fg(235, 219, 178),
		Bold:          fg(250, 189, 47),
		Italic:        fg(131, 165, 152),
		Strikethrough: fg(146, 131, 116),
		Status:        fg(254, 128, 25),
	}
	PaletteDracula = Palette{
		Text:          fg(248, 248, 242),
		Bold:          fg(255, 121, 198),
		Italic:        fg(139, 233, 253),
		Strikethrough: fg(98, 114, 164),
		Status:        fg(189, 147, 249),
	}
	PaletteNord = Palette{
		Text:          fg(216, 222, 233),
		Bold:          fg(136, 192, 208),
		Italic:        fg(163, 190, 140),
		Strikethrough: fg(76, 86, 106),
		Status:        fg(235, 203, 139),
	}
	PaletteTokyoNight = Palette{
		Text:          fg(192, 202, 245),
		Bold:          fg(255, 158, 100),
		Italic:        fg(125, 207, 255),
		Strikethrough: fg(86, 95, 137),
		Status:        fg(187, 154, 247),
	}
	PaletteSolarizedLight = Palette{
		Text:          fg(101, 123, 131),
		Bold:          fg(203, 75, 22),
		Italic:        fg(38, 139, 210),
		Strikethrough: fg(147, 161, 161),
		Status:        fg(108, 113, 196),
	}
)
