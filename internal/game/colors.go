package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/rogue/internal/gamedata"
)

var (
	colorDarkWall    = gamedata.MustParseHexColor("#000064")
	colorLightWall   = gamedata.MustParseHexColor("#826E32")
	colorDarkGround  = gamedata.MustParseHexColor("#323296")
	colorLightGround = gamedata.MustParseHexColor("#C8B432")
)

// TileColor returns the background for a tile given its visibility and
// whether it blocks sight.
func TileColor(visible, wall bool) tcell.Color {
	switch {
	case !visible && wall:
		return colorDarkWall
	case !visible:
		return colorDarkGround
	case wall:
		return colorLightWall
	default:
		return colorLightGround
	}
}
