package entity

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/rogue/internal/world"
)

// openRoom returns a 10x10 map with floor everywhere except the outer ring
// and a single wall at (5,5).
func openRoom() *world.Map {
	m := world.NewMap(10, 10)
	for y := 1; y < 9; y++ {
		for x := 1; x < 9; x++ {
			if x == 5 && y == 5 {
				continue
			}
			m.CarveFloor(x, y)
		}
	}
	return m
}

func newPlayer(x, y int) *Entity {
	return New("Player", '@', tcell.ColorRed, x, y, true)
}

func TestIsBlockedByTerrain(t *testing.T) {
	m := openRoom()
	r := NewRoster(newPlayer(2, 2))

	tests := []struct {
		x, y int
		want bool
	}{
		{5, 5, true},  // interior wall
		{0, 0, true},  // outer ring
		{-1, 3, true}, // out of bounds
		{10, 3, true}, // out of bounds
		{3, 3, false}, // floor
		{2, 2, true},  // player
		{8, 8, false}, // floor corner
	}

	for _, tt := range tests {
		if got := IsBlocked(m, r, tt.x, tt.y); got != tt.want {
			t.Errorf("IsBlocked(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestIsBlockedByEntity(t *testing.T) {
	m := openRoom()
	r := NewRoster(newPlayer(2, 2))
	r.Add(New("Orc", 'O', tcell.ColorGreen, 4, 4, true))
	r.Add(New("Corpse", '%', tcell.ColorRed, 6, 6, false))

	if !IsBlocked(m, r, 4, 4) {
		t.Error("blocking monster should block its tile")
	}
	if IsBlocked(m, r, 6, 6) {
		t.Error("non-blocking entity should not block its tile")
	}
}

func TestMoveBy(t *testing.T) {
	m := openRoom()
	player := newPlayer(4, 5)
	r := NewRoster(player)

	// Into the wall at (5,5): rejected.
	if MoveBy(m, r, player, 1, 0) {
		t.Error("move into wall should be rejected")
	}
	if player.X != 4 || player.Y != 5 {
		t.Errorf("position changed to (%d,%d) after rejected move", player.X, player.Y)
	}

	// Open floor: exact displacement.
	if !MoveBy(m, r, player, 0, -1) {
		t.Error("move onto floor should succeed")
	}
	if player.X != 4 || player.Y != 4 {
		t.Errorf("position = (%d,%d), want (4,4)", player.X, player.Y)
	}

	// Diagonal deltas follow the same rule.
	if !MoveBy(m, r, player, -1, -1) {
		t.Error("diagonal move onto floor should succeed")
	}
	if player.X != 3 || player.Y != 3 {
		t.Errorf("position = (%d,%d), want (3,3)", player.X, player.Y)
	}
}

func TestMoveByNeverEntersBlockedTile(t *testing.T) {
	m := openRoom()
	player := newPlayer(1, 1)
	r := NewRoster(player)
	r.Add(New("Troll", 'T', tcell.ColorGreen, 2, 1, true))

	deltas := [][2]int{{0, -1}, {-1, 0}, {1, 0}, {0, 1}, {0, 1}, {1, 0}}
	for _, d := range deltas {
		x, y := player.X, player.Y
		blocked := IsBlocked(m, r, x+d[0], y+d[1])
		moved := MoveBy(m, r, player, d[0], d[1])

		if moved == blocked {
			t.Errorf("delta %v from (%d,%d): moved=%v blocked=%v", d, x, y, moved, blocked)
		}
		if moved && (player.X != x+d[0] || player.Y != y+d[1]) {
			t.Errorf("delta %v from (%d,%d): ended at (%d,%d)", d, x, y, player.X, player.Y)
		}
		if !moved && (player.X != x || player.Y != y) {
			t.Errorf("delta %v from (%d,%d): rejected move changed position", d, x, y)
		}
	}
}

func TestNonBlockingEntityMayShareTile(t *testing.T) {
	m := openRoom()
	player := newPlayer(2, 2)
	r := NewRoster(player)
	ghost := New("Ghost", 'g', tcell.ColorWhite, 3, 2, false)
	r.Add(ghost)

	if !MoveBy(m, r, player, 1, 0) {
		t.Fatal("player should be able to share a tile with a non-blocking entity")
	}
	if !player.At(3, 2) || !ghost.At(3, 2) {
		t.Error("both entities should occupy (3,2)")
	}
}

func TestBlockingEntityCannotEnterOccupiedTile(t *testing.T) {
	m := openRoom()
	player := newPlayer(2, 2)
	r := NewRoster(player)
	orc := New("Orc", 'O', tcell.ColorGreen, 3, 2, true)
	r.Add(orc)

	if MoveBy(m, r, player, 1, 0) {
		t.Error("player should not move onto a blocking monster")
	}
	if MoveBy(m, r, orc, -1, 0) {
		t.Error("monster should not move onto the blocking player")
	}
	if !player.At(2, 2) || !orc.At(3, 2) {
		t.Error("positions changed after rejected moves")
	}
}
