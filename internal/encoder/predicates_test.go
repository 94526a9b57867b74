package encoder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sokosmv/sokosmv/internal/board"
	"github.com/sokosmv/sokosmv/internal/smvlang"
)

func TestInBounds(t *testing.T) {
	got := InBounds(smvlang.Sym("player_x"), smvlang.Sym("player_y")).SMV()
	assert.Equal(t, "((player_x >= 0) & (player_x < WIDTH) & (player_y >= 0) & (player_y < HEIGHT))", got)
}

func TestNotWall(t *testing.T) {
	ex, ey := smvlang.Sym("x"), smvlang.Sym("y")

	t.Run("no walls is the TRUE constant", func(t *testing.T) {
		assert.Equal(t, "TRUE", NotWall(ex, ey, nil).SMV())
	})

	t.Run("single wall", func(t *testing.T) {
		walls := []board.Cell{{X: 3, Y: 4}}
		assert.Equal(t, "!((x = 3) & (y = 4))", NotWall(ex, ey, walls).SMV())
	})

	t.Run("one conjunct per wall", func(t *testing.T) {
		walls := []board.Cell{{X: 1, Y: 0}, {X: 2, Y: 5}}
		got := NotWall(ex, ey, walls).SMV()
		assert.Equal(t, "(!((x = 1) & (y = 0)) & !((x = 2) & (y = 5)))", got)
		assert.Equal(t, 1, strings.Count(got, "(x = 1)"))
		assert.Equal(t, 1, strings.Count(got, "(x = 2)"))
	})
}

func TestNotBox(t *testing.T) {
	ex, ey := smvlang.Sym("x"), smvlang.Sym("y")

	t.Run("zero boxes is the TRUE constant", func(t *testing.T) {
		assert.Equal(t, "TRUE", NotBox(ex, ey, 0).SMV())
	})

	t.Run("single box", func(t *testing.T) {
		assert.Equal(t, "!((x = box_x[1]) & (y = box_y[1]))", NotBox(ex, ey, 1).SMV())
	})

	t.Run("negated disjunction over all boxes", func(t *testing.T) {
		got := NotBox(ex, ey, 2).SMV()
		assert.Equal(t, "!(((x = box_x[1]) & (y = box_y[1])) | ((x = box_x[2]) & (y = box_y[2])))", got)
	})
}

func TestBoxAt(t *testing.T) {
	ex, ey := smvlang.Sym("x"), smvlang.Sym("y")

	t.Run("zero boxes is the FALSE constant", func(t *testing.T) {
		assert.Equal(t, "FALSE", BoxAt(ex, ey, 0).SMV())
	})

	t.Run("disjunction over all boxes", func(t *testing.T) {
		got := BoxAt(ex, ey, 2).SMV()
		assert.Equal(t, "(((x = box_x[1]) & (y = box_y[1])) | ((x = box_x[2]) & (y = box_y[2])))", got)
	})
}

func TestFreeCell(t *testing.T) {
	ex, ey := smvlang.Sym("x"), smvlang.Sym("y")

	t.Run("conjunction of bounds, walls and boxes", func(t *testing.T) {
		b := &board.Board{
			Width: 4, Height: 3,
			Walls: []board.Cell{{X: 0, Y: 0}},
			Boxes: []board.Cell{{X: 2, Y: 1}},
		}
		got := FreeCell(ex, ey, b).SMV()
		want := "(" + InBounds(ex, ey).SMV() +
			" & " + NotWall(ex, ey, b.Walls).SMV() +
			" & " + NotBox(ex, ey, len(b.Boxes)).SMV() + ")"
		assert.Equal(t, want, got)
	})

	t.Run("empty board keeps the vacuous constants in place", func(t *testing.T) {
		b := &board.Board{Width: 2, Height: 2}
		got := FreeCell(ex, ey, b).SMV()
		assert.Contains(t, got, " & TRUE & TRUE)")
	})
}
