package encoder

import (
	"fmt"

	"github.com/sokosmv/sokosmv/internal/board"
	"github.com/sokosmv/sokosmv/internal/smvlang"
)

// The model's variable vocabulary. The trace decoder matches assignments to
// the move selector by name, so these spellings are a contract, not a
// formatting choice.
func playerX() smvlang.Expr { return smvlang.Sym("player_x") }
func playerY() smvlang.Expr { return smvlang.Sym("player_y") }

func boxX(i int) smvlang.Expr {
	return smvlang.Sym(fmt.Sprintf("box_x[%d]", i))
}

func boxY(i int) smvlang.Expr {
	return smvlang.Sym(fmt.Sprintf("box_y[%d]", i))
}

// InBounds holds when the cell (ex, ey) lies on the board. Bounds are the
// symbolic WIDTH and HEIGHT constants declared by the model.
func InBounds(ex, ey smvlang.Expr) smvlang.Expr {
	return smvlang.And(
		smvlang.Geq(ex, smvlang.Int(0)),
		smvlang.Lt(ex, smvlang.Sym("WIDTH")),
		smvlang.Geq(ey, smvlang.Int(0)),
		smvlang.Lt(ey, smvlang.Sym("HEIGHT")),
	)
}

// NotWall holds when the cell (ex, ey) is not one of the wall cells. Walls
// contribute one conjunct each, in board scan order; no walls renders the
// TRUE constant.
func NotWall(ex, ey smvlang.Expr, walls []board.Cell) smvlang.Expr {
	if len(walls) == 0 {
		return smvlang.True()
	}
	conds := make([]smvlang.Expr, len(walls))
	for i, w := range walls {
		conds[i] = smvlang.Not(smvlang.And(
			smvlang.Eq(ex, smvlang.Int(w.X)),
			smvlang.Eq(ey, smvlang.Int(w.Y)),
		))
	}
	return smvlang.And(conds...)
}

// NotBox holds when no box occupies the cell (ex, ey). Zero boxes renders
// the TRUE constant.
func NotBox(ex, ey smvlang.Expr, numBoxes int) smvlang.Expr {
	if numBoxes == 0 {
		return smvlang.True()
	}
	return smvlang.Not(occupied(ex, ey, numBoxes))
}

// BoxAt holds when some box occupies the cell (ex, ey). Zero boxes renders
// the FALSE constant.
func BoxAt(ex, ey smvlang.Expr, numBoxes int) smvlang.Expr {
	if numBoxes == 0 {
		return smvlang.False()
	}
	return occupied(ex, ey, numBoxes)
}

func occupied(ex, ey smvlang.Expr, numBoxes int) smvlang.Expr {
	conds := make([]smvlang.Expr, numBoxes)
	for i := 1; i <= numBoxes; i++ {
		conds[i-1] = smvlang.And(
			smvlang.Eq(ex, boxX(i)),
			smvlang.Eq(ey, boxY(i)),
		)
	}
	return smvlang.Or(conds...)
}

// FreeCell holds when the cell (ex, ey) can be entered by the player or
// receive a pushed box: on the board, not a wall, not occupied by a box.
func FreeCell(ex, ey smvlang.Expr, b *board.Board) smvlang.Expr {
	return smvlang.And(
		InBounds(ex, ey),
		NotWall(ex, ey, b.Walls),
		NotBox(ex, ey, len(b.Boxes)),
	)
}
