// Package encoder compiles a parsed board into a nuXmv transition-system
// model. The generated text is the product: one bounded-integer state
// variable per player and box coordinate, a move selector over the LURD
// alphabet (lowercase steps, uppercase pushes), prioritized case lists for
// every next-state function, and an LTL obligation that the win condition
// eventually holds.
package encoder

import (
	"fmt"
	"strings"

	"github.com/sokosmv/sokosmv/internal/board"
	"github.com/sokosmv/sokosmv/internal/smvlang"
)

type direction struct {
	step string // lowercase move symbol: plain step
	push string // uppercase move symbol: push
	dx   int
	dy   int
}

var directions = []direction{
	{step: "l", push: "L", dx: -1, dy: 0},
	{step: "r", push: "R", dx: 1, dy: 0},
	{step: "u", push: "U", dx: 0, dy: -1},
	{step: "d", push: "D", dx: 0, dy: 1},
}

// Encode renders b as a complete nuXmv module. Output is byte-for-byte
// reproducible for a given board: walls and boxes are iterated in scan
// order and targets in their sorted order.
//
// Encode does not fail. A board with zero boxes produces a trivially true
// win condition and a board with fewer targets than boxes pairs only the
// first min(boxes, targets) of each; both degenerate models are the
// caller's responsibility to catch.
func Encode(b *board.Board) string {
	n := len(b.Boxes)
	var w strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&w, format+"\n", args...)
	}

	line("-- Sokoban transition system, generated from an XSB board")
	line("MODULE main")
	line("CONSTANTS")
	line("    WIDTH := %d;", b.Width)
	line("    HEIGHT := %d;", b.Height)
	line("    NUM_BOXES := %d;", n)
	line("")
	line("VAR")
	line("    player_x : 0..WIDTH-1;")
	line("    player_y : 0..HEIGHT-1;")
	line("    box_x : array 1..NUM_BOXES of 0..WIDTH-1;")
	line("    box_y : array 1..NUM_BOXES of 0..HEIGHT-1;")
	line("    move : {l, r, u, d, L, R, U, D};")
	line("")
	line("ASSIGN")
	line("    init(player_x) := %d;", b.Player.X)
	line("    init(player_y) := %d;", b.Player.Y)
	for i, box := range b.Boxes {
		line("    init(box_x[%d]) := %d;", i+1, box.X)
		line("    init(box_y[%d]) := %d;", i+1, box.Y)
	}
	line("")

	// A step is legal when the destination cell is free; a push when a box
	// sits in the adjacent cell and the cell beyond it is free.
	step := func(d direction) smvlang.Expr {
		return smvlang.And(
			smvlang.Eq(smvlang.Sym("move"), smvlang.Sym(d.step)),
			FreeCell(smvlang.Offset(playerX(), d.dx), smvlang.Offset(playerY(), d.dy), b),
		)
	}
	push := func(d direction) smvlang.Expr {
		return smvlang.And(
			smvlang.Eq(smvlang.Sym("move"), smvlang.Sym(d.push)),
			BoxAt(smvlang.Offset(playerX(), d.dx), smvlang.Offset(playerY(), d.dy), n),
			FreeCell(smvlang.Offset(playerX(), 2*d.dx), smvlang.Offset(playerY(), 2*d.dy), b),
		)
	}

	// Each axis's case list carries only the guards that can change that
	// axis; everything else falls through to "unchanged".
	line("    next(player_x) := case")
	for _, d := range directions {
		if d.dx == 0 {
			continue
		}
		line("        %s : %s;", step(d).SMV(), smvlang.Offset(playerX(), d.dx).SMV())
	}
	for _, d := range directions {
		if d.dx == 0 {
			continue
		}
		line("        %s : %s;", push(d).SMV(), smvlang.Offset(playerX(), d.dx).SMV())
	}
	line("        TRUE : player_x;")
	line("    esac;")
	line("")

	line("    next(player_y) := case")
	for _, d := range directions {
		if d.dy == 0 {
			continue
		}
		line("        %s : %s;", step(d).SMV(), smvlang.Offset(playerY(), d.dy).SMV())
	}
	for _, d := range directions {
		if d.dy == 0 {
			continue
		}
		line("        %s : %s;", push(d).SMV(), smvlang.Offset(playerY(), d.dy).SMV())
	}
	line("        TRUE : player_y;")
	line("    esac;")
	line("")

	// A box coordinate changes only under the push whose direction matches
	// and only for the box exactly adjacent to the player.
	pushed := func(i int, d direction) smvlang.Expr {
		return smvlang.And(
			smvlang.Eq(smvlang.Sym("move"), smvlang.Sym(d.push)),
			smvlang.And(
				smvlang.Eq(boxX(i), smvlang.Offset(playerX(), d.dx)),
				smvlang.Eq(boxY(i), smvlang.Offset(playerY(), d.dy)),
			),
			FreeCell(smvlang.Offset(playerX(), 2*d.dx), smvlang.Offset(playerY(), 2*d.dy), b),
		)
	}
	for i := 1; i <= n; i++ {
		line("    next(box_x[%d]) := case", i)
		for _, d := range directions {
			if d.dx == 0 {
				continue
			}
			line("        %s : %s;", pushed(i, d).SMV(), smvlang.Offset(boxX(i), d.dx).SMV())
		}
		line("        TRUE : box_x[%d];", i)
		line("    esac;")
		line("    next(box_y[%d]) := case", i)
		for _, d := range directions {
			if d.dy == 0 {
				continue
			}
			line("        %s : %s;", pushed(i, d).SMV(), smvlang.Offset(boxY(i), d.dy).SMV())
		}
		line("        TRUE : box_y[%d];", i)
		line("    esac;")
		line("")
	}

	line("DEFINE")
	line("    win := %s;", winCondition(b).SMV())
	line("")
	line("LTLSPEC")
	line("    F win")

	return w.String()
}

// winCondition pairs box i with the i-th target in sorted order, over the
// first min(boxes, targets) indices. The pairing is positional, not an
// assignment computed from the layout: the win condition is a conjunction
// over a complete pairing, so any consistent relabeling of boxes reaches
// the same set of winning states.
func winCondition(b *board.Board) smvlang.Expr {
	pairs := len(b.Boxes)
	if len(b.Targets) < pairs {
		pairs = len(b.Targets)
	}
	conds := make([]smvlang.Expr, pairs)
	for i := 1; i <= pairs; i++ {
		target := b.Targets[i-1]
		conds[i-1] = smvlang.And(
			smvlang.Eq(boxX(i), smvlang.Int(target.X)),
			smvlang.Eq(boxY(i), smvlang.Int(target.Y)),
		)
	}
	return smvlang.And(conds...)
}
