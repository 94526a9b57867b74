package encoder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokosmv/sokosmv/internal/board"
)

func mustParse(t *testing.T, text string) *board.Board {
	t.Helper()
	b, err := board.ParseString(text)
	require.NoError(t, err)
	return b
}

// caseBlock returns the text of one next-state case expression.
func caseBlock(t *testing.T, model, variable string) string {
	t.Helper()
	start := strings.Index(model, "next("+variable+") := case")
	require.GreaterOrEqual(t, start, 0, "case expression for %s not found", variable)
	end := strings.Index(model[start:], "esac;")
	require.GreaterOrEqual(t, end, 0)
	return model[start : start+end]
}

func TestEncodeMinimalBoard(t *testing.T) {
	model := Encode(mustParse(t, "#####\n#@$.#\n#####\n"))

	assert.Contains(t, model, "MODULE main")
	assert.Contains(t, model, "    WIDTH := 5;")
	assert.Contains(t, model, "    HEIGHT := 3;")
	assert.Contains(t, model, "    NUM_BOXES := 1;")

	assert.Contains(t, model, "    player_x : 0..WIDTH-1;")
	assert.Contains(t, model, "    box_x : array 1..NUM_BOXES of 0..WIDTH-1;")
	assert.Contains(t, model, "    move : {l, r, u, d, L, R, U, D};")

	assert.Contains(t, model, "    init(player_x) := 1;")
	assert.Contains(t, model, "    init(player_y) := 1;")
	assert.Contains(t, model, "    init(box_x[1]) := 2;")
	assert.Contains(t, model, "    init(box_y[1]) := 1;")

	// exactly one box is declared, paired with the single target
	assert.Equal(t, 1, strings.Count(model, "init(box_x["))
	assert.Contains(t, model, "    win := ((box_x[1] = 3) & (box_y[1] = 1));")

	assert.Contains(t, model, "LTLSPEC")
	assert.Contains(t, model, "    F win")
}

func TestEncodeAxisDiscipline(t *testing.T) {
	model := Encode(mustParse(t, "#####\n#@$.#\n#####\n"))

	xCase := caseBlock(t, model, "player_x")
	for _, symbol := range []string{"(move = l)", "(move = r)", "(move = L)", "(move = R)"} {
		assert.Contains(t, xCase, symbol)
	}
	for _, symbol := range []string{"(move = u)", "(move = d)", "(move = U)", "(move = D)"} {
		assert.NotContains(t, xCase, symbol)
	}
	assert.Contains(t, xCase, "TRUE : player_x;")

	yCase := caseBlock(t, model, "player_y")
	for _, symbol := range []string{"(move = u)", "(move = d)", "(move = U)", "(move = D)"} {
		assert.Contains(t, yCase, symbol)
	}
	for _, symbol := range []string{"(move = l)", "(move = r)", "(move = L)", "(move = R)"} {
		assert.NotContains(t, yCase, symbol)
	}
}

func TestEncodePushGuards(t *testing.T) {
	model := Encode(mustParse(t, "#####\n#@$.#\n#####\n"))

	// a push right needs a box one cell right of the player and a free
	// cell beyond it
	xCase := caseBlock(t, model, "player_x")
	assert.Contains(t, xCase, "(player_x + 1 = box_x[1])")
	assert.Contains(t, xCase, "player_x + 2")

	boxCase := caseBlock(t, model, "box_x[1]")
	assert.Contains(t, boxCase, "(move = R)")
	assert.Contains(t, boxCase, "((box_x[1] = player_x + 1) & (box_y[1] = player_y))")
	assert.Contains(t, boxCase, "player_x + 2")
	assert.Contains(t, boxCase, "box_x[1] + 1;")
	assert.Contains(t, boxCase, "TRUE : box_x[1];")
}

func TestEncodePairsTargetsPositionally(t *testing.T) {
	// two boxes, three targets: only the first two sorted targets are
	// referenced by the win condition
	model := Encode(mustParse(t, "@$.\n$..\n"))
	assert.Contains(t, model, "    win := (((box_x[1] = 2) & (box_y[1] = 0)) & ((box_x[2] = 1) & (box_y[2] = 1)));")
}

func TestEncodeZeroBoxes(t *testing.T) {
	// no boxes degrades to a trivially true win condition; the model is
	// still emitted
	model := Encode(mustParse(t, "@.\n"))
	assert.Contains(t, model, "    NUM_BOXES := 0;")
	assert.Contains(t, model, "    win := TRUE;")
}

func TestEncodeIsReproducible(t *testing.T) {
	const text = "#######\n#@ $ .#\n# $* .#\n#######\n"
	a := Encode(mustParse(t, text))
	b := Encode(mustParse(t, text))
	assert.Equal(t, a, b)
}
