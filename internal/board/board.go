package board

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Cell is a single board coordinate. X grows rightward, Y grows downward,
// both zero-based.
type Cell struct {
	X int
	Y int
}

// Board is the static layout of a puzzle parsed from XSB text. It is
// immutable once returned by Parse.
//
// Boxes keep the order in which they were encountered scanning the grid
// row by row; box i of the generated model is Boxes[i-1] and that identity
// is fixed for the lifetime of the model. Targets are sorted by (Y, X) so
// that the box-to-target pairing of the win condition is reproducible.
type Board struct {
	Width  int
	Height int

	Walls   []Cell
	Targets []Cell
	Boxes   []Cell
	Player  Cell
}

var (
	ErrEmptyBoard     = errors.New("board has no rows")
	ErrNoPlayer       = errors.New("board has no player marker")
	ErrMultiplePlayer = errors.New("board has more than one player marker")
)

// Parse reads an XSB board. Blank lines are discarded; the remaining lines
// form the grid, with short lines right-padded to the width of the longest
// one. Cell markers follow the XSB convention:
//
//	#  wall
//	.  target
//	$  box
//	@  player
//	*  box on a target
//	+  player on a target
//
// Markers are classified by independent membership, so the superposition
// characters register both of their meanings. A board with no rows, no
// player or more than one player is rejected.
func Parse(r io.Reader) (*Board, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading board data: %w", err)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyBoard
	}

	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}

	b := &Board{
		Width:  width,
		Height: len(lines),
	}
	players := 0
	for y, line := range lines {
		for x := 0; x < len(line); x++ {
			cell := Cell{X: x, Y: y}
			if line[x] == '#' {
				b.Walls = append(b.Walls, cell)
				continue
			}
			if strings.IndexByte(".+*", line[x]) >= 0 {
				b.Targets = append(b.Targets, cell)
			}
			if strings.IndexByte("$*", line[x]) >= 0 {
				b.Boxes = append(b.Boxes, cell)
			}
			if strings.IndexByte("@+", line[x]) >= 0 {
				b.Player = cell
				players++
			}
		}
	}

	if players == 0 {
		return nil, ErrNoPlayer
	}
	if players > 1 {
		return nil, fmt.Errorf("%w: found %d", ErrMultiplePlayer, players)
	}

	sort.Slice(b.Targets, func(i, j int) bool {
		if b.Targets[i].Y != b.Targets[j].Y {
			return b.Targets[i].Y < b.Targets[j].Y
		}
		return b.Targets[i].X < b.Targets[j].X
	})

	return b, nil
}

// ParseString parses an XSB board held in a string.
func ParseString(s string) (*Board, error) {
	return Parse(strings.NewReader(s))
}
