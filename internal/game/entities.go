package game

import (
	"fmt"

	"firstgame/internal/logsink"
)

// Character is a movable point. It is not drawn.
type Character struct {
	X, Y float64
}

func NewCharacter() *Character { return &Character{} }

func (c *Character) Move(dx, dy float64) {
	c.X += dx
	c.Y += dy
	logsink.For(logsink.TagCharacter).Info(fmt.Sprintf("Character moved to position: (%f, %f)", c.X, c.Y))
}

// Puzzle is a one-way solved flag.
type Puzzle struct {
	solved bool
}

func NewPuzzle() *Puzzle { return &Puzzle{} }

func (p *Puzzle) Solve() {
	p.solved = true
	logsink.For(logsink.TagPuzzle).Info("Puzzle solved!")
}

func (p *Puzzle) Solved() bool { return p.solved }
