package domain

import "math/rand/v2"

// Direction identifies one of the eight directional stimuli of a question.
type Direction string

const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
	DirectionNE    Direction = "ne"
	DirectionNW    Direction = "nw"
	DirectionSE    Direction = "se"
	DirectionSW    Direction = "sw"
)

// CardinalDirections returns the stage-1 direction group.
func CardinalDirections() []Direction {
	return []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight}
}

// DiagonalDirections returns the stage-2 direction group.
func DiagonalDirections() []Direction {
	return []Direction{DirectionNE, DirectionNW, DirectionSE, DirectionSW}
}

// AllDirections returns all eight directions, cardinals first.
func AllDirections() []Direction {
	return append(CardinalDirections(), DiagonalDirections()...)
}

// ParseDirection validates a direction label. Unknown labels are rejected so
// that no lookup against a question's answers can silently succeed.
func ParseDirection(s string) (Direction, bool) {
	switch Direction(s) {
	case DirectionUp, DirectionDown, DirectionLeft, DirectionRight,
		DirectionNE, DirectionNW, DirectionSE, DirectionSW:
		return Direction(s), true
	}
	return "", false
}

// NewPresentationOrder builds the per-session direction order: the cardinal
// group and the diagonal group are shuffled independently and concatenated.
// The two groups are never interleaved.
func NewPresentationOrder() []Direction {
	stage1 := CardinalDirections()
	stage2 := DiagonalDirections()
	rand.Shuffle(len(stage1), func(i, j int) { stage1[i], stage1[j] = stage1[j], stage1[i] })
	rand.Shuffle(len(stage2), func(i, j int) { stage2[i], stage2[j] = stage2[j], stage2[i] })
	return append(stage1, stage2...)
}
