package domain

import (
	"fmt"
	"time"
)

// Question represents one spatial-reasoning item: three shape positions on a
// grid and one pre-defined correct answer per direction.
type Question struct {
	ID        int64
	ImagePath string

	SquareX   int
	SquareY   int
	TriangleX int
	TriangleY int
	CircleX   int
	CircleY   int

	// Answers maps every direction to its correct answer. The map is
	// validated at construction so lookups never fall through to a missing
	// key for a known direction.
	Answers map[Direction]string

	IsActive  bool
	CreatedAt time.Time
}

// NewQuestion creates a new Question instance. Questions start active.
func NewQuestion(imagePath string, squareX, squareY, triangleX, triangleY, circleX, circleY int, answers map[Direction]string) *Question {
	return &Question{
		ImagePath: imagePath,
		SquareX:   squareX,
		SquareY:   squareY,
		TriangleX: triangleX,
		TriangleY: triangleY,
		CircleX:   circleX,
		CircleY:   circleY,
		Answers:   answers,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
}

// Validate validates the question
func (q *Question) Validate() error {
	if len(q.Answers) != len(AllDirections()) {
		return NewValidationError("answers for all eight directions are required")
	}
	for _, d := range AllDirections() {
		if q.Answers[d] == "" {
			return NewValidationError(fmt.Sprintf("answer for direction %q is required", d))
		}
	}
	return nil
}

// AnswerFor returns the correct answer for a direction. The second return
// value is false for directions outside the closed enumeration, which scores
// any submitted answer as incorrect.
func (q *Question) AnswerFor(d Direction) (string, bool) {
	if _, ok := ParseDirection(string(d)); !ok {
		return "", false
	}
	answer, ok := q.Answers[d]
	return answer, ok
}
