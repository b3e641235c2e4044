package domain

import (
	"testing"
)

func fullAnswers() map[Direction]string {
	return map[Direction]string{
		DirectionUp:    "S,T,C",
		DirectionDown:  "C,T,S",
		DirectionLeft:  "T,S,C",
		DirectionRight: "C,S,T",
		DirectionNE:    "S,C,T",
		DirectionNW:    "T,C,S",
		DirectionSE:    "S,T",
		DirectionSW:    "T,S",
	}
}

func TestQuestionValidate(t *testing.T) {
	q := NewQuestion("uploads/q1.png", 1, 2, 3, 1, 2, 3, fullAnswers())
	if err := q.Validate(); err != nil {
		t.Fatalf("valid question should pass validation: %v", err)
	}
	if !q.IsActive {
		t.Error("new questions should start active")
	}

	missing := fullAnswers()
	delete(missing, DirectionSW)
	q = NewQuestion("", 1, 1, 1, 1, 1, 1, missing)
	if err := q.Validate(); err == nil {
		t.Error("question missing an answer should fail validation")
	}

	empty := fullAnswers()
	empty[DirectionNE] = ""
	q = NewQuestion("", 1, 1, 1, 1, 1, 1, empty)
	if err := q.Validate(); err == nil {
		t.Error("question with an empty answer should fail validation")
	}
}

func TestQuestionAnswerFor(t *testing.T) {
	q := NewQuestion("", 1, 1, 1, 1, 1, 1, fullAnswers())

	answer, ok := q.AnswerFor(DirectionUp)
	if !ok || answer != "S,T,C" {
		t.Errorf("AnswerFor(up) = %q, %v", answer, ok)
	}

	if _, ok := q.AnswerFor(Direction("north")); ok {
		t.Error("AnswerFor should reject a direction outside the enumeration")
	}
}

func TestTesterProfileValidate(t *testing.T) {
	profile := TesterProfile{
		AgeGroup:         "18-25",
		Gender:           "female",
		Education:        "university",
		VisionStatus:     "blind_congenital",
		BrailleAbility:   "fluent",
		MobilityAbility:  "independent",
		DrawingFrequency: "weekly",
		MuseumExperience: "several_times",
	}
	if err := profile.Validate(); err != nil {
		t.Fatalf("complete profile should validate: %v", err)
	}

	// Name stays optional.
	profile.Name = ""
	if err := profile.Validate(); err != nil {
		t.Errorf("profile without name should validate: %v", err)
	}

	incomplete := profile
	incomplete.Gender = ""
	err := incomplete.Validate()
	if err == nil {
		t.Fatal("profile without gender should fail validation")
	}
	if err.Error() != "missing required field: gender" {
		t.Errorf("unexpected error message: %q", err.Error())
	}
}
