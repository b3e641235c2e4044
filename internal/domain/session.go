package domain

import "time"

// TesterProfile holds the demographic self-report collected before a quiz.
// Name is the only optional text field; InjuryAge is optional and numeric.
type TesterProfile struct {
	Name             string
	AgeGroup         string
	Gender           string
	Education        string
	VisionStatus     string
	InjuryAge        *int
	BrailleAbility   string
	MobilityAbility  string
	DrawingFrequency string
	MuseumExperience string
}

// Validate checks every required demographic field and reports the first
// missing one by its wire name.
func (p *TesterProfile) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"age_group", p.AgeGroup},
		{"gender", p.Gender},
		{"education", p.Education},
		{"vision_status", p.VisionStatus},
		{"braille_ability", p.BrailleAbility},
		{"mobility_ability", p.MobilityAbility},
		{"drawing_frequency", p.DrawingFrequency},
		{"museum_experience", p.MuseumExperience},
	}
	for _, r := range required {
		if r.value == "" {
			return NewMissingFieldError(r.field)
		}
	}
	return nil
}

// TestSession represents one tester's run through a single question across
// all eight directions. Aggregates stay nil until finalization.
type TestSession struct {
	ID         int64
	QuestionID int64
	Tester     TesterProfile

	// QuestionOrder is the presentation order for this session: a shuffle of
	// the cardinal group followed by a shuffle of the diagonal group.
	QuestionOrder []Direction

	FinishedAt            *time.Time
	OverallAccuracy       *float64
	AverageReactionTimeMS *int64
}

// NewTestSession creates a session for the chosen question with a freshly
// randomized presentation order.
func NewTestSession(questionID int64, tester TesterProfile) *TestSession {
	return &TestSession{
		QuestionID:    questionID,
		Tester:        tester,
		QuestionOrder: NewPresentationOrder(),
	}
}

// Response represents one recorded answer to one direction within a session.
// Rows are append-only; duplicates for a direction are allowed and all kept.
type Response struct {
	ID             int64
	TestSessionID  int64
	Direction      string
	UserAnswer     string
	CorrectAnswer  string
	IsCorrect      bool
	ReactionTimeMS int64
}
