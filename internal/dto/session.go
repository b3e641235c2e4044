package dto

import "time"

// ResponseDetail is one recorded answer inside a session listing
type ResponseDetail struct {
	ID             int64   `json:"id"`
	Direction      string  `json:"direction"`
	UserAnswer     string  `json:"user_answer"`
	CorrectAnswer  *string `json:"correct_answer"`
	IsCorrect      bool    `json:"is_correct"`
	ReactionTimeMS int64   `json:"reaction_time_ms"`
}

// SessionDetail is one test session with its nested responses, as listed on
// the admin surface.
type SessionDetail struct {
	ID         int64 `json:"id"`
	QuestionID int64 `json:"question_id"`

	TesterName             string `json:"tester_name,omitempty"`
	TesterAgeGroup         string `json:"tester_age_group"`
	TesterGender           string `json:"tester_gender"`
	TesterEducation        string `json:"tester_education"`
	TesterVisionStatus     string `json:"tester_vision_status"`
	TesterInjuryAge        *int   `json:"tester_injury_age"`
	TesterBrailleAbility   string `json:"tester_braille_ability"`
	TesterMobilityAbility  string `json:"tester_mobility_ability"`
	TesterDrawingFrequency string `json:"tester_drawing_frequency"`
	TesterMuseumExperience string `json:"tester_museum_experience"`

	QuestionOrder       []string   `json:"question_order"`
	FinishedAt          *time.Time `json:"finished_at"`
	OverallAccuracy     *float64   `json:"overall_accuracy"`
	AverageReactionTime *int64     `json:"average_reaction_time"`

	Responses []ResponseDetail `json:"responses"`
}

// DeleteSessionResponse reports the responses removed with one session
type DeleteSessionResponse struct {
	Message          string `json:"message"`
	DeletedResponses int64  `json:"deleted_responses"`
}

// BatchDeleteSessionsRequest selects sessions to delete at once
type BatchDeleteSessionsRequest struct {
	SessionIDs []int64 `json:"session_ids"`
}

// BatchDeleteSessionsResponse reports the cascade counts of a batch deletion
type BatchDeleteSessionsResponse struct {
	Message          string `json:"message"`
	DeletedSessions  int64  `json:"deleted_sessions"`
	DeletedResponses int64  `json:"deleted_responses"`
}
