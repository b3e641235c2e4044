package dto

// StartQuizRequest is the demographic payload opening a new test session.
// Name is optional; injury_age is optional but must be numeric when present.
type StartQuizRequest struct {
	Name             string `json:"name"`
	AgeGroup         string `json:"age_group"`
	Gender           string `json:"gender"`
	Education        string `json:"education"`
	VisionStatus     string `json:"vision_status"`
	InjuryAge        string `json:"injury_age"`
	BrailleAbility   string `json:"braille_ability"`
	MobilityAbility  string `json:"mobility_ability"`
	DrawingFrequency string `json:"drawing_frequency"`
	MuseumExperience string `json:"museum_experience"`
}

// StartQuizResponse returns the created session and the chosen question's
// public data. The stored answers are withheld.
type StartQuizResponse struct {
	Message       string   `json:"message"`
	SessionID     int64    `json:"session_id"`
	QuestionID    int64    `json:"question_id"`
	QuestionOrder []string `json:"question_order"`
	QuestionImage string   `json:"question_image"`
	SquareX       int      `json:"square_x"`
	SquareY       int      `json:"square_y"`
	TriangleX     int      `json:"triangle_x"`
	TriangleY     int      `json:"triangle_y"`
	CircleX       int      `json:"circle_x"`
	CircleY       int      `json:"circle_y"`
}

// SubmitAnswerRequest records one answer to one direction
type SubmitAnswerRequest struct {
	Direction string `json:"direction"`
	Answer    string `json:"answer"`
	TimeMS    int64  `json:"time_ms"`
}

// SubmitAnswerResponse gives immediate feedback on a recorded answer.
// CorrectAnswer is null for directions outside the known set.
type SubmitAnswerResponse struct {
	IsCorrect     bool    `json:"is_correct"`
	CorrectAnswer *string `json:"correct_answer"`
}

// QuizResultResponse carries the finalized aggregates: accuracy as a
// percentage string and average reaction time in seconds, both with two
// decimals.
type QuizResultResponse struct {
	Accuracy            string `json:"accuracy"`
	AverageReactionTime string `json:"average_reaction_time"`
}
