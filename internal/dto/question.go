package dto

// QuestionDetail represents a question in admin API responses, including the
// stored answers.
type QuestionDetail struct {
	ID        int64  `json:"id"`
	ImagePath string `json:"image_path"`

	SquareX   int `json:"square_x"`
	SquareY   int `json:"square_y"`
	TriangleX int `json:"triangle_x"`
	TriangleY int `json:"triangle_y"`
	CircleX   int `json:"circle_x"`
	CircleY   int `json:"circle_y"`

	AnswerUp    string `json:"answer_up"`
	AnswerDown  string `json:"answer_down"`
	AnswerLeft  string `json:"answer_left"`
	AnswerRight string `json:"answer_right"`
	AnswerNE    string `json:"answer_ne"`
	AnswerNW    string `json:"answer_nw"`
	AnswerSE    string `json:"answer_se"`
	AnswerSW    string `json:"answer_sw"`

	IsActive bool `json:"is_active"`
}

// QuestionFields carries the multipart form fields of a question create or
// update request. Nil pointers mark fields absent from the form; create
// requires all of them, update applies only the present ones.
type QuestionFields struct {
	SquareX   *int
	SquareY   *int
	TriangleX *int
	TriangleY *int
	CircleX   *int
	CircleY   *int

	AnswerUp    *string
	AnswerDown  *string
	AnswerLeft  *string
	AnswerRight *string
	AnswerNE    *string
	AnswerNW    *string
	AnswerSE    *string
	AnswerSW    *string
}

// CreateQuestionResponse is returned after a successful question creation
type CreateQuestionResponse struct {
	Message    string `json:"message"`
	QuestionID int64  `json:"question_id"`
}

// UpdateQuestionResponse is returned after a successful question update
type UpdateQuestionResponse struct {
	Message string `json:"message"`
}

// ToggleQuestionResponse is returned after toggling one question
type ToggleQuestionResponse struct {
	Message  string `json:"message"`
	IsActive bool   `json:"is_active"`
}

// BatchToggleRequest selects questions to enable or disable at once
type BatchToggleRequest struct {
	QuestionIDs []int64 `json:"question_ids"`
	IsActive    bool    `json:"is_active"`
}

// BatchToggleResponse reports how many rows the batch toggle touched
type BatchToggleResponse struct {
	Message string `json:"message"`
	Updated int64  `json:"updated"`
}

// DeleteQuestionResponse reports the cascade counts of a question deletion
type DeleteQuestionResponse struct {
	Message          string `json:"message"`
	DeletedSessions  int64  `json:"deleted_sessions"`
	DeletedResponses int64  `json:"deleted_responses"`
}
