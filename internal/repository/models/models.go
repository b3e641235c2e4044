package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// DirectionOrder is a custom type for the JSONB question_order column.
type DirectionOrder []string

// Value implements the driver.Valuer interface
func (o DirectionOrder) Value() (driver.Value, error) {
	if o == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(o)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (o *DirectionOrder) Scan(value interface{}) error {
	if value == nil {
		*o = DirectionOrder{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("DirectionOrder Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*o = DirectionOrder{}
		return nil
	}
	return json.Unmarshal(bytesToParse, o)
}

// Question is the questions table row.
type Question struct {
	ID          int64          `db:"id"`
	ImagePath   sql.NullString `db:"image_path"`
	SquareX     int            `db:"square_x"`
	SquareY     int            `db:"square_y"`
	TriangleX   int            `db:"triangle_x"`
	TriangleY   int            `db:"triangle_y"`
	CircleX     int            `db:"circle_x"`
	CircleY     int            `db:"circle_y"`
	AnswerUp    string         `db:"answer_up"`
	AnswerDown  string         `db:"answer_down"`
	AnswerLeft  string         `db:"answer_left"`
	AnswerRight string         `db:"answer_right"`
	AnswerNE    string         `db:"answer_ne"`
	AnswerNW    string         `db:"answer_nw"`
	AnswerSE    string         `db:"answer_se"`
	AnswerSW    string         `db:"answer_sw"`
	IsActive    bool           `db:"is_active"`
	CreatedAt   time.Time      `db:"created_at"`
}

func (Question) TableName() string {
	return "questions"
}

// TestSession is the test_sessions table row.
type TestSession struct {
	ID                     int64           `db:"id"`
	QuestionID             int64           `db:"question_id"`
	TesterName             sql.NullString  `db:"tester_name"`
	TesterAgeGroup         string          `db:"tester_age_group"`
	TesterGender           string          `db:"tester_gender"`
	TesterEducation        string          `db:"tester_education"`
	TesterVisionStatus     string          `db:"tester_vision_status"`
	TesterInjuryAge        sql.NullInt64   `db:"tester_injury_age"`
	TesterBrailleAbility   string          `db:"tester_braille_ability"`
	TesterMobilityAbility  string          `db:"tester_mobility_ability"`
	TesterDrawingFrequency string          `db:"tester_drawing_frequency"`
	TesterMuseumExperience string          `db:"tester_museum_experience"`
	QuestionOrder          DirectionOrder  `db:"question_order"`
	FinishedAt             sql.NullTime    `db:"finished_at"`
	OverallAccuracy        sql.NullFloat64 `db:"overall_accuracy"`
	AverageReactionTime    sql.NullInt64   `db:"average_reaction_time"`
}

func (TestSession) TableName() string {
	return "test_sessions"
}

// Response is the responses table row.
type Response struct {
	ID             int64          `db:"id"`
	TestSessionID  int64          `db:"test_session_id"`
	Direction      string         `db:"direction"`
	UserAnswer     string         `db:"user_answer"`
	CorrectAnswer  sql.NullString `db:"correct_answer"`
	IsCorrect      bool           `db:"is_correct"`
	ReactionTimeMS int64          `db:"reaction_time_ms"`
}

func (Response) TableName() string {
	return "responses"
}
