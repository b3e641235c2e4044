package domain

import (
	"context"
	"io"
	"time"
)

// QuestionRepository defines the interface for question persistence.
// Lookups return (nil, nil) when no row matches.
type QuestionRepository interface {
	// List returns all questions, most recently created first
	List(ctx context.Context) ([]*Question, error)

	// GetByID retrieves a question by its ID
	GetByID(ctx context.Context, id int64) (*Question, error)

	// GetRandomActive returns one active question chosen uniformly at random
	GetRandomActive(ctx context.Context) (*Question, error)

	// Create persists a new question and sets its ID
	Create(ctx context.Context, question *Question) error

	// Update replaces all mutable fields of an existing question
	Update(ctx context.Context, question *Question) error

	// SetActive sets the active flag for every listed id in one statement
	// and returns the number of rows updated
	SetActive(ctx context.Context, ids []int64, active bool) (int64, error)

	// Delete removes a question and returns the number of rows deleted
	Delete(ctx context.Context, id int64) (int64, error)
}

// SessionRepository defines the interface for test session persistence.
type SessionRepository interface {
	// Create persists a new session and sets its ID
	Create(ctx context.Context, session *TestSession) error

	// GetByID retrieves a session by its ID
	GetByID(ctx context.Context, id int64) (*TestSession, error)

	// List returns all sessions, newest first
	List(ctx context.Context) ([]*TestSession, error)

	// Finalize writes the aggregate result onto a session
	Finalize(ctx context.Context, id int64, accuracy float64, avgReactionMS int64, finishedAt time.Time) error

	// Delete removes a session and returns the number of rows deleted
	Delete(ctx context.Context, id int64) (int64, error)

	// DeleteByQuestionID removes every session of a question and returns the
	// number of rows deleted
	DeleteByQuestionID(ctx context.Context, questionID int64) (int64, error)
}

// ResponseRepository defines the interface for response persistence.
type ResponseRepository interface {
	// Create persists a new response and sets its ID
	Create(ctx context.Context, response *Response) error

	// ListBySessionID returns all responses of a session in insertion order
	ListBySessionID(ctx context.Context, sessionID int64) ([]*Response, error)

	// ListBySessionIDs returns the responses of many sessions keyed by session id
	ListBySessionIDs(ctx context.Context, sessionIDs []int64) (map[int64][]*Response, error)

	// DeleteBySessionID removes every response of a session and returns the
	// number of rows deleted
	DeleteBySessionID(ctx context.Context, sessionID int64) (int64, error)

	// DeleteByQuestionID removes every response belonging to any session of a
	// question and returns the number of rows deleted
	DeleteByQuestionID(ctx context.Context, questionID int64) (int64, error)
}

// TransactionManager runs a function inside a database transaction. The
// transaction commits when the function returns nil and rolls back otherwise.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ImageStore persists uploaded question images, converting them to a
// compressed web format, and removes stored files best-effort.
type ImageStore interface {
	// Save converts and writes the image, returning the relative path to
	// record in the database
	Save(r io.Reader, originalName string) (string, error)

	// Remove deletes a previously stored file by its relative path
	Remove(relPath string) error
}
