package domain

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SessionID identifies a job hunt session.
type SessionID uuid.UUID

func NewSessionID() SessionID { return SessionID(uuid.New()) }

func ParseSessionID(s string) (SessionID, error) {
	id, err := uuid.Parse(s)

	return SessionID(id), err
}

func (id SessionID) String() string { return uuid.UUID(id).String() }

func (id SessionID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *SessionID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// SessionStatus is the lifecycle state of a job hunt.
type SessionStatus string

const (
	SessionStatusQueued    SessionStatus = "queued"
	SessionStatusRunning   SessionStatus = "running"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusFailed    SessionStatus = "failed"
)

// Terminal reports whether the session will not change anymore.
func (s SessionStatus) Terminal() bool {
	return s == SessionStatusCompleted || s == SessionStatusFailed
}

// HunterSession is one run of the job hunter agent for a user.
type HunterSession struct {
	ID     SessionID
	UserID UserID
	Status SessionStatus
	// Logs are human-readable progress lines in arrival order.
	Logs []string
	// Criteria is the search criteria exactly as the user submitted it.
	Criteria json.RawMessage

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LogLevel is the severity attached to a hunter log entry.
type LogLevel string

const (
	LogLevelInfo    LogLevel = "info"
	LogLevelSuccess LogLevel = "success"
	LogLevelWarning LogLevel = "warning"
	LogLevelError   LogLevel = "error"
)

// LogEntry is one progress message emitted by the hunter worker.
type LogEntry struct {
	SessionID string    `json:"sessionId"`
	UserID    string    `json:"userId,omitempty"`
	Level     LogLevel  `json:"level"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	// Seq is the position of the entry in the session logs, counting from 1.
	// Zero when unknown.
	Seq int `json:"-"`
}

// Line renders the entry the way it is stored in the session logs.
func (e LogEntry) Line() string {
	level := strings.ToUpper(string(e.Level))
	if level == "" {
		level = strings.ToUpper(string(LogLevelInfo))
	}

	return "[" + level + "] " + e.Message
}

// JobSource is the board a job result was found on.
type JobSource string

const (
	JobSourceAdzuna JobSource = "adzuna"
	JobSourceGoogle JobSource = "google"
	JobSourceJobSpy JobSource = "jobspy"
)

// JobResultStatus tracks whether the user acted on a job result.
type JobResultStatus string

const (
	JobResultStatusNew     JobResultStatus = "new"
	JobResultStatusApplied JobResultStatus = "applied"
)

// JobResult is a job posting found by the hunter, scored against the user.
type JobResult struct {
	ID             uuid.UUID       `json:"_id"`
	UserID         UserID          `json:"userId"`
	SessionID      SessionID       `json:"sessionId"`
	Title          string          `json:"title"`
	Company        string          `json:"company"`
	Location       string          `json:"location"`
	Description    string          `json:"description"`
	ApplyLink      string          `json:"applyLink"`
	Source         JobSource       `json:"source"`
	Status         JobResultStatus `json:"status"`
	MatchScore     float64         `json:"matchScore"`
	RelevanceScore float64         `json:"relevance_score"`
	TierLabel      string          `json:"tierLabel"`
	Tier           string          `json:"tier"`
	Badges         []string        `json:"badges"`
	GapAnalysis    string          `json:"gapAnalysis"`
	Salary         string          `json:"salary"`
	SalaryMin      float64         `json:"salary_min"`
	SalaryMax      float64         `json:"salary_max"`
	Rank           int             `json:"rank"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
