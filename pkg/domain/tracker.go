package domain

import (
	"time"

	"github.com/google/uuid"
)

// TrackedJobID identifies a tracked application.
type TrackedJobID uuid.UUID

func NewTrackedJobID() TrackedJobID { return TrackedJobID(uuid.New()) }

func ParseTrackedJobID(s string) (TrackedJobID, error) {
	id, err := uuid.Parse(s)

	return TrackedJobID(id), err
}

func (id TrackedJobID) String() string { return uuid.UUID(id).String() }

func (id TrackedJobID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *TrackedJobID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// Stage is a column of the application pipeline.
type Stage string

const (
	StageSaved     Stage = "saved"
	StageApplied   Stage = "applied"
	StageScreening Stage = "screening"
	StageInterview Stage = "interview"
	StageOffer     Stage = "offer"
	StageRejected  Stage = "rejected"
	StageAccepted  Stage = "accepted"
)

// Stages lists the pipeline in board order.
var Stages = []Stage{ //nolint: gochecknoglobals
	StageSaved, StageApplied, StageScreening, StageInterview, StageOffer, StageRejected, StageAccepted,
}

func (s Stage) Valid() bool {
	for _, st := range Stages {
		if s == st {
			return true
		}
	}

	return false
}

// Priority is how urgent the user considers an application.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// TrackedJobSource is the feature a tracked job was saved from.
type TrackedJobSource string

const (
	TrackedJobSourceHunter  TrackedJobSource = "hunter"
	TrackedJobSourceMatcher TrackedJobSource = "matcher"
	TrackedJobSourceManual  TrackedJobSource = "manual"
)

func (s TrackedJobSource) Valid() bool {
	return s == TrackedJobSourceHunter || s == TrackedJobSourceMatcher || s == TrackedJobSourceManual
}

// InterviewResult is the outcome of an interview round. Empty means unknown.
type InterviewResult string

const (
	InterviewResultPassed  InterviewResult = "passed"
	InterviewResultFailed  InterviewResult = "failed"
	InterviewResultPending InterviewResult = "pending"
	InterviewResultUnknown InterviewResult = ""
)

func (r InterviewResult) Valid() bool {
	switch r {
	case InterviewResultPassed, InterviewResultFailed, InterviewResultPending, InterviewResultUnknown:
		return true
	default:
		return false
	}
}

type StatusChange struct {
	Stage     Stage     `json:"stage"`
	ChangedAt time.Time `json:"changedAt"`
	Note      string    `json:"note"`
}

type Note struct {
	ID        uuid.UUID `json:"_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type Reminder struct {
	ID        uuid.UUID `json:"_id"`
	Date      time.Time `json:"date"`
	Message   string    `json:"message"`
	Completed bool      `json:"completed"`
}

type Attachment struct {
	ID         uuid.UUID `json:"_id"`
	FileName   string    `json:"fileName"`
	FileURL    string    `json:"fileUrl"`
	FileType   string    `json:"fileType"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type Interview struct {
	ID            uuid.UUID       `json:"_id"`
	Round         string          `json:"round"`
	ScheduledDate *time.Time      `json:"scheduledDate,omitempty"`
	Interviewers  string          `json:"interviewers"`
	Feedback      string          `json:"feedback"`
	Result        InterviewResult `json:"result"`
}

// TrackedJob is an application the user follows on the board. IDs are
// serialized as "_id" to keep the wire format the web app already consumes.
type TrackedJob struct {
	ID              TrackedJobID     `json:"_id"`
	UserID          UserID           `json:"userId"`
	Title           string           `json:"title"`
	Company         string           `json:"company"`
	Location        string           `json:"location"`
	Salary          string           `json:"salary"`
	JobType         string           `json:"jobType"`
	Description     string           `json:"description"`
	ApplyLink       string           `json:"applyLink"`
	Stage           Stage            `json:"stage"`
	ApplicationDate *time.Time       `json:"applicationDate,omitempty"`
	StatusHistory   []StatusChange   `json:"statusHistory"`
	Notes           []Note           `json:"notes"`
	Reminders       []Reminder       `json:"reminders"`
	Attachments     []Attachment     `json:"attachments"`
	Interviews      []Interview      `json:"interviews"`
	Source          TrackedJobSource `json:"source"`
	MatchScore      *float64         `json:"matchScore,omitempty"`
	TierLabel       string           `json:"tierLabel"`
	Tier            string           `json:"tier"`
	Badges          []string         `json:"badges"`
	GapAnalysis     string           `json:"gapAnalysis"`
	Priority        Priority         `json:"priority"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// TrackedJobFilter narrows a user's tracked jobs. Empty fields do not filter.
type TrackedJobFilter struct {
	Stage    Stage
	Priority Priority
	// Company matches case-insensitively anywhere in the company name.
	Company string
	// Search matches case-insensitively anywhere in title, company or location.
	Search string
}
