package tracker

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"careeros/pkg/domain"
	"careeros/pkg/serrors"

	"github.com/google/uuid"
)

// dateLayouts are the formats browsers send from date and datetime-local inputs,
// tried after RFC 3339.
var dateLayouts = []string{ //nolint: gochecknoglobals
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Date is a point in time accepted in any of the layouts the web app produces.
// An empty string or null decodes to the zero Date.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		d.Time = time.Time{}

		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		d.Time = time.Time{}

		return nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t.UTC()

			return nil
		}
	}

	return fmt.Errorf("invalid date %q", s)
}

// ptr returns nil for the zero Date.
func (d *Date) ptr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time

	return &t
}

// CreateInput is a new application to track.
type CreateInput struct {
	Title           string                  `json:"title"`
	Company         string                  `json:"company"`
	Location        string                  `json:"location"`
	Salary          string                  `json:"salary"`
	JobType         string                  `json:"jobType"`
	Description     string                  `json:"description"`
	ApplyLink       string                  `json:"applyLink"`
	Stage           domain.Stage            `json:"stage"`
	ApplicationDate *Date                   `json:"applicationDate"`
	Source          domain.TrackedJobSource `json:"source"`
	MatchScore      *float64                `json:"matchScore"`
	TierLabel       string                  `json:"tierLabel"`
	Tier            string                  `json:"tier"`
	Badges          []string                `json:"badges"`
	GapAnalysis     string                  `json:"gapAnalysis"`
	Priority        domain.Priority         `json:"priority"`
	Notes           []NoteInput             `json:"notes"`
	Interviews      []InterviewInput        `json:"interviews"`
}

// NoteInput is a note supplied when the job is created.
type NoteInput struct {
	Content string `json:"content"`
}

// ReminderInput is a reminder to add to a job.
type ReminderInput struct {
	Date    *Date  `json:"date"`
	Message string `json:"message"`
}

// InterviewInput is an interview round to add to a job.
type InterviewInput struct {
	Round         string                 `json:"round"`
	ScheduledDate *Date                  `json:"scheduledDate"`
	Interviewers  string                 `json:"interviewers"`
	Feedback      string                 `json:"feedback"`
	Result        domain.InterviewResult `json:"result"`
}

// AttachmentInput is a file reference to add to a job.
type AttachmentInput struct {
	FileName string `json:"fileName"`
	FileURL  string `json:"fileUrl"`
	FileType string `json:"fileType"`
}

// Patch holds the fields of a job to change. Nil fields are left untouched.
type Patch struct {
	Title           *string                  `json:"title"`
	Company         *string                  `json:"company"`
	Location        *string                  `json:"location"`
	Salary          *string                  `json:"salary"`
	JobType         *string                  `json:"jobType"`
	Description     *string                  `json:"description"`
	ApplyLink       *string                  `json:"applyLink"`
	Stage           *domain.Stage            `json:"stage"`
	ApplicationDate *Date                    `json:"applicationDate"`
	Source          *domain.TrackedJobSource `json:"source"`
	MatchScore      *float64                 `json:"matchScore"`
	TierLabel       *string                  `json:"tierLabel"`
	Tier            *string                  `json:"tier"`
	Badges          *[]string                `json:"badges"`
	GapAnalysis     *string                  `json:"gapAnalysis"`
	Priority        *domain.Priority         `json:"priority"`
	// StageChangeNote is recorded in the history entry of a stage change.
	StageChangeNote string `json:"stageChangeNote"`
}

// BulkResult reports the outcome of a bulk stage change.
type BulkResult struct {
	// Requested is the number of ids the caller sent.
	Requested int `json:"requested"`
	// Updated is the number of jobs whose stage actually changed.
	Updated int `json:"updated"`
}

func validateMatchScore(score *float64) error {
	if score != nil && (*score < 0 || *score > 100) {
		return serrors.With(serrors.ErrBadRequest, "matchScore must be between 0 and 100")
	}

	return nil
}

func newInterview(input InterviewInput) (domain.Interview, error) {
	round := strings.TrimSpace(input.Round)
	if round == "" {
		return domain.Interview{}, serrors.With(serrors.ErrBadRequest, "Interview round name is required")
	}
	if !input.Result.Valid() {
		return domain.Interview{}, serrors.With(serrors.ErrBadRequest, "invalid interview result: %s", input.Result)
	}
	result := input.Result
	if result == domain.InterviewResultUnknown {
		result = domain.InterviewResultPending
	}

	return domain.Interview{
		ID:            uuid.New(),
		Round:         round,
		ScheduledDate: input.ScheduledDate.ptr(),
		Interviewers:  input.Interviewers,
		Feedback:      input.Feedback,
		Result:        result,
	}, nil
}

// newTrackedJob validates input and builds the job to store with its defaults
// and first history entry.
func newTrackedJob(userID domain.UserID, input CreateInput, now time.Time) (domain.TrackedJob, error) {
	title := strings.TrimSpace(input.Title)
	company := strings.TrimSpace(input.Company)
	if title == "" || company == "" {
		return domain.TrackedJob{}, serrors.With(serrors.ErrBadRequest, "title and company are required")
	}

	job := domain.TrackedJob{
		ID:              domain.NewTrackedJobID(),
		UserID:          userID,
		Title:           title,
		Company:         company,
		Location:        input.Location,
		Salary:          input.Salary,
		JobType:         input.JobType,
		Description:     input.Description,
		Stage:           input.Stage,
		ApplicationDate: input.ApplicationDate.ptr(),
		Source:          input.Source,
		MatchScore:      input.MatchScore,
		TierLabel:       input.TierLabel,
		Tier:            input.Tier,
		Badges:          input.Badges,
		GapAnalysis:     input.GapAnalysis,
		Priority:        input.Priority,
		Notes:           []domain.Note{},
		Reminders:       []domain.Reminder{},
		Attachments:     []domain.Attachment{},
		Interviews:      []domain.Interview{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if job.Stage == "" {
		job.Stage = domain.StageSaved
	}
	if !job.Stage.Valid() {
		return domain.TrackedJob{}, serrors.With(serrors.ErrBadRequest, "invalid stage: %s", job.Stage)
	}
	if job.Priority == "" {
		job.Priority = domain.PriorityMedium
	}
	if !job.Priority.Valid() {
		return domain.TrackedJob{}, serrors.With(serrors.ErrBadRequest, "invalid priority: %s", job.Priority)
	}
	if job.Source == "" {
		job.Source = domain.TrackedJobSourceManual
	}
	if !job.Source.Valid() {
		return domain.TrackedJob{}, serrors.With(serrors.ErrBadRequest, "invalid source: %s", job.Source)
	}
	if job.JobType == "" {
		job.JobType = "Full-time"
	}
	if job.Badges == nil {
		job.Badges = []string{}
	}
	if err := validateMatchScore(job.MatchScore); err != nil {
		return domain.TrackedJob{}, err
	}

	link, err := NormalizeApplyLink(input.ApplyLink)
	if err != nil {
		return domain.TrackedJob{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid apply link")
	}
	job.ApplyLink = link

	for _, n := range input.Notes {
		if strings.TrimSpace(n.Content) == "" {
			continue
		}
		job.Notes = append(job.Notes, domain.Note{ID: uuid.New(), Content: n.Content, CreatedAt: now})
	}
	for _, in := range input.Interviews {
		interview, err := newInterview(in)
		if err != nil {
			return domain.TrackedJob{}, err
		}
		job.Interviews = append(job.Interviews, interview)
	}

	job.StatusHistory = []domain.StatusChange{{
		Stage:     job.Stage,
		ChangedAt: now,
		Note:      "Job saved to tracker",
	}}

	return job, nil
}

// Apply validates the patch and applies it to job. A stage change appends
// exactly one history entry.
func (p Patch) Apply(job *domain.TrackedJob, now time.Time) error {
	if p.Stage != nil && !p.Stage.Valid() {
		return serrors.With(serrors.ErrBadRequest, "invalid stage: %s", *p.Stage)
	}
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if title == "" {
			return serrors.With(serrors.ErrBadRequest, "title can not be empty")
		}
		job.Title = title
	}
	if p.Company != nil {
		company := strings.TrimSpace(*p.Company)
		if company == "" {
			return serrors.With(serrors.ErrBadRequest, "company can not be empty")
		}
		job.Company = company
	}
	if p.Priority != nil {
		if !p.Priority.Valid() {
			return serrors.With(serrors.ErrBadRequest, "invalid priority: %s", *p.Priority)
		}
		job.Priority = *p.Priority
	}
	if p.Source != nil {
		if !p.Source.Valid() {
			return serrors.With(serrors.ErrBadRequest, "invalid source: %s", *p.Source)
		}
		job.Source = *p.Source
	}
	if p.MatchScore != nil {
		if err := validateMatchScore(p.MatchScore); err != nil {
			return err
		}
		job.MatchScore = p.MatchScore
	}
	if p.ApplyLink != nil {
		link, err := NormalizeApplyLink(*p.ApplyLink)
		if err != nil {
			return serrors.Wrap(serrors.ErrBadRequest, err, "invalid apply link")
		}
		job.ApplyLink = link
	}

	setString(&job.Location, p.Location)
	setString(&job.Salary, p.Salary)
	setString(&job.JobType, p.JobType)
	setString(&job.Description, p.Description)
	setString(&job.TierLabel, p.TierLabel)
	setString(&job.Tier, p.Tier)
	setString(&job.GapAnalysis, p.GapAnalysis)
	if p.Badges != nil {
		job.Badges = *p.Badges
	}
	if p.ApplicationDate != nil {
		job.ApplicationDate = p.ApplicationDate.ptr()
	}

	if p.Stage != nil && *p.Stage != job.Stage {
		note := p.StageChangeNote
		if note == "" {
			note = "Moved to " + string(*p.Stage)
		}
		job.Stage = *p.Stage
		job.StatusHistory = append(job.StatusHistory, domain.StatusChange{
			Stage:     *p.Stage,
			ChangedAt: now,
			Note:      note,
		})
	}

	return nil
}

func setString(dst, src *string) {
	if src != nil {
		*dst = *src
	}
}
