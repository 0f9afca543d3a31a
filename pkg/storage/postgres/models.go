package postgres

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"careeros/pkg/domain"

	"github.com/google/uuid"
)

// jsonb is the value of a JSONB column. An empty value is written as SQL NULL
// and the driver may hand the column back as either bytes or text.
type jsonb []byte

func (j jsonb) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}

	return string(j), nil
}

func (j *jsonb) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*j = nil
	case []byte:
		*j = append(jsonb(nil), v...)
	case string:
		*j = jsonb(v)
	default:
		return fmt.Errorf("unsupported jsonb source %T", src)
	}

	return nil
}

type PgUser struct {
	ClerkID            string         `db:"clerk_id"`
	Name               string         `db:"name"`
	Email              sql.NullString `db:"email"`
	OnboardingComplete bool           `db:"onboarding_complete"`
	Profile            jsonb          `db:"profile"`
	RawResumeText      string         `db:"raw_resume_text" goqu:"skipinsert,skipupdate"`
	CreatedAt          time.Time      `db:"created_at"      goqu:"skipinsert,skipupdate"`
	UpdatedAt          time.Time      `db:"updated_at"      goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() (*domain.User, error) {
	u := &domain.User{
		ID:                 domain.UserID(p.ClerkID),
		Name:               p.Name,
		Email:              p.Email.String,
		OnboardingComplete: p.OnboardingComplete,
		RawResumeText:      p.RawResumeText,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
	if len(p.Profile) > 0 && string(p.Profile) != "null" {
		var profile domain.Profile
		if err := json.Unmarshal(p.Profile, &profile); err != nil {
			return nil, fmt.Errorf("could not unmarshal user profile: %w", err)
		}
		u.Profile = &profile
	}

	return u, nil
}

func (p *PgUser) FromDomain(u domain.User) error {
	var profile jsonb
	if u.Profile != nil {
		b, err := json.Marshal(u.Profile)
		if err != nil {
			return fmt.Errorf("could not marshal user profile: %w", err)
		}
		profile = b
	}

	email := strings.ToLower(strings.TrimSpace(u.Email))
	*p = PgUser{
		ClerkID:            string(u.ID),
		Name:               strings.TrimSpace(u.Name),
		Email:              sql.NullString{String: email, Valid: email != ""},
		OnboardingComplete: u.OnboardingComplete,
		Profile:            profile,
		RawResumeText:      u.RawResumeText,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}

	return nil
}

type PgPartialProfile struct {
	ID            uuid.UUID `db:"id"             goqu:"skipinsert"`
	UserID        string    `db:"user_id"`
	FileURL       string    `db:"file_url"`
	FileKey       string    `db:"file_key"`
	FileName      string    `db:"file_name"`
	Status        string    `db:"status"`
	ExtractedData jsonb     `db:"extracted_data"`
	CreatedAt     time.Time `db:"created_at"     goqu:"skipinsert"`
	UpdatedAt     time.Time `db:"updated_at"     goqu:"skipinsert"`
}

func (p *PgPartialProfile) ToDomain() *domain.PartialProfile {
	return &domain.PartialProfile{
		ID:            p.ID,
		UserID:        domain.UserID(p.UserID),
		FileURL:       p.FileURL,
		FileKey:       p.FileKey,
		FileName:      p.FileName,
		Status:        domain.PartialProfileStatus(p.Status),
		ExtractedData: rawJSON(p.ExtractedData),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (p *PgPartialProfile) FromDomain(pp domain.PartialProfile) {
	*p = PgPartialProfile{
		ID:            pp.ID,
		UserID:        string(pp.UserID),
		FileURL:       pp.FileURL,
		FileKey:       pp.FileKey,
		FileName:      pp.FileName,
		Status:        string(pp.Status),
		ExtractedData: nullableJSON(pp.ExtractedData),
	}
}

type PgAnalysis struct {
	RunID           uuid.UUID      `db:"run_id"`
	ClerkID         string         `db:"clerk_id"`
	Status          string         `db:"status"`
	JDText          string         `db:"jd_text"`
	ErrorMessage    sql.NullString `db:"error_message"`
	AnalysisResults jsonb          `db:"analysis_results"`
	CreatedAt       time.Time      `db:"created_at"       goqu:"skipinsert"`
	UpdatedAt       time.Time      `db:"updated_at"       goqu:"skipinsert"`
}

func (p *PgAnalysis) ToDomain() *domain.JdAnalysis {
	return &domain.JdAnalysis{
		RunID:        domain.RunID(p.RunID),
		UserID:       domain.UserID(p.ClerkID),
		Status:       domain.AnalysisStatus(p.Status),
		JDText:       p.JDText,
		ErrorMessage: p.ErrorMessage.String,
		Results:      rawJSON(p.AnalysisResults),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (p *PgAnalysis) FromDomain(a domain.JdAnalysis) {
	*p = PgAnalysis{
		RunID:           uuid.UUID(a.RunID),
		ClerkID:         string(a.UserID),
		Status:          string(a.Status),
		JDText:          a.JDText,
		ErrorMessage:    sql.NullString{String: a.ErrorMessage, Valid: a.ErrorMessage != ""},
		AnalysisResults: nullableJSON(a.Results),
	}
}

func pgAnalysesToDomain(rows []PgAnalysis) []domain.JdAnalysis {
	out := make([]domain.JdAnalysis, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

type PgHunterSession struct {
	SessionID uuid.UUID `db:"session_id"`
	UserID    string    `db:"user_id"`
	Status    string    `db:"status"`
	Logs      jsonb     `db:"logs"`
	Criteria  jsonb     `db:"criteria"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgHunterSession) ToDomain() (*domain.HunterSession, error) {
	logs, err := unmarshalArray[string](p.Logs)
	if err != nil {
		return nil, fmt.Errorf("could not unmarshal session logs: %w", err)
	}

	return &domain.HunterSession{
		ID:        domain.SessionID(p.SessionID),
		UserID:    domain.UserID(p.UserID),
		Status:    domain.SessionStatus(p.Status),
		Logs:      logs,
		Criteria:  rawJSON(p.Criteria),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}, nil
}

func (p *PgHunterSession) FromDomain(s domain.HunterSession) error {
	logs, err := marshalArray(s.Logs)
	if err != nil {
		return fmt.Errorf("could not marshal session logs: %w", err)
	}

	criteria := s.Criteria
	if len(criteria) == 0 {
		criteria = json.RawMessage(`{}`)
	}

	*p = PgHunterSession{
		SessionID: uuid.UUID(s.ID),
		UserID:    string(s.UserID),
		Status:    string(s.Status),
		Logs:      logs,
		Criteria:  jsonb(criteria),
	}

	return nil
}

type PgJobResult struct {
	ID             uuid.UUID `db:"id"`
	UserID         string    `db:"user_id"`
	SessionID      uuid.UUID `db:"session_id"`
	Title          string    `db:"title"`
	Company        string    `db:"company"`
	Location       string    `db:"location"`
	Description    string    `db:"description"`
	ApplyLink      string    `db:"apply_link"`
	Source         string    `db:"source"`
	Status         string    `db:"status"`
	MatchScore     float64   `db:"match_score"`
	RelevanceScore float64   `db:"relevance_score"`
	TierLabel      string    `db:"tier_label"`
	Tier           string    `db:"tier"`
	Badges         jsonb     `db:"badges"`
	GapAnalysis    string    `db:"gap_analysis"`
	Salary         string    `db:"salary"`
	SalaryMin      float64   `db:"salary_min"`
	SalaryMax      float64   `db:"salary_max"`
	Rank           int       `db:"rank"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (p *PgJobResult) ToDomain() (*domain.JobResult, error) {
	badges, err := unmarshalArray[string](p.Badges)
	if err != nil {
		return nil, fmt.Errorf("could not unmarshal job result badges: %w", err)
	}

	return &domain.JobResult{
		ID:             p.ID,
		UserID:         domain.UserID(p.UserID),
		SessionID:      domain.SessionID(p.SessionID),
		Title:          p.Title,
		Company:        p.Company,
		Location:       p.Location,
		Description:    p.Description,
		ApplyLink:      p.ApplyLink,
		Source:         domain.JobSource(p.Source),
		Status:         domain.JobResultStatus(p.Status),
		MatchScore:     p.MatchScore,
		RelevanceScore: p.RelevanceScore,
		TierLabel:      p.TierLabel,
		Tier:           p.Tier,
		Badges:         badges,
		GapAnalysis:    p.GapAnalysis,
		Salary:         p.Salary,
		SalaryMin:      p.SalaryMin,
		SalaryMax:      p.SalaryMax,
		Rank:           p.Rank,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}, nil
}

type PgTrackedJob struct {
	ID              uuid.UUID       `db:"id"               goqu:"skipupdate"`
	UserID          string          `db:"user_id"          goqu:"skipupdate"`
	Title           string          `db:"title"`
	Company         string          `db:"company"`
	Location        string          `db:"location"`
	Salary          string          `db:"salary"`
	JobType         string          `db:"job_type"`
	Description     string          `db:"description"`
	ApplyLink       string          `db:"apply_link"`
	Stage           string          `db:"stage"`
	ApplicationDate sql.NullTime    `db:"application_date"`
	StatusHistory   jsonb           `db:"status_history"`
	Notes           jsonb           `db:"notes"`
	Reminders       jsonb           `db:"reminders"`
	Attachments     jsonb           `db:"attachments"`
	Interviews      jsonb           `db:"interviews"`
	Source          string          `db:"source"`
	MatchScore      sql.NullFloat64 `db:"match_score"`
	TierLabel       string          `db:"tier_label"`
	Tier            string          `db:"tier"`
	Badges          jsonb           `db:"badges"`
	GapAnalysis     string          `db:"gap_analysis"`
	Priority        string          `db:"priority"`
	CreatedAt       time.Time       `db:"created_at"       goqu:"skipinsert,skipupdate"`
	UpdatedAt       time.Time       `db:"updated_at"       goqu:"skipinsert"`
}

func (p *PgTrackedJob) ToDomain() (*domain.TrackedJob, error) {
	job := &domain.TrackedJob{
		ID:          domain.TrackedJobID(p.ID),
		UserID:      domain.UserID(p.UserID),
		Title:       p.Title,
		Company:     p.Company,
		Location:    p.Location,
		Salary:      p.Salary,
		JobType:     p.JobType,
		Description: p.Description,
		ApplyLink:   p.ApplyLink,
		Stage:       domain.Stage(p.Stage),
		Source:      domain.TrackedJobSource(p.Source),
		TierLabel:   p.TierLabel,
		Tier:        p.Tier,
		GapAnalysis: p.GapAnalysis,
		Priority:    domain.Priority(p.Priority),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.ApplicationDate.Valid {
		t := p.ApplicationDate.Time
		job.ApplicationDate = &t
	}
	if p.MatchScore.Valid {
		s := p.MatchScore.Float64
		job.MatchScore = &s
	}

	var err error
	if job.StatusHistory, err = unmarshalArray[domain.StatusChange](p.StatusHistory); err != nil {
		return nil, fmt.Errorf("could not unmarshal status history: %w", err)
	}
	if job.Notes, err = unmarshalArray[domain.Note](p.Notes); err != nil {
		return nil, fmt.Errorf("could not unmarshal notes: %w", err)
	}
	if job.Reminders, err = unmarshalArray[domain.Reminder](p.Reminders); err != nil {
		return nil, fmt.Errorf("could not unmarshal reminders: %w", err)
	}
	if job.Attachments, err = unmarshalArray[domain.Attachment](p.Attachments); err != nil {
		return nil, fmt.Errorf("could not unmarshal attachments: %w", err)
	}
	if job.Interviews, err = unmarshalArray[domain.Interview](p.Interviews); err != nil {
		return nil, fmt.Errorf("could not unmarshal interviews: %w", err)
	}
	if job.Badges, err = unmarshalArray[string](p.Badges); err != nil {
		return nil, fmt.Errorf("could not unmarshal badges: %w", err)
	}

	return job, nil
}

func (p *PgTrackedJob) FromDomain(job domain.TrackedJob) error {
	*p = PgTrackedJob{
		ID:          uuid.UUID(job.ID),
		UserID:      string(job.UserID),
		Title:       job.Title,
		Company:     job.Company,
		Location:    job.Location,
		Salary:      job.Salary,
		JobType:     job.JobType,
		Description: job.Description,
		ApplyLink:   job.ApplyLink,
		Stage:       string(job.Stage),
		Source:      string(job.Source),
		TierLabel:   job.TierLabel,
		Tier:        job.Tier,
		GapAnalysis: job.GapAnalysis,
		Priority:    string(job.Priority),
		CreatedAt:   job.CreatedAt,
		UpdatedAt:   job.UpdatedAt,
	}
	if job.ApplicationDate != nil {
		p.ApplicationDate = sql.NullTime{Time: *job.ApplicationDate, Valid: true}
	}
	if job.MatchScore != nil {
		p.MatchScore = sql.NullFloat64{Float64: *job.MatchScore, Valid: true}
	}

	var err error
	if p.StatusHistory, err = marshalArray(job.StatusHistory); err != nil {
		return fmt.Errorf("could not marshal status history: %w", err)
	}
	if p.Notes, err = marshalArray(job.Notes); err != nil {
		return fmt.Errorf("could not marshal notes: %w", err)
	}
	if p.Reminders, err = marshalArray(job.Reminders); err != nil {
		return fmt.Errorf("could not marshal reminders: %w", err)
	}
	if p.Attachments, err = marshalArray(job.Attachments); err != nil {
		return fmt.Errorf("could not marshal attachments: %w", err)
	}
	if p.Interviews, err = marshalArray(job.Interviews); err != nil {
		return fmt.Errorf("could not marshal interviews: %w", err)
	}
	if p.Badges, err = marshalArray(job.Badges); err != nil {
		return fmt.Errorf("could not marshal badges: %w", err)
	}

	return nil
}

func pgTrackedJobsToDomain(rows []PgTrackedJob) ([]domain.TrackedJob, error) {
	out := make([]domain.TrackedJob, 0, len(rows))
	for i := range rows {
		job, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *job)
	}

	return out, nil
}

// marshalArray encodes v as a JSON array, never as null.
func marshalArray[T any](v []T) (jsonb, error) {
	if v == nil {
		v = []T{}
	}

	return json.Marshal(v)
}

func unmarshalArray[T any](b jsonb) ([]T, error) {
	out := []T{}
	if len(b) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}

	return out, nil
}

func rawJSON(b jsonb) json.RawMessage {
	if len(b) == 0 || string(b) == "null" {
		return nil
	}

	return json.RawMessage(b)
}

// nullableJSON maps an empty document to SQL NULL.
func nullableJSON(m json.RawMessage) jsonb {
	if len(m) == 0 {
		return nil
	}

	return jsonb(m)
}
