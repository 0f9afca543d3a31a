package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Profile is the user-verified resume data.
type Profile struct {
	PersonalInfo              PersonalInfo      `json:"personal_info"`
	Education                 []Education       `json:"education"`
	Skills                    Skills            `json:"skills"`
	Projects                  []Project         `json:"projects"`
	Experience                []Experience      `json:"experience"`
	Achievements              []Achievement     `json:"achievements"`
	PositionsOfResponsibility []Position        `json:"positions_of_responsibility"`
	Certifications            []Certification   `json:"certifications"`
	Publications              []Publication     `json:"publications"`
	CareerPreferences         CareerPreferences `json:"career_preferences"`
	// AISuggestions is whatever the extraction worker suggested, kept verbatim.
	AISuggestions json.RawMessage `json:"ai_suggestions,omitempty"`
}

type PersonalInfo struct {
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Location     string `json:"location"`
	LinkedInURL  string `json:"linkedin_url"`
	GitHubURL    string `json:"github_url"`
	PortfolioURL string `json:"portfolio_url"`
}

type Education struct {
	InstitutionName    string   `json:"institution_name"`
	Degree             string   `json:"degree"`
	Branch             string   `json:"branch,omitempty"`
	StartDate          string   `json:"start_date,omitempty"`
	EndDate            string   `json:"end_date,omitempty"`
	GPA                string   `json:"gpa,omitempty"`
	RelevantCoursework []string `json:"relevant_coursework,omitempty"`
}

type Skills struct {
	ProgrammingLanguages    []string `json:"programming_languages"`
	FrameworksLibraries     []string `json:"frameworks_libraries"`
	Databases               []string `json:"databases"`
	DeveloperToolsPlatforms []string `json:"developer_tools_platforms"`
	OtherTech               []string `json:"other_tech"`
}

type Project struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	BulletPoints []string `json:"bullet_points,omitempty"`
	TechStack    []string `json:"tech_stack,omitempty"`
	GitHubLink   string   `json:"github_link,omitempty"`
	LiveDemoLink string   `json:"live_demo_link,omitempty"`
}

type Experience struct {
	Role              string   `json:"role"`
	Company           string   `json:"company"`
	Location          string   `json:"location,omitempty"`
	StartDate         string   `json:"start_date,omitempty"`
	EndDate           string   `json:"end_date,omitempty"`
	DescriptionPoints []string `json:"description_points,omitempty"`
}

type Achievement struct {
	Title       string `json:"title"`
	Issuer      string `json:"issuer,omitempty"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
}

type Position struct {
	Role              string   `json:"role"`
	Organization      string   `json:"organization"`
	StartDate         string   `json:"start_date,omitempty"`
	EndDate           string   `json:"end_date,omitempty"`
	DescriptionPoints []string `json:"description_points,omitempty"`
}

type Certification struct {
	Name          string `json:"name"`
	Issuer        string `json:"issuer"`
	IssueDate     string `json:"issue_date,omitempty"`
	CredentialURL string `json:"credential_url,omitempty"`
}

type Publication struct {
	Title             string `json:"title"`
	ConferenceJournal string `json:"conference_journal"`
	Status            string `json:"status,omitempty"`
	Link              string `json:"link,omitempty"`
}

type CareerPreferences struct {
	PreferredRoles  []string `json:"preferred_roles"`
	JobType         []string `json:"job_type"`
	TargetLocations []string `json:"target_locations"`
	Availability    string   `json:"availability,omitempty"`
}

// PartialProfileStatus is the lifecycle state of an uploaded resume.
type PartialProfileStatus string

const (
	// PartialProfileStatusPending means the resume is waiting for extraction.
	PartialProfileStatusPending PartialProfileStatus = "pending"
	// PartialProfileStatusValidated means the worker recognized a resume and extracted data.
	PartialProfileStatusValidated PartialProfileStatus = "validated"
	// PartialProfileStatusFailed means extraction or dispatch failed.
	PartialProfileStatusFailed PartialProfileStatus = "failed"
)

// PartialProfile is an uploaded resume and the data the worker extracted from it.
type PartialProfile struct {
	ID            uuid.UUID            `json:"id"`
	UserID        UserID               `json:"user_id"`
	FileURL       string               `json:"file_url"`
	FileKey       string               `json:"file_key"`
	FileName      string               `json:"file_name"`
	Status        PartialProfileStatus `json:"status"`
	ExtractedData json.RawMessage      `json:"extracted_data,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}
