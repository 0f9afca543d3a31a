package broker

import "encoding/json"

// ResumeMessage asks the worker to extract a profile from an uploaded resume.
type ResumeMessage struct {
	UserID   string `json:"userId"`
	FileURL  string `json:"fileUrl"`
	FileName string `json:"fileName"`
	FileKey  string `json:"fileKey"`
}

// AnalysisMessage asks the worker to match a stored job description.
type AnalysisMessage struct {
	ClerkID string `json:"clerkId"`
	RunID   string `json:"runId"`
}

// HuntMessage asks the hunter agent to run a job search.
type HuntMessage struct {
	SessionID string          `json:"sessionId"`
	UserID    string          `json:"userId"`
	Criteria  json.RawMessage `json:"criteria"`
}
