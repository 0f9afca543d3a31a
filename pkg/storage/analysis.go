package storage

import (
	"context"
	"time"

	"careeros/pkg/domain"
)

// AnalysisStorage persists JD analyses.
type AnalysisStorage interface {
	StoreAnalysis(ctx context.Context, a domain.JdAnalysis) (*domain.JdAnalysis, error)
	// AnalysisByID returns the user's analysis or nil.
	AnalysisByID(ctx context.Context, userID domain.UserID, runID domain.RunID) (*domain.JdAnalysis, error)
	// CompletedAnalyses returns up to limit complete analyses of the user, newest first.
	CompletedAnalyses(ctx context.Context, userID domain.UserID, limit uint) ([]domain.JdAnalysis, error)
	// DeleteAnalysis removes the user's analysis and returns it, or nil if it did not exist.
	DeleteAnalysis(ctx context.Context, userID domain.UserID, runID domain.RunID) (*domain.JdAnalysis, error)
	// FailAnalysis moves a non-terminal analysis to failed with reason. It
	// reports whether a row changed.
	FailAnalysis(ctx context.Context, runID domain.RunID, reason string) (bool, error)
	// FailStaleAnalyses fails every non-terminal analysis last updated before
	// the given time and returns how many were failed.
	FailStaleAnalyses(ctx context.Context, before time.Time, reason string) (int64, error)
}
