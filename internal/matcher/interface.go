package matcher

import (
	"context"
	"encoding/json"

	"careeros/pkg/domain"
)

//go:generate mockgen -package mockmatcher -source=interface.go -destination=mock/mockmatcher.go *
type Matcher interface {
	Analyze(ctx context.Context, userID domain.UserID, jdText string) (domain.RunID, error)
	Status(ctx context.Context, userID domain.UserID, runID domain.RunID) (*domain.JdAnalysis, error)
	Results(ctx context.Context, userID domain.UserID, runID domain.RunID) (json.RawMessage, error)
	History(ctx context.Context, userID domain.UserID) ([]domain.AnalysisSummary, error)
	Delete(ctx context.Context, userID domain.UserID, runID domain.RunID) error
}
