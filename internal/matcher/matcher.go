package matcher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"

	"careeros/internal/config"
	"careeros/internal/dispatch"
	"careeros/pkg/broker"
	"careeros/pkg/domain"
	"careeros/pkg/logger"
	"careeros/pkg/serrors"
	"careeros/pkg/storage"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const (
	defaultFileName = "resume.pdf"
	unknownJob      = "Unknown Job"
	unknownCompany  = "Unknown Company"
)

// Options configure how analyses are accepted and listed.
type Options struct {
	// MinJDLength is the minimum number of characters of a job description.
	MinJDLength int
	// HistoryLimit caps the number of analyses History returns.
	HistoryLimit uint
	// Queue is the broker queue analyses are dispatched to.
	Queue string
	// MaxAttempts is the number of publish attempts of the dispatch job.
	MaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MinJDLength:  cfg.Matcher.MinJDLength,
		HistoryLimit: cfg.Matcher.HistoryLimit,
		Queue:        cfg.RabbitMQ.Queues.JDAnalysis,
		MaxAttempts:  cfg.Dispatch.MaxAttempts,
	}
}

// matcher is the concrete implementation of the Matcher interface.
type matcher struct {
	options Options
	storage storage.Storage
}

// Analyze stores a pending analysis of jdText and dispatches it to the
// matching worker in the same transaction.
func (m matcher) Analyze(ctx context.Context, userID domain.UserID, jdText string) (domain.RunID, error) {
	if utf8.RuneCountInString(jdText) < m.options.MinJDLength {
		return domain.RunID{}, serrors.With(serrors.ErrBadRequest, "Job Description text is too short.")
	}

	runID := domain.NewRunID()
	if err := m.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if _, err := tx.StoreAnalysis(ctx, domain.JdAnalysis{
			RunID:  runID,
			UserID: userID,
			Status: domain.AnalysisStatusPending,
			JDText: jdText,
		}); err != nil {
			return fmt.Errorf("could not store analysis: %w", err)
		}

		return dispatch.Enqueue(ctx, tx, m.options.Queue,
			broker.AnalysisMessage{ClerkID: userID.String(), RunID: runID.String()},
			dispatch.Subject{Kind: dispatch.SubjectAnalysis, ID: runID.String()},
			m.options.MaxAttempts)
	}); err != nil {
		return domain.RunID{}, fmt.Errorf("could not start analysis: %w", err)
	}

	logger.Info(ctx, "analysis queued", zap.Stringer("runID", runID))

	return runID, nil
}

func (m matcher) Status(ctx context.Context, userID domain.UserID, runID domain.RunID) (*domain.JdAnalysis, error) {
	return m.analysis(ctx, userID, runID)
}

// Results returns the worker's report merged with a meta object naming the
// resume it was matched against.
func (m matcher) Results(ctx context.Context, userID domain.UserID, runID domain.RunID) (json.RawMessage, error) {
	analysis, err := m.analysis(ctx, userID, runID)
	if err != nil {
		return nil, err
	}
	if analysis.Status != domain.AnalysisStatusComplete {
		return nil, serrors.With(serrors.ErrBadRequest,
			"Analysis is not complete. Current status: %s", analysis.Status)
	}

	fileName := defaultFileName
	profile, err := m.storage.LatestPartialProfile(ctx, userID, domain.PartialProfileStatusValidated)
	if err != nil {
		return nil, fmt.Errorf("could not get partial profile: %w", err)
	}
	if profile != nil && profile.FileName != "" {
		fileName = profile.FileName
	}

	report := map[string]json.RawMessage{}
	if gjson.ParseBytes(analysis.Results).IsObject() {
		if err := json.Unmarshal(analysis.Results, &report); err != nil {
			return nil, fmt.Errorf("could not decode analysis results: %w", err)
		}
	}

	meta, err := json.Marshal(struct {
		FileName   string    `json:"fileName"`
		AnalyzedAt time.Time `json:"analyzedAt"`
	}{
		FileName:   fileName,
		AnalyzedAt: analysis.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("could not encode meta: %w", err)
	}
	report["meta"] = meta

	res, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("could not encode analysis results: %w", err)
	}

	return res, nil
}

// History summarizes the user's latest complete analyses, newest first.
func (m matcher) History(ctx context.Context, userID domain.UserID) ([]domain.AnalysisSummary, error) {
	analyses, err := m.storage.CompletedAnalyses(ctx, userID, m.options.HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("could not get analyses: %w", err)
	}

	history := make([]domain.AnalysisSummary, 0, len(analyses))
	for _, a := range analyses {
		fields := gjson.GetManyBytes(a.Results, "jd_summary.job_title", "jd_summary.company", "match_score")

		summary := domain.AnalysisSummary{
			RunID:    a.RunID,
			Date:     a.CreatedAt,
			JobTitle: fields[0].String(),
			Company:  fields[1].String(),
			Score:    fields[2].Float(),
		}
		if summary.JobTitle == "" {
			summary.JobTitle = unknownJob
		}
		if summary.Company == "" {
			summary.Company = unknownCompany
		}
		history = append(history, summary)
	}

	return history, nil
}

func (m matcher) Delete(ctx context.Context, userID domain.UserID, runID domain.RunID) error {
	res, err := m.storage.DeleteAnalysis(ctx, userID, runID)
	if err != nil {
		return fmt.Errorf("could not delete analysis: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "Analysis not found.")
	}

	return nil
}

func (m matcher) analysis(ctx context.Context, userID domain.UserID, runID domain.RunID) (*domain.JdAnalysis, error) {
	res, err := m.storage.AnalysisByID(ctx, userID, runID)
	if err != nil {
		return nil, fmt.Errorf("could not get analysis: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Analysis not found.")
	}

	return res, nil
}

// New creates a new Matcher backed by the provided storage.
func New(storage storage.Storage, options Options) Matcher {
	return &matcher{
		options: options,
		storage: storage,
	}
}
