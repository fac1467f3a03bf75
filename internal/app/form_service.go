package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/project-collector/internal/domain/submission"
	"github.com/jsamuelsen11/project-collector/internal/platform/logging"
	"github.com/jsamuelsen11/project-collector/internal/ports"
)

// Compile-time check that FormService implements ports.FormService.
var _ ports.FormService = (*FormService)(nil)

// Notices shown by the notification collaborator.
var (
	NoticeSubmitted = ports.Notice{
		Title:       "Project Submitted!",
		Description: "Thank you for sharing your amazing project with us!",
	}
	NoticeSubmissionFailed = ports.Notice{
		Title:       "Submission Error",
		Description: "There was an error submitting your project. Please try again.",
	}
	NoticeFormCleared = ports.Notice{
		Title:       "Form Cleared",
		Description: "All fields have been reset.",
	}
	NoticeProjectCleared = ports.Notice{
		Title:       "Project Details Cleared",
		Description: "Project-specific fields have been reset.",
	}
)

// FormService implements ports.FormService on top of a Store and a Pipeline.
// It adds request logging and assembles the FormState handed to inbound
// adapters; the rules themselves live in the submission domain package.
type FormService struct {
	store    *Store
	pipeline *Pipeline
	logger   *slog.Logger
}

// NewFormService creates a FormService. The store and pipeline must share the
// same record.
func NewFormService(store *Store, pipeline *Pipeline, logger *slog.Logger) *FormService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &FormService{
		store:    store,
		pipeline: pipeline,
		logger:   logger,
	}
}

// Snapshot returns the current form state.
func (s *FormService) Snapshot(_ context.Context) ports.FormState {
	return s.state(nil)
}

// SetField replaces a scalar field.
func (s *FormService) SetField(ctx context.Context, field submission.Field, value string) (ports.FormState, error) {
	s.logger.DebugContext(ctx, "setting field", slog.String("field", field.String()))

	if err := s.store.SetField(ctx, field, value); err != nil {
		s.logger.InfoContext(ctx, "field rejected",
			logging.Operation("SetField"),
			slog.String("field", field.String()),
			logging.Err(err),
		)
		return ports.FormState{}, err
	}
	return s.state(nil), nil
}

// BlurField validates a field and marks it touched.
func (s *FormService) BlurField(ctx context.Context, field submission.Field) (ports.FormState, error) {
	if err := s.store.BlurField(ctx, field); err != nil {
		s.logger.InfoContext(ctx, "blur rejected",
			logging.Operation("BlurField"),
			slog.String("field", field.String()),
			logging.Err(err),
		)
		return ports.FormState{}, err
	}
	return s.state(nil), nil
}

// AddResource appends a blank resource item.
func (s *FormService) AddResource(ctx context.Context) (submission.ResourceItem, ports.FormState) {
	item := s.store.AddResource(ctx)
	s.logger.InfoContext(ctx, "resource added", slog.String("resource_id", item.ID))
	return item, s.state(nil)
}

// UpdateResource replaces the remark or link of a resource item.
func (s *FormService) UpdateResource(
	ctx context.Context, id string, field submission.ResourceField, value string,
) (ports.FormState, error) {
	if err := s.store.UpdateResource(ctx, id, field, value); err != nil {
		s.logger.InfoContext(ctx, "resource update rejected",
			logging.Operation("UpdateResource"),
			slog.String("resource_id", id),
			logging.Err(err),
		)
		return ports.FormState{}, err
	}
	return s.state(nil), nil
}

// BlurResource validates a resource link and marks it touched.
func (s *FormService) BlurResource(ctx context.Context, id string) (ports.FormState, error) {
	if err := s.store.BlurResource(ctx, id); err != nil {
		s.logger.InfoContext(ctx, "resource blur rejected",
			logging.Operation("BlurResource"),
			slog.String("resource_id", id),
			logging.Err(err),
		)
		return ports.FormState{}, err
	}
	return s.state(nil), nil
}

// RemoveResource deletes a resource item.
func (s *FormService) RemoveResource(ctx context.Context, id string) (ports.FormState, error) {
	if err := s.store.RemoveResource(ctx, id); err != nil {
		s.logger.InfoContext(ctx, "resource removal rejected",
			logging.Operation("RemoveResource"),
			slog.String("resource_id", id),
			logging.Err(err),
		)
		return ports.FormState{}, err
	}
	s.logger.InfoContext(ctx, "resource removed", slog.String("resource_id", id))
	return s.state(nil), nil
}

// MoveResource moves a resource item to a new position.
func (s *FormService) MoveResource(ctx context.Context, id string, position int) (ports.FormState, error) {
	if err := s.store.MoveResource(ctx, id, position); err != nil {
		s.logger.InfoContext(ctx, "resource move rejected",
			logging.Operation("MoveResource"),
			slog.String("resource_id", id),
			slog.Int("position", position),
			logging.Err(err),
		)
		return ports.FormState{}, err
	}
	return s.state(nil), nil
}

// Submit runs the submission pipeline. When a request was made the returned
// state carries its result and notice, even on failure.
func (s *FormService) Submit(ctx context.Context) (ports.FormState, error) {
	result, err := s.pipeline.Submit(ctx)
	if result == nil {
		return s.state(nil), err
	}
	notice := result.Notice
	return s.state(&notice), err
}

// ResetAll discards the record and the durable slot.
func (s *FormService) ResetAll(ctx context.Context) ports.FormState {
	s.store.ResetAll(ctx)
	s.logger.InfoContext(ctx, "form cleared")
	notice := NoticeFormCleared
	return s.state(&notice)
}

// ResetProjectFields clears everything except the identity fields.
func (s *FormService) ResetProjectFields(ctx context.Context) ports.FormState {
	s.store.ResetProjectFields(ctx)
	s.logger.InfoContext(ctx, "project fields cleared")
	notice := NoticeProjectCleared
	return s.state(&notice)
}

func (s *FormService) state(notice *ports.Notice) ports.FormState {
	rec, validation := s.store.View()
	return ports.FormState{
		Record:     rec,
		Validation: validation,
		Progress:   submission.ComputeProgress(rec),
		Submitting: s.pipeline.Submitting(),
		LastResult: s.pipeline.LastResult(),
		Notice:     notice,
	}
}
