// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/project-collector/internal/domain"
	"github.com/jsamuelsen11/project-collector/internal/domain/submission"
	"github.com/jsamuelsen11/project-collector/internal/platform/logging"
	"github.com/jsamuelsen11/project-collector/internal/platform/telemetry"
	"github.com/jsamuelsen11/project-collector/internal/ports"
)

// Store holds the single current Record together with its validation state
// and the set of touched inputs. Every record mutation runs under one lock
// and writes the durable slot before the lock is released, so slot writes
// happen in mutation order.
//
// A failed slot write is logged and counted but never undoes the in-memory
// mutation: losing durability is better than losing input.
type Store struct {
	mu         sync.Mutex
	record     submission.Record
	validation submission.ValidationState
	touched    map[touchKey]struct{}

	drafts  ports.DraftStore
	newID   submission.IDGenerator
	logger  *slog.Logger
	metrics *telemetry.Metrics
}

// touchKey identifies an input that can be touched: a scalar field, or the
// link of one resource item.
type touchKey struct {
	field    submission.Field
	resource string
}

func fieldKey(f submission.Field) touchKey { return touchKey{field: f} }
func resourceKey(id string) touchKey      { return touchKey{resource: id} }

// NewStore creates a Store and rehydrates it from the draft slot. An empty
// slot starts fresh; an unreadable slot is logged and also starts fresh.
// Rehydrated resource items missing an id, or sharing one, get fresh ids.
// Any id minted here is written back before NewStore returns, so the next
// Store over the same slot sees the same ids. metrics may be nil.
func NewStore(
	ctx context.Context,
	drafts ports.DraftStore,
	newID submission.IDGenerator,
	logger *slog.Logger,
	metrics *telemetry.Metrics,
) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Store{
		validation: submission.NewValidationState(),
		touched:    make(map[touchKey]struct{}),
		drafts:     drafts,
		newID:      newID,
		logger:     logger,
		metrics:    metrics,
	}

	rec, err := drafts.Load(ctx)
	switch {
	case err == nil:
		var reissued bool
		s.record, reissued = submission.Normalize(rec, newID)
		logger.InfoContext(ctx, "draft restored",
			slog.Int("resources", len(s.record.Resources)),
			slog.Bool("ids_reissued", reissued),
		)
		if reissued {
			s.persist(ctx)
		}
	case errors.Is(err, domain.ErrNotFound):
		s.record = submission.NewRecord(newID)
		s.persist(ctx)
	default:
		logger.WarnContext(ctx, "draft unreadable, starting fresh",
			logging.Operation("LoadDraft"),
			logging.Err(err),
		)
		s.record = submission.NewRecord(newID)
		s.persist(ctx)
	}

	return s
}

// Record returns a copy of the current record.
func (s *Store) Record() submission.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record.Clone()
}

// View returns copies of the current record and validation state taken
// under the same lock.
func (s *Store) View() (submission.Record, submission.ValidationState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record.Clone(), s.validation.Clone()
}

// SetField replaces a scalar field. The field is revalidated only if it has
// been touched.
func (s *Store) SetField(ctx context.Context, field submission.Field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.record.With(field, value)
	if err != nil {
		return err
	}
	s.record = next

	if s.shouldValidate(fieldKey(field), submission.TriggerChange) {
		s.validation.Set(field, submission.Validate(field, value))
	}

	s.persist(ctx)
	return nil
}

// BlurField validates a scalar field and marks it touched.
func (s *Store) BlurField(_ context.Context, field submission.Field) error {
	if _, err := submission.ParseField(string(field)); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.touched[fieldKey(field)] = struct{}{}
	s.validation.Set(field, submission.Validate(field, s.record.Value(field)))
	return nil
}

// AddResource appends a blank item and returns it.
func (s *Store) AddResource(ctx context.Context) submission.ResourceItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, item := s.record.AddResource(s.newID)
	s.record = next

	s.persist(ctx)
	return item
}

// UpdateResource replaces a remark or link. A touched link is revalidated.
func (s *Store) UpdateResource(ctx context.Context, id string, field submission.ResourceField, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.record.UpdateResource(id, field, value)
	if err != nil {
		return err
	}
	s.record = next

	if field == submission.ResourceLink && s.shouldValidate(resourceKey(id), submission.TriggerChange) {
		s.validation.SetResource(id, submission.ValidateResourceLink(value))
	}

	s.persist(ctx)
	return nil
}

// BlurResource validates an item's link and marks it touched.
func (s *Store) BlurResource(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.record.Resource(id)
	if err != nil {
		return err
	}

	s.touched[resourceKey(id)] = struct{}{}
	s.validation.SetResource(id, submission.ValidateResourceLink(item.Link))
	return nil
}

// RemoveResource deletes an item along with its validation entry.
func (s *Store) RemoveResource(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.record.RemoveResource(id)
	if err != nil {
		return err
	}
	s.record = next
	s.validation.SetResource(id, "")
	delete(s.touched, resourceKey(id))

	s.persist(ctx)
	return nil
}

// MoveResource moves an item to position, clamping out-of-range positions.
func (s *Store) MoveResource(ctx context.Context, id string, position int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.record.MoveResource(id, position)
	if err != nil {
		return err
	}
	s.record = next

	s.persist(ctx)
	return nil
}

// ResetAll removes the draft slot and replaces the record with a fresh one,
// which is then saved so its resource id outlives the process.
func (s *Store) ResetAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.record = submission.NewRecord(s.newID)
	s.validation.Clear()
	clear(s.touched)

	err := s.drafts.Clear(ctx)
	s.recordWrite(ctx, "clear", err)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to clear draft",
			logging.Operation("ResetAll"),
			logging.Err(err),
		)
	}
	s.persist(ctx)
}

// ResetProjectFields clears every field except the identity fields and
// drops the matching validation and touched entries.
func (s *Store) ResetProjectFields(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.record = s.record.ResetProject(s.newID)
	s.validation.ClearProject()
	for k := range s.touched {
		if !k.field.IsIdentity() {
			delete(s.touched, k)
		}
	}

	s.persist(ctx)
}

// ApplyValidation replaces the validation state with a full pass and marks
// every validated input touched, so later edits revalidate on change.
func (s *Store) ApplyValidation(state submission.ValidationState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.validation = state.Clone()
	for _, f := range submission.Fields {
		s.touched[fieldKey(f)] = struct{}{}
	}
	for _, item := range s.record.FilledResources() {
		s.touched[resourceKey(item.ID)] = struct{}{}
	}
}

// shouldValidate must be called with s.mu held.
func (s *Store) shouldValidate(k touchKey, trigger submission.Trigger) bool {
	_, touched := s.touched[k]
	return submission.ShouldValidate(trigger, touched)
}

// persist writes the current record to the draft slot. Must be called with
// s.mu held.
func (s *Store) persist(ctx context.Context) {
	err := s.drafts.Save(ctx, s.record)
	s.recordWrite(ctx, "save", err)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to save draft",
			logging.Operation("SaveDraft"),
			logging.Err(err),
		)
	}
}

func (s *Store) recordWrite(ctx context.Context, op string, err error) {
	if s.metrics == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	s.metrics.DraftWriteTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrOperation.String(op),
		telemetry.AttrResult.String(result),
	))
}
