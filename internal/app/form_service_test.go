package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/project-collector/internal/domain"
	"github.com/jsamuelsen11/project-collector/internal/domain/submission"
	"github.com/jsamuelsen11/project-collector/mocks"
)

func newFormService(t *testing.T, rec *submission.Record) (*FormService, *mocks.MockDraftStore, *mocks.MockCollectorClient) {
	t.Helper()

	store, drafts := newStore(t, rec)
	client := mocks.NewMockCollectorClient(t)
	pipeline := NewPipeline(store, client, time.Second, discardLogger(), nil)
	return NewFormService(store, pipeline, discardLogger()), drafts, client
}

func TestNewFormService_NilLogger(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t, nil)
	svc := NewFormService(store, NewPipeline(store, mocks.NewMockCollectorClient(t), 0, nil, nil), nil)
	if svc.logger == nil {
		t.Fatal("NewFormService(nil logger) should create a no-op logger, got nil")
	}
}

func TestFormService_Snapshot(t *testing.T) {
	t.Parallel()

	rec := validRecord()
	svc, _, _ := newFormService(t, &rec)

	state := svc.Snapshot(context.Background())

	if state.Record.Title != rec.Title {
		t.Errorf("Record.Title = %q, want %q", state.Record.Title, rec.Title)
	}
	if state.Progress.Percent != 100 {
		t.Errorf("Progress.Percent = %d, want 100", state.Progress.Percent)
	}
	if state.Submitting || state.LastResult != nil || state.Notice != nil {
		t.Errorf("state = %+v, want idle with no result or notice", state)
	}
}

func TestFormService_FieldFlow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _, _ := newFormService(t, nil)

	state, err := svc.SetField(ctx, submission.FieldWhatsApp, "12")
	if err != nil {
		t.Fatalf("SetField() error = %v", err)
	}
	if state.Record.WhatsApp != "12" || state.Validation.Message(submission.FieldWhatsApp) != "" {
		t.Errorf("SetField state = %+v", state)
	}
	if state.Progress.Percent != 10 {
		t.Errorf("Progress.Percent = %d, want 10", state.Progress.Percent)
	}

	state, err = svc.BlurField(ctx, submission.FieldWhatsApp)
	if err != nil {
		t.Fatalf("BlurField() error = %v", err)
	}
	if got := state.Validation.Message(submission.FieldWhatsApp); got != submission.MsgWhatsApp {
		t.Errorf("message = %q, want %q", got, submission.MsgWhatsApp)
	}

	if _, err := svc.SetField(ctx, "nickname", "x"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("SetField(unknown) error = %v, want ErrValidation", err)
	}
	if _, err := svc.BlurField(ctx, "nickname"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("BlurField(unknown) error = %v, want ErrValidation", err)
	}
}

func TestFormService_ResourceFlow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _, _ := newFormService(t, nil)

	item, state := svc.AddResource(ctx)
	if len(state.Record.Resources) != 2 || state.Record.Resources[1].ID != item.ID {
		t.Fatalf("AddResource state = %+v", state.Record.Resources)
	}

	state, err := svc.UpdateResource(ctx, item.ID, submission.ResourceLink, "not a url")
	if err != nil {
		t.Fatalf("UpdateResource() error = %v", err)
	}
	if state.Progress.Percent != 10 {
		t.Errorf("Progress.Percent = %d, want 10", state.Progress.Percent)
	}

	state, err = svc.BlurResource(ctx, item.ID)
	if err != nil {
		t.Fatalf("BlurResource() error = %v", err)
	}
	if state.Validation.ResourceMessage(item.ID) != submission.MsgURL {
		t.Errorf("ResourceMessage = %q, want %q", state.Validation.ResourceMessage(item.ID), submission.MsgURL)
	}

	state, err = svc.MoveResource(ctx, item.ID, 0)
	if err != nil {
		t.Fatalf("MoveResource() error = %v", err)
	}
	if state.Record.Resources[0].ID != item.ID {
		t.Errorf("Resources[0].ID = %q, want %q", state.Record.Resources[0].ID, item.ID)
	}

	state, err = svc.RemoveResource(ctx, item.ID)
	if err != nil {
		t.Fatalf("RemoveResource() error = %v", err)
	}
	if len(state.Record.Resources) != 1 || state.Validation.ResourceMessage(item.ID) != "" {
		t.Errorf("RemoveResource state = %+v", state)
	}

	for name, err := range map[string]error{
		"UpdateResource": func() error { _, err := svc.UpdateResource(ctx, "x", submission.ResourceLink, ""); return err }(),
		"BlurResource":   func() error { _, err := svc.BlurResource(ctx, "x"); return err }(),
		"RemoveResource": func() error { _, err := svc.RemoveResource(ctx, "x"); return err }(),
		"MoveResource":   func() error { _, err := svc.MoveResource(ctx, "x", 1); return err }(),
	} {
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("%s(unknown) error = %v, want ErrNotFound", name, err)
		}
	}
}

func TestFormService_Submit(t *testing.T) {
	t.Parallel()

	t.Run("success carries result and notice", func(t *testing.T) {
		t.Parallel()
		rec := validRecord()
		svc, _, client := newFormService(t, &rec)
		client.EXPECT().Submit(mock.Anything, mock.Anything).Return(nil)

		state, err := svc.Submit(context.Background())
		if err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
		if state.Notice == nil || *state.Notice != NoticeSubmitted {
			t.Errorf("Notice = %+v, want %+v", state.Notice, NoticeSubmitted)
		}
		if state.LastResult == nil || !state.LastResult.Acknowledged {
			t.Errorf("LastResult = %+v, want acknowledged", state.LastResult)
		}
		if state.Record.Name != rec.Name || state.Record.Title != "" {
			t.Errorf("Record = %+v, want identity kept and project reset", state.Record)
		}
	})

	t.Run("failure keeps record", func(t *testing.T) {
		t.Parallel()
		rec := validRecord()
		svc, _, client := newFormService(t, &rec)
		client.EXPECT().Submit(mock.Anything, mock.Anything).Return(errors.New("boom"))

		state, err := svc.Submit(context.Background())
		if !errors.Is(err, domain.ErrSubmissionTransport) {
			t.Fatalf("Submit() error = %v, want ErrSubmissionTransport", err)
		}
		if state.Notice == nil || *state.Notice != NoticeSubmissionFailed {
			t.Errorf("Notice = %+v, want %+v", state.Notice, NoticeSubmissionFailed)
		}
		if state.Record.Title != rec.Title {
			t.Errorf("Record.Title = %q, want %q", state.Record.Title, rec.Title)
		}
	})

	t.Run("validation rejection has no result", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newFormService(t, nil)

		state, err := svc.Submit(context.Background())
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("Submit() error = %v, want ErrValidation", err)
		}
		if state.LastResult != nil || state.Notice != nil {
			t.Errorf("state = %+v, want no result or notice", state)
		}
		if state.Validation.Message(submission.FieldName) != domain.MsgRequired {
			t.Errorf("name message = %q, want %q", state.Validation.Message(submission.FieldName), domain.MsgRequired)
		}
	})
}

func TestFormService_Resets(t *testing.T) {
	t.Parallel()

	t.Run("reset all", func(t *testing.T) {
		t.Parallel()
		rec := validRecord()
		svc, drafts, _ := newFormService(t, &rec)
		drafts.EXPECT().Clear(mock.Anything).Return(nil).Once()

		state := svc.ResetAll(context.Background())
		if state.Record.Name != "" || state.Progress.Percent != 0 {
			t.Errorf("state = %+v, want fresh record", state)
		}
		if state.Notice == nil || *state.Notice != NoticeFormCleared {
			t.Errorf("Notice = %+v, want %+v", state.Notice, NoticeFormCleared)
		}
	})

	t.Run("reset project fields", func(t *testing.T) {
		t.Parallel()
		rec := validRecord()
		svc, _, _ := newFormService(t, &rec)

		state := svc.ResetProjectFields(context.Background())
		if state.Record.Name != rec.Name || state.Record.Title != "" {
			t.Errorf("Record = %+v, want identity kept", state.Record)
		}
		if state.Progress.Percent != 40 {
			t.Errorf("Progress.Percent = %d, want 40", state.Progress.Percent)
		}
		if state.Notice == nil || *state.Notice != NoticeProjectCleared {
			t.Errorf("Notice = %+v, want %+v", state.Notice, NoticeProjectCleared)
		}
	})
}
