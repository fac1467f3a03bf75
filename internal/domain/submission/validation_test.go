package submission

import "testing"

func TestShouldValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		trigger Trigger
		touched bool
		want    bool
	}{
		{trigger: TriggerBlur, touched: false, want: true},
		{trigger: TriggerBlur, touched: true, want: true},
		{trigger: TriggerChange, touched: false, want: false},
		{trigger: TriggerChange, touched: true, want: true},
	}

	for _, tt := range tests {
		if got := ShouldValidate(tt.trigger, tt.touched); got != tt.want {
			t.Errorf("ShouldValidate(%s, %v) = %v, want %v", tt.trigger, tt.touched, got, tt.want)
		}
	}
}

func TestValidationState(t *testing.T) {
	t.Parallel()

	s := NewValidationState()
	s.Set(FieldEmail, MsgEmail)
	s.Set(FieldTitle, "This field is required")
	s.SetResource("r1", MsgURL)

	if !s.HasErrors() {
		t.Fatal("HasErrors() = false, want true")
	}

	clone := s.Clone()
	s.ClearProject()

	if s.Message(FieldEmail) != MsgEmail {
		t.Error("ClearProject() dropped identity field entry")
	}
	if s.Message(FieldTitle) != "" || s.ResourceMessage("r1") != "" {
		t.Errorf("ClearProject() kept project entries: %+v", s)
	}
	if clone.Message(FieldTitle) == "" || clone.ResourceMessage("r1") == "" {
		t.Error("Clone() shares maps with the original")
	}

	s.Set(FieldEmail, "")
	if s.HasErrors() {
		t.Errorf("Set(\"\") did not remove entry: %+v", s)
	}
	if s.AsError() != nil {
		t.Error("AsError() != nil for empty state")
	}

	clone.Clear()
	if clone.HasErrors() {
		t.Error("Clear() left entries")
	}
}
