package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/jsamuelsen11/project-collector/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-collector/internal/domain"
	"github.com/jsamuelsen11/project-collector/internal/domain/submission"
	"github.com/jsamuelsen11/project-collector/internal/ports"
)

// stateError carries the form state alongside a failed submission so the
// caller can see the validation messages or the failed result.
type stateError struct {
	err   error
	state ports.FormState
}

func (e *stateError) Error() string { return e.err.Error() }
func (e *stateError) Unwrap() error { return e.err }

// ErrorResponse is the JSON shape of a failed command.
type ErrorResponse struct {
	Error  string                 `json:"error"`
	Fields map[string]string      `json:"fields,omitempty"`
	State  *dto.FormStateResponse `json:"state,omitempty"`
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (c *cli) printState(state ports.FormState) error {
	if c.human {
		printStateHuman(c.stdout, state)
		return nil
	}
	return writeJSON(c.stdout, dto.ToFormStateResponse(state))
}

func (c *cli) printAdded(item submission.ResourceItem, state ports.FormState) error {
	if c.human {
		fmt.Fprintf(c.stdout, "added resource %s\n\n", item.ID)
		printStateHuman(c.stdout, state)
		return nil
	}
	return writeJSON(c.stdout, dto.AddResourceResponse{
		Item:  dto.ToResourceResponse(item),
		State: dto.ToFormStateResponse(state),
	})
}

// printError reports a command failure: JSON on stdout by default, text on
// stderr with --human.
func (c *cli) printError(err error) {
	resp := ErrorResponse{Error: err.Error()}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Fields = verr.Fields
	}
	var serr *stateError
	if errors.As(err, &serr) {
		st := dto.ToFormStateResponse(serr.state)
		resp.State = &st
	}

	if !c.human {
		_ = writeJSON(c.stdout, resp)
		return
	}

	if serr != nil {
		printStateHuman(c.stderr, serr.state)
		fmt.Fprintln(c.stderr)
	}
	fmt.Fprintf(c.stderr, "error: %v\n", err)
	for _, key := range slices.Sorted(maps.Keys(resp.Fields)) {
		fmt.Fprintf(c.stderr, "  %s: %s\n", key, resp.Fields[key])
	}
}

func printStateHuman(w io.Writer, state ports.FormState) {
	p := state.Progress
	marks := make([]string, len(p.Sections))
	for i, s := range p.Sections {
		mark := " "
		if s.Complete {
			mark = "x"
		}
		marks[i] = fmt.Sprintf("%s [%s]", s.Section, mark)
	}
	fmt.Fprintf(w, "Progress: %d%% (%d/%d)  %s\n\n", p.Percent, p.Filled, p.Total, strings.Join(marks, "  "))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, f := range submission.Fields {
		value := state.Record.Value(f)
		if value == "" {
			value = "-"
		}
		line := f.String() + "\t" + value
		if msg := state.Validation.Message(f); msg != "" {
			line += "\t! " + msg
		}
		fmt.Fprintln(tw, line)
	}
	_ = tw.Flush()

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Resources:")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, item := range state.Record.Resources {
		line := fmt.Sprintf("  %d.\t%s\t%s\t%s", i+1, item.ID, orDash(item.Remark), orDash(item.Link))
		if msg := state.Validation.ResourceMessage(item.ID); msg != "" {
			line += "\t! " + msg
		}
		fmt.Fprintln(tw, line)
	}
	_ = tw.Flush()

	if state.Notice != nil {
		fmt.Fprintf(w, "\n%s %s\n", state.Notice.Title, state.Notice.Description)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
