// Package publish drives the preview → confirm → submit workflow over an
// editor snapshot, and talks to the Publish API.
package publish

import (
	"context"
	"fmt"

	"inkwell/internal/convert"
	"inkwell/internal/doc"
)

// Category is the single content category this editor publishes under.
// Multi-category authoring is not implemented.
const Category = "1"

// summaryLimit caps the derived plain-text summary sent to the API.
const summaryLimit = 200

type State int

const (
	StateEditing State = iota
	StatePreviewing
	StateConfirmPending
	StateSubmitting
	StatePublished
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StatePreviewing:
		return "previewing"
	case StateConfirmPending:
		return "confirm-pending"
	case StateSubmitting:
		return "submitting"
	case StatePublished:
		return "published"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Draft is an immutable snapshot of the editable content. The Doc is a
// deep clone, so edits to the live document after the snapshot never
// change a draft already captured for preview or publish.
type Draft struct {
	Title    string
	Doc      *doc.Document
	Markup   string
	CoverURL string
}

// Submission is the Publish API payload.
type Submission struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	CoverImg string `json:"coverImg"`
	Category string `json:"category"`
	Summary  string `json:"summary"`
}

// Publisher is the narrow Publish API contract the workflow consumes.
type Publisher interface {
	Publish(ctx context.Context, sub Submission) error
}

// Workflow is the publish state machine layered over the editor. It never
// mutates the live document; it only snapshots it.
//
// Cancelling the confirmation surface cancels the transition to
// Submitting, not an in-flight submission: once Confirm has handed out
// the Submission, the eventual Resolve still lands even if the dialog
// closed in the meantime.
type Workflow struct {
	snapshot func() Draft
	state    State
	prior    State
	draft    *Draft
	lastErr  error
}

func NewWorkflow(snapshot func() Draft) *Workflow {
	return &Workflow{snapshot: snapshot, state: StateEditing, prior: StateEditing}
}

func (w *Workflow) State() State  { return w.state }
func (w *Workflow) Draft() *Draft { return w.draft }

// Err is the failure from the last submission, kept until the next
// submission attempt.
func (w *Workflow) Err() error { return w.lastErr }

// Preview captures a fresh draft and shows it read-only.
func (w *Workflow) Preview() error {
	if w.state != StateEditing {
		return fmt.Errorf("preview: not editing (state %s)", w.state)
	}
	d := w.snapshot()
	w.draft = &d
	w.state = StatePreviewing
	return nil
}

// Back leaves the preview. The live document was never mutated; the
// captured draft stays around until the next snapshot replaces it.
func (w *Workflow) Back() error {
	if w.state != StatePreviewing {
		return fmt.Errorf("back: not previewing (state %s)", w.state)
	}
	w.state = StateEditing
	return nil
}

// RequestPublish opens the confirmation gate. From Editing it snapshots
// the current content; from Previewing it publishes exactly what was
// previewed. No network call happens here.
func (w *Workflow) RequestPublish() error {
	switch w.state {
	case StateEditing:
		d := w.snapshot()
		w.draft = &d
	case StatePreviewing:
		if w.draft == nil {
			d := w.snapshot()
			w.draft = &d
		}
	default:
		return fmt.Errorf("request publish: state %s", w.state)
	}
	w.prior = w.state
	w.state = StateConfirmPending
	return nil
}

// Cancel closes the confirmation surface and returns to the state held
// before RequestPublish, with zero side effects.
func (w *Workflow) Cancel() error {
	if w.state != StateConfirmPending {
		return fmt.Errorf("cancel: state %s", w.state)
	}
	w.state = w.prior
	return nil
}

// Confirm moves to Submitting and yields the one Submission to send.
// Only valid from ConfirmPending, so a second confirm racing the first
// submission is rejected and exactly one API call can result.
func (w *Workflow) Confirm() (Submission, error) {
	if w.state != StateConfirmPending {
		return Submission{}, fmt.Errorf("confirm: state %s", w.state)
	}
	if w.draft == nil {
		return Submission{}, fmt.Errorf("confirm: no draft captured")
	}
	w.state = StateSubmitting
	w.lastErr = nil
	return buildSubmission(*w.draft), nil
}

// Resolve records the submission outcome. On failure the draft is kept
// and the user retries RequestPublish manually; there is no automatic
// retry.
func (w *Workflow) Resolve(err error) {
	if w.state != StateSubmitting {
		return
	}
	if err != nil {
		w.lastErr = err
		w.state = StateFailed
		return
	}
	w.state = StatePublished
}

// Edit returns a failed workflow to the editable state, draft intact.
func (w *Workflow) Edit() {
	if w.state == StateFailed || w.state == StatePreviewing {
		w.state = StateEditing
	}
}

// Submit runs Confirm, the network call, and Resolve in one step, for
// hosts without their own event loop.
func (w *Workflow) Submit(ctx context.Context, p Publisher) error {
	sub, err := w.Confirm()
	if err != nil {
		return err
	}
	err = p.Publish(ctx, sub)
	w.Resolve(err)
	return err
}

func buildSubmission(d Draft) Submission {
	content := ""
	plain := ""
	if d.Doc != nil {
		content = convert.DocToMarkdown(d.Doc)
		plain = d.Doc.PlainText()
	}
	return Submission{
		Title:    d.Title,
		Content:  content,
		CoverImg: d.CoverURL,
		Category: Category,
		Summary:  Summary(plain),
	}
}

// Summary derives the submission summary: the first summaryLimit runes of
// the plain-text projection (markup already stripped by the projection).
func Summary(plain string) string {
	r := []rune(plain)
	if len(r) <= summaryLimit {
		return plain
	}
	return string(r[:summaryLimit])
}
