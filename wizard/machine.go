// Package wizard drives the multi-step proposal builder: a draft proposal
// accumulated across four steps, validated per step, and submitted to the
// backend once. Each browser session owns exactly one machine; drafts are
// never persisted and vanish with the session.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"proposaldesk/apiclient"
)

// Step indexes the ordered wizard steps.
type Step int

const (
	StepNeighborhood Step = iota
	StepDetails
	StepUnitMix
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepNeighborhood:
		return "neighborhood"
	case StepDetails:
		return "details"
	case StepUnitMix:
		return "unit mix"
	case StepReview:
		return "review"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// Field identifies a draft input that can carry a validation message. The
// set is closed: no other keys ever appear in Errors.
type Field string

const (
	FieldNeighborhood Field = "neighborhoodId"
	FieldTitle        Field = "title"
	FieldLotSize      Field = "lotSizeSqft"
	FieldTotalUnits   Field = "totalUnits"
	FieldUnitMix      Field = "unitMix"
)

// Errors maps fields to validation messages.
type Errors map[Field]string

// ErrValidation is returned by Submit when the draft fails validation; the
// field messages are available from Machine.Errors.
var ErrValidation = errors.New("draft failed validation")

// UnitEntry is one unit-mix row of the draft. Rows are addressed by their
// index in the list; they have no id until the server assigns one.
type UnitEntry struct {
	UnitType      apiclient.UnitType
	Count         int
	AvgSqft       string
	ProjectedRent string
}

// Draft is the in-progress proposal. Lot size stays an unvalidated text
// field until validation parses it.
type Draft struct {
	NeighborhoodID int
	Title          string
	Description    string
	LotSizeSqft    string
	TotalUnits     int
	UnitMix        []UnitEntry
}

// UnitSum is the total unit count across all unit-mix rows.
func (d Draft) UnitSum() int {
	sum := 0
	for _, u := range d.UnitMix {
		sum += u.Count
	}
	return sum
}

func (d Draft) clone() Draft {
	out := d
	out.UnitMix = append([]UnitEntry(nil), d.UnitMix...)
	return out
}

// ProposalCreator is the slice of the request layer the wizard needs.
// *apiclient.Client satisfies it.
type ProposalCreator interface {
	CreateProposal(ctx context.Context, payload apiclient.ProposalCreatePayload) (apiclient.ProposalDetail, error)
}

// Machine is the wizard state machine. It is driven by one session's
// request handlers; the lock only guards against overlapping requests from
// the same session.
type Machine struct {
	mu        sync.Mutex
	step      Step
	draft     Draft
	errors    Errors
	submitted bool
}

func NewMachine() *Machine {
	return &Machine{errors: Errors{}}
}

// Step returns the current step index.
func (m *Machine) Step() Step {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.step
}

// Draft returns a snapshot of the draft.
func (m *Machine) Draft() Draft {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draft.clone()
}

// Errors returns the field messages from the last failed validation.
func (m *Machine) Errors() Errors {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(Errors, len(m.errors))
	for k, v := range m.errors {
		out[k] = v
	}
	return out
}

// Submitted reports whether the machine reached its terminal state.
func (m *Machine) Submitted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.submitted
}

// Advance validates the current step. On failure the step is unchanged and
// the field errors are stored; on success errors clear and the machine
// moves one step forward. Advancing past review is a no-op.
func (m *Machine) Advance() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	errs := validateStep(m.draft, m.step)
	if len(errs) > 0 {
		m.errors = errs
		return false
	}
	m.errors = Errors{}
	if m.step < StepReview {
		m.step++
	}
	return true
}

// Retreat moves one step back, flooring at the first step. It always
// succeeds and clears errors.
func (m *Machine) Retreat() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.errors = Errors{}
	if m.step > StepNeighborhood {
		m.step--
	}
}

// SetNeighborhood selects the neighborhood the proposal belongs to.
func (m *Machine) SetNeighborhood(id int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft.NeighborhoodID = id
}

func (m *Machine) SetTitle(title string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft.Title = title
}

func (m *Machine) SetDescription(description string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft.Description = description
}

// SetLotSize stores the raw text of the lot-size input; parsing happens at
// validation time.
func (m *Machine) SetLotSize(raw string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft.LotSizeSqft = raw
}

func (m *Machine) SetTotalUnits(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft.TotalUnits = n
}

// AddUnit appends a unit-mix row.
func (m *Machine) AddUnit(entry UnitEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft.UnitMix = append(m.draft.UnitMix, entry)
}

// RemoveUnit drops the row at index. Out-of-range indices are a no-op;
// indices come from the rendered list, so they are in range in normal
// operation.
func (m *Machine) RemoveUnit(index int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if index < 0 || index >= len(m.draft.UnitMix) {
		return
	}
	m.draft.UnitMix = append(m.draft.UnitMix[:index], m.draft.UnitMix[index+1:]...)
}

// UpdateUnit replaces the row at index. Out-of-range indices are a no-op.
func (m *Machine) UpdateUnit(index int, entry UnitEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if index < 0 || index >= len(m.draft.UnitMix) {
		return
	}
	m.draft.UnitMix[index] = entry
}

// Submit re-validates the whole draft and, if it passes, creates the
// proposal through the request layer. On success the draft resets to empty
// and the machine is marked submitted. On any failure the draft stays
// intact: validation failures return ErrValidation with the messages
// stored, and request failures pass through for the view to report.
func (m *Machine) Submit(ctx context.Context, creator ProposalCreator) (apiclient.ProposalDetail, error) {
	m.mu.Lock()

	errs := validateAll(m.draft)
	if len(errs) > 0 {
		m.errors = errs
		m.mu.Unlock()
		return apiclient.ProposalDetail{}, ErrValidation
	}
	m.errors = Errors{}
	payload := buildPayload(m.draft)
	m.mu.Unlock()

	// The network call runs outside the lock so a slow backend does not
	// wedge the session's other requests.
	detail, err := creator.CreateProposal(ctx, payload)
	if err != nil {
		return apiclient.ProposalDetail{}, fmt.Errorf("create proposal: %w", err)
	}

	m.mu.Lock()
	m.draft = Draft{}
	m.step = StepNeighborhood
	m.errors = Errors{}
	m.submitted = true
	m.mu.Unlock()

	return detail, nil
}

func buildPayload(d Draft) apiclient.ProposalCreatePayload {
	units := make([]apiclient.UnitMixInput, 0, len(d.UnitMix))
	for _, u := range d.UnitMix {
		units = append(units, apiclient.UnitMixInput{
			UnitType:      u.UnitType,
			Count:         u.Count,
			AvgSqft:       u.AvgSqft,
			ProjectedRent: u.ProjectedRent,
		})
	}
	return apiclient.ProposalCreatePayload{
		Title:        d.Title,
		Description:  d.Description,
		Neighborhood: d.NeighborhoodID,
		LotSizeSqft:  strings.TrimSpace(d.LotSizeSqft),
		TotalUnits:   d.TotalUnits,
		UnitMix:      units,
	}
}

func validateStep(d Draft, step Step) Errors {
	errs := Errors{}

	switch step {
	case StepNeighborhood:
		if d.NeighborhoodID == 0 {
			errs[FieldNeighborhood] = "Please select a neighborhood."
		}
	case StepDetails:
		if strings.TrimSpace(d.Title) == "" {
			errs[FieldTitle] = "Title is required."
		}
		if size, err := strconv.ParseFloat(strings.TrimSpace(d.LotSizeSqft), 64); err != nil || size <= 0 {
			errs[FieldLotSize] = "Lot size must be positive."
		}
		if d.TotalUnits <= 0 {
			errs[FieldTotalUnits] = "Must have at least 1 unit."
		}
	case StepUnitMix:
		if len(d.UnitMix) == 0 {
			errs[FieldUnitMix] = "Add at least one unit type."
		} else if sum := d.UnitSum(); sum != d.TotalUnits {
			errs[FieldUnitMix] = fmt.Sprintf("Unit counts (%d) must equal total units (%d).", sum, d.TotalUnits)
		}
	case StepReview:
		// Review has no rules of its own; Submit re-checks the rest.
	}

	return errs
}

// validateAll runs the rules of every step before review, merging messages.
func validateAll(d Draft) Errors {
	errs := Errors{}
	for step := StepNeighborhood; step < StepReview; step++ {
		for field, msg := range validateStep(d, step) {
			errs[field] = msg
		}
	}
	return errs
}
