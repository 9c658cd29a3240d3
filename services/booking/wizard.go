package booking

import (
	"fmt"
	"strings"
	"time"

	"garagat/models"
	"garagat/services/scheduling"
)

// WizardConfig is the read-only input a wizard validates against.
type WizardConfig struct {
	Vehicles []models.Vehicle
	Policy   scheduling.Policy
	// Now is the injected clock; slot validity is evaluated against it.
	Now      func() time.Time
	Notifier Notifier
}

// Wizard sequences the four booking steps over a single draft it owns.
// It is not safe for concurrent use.
type Wizard struct {
	step     models.WizardStep
	draft    models.BookingDraft
	vehicles map[string]struct{}
	policy   scheduling.Policy
	now      func() time.Time
	notifier Notifier
	result   *models.BookingRequest
}

// NewWizard starts a fresh attempt at StepVehicleSelection.
func NewWizard(cfg WizardConfig) (*Wizard, error) {
	if _, err := scheduling.NewPolicy(cfg.Policy.Hours, cfg.Policy.Interval, cfg.Policy.LeadTime); err != nil {
		return nil, err
	}
	w := &Wizard{
		step:     models.StepVehicleSelection,
		vehicles: make(map[string]struct{}, len(cfg.Vehicles)),
		policy:   cfg.Policy,
		now:      cfg.Now,
		notifier: cfg.Notifier,
	}
	for _, v := range cfg.Vehicles {
		w.vehicles[v.ID] = struct{}{}
	}
	if w.now == nil {
		w.now = time.Now
	}
	if w.notifier == nil {
		w.notifier = nopNotifier{}
	}
	return w, nil
}

// RestoreWizard rebuilds a wizard for a stored session. Completed sessions can't be restored.
func RestoreWizard(cfg WizardConfig, step models.WizardStep, draft models.BookingDraft) (*Wizard, error) {
	if step < models.StepVehicleSelection || step > models.StepPaymentConfirmation {
		if step == models.StepCompleted {
			return nil, ErrWizardCompleted
		}
		return nil, fmt.Errorf("cannot restore wizard at %s", step)
	}
	w, err := NewWizard(cfg)
	if err != nil {
		return nil, err
	}
	w.step = step
	w.draft = draft.Clone()
	return w, nil
}

// Step is the current state.
func (w *Wizard) Step() models.WizardStep {
	return w.step
}

// Draft returns a copy of the draft for rendering.
func (w *Wizard) Draft() models.BookingDraft {
	return w.draft.Clone()
}

// Result is set once the wizard has completed.
func (w *Wizard) Result() (models.BookingRequest, bool) {
	if w.result == nil {
		return models.BookingRequest{}, false
	}
	return *w.result, true
}

// Progress lists the four steps with the ones reached so far marked.
func (w *Wizard) Progress() []models.StepProgress {
	out := make([]models.StepProgress, 0, len(models.WizardSteps))
	for _, s := range models.WizardSteps {
		out = append(out, models.StepProgress{
			Step:    s,
			Number:  s.Index() + 1,
			Title:   s.Title(),
			Reached: s <= w.step,
		})
	}
	return out
}

// Policy exposes the slot policy the wizard validates against.
func (w *Wizard) Policy() scheduling.Policy {
	return w.policy
}

// AvailableSlots is the slot list for the selected date, evaluated now.
func (w *Wizard) AvailableSlots() []time.Time {
	if w.draft.SelectedDate == nil {
		return nil
	}
	return w.policy.Slots(*w.draft.SelectedDate, w.now())
}

// ApplyPatch updates the draft. Only the current step's fields may change, so a
// step that was validated on the way forward stays valid. Picking a different date
// drops the chosen time unless the same patch picks a new one.
func (w *Wizard) ApplyPatch(p models.DraftPatch) error {
	if w.step == models.StepCompleted {
		return ErrWizardCompleted
	}
	for _, owner := range patchSteps(p) {
		if owner != w.step {
			return fmt.Errorf("%w: fields for %s cannot be edited at %s", ErrFieldNotEditable, owner, w.step)
		}
	}

	if p.SelectedTime != nil && p.SelectedDate == nil && w.draft.SelectedDate == nil {
		return ErrTimeWithoutDate
	}

	if p.VehicleID != nil {
		w.draft.VehicleID = strings.TrimSpace(*p.VehicleID)
	}
	if p.SelectedDate != nil {
		day := scheduling.NormalizeDay(*p.SelectedDate)
		if w.draft.SelectedDate == nil || !day.Equal(*w.draft.SelectedDate) {
			w.draft.SelectedSlot = nil
		}
		w.draft.SelectedDate = &day
	}
	if p.SelectedTime != nil {
		slot := p.SelectedTime.On(*w.draft.SelectedDate)
		w.draft.SelectedSlot = &slot
	}
	if p.PickupAddress != nil {
		w.draft.PickupAddress = *p.PickupAddress
	}
	if p.DeliveryAddress != nil {
		w.draft.DeliveryAddress = *p.DeliveryAddress
	}
	if p.SpecialInstructions != nil {
		w.draft.SpecialInstructions = *p.SpecialInstructions
	}
	return nil
}

// patchSteps lists the steps owning the fields a patch touches.
func patchSteps(p models.DraftPatch) []models.WizardStep {
	var owners []models.WizardStep
	if p.VehicleID != nil {
		owners = append(owners, models.StepVehicleSelection)
	}
	if p.SelectedDate != nil || p.SelectedTime != nil {
		owners = append(owners, models.StepScheduleSelection)
	}
	if p.PickupAddress != nil || p.DeliveryAddress != nil || p.SpecialInstructions != nil {
		owners = append(owners, models.StepAddressSelection)
	}
	return owners
}

// Validate evaluates the current step's predicate without moving.
func (w *Wizard) Validate() error {
	switch w.step {
	case models.StepVehicleSelection:
		return w.validateVehicle()
	case models.StepScheduleSelection:
		return w.validateSchedule()
	case models.StepAddressSelection:
		return w.validateAddress()
	case models.StepPaymentConfirmation:
		// Payment is handled by the caller after completion.
		return nil
	}
	return ErrWizardCompleted
}

func (w *Wizard) validateVehicle() error {
	if w.draft.VehicleID == "" {
		return NewValidationError(models.StepVehicleSelection, "select a vehicle")
	}
	if _, ok := w.vehicles[w.draft.VehicleID]; !ok {
		return NewValidationError(models.StepVehicleSelection, fmt.Sprintf("vehicle %s is not registered to this customer", w.draft.VehicleID))
	}
	return nil
}

func (w *Wizard) validateSchedule() error {
	if w.draft.SelectedDate == nil {
		return NewValidationError(models.StepScheduleSelection, "select a date")
	}
	if w.draft.SelectedSlot == nil {
		return NewValidationError(models.StepScheduleSelection, "select a time")
	}
	if !w.policy.Offers(*w.draft.SelectedDate, *w.draft.SelectedSlot, w.now()) {
		return NewValidationError(models.StepScheduleSelection, "the selected time is no longer available")
	}
	return nil
}

func (w *Wizard) validateAddress() error {
	if strings.TrimSpace(w.draft.PickupAddress) == "" {
		return NewValidationError(models.StepAddressSelection, "enter a pickup address")
	}
	return nil
}

// Advance moves to the next step if the current one is valid. From
// StepPaymentConfirmation it completes the wizard and builds the BookingRequest.
// On a failed predicate the step is unchanged and a *ValidationError is returned.
func (w *Wizard) Advance() error {
	if w.step == models.StepCompleted {
		return ErrWizardCompleted
	}
	if err := w.Validate(); err != nil {
		w.notifier.ValidationFailed(w.step)
		return err
	}

	from := w.step
	w.step++
	if w.step == models.StepCompleted {
		req := w.buildRequest()
		w.result = &req
	}
	w.notifier.StepAdvanced(from, w.step)
	if w.result != nil {
		w.notifier.Completed(*w.result)
	}
	return nil
}

// Retreat moves back one step without validating or clearing anything.
// It does nothing on the first step or once completed.
func (w *Wizard) Retreat() {
	if w.step == models.StepVehicleSelection || w.step == models.StepCompleted {
		return
	}
	w.step--
}

func (w *Wizard) buildRequest() models.BookingRequest {
	d := w.draft.Clone()
	delivery := d.DeliveryAddress
	if strings.TrimSpace(delivery) == "" {
		delivery = d.PickupAddress
	}
	return models.BookingRequest{
		VehicleID:           d.VehicleID,
		Date:                *d.SelectedDate,
		Slot:                *d.SelectedSlot,
		PickupAddress:       d.PickupAddress,
		DeliveryAddress:     delivery,
		SpecialInstructions: d.SpecialInstructions,
		CompletedAt:         w.now(),
	}
}
