package models

import "fmt"

// WizardStep is a state of the booking wizard.
type WizardStep int

const (
	StepVehicleSelection WizardStep = iota
	StepScheduleSelection
	StepAddressSelection
	StepPaymentConfirmation
	// StepCompleted is terminal; it is never a "current step" the user fills in.
	StepCompleted
)

// WizardSteps lists the four user-facing steps in order.
var WizardSteps = []WizardStep{
	StepVehicleSelection,
	StepScheduleSelection,
	StepAddressSelection,
	StepPaymentConfirmation,
}

var stepNames = map[WizardStep]string{
	StepVehicleSelection:    "vehicle_selection",
	StepScheduleSelection:   "schedule_selection",
	StepAddressSelection:    "address_selection",
	StepPaymentConfirmation: "payment_confirmation",
	StepCompleted:           "completed",
}

var stepTitles = map[WizardStep]string{
	StepVehicleSelection:    "Select Vehicle",
	StepScheduleSelection:   "Choose Date & Time",
	StepAddressSelection:    "Pickup & Delivery",
	StepPaymentConfirmation: "Payment",
	StepCompleted:           "Completed",
}

func (s WizardStep) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// Title is the heading shown for the step.
func (s WizardStep) Title() string {
	return stepTitles[s]
}

// Valid reports whether s is a known state, including StepCompleted.
func (s WizardStep) Valid() bool {
	return s >= StepVehicleSelection && s <= StepCompleted
}

// Index is the zero-based position of the step; StepCompleted reports the last step.
func (s WizardStep) Index() int {
	if s >= StepPaymentConfirmation {
		return int(StepPaymentConfirmation)
	}
	if s < StepVehicleSelection {
		return 0
	}
	return int(s)
}

func (s WizardStep) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid wizard step %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *WizardStep) UnmarshalText(text []byte) error {
	step, err := ParseWizardStep(string(text))
	if err != nil {
		return err
	}
	*s = step
	return nil
}

// ParseWizardStep maps a step name back to its value.
func ParseWizardStep(name string) (WizardStep, error) {
	for step, n := range stepNames {
		if n == name {
			return step, nil
		}
	}
	return 0, fmt.Errorf("unknown wizard step %q", name)
}
