package booking

import (
	"context"
	"fmt"
	"time"

	"garagat/models"
	"garagat/services/payment"
	"garagat/services/scheduling"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const summaryTimeLayout = "Jan 2, 2006 at 3:04 PM"

func (s *DefaultBookingSessionService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *DefaultBookingSessionService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *DefaultBookingSessionService) notifier() Notifier {
	if s.Notifier == nil {
		return nopNotifier{}
	}
	return s.Notifier
}

// InitiateSession creates a session for the provider's service, anchored on
// the window starting today, and stores it.
func (s *DefaultBookingSessionService) InitiateSession(ctx context.Context, userID, providerID, serviceID string) (*models.BookingResponse, error) {
	provider, err := s.Providers.GetByID(providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load provider: %w", err)
	}

	hours := s.Policy.Hours
	if provider.OperatingHours != nil {
		hours = *provider.OperatingHours
	}
	if _, err := s.Policy.WithHours(hours); err != nil {
		s.logger().Error("Provider has invalid operating hours",
			zap.String("providerId", providerID), zap.Error(err))
		return nil, err
	}

	offering, ok := provider.Service(serviceID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownService, serviceID)
	}

	vehicles, err := s.Customers.GetVehicles(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load vehicles: %w", err)
	}

	now := s.now()
	session := &models.BookingSession{
		SessionID:   uuid.New().String(),
		UserID:      userID,
		ProviderID:  providerID,
		ServiceID:   serviceID,
		Service:     offering,
		Step:        models.StepVehicleSelection,
		WindowStart: scheduling.NewDateWindow(now).Start(),
		Hours:       hours,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}

	w, err := NewWizard(s.wizardConfig(session, vehicles))
	if err != nil {
		return nil, err
	}
	s.logger().Info("Booking session created",
		zap.String("sessionId", session.SessionID),
		zap.String("providerId", providerID),
		zap.String("serviceId", serviceID),
	)
	return s.render(session, w, vehicles), nil
}

func (s *DefaultBookingSessionService) GetSession(ctx context.Context, userID, sessionID string) (*models.BookingResponse, error) {
	session, w, customer, err := s.open(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	return s.render(session, w, customer.Vehicles), nil
}

func (s *DefaultBookingSessionService) UpdateDraft(ctx context.Context, userID, sessionID string, patch models.DraftPatch) (*models.BookingResponse, error) {
	session, w, customer, err := s.open(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return s.render(session, w, customer.Vehicles), nil
	}
	if p := patch.SelectedDate; p != nil {
		d := p.In(s.location())
		patch.SelectedDate = &d
	}
	if err := w.ApplyPatch(patch); err != nil {
		return nil, err
	}
	if err := s.commit(ctx, session, w); err != nil {
		return nil, err
	}
	return s.render(session, w, customer.Vehicles), nil
}

// ShiftWindow pages the date strip by one week. The selected date is kept even
// when it leaves the visible window.
func (s *DefaultBookingSessionService) ShiftWindow(ctx context.Context, userID, sessionID string, dir scheduling.Direction) (*models.BookingResponse, error) {
	session, w, customer, err := s.open(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	window := scheduling.NewDateWindow(session.WindowStart)
	session.WindowStart = scheduling.Shift(window, dir).Start()
	if err := s.commit(ctx, session, w); err != nil {
		return nil, err
	}
	return s.render(session, w, customer.Vehicles), nil
}

// GetSlots lists the slots for any date under the session's hours without
// changing the draft.
func (s *DefaultBookingSessionService) GetSlots(ctx context.Context, userID, sessionID string, date time.Time) ([]models.TimeSlot, error) {
	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	policy, err := s.Policy.WithHours(session.Hours)
	if err != nil {
		return nil, err
	}
	return scheduling.TimeSlots(policy.Slots(date.In(s.location()), s.now())), nil
}

// Advance moves to the next step. From the payment step it confirms the booking
// with the method already on the session, or the default one.
func (s *DefaultBookingSessionService) Advance(ctx context.Context, userID, sessionID string) (*models.BookingResponse, error) {
	session, w, customer, err := s.open(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if w.Step() == models.StepPaymentConfirmation {
		return s.complete(ctx, session, w, customer.Vehicles)
	}
	if err := w.Advance(); err != nil {
		return nil, err
	}
	if w.Step() == models.StepAddressSelection && w.Draft().PickupAddress == "" {
		if addr, ok := customer.DefaultAddress(); ok {
			if err := w.ApplyPatch(models.DraftPatch{PickupAddress: &addr.Address}); err != nil {
				return nil, err
			}
		}
	}
	if err := s.commit(ctx, session, w); err != nil {
		return nil, err
	}
	return s.render(session, w, customer.Vehicles), nil
}

func (s *DefaultBookingSessionService) Retreat(ctx context.Context, userID, sessionID string) (*models.BookingResponse, error) {
	session, w, customer, err := s.open(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	w.Retreat()
	if err := s.commit(ctx, session, w); err != nil {
		return nil, err
	}
	return s.render(session, w, customer.Vehicles), nil
}

// ConfirmBooking records the payment method and completes the wizard.
func (s *DefaultBookingSessionService) ConfirmBooking(ctx context.Context, userID, sessionID, paymentMethod string) (*models.BookingResponse, error) {
	session, w, customer, err := s.open(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if w.Step() != models.StepPaymentConfirmation {
		return nil, ErrNotAtConfirmation
	}
	if paymentMethod != "" {
		session.PaymentMethod = paymentMethod
	}
	return s.complete(ctx, session, w, customer.Vehicles)
}

// CancelSession deletes the session.
func (s *DefaultBookingSessionService) CancelSession(ctx context.Context, userID, sessionID string) error {
	if _, err := s.load(ctx, userID, sessionID); err != nil {
		return err
	}
	if err := s.Store.Delete(ctx, sessionID); err != nil {
		return err
	}
	s.logger().Info("Booking session cancelled", zap.String("sessionId", sessionID))
	return nil
}

// complete finishes the wizard and hands the request to the completion handler.
// The session is claimed as completed with a versioned save first, so only one
// caller reaches the handler. A failed completion releases the claim and keeps
// the session for a retry; it is deleted once the booking exists.
func (s *DefaultBookingSessionService) complete(ctx context.Context, session *models.BookingSession, w *Wizard, vehicles []models.Vehicle) (*models.BookingResponse, error) {
	if session.PaymentMethod == "" {
		session.PaymentMethod = s.DefaultPaymentMethod
	}
	if !payment.Supported(session.PaymentMethod) {
		return nil, fmt.Errorf("%w: %q", payment.ErrUnsupportedMethod, session.PaymentMethod)
	}

	session.Step = models.StepCompleted
	session.UpdatedAt = s.now()
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}

	booking, err := s.finish(ctx, session, w)
	if err != nil {
		session.Step = models.StepPaymentConfirmation
		if rerr := s.Store.Save(ctx, session); rerr != nil {
			s.logger().Error("Failed to release booking session claim",
				zap.String("sessionId", session.SessionID), zap.Error(rerr))
		}
		return nil, err
	}
	if err := s.Store.Delete(ctx, session.SessionID); err != nil {
		s.logger().Warn("Failed to delete completed session",
			zap.String("sessionId", session.SessionID), zap.Error(err))
	}

	resp := s.render(session, w, vehicles)
	resp.Booking = booking
	return resp, nil
}

func (s *DefaultBookingSessionService) finish(ctx context.Context, session *models.BookingSession, w *Wizard) (*models.Booking, error) {
	if err := w.Advance(); err != nil {
		return nil, err
	}
	req, ok := w.Result()
	if !ok {
		return nil, fmt.Errorf("booking wizard did not complete")
	}
	return s.Completion.HandleCompletion(ctx, session, req)
}

// load fetches a session owned by userID. Sessions of other users read as missing.
func (s *DefaultBookingSessionService) load(ctx context.Context, userID, sessionID string) (*models.BookingSession, error) {
	session, err := s.Store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// open loads a session and rebuilds its wizard against fresh customer data.
func (s *DefaultBookingSessionService) open(ctx context.Context, userID, sessionID string) (*models.BookingSession, *Wizard, *models.Customer, error) {
	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, nil, nil, err
	}
	s.localize(session)

	customer, err := s.Customers.GetByID(session.UserID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load customer: %w", err)
	}
	w, err := RestoreWizard(s.wizardConfig(session, customer.Vehicles), session.Step, session.Draft)
	if err != nil {
		return nil, nil, nil, err
	}
	return session, w, customer, nil
}

func (s *DefaultBookingSessionService) commit(ctx context.Context, session *models.BookingSession, w *Wizard) error {
	session.Step = w.Step()
	session.Draft = w.Draft()
	session.UpdatedAt = s.now()
	return s.Store.Save(ctx, session)
}

func (s *DefaultBookingSessionService) wizardConfig(session *models.BookingSession, vehicles []models.Vehicle) WizardConfig {
	policy := s.Policy
	policy.Hours = session.Hours
	return WizardConfig{
		Vehicles: vehicles,
		Policy:   policy,
		Now:      s.now,
		Notifier: s.notifier(),
	}
}

func (s *DefaultBookingSessionService) location() *time.Location {
	return s.now().Location()
}

// localize moves stored instants back into the clock's location; JSON keeps
// only the UTC offset, which breaks day arithmetic across DST changes.
func (s *DefaultBookingSessionService) localize(session *models.BookingSession) {
	loc := s.location()
	session.WindowStart = session.WindowStart.In(loc)
	if d := session.Draft.SelectedDate; d != nil {
		v := d.In(loc)
		session.Draft.SelectedDate = &v
	}
	if t := session.Draft.SelectedSlot; t != nil {
		v := t.In(loc)
		session.Draft.SelectedSlot = &v
	}
}

func (s *DefaultBookingSessionService) render(session *models.BookingSession, w *Wizard, vehicles []models.Vehicle) *models.BookingResponse {
	draft := w.Draft()
	return &models.BookingResponse{
		SessionID: session.SessionID,
		Step:      w.Step(),
		Progress:  w.Progress(),
		Draft:     draft,
		Window:    scheduling.NewDateWindow(session.WindowStart).Dates(),
		Slots:     scheduling.TimeSlots(w.AvailableSlots()),
		Hours:     session.Hours,
		Summary:   summarize(session, draft, vehicles),
	}
}

func summarize(session *models.BookingSession, draft models.BookingDraft, vehicles []models.Vehicle) *models.BookingSummary {
	sum := &models.BookingSummary{
		Service:  session.Service.Name,
		Price:    session.Service.Price,
		Currency: session.Service.Currency,
	}
	for _, v := range vehicles {
		if v.ID == draft.VehicleID {
			sum.Vehicle = v.DisplayName()
			break
		}
	}
	if draft.SelectedSlot != nil {
		sum.DateTime = draft.SelectedSlot.Format(summaryTimeLayout)
	}
	n := payment.InstallmentCount(session.PaymentMethod)
	if n == 0 {
		// Card customers still see the tabby split as an option.
		n = payment.TabbyInstallments
	}
	sum.InstallmentAmount = payment.InstallmentAmount(sum.Price, n)
	return sum
}
