package booking

import (
	"context"
	"fmt"
	"time"

	appointmentRepo "clinicore/database/repository/appointment"
	doctorRepo "clinicore/database/repository/doctor"
	overrideRepo "clinicore/database/repository/override"
	patientRepo "clinicore/database/repository/patient"
	"clinicore/models"
	"clinicore/scheduling"
	"clinicore/services/notification"
	"clinicore/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService is our production implementation of
// BookingService.
type DefaultBookingService struct {
	ApptRepo     appointmentRepo.AppointmentRepository
	DoctorRepo   doctorRepo.DoctorRepository
	PatientRepo  patientRepo.PatientRepository
	OverrideRepo overrideRepo.OverrideRepository
	Notifier     notification.NotificationService
}

// schedulingHours maps a doctor's stored configuration into the
// scheduling package's config object; missing fields fall back to the
// package defaults there, in one place.
func schedulingHours(doc *models.Doctor) scheduling.DoctorHours {
	return scheduling.DoctorHours{
		MorningStart: doc.Hours.MorningStartTime,
		MorningEnd:   doc.Hours.MorningEndTime,
		EveningStart: doc.Hours.EveningStartTime,
		EveningEnd:   doc.Hours.EveningEndTime,
		SlotMinutes:  doc.Hours.ConsultationDuration,
	}
}

// GetAvailableSlots lists the remaining bookable times for one
// doctor's session on a date.
func (s *DefaultBookingService) GetAvailableSlots(ctx context.Context, doctorID, date, session string) (*models.AvailableSlotsResponse, error) {
	doc, err := s.approvedDoctor(doctorID)
	if err != nil {
		return nil, err
	}
	sess, err := parseSession(session)
	if err != nil {
		return nil, err
	}

	free, err := s.freeSlots(doc, date, sess)
	if err != nil {
		return nil, err
	}

	resp := &models.AvailableSlotsResponse{
		DoctorID: doctorID,
		Date:     date,
		Session:  string(sess),
		Slots:    make([]string, 0, len(free)),
	}
	for _, slot := range free {
		resp.Slots = append(resp.Slots, slot.Format24())
	}
	return resp, nil
}

// freeSlots computes the open slots of a session after subtracting
// booked appointments and override blackouts. A holiday returns no
// slots.
func (s *DefaultBookingService) freeSlots(doc *models.Doctor, date string, sess scheduling.Session) ([]scheduling.TimeOfDay, error) {
	overrides, err := s.OverrideRepo.ListByDoctorDate(doc.ID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to check schedule overrides: %w", err)
	}
	for _, o := range overrides {
		if o.Kind == models.OverrideHoliday {
			return nil, nil
		}
	}

	booked, err := s.ApptRepo.BookedTimes(doc.ID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booked times: %w", err)
	}

	free := scheduling.AvailableSlots(schedulingHours(doc), sess, booked)
	if len(overrides) == 0 {
		return free, nil
	}

	hours := schedulingHours(doc).Resolve()
	kept := free[:0]
	for _, slot := range free {
		if !blackedOut(overrides, slot, hours.SlotMinutes) {
			kept = append(kept, slot)
		}
	}
	return kept, nil
}

// blackedOut reports whether a slot of the given duration overlaps
// any blackout window.
func blackedOut(overrides []models.ScheduleOverride, slot scheduling.TimeOfDay, duration int) bool {
	for _, o := range overrides {
		if o.Kind != models.OverrideBlackout {
			continue
		}
		start, okStart := scheduling.ParseTime(o.StartTime)
		end, okEnd := scheduling.ParseTime(o.EndTime)
		if !okStart || !okEnd {
			continue
		}
		if slot < end && scheduling.TimeOfDay(int(slot)+duration) > start {
			return true
		}
	}
	return false
}

// BookAppointment books the requested slot, or the next available one
// when the request carries no time.
func (s *DefaultBookingService) BookAppointment(ctx context.Context, patientID string, req models.BookingRequest) (*models.Appointment, error) {
	return s.book(ctx, patientID, req, false)
}

// BookEmergency books the earliest free slot of the date, morning
// first, then evening.
func (s *DefaultBookingService) BookEmergency(ctx context.Context, patientID string, req models.BookingRequest) (*models.Appointment, error) {
	req.Time = ""

	req.Session = string(scheduling.SessionMorning)
	appt, err := s.book(ctx, patientID, req, true)
	if err == ErrSessionFull || err == ErrDoctorUnavailable {
		req.Session = string(scheduling.SessionEvening)
		appt, err = s.book(ctx, patientID, req, true)
		if err == ErrSessionFull {
			return nil, ErrDayFull
		}
	}
	return appt, err
}

func (s *DefaultBookingService) book(ctx context.Context, patientID string, req models.BookingRequest, emergency bool) (*models.Appointment, error) {
	logger := utils.GetLogger()

	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, err)
	}
	doc, err := s.approvedDoctor(req.DoctorID)
	if err != nil {
		return nil, err
	}
	patient, err := s.PatientRepo.GetByID(patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch patient %s: %w", patientID, err)
	}
	if patient == nil {
		return nil, fmt.Errorf("patient %s not found", patientID)
	}

	overrides, err := s.OverrideRepo.ListByDoctorDate(doc.ID, req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to check schedule overrides: %w", err)
	}
	for _, o := range overrides {
		if o.Kind == models.OverrideHoliday {
			return nil, ErrDoctorUnavailable
		}
	}

	hours := schedulingHours(doc)

	// Resolve the session and slot. An explicit time pins both; an
	// empty time means first-fit within the requested session.
	var sess scheduling.Session
	var slot scheduling.TimeOfDay
	if req.Time != "" {
		t, ok := scheduling.ParseTime(req.Time)
		if !ok {
			return nil, ErrInvalidTime
		}
		sess = scheduling.SessionOf(t, hours)
		free, err := s.freeSlots(doc, req.Date, sess)
		if err != nil {
			return nil, err
		}
		idx := indexOf(free, t)
		if idx < 0 {
			// Distinguish "not a slot at all" from "slot taken".
			all := scheduling.GenerateSlots(hours.Resolve().Window(sess), hours.Resolve().SlotMinutes)
			if indexOf(all, t) < 0 {
				return nil, ErrInvalidTime
			}
			return nil, ErrSlotTaken
		}
		slot = t
	} else {
		sess, err = parseSession(req.Session)
		if err != nil {
			return nil, err
		}
		free, err := s.freeSlots(doc, req.Date, sess)
		if err != nil {
			return nil, err
		}
		if len(free) == 0 {
			return nil, ErrSessionFull
		}
		slot = free[0]
	}

	// Token numbering is derived from the current snapshot, scoped to
	// the date+session queue.
	tokens, err := s.ApptRepo.TokensFor(doc.ID, req.Date, string(sess))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tokens: %w", err)
	}

	appt := &models.Appointment{
		ID:          uuid.NewString(),
		PatientID:   patient.ID,
		PatientName: patient.Name,
		DoctorID:    doc.ID,
		DoctorName:  doc.Name,
		Date:        req.Date,
		Time:        slot.Format24(),
		Session:     string(sess),
		TokenNumber: scheduling.NextToken(tokens),
		Status:      models.AppointmentStatusScheduled,
		Reason:      req.Reason,
		Emergency:   emergency,
	}

	if err := s.ApptRepo.Create(appt); err != nil {
		if appointmentRepo.IsDuplicateSlot(err) {
			logger.Warn("slot lost to concurrent booking",
				zap.String("doctorId", doc.ID),
				zap.String("date", req.Date),
				zap.String("time", appt.Time))
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	if s.Notifier != nil {
		if err := s.Notifier.SendAppointmentConfirmation(ctx, patient, appt); err != nil {
			logger.Error("failed to queue confirmation email", zap.Error(err))
		}
		if err := s.Notifier.ScheduleAppointmentReminder(ctx, patient, appt); err != nil {
			logger.Error("failed to queue reminder email", zap.Error(err))
		}
	}

	logger.Sugar().Infof("booked appointment %s: doctor %s %s %s token %s",
		appt.ID, doc.ID, appt.Date, appt.Time, appt.TokenNumber)
	return appt, nil
}

// CancelAppointment cancels a patient's own appointment, freeing its
// slot.
func (s *DefaultBookingService) CancelAppointment(ctx context.Context, id, patientID string) error {
	appt, err := s.ApptRepo.GetByID(id)
	if err != nil {
		return err
	}
	if appt == nil {
		return ErrNotFound
	}
	if patientID != "" && appt.PatientID != patientID {
		return ErrForbidden
	}
	return s.ApptRepo.UpdateStatus(id, models.AppointmentStatusCancelled)
}

// UpdateStatus transitions an appointment through its lifecycle
// (admin/doctor portals).
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, id, status string) error {
	switch status {
	case models.AppointmentStatusScheduled,
		models.AppointmentStatusConfirmed,
		models.AppointmentStatusCompleted,
		models.AppointmentStatusCancelled:
	default:
		return ErrInvalidStatus
	}

	appt, err := s.ApptRepo.GetByID(id)
	if err != nil {
		return err
	}
	if appt == nil {
		return ErrNotFound
	}
	return s.ApptRepo.UpdateStatus(id, status)
}

// ListForPatient returns a patient's appointments.
func (s *DefaultBookingService) ListForPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return s.ApptRepo.ListByPatient(patientID)
}

// ListForDoctor returns a doctor's appointments for a date.
func (s *DefaultBookingService) ListForDoctor(ctx context.Context, doctorID, date string) ([]models.Appointment, error) {
	return s.ApptRepo.ListByDoctorDate(doctorID, date, nil)
}

// ListAll returns every appointment (admin portal).
func (s *DefaultBookingService) ListAll(ctx context.Context) ([]models.Appointment, error) {
	return s.ApptRepo.GetAll()
}

func (s *DefaultBookingService) approvedDoctor(id string) (*models.Doctor, error) {
	doc, err := s.DoctorRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doctor %s: %w", id, err)
	}
	if doc == nil || doc.Status != models.DoctorStatusApproved {
		return nil, ErrDoctorNotFound
	}
	return doc, nil
}

func parseSession(s string) (scheduling.Session, error) {
	switch s {
	case "", string(scheduling.SessionMorning):
		return scheduling.SessionMorning, nil
	case string(scheduling.SessionEvening):
		return scheduling.SessionEvening, nil
	default:
		return "", fmt.Errorf("unknown session %q", s)
	}
}

func indexOf(slots []scheduling.TimeOfDay, t scheduling.TimeOfDay) int {
	for i, s := range slots {
		if s == t {
			return i
		}
	}
	return -1
}
