package notification

import (
	"context"
	"fmt"
	"time"

	"clinicore/models"
	"clinicore/scheduling"
	"clinicore/services/tasks"
	"clinicore/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// DefaultNotificationService queues email through asynq; the mail
// worker performs the actual SMTP delivery.
type DefaultNotificationService struct {
	Queue *asynq.Client
}

// NewDefaultNotificationService wires the asynq producer client.
func NewDefaultNotificationService(queue *asynq.Client) *DefaultNotificationService {
	return &DefaultNotificationService{Queue: queue}
}

// SendAppointmentConfirmation emails the booking details right after
// booking.
func (n *DefaultNotificationService) SendAppointmentConfirmation(ctx context.Context, patient *models.Patient, appt *models.Appointment) error {
	display := appt.Time
	if t, ok := scheduling.ParseTime(appt.Time); ok {
		display = t.Format12()
	}

	payload := models.EmailPayload{
		To:      patient.Email,
		Subject: "Your appointment is booked",
		Body: fmt.Sprintf(
			"Dear %s,\n\nYour appointment with %s is booked for %s at %s (%s session).\nYour queue token is %s.\n\nClinicore",
			patient.Name, appt.DoctorName, appt.Date, display, appt.Session, appt.TokenNumber),
	}
	return n.enqueue(payload, nil)
}

// ScheduleAppointmentReminder queues a reminder to fire the day
// before the appointment at 18:00; appointments booked for today or
// tomorrow get no reminder.
func (n *DefaultNotificationService) ScheduleAppointmentReminder(ctx context.Context, patient *models.Patient, appt *models.Appointment) error {
	day, err := time.Parse("2006-01-02", appt.Date)
	if err != nil {
		return fmt.Errorf("invalid appointment date %q: %w", appt.Date, err)
	}
	fireAt := day.AddDate(0, 0, -1).Add(18 * time.Hour)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload := models.EmailPayload{
		To:      patient.Email,
		Subject: "Appointment reminder",
		Body: fmt.Sprintf(
			"Dear %s,\n\nThis is a reminder of your appointment with %s tomorrow (%s) at %s. Your token is %s.\n\nClinicore",
			patient.Name, appt.DoctorName, appt.Date, appt.Time, appt.TokenNumber),
	}
	return n.enqueue(payload, &fireAt)
}

// SendOTPEmail emails a one-time code.
func (n *DefaultNotificationService) SendOTPEmail(ctx context.Context, to, otp string) error {
	payload := models.EmailPayload{
		To:      to,
		Subject: "Your Clinicore verification code",
		Body:    fmt.Sprintf("Your Clinicore OTP is: %s. It expires in 5 minutes.", otp),
	}
	return n.enqueue(payload, nil)
}

func (n *DefaultNotificationService) enqueue(payload models.EmailPayload, fireAt *time.Time) error {
	var (
		task *asynq.Task
		opts []asynq.Option
		err  error
	)
	if fireAt != nil {
		task, opts, err = tasks.NewScheduledEmailTask(payload, *fireAt)
	} else {
		task, opts, err = tasks.NewEmailTask(payload)
	}
	if err != nil {
		return fmt.Errorf("failed to build email task: %w", err)
	}

	info, err := n.Queue.Enqueue(task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue email task: %w", err)
	}
	utils.GetLogger().Debug("queued email", zap.String("taskId", info.ID), zap.String("to", payload.To))
	return nil
}
