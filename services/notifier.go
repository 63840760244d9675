package services

import (
	"github.com/lexcellence/reservation-app/models"
	"github.com/lexcellence/reservation-app/utils"
)

// NotificationSender is the outbound mail boundary. Delivery is
// fire-and-forget: a failed send never fails the booking that triggered it.
type NotificationSender interface {
	SendReservationConfirmation(r *models.Reservation) error
	SendPrivatisationReceived(p *models.PrivatisationRequest) error
	SendContactAcknowledgement(m *models.ContactMessage) error
}

// LogNotifier writes would-be emails to the application log. It stands in
// for the transactional mail provider until one is wired up.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) SendReservationConfirmation(r *models.Reservation) error {
	utils.InfoLogger.Printf("[mail] reservation confirmation %s to %s (%s %s, %d guests)",
		r.ConfirmationNumber, r.Email, r.Date, r.Time, r.Guests)
	return nil
}

func (n *LogNotifier) SendPrivatisationReceived(p *models.PrivatisationRequest) error {
	utils.InfoLogger.Printf("[mail] privatisation request %s received from %s (%s, %d guests)",
		p.RequestNumber, p.Email, p.EventType, p.GuestCount)
	return nil
}

func (n *LogNotifier) SendContactAcknowledgement(m *models.ContactMessage) error {
	utils.InfoLogger.Printf("[mail] contact acknowledgement to %s (subject: %s)", m.Email, m.Subject)
	return nil
}
