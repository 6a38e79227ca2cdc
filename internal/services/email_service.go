package services

import (
	"context"
	"fmt"

	"matchday/internal/models"
	"matchday/pkg/mailer"
)

// EmailService sends transactional mail. Delivery failures are the caller's
// problem to swallow; this layer just reports them.
type EmailService interface {
	SendWelcome(ctx context.Context, user *models.User) error
	SendTicketConfirmation(ctx context.Context, user *models.User, ticket *models.Ticket, event *models.Event, qrPNG []byte) error
	SendCancellationNotice(ctx context.Context, user *models.User, ticket *models.Ticket, event *models.Event) error
}

const welcomeTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Welcome to {{.AppName}}, {{.Name}}!</h2>
  <p>Thank you for joining our platform. You're now ready to discover and book tickets for amazing sports events.</p>
  <p><a href="{{.EventsURL}}" style="background-color: #007bff; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px;">Browse Events</a></p>
</div>`

const ticketConfirmationTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Ticket Confirmed!</h2>
  <p>Hi {{.Name}},</p>
  <p>Your ticket for <strong>{{.EventTitle}}</strong> has been confirmed.</p>
  <div style="background-color: #f8f9fa; padding: 20px; border-radius: 5px; margin: 20px 0;">
    <h3>Event Details:</h3>
    <p><strong>Date:</strong> {{.EventDate}}</p>
    <p><strong>Seat:</strong> {{.Category}} - {{.SeatNumber}}</p>
    <p><strong>Price:</strong> ${{printf "%.2f" .Price}}</p>
  </div>
  <p>Your entry code: <strong>{{.EntryCode}}</strong></p>
  <p>Please arrive at the venue 30 minutes before the event starts.</p>
</div>`

const cancellationTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Ticket Cancelled</h2>
  <p>Hi {{.Name}},</p>
  <p>Your ticket for <strong>{{.EventTitle}}</strong> ({{.Category}}) has been cancelled.</p>
</div>`

type emailService struct {
	mailer      *mailer.Mailer
	appName     string
	frontendURL string
	enabled     bool
}

func NewEmailService(m *mailer.Mailer, appName, frontendURL string, enabled bool) EmailService {
	return &emailService{
		mailer:      m,
		appName:     appName,
		frontendURL: frontendURL,
		enabled:     enabled,
	}
}

func (s *emailService) SendWelcome(ctx context.Context, user *models.User) error {
	if !s.enabled {
		return nil
	}

	body, err := mailer.RenderTemplate("welcome", welcomeTemplate, map[string]interface{}{
		"AppName":   s.appName,
		"Name":      user.Name,
		"EventsURL": s.frontendURL + "/events",
	})
	if err != nil {
		return err
	}

	return s.mailer.Send(user.Email, fmt.Sprintf("Welcome to %s!", s.appName), body)
}

func (s *emailService) SendTicketConfirmation(ctx context.Context, user *models.User, ticket *models.Ticket, event *models.Event, qrPNG []byte) error {
	if !s.enabled {
		return nil
	}

	body, err := mailer.RenderTemplate("ticket_confirmation", ticketConfirmationTemplate, map[string]interface{}{
		"Name":       user.Name,
		"EventTitle": event.Title,
		"EventDate":  event.Date.Format("Jan 2, 2006 3:04 PM"),
		"Category":   ticket.SeatInfo.Category,
		"SeatNumber": ticket.SeatInfo.SeatNumber,
		"Price":      ticket.Price,
		"EntryCode":  ticket.EntryCode,
	})
	if err != nil {
		return err
	}

	var attachments []mailer.Attachment
	if len(qrPNG) > 0 {
		attachments = append(attachments, mailer.Attachment{
			Filename:    "ticket-qr.png",
			ContentType: "image/png",
			Data:        qrPNG,
		})
	}

	return s.mailer.Send(user.Email, "Ticket Confirmation - "+event.Title, body, attachments...)
}

func (s *emailService) SendCancellationNotice(ctx context.Context, user *models.User, ticket *models.Ticket, event *models.Event) error {
	if !s.enabled {
		return nil
	}

	body, err := mailer.RenderTemplate("cancellation", cancellationTemplate, map[string]interface{}{
		"Name":       user.Name,
		"EventTitle": event.Title,
		"Category":   ticket.SeatInfo.Category,
	})
	if err != nil {
		return err
	}

	return s.mailer.Send(user.Email, "Ticket Cancelled - "+event.Title, body)
}
