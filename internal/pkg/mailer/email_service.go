package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// RunSummary is what the scheduler reports after a snapshot pass.
type RunSummary struct {
	Date             string
	SnapshotsCreated int
	AbsencesRecorded int
	SkippedExisting  int
	Failures         int
}

type IEmailService interface {
	SendSnapshotSummary(toEmail string, summary RunSummary) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)
	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendSnapshotSummary(toEmail string, summary RunSummary) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Time tracking snapshot summary for %s", summary.Date))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Daily Snapshot Run</h2>
			<p>The time tracking snapshot for <b>%s</b> has completed.</p>
			<ul>
				<li>Snapshots created: %d</li>
				<li>Absences recorded: %d</li>
				<li>Skipped (already captured): %d</li>
				<li>Failures: %d</li>
			</ul>
		</div>
	`, summary.Date, summary.SnapshotsCreated, summary.AbsencesRecorded, summary.SkippedExisting, summary.Failures)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send snapshot summary to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Snapshot summary sent to %s\n", toEmail)
	return nil
}
