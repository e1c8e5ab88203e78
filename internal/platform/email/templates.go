package email

import (
	"fmt"
	"strings"
)

// DigestParticipant is one roster entry listed in the meeting digest.
type DigestParticipant struct {
	Name  string
	Email string
}

// WelcomeMessage builds the mail sent after a successful registration.
func WelcomeMessage(to, firstName, changePasswordURL string) Message {
	html := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <h1>Welcome to TeamCall!</h1>
  <p>Hi %s,</p>
  <p>Your account has been created successfully.</p>
  <p>If you ever need to change your password, use the link below:</p>
  <p><a href="%s">Change password</a></p>
</div>`, firstName, changePasswordURL)

	text := fmt.Sprintf("Hi %s,\n\nYour TeamCall account has been created successfully.\n", firstName)

	return Message{
		To:      to,
		ToName:  firstName,
		Subject: "Welcome to TeamCall",
		Text:    text,
		HTML:    html,
	}
}

// ResetPasswordMessage builds the password recovery mail. The recovery
// token travels only inside resetURL, never in an API response.
func ResetPasswordMessage(to, firstName, resetURL string) Message {
	html := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <h2>Password recovery</h2>
  <p>Hi %s,</p>
  <p>We received a request to reset your TeamCall password. The link below is valid for one hour:</p>
  <p><a href="%s">Reset password</a></p>
  <p>If you did not request a reset, you can ignore this email.</p>
</div>`, firstName, resetURL)

	text := fmt.Sprintf("Hi %s,\n\nReset your TeamCall password here (valid for one hour):\n%s\n\nIf you did not request a reset, ignore this email.\n", firstName, resetURL)

	return Message{
		To:      to,
		ToName:  firstName,
		Subject: "TeamCall password recovery",
		Text:    text,
		HTML:    html,
	}
}

// MeetingDigestMessage builds the meeting-end mail listing the roster.
func MeetingDigestMessage(to, meetingCode string, participants []DigestParticipant) Message {
	var items, lines strings.Builder
	for _, p := range participants {
		fmt.Fprintf(&items, "<li>%s (%s)</li>", p.Name, p.Email)
		fmt.Fprintf(&lines, "- %s (%s)\n", p.Name, p.Email)
	}

	html := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; line-height: 1.5; color: #333;">
  <h2>Meeting %s has ended</h2>
  <p>Total participants: %d</p>
  <ul>%s</ul>
  <p>Thanks for using TeamCall.</p>
</div>`, meetingCode, len(participants), items.String())

	text := fmt.Sprintf("Meeting: %s\nTotal participants: %d\n\nParticipants:\n%s", meetingCode, len(participants), lines.String())

	return Message{
		To:      to,
		Subject: fmt.Sprintf("Meeting %s summary", meetingCode),
		Text:    text,
		HTML:    html,
	}
}
