package utils

import (
	"fmt"
	"html"
	"strings"

	models "github.com/phillip/topup-intake-go/models"
)

// HTMLText escapes user text and turns line breaks into <br>.
func HTMLText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(html.EscapeString(s), "\n", "<br>")
}

func emailLayout(title, content string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8" /></head>
<body style="margin: 0; padding: 24px; background-color: #f4f4f5; font-family: sans-serif;">
	<table width="100%%" cellspacing="0" cellpadding="0">
		<tr>
			<td align="center">
				<table width="600" style="background-color: #ffffff; border-radius: 8px; padding: 24px;">
					<tr><td style="font-size: 20px; font-weight: bold; color: #18181b;">%s</td></tr>
					<tr><td style="padding-top: 16px; font-size: 15px; color: #27272a; line-height: 1.5;">%s</td></tr>
				</table>
			</td>
		</tr>
	</table>
</body>
</html>`, html.EscapeString(title), content)
}

func optional(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func row(label, value string) string {
	return fmt.Sprintf("<b>%s:</b> %s<br>", label, HTMLText(value))
}

func OrderEmail(o models.Order) (string, string) {
	subject := fmt.Sprintf("New %s order from %s", o.Type, o.Name)
	var b strings.Builder
	b.WriteString(row("Name", o.Name))
	b.WriteString(row("Player ID", o.PlayerID))
	b.WriteString(row("Email", o.Email))
	b.WriteString(row("Type", o.Type))
	b.WriteString(row("UC Amount", optional(o.UCAmount)))
	b.WriteString(row("Bundle", optional(o.Bundle)))
	b.WriteString(row("Total", o.TotalAmount))
	b.WriteString(row("Transaction ID", o.TransactionID))
	if o.ScreenshotURL != nil {
		url := html.EscapeString(*o.ScreenshotURL)
		b.WriteString(fmt.Sprintf(`<b>Screenshot:</b> <a href="%s">%s</a><br>`, url, url))
	}
	return subject, emailLayout("New order", b.String())
}

func OrderChatText(o models.Order) string {
	lines := []string{
		"🛒 New order",
		"Name: " + o.Name,
		"Player ID: " + o.PlayerID,
		"Email: " + o.Email,
		"Type: " + o.Type,
		"UC Amount: " + optional(o.UCAmount),
		"Bundle: " + optional(o.Bundle),
		"Total: " + o.TotalAmount,
		"Transaction ID: " + o.TransactionID,
	}
	if o.ScreenshotURL != nil {
		lines = append(lines, "Screenshot: "+*o.ScreenshotURL)
	}
	return strings.Join(lines, "\n")
}

func InquiryEmail(i models.Inquiry) (string, string) {
	content := row("From", i.Email) + "<br>" + HTMLText(i.Message)
	return "New inquiry from " + i.Email, emailLayout("New inquiry", content)
}

func InquiryChatText(i models.Inquiry) string {
	return fmt.Sprintf("📩 New inquiry\nFrom: %s\n\n%s", i.Email, i.Message)
}

func SuggestionEmail(s models.Suggestion) (string, string) {
	content := row("Name", s.Name) + row("Contact", s.Contact) + "<br>" + HTMLText(s.Message)
	return "New suggestion from " + s.Name, emailLayout("New suggestion", content)
}

func SuggestionChatText(s models.Suggestion) string {
	return fmt.Sprintf("💡 New suggestion\nName: %s\nContact: %s\n\n%s", s.Name, s.Contact, s.Message)
}

// ReplyEmail quotes the customer's original message above the reply.
func ReplyEmail(original, reply string) (string, string) {
	content := HTMLText(reply) +
		`<hr style="border: none; border-top: 1px solid #e4e4e7; margin: 24px 0;">` +
		`<div style="color: #71717a; font-size: 13px;"><b>Your message:</b><br>` + HTMLText(original) + `</div>`
	return "Re: your inquiry", emailLayout("Reply to your inquiry", content)
}

func MessageEmail(subject, message string) string {
	return emailLayout(subject, HTMLText(message))
}
