package content

import "strings"

// MailtoURI returns the mailto: target for an email address.
func MailtoURI(email string) string {
	return "mailto:" + strings.TrimSpace(email)
}

// TelURI returns the tel: target for a display phone number. Formatting
// characters are dropped; a leading plus sign is kept.
func TelURI(phone string) string {
	phone = strings.TrimSpace(phone)
	var b strings.Builder
	b.WriteString("tel:")
	if strings.HasPrefix(phone, "+") {
		b.WriteByte('+')
	}
	for _, r := range phone {
		if isDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
