// Package share builds the plain-text budget summary sent to clients over
// WhatsApp and the click-to-chat link that carries it.
package share

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/piwi3910/DrywallCalc/internal/model"
	"github.com/piwi3910/DrywallCalc/internal/money"
)

// WhatsAppEndpoint is the click-to-chat base URL.
const WhatsAppEndpoint = "https://api.whatsapp.com/send"

// BudgetMessage renders the summary of p sent to the client. The validity
// date counts validityDays from the day the project was issued.
func BudgetMessage(p model.Project, company model.Company, validityDays int) string {
	if validityDays <= 0 {
		validityDays = model.DefaultValidityDays
	}
	painting := "Não incluso"
	if p.IncludePainting {
		painting = "Incluso"
	}
	validUntil := money.ValidUntil(Issued(p, time.Now()), validityDays)

	var b strings.Builder
	fmt.Fprintf(&b, "*Orçamento: %s*\n\n", company.Name)
	fmt.Fprintf(&b, "Olá, *%s*! Segue o resumo do seu orçamento:\n\n", p.Client.Name)
	fmt.Fprintf(&b, "📌 *Serviço:* %s\n", p.Type)
	fmt.Fprintf(&b, "📏 *Ambientes:* %d\n", len(p.Rooms))
	fmt.Fprintf(&b, "🎨 *Pintura:* %s\n\n", painting)
	fmt.Fprintf(&b, "💰 *Investimento Total:* %s\n", money.BRL(p.Totals.TotalValue))
	fmt.Fprintf(&b, "💳 *Entrada (Materiais - 60%%):* %s\n", money.BRL(p.Totals.DownPayment))
	fmt.Fprintf(&b, "📉 *Saldo Final (40%%):* %s\n\n", money.BRL(p.Totals.Balance()))
	fmt.Fprintf(&b, "⏳ *Validade:* %d dias (%s)\n\n", validityDays, money.Date(validUntil))
	b.WriteString("_Para visualizar o documento completo em PDF, por favor, me solicite o arquivo gerado._")
	return b.String()
}

// PhoneDigits strips everything but digits from a phone number.
func PhoneDigits(phone string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)
}

// WhatsAppLink returns the click-to-chat URL that opens a conversation with
// phone, pre-filled with message. An empty phone lets the sender pick the contact.
func WhatsAppLink(phone, message string) string {
	q := url.Values{}
	if digits := PhoneDigits(phone); digits != "" {
		q.Set("phone", digits)
	}
	q.Set("text", message)
	return WhatsAppEndpoint + "?" + q.Encode()
}

// ProjectLink is WhatsAppLink for the project's client and budget message.
func ProjectLink(p model.Project, company model.Company, validityDays int) string {
	return WhatsAppLink(p.Client.Phone, BudgetMessage(p, company, validityDays))
}

// Issued reports when a project was issued, falling back to now for
// projects that were never saved.
func Issued(p model.Project, now time.Time) time.Time {
	if p.CreatedAt.IsZero() {
		return now
	}
	return p.CreatedAt
}
