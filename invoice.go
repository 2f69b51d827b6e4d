package buddy

import (
	"fmt"
	"strings"
	"time"
)

// Business constants for Swedish contractor invoicing. Named values rather
// than inline literals: the rates are legislation, not layout.
const (
	// VATRate is the flat VAT ("moms") applied to every invoice line.
	VATRate = 0.25

	// ROTRate is the ROT tax deduction applied to the VAT-inclusive labor
	// subtotal.
	ROTRate = 0.30

	// LaborCategory marks catalog items that count as labor for the ROT
	// deduction.
	LaborCategory = "ARBETE"
)

// InvoiceLine is one accumulated position on an invoice.
type InvoiceLine struct {
	ItemNo      string  `json:"item_no"`
	Description string  `json:"beskrivning"`
	Category    string  `json:"kategori"`
	Quantity    float64 `json:"antal"`
	Unit        string  `json:"enhet"`
	UnitPrice   float64 `json:"pris_per_enhet"`
}

// Amount returns the line total excluding VAT.
func (l InvoiceLine) Amount() float64 {
	return l.Quantity * l.UnitPrice
}

// AmountInclVAT returns the line total including VAT.
func (l InvoiceLine) AmountInclVAT() float64 {
	return l.Amount() * (1 + VATRate)
}

// Invoice is an in-memory accumulation of lines plus customer metadata.
type Invoice struct {
	Customer string        `json:"customer"`
	Project  string        `json:"project"`
	Date     time.Time     `json:"date"`
	Lines    []InvoiceLine `json:"lines"`
}

// Validate returns an error if the invoice cannot be rendered.
func (inv *Invoice) Validate() error {
	if inv.Customer == "" {
		return Errorf(EINVALID, "customer name required")
	}
	if inv.Project == "" {
		return Errorf(EINVALID, "project number required")
	}
	return nil
}

// TotalExclVAT returns the sum of all line amounts excluding VAT.
func (inv *Invoice) TotalExclVAT() float64 {
	var total float64
	for _, l := range inv.Lines {
		total += l.Amount()
	}
	return total
}

// TotalInclVAT returns the sum of all line amounts including VAT.
func (inv *Invoice) TotalInclVAT() float64 {
	var total float64
	for _, l := range inv.Lines {
		total += l.AmountInclVAT()
	}
	return total
}

// LaborInclVAT returns the VAT-inclusive subtotal of labor lines.
// ROT is computed on this value, not on the VAT-exclusive amount.
func (inv *Invoice) LaborInclVAT() float64 {
	var total float64
	for _, l := range inv.Lines {
		if l.Category == LaborCategory {
			total += l.AmountInclVAT()
		}
	}
	return total
}

// ROTDeduction returns the ROT deduction for the invoice. Zero when the
// invoice has no labor lines.
func (inv *Invoice) ROTDeduction() float64 {
	return inv.LaborInclVAT() * ROTRate
}

// TotalPayable returns the VAT-inclusive total after the ROT deduction.
func (inv *Invoice) TotalPayable() float64 {
	return inv.TotalInclVAT() - inv.ROTDeduction()
}

// RenderInvoice renders the invoice in the fixed-width plain-text layout
// used for customer delivery.
func RenderInvoice(inv *Invoice) string {
	var b strings.Builder

	b.WriteString("FAKTURA\n")
	b.WriteString(strings.Repeat("=", 80) + "\n")
	fmt.Fprintf(&b, "Kund: %s\n", inv.Customer)
	fmt.Fprintf(&b, "Projekt: %s\n", inv.Project)
	fmt.Fprintf(&b, "Datum: %s\n", inv.Date.Format("2006-01-02"))
	b.WriteString("\n")

	fmt.Fprintf(&b, "%-4s %-12s %-25s %6s %-8s %10s %12s %12s\n",
		"Pos", "Art.nr", "Beskrivning", "Antal", "Enhet", "A-pris", "Belopp", "Inkl moms")
	b.WriteString(strings.Repeat("-", 100) + "\n")

	for pos, l := range inv.Lines {
		fmt.Fprintf(&b, "%-4d %-12s %-25s %6.2f %-8s %10.2f %12.2f %12.2f\n",
			pos+1, l.ItemNo, truncateRunes(l.Description, 25), l.Quantity, l.Unit,
			l.UnitPrice, l.Amount(), l.AmountInclVAT())
	}

	b.WriteString(strings.Repeat("-", 100) + "\n")
	fmt.Fprintf(&b, "%70s %12.2f kr\n", "TOTAL EXKL MOMS:", inv.TotalExclVAT())
	fmt.Fprintf(&b, "%70s %12.2f kr\n", "TOTAL INKL MOMS (25%):", inv.TotalInclVAT())
	b.WriteString("\n")

	if inv.LaborInclVAT() > 0 {
		fmt.Fprintf(&b, "%70s %12.2f kr\n",
			"ROT-AVDRAG (30% av arbetskostnad inkl moms):", -inv.ROTDeduction())
	}
	fmt.Fprintf(&b, "%70s %12.2f kr", "FAKTURA TOTAL:", inv.TotalPayable())

	return b.String()
}

// truncateRunes returns at most n runes of s.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
