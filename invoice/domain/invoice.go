package domain

import (
	"time"
)

// Status values are display strings, nothing transitions them
// automatically.
const (
	StatusDraft   = "draft"
	StatusSent    = "sent"
	StatusPaid    = "paid"
	StatusOverdue = "overdue"
	StatusVoid    = "void"
	StatusPartial = "partial"
)

// Party identifies one side of an invoice, the issuing business or the
// billed customer.
type Party struct {
	Name    string `firestore:"name" json:"name"`
	Email   string `firestore:"email" json:"email,omitempty"`
	Address string `firestore:"address" json:"address,omitempty"`
}

type LineItem struct {
	Description string  `firestore:"description" json:"description"`
	Quantity    float64 `firestore:"quantity" json:"quantity"`
	UnitPrice   float64 `firestore:"unitPrice" json:"unitPrice"`
}

type Payment struct {
	Date   string  `firestore:"date" json:"date"`
	Amount float64 `firestore:"amount" json:"amount"`
	Method string  `firestore:"method" json:"method,omitempty"`
}

type Invoice struct {
	ID          string     `firestore:"-" json:"id"`
	Number      string     `firestore:"number" json:"number"`
	IssueDate   string     `firestore:"issueDate" json:"issueDate,omitempty"`
	DueDate     string     `firestore:"dueDate" json:"dueDate,omitempty"`
	Business    Party      `firestore:"business" json:"business"`
	Customer    Party      `firestore:"customer" json:"customer"`
	Items       []LineItem `firestore:"items" json:"items"`
	Payments    []Payment  `firestore:"payments" json:"payments,omitempty"`
	Notes       string     `firestore:"notes" json:"notes,omitempty"`
	PaymentLink string     `firestore:"paymentLink" json:"paymentLink,omitempty"`
	EventID     string     `firestore:"eventId" json:"eventId,omitempty"`
	Status      string     `firestore:"status" json:"status"`
	OwnerUID    string     `firestore:"ownerUid" json:"ownerUid,omitempty"`
	BusinessID  string     `firestore:"businessId" json:"businessId"`
	CreatedAt   time.Time  `firestore:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `firestore:"updatedAt" json:"updatedAt"`
}

// Subtotal is the sum over line items of quantity times unit price.
func (i *Invoice) Subtotal() float64 {
	var total float64
	for _, item := range i.Items {
		total += item.Quantity * item.UnitPrice
	}

	return total
}

// AmountPaid is the sum of recorded payments.
func (i *Invoice) AmountPaid() float64 {
	var total float64
	for _, p := range i.Payments {
		total += p.Amount
	}

	return total
}

// BalanceDue is what remains after recorded payments.
func (i *Invoice) BalanceDue() float64 {
	return i.Subtotal() - i.AmountPaid()
}
