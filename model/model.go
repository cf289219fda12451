package model

import "time"

// Status of a quote request. Only StatusPending is ever written; nothing
// moves a quote out of it.
type Status string

const StatusPending Status = "pending"

type QuoteRequest struct {
	ID          int64     `json:"id" db:"id"`
	Name        Input     `json:"name" db:"name"`
	Email       Input     `json:"email" db:"email"`
	Phone       Input     `json:"phone" db:"phone"`
	Message     Input     `json:"message" db:"message"`
	ServiceType Input     `json:"service_type" db:"service_type"`
	Status      Status    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type ContactSubmission struct {
	ID        int64     `json:"id" db:"id"`
	Name      Input     `json:"name" db:"name"`
	Email     Input     `json:"email" db:"email"`
	Phone     Input     `json:"phone" db:"phone"`
	Message   Input     `json:"message" db:"message"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Testimonial is hidden from the public list until Approved is set, which
// this service never does.
type Testimonial struct {
	ID        int64     `json:"id" db:"id"`
	Name      Input     `json:"name" db:"name"`
	Rating    Input     `json:"rating" db:"rating"`
	Comment   Input     `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Approved  bool      `json:"approved" db:"approved"`
}
