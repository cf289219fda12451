package routes

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/mbolis/hvac-backend/app"
	"github.com/mbolis/hvac-backend/httpx"
	"github.com/mbolis/hvac-backend/log"
	"github.com/mbolis/hvac-backend/model"
	"github.com/mbolis/hvac-backend/notify"
)

// Form fields hold the submitted JSON values as they are; only key
// presence is checked before they are stored.
type quoteForm struct {
	Name        model.Input `json:"name"`
	Email       model.Input `json:"email"`
	Phone       model.Input `json:"phone"`
	Message     model.Input `json:"message"`
	ServiceType model.Input `json:"service_type"`
}

var quoteFields = []string{"name", "email", "phone", "message", "service_type"}

func SubmitQuote(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form := quoteForm{}
		err := httpx.DecodeForm(r.Body, quoteFields, &form)
		if err != nil {
			httpx.LogError(w, r, "request.parse_body", err)
			return
		}

		conn, err := app.Conn(r.Context())
		if err != nil {
			httpx.LogError(w, r, "db.conn", err)
			return
		}
		defer conn.Close()

		quote := model.QuoteRequest{
			Name:        form.Name,
			Email:       form.Email,
			Phone:       form.Phone,
			Message:     form.Message,
			ServiceType: form.ServiceType,
		}
		err = conn.InsertQuote(r.Context(), &quote)
		if err != nil {
			httpx.LogError(w, r, "db.insert_quote", err)
			return
		}
		log.WithFields(log.Fields{"id": quote.ID, "service_type": quote.ServiceType.String()}).Info("quote request stored")

		// the row is already committed if this fails
		err = app.Send(r.Context(), notify.SubjectQuote, notify.QuoteBody(quote))
		if err != nil {
			httpx.LogError(w, r, "mail.send_quote", err)
			return
		}

		httpx.Message(w, r, "Quote request submitted successfully")
	}
}

type contactForm struct {
	Name    model.Input `json:"name"`
	Email   model.Input `json:"email"`
	Phone   model.Input `json:"phone"`
	Message model.Input `json:"message"`
}

var contactFields = []string{"name", "email", "phone", "message"}

func SubmitContact(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form := contactForm{}
		err := httpx.DecodeForm(r.Body, contactFields, &form)
		if err != nil {
			httpx.LogError(w, r, "request.parse_body", err)
			return
		}

		conn, err := app.Conn(r.Context())
		if err != nil {
			httpx.LogError(w, r, "db.conn", err)
			return
		}
		defer conn.Close()

		contact := model.ContactSubmission{
			Name:    form.Name,
			Email:   form.Email,
			Phone:   form.Phone,
			Message: form.Message,
		}
		err = conn.InsertContact(r.Context(), &contact)
		if err != nil {
			httpx.LogError(w, r, "db.insert_contact", err)
			return
		}
		log.WithFields(log.Fields{"id": contact.ID}).Info("contact submission stored")

		err = app.Send(r.Context(), notify.SubjectContact, notify.ContactBody(contact))
		if err != nil {
			httpx.LogError(w, r, "mail.send_contact", err)
			return
		}

		httpx.Message(w, r, "Contact form submitted successfully")
	}
}

type testimonialForm struct {
	Name    model.Input `json:"name"`
	Rating  model.Input `json:"rating"`
	Comment model.Input `json:"comment"`
}

var testimonialFields = []string{"name", "rating", "comment"}

func SubmitTestimonial(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form := testimonialForm{}
		err := httpx.DecodeForm(r.Body, testimonialFields, &form)
		if err != nil {
			httpx.LogError(w, r, "request.parse_body", err)
			return
		}

		conn, err := app.Conn(r.Context())
		if err != nil {
			httpx.LogError(w, r, "db.conn", err)
			return
		}
		defer conn.Close()

		testimonial := model.Testimonial{
			Name:    form.Name,
			Rating:  form.Rating,
			Comment: form.Comment,
		}
		err = conn.InsertTestimonial(r.Context(), &testimonial)
		if err != nil {
			httpx.LogError(w, r, "db.insert_testimonial", err)
			return
		}
		log.WithFields(log.Fields{"id": testimonial.ID, "rating": testimonial.Rating}).Info("testimonial stored, awaiting approval")

		httpx.Message(w, r, "Testimonial submitted successfully")
	}
}

func ListTestimonials(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := app.Conn(r.Context())
		if err != nil {
			httpx.LogError(w, r, "db.conn", err)
			return
		}
		defer conn.Close()

		testimonials, err := conn.ApprovedTestimonials(r.Context())
		if err != nil {
			httpx.LogError(w, r, "db.get_testimonials", err)
			return
		}

		render.JSON(w, r, testimonials)
	}
}

func Health(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := app.Ping(r.Context())
		if err != nil {
			httpx.LogError(w, r, "db.ping", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"status": "ok",
		})
	}
}
