package handler

import (
	"log/slog"
	"net/http"

	"github.com/bookly/backend/internal/service"
)

// ContactHandler handles the public contact form.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submittedData echoes the form values back so the client can repopulate the
// form after a failure.
type submittedData struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// submitResponse is the JSON result for POST /api/contact. Errors carries
// per-field validation messages; Error is the generic processing failure.
type submitResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Error   string              `json:"error,omitempty"`
	Errors  service.FieldErrors `json:"errors,omitempty"`
	Data    *submittedData      `json:"data,omitempty"`
}

// Submit handles POST /api/contact. The body is form-encoded with fields
// name, email and message. Validation failures echo the input with per-field
// messages; a storage or notification failure after validation returns a
// generic error instead.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, submitResponse{
			Success: false,
			Error:   "Invalid form data.",
		})
		return
	}

	in := service.SubmitInput{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Message: r.PostFormValue("message"),
	}
	echo := &submittedData{Name: in.Name, Email: in.Email, Message: in.Message}

	fieldErrs, err := h.contactService.Submit(r.Context(), in)
	if fieldErrs != nil {
		writeJSON(w, http.StatusOK, submitResponse{
			Success: false,
			Errors:  fieldErrs,
			Data:    echo,
		})
		return
	}
	if err != nil {
		slog.Error("contact submission failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, submitResponse{
			Success: false,
			Error:   "An error occurred while processing your request.",
			Data:    echo,
		})
		return
	}

	writeJSON(w, http.StatusOK, submitResponse{
		Success: true,
		Message: "Thank you for your message! We will get back to you soon.",
	})
}
