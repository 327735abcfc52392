// Package response writes the storefront's JSON envelope:
//
//	{success, message?, data?, error?, count?, pagination?}
package response

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/ovenlight/bakehouse/config"
)

// Pagination is the listing page metadata block.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// NewPagination computes the page count from the pre-pagination total.
func NewPagination(page, limit int, total int64) Pagination {
	pages := 0
	if limit > 0 {
		pages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

type envelope struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Count      *int        `json:"count,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Error      interface{} `json:"error,omitempty"`
	Errors     interface{} `json:"errors,omitempty"`
}

func write(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// Success sends a 200 with data.
func Success(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusOK, envelope{Success: true, Data: data})
}

// Created sends a 201 with a message and data.
func Created(w http.ResponseWriter, message string, data interface{}) {
	write(w, http.StatusCreated, envelope{Success: true, Message: message, Data: data})
}

// Message sends a 200 with only a message.
func Message(w http.ResponseWriter, message string) {
	write(w, http.StatusOK, envelope{Success: true, Message: message})
}

// List sends a 200 with data and its row count.
func List(w http.ResponseWriter, data interface{}, count int) {
	write(w, http.StatusOK, envelope{Success: true, Data: data, Count: &count})
}

// Paginated sends a 200 with data, row count, and pagination metadata.
func Paginated(w http.ResponseWriter, data interface{}, count int, p Pagination) {
	write(w, http.StatusOK, envelope{Success: true, Data: data, Count: &count, Pagination: &p})
}

// Error sends a failure envelope with the given status and message.
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, envelope{Success: false, Message: message})
}

// ValidationError sends a 400 with field-level error detail.
func ValidationError(w http.ResponseWriter, message string, errs map[string]string) {
	write(w, http.StatusBadRequest, envelope{Success: false, Message: message, Errors: errs})
}

// Fault sends a 500. Outside production the underlying fault detail is
// included in the error field; in production a generic string is returned.
func Fault(w http.ResponseWriter, message string, err error) {
	detail := interface{}("Internal server error")
	if !config.IsProduction() && err != nil {
		detail = err.Error()
	}
	write(w, http.StatusInternalServerError, envelope{Success: false, Message: message, Error: detail})
}

// FaultDetail behaves like Fault but attaches structured diagnostic
// context (query params and the like) outside production.
func FaultDetail(w http.ResponseWriter, message string, err error, ctx map[string]interface{}) {
	if config.IsProduction() {
		Fault(w, message, err)
		return
	}
	detail := map[string]interface{}{}
	if err != nil {
		detail["message"] = err.Error()
	}
	for k, v := range ctx {
		detail[k] = v
	}
	write(w, http.StatusInternalServerError, envelope{Success: false, Message: message, Error: detail})
}

// Unauthorized sends a 401.
func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	Error(w, http.StatusUnauthorized, message)
}

// Forbidden sends a 403.
func Forbidden(w http.ResponseWriter) {
	Error(w, http.StatusForbidden, "Forbidden")
}

// NotFound sends a 404 with the given message.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}
