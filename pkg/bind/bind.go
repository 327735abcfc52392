// Package bind decodes and validates an HTTP request body into a struct.
package bind

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ovenlight/bakehouse/config"
	"github.com/ovenlight/bakehouse/pkg/validate"
)

// maxBodyBytes returns the configured request body size limit (default 4 MB).
func maxBodyBytes() int64 {
	n, err := strconv.ParseInt(config.Get("MAX_BODY_BYTES", "4194304"), 10, 64)
	if err != nil || n <= 0 {
		return 4 << 20 // 4 MB
	}
	return n
}

// maxUploadBytes is the multipart memory/size cap (default 5 MB, matching
// the image upload limit).
func maxUploadBytes() int64 {
	n, err := strconv.ParseInt(config.Get("MAX_UPLOAD_BYTES", "5242880"), 10, 64)
	if err != nil || n <= 0 {
		return 5 << 20
	}
	return n
}

// JSON decodes r.Body as JSON into dest and runs validation.
// Returns (errs, nil) when there are validation failures.
// Returns (nil, err) when the body is malformed JSON or too large.
func JSON(r *http.Request, dest interface{}) (errs map[string]string, err error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes())

	dec := json.NewDecoder(r.Body)
	if err = dec.Decode(dest); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, fmt.Errorf("request body too large (max %d bytes)", maxErr.Limit)
		}
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	errs = validate.Struct(dest)
	if validate.HasErrors(errs) {
		return errs, nil
	}

	return nil, nil
}

// Multipart parses a multipart form (file uploads plus text fields).
// Call it before reading r.FormValue or r.MultipartForm.
func Multipart(r *http.Request) error {
	if err := r.ParseMultipartForm(maxUploadBytes()); err != nil {
		return fmt.Errorf("invalid multipart form: %w", err)
	}
	return nil
}
