// Package controllers holds the HTTP handlers. Controllers parse and
// validate requests, call services, and write the JSON envelope; all
// business rules live one layer down.
package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ovenlight/bakehouse/pkg/storage"
)

// pathID reads the {id} route parameter as a positive integer.
func pathID(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return uint(id), nil
}

// saveUpload stores a single uploaded file under dir on the default
// disk and returns its server-relative path ("/uploads/..."), or nil
// when the field is absent.
func saveUpload(r *http.Request, field, dir string) (*string, error) {
	file, header, err := r.FormFile(field)
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read upload %s: %w", field, err)
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	key := dir + "/" + uuid.NewString() + ext

	if err := storage.PutStream(key, file); err != nil {
		return nil, fmt.Errorf("store upload %s: %w", field, err)
	}

	path := "/uploads/" + key
	return &path, nil
}
