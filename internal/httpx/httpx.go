package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

const maxUploadBytes = 64 << 20

func DecodeJSON(body io.Reader, v interface{}) error {
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must contain a single JSON object")
	}
	return nil
}

func ValidationDetails(errs validator.ValidationErrors) map[string]string {
	if len(errs) == 0 {
		return nil
	}
	details := make(map[string]string, len(errs))
	for _, err := range errs {
		details[err.Field()] = err.Tag()
	}
	return details
}

// ParseMultipart parses a multipart form request with a bounded memory budget.
func ParseMultipart(r *http.Request) error {
	return r.ParseMultipartForm(maxUploadBytes)
}

// FormValue returns the trimmed value of a multipart or urlencoded form field.
func FormValue(r *http.Request, name string) string {
	return strings.TrimSpace(r.FormValue(name))
}

// FormFile returns the named upload, or (nil, nil, nil) when the field is absent.
func FormFile(r *http.Request, name string) (multipart.File, *multipart.FileHeader, error) {
	file, header, err := r.FormFile(name)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return file, header, nil
}
