// Package bind decodes request bodies into typed inputs and runs the
// struct-tag validation rules over the result. Controllers translate
// the outcome into their route's wire shape; nothing here writes to
// the response.
package bind

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/shashiranjanraj/vastra/config"
	"github.com/shashiranjanraj/vastra/pkg/validate"
)

// defaultBodyLimit caps request bodies when MAX_BODY_BYTES is unset or
// unparseable. Catalog and account payloads are a few hundred bytes;
// the limit only exists to bound memory on hostile input.
const defaultBodyLimit = 4 << 20

// ErrEmptyBody is returned when a route expecting JSON receives none.
var ErrEmptyBody = errors.New("bind: request body is empty")

func bodyLimit() int64 {
	n, err := strconv.ParseInt(config.Get("MAX_BODY_BYTES", ""), 10, 64)
	if err != nil || n <= 0 {
		return defaultBodyLimit
	}
	return n
}

// JSON decodes r.Body into dest and validates it.
//
// Three outcomes: (nil, nil) on clean input, (errs, nil) when the body
// decoded but failed validation, (nil, err) when the body was empty,
// malformed, or over the size limit.
func JSON(r *http.Request, dest any) (map[string]string, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, bodyLimit())

	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		var tooBig *http.MaxBytesError
		switch {
		case errors.As(err, &tooBig):
			return nil, fmt.Errorf("bind: body exceeds %d bytes", tooBig.Limit)
		case errors.Is(err, io.EOF):
			return nil, ErrEmptyBody
		default:
			return nil, fmt.Errorf("bind: malformed JSON: %w", err)
		}
	}

	if errs := validate.Struct(dest); validate.HasErrors(errs) {
		return errs, nil
	}
	return nil, nil
}
