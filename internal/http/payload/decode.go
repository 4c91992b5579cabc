package payload

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

var ErrMissingField error = errors.New("missing form field")

// FormBinder is implemented by form payloads that read themselves from url.Values.
type FormBinder interface {
	BindForm(values url.Values) error
}

func DecodeForm(r *http.Request, object FormBinder) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("parsing form: %w", err)
	}

	if err := object.BindForm(r.PostForm); err != nil {
		return fmt.Errorf("binding form: %w", err)
	}

	return nil
}

// required returns the value of key, failing when the key is absent. Empty values are allowed.
func required(values url.Values, key string) (string, error) {
	v, ok := values[key]
	if !ok || len(v) == 0 {
		return "", fmt.Errorf("%s: %w", key, ErrMissingField)
	}
	return v[0], nil
}
