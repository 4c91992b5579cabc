package payload

import (
	"fmt"
	"net/http"

	"github.com/jellydator/validation"
)

type Decoder struct{}

func (d Decoder) DecodeAndValidateForm(r *http.Request, object FormBinder) error {
	if err := DecodeForm(r, object); err != nil {
		return err
	}
	return d.validatePayload(object)
}

func (d Decoder) validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}
