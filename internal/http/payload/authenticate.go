package payload

import (
	"errors"
	"fmt"
	"net/url"
	"roster/internal/core"

	"github.com/jellydator/validation"
)

// LoginForm is not validated: empty credentials simply fail authentication.
// Both keys must still be posted.
type LoginForm struct {
	Username string
	Password string
}

func (l *LoginForm) BindForm(values url.Values) error {
	var err error
	if l.Username, err = required(values, "username"); err != nil {
		return err
	}
	if l.Password, err = required(values, "password"); err != nil {
		return err
	}
	return nil
}

func (l LoginForm) ToCoreAuthMessage() core.AuthMessage {
	return core.AuthMessage{
		Username: l.Username,
		Password: l.Password,
	}
}

type UserForm struct {
	Username string
	Password string
}

func (u *UserForm) BindForm(values url.Values) error {
	u.Username = values.Get("username")
	u.Password = values.Get("password")
	return nil
}

func (u UserForm) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Username, validation.Required, validation.Length(1, 80)),
		validation.Field(&u.Password, validation.Required, validation.By(maxBytes(core.MaxPasswordBytes))),
	)
}

func (u UserForm) ToCoreAuthMessage() core.AuthMessage {
	return core.AuthMessage{
		Username: u.Username,
		Password: u.Password,
	}
}

// maxBytes limits the encoded length of a string. validation.Length counts runes.
func maxBytes(limit int) validation.RuleFunc {
	return func(value any) error {
		str, ok := value.(string)
		if !ok {
			return errors.New("must be a string")
		}
		if len(str) > limit {
			return fmt.Errorf("must be at most %d bytes", limit)
		}
		return nil
	}
}
