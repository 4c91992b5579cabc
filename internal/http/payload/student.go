package payload

import (
	"errors"
	"net/url"
	"roster/internal/core"
	"strconv"
	"strings"

	"github.com/jellydator/validation"
)

// StudentForm backs both the add and the edit form. All three fields must be posted.
type StudentForm struct {
	Name  string
	Age   string
	Grade string
}

func (s *StudentForm) BindForm(values url.Values) error {
	var err error
	if s.Name, err = required(values, "name"); err != nil {
		return err
	}
	if s.Age, err = required(values, "age"); err != nil {
		return err
	}
	if s.Grade, err = required(values, "grade"); err != nil {
		return err
	}
	return nil
}

func (s StudentForm) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Length(0, 100)),
		validation.Field(&s.Age, validation.By(wholeNumber)),
		validation.Field(&s.Grade, validation.Length(0, 10)),
	)
}

// ToCoreStudentMessage expects a validated form.
func (s StudentForm) ToCoreStudentMessage() core.StudentMessage {
	age, _ := strconv.Atoi(strings.TrimSpace(s.Age))
	return core.StudentMessage{
		Name:  s.Name,
		Age:   age,
		Grade: s.Grade,
	}
}

func wholeNumber(value any) error {
	str, ok := value.(string)
	if !ok {
		return errors.New("must be a string")
	}
	if _, err := strconv.ParseInt(strings.TrimSpace(str), 10, 32); err != nil {
		return errors.New("must be a whole number")
	}
	return nil
}
