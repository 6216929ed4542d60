package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"tableflip.dev/storyjournal/pkg/record"
)

// ErrInvalid wraps every input validation failure. Nothing is saved.
var ErrInvalid = errors.New("invalid input")

type entryInput struct {
	Content string `validate:"required,notblank"`
}

type sessionInput struct {
	Content  string `validate:"required,notblank"`
	Duration int    `validate:"gt=0"`
}

type responseInput struct {
	Prompt  string `validate:"required,notblank"`
	Content string `validate:"required,notblank"`
}

type homeworkInput struct {
	Moment string `validate:"required,notblank"`
}

type receiptInput struct {
	Content string `validate:"required,notblank"`
	Words   int    `validate:"max=100"`
}

func check(in interface{}) error {
	err := record.Validator().Struct(in)
	if err == nil {
		return nil
	}
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) || len(fields) == 0 {
		return err
	}
	f := fields[0]
	name := strings.ToLower(f.Field())
	switch {
	case f.Tag() == "required" || f.Tag() == "notblank":
		return fmt.Errorf("%w: %s is required", ErrInvalid, name)
	case name == "words":
		return fmt.Errorf("%w: a story receipt is at most %d words, this one is %v", ErrInvalid, record.MaxReceiptWords, f.Value())
	case name == "duration":
		return fmt.Errorf("%w: duration must be at least one minute", ErrInvalid)
	}
	return fmt.Errorf("%w: %s failed %s", ErrInvalid, name, f.Tag())
}
