package book

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	FieldTitle       = "title"
	FieldAuthor      = "author"
	FieldDescription = "description"

	MaxTitleLength       = 200
	MaxAuthorLength      = 100
	MaxDescriptionLength = 1000
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their wire names so violations line up with form inputs
	// and with the keys the API uses in its own error bodies.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

var fieldLabels = map[string]string{
	FieldTitle:       "Title",
	FieldAuthor:      "Author",
	FieldDescription: "Description",
}

func label(field string) string {
	if l, ok := fieldLabels[field]; ok {
		return l
	}
	return field
}

// RequiredFieldError is reported when a mandatory field is empty after trimming.
type RequiredFieldError struct {
	Field string
}

func (e *RequiredFieldError) Error() string {
	return label(e.Field) + " is required"
}

// LengthError is reported when a field is longer than allowed.
type LengthError struct {
	Field  string
	Max    int
	Length int
}

func (e *LengthError) Error() string {
	if e.Field == FieldDescription {
		return fmt.Sprintf("%s cannot exceed %d characters", label(e.Field), e.Max)
	}
	return fmt.Sprintf("%s must be %d characters or less", label(e.Field), e.Max)
}

// Violations maps a field name to the reason it was rejected.
type Violations map[string]error

func (v Violations) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %v", f, v[f]))
	}
	return strings.Join(parts, "; ")
}

// Messages returns the user-facing message per field.
func (v Violations) Messages() map[string]string {
	out := make(map[string]string, len(v))
	for f, err := range v {
		out[f] = err.Error()
	}
	return out
}

// Merge folds field errors reported by the API into v. Local violations win.
func (v Violations) Merge(server map[string][]string) Violations {
	if len(server) == 0 {
		return v
	}
	if v == nil {
		v = make(Violations, len(server))
	}
	for key, msgs := range server {
		if len(msgs) == 0 {
			continue
		}
		field := wireName(key)
		if _, exists := v[field]; exists {
			continue
		}
		v[field] = errors.New(msgs[0])
	}
	return v
}

// wireName lowercases the first letter so "Title" from the API matches "title".
func wireName(key string) string {
	r, size := utf8.DecodeRuneInString(key)
	if r == utf8.RuneError {
		return key
	}
	return string(unicode.ToLower(r)) + key[size:]
}

// ValidateForm trims the raw form values and checks every rule. It returns
// the trimmed input when nothing is wrong, otherwise all violations found.
func ValidateForm(f Form) (Input, Violations) {
	in := Input{
		Title:       strings.TrimSpace(f.Title),
		Author:      strings.TrimSpace(f.Author),
		Description: strings.TrimSpace(f.Description),
	}

	err := validate.Struct(in)
	if err == nil {
		return in, nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Input{}, Violations{"form": err}
	}

	v := make(Violations, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			v[field] = &RequiredFieldError{Field: field}
		case "max":
			limit, _ := strconv.Atoi(fe.Param())
			value, _ := fe.Value().(string)
			v[field] = &LengthError{Field: field, Max: limit, Length: utf8.RuneCountInString(value)}
		default:
			v[field] = fmt.Errorf("%s is invalid", label(field))
		}
	}
	return Input{}, v
}

// ValidateInput checks an already assembled input, e.g. one built in code
// rather than read from a form.
func ValidateInput(in Input) (Input, Violations) {
	return ValidateForm(Form(in))
}
