package book

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateForm_TrimsValidInput(t *testing.T) {
	in, violations := ValidateForm(Form{
		Title:       " The Hobbit ",
		Author:      "J.R.R. Tolkien",
		Description: "",
	})

	require.Nil(t, violations)
	assert.Equal(t, Input{Title: "The Hobbit", Author: "J.R.R. Tolkien", Description: ""}, in)
}

func TestValidateForm_Idempotent(t *testing.T) {
	first, violations := ValidateForm(Form{
		Title:       "\tDune\n",
		Author:      "  Frank Herbert ",
		Description: "  Spice.  ",
	})
	require.Nil(t, violations)

	second, violations := ValidateInput(first)
	require.Nil(t, violations)
	assert.Equal(t, first, second)
}

func TestValidateForm_AllEmpty(t *testing.T) {
	in, violations := ValidateForm(Form{})

	assert.Equal(t, Input{}, in)
	require.Len(t, violations, 2)
	assert.IsType(t, &RequiredFieldError{}, violations[FieldTitle])
	assert.IsType(t, &RequiredFieldError{}, violations[FieldAuthor])
	assert.NotContains(t, violations, FieldDescription)
	assert.Equal(t, map[string]string{
		"title":  "Title is required",
		"author": "Author is required",
	}, violations.Messages())
}

func TestValidateForm_Title(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		wantType error
	}{
		{name: "whitespace only", title: "   \t ", wantType: &RequiredFieldError{}},
		{name: "too long", title: strings.Repeat("a", 201), wantType: &LengthError{}},
		{name: "too long after trim", title: "  " + strings.Repeat("b", 201) + "  ", wantType: &LengthError{}},
		{name: "exactly max", title: strings.Repeat("c", 200)},
		{name: "multibyte at max", title: strings.Repeat("é", 200)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, author := range []string{"", "Someone", strings.Repeat("x", 500)} {
				_, violations := ValidateForm(Form{Title: tc.title, Author: author})
				if tc.wantType == nil {
					assert.NotContains(t, violations, FieldTitle)
					continue
				}
				require.Contains(t, violations, FieldTitle)
				assert.IsType(t, tc.wantType, violations[FieldTitle])
			}
		})
	}
}

func TestValidateForm_LengthMessages(t *testing.T) {
	_, violations := ValidateForm(Form{
		Title:       strings.Repeat("t", 201),
		Author:      strings.Repeat("a", 101),
		Description: strings.Repeat("d", 1001),
	})

	require.Len(t, violations, 3)
	assert.Equal(t, "Title must be 200 characters or less", violations[FieldTitle].Error())
	assert.Equal(t, "Author must be 100 characters or less", violations[FieldAuthor].Error())
	assert.Equal(t, "Description cannot exceed 1000 characters", violations[FieldDescription].Error())

	lengthErr, ok := violations[FieldAuthor].(*LengthError)
	require.True(t, ok)
	assert.Equal(t, 100, lengthErr.Max)
	assert.Equal(t, 101, lengthErr.Length)
}

func TestValidateForm_Accumulates(t *testing.T) {
	_, violations := ValidateForm(Form{
		Title:  "",
		Author: strings.Repeat("a", 101),
	})

	require.Len(t, violations, 2)
	assert.IsType(t, &RequiredFieldError{}, violations[FieldTitle])
	assert.IsType(t, &LengthError{}, violations[FieldAuthor])
}

func TestValidateForm_DescriptionOptional(t *testing.T) {
	in, violations := ValidateForm(Form{Title: "T", Author: "A", Description: "   "})

	require.Nil(t, violations)
	assert.Equal(t, "", in.Description)

	_, violations = ValidateForm(Form{Title: "T", Author: "A", Description: strings.Repeat("d", 1000)})
	assert.Nil(t, violations)
}

func TestViolations_Merge(t *testing.T) {
	local := Violations{FieldTitle: &RequiredFieldError{Field: FieldTitle}}

	merged := local.Merge(map[string][]string{
		"Title":  {"server title message"},
		"Author": {"Author already has a book with this title", "second"},
		"Extra":  {},
	})

	assert.Equal(t, "Title is required", merged[FieldTitle].Error())
	assert.Equal(t, "Author already has a book with this title", merged[FieldAuthor].Error())
	assert.NotContains(t, merged, "extra")

	var empty Violations
	assert.Nil(t, empty.Merge(nil))
	assert.Len(t, empty.Merge(map[string][]string{"description": {"too long"}}), 1)
}

func TestViolations_Error(t *testing.T) {
	_, violations := ValidateForm(Form{})

	assert.Equal(t, "author: Author is required; title: Title is required", violations.Error())
}
