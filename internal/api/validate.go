package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
)

// ErrInvalidJSON is returned by ParseRequest when the body is not JSON.
var ErrInvalidJSON = errors.New("invalid JSON")

// FieldError describes one failed check, addressed by a dotted path.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError collects every FieldError found in one document.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Path+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(path, format string, args ...any) {
	e.Errors = append(e.Errors, FieldError{Path: path, Message: fmt.Sprintf(format, args...)})
}

func (e *ValidationError) orNil() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

// ParseRequest extracts the token list from a POST /bfhl body. The body must
// be an object whose "data" field is a non-empty array of strings.
// Malformed JSON yields ErrInvalidJSON; shape problems yield *ValidationError.
func ParseRequest(body []byte) ([]string, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		body = []byte("{}")
	}
	if !json.Valid(body) {
		return nil, ErrInvalidJSON
	}

	verr := &ValidationError{}

	var req map[string]json.RawMessage
	if body[0] != '{' || json.Unmarshal(body, &req) != nil {
		verr.add("", "Expected object")
		return nil, verr
	}

	raw, ok := req["data"]
	if !ok || string(raw) == "null" {
		verr.add("data", "Required")
		return nil, verr
	}

	var items []json.RawMessage
	if raw[0] != '[' || json.Unmarshal(raw, &items) != nil {
		verr.add("data", "Expected array")
		return nil, verr
	}
	if len(items) == 0 {
		verr.add("data", "Array must contain at least 1 element(s)")
		return nil, verr
	}

	tokens := make([]string, len(items))
	for i, item := range items {
		if len(item) == 0 || item[0] != '"' || json.Unmarshal(item, &tokens[i]) != nil {
			verr.add(fmt.Sprintf("data.%d", i), "Expected string")
		}
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}
	return tokens, nil
}

var (
	integerRe = regexp.MustCompile(`^-?\d+$`)
	lettersRe = regexp.MustCompile(`^[A-Za-z]*$`)
)

// ValidateResponse checks the success envelope before it is sent.
func ValidateResponse(r SuccessResponse) error {
	verr := &ValidationError{}

	if !r.IsSuccess {
		verr.add("is_success", "Expected true")
	}
	if r.UserID == "" {
		verr.add("user_id", "Required")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		verr.add("email", "Invalid email")
	}
	if r.RollNumber == "" {
		verr.add("roll_number", "Required")
	}

	buckets := []struct {
		path string
		v    []string
	}{
		{"odd_numbers", r.OddNumbers},
		{"even_numbers", r.EvenNumbers},
		{"alphabets", r.Alphabets},
		{"special_characters", r.SpecialCharacters},
	}
	for _, b := range buckets {
		if b.v == nil {
			verr.add(b.path, "Expected array, received null")
		}
	}

	if !integerRe.MatchString(r.Sum) {
		verr.add("sum", "Expected integer string")
	}
	if !lettersRe.MatchString(r.ConcatString) {
		verr.add("concat_string", "Expected letters only")
	}
	return verr.orNil()
}
