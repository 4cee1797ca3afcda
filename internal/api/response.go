package api

import (
	"github.com/gonkalabs/bfhl-go/internal/classify"
	"github.com/gonkalabs/bfhl-go/internal/config"
)

// SuccessResponse is the POST /bfhl success envelope.
type SuccessResponse struct {
	IsSuccess         bool     `json:"is_success"`
	UserID            string   `json:"user_id"`
	Email             string   `json:"email"`
	RollNumber        string   `json:"roll_number"`
	OddNumbers        []string `json:"odd_numbers"`
	EvenNumbers       []string `json:"even_numbers"`
	Alphabets         []string `json:"alphabets"`
	SpecialCharacters []string `json:"special_characters"`
	Sum               string   `json:"sum"`
	ConcatString      string   `json:"concat_string"`
}

// ErrorResponse is the single envelope every failure is reported with.
type ErrorResponse struct {
	IsSuccess     bool         `json:"is_success"`
	Message       string       `json:"message"`
	Errors        []FieldError `json:"errors,omitempty"`
	RequestedPath string       `json:"requested_path,omitempty"`
	Method        string       `json:"method,omitempty"`
}

// Error messages surfaced to clients.
const (
	msgInvalidJSON        = "Invalid JSON format"
	msgRequestValidation  = "Request validation error"
	msgResponseValidation = "Response validation error"
	msgTooLarge           = "Request entity too large"
	msgInternal           = "Internal server error"
	msgNotFound           = "Route not found"
)

// NewSuccessResponse combines the static identity with a classification
// result.
func NewSuccessResponse(id config.Identity, res classify.Result) SuccessResponse {
	return SuccessResponse{
		IsSuccess:         true,
		UserID:            id.UserID,
		Email:             id.Email,
		RollNumber:        id.RollNumber,
		OddNumbers:        res.OddNumbers,
		EvenNumbers:       res.EvenNumbers,
		Alphabets:         res.Alphabets,
		SpecialCharacters: res.SpecialCharacters,
		Sum:               res.Sum.String(),
		ConcatString:      res.ConcatString,
	}
}

// Process classifies tokens and returns the checked success envelope.
// A non-nil error is always a *ValidationError describing the response.
func Process(id config.Identity, tokens []string) (SuccessResponse, error) {
	resp := NewSuccessResponse(id, classify.Tokens(tokens))
	if err := ValidateResponse(resp); err != nil {
		return SuccessResponse{}, err
	}
	return resp, nil
}
