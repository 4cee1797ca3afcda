package api

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonkalabs/bfhl-go/internal/classify"
)

func TestParseRequest(t *testing.T) {
	tokens, err := ParseRequest([]byte(` {"data":["A","1"," "],"extra":true} `))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "1", " "}, tokens)

	_, err = ParseRequest([]byte(`{"data":`))
	assert.ErrorIs(t, err, ErrInvalidJSON)

	_, err = ParseRequest([]byte(`{"data":[1,"x",true]}`))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Errors, 2)
	assert.Equal(t, "data.0", verr.Errors[0].Path)
	assert.Equal(t, "data.2", verr.Errors[1].Path)
	assert.Contains(t, err.Error(), "data.0: Expected string")
}

func TestValidateResponse(t *testing.T) {
	good := NewSuccessResponse(testIdentity, classify.Tokens([]string{"1", "a"}))
	assert.NoError(t, ValidateResponse(good))

	bad := good
	bad.IsSuccess = false
	bad.UserID = ""
	bad.OddNumbers = nil
	bad.Sum = "1.5"
	bad.ConcatString = "a1"

	err := ValidateResponse(bad)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))

	var paths []string
	for _, fe := range verr.Errors {
		paths = append(paths, fe.Path)
	}
	assert.ElementsMatch(t, []string{"is_success", "user_id", "odd_numbers", "sum", "concat_string"}, paths)
}

func TestProcess(t *testing.T) {
	resp, err := Process(testIdentity, []string{"abc", "123", "!!@"})
	require.NoError(t, err)

	assert.Equal(t, []string{"123"}, resp.OddNumbers)
	assert.Equal(t, []string{"ABC"}, resp.Alphabets)
	assert.Equal(t, []string{"!", "!", "@"}, resp.SpecialCharacters)
	assert.Equal(t, "123", resp.Sum)
	assert.Equal(t, "CbA", resp.ConcatString)
}
