package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	postingDate := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	entryID := "e8b1c9a0-1111-2222-3333-444455556666"

	token := EncodeToken(postingDate, entryID)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedDate, decodedID, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, postingDate, decodedDate, "Posting date should match after decode")
	assert.Equal(t, entryID, decodedID, "Entry ID should match after decode")

	// Zero time round trip
	zeroToken := EncodeToken(time.Time{}, "id")
	decodedZero, _, err := DecodeToken(zeroToken)
	assert.NoError(t, err, "Decoding zero time should not return an error")
	assert.Equal(t, time.Time{}, decodedZero, "Zero date should match after decode")

	// Current time round trip; compare with Equal to sidestep monotonic clock
	now := time.Now().UTC()
	nowToken := EncodeToken(now, "id")
	decodedNow, _, err := DecodeToken(nowToken)
	assert.NoError(t, err, "Decoding current time should not return an error")
	assert.True(t, now.Equal(decodedNow), "Current date should match after decode")
}

func TestDecodeTokenError(t *testing.T) {
	// Invalid base64
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")

	// Missing separator
	noSeparator := base64.StdEncoding.EncodeToString([]byte("2025-03-15T00:00:00Z"))
	_, _, err = DecodeToken(noSeparator)
	assert.Error(t, err, "Should return an error for a token without a separator")
	assert.Contains(t, err.Error(), "split", "Error should mention splitting issue")

	// Unparseable date part
	badDate := base64.StdEncoding.EncodeToString([]byte("notadate|some-id"))
	_, _, err = DecodeToken(badDate)
	assert.Error(t, err, "Should return an error for an invalid date")
	assert.Contains(t, err.Error(), "date parse", "Error should mention date parsing issue")
}

func TestEncodeMultiFieldToken(t *testing.T) {
	fields := []string{"1000", "acc-cash"}
	token := EncodeMultiFieldToken(fields...)

	decodedFields, err := DecodeMultiFieldToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, fields, decodedFields, "Fields should match after decode")

	// Empty input decodes to a single empty field
	emptyToken := EncodeMultiFieldToken()
	decodedEmpty, err := DecodeMultiFieldToken(emptyToken)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, []string{""}, decodedEmpty, "Should decode to slice with one empty string")

	// Pipe characters inside fields split further on decode
	pipeToken := EncodeMultiFieldToken("a|b", "c")
	decodedPipes, err := DecodeMultiFieldToken(pipeToken)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Len(t, decodedPipes, 3, "Should split on all pipe characters")
}

func TestDecodeMultiFieldTokenError(t *testing.T) {
	_, err := DecodeMultiFieldToken("%%% not base64 %%%")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")
}
