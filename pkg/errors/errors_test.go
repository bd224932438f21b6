package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloneKeepsIdentity(t *testing.T) {
	cloned := Clone(ErrEmailTaken, "taken")
	assert.Equal(t, "taken", cloned.Message)
	assert.True(t, errors.Is(cloned, ErrEmailTaken))
	assert.False(t, errors.Is(cloned, ErrInvalidCredentials))
	assert.Equal(t, "email already registered, please use a different email", ErrEmailTaken.Message)
}

func TestFromErrorWrapsUnknown(t *testing.T) {
	appErr := FromError(fmt.Errorf("boom"))
	assert.Equal(t, ErrInternal.Code, appErr.Code)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.Nil(t, FromError(nil))

	wrapped := fmt.Errorf("outer: %w", ErrNotFound)
	assert.Equal(t, ErrNotFound.Code, FromError(wrapped).Code)
}

func TestWrapUnwraps(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(cause, ErrStorageUnavailable.Code, ErrStorageUnavailable.Status, "write failed")
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "write failed: disk full", err.Error())
}
