package bulletin_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/bulletin"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := bulletin.Errorf(bulletin.ENOTFOUND, "site %q not found", "test")

	assert.Equal(t, bulletin.ENOTFOUND, bulletin.ErrorCode(err))
	assert.Equal(t, "site \"test\" not found", bulletin.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, bulletin.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, bulletin.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("crawl: %w", bulletin.Errorf(bulletin.EFETCH, "boom"))

	assert.Equal(t, bulletin.EFETCH, bulletin.ErrorCode(err))
	assert.Equal(t, "boom", bulletin.ErrorMessage(err))
}

func TestErrorCode_ForeignError(t *testing.T) {
	t.Parallel()

	err := errors.New("plain")

	assert.Equal(t, bulletin.EINTERNAL, bulletin.ErrorCode(err))
	assert.Equal(t, "Internal error.", bulletin.ErrorMessage(err))
}
