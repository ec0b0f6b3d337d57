package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSample = New(KindPolicyViolation, "SAMPLE", "sample violation")

func TestWrapfKeepsSentinelIdentity(t *testing.T) {
	err := Wrapf(errSample, "you are %dm away", 250)

	assert.True(t, errors.Is(err, errSample))
	assert.Equal(t, "you are 250m away", err.Error())
	assert.Equal(t, KindPolicyViolation, KindOf(err))
}

func TestKindOfWrappedWithFmt(t *testing.T) {
	err := fmt.Errorf("check-in failed: %w", Wrapf(errSample, "detail"))
	assert.Equal(t, KindPolicyViolation, KindOf(err))

	appErr, ok := As(err)
	assert.True(t, ok)
	assert.Equal(t, "SAMPLE", appErr.Code)
}

func TestKindOfPlainErrorIsInternal(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}
