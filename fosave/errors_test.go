package fosave

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKindStrings(t *testing.T) {
	assert.Equal(t, "Io", KindIO.String())
	assert.Equal(t, "Parse", KindParse.String())
	assert.Equal(t, "GameDetectionAmbiguous", KindGameDetectionAmbiguous.String())
	assert.Equal(t, "UnsupportedOperation", KindUnsupportedOperation.String())
}

func TestParseErrorfWrapsCause(t *testing.T) {
	cause := errors.New("short read")
	err := parseErrorf(cause, "field x")

	var fe *Error
	a := assert.New(t)
	a.ErrorAs(err, &fe)
	a.Equal(KindParse, fe.Kind)
	a.Contains(err.Error(), "field x")
	a.Contains(err.Error(), "short read")
	a.ErrorIs(err, cause)
}

func TestUnsupportedErrorfHasNoCause(t *testing.T) {
	err := unsupportedErrorf("editing not supported")
	var fe *Error
	assert.ErrorAs(t, err, &fe)
	assert.Equal(t, KindUnsupportedOperation, fe.Kind)
	assert.Nil(t, fe.Unwrap())
}

func TestAmbiguousErrorfKind(t *testing.T) {
	err := ambiguousErrorf("matched both games")
	var fe *Error
	assert.ErrorAs(t, err, &fe)
	assert.Equal(t, KindGameDetectionAmbiguous, fe.Kind)
}
