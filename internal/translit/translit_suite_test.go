package translit

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
)

func TestTranslitSuite(t *testing.T) {
	suite.Run(t, new(TranslitSuite))
}

type TranslitSuite struct {
	suite.Suite
}

func (suite *TranslitSuite) assertExpand(spec string, expected []rune) {
	got, err := Expand(spec)
	suite.NoError(err)

	if !cmp.Equal(expected, got) {
		suite.Failf("not equal", "%s", cmp.Diff(expected, got))
	}
}

func (suite *TranslitSuite) assertExpandFails(spec string) {
	_, err := Expand(spec)
	suite.Error(err)
	suite.True(errors.Is(err, ErrInvalidRangeSpec), "error must wrap ErrInvalidRangeSpec, got %v", err)
}
