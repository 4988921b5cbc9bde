package translit

func (suite *TranslitSuite) TestExpandEmpty() {
	suite.assertExpand("", nil)
}

func (suite *TranslitSuite) TestExpandLiterals() {
	suite.assertExpand("abc", []rune{'a', 'b', 'c'})
}

func (suite *TranslitSuite) TestExpandRange() {
	suite.assertExpand("a-e", []rune{'a', 'b', 'c', 'd', 'e'})
}

func (suite *TranslitSuite) TestExpandMixed() {
	suite.assertExpand("a-cx", []rune{'a', 'b', 'c', 'x'})
	suite.assertExpand("xa-c", []rune{'x', 'a', 'b', 'c'})
}

func (suite *TranslitSuite) TestExpandMultipleRanges() {
	suite.assertExpand("a-cA-C", []rune{'a', 'b', 'c', 'A', 'B', 'C'})
}

func (suite *TranslitSuite) TestExpandLiteralHyphen() {
	suite.assertExpand("-", []rune{'-'})
	suite.assertExpand("-a", []rune{'-', 'a'})
	suite.assertExpand("a-", []rune{'a', '-'})
}

func (suite *TranslitSuite) TestExpandSingleCharRange() {
	suite.assertExpand("a-a", []rune{'a'})
}

func (suite *TranslitSuite) TestExpandUnicodeRange() {
	suite.assertExpand("à-ã", []rune{'à', 'á', 'â', 'ã'})
}

func (suite *TranslitSuite) TestExpandReversedRange() {
	suite.assertExpandFails("z-a")
	suite.assertExpandFails("a-cz-x")
}

func (suite *TranslitSuite) TestNewMap() {
	m, err := NewMap("a-c", "x-z")
	suite.NoError(err)
	suite.Equal(Map{'a': 'x', 'b': 'y', 'c': 'z'}, m)
}

func (suite *TranslitSuite) TestNewMapLengthMismatch() {
	_, err := NewMap("a-c", "x-y")
	suite.Error(err)
}

func (suite *TranslitSuite) TestNewMapInvalidSpec() {
	_, err := NewMap("c-a", "x-z")
	suite.Error(err)

	_, err = NewMap("a-c", "z-x")
	suite.Error(err)
}

func (suite *TranslitSuite) TestApply() {
	m, err := NewMap("a-z", "A-Z")
	suite.NoError(err)
	suite.Equal("HELLO, WORLD", m.Apply("Hello, world"))
}

func (suite *TranslitSuite) TestApplyRot13() {
	m, err := NewMap("a-zA-Z", "n-za-mN-ZA-M")
	suite.NoError(err)
	suite.Equal("Uryyb", m.Apply("Hello"))
	suite.Equal("Hello", m.Apply(m.Apply("Hello")))
}

func (suite *TranslitSuite) TestSqueeze() {
	got, err := Squeeze("woooaaaah, balls", "")
	suite.NoError(err)
	suite.Equal("woah, bals", got)
}

func (suite *TranslitSuite) TestSqueezeKeep() {
	got, err := Squeeze("woooaaaah, balls", "a")
	suite.NoError(err)
	suite.Equal("woaaaah, bals", got)
}

func (suite *TranslitSuite) TestSqueezeKeepRange() {
	got, err := Squeeze("aabbcc", "a-b")
	suite.NoError(err)
	suite.Equal("aabbc", got)
}

func (suite *TranslitSuite) TestSqueezeInvalidKeep() {
	_, err := Squeeze("aabb", "z-a")
	suite.Error(err)
}
