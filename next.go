package stringy

// Next increments the payload lexicographically. The rightmost
// alphanumeric character is incremented within its class ('8'->'9',
// 'a'->'b', 'Y'->'Z'); wrapping characters ('9', 'z', 'Z') reset and carry
// into the next alphanumeric character to the left, skipping everything
// else. A carry past the leftmost alphanumeric character lengthens the
// string, so "z" becomes "aa" and "Az" becomes "Ba". A payload without any
// alphanumeric character is left unchanged.
func (s *String) Next() *String {
	runes := []rune(s.value)

	var alnum []int // indices of alphanumeric runes, left to right
	for i, r := range runes {
		if isAlnum(r) {
			alnum = append(alnum, i)
		}
	}
	if len(alnum) == 0 {
		return s
	}

	carry := true
	for p := len(alnum) - 1; p >= 0 && carry; p-- {
		i := alnum[p]
		runes[i], carry = succ(runes[i])
	}

	if carry {
		first := alnum[0]
		var extension rune
		switch {
		case runes[first] >= '0' && runes[first] <= '9':
			extension = '1'
		case runes[first] >= 'A' && runes[first] <= 'Z':
			extension = 'A'
		default:
			extension = 'a'
		}
		extended := make([]rune, 0, len(runes)+1)
		extended = append(extended, runes[:first]...)
		extended = append(extended, extension)
		extended = append(extended, runes[first:]...)
		runes = extended
	}

	s.value = string(runes)
	return s
}

// succ increments r within its character class and reports whether the
// increment wrapped around.
func succ(r rune) (rune, bool) {
	switch r {
	case '9':
		return '0', true
	case 'z':
		return 'a', true
	case 'Z':
		return 'A', true
	default:
		return r + 1, false
	}
}

func isAlnum(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
