package scanner

import (
	"bytes"
	"strings"
)

func hexRuneValue(r rune) rune {
	if r >= '0' && r <= '9' {
		return r - '0'
	} else if r >= 'a' && r <= 'f' {
		return 10 + r - 'a'
	} else if r >= 'A' && r <= 'F' {
		return 10 + r - 'A'
	}
	return -1
}

func (s *Scanner) consumeStringValue() string {
	s.consumeRune() // '"'

	value := ""

	terminated := false
	isEscaped := false
	for !terminated && !s.isDone() {
		if isEscaped {
			consumed := false
			switch s.nextRune {
			case '"', '\\', '/':
				value += string(s.nextRune)
			case 'b':
				value += string('\b')
			case 'f':
				value += string('\f')
			case 'n':
				value += string('\n')
			case 'r':
				value += string('\r')
			case 't':
				value += string('\t')
			case 'u':
				s.consumeRune()
				consumed = true

				var code rune
				for i := 0; i < 4; i++ {
					if v := hexRuneValue(s.nextRune); v < 0 {
						s.errorf("illegal unicode escape sequence")
						break
					} else {
						code = (code << 4) | v
						s.consumeRune()
					}
				}
				value += string(code)
			default:
				s.errorf("illegal escape sequence")
			}
			if !consumed {
				s.consumeRune()
			}
			isEscaped = false
			continue
		}

		if s.nextRune == '\n' || s.nextRune == '\r' {
			break
		} else if s.nextRune == '\\' {
			s.consumeRune()
			isEscaped = true
		} else if s.nextRune == '"' {
			s.consumeRune()
			terminated = true
		} else if !isSourceCharacter(s.nextRune) {
			s.errorf("illegal character %#U in string", s.nextRune)
			s.consumeRune()
		} else {
			value += string(s.nextRune)
			s.consumeRune()
		}
	}

	if !terminated {
		s.errorf("unterminated string")
	}

	return value
}

func (s *Scanner) consumeBlockStringValue() string {
	s.consumeRune()
	s.consumeRune()
	s.consumeRune()

	var raw []rune
	terminated := false
	for !s.isDone() {
		if bytes.HasPrefix(s.src[s.offset:], []byte(`"""`)) {
			s.consumeRune()
			s.consumeRune()
			s.consumeRune()
			terminated = true
			break
		} else if bytes.HasPrefix(s.src[s.offset:], []byte(`\"""`)) {
			for i := 0; i < 4; i++ {
				s.consumeRune()
			}
			raw = append(raw, '"', '"', '"')
		} else if !isSourceCharacter(s.nextRune) {
			s.errorf("illegal character %#U in string", s.nextRune)
			s.consumeRune()
		} else {
			raw = append(raw, s.consumeRune())
		}
	}

	if !terminated {
		s.errorf("unterminated string")
	}

	return BlockStringValue(string(raw))
}

// BlockStringValue removes the common indentation and the leading and trailing blank lines of a
// block string's raw value.
func BlockStringValue(raw string) string {
	lines := strings.Split(strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(raw), "\n")

	commonIndent := -1
	for _, line := range lines[1:] {
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < len(line) && (commonIndent < 0 || indent < commonIndent) {
			commonIndent = indent
		}
	}
	if commonIndent > 0 {
		for i := 1; i < len(lines); i++ {
			if len(lines[i]) >= commonIndent {
				lines[i] = lines[i][commonIndent:]
			} else {
				lines[i] = ""
			}
		}
	}

	for len(lines) > 0 && strings.TrimLeft(lines[0], " \t") == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimLeft(lines[len(lines)-1], " \t") == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
