// Package scanner tokenizes GraphQL schema definition language documents.
package scanner

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/ccbrown/schema-fu/sdl/token"
)

type Error struct {
	Message string
	Line    int
	Column  int
}

func (err *Error) Error() string {
	return err.Message
}

type Scanner struct {
	src    []byte
	mode   Mode
	offset int
	line   int
	column int
	errors []*Error

	nextRune     rune
	nextRuneSize int

	token            token.Token
	tokenOffset      int
	tokenPosition    token.Position
	tokenLength      int
	tokenStringValue string
}

type Mode uint

const (
	ScanIgnored Mode = 1 << iota
)

func New(src []byte, mode Mode) *Scanner {
	s := &Scanner{
		src:    src,
		mode:   mode,
		line:   1,
		column: 1,
	}
	s.readNextRune()
	return s
}

func (s *Scanner) Errors() []*Error {
	return s.errors
}

func (s *Scanner) errorf(message string, args ...interface{}) {
	s.errors = append(s.errors, &Error{
		Message: fmt.Sprintf(message, args...),
		Line:    s.line,
		Column:  s.column,
	})
}

func (s *Scanner) readNextRune() {
	if s.isDone() {
		s.nextRune = -1
		s.nextRuneSize = 0
	} else if r, size := utf8.DecodeRune(s.src[s.offset:]); r == utf8.RuneError && size != 0 {
		s.nextRune = r
		s.nextRuneSize = 1
	} else {
		s.nextRune = r
		s.nextRuneSize = size
	}
}

func (s *Scanner) peek() rune {
	r, _ := utf8.DecodeRune(s.src[s.offset+s.nextRuneSize:])
	return r
}

func (s *Scanner) consumeRune() rune {
	r := s.nextRune
	s.offset += s.nextRuneSize
	s.readNextRune()
	if r == '\n' || (r == '\r' && s.nextRune != '\n') {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return r
}

func (s *Scanner) consumeName() bool {
	if r := s.nextRune; r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
		s.consumeRune()
		for !s.isDone() {
			if r := s.nextRune; r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
				s.consumeRune()
			} else {
				break
			}
		}
		return true
	}
	return false
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func (s *Scanner) consumeDigits() bool {
	if !isDigit(s.nextRune) {
		s.errorf("expected digit")
		return false
	}
	for isDigit(s.nextRune) {
		s.consumeRune()
	}
	return true
}

func (s *Scanner) consumeNumber() token.Token {
	ret := token.INT_VALUE
	if s.nextRune == '-' {
		s.consumeRune()
	}
	if s.nextRune == '0' {
		s.consumeRune()
		if isDigit(s.nextRune) {
			s.errorf("numbers may not have leading zeros")
			return token.INVALID
		}
	} else if !s.consumeDigits() {
		return token.INVALID
	}
	if s.nextRune == '.' {
		s.consumeRune()
		if !s.consumeDigits() {
			return token.INVALID
		}
		ret = token.FLOAT_VALUE
	}
	if s.nextRune == 'e' || s.nextRune == 'E' {
		s.consumeRune()
		if s.nextRune == '+' || s.nextRune == '-' {
			s.consumeRune()
		}
		if !s.consumeDigits() {
			return token.INVALID
		}
		ret = token.FLOAT_VALUE
	}
	if s.nextRune == '_' || s.nextRune == '.' || (s.nextRune >= 'a' && s.nextRune <= 'z') || (s.nextRune >= 'A' && s.nextRune <= 'Z') {
		s.errorf("illegal character after number: %#U", s.nextRune)
		return token.INVALID
	}
	return ret
}

func isSourceCharacter(r rune) bool {
	return r == '\t' || r == '\n' || r == '\r' || (r >= 0x20 && r <= 0xffff)
}

func (s *Scanner) isDone() bool {
	return len(s.src) == s.offset
}

func (s *Scanner) Scan() bool {
	for {
		s.token = token.INVALID
		s.tokenOffset = s.offset
		s.tokenPosition = token.Position{
			Line:   s.line,
			Column: s.column,
		}

		if s.isDone() {
			return false
		}

		switch s.nextRune {
		case '\t', ' ':
			s.consumeRune()
			s.token = token.WHITE_SPACE
		case ',':
			s.consumeRune()
			s.token = token.COMMA
		case '#':
			for !s.isDone() && s.nextRune != '\n' && s.nextRune != '\r' {
				s.consumeRune()
			}
			s.token = token.COMMENT
		case '!', '$', '&', '(', ')', ':', '=', '@', '[', ']', '{', '|', '}':
			s.consumeRune()
			s.token = token.PUNCTUATOR
		case '.':
			if s.peek() == '.' && s.offset+2 < len(s.src) && s.src[s.offset+2] == '.' {
				s.consumeRune()
				s.consumeRune()
				s.consumeRune()
				s.token = token.PUNCTUATOR
			} else {
				s.errorf("illegal character: %#U", s.nextRune)
				s.consumeRune()
			}
		case '\r', '\n':
			if s.consumeRune() == '\r' && s.nextRune == '\n' {
				s.consumeRune()
			}
			s.token = token.LINE_TERMINATOR
		case '"':
			if bytes.HasPrefix(s.src[s.offset:], []byte(`"""`)) {
				s.tokenStringValue = s.consumeBlockStringValue()
			} else {
				s.tokenStringValue = s.consumeStringValue()
			}
			s.token = token.STRING_VALUE
		case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			s.token = s.consumeNumber()
		case utf8.RuneError:
			s.errorf("invalid utf-8 character")
			s.consumeRune()
		case 0xfeff:
			if s.offset == 0 {
				s.token = token.UNICODE_BOM
			} else {
				s.errorf("illegal byte order mark")
			}
			s.consumeRune()
		default:
			if s.consumeName() {
				s.token = token.NAME
			} else {
				s.errorf("illegal character: %#U", s.nextRune)
				s.consumeRune()
			}
		}

		if s.token == token.INVALID || (s.token.IsIgnored() && (s.mode&ScanIgnored) == 0) {
			continue
		}

		s.tokenLength = s.offset - s.tokenOffset
		return true
	}
}

func (s *Scanner) Token() token.Token {
	return s.token
}

func (s *Scanner) Position() token.Position {
	return s.tokenPosition
}

func (s *Scanner) Literal() string {
	return string(s.src[s.tokenOffset : s.tokenOffset+s.tokenLength])
}

func (s *Scanner) StringValue() string {
	if s.token == token.STRING_VALUE {
		return s.tokenStringValue
	} else {
		return s.Literal()
	}
}
