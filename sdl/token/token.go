package token

type Token int

const (
	INVALID Token = iota

	PUNCTUATOR
	NAME
	INT_VALUE
	FLOAT_VALUE
	STRING_VALUE

	UNICODE_BOM
	WHITE_SPACE
	LINE_TERMINATOR
	COMMENT
	COMMA
)

func (t Token) IsIgnored() bool {
	switch t {
	case UNICODE_BOM, WHITE_SPACE, LINE_TERMINATOR, COMMENT, COMMA:
		return true
	default:
		return false
	}
}

var tokenNames = [...]string{
	INVALID:         "INVALID",
	PUNCTUATOR:      "PUNCTUATOR",
	NAME:            "NAME",
	INT_VALUE:       "INT_VALUE",
	FLOAT_VALUE:     "FLOAT_VALUE",
	STRING_VALUE:    "STRING_VALUE",
	UNICODE_BOM:     "UNICODE_BOM",
	WHITE_SPACE:     "WHITE_SPACE",
	LINE_TERMINATOR: "LINE_TERMINATOR",
	COMMENT:         "COMMENT",
	COMMA:           "COMMA",
}

func (t Token) String() string {
	if t >= 0 && int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return "INVALID"
}

type Position struct {
	Line   int
	Column int
}
