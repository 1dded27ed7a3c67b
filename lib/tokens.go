package lib

type TokenType int

const (
	TokenTypeKeywordIf TokenType = iota
	TokenTypeKeywordWhile
	TokenTypeKeywordReturn
	TokenTypeKeywordElse
	TokenTypeTypeInt
	TokenTypeTypeFloat
	TokenTypeTypeVoid
	TokenTypeIdentifier
	TokenTypeInteger
	TokenTypeReal
	TokenTypeString
	TokenTypePlus
	TokenTypeMinus
	TokenTypeAsterisk
	TokenTypeSlash
	TokenTypeLess
	TokenTypeLessOrEqual
	TokenTypeGreater
	TokenTypeGreaterOrEqual
	TokenTypeEqual
	TokenTypeNotEqual
	TokenTypeAnd
	TokenTypeOr
	TokenTypeNot
	TokenTypeAssign
	TokenTypeSemicolon
	TokenTypeComma
	TokenTypeLParen
	TokenTypeRParen
	TokenTypeLBrace
	TokenTypeRBrace
)

var tokenTypeNames = map[TokenType]string{
	TokenTypeKeywordIf:      "KEYWORD_IF",
	TokenTypeKeywordWhile:   "KEYWORD_WHILE",
	TokenTypeKeywordReturn:  "KEYWORD_RETURN",
	TokenTypeKeywordElse:    "KEYWORD_ELSE",
	TokenTypeTypeInt:        "TYPE_INT",
	TokenTypeTypeFloat:      "TYPE_FLOAT",
	TokenTypeTypeVoid:       "TYPE_VOID",
	TokenTypeIdentifier:     "IDENTIFIER",
	TokenTypeInteger:        "INTEGER_NUMBER",
	TokenTypeReal:           "REAL_NUMBER",
	TokenTypeString:         "STRING",
	TokenTypePlus:           "OP_PLUS",
	TokenTypeMinus:          "OP_MINUS",
	TokenTypeAsterisk:       "OP_MUL",
	TokenTypeSlash:          "OP_DIV",
	TokenTypeLess:           "OP_LT",
	TokenTypeLessOrEqual:    "OP_LE",
	TokenTypeGreater:        "OP_GT",
	TokenTypeGreaterOrEqual: "OP_GE",
	TokenTypeEqual:          "OP_EQ",
	TokenTypeNotEqual:       "OP_NE",
	TokenTypeAnd:            "OP_AND",
	TokenTypeOr:             "OP_OR",
	TokenTypeNot:            "OP_NOT",
	TokenTypeAssign:         "OP_ASSIGN",
	TokenTypeSemicolon:      "PUNCT_SEMI",
	TokenTypeComma:          "PUNCT_COMMA",
	TokenTypeLParen:         "PUNCT_LPAREN",
	TokenTypeRParen:         "PUNCT_RPAREN",
	TokenTypeLBrace:         "PUNCT_LBRACE",
	TokenTypeRBrace:         "PUNCT_RBRACE",
}

func (t TokenType) String() string {
	name, ok := tokenTypeNames[t]
	if !ok {
		return "UNKNOWN"
	}
	return name
}

// Reserved words are matched case-sensitively against the whole identifier
// lexeme, so "iffy" stays an identifier.
var reservedWords = map[string]TokenType{
	"if":     TokenTypeKeywordIf,
	"while":  TokenTypeKeywordWhile,
	"return": TokenTypeKeywordReturn,
	"else":   TokenTypeKeywordElse,
	"int":    TokenTypeTypeInt,
	"float":  TokenTypeTypeFloat,
	"void":   TokenTypeTypeVoid,
}

// Location is a 1-based line/column position in the source text.
type Location struct {
	Line int
	Col  int
}

// Token is a classified fragment of source text. Lexeme is the exact
// substring that produced it and Location points at its first character.
type Token struct {
	Type     TokenType
	Lexeme   string
	Location Location
}
