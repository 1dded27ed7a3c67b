package lib

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// TokenRecord is the serializable view of a scanned token.
type TokenRecord struct {
	Kind   string `json:"kind" yaml:"kind"`
	Lexeme string `json:"lexeme" yaml:"lexeme"`
	Line   int    `json:"line" yaml:"line"`
	Col    int    `json:"col" yaml:"col"`
}

// ErrorRecord is the serializable view of a lexical error.
type ErrorRecord struct {
	Message string `json:"message" yaml:"message"`
	Line    int    `json:"line" yaml:"line"`
	Col     int    `json:"col" yaml:"col"`
}

// Report holds the full outcome of one scan in a renderable shape.
type Report struct {
	Tokens []TokenRecord `json:"tokens" yaml:"tokens"`
	Errors []ErrorRecord `json:"errors" yaml:"errors"`
}

func NewReport(tokens []Token, errs []LexError) Report {
	report := Report{
		Tokens: []TokenRecord{},
		Errors: []ErrorRecord{},
	}
	for _, tok := range tokens {
		report.Tokens = append(report.Tokens, TokenRecord{
			Kind:   tok.Type.String(),
			Lexeme: tok.Lexeme,
			Line:   tok.Location.Line,
			Col:    tok.Location.Col,
		})
	}
	for _, lexErr := range errs {
		report.Errors = append(report.Errors, ErrorRecord{
			Message: lexErr.Message,
			Line:    lexErr.Location.Line,
			Col:     lexErr.Location.Col,
		})
	}
	return report
}

// Text renders one line per token and one per error.
func (r Report) Text() string {
	var b strings.Builder
	for _, tok := range r.Tokens {
		fmt.Fprintf(&b, "%s %q %d:%d\n", tok.Kind, tok.Lexeme, tok.Line, tok.Col)
	}
	for _, lexErr := range r.Errors {
		fmt.Fprintf(&b, "error: %s at %d:%d\n", lexErr.Message, lexErr.Line, lexErr.Col)
	}
	return b.String()
}

func (r Report) JSON() ([]byte, error) {
	payload, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode JSON: %w", err)
	}
	return payload, nil
}

func (r Report) YAML() ([]byte, error) {
	payload, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode YAML: %w", err)
	}
	return payload, nil
}
