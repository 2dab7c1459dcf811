package compiler

import (
	"fmt"
	"regexp"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/aretw0/stepc/pkg/domain"
)

var (
	symbolPattern  = regexp.MustCompile(`^[A-Za-z]+$`)
	integerPattern = regexp.MustCompile(`^-?(0|[1-9][0-9]*)$`)
	floatPattern   = regexp.MustCompile(`^-?[0-9]+\.[0-9]+$`)
)

// Parser is responsible for converting raw bytes into a program tree.
// It performs no semantic interpretation: operator and state names are
// checked by the emitter.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// ParseString is a convenience wrapper around Parse.
func (p *Parser) ParseString(src string) (domain.Node, error) {
	return p.Parse([]byte(src))
}

// Parse reads exactly one top-level s-expression from data.
// Anything other than whitespace after the closing parenthesis is rejected.
func (p *Parser) Parse(data []byte) (domain.Node, error) {
	s := &scanner{src: data, line: 1, col: 1}

	s.skipSpace()
	if s.eof() {
		return nil, s.errorf(s.pos(), "empty program")
	}
	if s.peek() != '(' {
		return nil, s.errorf(s.pos(), "expected '(' at start of program, found %q", s.peekToken())
	}

	root, err := s.list()
	if err != nil {
		return nil, err
	}

	s.skipSpace()
	if !s.eof() {
		return nil, s.errorf(s.pos(), "unexpected content after program: %q", s.peekToken())
	}
	return root, nil
}

// scanner walks the source one rune at a time, tracking line and column.
type scanner struct {
	src       []byte
	off       int
	line, col int
}

func (s *scanner) eof() bool { return s.off >= len(s.src) }

func (s *scanner) pos() domain.Position {
	return domain.Position{Line: s.line, Col: s.col}
}

func (s *scanner) peek() rune {
	r, _ := utf8.DecodeRune(s.src[s.off:])
	return r
}

func (s *scanner) next() rune {
	r, size := utf8.DecodeRune(s.src[s.off:])
	s.off += size
	if r == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return r
}

func (s *scanner) skipSpace() {
	for !s.eof() && unicode.IsSpace(s.peek()) {
		s.next()
	}
}

// peekToken returns the upcoming token text without consuming it, for error messages.
func (s *scanner) peekToken() string {
	r := s.peek()
	if r == '(' || r == ')' {
		return string(r)
	}
	end := s.off
	for end < len(s.src) {
		r, size := utf8.DecodeRune(s.src[end:])
		if isDelimiter(r) {
			break
		}
		end += size
	}
	return string(s.src[s.off:end])
}

func (s *scanner) errorf(pos domain.Position, format string, args ...any) error {
	return &domain.SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// list parses '(' (atom | list)+ ')'. The opening parenthesis is the next rune.
func (s *scanner) list() (domain.Node, error) {
	start := s.pos()
	s.next() // '('

	var elems []domain.Node
	for {
		s.skipSpace()
		if s.eof() {
			return nil, s.errorf(start, "unclosed '('")
		}

		switch s.peek() {
		case ')':
			if len(elems) == 0 {
				return nil, s.errorf(start, "empty list")
			}
			s.next()
			return domain.NewList(start, elems...), nil
		case '(':
			child, err := s.list()
			if err != nil {
				return nil, err
			}
			elems = append(elems, child)
		default:
			atom, err := s.atom()
			if err != nil {
				return nil, err
			}
			elems = append(elems, atom)
		}
	}
}

func (s *scanner) atom() (domain.Node, error) {
	start := s.pos()
	text := s.peekToken()
	for range text {
		s.next()
	}

	switch {
	case symbolPattern.MatchString(text):
		return domain.Symbol{Name: text, Position: start}, nil
	case integerPattern.MatchString(text):
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, s.errorf(start, "integer literal out of range: %s", text)
		}
		return domain.Integer{Value: v, Text: text, Position: start}, nil
	case floatPattern.MatchString(text):
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, s.errorf(start, "invalid float literal: %s", text)
		}
		return domain.Float{Value: v, Text: text, Position: start}, nil
	default:
		return nil, s.errorf(start, "unrecognized token %q", text)
	}
}

func isDelimiter(r rune) bool {
	return r == '(' || r == ')' || unicode.IsSpace(r)
}
