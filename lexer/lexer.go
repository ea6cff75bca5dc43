// Package lexer is the token source adapter's concrete lexer: the
// external collaborator spec.md treats as out of scope for the parser
// proper, implemented here only so the parser has something real to
// run against tests with. It reads a byte stream and produces
// token.Token values on a channel, the same goroutine-feeds-a-channel
// shape the teacher's cpp/lex.go uses.
package lexer

import (
	"bufio"
	"bytes"
	"io"
	"math/big"

	"github.com/NiDE-gg/sourcepawn/token"
)

type breakout struct{}

// Lexer scans one translation unit. Not safe for concurrent use by
// more than the one goroutine it starts internally and the one
// consumer draining Next.
type Lexer struct {
	rdr     *bufio.Reader
	file    *token.File
	offset  int
	lastOff int
	bol     bool
	stream  chan token.Token
	err     error
}

// Lex starts a lexer goroutine over r. name is used as the file field
// of every Position produced.
func Lex(name string, r io.Reader, size int) *Lexer {
	lx := &Lexer{
		rdr:    bufio.NewReader(r),
		file:   token.NewFile(name, size),
		bol:    true,
		stream: make(chan token.Token, 256),
	}
	go lx.run()
	return lx
}

// Next returns the next token, blocking until the lexer goroutine
// produces one. After EOF, Next keeps returning an EOF token.
func (lx *Lexer) Next() token.Token {
	t, ok := <-lx.stream
	if !ok {
		return token.Token{Kind: token.EOF, Pos: lx.file.Position(lx.offset)}
	}
	return t
}

func (lx *Lexer) pos() token.Position { return lx.file.Position(lx.offset) }

func (lx *Lexer) send(kind token.Kind, name string) {
	lx.stream <- token.Token{Kind: kind, Pos: lx.pos(), Name: name}
}

func (lx *Lexer) readRune() (rune, bool) {
	r, _, err := lx.rdr.ReadRune()
	if err != nil {
		return 0, true
	}
	lx.lastOff = lx.offset
	lx.offset++
	if r == '\n' {
		lx.file.AddLine(lx.offset)
		lx.bol = true
	} else if r != ' ' && r != '\t' && r != '\r' {
		lx.bol = false
	}
	return r, false
}

func (lx *Lexer) unreadRune() {
	lx.rdr.UnreadRune()
	lx.offset = lx.lastOff
}

func (lx *Lexer) peekByte() (rune, bool) {
	r, eof := lx.readRune()
	if !eof {
		lx.unreadRune()
	}
	return r, eof
}

func (lx *Lexer) error(msg string) {
	lx.stream <- token.Token{Kind: token.ERROR, Pos: lx.pos(), Name: msg}
	close(lx.stream)
	panic(breakout{})
}

func (lx *Lexer) run() {
	defer func() {
		if e := recover(); e != nil {
			_ = e.(breakout)
		}
	}()
	for {
		r, eof := lx.readRune()
		if eof {
			lx.stream <- token.Token{Kind: token.EOF, Pos: lx.pos()}
			break
		}
		switch {
		case isIdentStart(r):
			lx.unreadRune()
			lx.lexIdentOrKeyword()
		case isDigit(r):
			lx.unreadRune()
			lx.lexNumber()
		case isSpace(r):
			// consumed by readRune's position tracking; nothing to do.
		default:
			lx.lexPunct(r)
		}
	}
	close(lx.stream)
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
func isIdentTail(r rune) bool { return isIdentStart(r) || isDigit(r) }
func isDigit(r rune) bool     { return r >= '0' && r <= '9' }
func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
func isSpace(r rune) bool { return r == ' ' || r == '\t' || r == '\r' || r == '\n' }

func (lx *Lexer) lexIdentOrKeyword() {
	var buf bytes.Buffer
	startPos := lx.pos()
	for {
		r, eof := lx.readRune()
		if eof || !isIdentTail(r) {
			if !eof {
				lx.unreadRune()
			}
			break
		}
		buf.WriteRune(r)
	}
	name := buf.String()

	if kw, ok := token.Keywords[name]; ok {
		lx.stream <- token.Token{Kind: kw, Pos: startPos, Name: name}
		return
	}

	// Old-style tag label: "ident:" with no "::" following. Peeking
	// leaves both colons unread when they form "::".
	if b, _ := lx.rdr.Peek(2); len(b) >= 1 && b[0] == ':' && (len(b) < 2 || b[1] != ':') {
		lx.readRune()
		lx.stream <- token.Token{Kind: token.LABEL, Pos: startPos, Name: name}
		return
	}
	lx.stream <- token.Token{Kind: token.IDENT, Pos: startPos, Name: name}
}

func (lx *Lexer) lexNumber() {
	startPos := lx.pos()
	var buf bytes.Buffer
	isFloat := false

	first, _ := lx.readRune()
	buf.WriteRune(first)
	if first == '0' {
		if r, eof := lx.peekByte(); !eof && (r == 'x' || r == 'X') {
			lx.readRune()
			buf.WriteRune(r)
			for {
				r, eof := lx.readRune()
				if eof || !isHexDigit(r) {
					if !eof {
						lx.unreadRune()
					}
					break
				}
				buf.WriteRune(r)
			}
			lx.emitInt(startPos, buf.String(), 0)
			return
		}
	}
	for {
		// Peek instead of read-then-unread: a '.' needs a second byte of
		// lookahead, and only one ReadRune can be undone.
		b, _ := lx.rdr.Peek(2)
		if len(b) == 0 {
			break
		}
		c := rune(b[0])
		if c == '.' {
			if len(b) < 2 || !isDigit(rune(b[1])) {
				break
			}
			isFloat = true
		} else if !isDigit(c) {
			break
		}
		lx.readRune()
		buf.WriteRune(c)
	}
	if isFloat {
		lx.emitRational(startPos, buf.String())
	} else {
		lx.emitInt(startPos, buf.String(), 10)
	}
}

func (lx *Lexer) emitInt(pos token.Position, lexeme string, base int) {
	v := new(big.Int)
	s := lexeme
	if base == 0 {
		s = lexeme[2:]
		base = 16
	}
	if _, ok := v.SetString(s, base); !ok {
		lx.error("malformed integer literal " + lexeme)
		return
	}
	lx.stream <- token.Token{Kind: token.NUMBER, Pos: pos, IntVal: v}
}

func (lx *Lexer) emitRational(pos token.Position, lexeme string) {
	dot := bytes.IndexByte([]byte(lexeme), '.')
	whole, frac := lexeme[:dot], lexeme[dot+1:]
	num := new(big.Int)
	num.SetString(whole+frac, 10)
	den := int64(1)
	for range frac {
		den *= 10
	}
	lx.stream <- token.Token{Kind: token.RATIONAL, Pos: pos, RatVal: token.NewRational(num.Int64(), den)}
}

func (lx *Lexer) lexString() {
	startPos := lx.pos()
	var buf bytes.Buffer
	lx.readRune() // opening quote
	for {
		r, eof := lx.readRune()
		if eof {
			lx.error("unterminated string literal")
		}
		if r == '"' {
			break
		}
		if r == '\\' {
			esc, eof2 := lx.readRune()
			if eof2 {
				lx.error("unterminated string literal")
			}
			buf.WriteRune(decodeEscape(esc))
			continue
		}
		buf.WriteRune(r)
	}
	lx.stream <- token.Token{Kind: token.STRING, Pos: startPos, StrVal: buf.String()}
}

func (lx *Lexer) lexChar() {
	startPos := lx.pos()
	lx.readRune() // opening quote
	r, eof := lx.readRune()
	if eof {
		lx.error("unterminated char literal")
	}
	if r == '\\' {
		esc, eof2 := lx.readRune()
		if eof2 {
			lx.error("unterminated char literal")
		}
		r = decodeEscape(esc)
	}
	if closing, eof3 := lx.readRune(); eof3 || closing != '\'' {
		lx.error("malformed char literal")
	}
	lx.stream <- token.Token{Kind: token.NUMBER, Pos: startPos, IntVal: big.NewInt(int64(r))}
}

func decodeEscape(r rune) rune {
	switch r {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '0':
		return 0
	case '\\', '\'', '"':
		return r
	default:
		return r
	}
}

func (lx *Lexer) lexPunct(first rune) {
	pos := lx.pos()
	two := func(second rune, kind2 token.Kind, kind1 token.Kind) {
		if r, eof := lx.peekByte(); !eof && r == second {
			lx.readRune()
			lx.stream <- token.Token{Kind: kind2, Pos: pos}
			return
		}
		lx.stream <- token.Token{Kind: kind1, Pos: pos}
	}
	switch first {
	case '"':
		lx.unreadRune()
		lx.lexString()
	case '\'':
		lx.unreadRune()
		lx.lexChar()
	case '/':
		if r, eof := lx.peekByte(); !eof && r == '/' {
			lx.readRune()
			for {
				r, eof := lx.readRune()
				if eof || r == '\n' {
					break
				}
			}
			return
		}
		if r, eof := lx.peekByte(); !eof && r == '*' {
			lx.readRune()
			for {
				r, eof := lx.readRune()
				if eof {
					lx.error("unterminated block comment")
				}
				if r == '*' {
					if r2, eof2 := lx.peekByte(); !eof2 && r2 == '/' {
						lx.readRune()
						return
					}
				}
			}
		}
		two('=', token.QUO_ASSIGN, token.QUO)
	case '+':
		if r, eof := lx.peekByte(); !eof && r == '+' {
			lx.readRune()
			lx.stream <- token.Token{Kind: token.INC, Pos: pos}
			return
		}
		two('=', token.ADD_ASSIGN, token.ADD)
	case '-':
		if r, eof := lx.peekByte(); !eof && r == '-' {
			lx.readRune()
			lx.stream <- token.Token{Kind: token.DEC, Pos: pos}
			return
		}
		two('=', token.SUB_ASSIGN, token.SUB)
	case '*':
		two('=', token.MUL_ASSIGN, token.MUL)
	case '%':
		two('=', token.REM_ASSIGN, token.REM)
	case '^':
		two('=', token.XOR_ASSIGN, token.XOR)
	case '~':
		lx.stream <- token.Token{Kind: token.BNOT, Pos: pos}
	case '?':
		lx.stream <- token.Token{Kind: token.QUESTION, Pos: pos}
	case ',':
		lx.stream <- token.Token{Kind: token.COMMA, Pos: pos}
	case ';':
		lx.stream <- token.Token{Kind: token.SEMICOLON, Pos: pos}
	case '(':
		lx.stream <- token.Token{Kind: token.LPAREN, Pos: pos}
	case ')':
		lx.stream <- token.Token{Kind: token.RPAREN, Pos: pos}
	case '{':
		lx.stream <- token.Token{Kind: token.LBRACE, Pos: pos}
	case '}':
		lx.stream <- token.Token{Kind: token.RBRACE, Pos: pos}
	case '[':
		lx.stream <- token.Token{Kind: token.LBRACK, Pos: pos}
	case ']':
		lx.stream <- token.Token{Kind: token.RBRACK, Pos: pos}
	case '.':
		if r, eof := lx.peekByte(); !eof && r == '.' {
			lx.readRune()
			if r2, eof2 := lx.peekByte(); !eof2 && r2 == '.' {
				lx.readRune()
				lx.stream <- token.Token{Kind: token.ELLIPSIS, Pos: pos}
				return
			}
			lx.error("malformed '..' - range operator is not supported")
			return
		}
		lx.stream <- token.Token{Kind: token.PERIOD, Pos: pos}
	case ':':
		if r, eof := lx.peekByte(); !eof && r == ':' {
			lx.readRune()
			lx.stream <- token.Token{Kind: token.DBLCOLON, Pos: pos}
			return
		}
		lx.stream <- token.Token{Kind: token.COLON, Pos: pos}
	case '!':
		two('=', token.NEQ, token.NOT)
	case '=':
		two('=', token.EQL, token.ASSIGN)
	case '<':
		if r, eof := lx.peekByte(); !eof && r == '<' {
			lx.readRune()
			two('=', token.SHL_ASSIGN, token.SHL)
			return
		}
		two('=', token.LEQ, token.LSS)
	case '>':
		if r, eof := lx.peekByte(); !eof && r == '>' {
			lx.readRune()
			if r2, eof2 := lx.peekByte(); !eof2 && r2 == '>' {
				lx.readRune()
				two('=', token.USHR_ASSIGN, token.USHR)
				return
			}
			two('=', token.SHR_ASSIGN, token.SHR)
			return
		}
		two('=', token.GEQ, token.GTR)
	case '&':
		if r, eof := lx.peekByte(); !eof && r == '&' {
			lx.readRune()
			lx.stream <- token.Token{Kind: token.LAND, Pos: pos}
			return
		}
		two('=', token.AND_ASSIGN, token.AND)
	case '|':
		if r, eof := lx.peekByte(); !eof && r == '|' {
			lx.readRune()
			lx.stream <- token.Token{Kind: token.LOR, Pos: pos}
			return
		}
		two('=', token.OR_ASSIGN, token.OR)
	default:
		lx.error("unexpected character in input")
	}
}
