package ir

import (
	"strings"

	"github.com/teranos/declgen/errors"
)

// TypeRef is a parsed type expression: a name with optional type arguments.
// The name "*" is a star projection.
type TypeRef struct {
	Name     string
	Args     []*TypeRef
	Nullable bool
}

// Star is the star projection.
const Star = "*"

// String renders the expression back in feed syntax.
func (r *TypeRef) String() string {
	if r == nil {
		return ""
	}
	var b strings.Builder
	r.write(&b)
	return b.String()
}

func (r *TypeRef) write(b *strings.Builder) {
	b.WriteString(r.Name)
	if len(r.Args) > 0 {
		b.WriteByte('<')
		for i, a := range r.Args {
			if i > 0 {
				b.WriteByte(',')
			}
			a.write(b)
		}
		b.WriteByte('>')
	}
	if r.Nullable {
		b.WriteByte('?')
	}
}

// Names returns every identifier referenced by the expression, outer first.
func (r *TypeRef) Names() []string {
	var out []string
	var walk func(*TypeRef)
	walk = func(t *TypeRef) {
		if t.Name != Star {
			out = append(out, t.Name)
		}
		for _, a := range t.Args {
			walk(a)
		}
	}
	walk(r)
	return out
}

// WithNullable returns a copy of r with the nullable flag set.
func (r *TypeRef) WithNullable(nullable bool) *TypeRef {
	c := *r
	c.Nullable = nullable
	return &c
}

// ParseTypeRef parses a type expression such as
// "yfiles.collections.IMap<K,yfiles.collections.IList<V?>>" or "T[]".
func ParseTypeRef(expr string) (*TypeRef, error) {
	p := &refParser{src: expr}
	p.skipSpace()
	ref, err := p.parse()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, errors.Newf("unexpected %q at offset %d in %q", p.src[p.pos:], p.pos, expr)
	}
	return ref, nil
}

type refParser struct {
	src string
	pos int
}

func (p *refParser) parse() (*TypeRef, error) {
	// variance annotations are part of the declaration, not the reference
	for _, v := range []string{"out ", "in "} {
		if strings.HasPrefix(p.src[p.pos:], v) {
			p.pos += len(v)
			p.skipSpace()
		}
	}

	start := p.pos
	if p.peek() == '*' {
		p.pos++
	} else {
		for p.pos < len(p.src) && isNameByte(p.src[p.pos]) {
			p.pos++
		}
	}
	if start == p.pos {
		return nil, errors.Newf("expected a type name at offset %d in %q", p.pos, p.src)
	}
	ref := &TypeRef{Name: p.src[start:p.pos]}

	p.skipSpace()
	if p.peek() == '<' {
		p.pos++
		for {
			p.skipSpace()
			arg, err := p.parse()
			if err != nil {
				return nil, err
			}
			ref.Args = append(ref.Args, arg)
			p.skipSpace()
			switch p.peek() {
			case ',':
				p.pos++
				continue
			case '>':
				p.pos++
			default:
				return nil, errors.Newf("unterminated type arguments in %q", p.src)
			}
			break
		}
	}

	for {
		p.skipSpace()
		switch {
		case p.peek() == '?':
			p.pos++
			ref.Nullable = true
		case strings.HasPrefix(p.src[p.pos:], "[]"):
			p.pos += 2
			ref = &TypeRef{Name: "Array", Args: []*TypeRef{ref}}
		default:
			return ref, nil
		}
	}
}

func (p *refParser) peek() byte {
	if p.pos < len(p.src) {
		return p.src[p.pos]
	}
	return 0
}

func (p *refParser) skipSpace() {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
}

func isNameByte(c byte) bool {
	return c == '_' || c == '.' || c == '$' ||
		c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
