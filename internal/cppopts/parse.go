package cppopts

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Header is the content of a CPP options header relevant to option flags.
type Header struct {
	// Routine is the name given on the "!ROUTINE:" prolog line, if any.
	Routine string
	// Description is the "C |" text of the prolog, joined with spaces.
	Description string
	// Guard is the include guard macro, e.g. EXF_OPTIONS_H.
	Guard string
	// Master is the macro of the #ifdef wrapping the flags, e.g. ALLOW_EXF.
	Master   string
	Includes []string
	// Defines lists every flag in file order.
	Defines []Define
}

// Define is one #define or #undef of a flag.
type Define struct {
	Name        string
	Enabled     bool
	Description string
	Line        int
}

// Values returns the on/off state of every flag in the header.
func (h *Header) Values() map[string]bool {
	values := make(map[string]bool, len(h.Defines))
	for _, d := range h.Defines {
		values[d.Name] = d.Enabled
	}
	return values
}

// Names returns the flag names in file order.
func (h *Header) Names() []string {
	names := make([]string, 0, len(h.Defines))
	for _, d := range h.Defines {
		names = append(names, d.Name)
	}
	return names
}

// ParseError reports a malformed directive.
type ParseError struct {
	File string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
}

// ParseHeader reads an options header. filename is used in errors only.
//
// Comment lines directly above a directive become its description; a blank
// line or a "** section **" heading clears the pending comment. A later
// directive for the same flag replaces the earlier one, as cpp would.
func ParseHeader(r io.Reader, filename string) (*Header, error) {
	h := &Header{}
	p := &headerParser{h: h, file: filename, index: make(map[string]int)}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		p.line++
		if err := p.parseLine(sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return h, nil
}

type headerParser struct {
	h       *Header
	file    string
	line    int
	index   map[string]int
	comment []string

	inProlog  bool
	guardOpen bool
	depth     int
}

func (p *headerParser) errorf(format string, args ...any) error {
	return &ParseError{File: p.file, Line: p.line, Msg: fmt.Sprintf(format, args...)}
}

func (p *headerParser) parseLine(raw string) error {
	line := strings.TrimRight(raw, " \t\r")

	if isComment(line) {
		p.parseComment(line)
		return nil
	}

	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		p.comment = nil
		return nil
	}
	if !strings.HasPrefix(trimmed, "#") {
		return p.errorf("unexpected statement %q", trimmed)
	}

	directive, arg := splitDirective(trimmed)
	defer func() { p.comment = nil }()

	switch directive {
	case "include":
		p.h.Includes = append(p.h.Includes, strings.Trim(arg, `"<>`))
	case "ifndef":
		if p.h.Guard == "" && p.depth == 0 {
			p.h.Guard = arg
			p.guardOpen = true
		}
		p.depth++
	case "ifdef":
		if p.h.Master == "" {
			p.h.Master = arg
		}
		p.depth++
	case "if":
		p.depth++
	case "else", "elif":
	case "endif":
		if p.depth == 0 {
			return p.errorf("#endif without #if")
		}
		p.depth--
	case "define":
		name, _, _ := strings.Cut(arg, " ")
		if name == "" {
			return p.errorf("#define without a name")
		}
		if p.guardOpen && name == p.h.Guard {
			p.guardOpen = false
			return nil
		}
		p.record(name, true)
	case "undef":
		if arg == "" {
			return p.errorf("#undef without a name")
		}
		p.record(arg, false)
	default:
		return p.errorf("unsupported directive #%s", directive)
	}
	return nil
}

func (p *headerParser) parseComment(line string) {
	text := strings.TrimSpace(line[1:])
	switch {
	case text == "BOP":
		p.inProlog = true
		return
	case text == "EOP":
		p.inProlog = false
		p.comment = nil
		return
	}

	if p.inProlog {
		if rest, ok := strings.CutPrefix(text, "!ROUTINE:"); ok {
			p.h.Routine = strings.TrimSpace(rest)
		}
		if rest, ok := strings.CutPrefix(text, "|"); ok {
			p.h.Description = strings.TrimSpace(p.h.Description + " " + strings.TrimSpace(rest))
		}
		return
	}

	if strings.HasPrefix(text, "**") || text == "" {
		p.comment = nil
		return
	}
	p.comment = append(p.comment, text)
}

func (p *headerParser) record(name string, enabled bool) {
	d := Define{
		Name:        name,
		Enabled:     enabled,
		Description: strings.Join(p.comment, " "),
		Line:        p.line,
	}
	if i, ok := p.index[name]; ok {
		if d.Description == "" {
			d.Description = p.h.Defines[i].Description
		}
		p.h.Defines[i] = d
		return
	}
	p.index[name] = len(p.h.Defines)
	p.h.Defines = append(p.h.Defines, d)
}

// isComment reports whether a line is a fixed-form Fortran comment: a
// 'C', 'c' or '!' in the first column.
func isComment(line string) bool {
	if line == "" {
		return false
	}
	switch line[0] {
	case 'C', 'c', '!':
		return true
	}
	return false
}

// splitDirective splits "#  define  NAME value" into ("define", "NAME value").
func splitDirective(s string) (string, string) {
	s = strings.TrimSpace(strings.TrimPrefix(s, "#"))
	if i := strings.Index(s, "/*"); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	directive, arg, _ := strings.Cut(s, " ")
	if i := strings.IndexByte(directive, '\t'); i >= 0 {
		directive, arg = directive[:i], directive[i+1:]+" "+arg
	}
	return directive, strings.Join(strings.Fields(arg), " ")
}
