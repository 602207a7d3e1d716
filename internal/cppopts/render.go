package cppopts

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/specialistvlad/pkgopts/internal/config"
	"github.com/specialistvlad/pkgopts/internal/flagset"
)

const rule = "C *==================================================================*"

// GuardName derives an include guard from a header file name, e.g.
// "EXF_OPTIONS.h" becomes "EXF_OPTIONS_H".
func GuardName(header string) string {
	return strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return unicode.ToUpper(r)
		}
		return '_'
	}, header)
}

// CommentLines splits text into the lines of a comment block, trimmed of
// trailing blanks. Empty lines are dropped so the block stays attached to
// the directive below it.
func CommentLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Render writes the options header of pkg for a resolved configuration.
// Every declared flag appears exactly once, as #define when enabled and
// #undef otherwise, in declaration order.
func Render(w io.Writer, pkg *config.Package, res *flagset.Resolved) error {
	bw := bufio.NewWriter(w)
	p := func(format string, args ...any) {
		fmt.Fprintf(bw, format, args...)
		bw.WriteByte('\n')
	}

	header := pkg.Header
	guard := GuardName(header)

	p("CBOP")
	p("C !ROUTINE: %s", header)
	p("C !INTERFACE:")
	p("C #include %q", header)
	p("")
	p("C !DESCRIPTION:")
	p(rule)
	if desc := strings.Join(strings.Fields(pkg.Description), " "); desc != "" {
		p("C | CPP options file for %s package:", desc)
	} else {
		p("C | CPP options file for %s package:", strings.ToUpper(pkg.Name))
	}
	p("C | Control which optional features to compile in this package code.")
	if pkg.SourceFile != "" {
		p("C | Generated by pkgopts from %s. Do not edit.", pkg.SourceFile)
	} else {
		p("C | Generated by pkgopts. Do not edit.")
	}
	p(rule)
	p("CEOP")
	p("")
	p("#ifndef %s", guard)
	p("#define %s", guard)
	for _, inc := range pkg.Includes {
		p("#include %q", inc)
	}
	p("")
	p("#ifdef %s", pkg.Master)
	if !res.Master() {
		p("C %s was switched off when this file was generated.", pkg.Master)
	}
	p("")

	schema := res.Schema()
	for _, name := range res.Names() {
		enabled, err := res.IsEnabled(name)
		if err != nil {
			return err
		}
		if f, ok := schema.Flag(name); ok {
			for _, line := range CommentLines(f.Description) {
				p("C %s", line)
			}
		}
		if enabled {
			p("#define %s", name)
		} else {
			p("#undef %s", name)
		}
	}

	p("")
	p("#endif /* %s */", pkg.Master)
	p("#endif /* %s */", guard)

	return bw.Flush()
}
