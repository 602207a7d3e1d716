package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/specialistvlad/pkgopts/internal/flagset"
)

// Text writes an aligned table of flags, their state and provenance.
func Text(w io.Writer, res *flagset.Resolved) error {
	schema := res.Schema()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "package %s, master %s %s\n\n", schema.Package(), schema.Master(), onOff(res.Master()))
	fmt.Fprintln(tw, "FLAG\tSTATE\tSOURCE")
	for _, name := range res.Names() {
		enabled, err := res.IsEnabled(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", name, onOff(enabled), provenance(res, name))
	}
	return tw.Flush()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
