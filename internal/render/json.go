package render

import (
	"encoding/json"
	"io"

	"github.com/specialistvlad/pkgopts/internal/flagset"
)

type jsonDocument struct {
	Package string     `json:"package"`
	Master  jsonMaster `json:"master"`
	Flags   []jsonFlag `json:"flags"`
	Enabled []string   `json:"enabled"`
}

type jsonMaster struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

type jsonFlag struct {
	Name        string `json:"name"`
	Enabled     bool   `json:"enabled"`
	Source      string `json:"source"`
	ImpliedBy   string `json:"implied_by,omitempty"`
	Description string `json:"description,omitempty"`
}

// JSON writes the resolved configuration as an indented JSON document.
func JSON(w io.Writer, res *flagset.Resolved) error {
	schema := res.Schema()
	doc := jsonDocument{
		Package: schema.Package(),
		Master:  jsonMaster{Name: schema.Master(), Enabled: res.Master()},
		Flags:   make([]jsonFlag, 0, len(res.Names())),
		Enabled: res.Enabled(),
	}
	if doc.Enabled == nil {
		doc.Enabled = []string{}
	}

	for _, name := range res.Names() {
		enabled, err := res.IsEnabled(name)
		if err != nil {
			return err
		}
		prov, err := res.Source(name)
		if err != nil {
			return err
		}
		flag, _ := schema.Flag(name)
		doc.Flags = append(doc.Flags, jsonFlag{
			Name:        name,
			Enabled:     enabled,
			Source:      prov.Source.String(),
			ImpliedBy:   prov.By,
			Description: flag.Description,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
