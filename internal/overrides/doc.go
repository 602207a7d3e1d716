// Package overrides gathers the named boolean values callers use to switch
// flags on and off: override files in several formats and NAME=BOOL
// assignments from the command line.
//
// Sources are merged into a config.Overrides in the order given, so a later
// file or assignment replaces an earlier value for the same name:
//
//	ov, err := overrides.Collect(ctx, overrides.NewReader(), []string{"site.hcl", "run.env"}, []string{"ALLOW_RUNOFF=false"})
//
// File formats are chosen by extension:
//
//   - .hcl         top-level attributes, ALLOW_RUNOFF = true
//   - .yaml, .yml  a flat mapping, ALLOW_RUNOFF: true
//   - .env         dotenv lines, ALLOW_RUNOFF=true
//   - .h           an existing options header; #define is true, #undef false
package overrides
