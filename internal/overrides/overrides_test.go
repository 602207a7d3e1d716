package overrides

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/pkgopts/internal/ctxlog"
	"github.com/specialistvlad/pkgopts/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBool(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"true", "TRUE", "1", "t", "on", "Yes", " y "} {
		v, err := ParseBool(s)
		require.NoError(t, err, s)
		assert.True(t, v, s)
	}
	for _, s := range []string{"false", "0", "F", "off", "NO", "n"} {
		v, err := ParseBool(s)
		require.NoError(t, err, s)
		assert.False(t, v, s)
	}

	_, err := ParseBool("maybe")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestParseAssignment(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in        string
		wantName  string
		wantValue bool
		wantErr   error
	}{
		{in: "ALLOW_RUNOFF=true", wantName: "ALLOW_RUNOFF", wantValue: true},
		{in: "ALLOW_RUNOFF=off", wantName: "ALLOW_RUNOFF", wantValue: false},
		{in: " EXF_READ_EVAP = 0", wantName: "EXF_READ_EVAP", wantValue: false},
		{in: "ALLOW_ATM_WIND", wantName: "ALLOW_ATM_WIND", wantValue: true},
		{in: "=true", wantErr: ErrInvalidAssignment},
		{in: "ALLOW_RUNOFF=perhaps", wantErr: ErrInvalidValue},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			name, value, err := ParseAssignment(tc.in)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantName, name)
			assert.Equal(t, tc.wantValue, value)
		})
	}
}

func TestReader_Formats(t *testing.T) {
	t.Parallel()

	dir := testutil.WriteFiles(t, map[string]string{
		"a.hcl":  "ALLOW_RUNOFF = true\nALLOW_EXF = false\n",
		"b.yaml": "ALLOW_RUNOFF: false\nEXF_READ_EVAP: \"yes\"\n",
		"c.yml":  "ALLOW_ATM_WIND: true\n",
		"d.env":  "# site defaults\nALLOW_ATM_TEMP=1\nexport EXF_READ_EVAP=off\n",
		"e.h":    "#ifdef ALLOW_EXF\n#define ALLOW_BULKFORMULAE\n#undef ALLOW_RUNOFF\n#endif\n",
	})

	testCases := []struct {
		file string
		want map[string]bool
	}{
		{file: "a.hcl", want: map[string]bool{"ALLOW_RUNOFF": true, "ALLOW_EXF": false}},
		{file: "b.yaml", want: map[string]bool{"ALLOW_RUNOFF": false, "EXF_READ_EVAP": true}},
		{file: "c.yml", want: map[string]bool{"ALLOW_ATM_WIND": true}},
		{file: "d.env", want: map[string]bool{"ALLOW_ATM_TEMP": true, "EXF_READ_EVAP": false}},
		{file: "e.h", want: map[string]bool{"ALLOW_BULKFORMULAE": true, "ALLOW_RUNOFF": false}},
	}
	r := NewReader()
	for _, tc := range testCases {
		t.Run(tc.file, func(t *testing.T) {
			t.Parallel()
			got, err := r.ReadOverrides(ctxlog.Discard(), filepath.Join(dir, tc.file))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReader_Errors(t *testing.T) {
	t.Parallel()

	dir := testutil.WriteFiles(t, map[string]string{
		"bad.toml":  "ALLOW_RUNOFF = true\n",
		"bad.yaml":  "ALLOW_RUNOFF: 3\n",
		"bad2.yaml": "ALLOW_RUNOFF: [\n",
		"bad.env":   "ALLOW_RUNOFF=sometimes\n",
		"bad.hcl":   "ALLOW_RUNOFF = \n",
		"bad.h":     "#pragma once\n",
	})

	testCases := []struct {
		file    string
		wantErr error
	}{
		{file: "bad.toml", wantErr: ErrUnsupportedFormat},
		{file: "bad.yaml", wantErr: ErrInvalidValue},
		{file: "bad2.yaml", wantErr: ErrFailedToParse},
		{file: "bad.env", wantErr: ErrInvalidValue},
		{file: "bad.hcl", wantErr: ErrFailedToParse},
		{file: "bad.h", wantErr: ErrFailedToParse},
		{file: "missing.hcl", wantErr: ErrFailedToReadFile},
	}
	r := NewReader()
	for _, tc := range testCases {
		t.Run(tc.file, func(t *testing.T) {
			t.Parallel()
			_, err := r.ReadOverrides(ctxlog.Discard(), filepath.Join(dir, tc.file))
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestReader_CancelledContext(t *testing.T) {
	t.Parallel()

	dir := testutil.WriteFiles(t, map[string]string{"a.yaml": "ALLOW_RUNOFF: true\n"})
	ctx, cancel := context.WithCancel(ctxlog.Discard())
	cancel()

	_, err := NewReader().ReadOverrides(ctx, filepath.Join(dir, "a.yaml"))
	assert.ErrorIs(t, err, ErrReadingCancelled)
	assert.True(t, errors.Is(err, context.Canceled))
}

type stubParser struct{}

func (stubParser) Parse(context.Context, []byte, string) (map[string]bool, error) {
	return map[string]bool{"FROM_CUSTOM": true}, nil
}

func (stubParser) SupportsFileExtension(ext string) bool { return supportsExt(ext, "cfg", "hcl") }

func TestReader_ExtraParsersFirst(t *testing.T) {
	t.Parallel()

	dir := testutil.WriteFiles(t, map[string]string{"a.hcl": "ALLOW_RUNOFF = true\n"})

	got, err := NewReader(stubParser{}).ReadOverrides(ctxlog.Discard(), filepath.Join(dir, "a.hcl"))
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"FROM_CUSTOM": true}, got)
}

func TestReader_CollectLaterWins(t *testing.T) {
	t.Parallel()

	dir := testutil.WriteFiles(t, map[string]string{
		"base.hcl":  "ALLOW_RUNOFF = true\nEXF_READ_EVAP = true\n",
		"site.yaml": "ALLOW_RUNOFF: false\n",
	})
	base := filepath.Join(dir, "base.hcl")
	site := filepath.Join(dir, "site.yaml")

	ov, err := Collect(ctxlog.Discard(), NewReader(), []string{base, site}, []string{"EXF_READ_EVAP=false", "ALLOW_EXF=off"})
	require.NoError(t, err)

	assert.Equal(t, []string{"ALLOW_EXF", "ALLOW_RUNOFF", "EXF_READ_EVAP"}, ov.Names())

	v, ok := ov.Get("ALLOW_RUNOFF")
	assert.True(t, ok)
	assert.False(t, v)
	assert.Equal(t, site, ov.Origin("ALLOW_RUNOFF"))

	v, _ = ov.Get("EXF_READ_EVAP")
	assert.False(t, v)
	assert.Equal(t, AssignmentOrigin, ov.Origin("EXF_READ_EVAP"))

	master, masterSet, requested := ov.Split("ALLOW_EXF")
	assert.True(t, masterSet)
	assert.False(t, master)
	assert.Equal(t, map[string]bool{"ALLOW_RUNOFF": false, "EXF_READ_EVAP": false}, requested)
}

func TestReader_CollectBadAssignment(t *testing.T) {
	t.Parallel()

	_, err := Collect(ctxlog.Discard(), NewReader(), nil, []string{"=1"})
	assert.ErrorIs(t, err, ErrInvalidAssignment)
}
