package flagset

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bulkDeclaration() Declaration {
	return Declaration{
		Package: "exf",
		Master:  "ALLOW_EXF",
		Flags: []Flag{
			{Name: "bulkformulae"},
			{Name: "largeyeager04"},
		},
		Dependencies: []Dependency{{From: "largeyeager04", To: "bulkformulae"}},
	}
}

func TestResolve_DependencyClosure(t *testing.T) {
	t.Parallel()

	resolved, err := Resolve(true, map[string]bool{"largeyeager04": true}, bulkDeclaration())
	require.NoError(t, err)

	expected := map[string]bool{"bulkformulae": true, "largeyeager04": true}
	if diff := cmp.Diff(expected, resolved.Map()); diff != "" {
		t.Errorf("resolved state mismatch (-want +got):\n%s", diff)
	}

	prov, err := resolved.Source("bulkformulae")
	require.NoError(t, err)
	assert.Equal(t, Provenance{Source: SourceImplied, By: "largeyeager04"}, prov)

	prov, err = resolved.Source("largeyeager04")
	require.NoError(t, err)
	assert.Equal(t, SourceRequested, prov.Source)
}

func TestResolve_MasterSwitchOff(t *testing.T) {
	t.Parallel()

	resolved, err := Resolve(false, map[string]bool{"largeyeager04": true}, bulkDeclaration())
	require.NoError(t, err)

	expected := map[string]bool{"bulkformulae": false, "largeyeager04": false}
	if diff := cmp.Diff(expected, resolved.Map()); diff != "" {
		t.Errorf("resolved state mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, resolved.Master())
	assert.Empty(t, resolved.Enabled())

	prov, err := resolved.Source("bulkformulae")
	require.NoError(t, err)
	assert.Equal(t, SourceMasterOff, prov.Source)
}

func TestResolve_MasterSwitchOffIgnoresUnknownAndDefaults(t *testing.T) {
	t.Parallel()

	decl := Declaration{
		Flags: []Flag{{Name: "runoff", Default: true}},
	}
	resolved, err := Resolve(false, map[string]bool{"evaporation": true}, decl)
	require.NoError(t, err)

	on, err := resolved.IsEnabled("runoff")
	require.NoError(t, err)
	assert.False(t, on, "a default-on flag is still off when the master switch is off")
}

func TestResolve_Conflict(t *testing.T) {
	t.Parallel()

	decl := Declaration{
		Flags:     []Flag{{Name: "atmWind"}, {Name: "atmTemp"}},
		Conflicts: []Conflict{{A: "atmWind", B: "atmTemp"}},
	}

	resolved, err := Resolve(true, map[string]bool{"atmWind": true, "atmTemp": true}, decl)
	require.Error(t, err)
	assert.Nil(t, resolved)
	assert.ErrorIs(t, err, ErrConflictingFlags)

	var conflictErr *ConflictingFlagsError
	require.True(t, errors.As(err, &conflictErr))
	assert.Equal(t, "atmWind", conflictErr.A)
	assert.Equal(t, "atmTemp", conflictErr.B)
	assert.EqualError(t, err, "conflicting flags: atmWind and atmTemp cannot both be enabled")
}

func TestResolve_ConflictReachedThroughClosure(t *testing.T) {
	t.Parallel()

	decl := Declaration{
		Flags: []Flag{
			{Name: "readEvap"},
			{Name: "bulk"},
			{Name: "ly04"},
		},
		Dependencies: []Dependency{{From: "ly04", To: "bulk"}},
		Conflicts:    []Conflict{{A: "readEvap", B: "bulk"}},
	}

	_, err := Resolve(true, map[string]bool{"readEvap": true, "ly04": true}, decl)
	var conflictErr *ConflictingFlagsError
	require.True(t, errors.As(err, &conflictErr))
	assert.Equal(t, ConflictingFlagsError{A: "readEvap", B: "bulk"}, *conflictErr)

	// Without the implying flag there is no conflict.
	resolved, err := Resolve(true, map[string]bool{"readEvap": true}, decl)
	require.NoError(t, err)
	assert.Equal(t, []string{"readEvap"}, resolved.Enabled())
}

func TestResolve_ConflictOnDefaults(t *testing.T) {
	t.Parallel()

	decl := Declaration{
		Flags:     []Flag{{Name: "a", Default: true}, {Name: "b", Default: true}},
		Conflicts: []Conflict{{A: "a", B: "b"}},
	}
	_, err := Resolve(true, nil, decl)
	assert.ErrorIs(t, err, ErrConflictingFlags)

	resolved, err := Resolve(true, map[string]bool{"b": false}, decl)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, resolved.Enabled())
}

func TestResolve_FirstDeclaredConflictWins(t *testing.T) {
	t.Parallel()

	decl := Declaration{
		Flags: []Flag{{Name: "a"}, {Name: "b"}, {Name: "c"}},
		Conflicts: []Conflict{
			{A: "b", B: "c"},
			{A: "a", B: "b"},
		},
	}
	requested := map[string]bool{"a": true, "b": true, "c": true}
	for range 10 {
		_, err := Resolve(true, requested, decl)
		var conflictErr *ConflictingFlagsError
		require.True(t, errors.As(err, &conflictErr))
		assert.Equal(t, "b", conflictErr.A)
		assert.Equal(t, "c", conflictErr.B)
	}
}

func TestResolve_UnknownFlag(t *testing.T) {
	t.Parallel()

	decl := Declaration{Flags: []Flag{{Name: "runoff"}}}

	resolved, err := Resolve(true, map[string]bool{"evaporation": true}, decl)
	require.Error(t, err)
	assert.Nil(t, resolved)

	var unknownErr *UnknownFlagError
	require.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, "evaporation", unknownErr.Name)
	assert.EqualError(t, err, `unknown flag: "evaporation"`)
}

func TestResolve_SeveralUnknownFlagsAreAllReported(t *testing.T) {
	t.Parallel()

	decl := Declaration{Flags: []Flag{{Name: "runoff"}}}
	_, err := Resolve(true, map[string]bool{"zeta": true, "alpha": false, "runoff": true}, decl)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownFlag)
	assert.Equal(t, "unknown flag: \"alpha\"\nunknown flag: \"zeta\"", err.Error())
}

func TestResolve_RequestedFalseIsForcedOnByDependent(t *testing.T) {
	t.Parallel()

	resolved, err := Resolve(true, map[string]bool{"largeyeager04": true, "bulkformulae": false}, bulkDeclaration())
	require.NoError(t, err)

	on, err := resolved.IsEnabled("bulkformulae")
	require.NoError(t, err)
	assert.True(t, on)
}

func TestResolve_TransitiveChain(t *testing.T) {
	t.Parallel()

	// a -> b -> c -> d, plus an unrelated e.
	decl := Declaration{
		Flags: []Flag{{Name: "d"}, {Name: "c"}, {Name: "b"}, {Name: "a"}, {Name: "e"}},
		Dependencies: []Dependency{
			{From: "a", To: "b"},
			{From: "b", To: "c"},
			{From: "c", To: "d"},
		},
	}
	resolved, err := Resolve(true, map[string]bool{"a": true}, decl)
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "c", "b", "a"}, resolved.Enabled())

	prov, err := resolved.Source("d")
	require.NoError(t, err)
	assert.Equal(t, Provenance{Source: SourceImplied, By: "c"}, prov)
}

func TestResolve_Defaults(t *testing.T) {
	t.Parallel()

	decl := Declaration{
		Flags: []Flag{
			{Name: "wind", Default: true},
			{Name: "runoff"},
		},
	}
	resolved, err := Resolve(true, nil, decl)
	require.NoError(t, err)
	assert.True(t, resolved.Master())
	assert.Equal(t, []string{"wind"}, resolved.Enabled())
	assert.Equal(t, []string{"wind", "runoff"}, resolved.Names())

	prov, err := resolved.Source("wind")
	require.NoError(t, err)
	assert.Equal(t, SourceDefault, prov.Source)
}

func TestResolved_IsEnabledUnknown(t *testing.T) {
	t.Parallel()

	resolved, err := Resolve(true, nil, bulkDeclaration())
	require.NoError(t, err)

	_, err = resolved.IsEnabled("EXF_READ_EVAP")
	assert.ErrorIs(t, err, ErrUnknownFlag)
	_, err = resolved.Source("EXF_READ_EVAP")
	assert.ErrorIs(t, err, ErrUnknownFlag)
}

func TestResolved_MapIsACopy(t *testing.T) {
	t.Parallel()

	resolved, err := Resolve(true, nil, bulkDeclaration())
	require.NoError(t, err)

	m := resolved.Map()
	m["bulkformulae"] = true

	on, err := resolved.IsEnabled("bulkformulae")
	require.NoError(t, err)
	assert.False(t, on, "mutating the returned map must not change the resolution")
}

func TestResolve_Deterministic(t *testing.T) {
	t.Parallel()

	decl := Declaration{
		Flags: []Flag{{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}, {Name: "e", Default: true}},
		Dependencies: []Dependency{
			{From: "a", To: "b"},
			{From: "a", To: "c"},
			{From: "c", To: "d"},
		},
	}
	requested := map[string]bool{"a": true, "e": false}

	first, err := Resolve(true, requested, decl)
	require.NoError(t, err)
	for range 50 {
		again, err := Resolve(true, requested, decl)
		require.NoError(t, err)
		assert.True(t, first.Equal(again))
		assert.Equal(t, first.Enabled(), again.Enabled())
	}
}

func TestResolve_ClosureHoldsForEveryEdge(t *testing.T) {
	t.Parallel()

	decl := Declaration{
		Flags: []Flag{{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}, {Name: "e"}},
		Dependencies: []Dependency{
			{From: "a", To: "c"},
			{From: "b", To: "c"},
			{From: "c", To: "e"},
			{From: "d", To: "a"},
		},
	}
	names := []string{"a", "b", "c", "d", "e"}

	// Every combination of requested "on" flags.
	for mask := range 1 << len(names) {
		requested := make(map[string]bool)
		for i, name := range names {
			if mask&(1<<i) != 0 {
				requested[name] = true
			}
		}
		t.Run(fmt.Sprintf("mask=%05b", mask), func(t *testing.T) {
			resolved, err := Resolve(true, requested, decl)
			require.NoError(t, err)
			state := resolved.Map()
			for _, d := range decl.Dependencies {
				if state[d.From] {
					assert.True(t, state[d.To], "%s is on so %s must be on", d.From, d.To)
				}
			}
			for name := range requested {
				assert.True(t, state[name], "requested flag %s must stay on", name)
			}
		})
	}
}

func TestSchema_ConcurrentResolve(t *testing.T) {
	t.Parallel()

	schema, err := NewSchema(bulkDeclaration())
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*Resolved, 64)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := schema.Resolve(true, map[string]bool{"largeyeager04": i%2 == 0})
			if err != nil {
				t.Errorf("resolve %d: %v", i, err)
				return
			}
			results[i] = r
		}(i)
	}
	wg.Wait()

	for i, r := range results {
		require.NotNil(t, r)
		expected := i%2 == 0
		on, err := r.IsEnabled("bulkformulae")
		require.NoError(t, err)
		assert.Equal(t, expected, on, "result %d", i)
	}
}

func TestResolved_Equal(t *testing.T) {
	t.Parallel()

	a, err := Resolve(true, nil, bulkDeclaration())
	require.NoError(t, err)
	b, err := Resolve(true, map[string]bool{"bulkformulae": false}, bulkDeclaration())
	require.NoError(t, err)
	c, err := Resolve(false, nil, bulkDeclaration())
	require.NoError(t, err)

	assert.True(t, a.Equal(b), "provenance is not part of equality")
	assert.False(t, a.Equal(c), "master state differs")
	assert.False(t, a.Equal(nil))
	var nilResolved *Resolved
	assert.True(t, nilResolved.Equal(nil))
}

func TestSource_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "default", SourceDefault.String())
	assert.Equal(t, "requested", SourceRequested.String())
	assert.Equal(t, "implied", SourceImplied.String())
	assert.Equal(t, "master-off", SourceMasterOff.String())
	assert.Equal(t, "unknown", Source(42).String())
}
