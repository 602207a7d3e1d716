// Package cppopts reads and writes the CPP options headers (FOO_OPTIONS.h)
// that gate optional code of a model package at compile time.
//
// Only the shape used by options headers is understood: a prolog comment,
// an include guard, #include lines, one #ifdef on the master switch and a
// run of #define/#undef lines with Fortran comment lines above them.
package cppopts
