/*
Package floats provides approximate comparison and safe parsing of
IEEE-754 double-precision numbers.

Direct equality testing on floating-point results is unreliable after
arithmetic: 0.1 + 0.2 is not bit-for-bit equal to 0.3.
This package offers explicit, named alternatives that the caller opts
into: relative-error equality, absolute-error equality, safe string
parsing, and predicates for the special values NaN and infinity.

# Comparison

Two tolerance notions are supported, each with its own nominal type so
that the two tolerance-shaped arguments cannot be swapped silently at
a call site:

  - [Fraction] is a relative tolerance, a fraction of the operands'
    magnitude. [EqRelative] scales the tolerance by the average
    magnitude of its operands, so the same Fraction is meaningful for
    values near 1e-9 and values near 1e+9.
  - [Precision] is an absolute tolerance. [EqAbsolute] compares the
    raw difference against it regardless of operand magnitude.

[EqApproximate] and [NeqApproximate] are convenience forms of
[EqRelative] with a fixed tolerance of [DefaultFraction], one part per
million, the package's default notion of "practically equal" for
floating-point round-off noise.

Both relations are reflexive and symmetric but deliberately not
transitive: three pairwise-close values may not form a close chain
overall.
This is a documented property, not a defect; see the function
documentation for the exact guarantees.

# Parsing

[Parse] interprets the leading numeric prefix of a string as a
float64, the way a permissive scanner such as [strtod] does: leading
whitespace is skipped and trailing non-numeric content is ignored.
Absence is the sole failure signal.
A scan that succeeds but produces NaN or an infinity is also reported
as absent, so a present result is always finite.
[MustParse] is the panicking form for inputs known to be valid.

# Special Values

[NaN] and [Inf] return the canonical quiet NaN and positive infinity.
Negative infinity is -[Inf]; it is not separately named.
[IsNaN] is the only reliable test for NaN, which compares unequal to
itself under ordinary equality.
[IsFinite] reports whether a value is neither NaN nor an infinity.

# Errors

All functions are panic-free and pure, except [MustParse] which panics
by contract.
No function returns an error: the single failure-shaped outcome in the
package is [Parse] reporting absence, and its two causes (no numeric
prefix, or a non-finite result) are deliberately not distinguished.
Degenerate tolerance values are not rejected either; a negative
[Fraction] or [Precision] simply yields a comparison that no pair of
operands can satisfy.

[strtod]: https://en.cppreference.com/w/c/string/byte/strtof
*/
package floats
