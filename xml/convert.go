package xml

import "strconv"

// ToInt, ToUnsigned, ToInt64, ToUint64, ToBool, ToFloat, ToDouble
// implement the typed-conversion contract of spec.md §6: a strict,
// locale-independent parse of text or attribute values, reporting an
// error rather than silently defaulting. Callers that want the
// "swallow errors, use a default" behavior build it on top of these
// (Element.IntAttribute and friends, element.go).
//
// The contract is decimal or "0x"/"0X"-prefixed hex, never octal.
// strconv's base-0 inference treats a bare leading "0" as an octal
// prefix, which both misreads valid decimal text like "010" and "008"
// and rejects them outright, so the hex/decimal split is made
// explicitly here instead (mirroring tinyxml2's IsPrefixHex check at
// _examples/original_source/tinyxml2.cpp:689-698).

// intLiteralBase splits a sign, if any, from s and reports the base to
// parse the remainder in: 16 with the "0x"/"0X" prefix stripped, 10
// otherwise. The sign is kept attached to the returned literal since
// strconv.ParseInt/ParseUint expect it there.
func intLiteralBase(s string) (string, int) {
	rest := s
	sign := ""
	if len(rest) > 0 && (rest[0] == '+' || rest[0] == '-') {
		sign = rest[:1]
		rest = rest[1:]
	}
	if len(rest) > 1 && rest[0] == '0' && (rest[1] == 'x' || rest[1] == 'X') {
		return sign + rest[2:], 16
	}
	return s, 10
}

func ToInt(s string) (int, error) {
	lit, base := intLiteralBase(s)
	v, err := strconv.ParseInt(lit, base, strconv.IntSize)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

func ToUnsigned(s string) (uint, error) {
	lit, base := intLiteralBase(s)
	v, err := strconv.ParseUint(lit, base, strconv.IntSize)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}

func ToInt64(s string) (int64, error) {
	lit, base := intLiteralBase(s)
	return strconv.ParseInt(lit, base, 64)
}

func ToUint64(s string) (uint64, error) {
	lit, base := intLiteralBase(s)
	return strconv.ParseUint(lit, base, 64)
}

// ToBool accepts a leading numeric value (0 is false, any other parsed
// integer is true) before falling back to the string table "true"/
// "True"/"TRUE"/"false"/"False"/"FALSE" — spec.md §9(c): numeric parse
// is tried first so "1"/"0" are handled by either path consistently.
// Other capitalisations (e.g. "tRUE") are rejected.
func ToBool(s string) (bool, error) {
	lit, base := intLiteralBase(s)
	if v, err := strconv.ParseInt(lit, base, 64); err == nil {
		return v != 0, nil
	}
	switch s {
	case "true", "True", "TRUE", "1":
		return true, nil
	case "false", "False", "FALSE", "0":
		return false, nil
	}
	return false, strconv.ErrSyntax
}

func ToFloat(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, err
	}
	return float32(v), nil
}

func ToDouble(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// FormatInt, FormatUnsigned, ... implement the reverse (formatting)
// direction spec.md §6 names: the canonical textual forms written back
// out by the Element.Set*Attribute helpers. The printer itself only
// ever writes attribute values as the strings they are stored as.
func FormatInt(v int) string       { return strconv.FormatInt(int64(v), 10) }
func FormatUnsigned(v uint) string { return strconv.FormatUint(uint64(v), 10) }
func FormatInt64(v int64) string   { return strconv.FormatInt(v, 10) }
func FormatUint64(v uint64) string { return strconv.FormatUint(v, 10) }

// FormatBool renders v using the package default true/false strings;
// callers printing through a Document should prefer its configured
// BoolStrings (Document.FormatBool, document.go).
func FormatBool(v bool) string {
	if v {
		return defaultBoolStrings.True
	}
	return defaultBoolStrings.False
}

// FormatFloat and FormatDouble use 'g' formatting with the precision
// spec.md §6 specifies for float vs. double round-tripping.
func FormatFloat(v float32) string  { return strconv.FormatFloat(float64(v), 'g', 8, 32) }
func FormatDouble(v float64) string { return strconv.FormatFloat(v, 'g', 17, 64) }
