// Package coerce bridges Upbit's string-typed JSON numerics and enums and the
// native Go types used by the domain model.
//
// Upbit serializes most prices, volumes and fees as decimal strings, some
// market-data fields as bare JSON numbers, and leaves optional fields null or
// absent. The Float, Int and Time types accept all of those shapes; anything
// that is present but not a valid value is a hard error.
package coerce

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"
)

// Places is the number of decimal places used for outgoing price, volume and
// amount parameters. The formatted value participates in the query hash, so it
// must not change.
const Places = 8

var (
	// ErrInvalidNumber is returned when a numeric field holds a non-numeric value.
	ErrInvalidNumber = errors.New("invalid decimal value")
	// ErrUnknownToken is returned when an enum field holds a token outside its table.
	ErrUnknownToken = errors.New("unknown enum token")
	// ErrInvalidTime is returned when a timestamp field cannot be parsed.
	ErrInvalidTime = errors.New("invalid time value")
)

var decimalContext = func() *apd.Context {
	c := apd.BaseContext.WithPrecision(34)
	c.Rounding = apd.RoundHalfUp
	return c
}()

// Float is a float64 decoded from a JSON decimal string or number.
// A null, absent or empty value decodes to 0.
type Float float64

// Float64 returns the value as a float64.
func (f Float) Float64() float64 {
	return float64(f)
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Float) UnmarshalJSON(data []byte) error {
	text, ok, err := scalarText(data)
	if err != nil || !ok {
		return err
	}
	v, err := ParseFloat(text)
	if err != nil {
		return err
	}
	*f = Float(v)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (f Float) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(f), 'f', -1, 64)), nil
}

// Int is an int64 decoded from a JSON integer string or number.
type Int int64

// Int64 returns the value as an int64.
func (i Int) Int64() int64 {
	return int64(i)
}

// UnmarshalJSON implements json.Unmarshaler.
func (i *Int) UnmarshalJSON(data []byte) error {
	text, ok, err := scalarText(data)
	if err != nil || !ok {
		return err
	}
	v, err := ParseInt(text)
	if err != nil {
		return err
	}
	*i = Int(v)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (i Int) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(i), 10)), nil
}

// Uint is a uint64 decoded from a JSON integer string or number.
type Uint uint64

// Uint64 returns the value as a uint64.
func (u Uint) Uint64() uint64 {
	return uint64(u)
}

// UnmarshalJSON implements json.Unmarshaler.
func (u *Uint) UnmarshalJSON(data []byte) error {
	text, ok, err := scalarText(data)
	if err != nil || !ok {
		return err
	}
	v, err := ParseInt(text)
	if err != nil {
		return err
	}
	if v < 0 {
		return fmt.Errorf("%w: %q is negative", ErrInvalidNumber, text)
	}
	*u = Uint(v)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (u Uint) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatUint(uint64(u), 10)), nil
}

// Layouts accepted by Time, tried in order.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Time is a timestamp decoded from an RFC 3339 string. Zone-less values are
// taken as UTC. A null or empty value decodes to the zero time.
type Time struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Time) UnmarshalJSON(data []byte) error {
	text, ok, err := scalarText(data)
	if err != nil || !ok {
		return err
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, text); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidTime, text)
}

// MarshalJSON implements json.Marshaler.
func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(t.Format(time.RFC3339))), nil
}

// ParseFloat parses a decimal string into a float64.
func ParseFloat(s string) (float64, error) {
	d, err := parseDecimal(s)
	if err != nil {
		return 0, err
	}
	v, err := d.Float64()
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidNumber, s, err)
	}
	return v, nil
}

// ParseInt parses an integral decimal string into an int64. Values with a
// non-zero fractional part are rejected.
func ParseInt(s string) (int64, error) {
	d, err := parseDecimal(s)
	if err != nil {
		return 0, err
	}
	var integral apd.Decimal
	if _, err := decimalContext.RoundToIntegralExact(&integral, d); err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidNumber, s, err)
	}
	if integral.Cmp(d) != 0 {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidNumber, s)
	}
	v, err := integral.Int64()
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidNumber, s, err)
	}
	return v, nil
}

// FormatDecimal formats v with exactly Places decimal places, as sent in
// query parameters.
func FormatDecimal(v float64) string {
	var d apd.Decimal
	if _, err := d.SetFloat64(v); err != nil || d.Form != apd.Finite {
		return strconv.FormatFloat(v, 'f', Places, 64)
	}
	var q apd.Decimal
	if _, err := decimalContext.Quantize(&q, &d, -Places); err != nil {
		return strconv.FormatFloat(v, 'f', Places, 64)
	}
	return q.Text('f')
}

// DecodeEnum decodes a JSON string token through a closed table. Matching is
// case-insensitive; table keys must be lower case. A null value yields the
// zero value of T.
func DecodeEnum[T any](data []byte, table map[string]T) (T, error) {
	var zero T
	text, ok, err := scalarText(data)
	if err != nil || !ok {
		return zero, err
	}
	v, found := table[strings.ToLower(text)]
	if !found {
		return zero, fmt.Errorf("%w: %q", ErrUnknownToken, text)
	}
	return v, nil
}

// LookupEnum resolves a token through a closed table the same way DecodeEnum does.
func LookupEnum[T any](token string, table map[string]T) (T, error) {
	v, found := table[strings.ToLower(token)]
	if !found {
		var zero T
		return zero, fmt.Errorf("%w: %q", ErrUnknownToken, token)
	}
	return v, nil
}

func parseDecimal(s string) (*apd.Decimal, error) {
	d, _, err := decimalContext.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	if d.Form != apd.Finite {
		return nil, fmt.Errorf("%w: %q is not finite", ErrInvalidNumber, s)
	}
	return d, nil
}

// scalarText returns the textual content of a JSON string or bare scalar.
// ok is false for null and for the empty string.
func scalarText(data []byte) (string, bool, error) {
	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		return "", false, nil
	}
	if raw[0] == '"' {
		s, err := strconv.Unquote(raw)
		if err != nil {
			return "", false, fmt.Errorf("%w: %s", ErrInvalidNumber, raw)
		}
		if s == "" {
			return "", false, nil
		}
		return s, true, nil
	}
	return raw, true, nil
}
