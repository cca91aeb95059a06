package core

import (
	"net/url"
	"strconv"
	"strings"

	"upbit/pkg/coerce"
)

// Params carries the arguments of an operation from the exchange layer to the protocol.
type Params map[string]any

// String returns the string parameter stored under key, or "".
func (p Params) String(key string) string {
	s, _ := p[key].(string)
	return s
}

type queryPair struct {
	key   string
	value string
}

// Query is an ordered list of query parameters. Encode emits the pairs in
// insertion order; the query hash is computed over exactly those bytes, so the
// order must not depend on map iteration.
type Query struct {
	pairs []queryPair
}

// Add appends a parameter.
func (q *Query) Add(key, value string) *Query {
	q.pairs = append(q.pairs, queryPair{key: key, value: value})
	return q
}

// AddIf appends a parameter when value is not empty.
func (q *Query) AddIf(key, value string) *Query {
	if value != "" {
		q.Add(key, value)
	}
	return q
}

// AddDecimal appends a price, volume or amount with exactly 8 decimal places.
// Zero values are skipped.
func (q *Query) AddDecimal(key string, value float64) *Query {
	if value != 0 {
		q.Add(key, coerce.FormatDecimal(value))
	}
	return q
}

// AddInt appends an integer parameter when value is positive.
func (q *Query) AddInt(key string, value int) *Query {
	if value > 0 {
		q.Add(key, strconv.Itoa(value))
	}
	return q
}

// AddArray appends one key[]=value pair per element.
func (q *Query) AddArray(key string, values []string) *Query {
	for _, v := range values {
		q.Add(key+"[]", v)
	}
	return q
}

// Len returns the number of pairs.
func (q *Query) Len() int {
	return len(q.pairs)
}

// Get returns the first value stored under key.
func (q *Query) Get(key string) (string, bool) {
	for _, p := range q.pairs {
		if p.key == key {
			return p.value, true
		}
	}
	return "", false
}

// Encode returns the percent-encoded query string without a leading "?".
func (q *Query) Encode() string {
	var b strings.Builder
	for i, p := range q.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.value))
	}
	return b.String()
}

// Request describes one HTTP call before it is signed and sent.
type Request struct {
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	Query       Query             `json:"-"`
	Headers     map[string]string `json:"headers,omitempty"`
	RequireAuth bool              `json:"require_auth"`
}

func NewRequest(method, path string) *Request {
	return &Request{
		Method:  method,
		Path:    path,
		Headers: make(map[string]string),
	}
}

func (r *Request) SetHeader(key, value string) *Request {
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	r.Headers[key] = value
	return r
}

func (r *Request) SetRequireAuth(require bool) *Request {
	r.RequireAuth = require
	return r
}

// URL joins baseURL, the path and the encoded query. The result is what gets
// sent and what the query hash is computed from.
func (r *Request) URL(baseURL string) string {
	u := strings.TrimRight(baseURL, "/") + r.Path
	if r.Query.Len() > 0 {
		u += "?" + r.Query.Encode()
	}
	return u
}
