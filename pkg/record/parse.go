package record

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Parser turns untyped records into entities. It never judges field content:
// missing text becomes "", and the field rules report it later.
type Parser struct {
	now func() time.Time
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithClock sets the clock handed to every parsed User.
func WithClock(now func() time.Time) ParserOption {
	return func(p *Parser) {
		if now != nil {
			p.now = now
		}
	}
}

func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseAddress builds an Address. It only fails when raw is nil.
func (p *Parser) ParseAddress(raw map[string]any) (Address, error) {
	a, err := parseAddress(raw)
	if err != nil {
		return Address{}, &LoadError{Index: -1, Err: err}
	}
	return a, nil
}

// ParseUser builds a User. It fails with a *LoadError when date_of_birth is
// not a YYYY-MM-DD string or addresses is not a list of objects.
func (p *Parser) ParseUser(raw map[string]any) (User, error) {
	u, err := p.parseUser(raw)
	if err != nil {
		return User{}, &LoadError{Index: -1, Err: err}
	}
	return u, nil
}

func parseAddress(raw map[string]any) (Address, error) {
	if raw == nil {
		return Address{}, fmt.Errorf("%w: address is not an object", ErrMalformedRecord)
	}
	return Address{
		Country:    text(raw, FieldCountry),
		City:       text(raw, FieldCity),
		PostalCode: text(raw, FieldPostalCode),
	}, nil
}

func (p *Parser) parseUser(raw map[string]any) (User, error) {
	if raw == nil {
		return User{}, fmt.Errorf("%w: record is not an object", ErrMalformedRecord)
	}

	dob, err := date(raw, FieldDateOfBirth)
	if err != nil {
		return User{}, err
	}

	addresses, err := addressList(raw, FieldAddresses)
	if err != nil {
		return User{}, err
	}

	return User{
		ID:          id(raw["id"]),
		Email:       text(raw, FieldEmail),
		FullName:    text(raw, FieldFullName),
		Gender:      text(raw, FieldGender),
		DateOfBirth: dob,
		Addresses:   addresses,
		now:         p.now,
	}, nil
}

func text(raw map[string]any, key string) string {
	s, _ := raw[key].(string)
	return s
}

func date(raw map[string]any, key string) (*time.Time, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil, nil
	}

	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("%w: expected %s string, got %T", ErrMalformedDate, DateLayout, v)
	}

	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrMalformedDate, s, err)
	}
	return &t, nil
}

func addressList(raw map[string]any, key string) ([]Address, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return []Address{}, nil
	}

	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be a list, got %T", ErrMalformedRecord, key, v)
	}

	addresses := make([]Address, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d] must be an object, got %T", ErrMalformedRecord, key, i, item)
		}
		a, err := parseAddress(m)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}
	return addresses, nil
}

func id(v any) int64 {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i
		}
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return integral(f)
	case float64:
		return integral(n)
	case int:
		return int64(n)
	case int64:
		return n
	default:
		return 0
	}
}

// integral returns f as an int64 when it has no fractional part and fits.
func integral(f float64) int64 {
	if f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0
	}
	return int64(f)
}
