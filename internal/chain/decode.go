package chain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrSchema is wrapped by every decode or validation failure.
var ErrSchema = errors.New("options chain schema violation")

// FieldError reports a required field that is absent from the document.
type FieldError struct {
	Path string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("missing required field %s", e.Path)
}

func (e *FieldError) Is(target error) bool {
	return target == ErrSchema
}

// ────────────────────────────────────────────────────────────
// Wire format
// ────────────────────────────────────────────────────────────
//
// Every field is a pointer so that an absent key can be told apart
// from a zero value. Unknown keys are ignored by both decoders.

// number is a decimal that must be written as a bare numeric literal.
// decimal.Decimal alone also accepts quoted strings.
type number struct {
	decimal.Decimal
}

func (n *number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] == '"' || bytes.Equal(b, []byte("null")) {
		return fmt.Errorf("expected a number, got %s", b)
	}
	return n.Decimal.UnmarshalJSON(b)
}

func (n *number) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a number", node.Line)
	}
	if tag := node.ShortTag(); tag != "!!int" && tag != "!!float" {
		return fmt.Errorf("line %d: expected a number, got %q", node.Line, node.Value)
	}
	return n.Decimal.UnmarshalText([]byte(node.Value))
}

type wireGreeks struct {
	Delta *number `json:"delta" yaml:"delta"`
	Gamma *number `json:"gamma" yaml:"gamma"`
	Theta *number `json:"theta" yaml:"theta"`
	Vega  *number `json:"vega" yaml:"vega"`
	Rho   *number `json:"rho" yaml:"rho"`
}

type wireQuote struct {
	Symbol       *string     `json:"symbol" yaml:"symbol"`
	Bid          *number     `json:"bid" yaml:"bid"`
	Ask          *number     `json:"ask" yaml:"ask"`
	BidSize      *int64      `json:"bidSize" yaml:"bidSize"`
	AskSize      *int64      `json:"askSize" yaml:"askSize"`
	Volume       *int64      `json:"volume" yaml:"volume"`
	OpenInterest *int64      `json:"openInterest" yaml:"openInterest"`
	Greeks       *wireGreeks `json:"greeks" yaml:"greeks"`
}

type wirePair struct {
	Strike *number    `json:"strike" yaml:"strike"`
	Call   *wireQuote `json:"call" yaml:"call"`
	Put    *wireQuote `json:"put" yaml:"put"`
}

type wireExpiration struct {
	Date    *string     `json:"date" yaml:"date"`
	Options *[]wirePair `json:"options" yaml:"options"`
}

type wireChain struct {
	Symbol      *string           `json:"symbol" yaml:"symbol"`
	LastPrice   *number           `json:"lastPrice" yaml:"lastPrice"`
	LastUpdate  *string           `json:"lastUpdate" yaml:"lastUpdate"`
	Expirations *[]wireExpiration `json:"expirations" yaml:"expirations"`
}

// DecodeJSON reads a JSON options chain document. Anything after the
// top-level value other than whitespace is an error.
func DecodeJSON(r io.Reader) (*Chain, error) {
	var w wireChain
	dec := json.NewDecoder(r)
	if err := dec.Decode(&w); err != nil {
		return nil, fmt.Errorf("%w: decoding JSON: %v", ErrSchema, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: decoding JSON: unexpected data after the document", ErrSchema)
	}
	return w.build()
}

// DecodeYAML reads a YAML options chain document using the same
// field names as the JSON form.
func DecodeYAML(r io.Reader) (*Chain, error) {
	var w wireChain
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&w); err != nil {
		return nil, fmt.Errorf("%w: decoding YAML: %v", ErrSchema, err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, fmt.Errorf("%w: decoding YAML: more than one document", ErrSchema)
	}
	return w.build()
}

// ────────────────────────────────────────────────────────────
// Validation + conversion
// ────────────────────────────────────────────────────────────

func (w *wireChain) build() (*Chain, error) {
	switch {
	case w.Symbol == nil:
		return nil, &FieldError{Path: "symbol"}
	case w.LastPrice == nil:
		return nil, &FieldError{Path: "lastPrice"}
	case w.LastUpdate == nil:
		return nil, &FieldError{Path: "lastUpdate"}
	case w.Expirations == nil:
		return nil, &FieldError{Path: "expirations"}
	}

	c := &Chain{
		Symbol:      *w.Symbol,
		LastPrice:   w.LastPrice.Decimal,
		LastUpdate:  *w.LastUpdate,
		Expirations: make([]Expiration, 0, len(*w.Expirations)),
	}

	for i, we := range *w.Expirations {
		path := fmt.Sprintf("expirations[%d]", i)
		exp, err := we.build(path)
		if err != nil {
			return nil, err
		}
		c.Expirations = append(c.Expirations, exp)
	}
	return c, nil
}

func (w wireExpiration) build(path string) (Expiration, error) {
	if w.Date == nil {
		return Expiration{}, &FieldError{Path: path + ".date"}
	}
	if w.Options == nil {
		return Expiration{}, &FieldError{Path: path + ".options"}
	}

	exp := Expiration{
		Date:    *w.Date,
		Options: make([]OptionPair, 0, len(*w.Options)),
	}
	for j, wp := range *w.Options {
		pair, err := wp.build(fmt.Sprintf("%s.options[%d]", path, j))
		if err != nil {
			return Expiration{}, err
		}
		exp.Options = append(exp.Options, pair)
	}
	return exp, nil
}

func (w wirePair) build(path string) (OptionPair, error) {
	if w.Strike == nil {
		return OptionPair{}, &FieldError{Path: path + ".strike"}
	}
	call, err := w.Call.build(path + ".call")
	if err != nil {
		return OptionPair{}, err
	}
	put, err := w.Put.build(path + ".put")
	if err != nil {
		return OptionPair{}, err
	}
	return OptionPair{Strike: w.Strike.Decimal, Call: call, Put: put}, nil
}

func (w *wireQuote) build(path string) (Quote, error) {
	if w == nil {
		return Quote{}, &FieldError{Path: path}
	}

	required := []struct {
		name    string
		present bool
	}{
		{"symbol", w.Symbol != nil},
		{"bid", w.Bid != nil},
		{"ask", w.Ask != nil},
		{"bidSize", w.BidSize != nil},
		{"askSize", w.AskSize != nil},
		{"volume", w.Volume != nil},
		{"openInterest", w.OpenInterest != nil},
	}
	for _, f := range required {
		if !f.present {
			return Quote{}, &FieldError{Path: path + "." + f.name}
		}
	}

	greeks, err := w.Greeks.build(path + ".greeks")
	if err != nil {
		return Quote{}, err
	}

	return Quote{
		Symbol:       *w.Symbol,
		Bid:          w.Bid.Decimal,
		Ask:          w.Ask.Decimal,
		BidSize:      *w.BidSize,
		AskSize:      *w.AskSize,
		Volume:       *w.Volume,
		OpenInterest: *w.OpenInterest,
		Greeks:       greeks,
	}, nil
}

func (w *wireGreeks) build(path string) (Greeks, error) {
	if w == nil {
		return Greeks{}, &FieldError{Path: path}
	}

	fields := []struct {
		name string
		v    *number
	}{
		{"delta", w.Delta},
		{"gamma", w.Gamma},
		{"theta", w.Theta},
		{"vega", w.Vega},
		{"rho", w.Rho},
	}
	for _, f := range fields {
		if f.v == nil {
			return Greeks{}, &FieldError{Path: path + "." + f.name}
		}
	}

	return Greeks{
		Delta: w.Delta.Decimal,
		Gamma: w.Gamma.Decimal,
		Theta: w.Theta.Decimal,
		Vega:  w.Vega.Decimal,
		Rho:   w.Rho.Decimal,
	}, nil
}
