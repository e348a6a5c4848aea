package gettext

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// variantMatcher reports whether raw has the shape of one Value variant.
// A non-nil error explains why a shape that looked right could not be
// decoded (for example a nested argument that matches nothing).
type variantMatcher func(raw any, path string) (Value, bool, error)

// variantOrder is the declared disambiguation order. A variant added later
// must be appended so that earlier shapes keep their meaning.
var variantOrder []variantMatcher

// filled in init since matchArray and the call matchers recurse through
// decodeValue, which reads variantOrder.
func init() {
	variantOrder = []variantMatcher{
		matchText,
		matchInteger,
		matchFloat,
		matchBool,
		matchUnit,
		matchArray,
		matchFormattedText,
		matchDatetime,
		matchGetText,
		matchNGetText,
		matchPGetText,
		matchDGetText,
		matchDNGetText,
		matchNPGetText,
		matchDCNGetText,
	}
}

// Decode builds a Value from a generic tree such as the output of
// encoding/json (preferably with UseNumber), yaml.v3 or go-toml decoding
// into any. Variants are tried in declaration order; ErrNoVariantMatched is
// returned when none fits.
func Decode(raw any) (Value, error) {
	return decodeValue(raw, "")
}

// ParseJSON decodes a JSON message tree. Integers stay integers.
func ParseJSON(data []byte) (Value, error) {
	raw, err := decodeJSON(data)
	if err != nil {
		return nil, err
	}
	return Decode(raw)
}

// ParseYAML decodes a YAML message tree.
func ParseYAML(data []byte) (Value, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("gettext: yaml parse error: %w", err)
	}
	return Decode(raw)
}

// ParseTOML decodes a TOML message tree. TOML has no null, so Unit cannot be
// expressed in this format.
func ParseTOML(data []byte) (Value, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("gettext: toml parse error: %w", err)
	}
	return Decode(raw)
}

func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("gettext: json parse error: %w", err)
	}
	return raw, nil
}

func decodeValue(raw any, path string) (Value, error) {
	var cause error
	for _, match := range variantOrder {
		value, ok, err := match(raw, path)
		if ok {
			return value, nil
		}
		if err != nil && cause == nil {
			cause = err
		}
	}
	if cause != nil {
		return nil, cause
	}
	return nil, fmt.Errorf("gettext: %s: %w", displayPath(path), ErrNoVariantMatched)
}

func displayPath(path string) string {
	if path == "" {
		return "/"
	}
	return path
}

func matchText(raw any, _ string) (Value, bool, error) {
	s, ok := raw.(string)
	return Text(s), ok, nil
}

func matchInteger(raw any, _ string) (Value, bool, error) {
	n, ok := asInt64(raw)
	return Integer(n), ok, nil
}

func matchFloat(raw any, _ string) (Value, bool, error) {
	switch v := raw.(type) {
	case float64:
		return Float(v), true, nil
	case float32:
		return Float(v), true, nil
	case uint64:
		return Float(float64(v)), true, nil
	case uint:
		return Float(float64(v)), true, nil
	case json.Number:
		f, err := v.Float64()
		return Float(f), err == nil, nil
	}
	return nil, false, nil
}

func matchBool(raw any, _ string) (Value, bool, error) {
	b, ok := raw.(bool)
	return Bool(b), ok, nil
}

func matchUnit(raw any, _ string) (Value, bool, error) {
	return Unit{}, raw == nil, nil
}

func matchArray(raw any, path string) (Value, bool, error) {
	items, ok := raw.([]any)
	if !ok {
		return nil, false, nil
	}
	out := make(Array, 0, len(items))
	for i, item := range items {
		value, err := decodeValue(item, path+"/"+strconv.Itoa(i))
		if err != nil {
			return nil, false, err
		}
		out = append(out, value)
	}
	return out, true, nil
}

func matchFormattedText(raw any, path string) (Value, bool, error) {
	obj, ok := asObject(raw)
	if !ok {
		return nil, false, nil
	}
	text, ok := stringField(obj, "text")
	if !ok {
		return nil, false, nil
	}
	args, ok, err := argsField(obj, path)
	if !ok {
		return nil, false, err
	}
	return FormattedText{Text: text, Args: args}, true, nil
}

func matchDatetime(raw any, _ string) (Value, bool, error) {
	obj, ok := asObject(raw)
	if !ok {
		return nil, false, nil
	}
	pattern, ok := stringField(obj, "strftime")
	if !ok {
		return nil, false, nil
	}
	epoch, ok := asInt64(obj["epoch"])
	if !ok {
		return nil, false, nil
	}
	return Datetime{Pattern: pattern, Epoch: epoch}, true, nil
}

func matchGetText(raw any, path string) (Value, bool, error) {
	obj, ok := asObject(raw)
	if !ok {
		return nil, false, nil
	}
	msgid, ok := stringField(obj, "gettext")
	if !ok {
		return nil, false, nil
	}
	args, ok, err := argsField(obj, path)
	if !ok {
		return nil, false, err
	}
	return GetText{MsgID: msgid, Args: args}, true, nil
}

// callFields extracts the nested call object stored under key together with
// the sibling args.
func callFields(raw any, key, path string) (map[string]any, Argument, bool, error) {
	obj, ok := asObject(raw)
	if !ok {
		return nil, nil, false, nil
	}
	call, ok := asObject(obj[key])
	if !ok {
		return nil, nil, false, nil
	}
	args, ok, err := argsField(obj, path)
	if !ok {
		return nil, nil, false, err
	}
	return call, args, true, nil
}

type pluralFields struct {
	singular string
	plural   string
	n        uint32
}

func pluralCall(call map[string]any) (pluralFields, bool) {
	singular, ok := stringField(call, "singular")
	if !ok {
		return pluralFields{}, false
	}
	plural, ok := stringField(call, "plural")
	if !ok {
		return pluralFields{}, false
	}
	n, ok := asUint32(call["n"])
	if !ok {
		return pluralFields{}, false
	}
	return pluralFields{singular: singular, plural: plural, n: n}, true
}

func matchNGetText(raw any, path string) (Value, bool, error) {
	call, args, ok, err := callFields(raw, "ngettext", path)
	if !ok {
		return nil, false, err
	}
	p, ok := pluralCall(call)
	if !ok {
		return nil, false, nil
	}
	return NGetText{Singular: p.singular, Plural: p.plural, N: p.n, Args: args}, true, nil
}

func matchPGetText(raw any, path string) (Value, bool, error) {
	call, args, ok, err := callFields(raw, "pgettext", path)
	if !ok {
		return nil, false, err
	}
	ctx, ok := stringField(call, "ctx")
	if !ok {
		return nil, false, nil
	}
	msgid, ok := stringField(call, "msgid")
	if !ok {
		return nil, false, nil
	}
	return PGetText{Context: ctx, MsgID: msgid, Args: args}, true, nil
}

func matchDGetText(raw any, path string) (Value, bool, error) {
	call, args, ok, err := callFields(raw, "dgettext", path)
	if !ok {
		return nil, false, err
	}
	domain, ok := stringField(call, "domain")
	if !ok {
		return nil, false, nil
	}
	msgid, ok := stringField(call, "msgid")
	if !ok {
		return nil, false, nil
	}
	return DGetText{Domain: domain, MsgID: msgid, Args: args}, true, nil
}

func matchDNGetText(raw any, path string) (Value, bool, error) {
	call, args, ok, err := callFields(raw, "dngettext", path)
	if !ok {
		return nil, false, err
	}
	domain, ok := stringField(call, "domain")
	if !ok {
		return nil, false, nil
	}
	p, ok := pluralCall(call)
	if !ok {
		return nil, false, nil
	}
	return DNGetText{Domain: domain, Singular: p.singular, Plural: p.plural, N: p.n, Args: args}, true, nil
}

func matchNPGetText(raw any, path string) (Value, bool, error) {
	call, args, ok, err := callFields(raw, "npgettext", path)
	if !ok {
		return nil, false, err
	}
	ctx, ok := stringField(call, "ctx")
	if !ok {
		return nil, false, nil
	}
	p, ok := pluralCall(call)
	if !ok {
		return nil, false, nil
	}
	return NPGetText{Context: ctx, Singular: p.singular, Plural: p.plural, N: p.n, Args: args}, true, nil
}

func matchDCNGetText(raw any, path string) (Value, bool, error) {
	call, args, ok, err := callFields(raw, "dcngettext", path)
	if !ok {
		return nil, false, err
	}
	domain, ok := stringField(call, "domain")
	if !ok {
		return nil, false, nil
	}
	p, ok := pluralCall(call)
	if !ok {
		return nil, false, nil
	}
	rawCategory, ok := stringField(call, "category")
	if !ok {
		return nil, false, nil
	}
	category, err := ParseLocaleCategory(rawCategory)
	if err != nil {
		return nil, false, fmt.Errorf("%s/dcngettext/category: %w", path, err)
	}
	return DCNGetText{
		Domain:   domain,
		Singular: p.singular,
		Plural:   p.plural,
		N:        p.n,
		Category: category,
		Args:     args,
	}, true, nil
}

// argsField decodes the optional "args" entry. A mapping yields Keyword, a
// sequence yields Positional, a missing key or null yields no arguments.
func argsField(obj map[string]any, path string) (Argument, bool, error) {
	raw, present := obj["args"]
	if !present || raw == nil {
		return nil, true, nil
	}
	argsPath := path + "/args"

	if kwargs, ok := asObject(raw); ok {
		out := make(Keyword, len(kwargs))
		for key, item := range kwargs {
			value, err := decodeValue(item, argsPath+"/"+key)
			if err != nil {
				return nil, false, err
			}
			out[key] = value
		}
		return out, true, nil
	}

	if items, ok := raw.([]any); ok {
		out := make(Positional, 0, len(items))
		for i, item := range items {
			value, err := decodeValue(item, argsPath+"/"+strconv.Itoa(i))
			if err != nil {
				return nil, false, err
			}
			out = append(out, value)
		}
		return out, true, nil
	}

	return nil, false, nil
}

func asObject(raw any) (map[string]any, bool) {
	switch v := raw.(type) {
	case map[string]any:
		return v, true
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			s, ok := key.(string)
			if !ok {
				return nil, false
			}
			out[s] = item
		}
		return out, true
	}
	return nil, false
}

func stringField(obj map[string]any, key string) (string, bool) {
	s, ok := obj[key].(string)
	return s, ok
}

func asInt64(raw any) (int64, bool) {
	switch v := raw.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint:
		if uint64(v) > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	}
	return 0, false
}

func asUint32(raw any) (uint32, bool) {
	if u, ok := raw.(uint64); ok {
		if u > math.MaxUint32 {
			return 0, false
		}
		return uint32(u), true
	}
	n, ok := asInt64(raw)
	if !ok || n < 0 || n > math.MaxUint32 {
		return 0, false
	}
	return uint32(n), true
}
