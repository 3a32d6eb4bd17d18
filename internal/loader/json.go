package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/atomicstack/treepick/internal/document"
)

// parseJSON decodes one JSON value, or a stream of them which becomes an
// array in input order.
func parseJSON(data []byte) (*document.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var values []*document.Node
	for {
		v, err := readJSONValue(dec, true)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("offset %d: %w", dec.InputOffset(), err)
		}
		values = append(values, v)
	}
	switch len(values) {
	case 0:
		return nil, ErrEmptyInput
	case 1:
		return values[0], nil
	default:
		return document.Array(values...), nil
	}
}

func readJSONValue(dec *json.Decoder, top bool) (*document.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) && !top {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return readJSONObject(dec)
		case '[':
			return readJSONArray(dec)
		default:
			return nil, fmt.Errorf("unexpected %q", rune(t))
		}
	case string:
		return document.String(t), nil
	case json.Number:
		return document.Number(t.String()), nil
	case bool:
		return document.Bool(t), nil
	case nil:
		return document.Null(), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

// readJSONObject keeps fields in source order. A repeated name keeps its
// first position and takes the last value.
func readJSONObject(dec *json.Decoder) (*document.Node, error) {
	obj := document.Object()
	seen := map[string]int{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, unexpectedEOF(err)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		value, err := readJSONValue(dec, false)
		if err != nil {
			return nil, err
		}
		if i, dup := seen[name]; dup {
			obj.Fields[i].Value = value
			continue
		}
		seen[name] = len(obj.Fields)
		obj.Fields = append(obj.Fields, document.F(name, value))
	}
	if _, err := dec.Token(); err != nil {
		return nil, unexpectedEOF(err)
	}
	return obj, nil
}

func readJSONArray(dec *json.Decoder) (*document.Node, error) {
	arr := document.Array()
	for dec.More() {
		value, err := readJSONValue(dec, false)
		if err != nil {
			return nil, err
		}
		arr.Items = append(arr.Items, value)
	}
	if _, err := dec.Token(); err != nil {
		return nil, unexpectedEOF(err)
	}
	return arr, nil
}

func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
