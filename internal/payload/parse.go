package payload

import (
	"encoding/json"
	"fmt"

	"github.com/buger/jsonparser"
)

// ParseError reports a response body that is not valid JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("parse json: %v", e.Err) }

func (e *ParseError) Unwrap() error { return e.Err }

// Parse decodes a JSON document into the ordered value tree.
func Parse(data []byte) (any, error) {
	// jsonparser is lenient about malformed input, so validate first.
	if !json.Valid(data) {
		var probe any
		err := json.Unmarshal(data, &probe)
		if err == nil {
			err = fmt.Errorf("invalid json")
		}
		return nil, &ParseError{Err: err}
	}

	value, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	v, err := convert(value, dataType)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return v, nil
}

func convert(value []byte, dataType jsonparser.ValueType) (any, error) {
	switch dataType {
	case jsonparser.String:
		return jsonparser.ParseString(value)
	case jsonparser.Number:
		return json.Number(string(value)), nil
	case jsonparser.Boolean:
		return jsonparser.ParseBoolean(value)
	case jsonparser.Null:
		return nil, nil
	case jsonparser.Object:
		return convertObject(value)
	case jsonparser.Array:
		return convertArray(value)
	default:
		return nil, fmt.Errorf("unexpected value %q", value)
	}
}

func convertObject(data []byte) (*Object, error) {
	obj := NewObject()
	err := jsonparser.ObjectEach(data, func(key, value []byte, dataType jsonparser.ValueType, _ int) error {
		v, err := convert(value, dataType)
		if err != nil {
			return err
		}
		obj.Set(string(key), v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return obj, nil
}

func convertArray(data []byte) ([]any, error) {
	list := []any{}
	var firstErr error
	_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, _ int, err error) {
		if firstErr != nil {
			return
		}
		if err != nil {
			firstErr = err
			return
		}
		v, err := convert(value, dataType)
		if err != nil {
			firstErr = err
			return
		}
		list = append(list, v)
	})
	if err != nil {
		return nil, err
	}
	return list, firstErr
}
