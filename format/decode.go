package format

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	j "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// Decode decodes the single document in d. YAML mappings decode to
// yaml.MapSlice so their key order survives; see MapSliceSource.
func Decode(f Format, d []byte) (any, error) {
	docs, err := DecodeAll(f, d)
	if err != nil {
		return nil, err
	}
	switch len(docs) {
	case 0:
		return nil, nil
	case 1:
		return docs[0], nil
	default:
		return nil, fmt.Errorf("%s: expected one document, got %d", f, len(docs))
	}
}

// DecodeAll decodes every document in d. Only YAML has more than one.
func DecodeAll(f Format, d []byte) ([]any, error) {
	switch f {
	case JSONFormat:
		var v any
		if err := j.Unmarshal(d, &v); err != nil {
			return nil, fmt.Errorf("decoding json: %w", err)
		}
		return []any{v}, nil
	case TOMLFormat:
		v := map[string]any{}
		if err := toml.Unmarshal(d, &v); err != nil {
			return nil, fmt.Errorf("decoding toml: %w", err)
		}
		return []any{v}, nil
	case YAMLFormat:
		var res []any
		dec := yaml.NewDecoder(bytes.NewReader(d), yaml.UseOrderedMap())
		for {
			var v any
			if err := dec.Decode(&v); err != nil {
				if errors.Is(err, io.EOF) {
					break
				}
				return nil, fmt.Errorf("decoding yaml: %w", err)
			}
			res = append(res, v)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, f)
	}
}
