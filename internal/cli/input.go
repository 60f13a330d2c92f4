package cli

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/hasbyte1/go-underbar/collections"
)

const maxLine = 16 << 20

// readDocuments returns one JSON document per argument or, with no
// arguments, one per non-blank line of r.
func readDocuments(args []string, r io.Reader) ([]json.RawMessage, error) {
	var docs []json.RawMessage
	add := func(b []byte) error {
		if !json.Valid(b) {
			return fmt.Errorf("%w: not valid JSON: %.40q", ErrInvalidInput, b)
		}
		docs = append(docs, json.RawMessage(b))
		return nil
	}

	if len(args) > 0 {
		for _, a := range args {
			if err := add([]byte(a)); err != nil {
				return nil, err
			}
		}
		return docs, nil
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if err := add(bytes.Clone(line)); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("cli: read input: %w", err)
	}
	return docs, nil
}

func decodeValue(doc json.RawMessage) (any, error) {
	var v any
	if err := json.Unmarshal(doc, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return v, nil
}

func decodeSequence(doc json.RawMessage) ([]any, error) {
	var s []any
	if err := json.Unmarshal(doc, &s); err != nil {
		return nil, fmt.Errorf("%w: expected a JSON array: %v", ErrInvalidInput, err)
	}
	return s, nil
}

func decodeSequences(docs []json.RawMessage) ([][]any, error) {
	out := make([][]any, 0, len(docs))
	for _, d := range docs {
		s, err := decodeSequence(d)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// decodeMapping keeps the key order of the document.
func decodeMapping(doc json.RawMessage) (*collections.Mapping[any], error) {
	m := collections.NewMapping[any]()
	if err := json.Unmarshal(doc, m); err != nil {
		return nil, fmt.Errorf("%w: expected a JSON object: %v", ErrInvalidInput, err)
	}
	return m, nil
}

// decodeCollection accepts either a JSON array or a JSON object.
func decodeCollection(doc json.RawMessage) (collections.Collection[any], error) {
	trimmed := bytes.TrimSpace(doc)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		m, err := decodeMapping(trimmed)
		if err != nil {
			return collections.Collection[any]{}, err
		}
		return collections.FromMapping(m), nil
	}
	s, err := decodeSequence(doc)
	if err != nil {
		return collections.Collection[any]{}, err
	}
	return collections.FromSlice(s), nil
}
