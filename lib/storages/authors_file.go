package storages

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/pescuma/reuseify/lib/model"
)

const DefaultAuthorsFile = "reuse_annotate_authors.json"

var (
	ErrAuthorMapNotFound  = errors.New("authors file not found")
	ErrMalformedAuthorMap = errors.New("malformed authors file")
)

// WriteAuthorMap replaces the contents of file with m as an indented JSON
// object, keeping the order of the paths.
func WriteAuthorMap(file string, m *model.AuthorMap) error {
	data, err := EncodeAuthorMap(m)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(file); dir != "" {
		if _, err := os.Stat(dir); err != nil {
			err = os.MkdirAll(dir, 0o755)
			if err != nil {
				return errors.Wrapf(err, "error creating %v", dir)
			}
		}
	}

	err = os.WriteFile(file, data, 0o644)
	if err != nil {
		return errors.Wrapf(err, "error writing %v", file)
	}

	return nil
}

func ReadAuthorMap(file string) (*model.AuthorMap, error) {
	data, err := os.ReadFile(file)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil, errors.Wrapf(ErrAuthorMapNotFound, "'%v'", file)
	case err != nil:
		return nil, errors.Wrapf(err, "error reading %v", file)
	}

	m, err := DecodeAuthorMap(data)
	if err != nil {
		return nil, errors.Wrapf(err, "'%v'", file)
	}

	return m, nil
}

func EncodeAuthorMap(m *model.AuthorMap) ([]byte, error) {
	var compact bytes.Buffer

	compact.WriteString("{")
	for i, path := range m.Paths() {
		if i > 0 {
			compact.WriteString(",")
		}

		err := encodeValue(&compact, path)
		if err != nil {
			return nil, err
		}

		compact.WriteString(":")

		authors, _ := m.Get(path)
		err = encodeValue(&compact, authors)
		if err != nil {
			return nil, err
		}
	}
	compact.WriteString("}")

	var result bytes.Buffer
	err := json.Indent(&result, compact.Bytes(), "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "error encoding authors")
	}
	result.WriteString("\n")

	return result.Bytes(), nil
}

func encodeValue(buf *bytes.Buffer, v any) error {
	var tmp bytes.Buffer

	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)

	err := enc.Encode(v)
	if err != nil {
		return errors.Wrap(err, "error encoding authors")
	}

	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}

// DecodeAuthorMap reads a JSON object of path -> list of names. A null list is
// read as an empty one. Repeated paths keep the first position and the last value.
func DecodeAuthorMap(data []byte) (*model.AuthorMap, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, malformed(err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.Wrap(ErrMalformedAuthorMap, "expected a JSON object")
	}

	result := model.NewAuthorMap()

	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return nil, malformed(err)
		}

		path, ok := tok.(string)
		if !ok {
			return nil, errors.Wrapf(ErrMalformedAuthorMap, "expected a file path, got %v", tok)
		}

		var authors []string
		err = dec.Decode(&authors)
		if err != nil {
			return nil, errors.Wrapf(malformed(err), "authors of %v", path)
		}

		result.Set(path, authors)
	}

	_, err = dec.Token()
	if err != nil {
		return nil, malformed(err)
	}

	_, err = dec.Token()
	if err != io.EOF {
		return nil, errors.Wrap(ErrMalformedAuthorMap, "unexpected data after the JSON object")
	}

	return result, nil
}

func malformed(err error) error {
	if err == io.EOF {
		return errors.Wrap(ErrMalformedAuthorMap, "unexpected end of file")
	}

	return errors.Wrap(ErrMalformedAuthorMap, err.Error())
}
