package collection

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for file extensions no decoder handles.
var ErrUnsupportedFormat = errors.New("unsupported collection format")

// Format is the encoding of a collection file.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
	FormatJSON
	// FormatText is one label per line. "# " starts a header, "~ " a disabled item.
	FormatText
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatFor picks a format from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	case ".txt", ".list", "":
		return FormatText, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
}

// Decode parses data in the given format and validates it against the
// collection schema before binding it to a Document.
func Decode(format Format, data []byte) (*Document, error) {
	var generic any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &generic); err != nil {
			return nil, fmt.Errorf("decode YAML: %w", err)
		}
	case FormatTOML:
		m := map[string]any{}
		if _, err := toml.Decode(string(data), &m); err != nil {
			return nil, fmt.Errorf("decode TOML: %w", err)
		}
		generic = m
	case FormatJSON:
		if err := json.Unmarshal(data, &generic); err != nil {
			return nil, fmt.Errorf("decode JSON: %w", err)
		}
	case FormatText:
		doc := decodeText(data)
		if err := Validate(doc); err != nil {
			return nil, err
		}
		return &doc, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	if err := Validate(generic); err != nil {
		return nil, err
	}

	var doc Document
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatTOML:
		_, err = toml.Decode(string(data), &doc)
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}
	return &doc, nil
}

// Encode renders doc in the given format.
func Encode(format Format, doc *Document) ([]byte, error) {
	switch format {
	case FormatYAML:
		out, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("encode YAML: %w", err)
		}
		return out, nil
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return nil, fmt.Errorf("encode TOML: %w", err)
		}
		return buf.Bytes(), nil
	case FormatJSON:
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode JSON: %w", err)
		}
		return append(out, '\n'), nil
	case FormatText:
		return encodeText(doc), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
}

func decodeText(data []byte) Document {
	doc := Document{Items: []Record{}}
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		var r Record
		switch {
		case strings.HasPrefix(line, "# "):
			r.Header = true
			r.Label = strings.TrimSpace(line[2:])
		case strings.HasPrefix(line, "~ "):
			r.Disabled = true
			r.Label = strings.TrimSpace(line[2:])
		default:
			r.Label = strings.TrimSpace(line)
		}
		doc.Items = append(doc.Items, r)
	}
	return doc
}

func encodeText(doc *Document) []byte {
	var b bytes.Buffer
	for _, r := range doc.Items {
		switch {
		case r.Header:
			b.WriteString("# ")
		case r.Disabled:
			b.WriteString("~ ")
		}
		b.WriteString(r.Label)
		b.WriteByte('\n')
	}
	return b.Bytes()
}
