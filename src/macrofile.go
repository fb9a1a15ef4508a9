package pawrpn

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// MacroFileFormat selects the decoder used for a macro file
type MacroFileFormat int

const (
	FormatJSON MacroFileFormat = iota
	FormatYAML
)

func (f MacroFileFormat) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	}
	return fmt.Sprintf("MacroFileFormat(%d)", int(f))
}

// FormatForPath picks the macro file format from the file extension
func FormatForPath(path string) (MacroFileFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("macro files must be .json, .yaml or .yml: %s", path)
}

// MacroResult records what happened to one entry of a macro file
type MacroResult struct {
	Name string
	Body string
	Err  error // nil if the macro was added
}

// macroEntry is a name/body pair read from a file, in file order
type macroEntry struct {
	name string
	body string
	err  error
}

// LoadMacros reads an object mapping macro names to bodies and adds
// the entries in file order, so later entries may use earlier ones.
// The returned error is only set when the document itself is unreadable;
// per-entry failures are reported in the results.
func (c *Calculator) LoadMacros(r io.Reader, format MacroFileFormat) ([]MacroResult, error) {
	var entries []macroEntry
	var err error
	switch format {
	case FormatJSON:
		entries, err = readJSONMacros(r)
	case FormatYAML:
		entries, err = readYAMLMacros(r)
	default:
		err = fmt.Errorf("unknown macro file format %s", format)
	}
	if err != nil {
		return nil, err
	}

	logger := c.Logger()
	results := make([]MacroResult, 0, len(entries))
	for _, e := range entries {
		res := MacroResult{Name: e.name, Body: e.body, Err: e.err}
		if res.Err == nil {
			res.Err = c.AddMacro(e.name, e.body)
		}
		if res.Err != nil {
			logger.DebugCat(CatIO, "Skipped macro \"%s\": %v", e.name, res.Err)
		} else {
			logger.InfoCat(CatIO, "Loaded macro \"%s\" -> %s", e.name, e.body)
		}
		results = append(results, res)
	}
	return results, nil
}

// LoadMacroFile loads macros from a .json, .yaml or .yml file
func (c *Calculator) LoadMacroFile(path string) ([]MacroResult, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't get access to file %s: %w", path, err)
	}
	defer f.Close()

	results, err := c.LoadMacros(f, format)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse the file %s: %w", path, err)
	}
	return results, nil
}

func readJSONMacros(r io.Reader) ([]macroEntry, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("expected a JSON object of macro definitions")
	}

	var entries []macroEntry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		var body string
		if err := json.Unmarshal(raw, &body); err != nil {
			entries = append(entries, macroEntry{
				name: name,
				err:  fmt.Errorf("macros should be strings, but encountered %s", string(raw)),
			})
			continue
		}
		entries = append(entries, macroEntry{name: name, body: body})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return entries, nil
}

func readYAMLMacros(r io.Reader) ([]macroEntry, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, errors.New("expected a YAML mapping of macro definitions")
	}

	entries := make([]macroEntry, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		entry := macroEntry{name: key.Value}
		switch {
		case value.Kind != yaml.ScalarNode || value.Tag == "!!null":
			out, _ := yaml.Marshal(value)
			entry.err = fmt.Errorf("macros should be strings, but encountered %s", strings.TrimSpace(string(out)))
		default:
			// numbers are accepted as bodies: `PI: 3.1415`
			entry.body = value.Value
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
