package generator

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PackageJSON is a package manifest that keeps its top-level keys in file
// order so a rewrite only changes what was modified.
type PackageJSON struct {
	fields []field
}

type field struct {
	key   string
	value json.RawMessage
}

// ParsePackageJSON decodes a package manifest. The document must be an object.
func ParsePackageJSON(data []byte) (*PackageJSON, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parsing package.json: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("parsing package.json: top level is not an object")
	}

	p := &PackageJSON{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing package.json: %w", err)
		}
		key, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("parsing package.json key %q: %w", key, err)
		}
		p.set(key, raw)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("parsing package.json: %w", err)
	}
	return p, nil
}

// Keys returns the top-level keys in order.
func (p *PackageJSON) Keys() []string {
	keys := make([]string, len(p.fields))
	for i, f := range p.fields {
		keys[i] = f.key
	}
	return keys
}

// DevDependencies returns the devDependencies mapping, empty when absent.
func (p *PackageJSON) DevDependencies() (Dependencies, error) {
	deps := Dependencies{}
	raw, ok := p.get("devDependencies")
	if !ok {
		return deps, nil
	}
	if err := json.Unmarshal(raw, &deps); err != nil {
		return nil, fmt.Errorf("decoding devDependencies: %w", err)
	}
	return deps, nil
}

// SetDevDependencies replaces devDependencies. Keys are written in ascending
// order, and the entry is appended if the manifest had none.
func (p *PackageJSON) SetDevDependencies(deps Dependencies) error {
	// encoding/json writes map keys sorted.
	raw, err := json.Marshal(map[string]string(deps))
	if err != nil {
		return fmt.Errorf("encoding devDependencies: %w", err)
	}
	p.set("devDependencies", raw)
	return nil
}

// Marshal encodes the manifest with two-space indentation and a trailing newline.
func (p *PackageJSON) Marshal() ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, f := range p.fields {
		if i > 0 {
			compact.WriteByte(',')
		}
		key, err := json.Marshal(f.key)
		if err != nil {
			return nil, err
		}
		compact.Write(key)
		compact.WriteByte(':')
		compact.Write(f.value)
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("formatting package.json: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func (p *PackageJSON) get(key string) (json.RawMessage, bool) {
	for _, f := range p.fields {
		if f.key == key {
			return f.value, true
		}
	}
	return nil, false
}

func (p *PackageJSON) set(key string, value json.RawMessage) {
	for i, f := range p.fields {
		if f.key == key {
			p.fields[i].value = value
			return
		}
	}
	p.fields = append(p.fields, field{key: key, value: value})
}

// MergeDevDependencies adds extra to the manifest's devDependencies. Entries in
// extra win over existing ones. Every added range must be a valid semver range.
func MergeDevDependencies(p *PackageJSON, extra ...Dependencies) error {
	deps, err := p.DevDependencies()
	if err != nil {
		return err
	}
	for _, d := range extra {
		if err := d.Validate(); err != nil {
			return err
		}
		for name, rng := range d {
			deps[name] = rng
		}
	}
	return p.SetDevDependencies(deps)
}
