package generator

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestPackageJSONKeepsKeyOrder(t *testing.T) {
	in := `{"name": "demo", "version": "0.1.0", "description": "d", "scripts": {"start": "node ."}}`
	p, err := ParsePackageJSON([]byte(in))
	if err != nil {
		t.Fatalf("ParsePackageJSON() error: %v", err)
	}

	if err := MergeDevDependencies(p, Dependencies{"eslint": "^3.4.0"}); err != nil {
		t.Fatalf("MergeDevDependencies() error: %v", err)
	}

	got := strings.Join(p.Keys(), ",")
	if got != "name,version,description,scripts,devDependencies" {
		t.Errorf("Keys() = %s", got)
	}
}

func TestMergeDevDependenciesSortsAndOverrides(t *testing.T) {
	in := `{
  "name": "demo",
  "devDependencies": {
    "webpack": "^2.1.0",
    "eslint": "^2.0.0",
    "autoprefixer": "^6.4.1"
  }
}`
	p, err := ParsePackageJSON([]byte(in))
	if err != nil {
		t.Fatalf("ParsePackageJSON() error: %v", err)
	}

	css := Dependencies{"stylus-loader": "^2.3.1", "rupture": "^0.6.1"}
	js := Dependencies{"eslint": "^3.4.0"}
	if err := MergeDevDependencies(p, css, js); err != nil {
		t.Fatalf("MergeDevDependencies() error: %v", err)
	}

	out, err := p.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	keys := devDependencyKeys(t, out)
	want := "autoprefixer,eslint,rupture,stylus-loader,webpack"
	if got := strings.Join(keys, ","); got != want {
		t.Errorf("devDependencies keys = %s, want %s", got, want)
	}

	deps, err := p.DevDependencies()
	if err != nil {
		t.Fatal(err)
	}
	if deps["eslint"] != "^3.4.0" {
		t.Errorf("eslint = %q, table entry should win", deps["eslint"])
	}
}

func TestMergeDevDependenciesRejectsBadRange(t *testing.T) {
	p, err := ParsePackageJSON([]byte(`{"name": "demo"}`))
	if err != nil {
		t.Fatal(err)
	}
	if err := MergeDevDependencies(p, Dependencies{"x": "bogus"}); err == nil {
		t.Fatal("expected error for invalid range")
	}
}

func TestPackageJSONMarshalFormat(t *testing.T) {
	p, err := ParsePackageJSON([]byte(`{"name":"demo","private":true}`))
	if err != nil {
		t.Fatal(err)
	}
	out, err := p.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"name\": \"demo\",\n  \"private\": true\n}\n"
	if string(out) != want {
		t.Errorf("Marshal() = %q, want %q", out, want)
	}
}

func TestParsePackageJSONErrors(t *testing.T) {
	for _, in := range []string{`[]`, `{"name": `, ``, `"name"`} {
		if _, err := ParsePackageJSON([]byte(in)); err == nil {
			t.Errorf("ParsePackageJSON(%q) should fail", in)
		}
	}
}

// devDependencyKeys returns the devDependencies keys in document order.
func devDependencyKeys(t *testing.T, doc []byte) []string {
	t.Helper()
	var top struct {
		DevDependencies json.RawMessage `json:"devDependencies"`
	}
	if err := json.Unmarshal(doc, &top); err != nil {
		t.Fatalf("decoding manifest: %v", err)
	}
	dec := json.NewDecoder(bytes.NewReader(top.DevDependencies))
	if _, err := dec.Token(); err != nil {
		t.Fatalf("decoding devDependencies: %v", err)
	}
	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			t.Fatal(err)
		}
		keys = append(keys, tok.(string))
		var v string
		if err := dec.Decode(&v); err != nil {
			t.Fatal(err)
		}
	}
	return keys
}
