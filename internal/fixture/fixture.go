// Package fixture implements the test harness: it extracts YAML
// frontmatter embedded in a `/*--- … ---*/` block comment inside a fixture
// source file, validates it against a JSON Schema, and exposes the
// remaining source for round-trip and token/AST expectation checks.
package fixture

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/aledsdavies/esfmt/internal/errkit"
)

// frontmatterPattern matches a `/*--- …YAML… ---*/` block comment, plus any
// trailing newline, so it can be stripped cleanly from the fixture source.
var frontmatterPattern = regexp.MustCompile(`(?s)/\*---(.*?)---\*/\n?`)

// Frontmatter is the expected-output metadata a fixture may declare.
type Frontmatter struct {
	Tokens         []string `yaml:"tokens,omitempty"`
	AST            []string `yaml:"ast,omitempty"`
	Hash           string   `yaml:"hash,omitempty"`
	MinToolVersion string   `yaml:"min_tool_version,omitempty"`
}

// Fixture is one loaded fixture file: the source with its frontmatter block
// removed, plus the decoded (and schema-validated) frontmatter, if any.
type Fixture struct {
	Path           string
	Source         []byte
	Frontmatter    Frontmatter
	HasFrontmatter bool
}

const schemaDoc = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "tokens": {"type": "array", "items": {"type": "string"}},
    "ast": {"type": "array", "items": {"type": "string"}},
    "hash": {"type": "string"},
    "min_tool_version": {"type": "string"}
  }
}`

// knownKeys is used to fuzzy-suggest a correction for an unknown
// frontmatter key, the same way the CLI suggests keywords.
var knownKeys = []string{"tokens", "ast", "hash", "min_tool_version"}

var frontmatterSchema = func() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	const url = "schema://fixture-frontmatter.json"
	if err := compiler.AddResource(url, strings.NewReader(schemaDoc)); err != nil {
		panic(errors.Wrap(err, "compiling fixture frontmatter schema"))
	}
	schema, err := compiler.Compile(url)
	if err != nil {
		panic(errors.Wrap(err, "compiling fixture frontmatter schema"))
	}
	return schema
}()

// Parse extracts the frontmatter block (if any) from raw fixture source,
// validates it, and returns a Fixture whose Source has the block removed.
func Parse(path string, raw []byte) (*Fixture, error) {
	loc := frontmatterPattern.FindSubmatchIndex(raw)
	if loc == nil {
		return &Fixture{Path: path, Source: raw}, nil
	}

	yamlBody := raw[loc[2]:loc[3]]
	rest := append(append([]byte{}, raw[:loc[0]]...), raw[loc[1]:]...)

	var rawDoc map[string]interface{}
	if err := yaml.Unmarshal(yamlBody, &rawDoc); err != nil {
		return nil, errkit.Wrap(err, "decoding fixture frontmatter YAML")
	}

	if err := validateFrontmatter(rawDoc); err != nil {
		return nil, err
	}

	var fm Frontmatter
	if err := yaml.Unmarshal(yamlBody, &fm); err != nil {
		return nil, errkit.Wrap(err, "decoding fixture frontmatter into struct")
	}

	return &Fixture{
		Path:           path,
		Source:         rest,
		Frontmatter:    fm,
		HasFrontmatter: true,
	}, nil
}

// validateFrontmatter runs the decoded YAML document (already JSON-shaped,
// since yaml.v3 decodes maps as map[string]interface{}) through the
// frontmatter JSON Schema, compiled once at package init.
func validateFrontmatter(doc map[string]interface{}) error {
	// jsonschema.Validate expects JSON-native types; round-trip through
	// encoding/json to normalize (e.g. YAML ints to float64).
	normalized, err := json.Marshal(doc)
	if err != nil {
		return errkit.Wrap(err, "normalizing fixture frontmatter")
	}
	var asJSON interface{}
	if err := json.Unmarshal(normalized, &asJSON); err != nil {
		return errkit.Wrap(err, "normalizing fixture frontmatter")
	}

	if err := frontmatterSchema.Validate(asJSON); err != nil {
		for key := range doc {
			found := false
			for _, known := range knownKeys {
				if key == known {
					found = true
					break
				}
			}
			if !found {
				suggestion := errkit.SuggestKeyword(key, knownKeys)
				return errkit.Diagnostic{
					Code:       errkit.CodeParse,
					Message:    fmt.Sprintf("unknown fixture frontmatter key %q", key),
					Suggestion: suggestion,
				}
			}
		}
		return errkit.Wrap(err, "fixture frontmatter failed schema validation")
	}
	return nil
}

// Skip reports whether this fixture declares a min_tool_version newer than
// toolVersion and should be skipped rather than failed.
func (f *Fixture) Skip(toolVersion string) (skip bool, reason string) {
	if f.Frontmatter.MinToolVersion == "" {
		return false, ""
	}
	want := canonicalSemver(f.Frontmatter.MinToolVersion)
	have := canonicalSemver(toolVersion)
	if semver.Compare(have, want) < 0 {
		return true, fmt.Sprintf("requires esfmt >= %s, running %s", f.Frontmatter.MinToolVersion, toolVersion)
	}
	return false, ""
}

func canonicalSemver(v string) string {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
