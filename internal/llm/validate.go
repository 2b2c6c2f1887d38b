package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiled holds compiled schemas keyed by name and definition hash, so two
// activities sharing a name with different shapes do not collide.
var compiled sync.Map // string -> *jsonschema.Schema

// extractJSON strips the markdown fences and chatter models sometimes put
// around a JSON object.
func extractJSON(raw []byte) []byte {
	b := bytes.TrimSpace(raw)
	if bytes.HasPrefix(b, []byte("```")) {
		if nl := bytes.IndexByte(b, '\n'); nl >= 0 {
			b = b[nl+1:]
		}
		b = bytes.TrimSuffix(bytes.TrimSpace(b), []byte("```"))
		b = bytes.TrimSpace(b)
	}
	if len(b) > 0 && b[0] != '{' && b[0] != '[' {
		start := bytes.IndexAny(b, "{[")
		end := bytes.LastIndexAny(b, "}]")
		if start >= 0 && end > start {
			b = b[start : end+1]
		}
	}
	return b
}

// validateResponse returns the cleaned JSON when it satisfies schema.
func validateResponse(provider string, schema *Schema, raw json.RawMessage) (json.RawMessage, error) {
	if schema == nil {
		return raw, nil
	}
	clean := extractJSON(raw)

	var doc any
	if err := json.Unmarshal(clean, &doc); err != nil {
		return nil, invalidOutput(provider, raw, fmt.Errorf("not JSON: %w", err))
	}
	sch, err := compileSchema(schema)
	if err != nil {
		return nil, invalidOutput(provider, raw, err)
	}
	if err := sch.Validate(doc); err != nil {
		return nil, invalidOutput(provider, raw, fmt.Errorf("does not match %s: %w", schema.Name, err))
	}
	return json.RawMessage(clean), nil
}

func compileSchema(schema *Schema) (*jsonschema.Schema, error) {
	def, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema %s: %w", schema.Name, err)
	}
	h := fnv.New64a()
	h.Write(def)
	key := fmt.Sprintf("%s-%x", schema.Name, h.Sum64())
	if s, ok := compiled.Load(key); ok {
		return s.(*jsonschema.Schema), nil
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(def))
	if err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", schema.Name, err)
	}
	url := "mem://aidu/" + key + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("load schema %s: %w", schema.Name, err)
	}
	s, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", schema.Name, err)
	}
	compiled.Store(key, s)
	return s, nil
}
