package prompt

import (
	"fmt"

	"google.golang.org/genai"
)

// SchemaType is the JSON type of a schema node.
type SchemaType string

const (
	SchemaObject SchemaType = "object"
	SchemaString SchemaType = "string"
	SchemaArray  SchemaType = "array"
)

// Schema is a provider-neutral description of the persona response shape.
// Properties keep declaration order in Order; every listed property is
// required.
type Schema struct {
	Type        SchemaType
	Description string
	Properties  map[string]*Schema
	Order       []string
	Items       *Schema
}

func str(desc string) *Schema {
	return &Schema{Type: SchemaString, Description: desc}
}

func strList(desc string) *Schema {
	return &Schema{Type: SchemaArray, Description: desc, Items: &Schema{Type: SchemaString}}
}

type prop struct {
	name   string
	schema *Schema
}

func obj(desc string, props ...prop) *Schema {
	s := &Schema{Type: SchemaObject, Description: desc, Properties: make(map[string]*Schema, len(props))}
	for _, p := range props {
		s.Properties[p.name] = p.schema
		s.Order = append(s.Order, p.name)
	}
	return s
}

var personaSchema = obj("",
	prop{"name", str("A short, catchy nickname for the persona (e.g., 'Modern Speed-Demon Salaryman').")},
	prop{"catchphrase", str("A dramatic, emotional tagline representing their core mindset.")},
	prop{"visualImage", str("Description of a visual icon or silhouette representing this user.")},
	prop{"keywords", strList("3-5 hashtags describing them (e.g., #TimePerformance).")},
	prop{"attributes", obj("",
		prop{"basic", str("Basic demographics (Age, Gender, Job, Status).")},
		prop{"playStyle", obj("",
			prop{"time", str("Typical playing hours.")},
			prop{"budget", str("Typical budget.")},
			prop{"hall", str("How they choose a parlor.")},
			prop{"literacy", str("Knowledge level.")},
		)},
	)},
	prop{"privateLife", obj("Deep dive into their private life to understand the context of their gambling.",
		prop{"dailyRoutine", str("A brief timeline of a typical day (e.g., '7AM Wake up -> 9PM Work ends -> Pachinko').")},
		prop{"hobbies", strList("Hobbies other than Pachinko (e.g., 'Watching YouTube', 'Sauna').")},
		prop{"stressors", strList("Major life stressors driving them to gamble (e.g., 'Loneliness', 'Overbearing boss').")},
	)},
	prop{"backgroundAnalysis", str("A cohesive narrative explaining why their lifestyle leads to this behavior.")},
	prop{"specs", obj("",
		prop{"summary", str("Overview of desired machine specs.")},
		prop{"details", strList("Specific requirements like '3000 fever', '81% loop'.")},
		prop{"latentNeed", str("The hidden, unconscious desire driving this spec preference (e.g., 'Reclaiming control over time', 'Erasing a sense of defeat').")},
	)},
	prop{"enshutsu", obj("",
		prop{"style", str("General preference for visual/audio presentation.")},
		prop{"behaviors", strList("Specific behaviors (e.g., 'Skips normal reach').")},
		prop{"psychologicalInsight", str("The psychological reason for this preference (e.g., 'Fear of disappointment leads to skipping animations', 'Need for social dominance').")},
	)},
	prop{"developerAdvice", obj("",
		prop{"dos", strList("Concrete features to implement.")},
		prop{"donts", strList("Features that cause abandonment.")},
	)},
)

// PersonaSchema returns the response contract shared by both input modes.
func PersonaSchema() *Schema {
	return personaSchema
}

// ToGenai converts the schema for GenerateContentConfig.ResponseSchema.
func (s *Schema) ToGenai() *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{Description: s.Description}
	switch s.Type {
	case SchemaObject:
		out.Type = genai.TypeObject
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for _, name := range s.Order {
			out.Properties[name] = s.Properties[name].ToGenai()
		}
		out.Required = append([]string(nil), s.Order...)
		out.PropertyOrdering = append([]string(nil), s.Order...)
	case SchemaArray:
		out.Type = genai.TypeArray
		out.Items = s.Items.ToGenai()
	default:
		out.Type = genai.TypeString
	}
	return out
}

// ToJSONSchema renders a strict JSON Schema document: all properties
// required and no additional properties.
func (s *Schema) ToJSONSchema() map[string]any {
	if s == nil {
		return nil
	}
	out := map[string]any{"type": string(s.Type)}
	if s.Description != "" {
		out["description"] = s.Description
	}
	switch s.Type {
	case SchemaObject:
		props := make(map[string]any, len(s.Properties))
		for _, name := range s.Order {
			props[name] = s.Properties[name].ToJSONSchema()
		}
		out["properties"] = props
		out["required"] = append([]string(nil), s.Order...)
		out["additionalProperties"] = false
	case SchemaArray:
		out["items"] = s.Items.ToJSONSchema()
	}
	return out
}

// Validate checks a decoded JSON value (as produced by encoding/json into
// any) against the schema: required keys present and JSON types matching.
// Extra keys are ignored.
func (s *Schema) Validate(value any) error {
	return s.validate("$", value)
}

func (s *Schema) validate(path string, value any) error {
	switch s.Type {
	case SchemaObject:
		m, ok := value.(map[string]any)
		if !ok {
			return fmt.Errorf("%s: expected object, got %s", path, jsonKind(value))
		}
		for _, name := range s.Order {
			child, ok := m[name]
			if !ok {
				return fmt.Errorf("%s.%s: missing required field", path, name)
			}
			if err := s.Properties[name].validate(path+"."+name, child); err != nil {
				return err
			}
		}
	case SchemaArray:
		items, ok := value.([]any)
		if !ok {
			return fmt.Errorf("%s: expected array, got %s", path, jsonKind(value))
		}
		if s.Items == nil {
			return nil
		}
		for i, item := range items {
			if err := s.Items.validate(fmt.Sprintf("%s[%d]", path, i), item); err != nil {
				return err
			}
		}
	case SchemaString:
		if _, ok := value.(string); !ok {
			return fmt.Errorf("%s: expected string, got %s", path, jsonKind(value))
		}
	}
	return nil
}

func jsonKind(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64:
		return "number"
	default:
		return fmt.Sprintf("%T", value)
	}
}
