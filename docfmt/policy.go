package docfmt

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LoadPolicy reads document-type rules from YAML and merges them over the
// built-in table. Fields omitted for a listed type keep their
// conservative defaults; types not listed keep the built-in rules.
func LoadPolicy(r io.Reader) (Policy, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("docfmt: read policy: %w", err)
	}
	loaded := Policy{}
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return nil, fmt.Errorf("docfmt: parse policy: %w", err)
	}
	merged := Default()
	for name, rules := range loaded {
		merged[name] = rules
	}
	return merged, nil
}

func (r *Rules) UnmarshalYAML(node *yaml.Node) error {
	type plain Rules
	tmp := plain(DefaultRules())
	if err := node.Decode(&tmp); err != nil {
		return err
	}
	*r = Rules(tmp)
	return nil
}

func (s *Spacing) UnmarshalYAML(node *yaml.Node) error {
	var v string
	if err := node.Decode(&v); err != nil {
		return err
	}
	switch v {
	case "", "single":
		*s = SpacingSingle
	case "one-half", "1.5":
		*s = SpacingOneHalf
	case "double":
		*s = SpacingDouble
	default:
		return fmt.Errorf("docfmt: unknown spacing %q", v)
	}
	return nil
}

func (n *NumberStyle) UnmarshalYAML(node *yaml.Node) error {
	var v string
	if err := node.Decode(&v); err != nil {
		return err
	}
	switch v {
	case "", "numeric":
		*n = StyleNumeric
	case "roman":
		*n = StyleRoman
	case "alpha":
		*n = StyleAlpha
	default:
		return fmt.Errorf("docfmt: unknown number style %q", v)
	}
	return nil
}

func (n *NumberPosition) UnmarshalYAML(node *yaml.Node) error {
	var v string
	if err := node.Decode(&v); err != nil {
		return err
	}
	switch v {
	case "", "bottom-center":
		*n = NumberBottomCenter
	case "bottom-right":
		*n = NumberBottomRight
	case "top-right":
		*n = NumberTopRight
	case "none":
		*n = NumberNone
	default:
		return fmt.Errorf("docfmt: unknown number position %q", v)
	}
	return nil
}
