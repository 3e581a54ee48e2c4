package value

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// BoxYAMLNode boxes a decoded YAML tree. Scalars are classified by their
// resolved YAML tag, so a `true` stays boolean and `3` stays an integer
// regardless of spelling. Nodes that fail strict parsing keep their raw
// string form rather than erroring; boxing never fails.
func BoxYAMLNode(node *yaml.Node) Value {
	if node == nil {
		return Empty()
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Empty()
		}
		return BoxYAMLNode(node.Content[0])
	case yaml.AliasNode:
		return BoxYAMLNode(node.Alias)
	case yaml.MappingNode:
		mapping := make(map[string]Value, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			mapping[node.Content[i].Value] = BoxYAMLNode(node.Content[i+1])
		}
		return Value{kind: KindMapping, mapping: mapping}
	case yaml.SequenceNode:
		sequence := make([]Value, 0, len(node.Content))
		for _, el := range node.Content {
			sequence = append(sequence, BoxYAMLNode(el))
		}
		return Value{kind: KindSequence, sequence: sequence}
	case yaml.ScalarNode:
		return boxYAMLScalar(node)
	default:
		return Empty()
	}
}

func boxYAMLScalar(node *yaml.Node) Value {
	switch node.Tag {
	case "!!null":
		return Empty()
	case "!!bool":
		if b, err := strconv.ParseBool(node.Value); err == nil {
			return BoxBool(b)
		}
	case "!!int":
		if i, err := strconv.ParseInt(node.Value, 0, 64); err == nil {
			return BoxInt(i)
		}
	case "!!float":
		if f, err := strconv.ParseFloat(node.Value, 64); err == nil {
			return BoxFloat(f)
		}
	}
	return BoxString(node.Value)
}
