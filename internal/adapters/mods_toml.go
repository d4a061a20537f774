package adapters

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/pelletier/go-toml/v2"

	"depextract/internal/ports"
	"depextract/internal/types"
)

// ModsTomlAdapter decodes descriptors generically so that a mistyped
// "dependencies" key can be reported instead of failing the whole document.
type ModsTomlAdapter struct{}

func NewModsTomlAdapter() ModsTomlAdapter {
	return ModsTomlAdapter{}
}

func (a ModsTomlAdapter) ParseDescriptor(data []byte) (types.ModsDescriptor, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return types.ModsDescriptor{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse mods.toml").
			WithCause(err)
	}

	descriptor := types.ModsDescriptor{}
	for _, raw := range tableList(doc["mods"]) {
		mod := types.DescriptorMod{
			ModID:       stringValue(raw, "modId"),
			DisplayName: stringValue(raw, "displayName"),
		}
		if value, ok := raw["version"].(string); ok {
			mod.Version = value
			mod.HasVersion = true
		}
		descriptor.Mods = append(descriptor.Mods, mod)
	}

	rawDeps, present := doc["dependencies"]
	if !present {
		return descriptor, nil
	}
	table, ok := rawDeps.(map[string]any)
	if !ok {
		descriptor.DependenciesKind = tomlKind(rawDeps)
		return descriptor, nil
	}
	descriptor.Dependencies = map[string][]types.DescriptorDependency{}
	for modID, value := range table {
		for _, raw := range tableList(value) {
			descriptor.Dependencies[modID] = append(descriptor.Dependencies[modID], decodeDependency(raw))
		}
	}
	return descriptor, nil
}

func decodeDependency(raw map[string]any) types.DescriptorDependency {
	dep := types.DescriptorDependency{
		ModID:    stringValue(raw, "modId"),
		Ordering: stringValue(raw, "ordering"),
		Side:     stringValue(raw, "side"),
	}
	if value, ok := raw["versionRange"].(string); ok {
		dep.VersionRange = value
	}
	if value, ok := raw["type"]; ok {
		dep.Type = fmt.Sprint(value)
		dep.HasType = true
	}
	if value, ok := raw["mandatory"].(bool); ok {
		mandatory := value
		dep.Mandatory = &mandatory
	}
	return dep
}

func tableList(value any) []map[string]any {
	switch typed := value.(type) {
	case []any:
		out := make([]map[string]any, 0, len(typed))
		for _, item := range typed {
			if table, ok := item.(map[string]any); ok {
				out = append(out, table)
			}
		}
		return out
	case []map[string]any:
		return typed
	default:
		return nil
	}
}

func stringValue(table map[string]any, key string) string {
	value, _ := table[key].(string)
	return value
}

func tomlKind(value any) string {
	switch value.(type) {
	case []any, []map[string]any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int64, float64:
		return "number"
	default:
		return fmt.Sprintf("%T", value)
	}
}

var _ ports.DescriptorPort = ModsTomlAdapter{}
