package types

// Manifest holds the main attributes of a JAR manifest.
type Manifest struct {
	Main map[string]string
}

func (m *Manifest) Get(name string) (string, bool) {
	if m == nil || m.Main == nil {
		return "", false
	}
	value, ok := m.Main[name]
	return value, ok
}

// Is reports whether the attribute equals one of the targets.
func (m *Manifest) Is(name string, targets ...string) bool {
	value, ok := m.Get(name)
	if !ok {
		return false
	}
	for _, target := range targets {
		if value == target {
			return true
		}
	}
	return false
}
