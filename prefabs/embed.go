package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// LoadScript prefers prefabs/scripts on disk so edits hot reload, then the
// embedded copy.
func LoadScript(name string) ([]byte, error) {
	if data, err := os.ReadFile(name); err == nil && filepath.Ext(name) == ".tengo" {
		return data, nil
	}
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

//go:embed *.yaml *.toml
var PrefabsFS embed.FS

// Load reads a prefab from prefabs/ on disk, then from name as a plain
// path, then from the embedded copy.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	if data, err := os.ReadFile(name); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

func cleanPrefabPath(path string) string {
	return strings.TrimPrefix(filepath.ToSlash(path), "prefabs/")
}

func cleanScriptPath(path string) string {
	s := strings.TrimPrefix(cleanPrefabPath(path), "scripts/")
	if s == "" {
		return ""
	}
	return "scripts/" + s
}

func diskPrefabPath(clean string) string {
	return filepath.Join("prefabs", filepath.FromSlash(clean))
}
