package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed *.yaml
var PrefabsFS embed.FS

// Dir is the on-disk directory whose files override the embedded prefabs.
var Dir = "prefabs"

// Load returns the prefab named name. A file under Dir wins over the copy
// compiled into the binary, so specs can be tuned without a rebuild. A
// leading "prefabs/" in name is ignored.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

// ModTime reports the modification time of the on-disk override for name;
// ok is false when only the embedded copy exists.
func ModTime(name string) (time.Time, bool) {
	clean := cleanPrefabPath(name)
	info, err := os.Stat(diskPrefabPath(clean))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// Stamps remembers the override mtime last seen per prefab so a reload can
// be skipped when a file was rewritten with identical timestamps.
type Stamps map[string]time.Time

// Changed records the current mtime of name and reports whether it differs
// from the last one recorded. A missing override counts as changed so the
// embedded copy is reloaded.
func (s Stamps) Changed(name string) bool {
	clean := cleanPrefabPath(name)
	mod, ok := ModTime(clean)
	if !ok {
		delete(s, clean)
		return true
	}
	if prev, seen := s[clean]; seen && prev.Equal(mod) {
		return false
	}
	s[clean] = mod
	return true
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "prefabs/") {
		return strings.TrimPrefix(s, "prefabs/")
	}
	return s
}

func diskPrefabPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
