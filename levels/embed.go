package levels

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.txt *.yaml
var LevelsFS embed.FS

// Load reads a level file, preferring a copy on disk under levels/ so maps
// can be edited without rebuilding.
func Load(name string) ([]byte, error) {
	clean := cleanLevelPath(name)
	if data, err := os.ReadFile(diskLevelPath(clean)); err == nil {
		return data, nil
	}
	return LevelsFS.ReadFile(clean)
}

func cleanLevelPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		return after
	}
	return s
}

func diskLevelPath(clean string) string {
	return filepath.Join("levels", filepath.FromSlash(clean))
}
