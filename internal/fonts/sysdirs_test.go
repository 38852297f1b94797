package fonts

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func env(pairs map[string]string) func(string) string {
	return func(key string) string { return pairs[key] }
}

func TestSystemDirsLinux(t *testing.T) {
	dirs := systemDirsFor("linux", env(map[string]string{
		"XDG_DATA_HOME": "/custom/data",
	}))
	assert.Contains(t, dirs, "/usr/share/fonts")
	assert.Contains(t, dirs, "/usr/local/share/fonts")
	assert.Contains(t, dirs, filepath.Join("/custom/data", "fonts"))
}

func TestSystemDirsLinuxHomeFallback(t *testing.T) {
	dirs := systemDirsFor("linux", env(map[string]string{
		"HOME": "/home/u",
	}))
	assert.Contains(t, dirs, "/home/u/.local/share/fonts")
}

func TestSystemDirsLinuxNoEnv(t *testing.T) {
	dirs := systemDirsFor("linux", env(nil))
	assert.Equal(t, []string{"/usr/share/fonts", "/usr/local/share/fonts"}, dirs)
}

func TestSystemDirsDarwin(t *testing.T) {
	dirs := systemDirsFor("darwin", env(map[string]string{
		"HOME": "/Users/u",
	}))
	assert.Contains(t, dirs, "/Library/Fonts")
	assert.Contains(t, dirs, "/System/Library/Fonts")
	assert.Contains(t, dirs, "/Network/Library/Fonts")
	assert.Contains(t, dirs, "/Users/u/Library/Fonts")
}

func TestSystemDirsWindows(t *testing.T) {
	dirs := systemDirsFor("windows", env(map[string]string{
		"WINDIR":       `D:\Win`,
		"APPDATA":      `C:\Users\u\AppData\Roaming`,
		"LOCALAPPDATA": `C:\Users\u\AppData\Local`,
	}))
	assert.Contains(t, dirs, filepath.Join(`D:\Win`, "Fonts"))
	assert.Len(t, dirs, 3)
}

func TestSystemDirsUnknownOS(t *testing.T) {
	assert.Empty(t, systemDirsFor("plan9", env(nil)))
}

func TestSystemDirsTableNotShared(t *testing.T) {
	first := systemDirsFor("linux", env(map[string]string{"HOME": "/h"}))
	second := systemDirsFor("linux", env(nil))
	// Appending user dirs must not mutate the shared table.
	assert.NotEqual(t, first, second)
	assert.Equal(t, []string{"/usr/share/fonts", "/usr/local/share/fonts"}, second)
}
