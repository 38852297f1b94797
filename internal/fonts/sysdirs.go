package fonts

import (
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
)

// systemFontDirs maps GOOS to its fixed system font directories. The table
// is data rather than compiled-in branching so alternate layouts are
// swappable without touching resolution logic; per-user directories that
// depend on the environment are appended by systemDirsFor.
var systemFontDirs = map[string][]string{
	"linux": {
		"/usr/share/fonts",
		"/usr/local/share/fonts",
	},
	"darwin": {
		"/Library/Fonts",
		"/System/Library/Fonts",
		"/Network/Library/Fonts",
	},
	"windows": {
		`C:\Windows\Fonts`,
	},
}

// SystemDirs returns the font directories to scan on the current OS,
// including per-user locations derived from the environment.
func SystemDirs() []string {
	return systemDirsFor(runtime.GOOS, os.Getenv)
}

// systemDirsFor computes the directory list for the given OS using the
// given environment lookup. Split out so tests can cover every platform
// table from one machine.
func systemDirsFor(goos string, getenv func(string) string) []string {
	dirs := slices.Clone(systemFontDirs[goos])

	switch goos {
	case "linux":
		data := getenv("XDG_DATA_HOME")
		if data == "" {
			if home := getenv("HOME"); home != "" {
				data = filepath.Join(home, ".local", "share")
			}
		}
		if data != "" {
			dirs = append(dirs, filepath.Join(data, "fonts"))
		}
	case "darwin":
		dirs = append(dirs, assetFontDirs("/System/Library/AssetsV2")...)
		if home := getenv("HOME"); home != "" {
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		}
	case "windows":
		if windir := getenv("WINDIR"); windir != "" {
			dirs = []string{filepath.Join(windir, "Fonts")}
		}
		if roaming := getenv("APPDATA"); roaming != "" {
			dirs = append(dirs, filepath.Join(roaming, "Microsoft", "Windows", "Fonts"))
		}
		if local := getenv("LOCALAPPDATA"); local != "" {
			dirs = append(dirs, filepath.Join(local, "Microsoft", "Windows", "Fonts"))
		}
	}
	return dirs
}

// assetFontDirs lists the downloadable-font asset directories under the
// macOS AssetsV2 root. Their exact names vary across major releases; every
// subdirectory carrying the mobile-asset font prefix is a candidate.
func assetFontDirs(root string) []string {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}
	var dirs []string
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), "com_apple_MobileAsset_Font") {
			dirs = append(dirs, filepath.Join(root, entry.Name()))
		}
	}
	return dirs
}
