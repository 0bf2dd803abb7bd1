package basedir

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Prefix namespaces descriptor directories under each data root.
const Prefix = "xdg-terminals"

const listSuffix = "terminals.list"

var ErrBaseDirs = errors.New("cannot determine base directories")

// Dirs lists search roots, user root first, then system roots.
type Dirs interface {
	ConfigDirs() ([]string, error)
	DataDirs() ([]string, error)
}

// XDG reads the base directory spec through adrg/xdg.
type XDG struct{}

func (XDG) ConfigDirs() ([]string, error) {
	xdg.Reload()
	if xdg.ConfigHome == "" {
		return nil, errors.New("no user config directory")
	}
	return append([]string{xdg.ConfigHome}, xdg.ConfigDirs...), nil
}

func (XDG) DataDirs() ([]string, error) {
	xdg.Reload()
	if xdg.DataHome == "" {
		return nil, errors.New("no user data directory")
	}
	return append([]string{xdg.DataHome}, xdg.DataDirs...), nil
}

// ListFileNames returns "<id>-terminals.list" per desktop, then the generic list.
func ListFileNames(desktops []string) []string {
	names := make([]string, 0, len(desktops)+1)
	for _, d := range desktops {
		names = append(names, d+"-"+listSuffix)
	}
	return append(names, listSuffix)
}

// ConfigPaths joins every config root with every name and keeps the
// existing files, root-major.
func ConfigPaths(dirs Dirs, names []string) ([]string, error) {
	roots, err := dirs.ConfigDirs()
	if err != nil {
		return nil, errors.Join(ErrBaseDirs, err)
	}
	var out []string
	for _, root := range roots {
		for _, name := range names {
			p := filepath.Join(root, name)
			if exists(p) {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

// DataRoots returns the existing prefixed data directories.
func DataRoots(dirs Dirs) ([]string, error) {
	roots, err := dirs.DataDirs()
	if err != nil {
		return nil, errors.Join(ErrBaseDirs, err)
	}
	var out []string
	for _, root := range roots {
		p := filepath.Join(root, Prefix)
		if exists(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

// exists treats any stat failure, permission errors included, as absence.
func exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
