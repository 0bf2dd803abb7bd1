package entry

import (
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// Section is the only descriptor section we read.
const Section = "Desktop Entry"

// Descriptor holds the attributes of a descriptor's Desktop Entry section.
type Descriptor map[string]string

func (d Descriptor) Get(key string) (string, bool) {
	v, ok := d[key]
	return v, ok
}

func (d Descriptor) Hidden() bool { return d["Hidden"] == "true" }

func (d Descriptor) Exec() (string, bool) { return d.Get("Exec") }

// ExecArg returns X-ExecArg, then ExecArg, then def.
func (d Descriptor) ExecArg(def string) string {
	if v, ok := d["X-ExecArg"]; ok {
		return v
	}
	if v, ok := d["ExecArg"]; ok {
		return v
	}
	return def
}

type Parser interface {
	Parse(path string) (Descriptor, error)
}

// IniParser reads desktop entry files with go-ini. Inline comments and
// line continuation are off so ';' lists and trailing backslashes survive,
// and surrounding quotes are kept so Exec reaches the shell as written.
// go-ini still unwraps values that start with a backtick or '"""'.
type IniParser struct{}

func (IniParser) Parse(path string) (Descriptor, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:     true,
		IgnoreContinuation:      true,
		KeyValueDelimiters:      "=",
		PreserveSurroundedQuote: true,
	}, path)
	if err != nil {
		return nil, err
	}
	d := Descriptor{}
	sec, err := f.GetSection(Section)
	if err != nil {
		return d, nil
	}
	for _, k := range sec.Keys() {
		d[k.Name()] = k.Value()
	}
	return d, nil
}

// Find returns the first regular file named id under roots.
func Find(roots []string, id string) (string, bool) {
	if id == "" {
		return "", false
	}
	for _, root := range roots {
		p := filepath.Join(root, id)
		fi, err := os.Stat(p)
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}
		return p, true
	}
	return "", false
}
