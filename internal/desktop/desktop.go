package desktop

import (
	"errors"
	"strings"
)

const CurrentDesktopEnv = "XDG_CURRENT_DESKTOP"

var ErrMissingDesktopContext = errors.New("XDG_CURRENT_DESKTOP is not set")

// Current returns the ordered desktop ids from XDG_CURRENT_DESKTOP.
// Ids are compared case-sensitively downstream, so no normalization here.
func Current(lookup func(string) (string, bool)) ([]string, error) {
	v, ok := lookup(CurrentDesktopEnv)
	if !ok {
		return nil, ErrMissingDesktopContext
	}
	return Split(v), nil
}

// Split splits a colon separated desktop value, dropping empty tokens.
func Split(v string) []string {
	ids := []string{}
	for _, id := range strings.Split(v, ":") {
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// Matches reports whether any item of a ';' separated list equals one of
// the given desktop ids.
func Matches(list string, desktops []string) bool {
	for _, item := range strings.Split(list, ";") {
		if item == "" {
			continue
		}
		for _, d := range desktops {
			if d == item {
				return true
			}
		}
	}
	return false
}
