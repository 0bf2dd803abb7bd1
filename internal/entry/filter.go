package entry

import (
	"log/slog"

	"termexec/internal/desktop"
)

// Rejection names the filter that dropped a descriptor.
type Rejection string

const (
	Accepted        Rejection = ""
	RejectHidden    Rejection = "hidden"
	RejectNotShowIn Rejection = "NotShowIn"
	RejectOnlyShow  Rejection = "OnlyShowIn"
	RejectTryExec   Rejection = "TryExec"
)

// Filter runs the visibility and availability checks in order and returns
// the first rejection, or Accepted.
func Filter(d Descriptor, desktops []string, hasBinary func(string) bool) Rejection {
	if d.Hidden() {
		return RejectHidden
	}
	if list, ok := d.Get("NotShowIn"); ok && desktop.Matches(list, desktops) {
		return RejectNotShowIn
	}
	if list, ok := d.Get("OnlyShowIn"); ok && !desktop.Matches(list, desktops) {
		return RejectOnlyShow
	}
	if bin, ok := d.Get("TryExec"); ok && !hasBinary(bin) {
		return RejectTryExec
	}
	return Accepted
}

// Resolver turns candidate ids into launchable descriptors.
type Resolver struct {
	Roots     []string
	Desktops  []string
	Parser    Parser
	HasBinary func(string) bool
	Log       *slog.Logger
}

// Resolve finds, parses and filters id. Every failure is a silent skip.
func (r Resolver) Resolve(id string) (Descriptor, bool) {
	log := r.Log
	if log == nil {
		log = slog.Default()
	}
	path, ok := Find(r.Roots, id)
	if !ok {
		log.Debug("candidate not found", "id", id)
		return nil, false
	}
	d, err := r.Parser.Parse(path)
	if err != nil {
		log.Debug("candidate unparsable", "id", id, "path", path, "err", err)
		return nil, false
	}
	if why := Filter(d, r.Desktops, r.HasBinary); why != Accepted {
		log.Debug("candidate rejected", "id", id, "path", path, "by", string(why))
		return nil, false
	}
	return d, true
}
