// Package turn describes where a match's moves come from. The engine never
// consults it; callers use it to decide between handing the device to the
// next player and waiting for a remote move.
package turn

import (
	"fmt"

	"github.com/mcoot/wordtiles/internal/model"
)

// Source is the capability every turn source exposes
type Source interface {
	IsLocal() bool
	Kind() string
}

const (
	KindLocal  = "local"
	KindRemote = "remote"
)

// Local alternates players on one device
type Local struct{}

func (Local) IsLocal() bool { return true }
func (Local) Kind() string  { return KindLocal }

// Remote synchronises moves from other devices
type Remote struct{}

func (Remote) IsLocal() bool { return false }
func (Remote) Kind() string  { return KindRemote }

var (
	_ Source = Local{}
	_ Source = Remote{}
)

// Parse returns the source for a kind. An empty kind is local
func Parse(kind string) (Source, error) {
	switch kind {
	case "", KindLocal:
		return Local{}, nil
	case KindRemote:
		return Remote{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidTurnSource, kind)
	}
}
