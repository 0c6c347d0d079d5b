package route

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrInvalidIndex = errors.New("route: index out of range")
	ErrEmptyGroup   = errors.New("route: group has no waypoints")
	ErrNoGroups     = errors.New("route: no groups")
)

// Group is a named alternative path.
type Group struct {
	Name string
	Path Path
}

// Route is the full set of waypoint groups available to a follower. Revision
// changes every time the route is (re)loaded.
type Route struct {
	Name     string
	Revision uuid.UUID
	Groups   []Group
}

func NewRoute(name string, groups ...Group) *Route {
	return &Route{Name: name, Revision: uuid.New(), Groups: groups}
}

func (r *Route) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Groups)
}

// Group returns group i. An empty group is returned together with
// ErrEmptyGroup so callers can report it and still load it.
func (r *Route) Group(i int) (Group, error) {
	if r == nil || len(r.Groups) == 0 {
		return Group{}, ErrNoGroups
	}
	if i < 0 || i >= len(r.Groups) {
		return Group{}, fmt.Errorf("%w: group %d of %d", ErrInvalidIndex, i, len(r.Groups))
	}
	g := r.Groups[i]
	if len(g.Path) == 0 {
		return g, fmt.Errorf("%w: %q", ErrEmptyGroup, g.Name)
	}
	return g, nil
}

// IndexOf returns the index of the group with the given name, or -1.
func (r *Route) IndexOf(name string) int {
	if r == nil {
		return -1
	}
	for i, g := range r.Groups {
		if g.Name == name {
			return i
		}
	}
	return -1
}
