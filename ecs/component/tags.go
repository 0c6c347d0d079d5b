package component

type FollowerTag struct{}

var FollowerTagComponent = NewComponent[FollowerTag]()

// Name labels an entity for logs and cue scripts.
type Name struct {
	Value string
}

var NameComponent = NewComponent[Name]()
