package component

// CueScript attaches a tengo cue script to a follower. The script's update
// function runs once per tick and may call the follower's trigger functions.
type CueScript struct {
	Path string
}

var CueScriptComponent = NewComponent[CueScript]()
