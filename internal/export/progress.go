package export

// Progress receives the status of each export stage.
type Progress interface {
	// Begin announces a stage and returns its step.
	Begin(message string) Step
}

// Step is a running stage. Exactly one of its methods ends it. An empty
// message repeats the one passed to Begin.
type Step interface {
	Succeed(message string)
	Info(message string)
	Warn(message string)
	Fail(message string)
}

// Discard is a Progress that reports nothing.
var Discard Progress = discard{}

type discard struct{}

func (discard) Begin(string) Step { return discard{} }
func (discard) Succeed(string)    {}
func (discard) Info(string)       {}
func (discard) Warn(string)       {}
func (discard) Fail(string)       {}
