package autoscroll

// TestRunner sequences injected input across frames so a scenario plays
// back deterministically. Attach to a Scene via SetTestRunner.
type TestRunner struct {
	steps     []ScenarioStep
	cursor    int
	waitCount int
	done      bool
}

// NewTestRunner returns a runner for steps. Steps are assumed validated.
func NewTestRunner(steps []ScenarioStep) *TestRunner {
	return &TestRunner{steps: steps, done: len(steps) == 0}
}

// SetTestRunner attaches a TestRunner to the scene. The runner's step method
// is called from Scene.Update before processInput each frame.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Scene.Update.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		if r.waitCount == 0 && r.cursor >= len(r.steps) {
			r.done = true
		}
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case ActionPress:
		s.InjectPress(st.X, st.Y)
	case ActionMove:
		s.InjectMove(st.X, st.Y)
	case ActionRelease:
		s.InjectRelease(st.X, st.Y)
	case ActionDrag:
		s.InjectDrag(st.X, st.Y, st.ToX, st.ToY, max(st.Frames, 2))
	case ActionWait:
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) <= 1 {
		// The last injected event is consumed later this frame.
		r.done = true
	}
}
