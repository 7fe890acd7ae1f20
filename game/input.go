package game

// InputProvider translates a device or script into commands.
// It is polled once per frame before the simulation step.
type InputProvider interface {
	// Commands returns the commands for this frame given the last snapshot
	Commands(snap *Snapshot) []Command
}

// NoInput is an InputProvider that never issues commands
type NoInput struct{}

// Commands returns nil
func (NoInput) Commands(*Snapshot) []Command {
	return nil
}

// RunFrame runs one frame: poll input, apply it, then step the simulation
// unless the game is on the title screen or paused. It returns the snapshot
// to render and whether a quit was requested.
func RunFrame(g *Game, input InputProvider, deltaTime float64) (Snapshot, bool) {
	before := g.Snapshot()
	for _, cmd := range input.Commands(&before) {
		if g.Apply(cmd) {
			return g.Snapshot(), true
		}
	}

	if g.Level() > 0 && !g.Paused() {
		g.Update(deltaTime)
	}
	return g.Snapshot(), false
}

// MultiInput merges several providers, polling them in order
type MultiInput []InputProvider

// Commands concatenates the commands of every provider
func (m MultiInput) Commands(snap *Snapshot) []Command {
	var cmds []Command
	for _, input := range m {
		cmds = append(cmds, input.Commands(snap)...)
	}
	return cmds
}
