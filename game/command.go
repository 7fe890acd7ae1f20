package game

// CommandKind identifies a player intent delivered by an input provider
type CommandKind int

const (
	// CommandQuit ends the process
	CommandQuit CommandKind = iota

	// CommandPlayPause starts a game from the title, otherwise toggles pause
	CommandPlayPause

	// CommandReturnOrQuit quits from the title, otherwise returns to the title
	CommandReturnOrQuit

	// CommandShootAt fires at Target
	CommandShootAt

	// CommandSteerTo steers the ship towards Target
	CommandSteerTo

	// CommandStopSteering cancels steering
	CommandStopSteering
)

// Command is one discrete input. Target is in playfield coordinates.
type Command struct {
	Kind   CommandKind
	Target Vector2D
}

// ShootAt builds a CommandShootAt
func ShootAt(x, y float64) Command {
	return Command{Kind: CommandShootAt, Target: Vector2D{X: x, Y: y}}
}

// SteerTo builds a CommandSteerTo
func SteerTo(x, y float64) Command {
	return Command{Kind: CommandSteerTo, Target: Vector2D{X: x, Y: y}}
}

// Apply executes a command against the game and reports whether the
// process should quit. Commands that make no sense in the current
// state are ignored.
func (g *Game) Apply(cmd Command) bool {
	switch cmd.Kind {
	case CommandQuit:
		return true
	case CommandReturnOrQuit:
		if g.level == 0 {
			return true
		}
		g.ReturnToTitle()
	case CommandPlayPause:
		if g.level == 0 {
			g.StartGame()
		} else {
			g.TogglePause()
		}
	case CommandShootAt:
		if g.level > 0 && !g.paused {
			g.ShootAt(cmd.Target)
		}
	case CommandSteerTo:
		if g.level > 0 && !g.paused {
			g.FlyTo(cmd.Target)
		}
	case CommandStopSteering:
		if g.level > 0 {
			g.StopFlying()
		}
	}
	return false
}
