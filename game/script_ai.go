package game

import (
	"fmt"
	"sort"
)

// ScriptContext is passed to pilot scripts as input.
// Coordinates are in playfield units.
type ScriptContext struct {
	// Game state
	Phase      string  `json:"phase"`
	Level      int     `json:"level"`
	Lives      int     `json:"lives"`
	Score      int     `json:"score"`
	Paused     bool    `json:"paused"`
	FreezeTime float64 `json:"freezeTime"`

	// Ship state
	ShipActive bool    `json:"shipActive"`
	ShipX      float64 `json:"shipX"`
	ShipY      float64 `json:"shipY"`
	ShipVX     float64 `json:"shipVX"`
	ShipVY     float64 `json:"shipVY"`
	Shielded   bool    `json:"shielded"`

	// BulletLive is true while shooting would be ignored
	BulletLive bool `json:"bulletLive"`

	// Sorted nearest first when the ship is alive
	Enemies  []ScriptEntity `json:"enemies"`
	PowerUps []ScriptEntity `json:"powerUps"`
}

// ScriptEntity describes an enemy or power-up to a script
type ScriptEntity struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	VX       float64 `json:"vx"`
	VY       float64 `json:"vy"`
	Radius   float64 `json:"radius"`
	Distance float64 `json:"distance"` // from the ship, 0 when there is none
	Kind     string  `json:"kind"`     // enemy size or power-up variant

	// Where to shoot to hit a moving enemy, see PredictiveAim.
	// Equal to X and Y when there is no ship.
	LeadX float64 `json:"leadX"`
	LeadY float64 `json:"leadY"`
}

// ScriptDecision is returned from pilot scripts
type ScriptDecision struct {
	// Stop cancels steering before any new steering is applied
	Stop bool `json:"stop"`

	Steer  bool    `json:"steer"`
	SteerX float64 `json:"steerX"`
	SteerY float64 `json:"steerY"`

	Shoot  bool    `json:"shoot"`
	ShootX float64 `json:"shootX"`
	ShootY float64 `json:"shootY"`
}

// Commands converts the decision to commands in stop, steer, shoot order
func (d ScriptDecision) Commands() []Command {
	cmds := make([]Command, 0, 3)
	if d.Stop {
		cmds = append(cmds, Command{Kind: CommandStopSteering})
	}
	if d.Steer {
		cmds = append(cmds, SteerTo(d.SteerX, d.SteerY))
	}
	if d.Shoot {
		cmds = append(cmds, ShootAt(d.ShootX, d.ShootY))
	}
	return cmds
}

// BuildScriptContext creates a ScriptContext from a snapshot.
// The config is needed to compute enemy leads.
func BuildScriptContext(config Config, snap *Snapshot) ScriptContext {
	ctx := ScriptContext{
		Phase:      snap.Phase.String(),
		Level:      snap.Level,
		Lives:      snap.Lives,
		Score:      snap.Score,
		Paused:     snap.Paused,
		FreezeTime: snap.FreezeTimer,
		BulletLive: snap.BulletLive(),
		Enemies:    []ScriptEntity{},
		PowerUps:   []ScriptEntity{},
	}

	ship, hasShip := snap.Ship()
	if hasShip {
		ctx.ShipActive = true
		ctx.ShipX = ship.Position.X
		ctx.ShipY = ship.Position.Y
		ctx.ShipVX = ship.Velocity.X
		ctx.ShipVY = ship.Velocity.Y
		ctx.Shielded = ship.Shielded
	}

	for _, sprite := range snap.Sprites {
		info := ScriptEntity{
			X:      sprite.Position.X,
			Y:      sprite.Position.Y,
			VX:     sprite.Velocity.X,
			VY:     sprite.Velocity.Y,
			Radius: sprite.Radius,
			LeadX:  sprite.Position.X,
			LeadY:  sprite.Position.Y,
		}
		if hasShip {
			info.Distance = ship.Position.Distance(sprite.Position)
		}

		switch sprite.Kind {
		case EntityKindEnemy:
			info.Kind = sprite.EnemyKind.String()
			if hasShip {
				lead := PredictiveAim(config, ship.Position, sprite.Position, sprite.Velocity)
				info.LeadX, info.LeadY = lead.X, lead.Y
			}
			ctx.Enemies = append(ctx.Enemies, info)
		case EntityKindPowerUp:
			info.Kind = sprite.PowerUp.String()
			ctx.PowerUps = append(ctx.PowerUps, info)
		}
	}

	if hasShip {
		byDistance := func(list []ScriptEntity) {
			sort.SliceStable(list, func(i, j int) bool { return list[i].Distance < list[j].Distance })
		}
		byDistance(ctx.Enemies)
		byDistance(ctx.PowerUps)
	}

	return ctx
}

// ScriptInput is an InputProvider backed by a pilot script.
// A script failure stops the run with CommandQuit; Err reports the cause.
type ScriptInput struct {
	config Config
	runner *ScriptRunner
	err    error
}

// NewScriptInput compiles code and wraps it as an input provider
// for a game running with config
func NewScriptInput(config Config, code string) (*ScriptInput, error) {
	runner, err := NewScriptRunner(code)
	if err != nil {
		return nil, err
	}
	return &ScriptInput{config: config, runner: runner}, nil
}

// Commands asks the script for a decision while a game is running
func (s *ScriptInput) Commands(snap *Snapshot) []Command {
	if s.err != nil {
		return []Command{{Kind: CommandQuit}}
	}
	if snap.Phase == PhaseTitle || snap.Paused {
		return nil
	}

	decision, err := s.runner.Decide(BuildScriptContext(s.config, snap))
	if err != nil {
		s.err = fmt.Errorf("pilot script at level %d: %w", snap.Level, err)
		return []Command{{Kind: CommandQuit}}
	}
	return decision.Commands()
}

// Err returns the script error that ended the run, if any
func (s *ScriptInput) Err() error {
	return s.err
}

// ExampleScript shoots at the nearest enemy and chases the nearest power-up
const ExampleScript = `
function decide(ctx) {
  var out = { stop: true, steer: false, shoot: false };
  if (!ctx.shipActive) {
    return out;
  }
  if (!ctx.bulletLive && ctx.enemies.length > 0) {
    var target = ctx.enemies[0];
    out.shoot = true;
    out.shootX = target.leadX;
    out.shootY = target.leadY;
  }
  if (ctx.powerUps.length > 0) {
    out.steer = true;
    out.steerX = ctx.powerUps[0].x;
    out.steerY = ctx.powerUps[0].y;
  }
  return out;
}
`
