package core

// EventKind names a discrete gameplay occurrence that the presentation layer
// may turn into a sound or a screen effect.
type EventKind string

const (
	EventCollision       EventKind = "collision"
	EventPowerUp         EventKind = "powerup"
	EventLevelUp         EventKind = "level_up"
	EventBoostStart      EventKind = "boost_start"
	EventProjectileFired EventKind = "projectile_fired"
	EventCloseCall       EventKind = "close_call"
	EventComboEnd        EventKind = "combo_end"
	EventAchievement     EventKind = "achievement"
	EventGameOver        EventKind = "game_over"
	EventTimeUp          EventKind = "time_up"
)

// Event is emitted by a simulation step. Detail qualifies the kind
// (power-up type, achievement id, close-call tier) and Value carries
// an associated number such as points or the new level.
type Event struct {
	Kind   EventKind
	Detail string
	Value  int
}
