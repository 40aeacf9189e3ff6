package bot

import "github.com/lox/hanabiforbots/internal/game"

// DumbBot plays its newest card every turn regardless of the board. It burns
// through the fuse tokens within a few rounds and anchors the bottom of any
// ranking.
type DumbBot struct{}

func (DumbBot) Name() string        { return "dumb" }
func (DumbBot) Description() string { return "always plays the newest card" }

func (DumbBot) Decide(view *game.View) game.Action {
	return game.Play(0)
}
