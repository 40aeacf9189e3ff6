// Package game implements the state machine for a single game of Duck
// Hanabi: the seeded deal, the play/discard/clue actions with their token
// economy, the final-round countdown and the terminal conditions.
//
// # Basic Usage
//
//	state, err := game.New(3, 42)
//	if err != nil {
//		return err
//	}
//	for !state.Over() {
//		seat := state.CurrentPlayer()
//		action := decide(state.View(seat))
//		if err := state.Apply(seat, action); err != nil {
//			return err
//		}
//	}
//	fmt.Println(state.Score())
//
// Apply validates the action completely before mutating anything, so an
// illegal action (wrong turn, discarding at eight clue tokens, a clue that
// touches nothing) returns an IllegalActionError and leaves the state
// untouched.
//
// # Deterministic Testing
//
// The same player count and seed always produce the same deal, so games are
// reproducible end to end. Tests that need a specific deal bypass the
// shuffle entirely with WithDeck:
//
//	d := deck.FromCards(cards)
//	state, err := game.New(2, 0, game.WithDeck(d))
//
// # Information Model
//
// Bots never touch State directly. A View is a deep-copied snapshot that
// withholds the seat's own cards; asking for them panics. FullAccess is the
// deliberately separate cheating channel that can read every hand but still
// cannot write. Both expose the same board predicates, so strategies move
// between the two without relearning the API.
package game
