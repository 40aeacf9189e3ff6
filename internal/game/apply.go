package game

import (
	"fmt"

	"github.com/lox/hanabiforbots/internal/deck"
)

// Apply validates and applies one action for seat. Validation is complete
// before any mutation starts, so a rejected action leaves the state exactly
// as it was. On success the turn advances and the terminal status is
// re-evaluated.
func (s *State) Apply(seat int, a Action) error {
	if err := s.validate(seat, a); err != nil {
		return &IllegalActionError{Seat: seat, Action: a, Err: err}
	}

	switch a.Type {
	case ActionPlay:
		s.playCard(seat, a.Slot)
	case ActionDiscard:
		s.discardCard(seat, a.Slot)
	case ActionClue:
		s.applyClue(seat, a)
	}

	if s.countdown == countdownInactive && s.deck.Empty() {
		s.countdown = s.numPlayers + 1
	}
	if s.countdown != countdownInactive {
		s.countdown--
	}
	s.turn++
	s.updateStatus()

	return nil
}

func (s *State) validate(seat int, a Action) error {
	if s.status != StatusOngoing {
		return ErrGameOver
	}
	if seat < 0 || seat >= s.numPlayers {
		return fmt.Errorf("%w: seat %d", ErrInvalidSeat, seat)
	}
	if seat != s.CurrentPlayer() {
		return fmt.Errorf("%w: seat %d acted, seat %d is up", ErrWrongTurn, seat, s.CurrentPlayer())
	}

	switch a.Type {
	case ActionPlay:
		return s.validateSlot(seat, a.Slot)
	case ActionDiscard:
		if s.clueTokens >= MaxClueTokens {
			return ErrMaxClueTokens
		}
		return s.validateSlot(seat, a.Slot)
	case ActionClue:
		return s.validateClue(seat, a)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownAction, int(a.Type))
	}
}

func (s *State) validateSlot(seat, slot int) error {
	if slot < 0 || slot >= len(s.hands[seat]) {
		return fmt.Errorf("%w: slot %d, hand has %d cards", ErrInvalidSlot, slot, len(s.hands[seat]))
	}
	return nil
}

func (s *State) validateClue(seat int, a Action) error {
	if s.clueTokens <= 0 {
		return ErrNoClueTokens
	}
	if a.Target < 0 || a.Target >= s.numPlayers {
		return fmt.Errorf("%w: target seat %d", ErrInvalidSeat, a.Target)
	}
	if a.Target == seat {
		return ErrClueSelf
	}
	if err := s.rules.CheckClue(a.Clue); err != nil {
		return err
	}
	if len(TouchedSlots(s.rules, s.hands[a.Target], a.Clue)) == 0 {
		return ErrClueTouchesNothing
	}
	return nil
}

// playCard attempts to push the slot's card onto its stack. A successful
// play of the top rank completes the stack and refunds one clue token; a
// misplay burns a fuse and the card goes to the discard pile. Either way the
// player draws a replacement.
func (s *State) playCard(seat, slot int) {
	card := s.removeCard(seat, slot)
	if s.stacks.Playable(card) {
		s.stacks[card.Color] = card.Rank
		if card.Rank == s.maxRank && s.clueTokens < MaxClueTokens {
			s.clueTokens++
		}
	} else {
		s.discards = append(s.discards, card)
		s.fuseTokens--
	}
	s.draw(seat)
}

func (s *State) discardCard(seat, slot int) {
	card := s.removeCard(seat, slot)
	s.discards = append(s.discards, card)
	s.draw(seat)
	s.clueTokens++
}

// applyClue annotates every slot of the target hand through the variant's
// knowledge policy and appends the public record of who told what to whom.
func (s *State) applyClue(seat int, a Action) {
	touched := TouchedSlots(s.rules, s.hands[a.Target], a.Clue)
	for i, card := range s.hands[a.Target] {
		s.rules.Annotate(&s.notes[a.Target][i], a.Clue, s.rules.Touches(card, a.Clue))
	}
	s.clueTokens--
	s.history = append(s.history, ClueRecord{
		Turn:    s.turn,
		Giver:   seat,
		Target:  a.Target,
		Clue:    a.Clue,
		Touched: touched,
	})
}

// removeCard takes the card at slot out of the seat's hand along with its
// annotation, shifting later slots down.
func (s *State) removeCard(seat, slot int) deck.Card {
	card := s.hands[seat][slot]
	s.hands[seat] = append(s.hands[seat][:slot], s.hands[seat][slot+1:]...)
	s.notes[seat] = append(s.notes[seat][:slot], s.notes[seat][slot+1:]...)
	return card
}

// updateStatus checks the terminal conditions in priority order: burning the
// last fuse loses immediately, completing every stack wins, and only then
// does the exhausted final round end the game.
func (s *State) updateStatus() {
	switch {
	case s.fuseTokens <= 0:
		s.status = StatusLostFuses
	case s.stacksComplete():
		s.status = StatusWon
	case s.countdown == 0:
		s.status = StatusDeckExhausted
	}
}

func (s *State) stacksComplete() bool {
	for _, c := range s.rules.Colors() {
		if s.stacks[c] != s.maxRank {
			return false
		}
	}
	return true
}
