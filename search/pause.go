package search

import "fmt"

// PauserID names one independent source of pause requests.
type PauserID int

const (
	// PauserScrubBar is held while the user drags a timeline scrubber.
	PauserScrubBar PauserID = iota
	// PauserPlayButton is the explicit play/pause toggle.
	PauserPlayButton
	// PauserInspector is held while an inspector pane is being scrolled.
	PauserInspector
	// PauserHost is the embedding application (focus loss, modal dialogs).
	PauserHost

	pauserCount
)

func (id PauserID) String() string {
	switch id {
	case PauserScrubBar:
		return "scrub-bar"
	case PauserPlayButton:
		return "play-button"
	case PauserInspector:
		return "inspector"
	case PauserHost:
		return "host"
	default:
		return fmt.Sprintf("PauserID(%d)", int(id))
	}
}

// PauseRegistry holds one flag per pauser. The registry is paused while any
// flag is set, so one pauser resuming never lifts another pauser's hold.
// The zero value has every flag clear.
type PauseRegistry struct {
	flags [pauserCount]bool
}

// Pause sets id's flag. Pausing twice is the same as pausing once.
func (r *PauseRegistry) Pause(id PauserID) error {
	if err := checkPauser(id); err != nil {
		return err
	}
	r.flags[id] = true

	return nil
}

// Resume clears id's flag only.
func (r *PauseRegistry) Resume(id PauserID) error {
	if err := checkPauser(id); err != nil {
		return err
	}
	r.flags[id] = false

	return nil
}

// IsPaused is the OR of every flag.
func (r *PauseRegistry) IsPaused() bool {
	for _, f := range r.flags {
		if f {
			return true
		}
	}

	return false
}

// PausedBy reports whether id currently holds a pause.
func (r *PauseRegistry) PausedBy(id PauserID) bool {
	return checkPauser(id) == nil && r.flags[id]
}

// Holders lists the pausers currently holding a pause, in id order.
func (r *PauseRegistry) Holders() []PauserID {
	var out []PauserID
	for id, f := range r.flags {
		if f {
			out = append(out, PauserID(id))
		}
	}

	return out
}

func checkPauser(id PauserID) error {
	if id < 0 || id >= pauserCount {
		return fmt.Errorf("%w: %v", ErrUnknownPauser, id)
	}

	return nil
}
