package entities

// DoorDirection is the way a door animation runs.
type DoorDirection int

const (
	Opening DoorDirection = iota
	Closing
)

func (d DoorDirection) reverse() DoorDirection {
	if d == Opening {
		return Closing
	}
	return Opening
}

// DoorAnimation moves a door through its positions over time.
//
// A toggle builds the list of positions still to visit and restarts the clock;
// frame i is reached once i*timePerPixel milliseconds have elapsed.
type DoorAnimation struct {
	door         *Door
	timePerPixel int

	direction DoorDirection
	running   bool
	elapsed   int
	sequence  []int
	frame     int
}

// NewDoorAnimation creates an idle animation for door.
func NewDoorAnimation(door *Door, timePerPixelMs int) *DoorAnimation {
	if timePerPixelMs < 1 {
		timePerPixelMs = 1
	}
	return &DoorAnimation{
		door:         door,
		timePerPixel: timePerPixelMs,
		direction:    Closing,
		frame:        -1,
	}
}

// Door returns the animated door.
func (a *DoorAnimation) Door() *Door {
	return a.door
}

// Running reports whether the door is moving.
func (a *DoorAnimation) Running() bool {
	return a.running
}

// Direction returns the current or last direction of travel.
func (a *DoorAnimation) Direction() DoorDirection {
	return a.direction
}

// State classifies the door for display.
func (a *DoorAnimation) State() DoorState {
	d := a.door
	switch {
	case a.running && a.direction == Opening:
		return DoorOpening
	case a.running:
		return DoorClosing
	case d.position == 0:
		return DoorClosed
	case d.position == d.maxPosition:
		return DoorOpen
	case a.direction == Opening:
		return DoorOpening
	default:
		return DoorClosing
	}
}

// Toggle starts opening a closed door, closing an open one, or reverses a moving
// door from where it is. A manual toggle is refused, returning false, when the
// door is hacked or bashed.
func (a *DoorAnimation) Toggle(manual bool) bool {
	d := a.door
	if manual && d.BlocksManualToggle() {
		return false
	}

	switch {
	case a.running:
		a.direction = a.direction.reverse()
	case d.position == 0:
		a.direction = Opening
	case d.position == d.maxPosition:
		a.direction = Closing
	default:
		a.direction = a.direction.reverse()
	}

	a.sequence = positionsFrom(d.position, d.maxPosition, a.direction)
	a.elapsed = 0
	a.frame = -1
	a.running = true
	return true
}

// Advance moves the clock by dt milliseconds and reports whether the door
// reached a new frame.
func (a *DoorAnimation) Advance(dt int) bool {
	if !a.running {
		return false
	}
	if dt > 0 {
		a.elapsed += dt
	}

	target := a.elapsed / a.timePerPixel
	last := len(a.sequence) - 1
	if target > last {
		target = last
	}
	if target <= a.frame {
		return false
	}

	a.frame = target
	a.door.setPosition(a.sequence[target])
	if target == last {
		a.running = false
	}
	return true
}

func positionsFrom(current, maxPosition int, dir DoorDirection) []int {
	var seq []int
	if dir == Opening {
		for p := current; p <= maxPosition; p++ {
			seq = append(seq, p)
		}
	} else {
		for p := current; p >= 0; p-- {
			seq = append(seq, p)
		}
	}
	return seq
}
