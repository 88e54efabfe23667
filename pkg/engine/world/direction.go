package world

// Direction is a cardinal step across the tile grid.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns the four directions in clockwise order.
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + 2) % 4
}

// Delta returns the row and column offsets for this direction
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

// Orientation names the axis a door boundary runs along.
type Orientation int

const (
	// Vertical doors separate horizontally adjacent tiles.
	Vertical Orientation = iota
	// Horizontal doors separate vertically adjacent tiles.
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Across returns the direction from a door's first tile to its second.
func (o Orientation) Across() Direction {
	if o == Horizontal {
		return South
	}
	return East
}
