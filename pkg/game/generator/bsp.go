package generator

import (
	"fmt"
	"math/rand"
	"sort"

	"starship/pkg/engine/errs"
	"starship/pkg/game/config"
)

// BSPGenerator packs a Rows x Cols hull with rooms using Binary Space
// Partitioning. Every leaf of the tree becomes a room of at most 2x2 tiles and
// every split gets one door across it, so all rooms are connected.
type BSPGenerator struct {
	Rows int
	Cols int
}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Tree"
}

// bspNode represents a node in the BSP tree. x and y are layout coordinates
// without the space padding.
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
	vertical            bool // split line runs north to south
	room                int
}

const maxRoomSide = 2

// installed systems in order of priority; rooms run out before the list on small hulls.
var systemPlan = []struct {
	name               string
	powerMax, powerCur int
}{
	{"Shields", 2, 2},
	{"Engines", 2, 1},
	{"Oxygen", 1, 1},
	{"Piloting", 1, 1},
	{"WeaponControl", 3, 0},
	{"Medbay", 1, 0},
	{"DoorSystem", 1, 0},
	{"Sensors", 1, 0},
}

// Generate creates a ship definition. The same rng state yields the same ship.
func (g *BSPGenerator) Generate(rng *rand.Rand) (config.ShipDefinition, error) {
	if g.Rows < 1 || g.Cols < 1 {
		return config.ShipDefinition{}, errs.Configurationf("generator hull %dx%d is empty", g.Rows, g.Cols)
	}

	root := &bspNode{x: 0, y: 0, width: g.Cols, height: g.Rows}
	splitBSP(rng, root)
	leaves := numberRooms(root)

	layout := make([][]int, g.Rows)
	for r := range layout {
		layout[r] = make([]int, g.Cols)
	}
	for _, leaf := range leaves {
		for row := leaf.y; row < leaf.y+leaf.height; row++ {
			for col := leaf.x; col < leaf.x+leaf.width; col++ {
				layout[row][col] = leaf.room
			}
		}
	}

	// Door lists are indexed in padded coordinates: one extra row and column of space on each side.
	vertical := make([][]int, g.Rows+2)
	horizontal := make([][]int, g.Cols+2)
	connectRooms(rng, root, vertical, horizontal)

	// Airlocks at the bow and stern.
	bow := 1 + rng.Intn(g.Rows)
	vertical[bow] = append(vertical[bow], 1)
	stern := 1 + rng.Intn(g.Rows)
	vertical[stern] = append(vertical[stern], g.Cols+1)
	for _, list := range append(vertical, horizontal...) {
		sort.Ints(list)
	}

	systems := make(map[string]config.SystemDefinition)
	for i, room := range rng.Perm(len(leaves)) {
		if i >= len(systemPlan) {
			break
		}
		p := systemPlan[i]
		systems[p.name] = config.SystemDefinition{Room: room + 1, PowerMax: p.powerMax, PowerCurrent: p.powerCur}
	}

	return config.ShipDefinition{
		Name:            fmt.Sprintf("Drifter %d", len(leaves)),
		HullPoints:      30,
		ReactorPower:    8,
		WeaponSlots:     3,
		Layout:          layout,
		DoorsVertical:   vertical,
		DoorsHorizontal: horizontal,
		Systems:         systems,
	}, nil
}

// splitBSP recursively splits a BSP node until the leaves fit a room.
func splitBSP(rng *rand.Rand, node *bspNode) {
	canSplitX := node.width > 1
	canSplitY := node.height > 1
	if node.width <= maxRoomSide && node.height <= maxRoomSide {
		// Small enough already; split a quarter of the time for some 1-wide rooms.
		if (!canSplitX && !canSplitY) || rng.Intn(4) != 0 {
			return
		}
	}

	switch {
	case node.width > maxRoomSide && node.width >= node.height:
		node.vertical = true
	case node.height > maxRoomSide:
		node.vertical = false
	case canSplitX && canSplitY:
		node.vertical = rng.Intn(2) == 0
	default:
		node.vertical = canSplitX
	}

	if node.vertical {
		splitPoint := 1 + rng.Intn(node.width-1)
		node.left = &bspNode{x: node.x, y: node.y, width: splitPoint, height: node.height}
		node.right = &bspNode{x: node.x + splitPoint, y: node.y, width: node.width - splitPoint, height: node.height}
	} else {
		splitPoint := 1 + rng.Intn(node.height-1)
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPoint}
		node.right = &bspNode{x: node.x, y: node.y + splitPoint, width: node.width, height: node.height - splitPoint}
	}

	splitBSP(rng, node.left)
	splitBSP(rng, node.right)
}

// numberRooms gives every leaf a room id, 1-based in row-major order of its top left tile.
func numberRooms(root *bspNode) []*bspNode {
	leaves := collectLeaves(root)
	sort.Slice(leaves, func(i, j int) bool {
		if leaves[i].y != leaves[j].y {
			return leaves[i].y < leaves[j].y
		}
		return leaves[i].x < leaves[j].x
	})
	for i, leaf := range leaves {
		leaf.room = i + 1
	}
	return leaves
}

// collectLeaves collects all leaves from the BSP tree
func collectLeaves(node *bspNode) []*bspNode {
	if node.left == nil {
		return []*bspNode{node}
	}
	return append(collectLeaves(node.left), collectLeaves(node.right)...)
}

// connectRooms puts one door on every split line, at a random tile along it.
func connectRooms(rng *rand.Rand, node *bspNode, vertical, horizontal [][]int) {
	if node.left == nil {
		return
	}

	if node.vertical {
		// Between layout tiles (row, col-1) and (row, col).
		row := node.y + rng.Intn(node.height)
		col := node.right.x
		vertical[row+1] = append(vertical[row+1], col+1)
	} else {
		row := node.right.y
		col := node.x + rng.Intn(node.width)
		horizontal[col+1] = append(horizontal[col+1], row+1)
	}

	connectRooms(rng, node.left, vertical, horizontal)
	connectRooms(rng, node.right, vertical, horizontal)
}
