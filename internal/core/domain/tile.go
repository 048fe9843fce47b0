package domain

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// TileType is the enumerated type code of a tile.
type TileType int

const (
	// TileUnknown is used for codes this version does not recognise.
	TileUnknown TileType = iota
	// TileSpace is a room or area of the home.
	TileSpace
	// TileAppliance is a device, usually placed in a space.
	TileAppliance
	// TileUtility is a metered service such as water or electricity.
	TileUtility
)

// TileTypes returns the known tile types.
func TileTypes() []TileType {
	return []TileType{TileSpace, TileAppliance, TileUtility}
}

// String returns the machine name of the type.
func (t TileType) String() string {
	switch t {
	case TileSpace:
		return "space"
	case TileAppliance:
		return "appliance"
	case TileUtility:
		return "utility"
	default:
		return "unknown"
	}
}

// ParseTileType resolves a machine name or numeric code to a tile type.
func ParseTileType(s string) (TileType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if code, err := strconv.Atoi(s); err == nil {
		for _, t := range TileTypes() {
			if int(t) == code {
				return t, nil
			}
		}
		return TileUnknown, zerr.With(ErrUnknownTileType, "code", code)
	}
	for _, t := range TileTypes() {
		if t.String() == s {
			return t, nil
		}
	}
	return TileUnknown, zerr.With(ErrUnknownTileType, "code", s)
}

// Tile is a user-manageable entity of the home: an appliance, space or utility.
type Tile struct {
	ID       string   `json:"id"`
	ParentID *string  `json:"ParentId"`
	Type     TileType `json:"Type"`
	Name     string   `json:"Name"`
	Active   bool     `json:"Active"`
	Deleted  bool     `json:"Deleted"`
}

// RecordID implements Record.
func (t Tile) RecordID() string { return t.ID }

// DisplayName implements Record.
func (t Tile) DisplayName() string { return t.Name }

// Parent returns the parent id, or "" for top level tiles.
func (t Tile) Parent() string {
	if t.ParentID == nil {
		return ""
	}
	return *t.ParentID
}

// Visible reports whether the tile survives soft-delete filtering.
func (t Tile) Visible() bool {
	return t.Active && !t.Deleted
}

// VisibleTiles returns the tiles that are active and not deleted, preserving order.
func VisibleTiles(tiles []Tile) []Tile {
	out := make([]Tile, 0, len(tiles))
	for _, t := range tiles {
		if t.Visible() {
			out = append(out, t)
		}
	}
	return out
}

// TileNode is a tile together with the tiles grouped under it.
type TileNode struct {
	Tile     Tile
	Children []*TileNode
}

// Tree groups tiles by parent reference.
// Tiles whose parent is absent from the input are returned as roots, as is
// the first tile of any parent cycle. Later duplicates of an id are ignored.
// Tiles without an id are roots that nothing can be grouped under.
// Siblings are ordered by name, then id.
func Tree(tiles []Tile) []*TileNode {
	nodes := make(map[string]*TileNode, len(tiles))
	order := make([]*TileNode, 0, len(tiles))
	for _, t := range tiles {
		if t.ID == "" {
			order = append(order, &TileNode{Tile: t})
			continue
		}
		if _, dup := nodes[t.ID]; dup {
			continue
		}
		node := &TileNode{Tile: t}
		nodes[t.ID] = node
		order = append(order, node)
	}

	var roots []*TileNode
	for _, node := range order {
		var parent *TileNode
		ok := false
		if id := node.Tile.Parent(); id != "" {
			parent, ok = nodes[id]
		}
		if !ok || parent == node {
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	reached := make(map[*TileNode]struct{}, len(order))
	for _, root := range roots {
		markReached(root, reached)
	}
	for _, node := range order {
		if _, ok := reached[node]; ok {
			continue
		}
		// Only members of a parent cycle are unreached; detach the first one.
		for _, other := range order {
			other.Children = slices.DeleteFunc(other.Children, func(c *TileNode) bool { return c == node })
		}
		roots = append(roots, node)
		markReached(node, reached)
	}

	sortNodes(roots)
	return roots
}

func markReached(node *TileNode, reached map[*TileNode]struct{}) {
	if _, ok := reached[node]; ok {
		return
	}
	reached[node] = struct{}{}
	for _, c := range node.Children {
		markReached(c, reached)
	}
}

func sortNodes(nodes []*TileNode) {
	slices.SortFunc(nodes, func(a, b *TileNode) int {
		return cmp.Or(
			cmp.Compare(strings.ToLower(a.Tile.Name), strings.ToLower(b.Tile.Name)),
			cmp.Compare(a.Tile.ID, b.Tile.ID),
		)
	})
	for _, n := range nodes {
		sortNodes(n.Children)
	}
}

// UniqueName returns base, or base suffixed with the first free counter,
// so that it does not collide case-insensitively with existing.
func UniqueName(base string, existing []string) string {
	base = strings.TrimSpace(base)
	taken := make(map[string]struct{}, len(existing))
	for _, name := range existing {
		taken[strings.ToLower(strings.TrimSpace(name))] = struct{}{}
	}

	if _, ok := taken[strings.ToLower(base)]; !ok {
		return base
	}
	for i := 2; ; i++ {
		candidate := base + " " + strconv.Itoa(i)
		if _, ok := taken[strings.ToLower(candidate)]; !ok {
			return candidate
		}
	}
}
