// Package reorder turns drag/drop gestures over board containers into ordering
// mutations, applying them optimistically and rolling back when persistence fails.
package reorder

import (
	"fmt"
	"slices"
)

// ItemType identifies what is being dragged
type ItemType string

const (
	ItemTask   ItemType = "task"
	ItemColumn ItemType = "column"
)

// Container is an ordered list of item ids (a column's tasks, or a project's columns)
type Container struct {
	ID    int
	Items []int
}

// Placement is the persisted position of one item after a move
type Placement struct {
	ItemID      int `json:"item_id"`
	ContainerID int `json:"container_id"`
	Position    int `json:"position"`
}

// Board holds every container an item of one type may be dragged between.
// Task boards have one container per column; column boards have a single
// container keyed by the project id.
type Board struct {
	itemType   ItemType
	containers []Container
}

// NewBoard creates a board for items of the given type. Container and item slices are copied.
func NewBoard(itemType ItemType, containers ...Container) *Board {
	b := &Board{itemType: itemType}
	for _, c := range containers {
		b.containers = append(b.containers, Container{ID: c.ID, Items: slices.Clone(c.Items)})
	}
	return b
}

// ItemType returns the type of item this board orders
func (b *Board) ItemType() ItemType {
	return b.itemType
}

// Containers returns a deep copy of the containers in board order
func (b *Board) Containers() []Container {
	return b.Clone().containers
}

// Items returns a copy of the ordered items of a container
func (b *Board) Items(containerID int) []int {
	c := b.container(containerID)
	if c == nil {
		return nil
	}
	return slices.Clone(c.Items)
}

// Clone returns an independent copy of the board
func (b *Board) Clone() *Board {
	return NewBoard(b.itemType, b.containers...)
}

// Locate returns the container and index holding itemID
func (b *Board) Locate(itemID int) (containerID, index int, ok bool) {
	for _, c := range b.containers {
		if i := slices.Index(c.Items, itemID); i >= 0 {
			return c.ID, i, true
		}
	}
	return 0, 0, false
}

// Move relocates itemID to index within containerID. The index is clamped
// to the container bounds after removal of the item.
func (b *Board) Move(itemID, containerID, index int) error {
	fromID, fromIdx, ok := b.Locate(itemID)
	if !ok {
		return fmt.Errorf("%w: %s %d", ErrUnknownItem, b.itemType, itemID)
	}
	to := b.container(containerID)
	if to == nil {
		return fmt.Errorf("%w: %d", ErrUnknownContainer, containerID)
	}

	from := b.container(fromID)
	from.Items = slices.Delete(from.Items, fromIdx, fromIdx+1)

	index = max(0, min(index, len(to.Items)))
	to.Items = slices.Insert(to.Items, index, itemID)
	return nil
}

// Placements returns dense 0..n-1 positions for every item in the given containers
func (b *Board) Placements(containerIDs ...int) []Placement {
	var out []Placement
	seen := make(map[int]bool, len(containerIDs))
	for _, id := range containerIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		c := b.container(id)
		if c == nil {
			continue
		}
		for pos, itemID := range c.Items {
			out = append(out, Placement{ItemID: itemID, ContainerID: c.ID, Position: pos})
		}
	}
	return out
}

// Equal reports whether two boards hold the same items in the same order
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.itemType != other.itemType || len(b.containers) != len(other.containers) {
		return false
	}
	for i, c := range b.containers {
		o := other.containers[i]
		if c.ID != o.ID || !slices.Equal(c.Items, o.Items) {
			return false
		}
	}
	return true
}

func (b *Board) container(id int) *Container {
	for i := range b.containers {
		if b.containers[i].ID == id {
			return &b.containers[i]
		}
	}
	return nil
}
