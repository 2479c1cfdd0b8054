package reorder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

var (
	ErrUnknownItem      = errors.New("item not on board")
	ErrUnknownContainer = errors.New("container not on board")
	ErrAlreadyDragging  = errors.New("a drag is already in progress")
	ErrNotDragging      = errors.New("no drag in progress")
	ErrNotCommitting    = errors.New("no commit in flight")
	ErrCommitInFlight   = errors.New("previous move is still being saved")
	ErrNoPersister      = errors.New("no persister configured")
)

// Phase is the coordinator's position in the drag lifecycle
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseCommitting
)

func (p Phase) String() string {
	switch p {
	case PhaseDragging:
		return "dragging"
	case PhaseCommitting:
		return "committing"
	default:
		return "idle"
	}
}

// DragState describes the item being dragged. It lives only in memory.
type DragState struct {
	ActiveItemID      int
	ActiveItemType    ItemType
	SourceContainerID int
	SourceIndex       int
	TargetContainerID int
	TargetIndex       int
}

// Move is the ordering mutation produced by a drop
type Move struct {
	ID              string      `json:"id"`
	ItemType        ItemType    `json:"item_type"`
	ItemID          int         `json:"item_id"`
	FromContainerID int         `json:"from_container_id"`
	ToContainerID   int         `json:"to_container_id"`
	Position        int         `json:"position"`
	Placements      []Placement `json:"placements"`
}

// Persister saves a move. One call is made per drop.
type Persister interface {
	PersistMove(ctx context.Context, move Move) error
}

// PersisterFunc adapts a function to Persister
type PersisterFunc func(ctx context.Context, move Move) error

func (f PersisterFunc) PersistMove(ctx context.Context, move Move) error {
	return f(ctx, move)
}

// state is the tagged union Idle | Dragging | Committing.
// Dragging and committing always carry the drag and the pre-drag snapshot.
type state interface {
	phase() Phase
}

type idleState struct{}

type draggingState struct {
	drag     DragState
	snapshot *Board
}

type committingState struct {
	drag     DragState
	snapshot *Board
	move     Move
}

func (idleState) phase() Phase       { return PhaseIdle }
func (draggingState) phase() Phase   { return PhaseDragging }
func (committingState) phase() Phase { return PhaseCommitting }

// Coordinator tracks one drag at a time over a Board.
// It is not safe for concurrent use; callers drive it from a single event loop.
type Coordinator struct {
	board     *Board
	state     state
	persister Persister
	notifier  Notifier
	logger    *slog.Logger
}

// Option configures a Coordinator
type Option func(*Coordinator)

// WithNotifier sets where commit failures are reported
func WithNotifier(n Notifier) Option {
	return func(c *Coordinator) {
		c.notifier = n
	}
}

// WithLogger sets the coordinator's logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Coordinator) {
		c.logger = logger
	}
}

// NewCoordinator creates an idle coordinator over a copy of board
func NewCoordinator(board *Board, persister Persister, opts ...Option) *Coordinator {
	c := &Coordinator{
		board:     board.Clone(),
		state:     idleState{},
		persister: persister,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Phase returns the current lifecycle phase
func (c *Coordinator) Phase() Phase {
	return c.state.phase()
}

// Drag returns the active drag, if any
func (c *Coordinator) Drag() (DragState, bool) {
	switch s := c.state.(type) {
	case draggingState:
		return s.drag, true
	case committingState:
		return s.drag, true
	default:
		return DragState{}, false
	}
}

// Board returns a copy of the current (possibly optimistic) board
func (c *Coordinator) Board() *Board {
	return c.board.Clone()
}

// Reset replaces the board after a reload. Only allowed while idle.
func (c *Coordinator) Reset(board *Board) error {
	switch c.state.(type) {
	case draggingState:
		return ErrAlreadyDragging
	case committingState:
		return ErrCommitInFlight
	}
	c.board = board.Clone()
	return nil
}

// DragStart picks up itemID
func (c *Coordinator) DragStart(itemID int) error {
	switch c.state.(type) {
	case draggingState:
		return ErrAlreadyDragging
	case committingState:
		return ErrCommitInFlight
	}

	containerID, index, ok := c.board.Locate(itemID)
	if !ok {
		return fmt.Errorf("%w: %s %d", ErrUnknownItem, c.board.ItemType(), itemID)
	}

	c.state = draggingState{
		drag: DragState{
			ActiveItemID:      itemID,
			ActiveItemType:    c.board.ItemType(),
			SourceContainerID: containerID,
			SourceIndex:       index,
			TargetContainerID: containerID,
			TargetIndex:       index,
		},
		snapshot: c.board.Clone(),
	}
	return nil
}

// DragOver moves the drop target and previews the move on the board
func (c *Coordinator) DragOver(containerID, index int) error {
	s, ok := c.state.(draggingState)
	if !ok {
		return ErrNotDragging
	}

	if err := c.board.Move(s.drag.ActiveItemID, containerID, index); err != nil {
		return err
	}

	// Read back the clamped index
	_, idx, _ := c.board.Locate(s.drag.ActiveItemID)
	s.drag.TargetContainerID = containerID
	s.drag.TargetIndex = idx
	c.state = s
	return nil
}

// DragCancel abandons the drag and restores the pre-drag order
func (c *Coordinator) DragCancel() error {
	s, ok := c.state.(draggingState)
	if !ok {
		return ErrNotDragging
	}
	c.board = s.snapshot
	c.state = idleState{}
	return nil
}

// Drop ends the drag. When the item is back where it started the drag is a
// no-op: the coordinator returns to idle and the returned move is nil.
// Otherwise the optimistic order is kept, the coordinator enters the
// committing phase and the caller must persist the move and call Settle.
func (c *Coordinator) Drop() (*Move, error) {
	s, ok := c.state.(draggingState)
	if !ok {
		return nil, ErrNotDragging
	}

	d := s.drag
	if d.TargetContainerID == d.SourceContainerID && d.TargetIndex == d.SourceIndex {
		c.board = s.snapshot
		c.state = idleState{}
		return nil, nil
	}

	move := Move{
		ID:              uuid.NewString(),
		ItemType:        d.ActiveItemType,
		ItemID:          d.ActiveItemID,
		FromContainerID: d.SourceContainerID,
		ToContainerID:   d.TargetContainerID,
		Position:        d.TargetIndex,
		Placements:      c.board.Placements(d.SourceContainerID, d.TargetContainerID),
	}

	c.state = committingState{drag: d, snapshot: s.snapshot, move: move}
	return &move, nil
}

// Settle completes an in-flight commit. A non-nil err rolls the board back to
// its pre-drag order and raises an error notification.
func (c *Coordinator) Settle(err error) error {
	s, ok := c.state.(committingState)
	if !ok {
		return ErrNotCommitting
	}

	c.state = idleState{}
	if err == nil {
		c.logger.Debug("move saved",
			"move_id", s.move.ID,
			"item_type", s.move.ItemType,
			"item_id", s.move.ItemID,
			"to_container", s.move.ToContainerID,
			"position", s.move.Position)
		return nil
	}

	c.board = s.snapshot
	c.logger.Error("move failed, reverted",
		"move_id", s.move.ID,
		"item_type", s.move.ItemType,
		"item_id", s.move.ItemID,
		"error", err)
	if c.notifier != nil {
		c.notifier.Notify(Notification{
			Severity: SeverityError,
			Message:  fmt.Sprintf("Could not move %s: %v", s.move.ItemType, err),
		})
	}
	return nil
}

// Commit drops the active item, persists the move and settles it.
// It returns the persisted move, or nil for a no-op drop.
func (c *Coordinator) Commit(ctx context.Context) (*Move, error) {
	if c.persister == nil {
		return nil, ErrNoPersister
	}

	move, err := c.Drop()
	if err != nil || move == nil {
		return nil, err
	}

	persistErr := c.persister.PersistMove(ctx, *move)
	if err := c.Settle(persistErr); err != nil {
		return nil, err
	}
	if persistErr != nil {
		return nil, persistErr
	}
	return move, nil
}

// Persister returns the configured persister
func (c *Coordinator) Persister() Persister {
	return c.persister
}
