package model

// MovementState is a bit set of the character's current movement inputs.
type MovementState uint16

const (
	MovementForward MovementState = 1 << iota
	MovementBackward
	MovementLeft
	MovementRight
	MovementGrounded
)

// Has reports whether every bit of flag is set.
func (s MovementState) Has(flag MovementState) bool {
	return s&flag == flag
}

// IsMoving reports whether any directional input is held.
func (s MovementState) IsMoving() bool {
	return s&(MovementForward|MovementBackward|MovementLeft|MovementRight) != 0
}

// ExtraMovementState is the stance modifier on top of plain movement.
type ExtraMovementState uint8

const (
	ExtraMovementNone ExtraMovementState = iota
	ExtraMovementSprinting
	ExtraMovementWalking
	ExtraMovementCrouching
	ExtraMovementCrawling
)

// Movement is a snapshot of how a character is moving right now.
type Movement struct {
	State    MovementState
	Extra    ExtraMovementState
	Swimming bool
}
