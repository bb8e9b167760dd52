package game

import "errors"

var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrAlreadyJoined       = errors.New("already joined")
	ErrNotHost             = errors.New("only the host can start the game")
	ErrInsufficientPlayers = errors.New("need at least 2 players")
	ErrWrongPhase          = errors.New("wrong phase for this action")
	ErrNotAssigned         = errors.New("not assigned to this target")
	ErrDuplicateSubmission = errors.New("already submitted")
	ErrEntryMissing        = errors.New("no entry for target")
	ErrInternal            = errors.New("internal error")
)
