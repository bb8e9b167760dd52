package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGate_PromptValidation(t *testing.T) {
	re := &recorderEmitter{}
	reg := NewRegistry(re, NewTickerCreator())
	roomID := reg.CreateRoom(Settings{})

	_, err := reg.JoinRoom("A", "alice", roomID)
	require.NoError(t, err)
	_, err = reg.JoinRoom("B", "bob", roomID)
	require.NoError(t, err)

	// Before the game starts nothing is accepted.
	assert.ErrorIs(t, reg.SubmitPrompt("A", roomID, "cat"), ErrWrongPhase)

	require.NoError(t, reg.StartGame("A", roomID, Settings{}))

	assert.ErrorIs(t, reg.SubmitPrompt("ghost", roomID, "boo"), ErrNotAssigned)

	require.NoError(t, reg.SubmitPrompt("A", roomID, "cat"))
	assert.ErrorIs(t, reg.SubmitPrompt("A", roomID, "cat again"), ErrDuplicateSubmission)

	assert.ErrorIs(t, reg.SubmitDrawing("B", roomID, "A", testStrokes), ErrWrongPhase)
	assert.ErrorIs(t, reg.SubmitGuess("B", roomID, "A", "kitten"), ErrWrongPhase)
}

func TestGate_DrawingValidation(t *testing.T) {
	re := &recorderEmitter{}
	reg, room, roomID := setupStartedRoom(t, re, "A", "B", "C")

	require.NoError(t, reg.SubmitPrompt("A", roomID, "cat"))
	require.NoError(t, reg.SubmitPrompt("B", roomID, "dog"))
	require.NoError(t, reg.SubmitPrompt("C", roomID, "bird"))
	require.Equal(t, PhaseDrawing, room.phase)

	// A's chain belongs to drawer B; nobody else may submit it.
	assert.ErrorIs(t, reg.SubmitDrawing("C", roomID, "A", testStrokes), ErrNotAssigned)
	assert.ErrorIs(t, reg.SubmitDrawing("B", roomID, "ghost", testStrokes), ErrNotAssigned)

	require.NoError(t, reg.SubmitDrawing("B", roomID, "A", testStrokes))
	assert.ErrorIs(t, reg.SubmitDrawing("B", roomID, "A", testStrokes), ErrDuplicateSubmission)
}

func TestGate_GuessValidation(t *testing.T) {
	re := &recorderEmitter{}
	reg, room, roomID := setupStartedRoom(t, re, "A", "B", "C")

	require.NoError(t, reg.SubmitPrompt("A", roomID, "cat"))
	require.NoError(t, reg.SubmitPrompt("B", roomID, "dog"))
	require.NoError(t, reg.SubmitPrompt("C", roomID, "bird"))
	require.NoError(t, reg.SubmitDrawing("B", roomID, "A", testStrokes))
	require.NoError(t, reg.SubmitDrawing("C", roomID, "B", testStrokes))
	require.NoError(t, reg.SubmitDrawing("A", roomID, "C", testStrokes))
	require.Equal(t, PhaseGuessing, room.phase)

	// A's chain belongs to guesser C; nobody else may submit it.
	assert.ErrorIs(t, reg.SubmitGuess("B", roomID, "A", "kitten"), ErrNotAssigned)
	assert.ErrorIs(t, reg.SubmitGuess("C", roomID, "ghost", "kitten"), ErrNotAssigned)

	require.NoError(t, reg.SubmitGuess("C", roomID, "A", "kitten"))
	assert.ErrorIs(t, reg.SubmitGuess("C", roomID, "A", "kitten again"), ErrDuplicateSubmission)
}

func TestGate_EntryMissing(t *testing.T) {
	re := &recorderEmitter{}
	reg, room, roomID := setupStartedRoom(t, re, "A", "B", "C")

	require.NoError(t, reg.SubmitPrompt("A", roomID, "cat"))
	require.NoError(t, reg.SubmitPrompt("B", roomID, "dog"))
	require.NoError(t, reg.SubmitPrompt("C", roomID, "bird"))
	require.Equal(t, PhaseDrawing, room.phase)

	// Should not occur under correct sequencing; simulate a vanished chain.
	room.mu.Lock()
	room.history = room.history[:2]
	room.mu.Unlock()

	assert.ErrorIs(t, reg.SubmitDrawing("A", roomID, "C", testStrokes), ErrEntryMissing)
}

func TestGate_RoomNotFound(t *testing.T) {
	re := &recorderEmitter{}
	reg := NewRegistry(re, NewTickerCreator())

	assert.ErrorIs(t, reg.SubmitPrompt("A", "MISSING", "cat"), ErrRoomNotFound)
	assert.ErrorIs(t, reg.SubmitDrawing("A", "MISSING", "B", testStrokes), ErrRoomNotFound)
	assert.ErrorIs(t, reg.SubmitGuess("A", "MISSING", "B", "x"), ErrRoomNotFound)
	assert.ErrorIs(t, reg.StartGame("A", "MISSING", Settings{}), ErrRoomNotFound)
}
