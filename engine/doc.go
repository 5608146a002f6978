// Package engine implements a deterministic Tetris rules engine.
//
// A Game owns the playfield, the active piece, a 7-bag randomizer, the hold
// slot and score/level progression. Hosts drive it with one Tick call per
// frame, passing the elapsed time and the player's intents; the engine keeps
// no clock of its own, so a seed plus a recorded intent log reproduces a game
// exactly.
//
// Each Tick runs a fixed pipeline of stages (rotate, hard drop, hold, shift,
// drop). Events raised while the pipeline runs are buffered and dispatched to
// subscribers once the tick has finished and the board is consistent again.
package engine
