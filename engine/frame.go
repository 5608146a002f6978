package engine

// Frame carries the input of one Tick through the stage pipeline.
type Frame struct {
	DeltaTime float64
	Intents   Intents
	Game      *Game

	piece *ActivePiece
}

func newFrame(g *Game, dt float64, in Intents) *Frame {
	return &Frame{
		DeltaTime: dt,
		Intents:   in,
		Game:      g,
		piece:     g.piece,
	}
}

// Settled reports whether the piece the tick started with is gone: locked,
// swapped out by a hold, or lost to game over. Stages do nothing once it is;
// a piece spawned mid-tick starts acting on the next tick.
func (f *Frame) Settled() bool {
	return f.Game.piece == nil || f.Game.piece != f.piece
}
