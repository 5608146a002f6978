package replay_test

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/tetra/engine"
	"github.com/plus3/tetra/replay"
)

// randomIntents produces a reproducible stream of player input.
func randomIntents(seed uint64) func() engine.Intents {
	rng := rand.New(rand.NewPCG(seed, seed))
	return func() engine.Intents {
		var in engine.Intents
		for i := range engine.Intent(7) {
			switch rng.IntN(12) {
			case 0:
				in.Pressed = in.Pressed.With(i)
			case 1:
				in.Held = in.Held.With(i)
			}
		}
		return in
	}
}

func record(t *testing.T, steps int) (*engine.Game, []byte) {
	t.Helper()
	g, err := engine.New(engine.DefaultConfig(), engine.WithSeed(11, 12))
	require.NoError(t, err)

	var buf bytes.Buffer
	rec, err := replay.NewRecorder(&buf, g)
	require.NoError(t, err)

	next := randomIntents(5)
	for range steps {
		require.NoError(t, rec.Tick(1.0/60, next()))
	}
	require.NoError(t, rec.Close())
	return g, buf.Bytes()
}

func TestRecordAndReplay(t *testing.T) {
	g, data := record(t, 2000)

	log, err := replay.Read(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, [2]uint64{11, 12}, log.Header.Seed)
	assert.Equal(t, engine.DefaultConfig(), log.Header.Config)
	assert.Len(t, log.Steps, 2000)
	require.NotNil(t, log.End)
	assert.Equal(t, g.Progress(), log.End.Progress)

	replayed, err := log.Replay()
	require.NoError(t, err)
	assert.Equal(t, g.Snapshot(), replayed.Snapshot())
	assert.Equal(t, g.Locks(), replayed.Locks())
}

func TestReplayDetectsDivergence(t *testing.T) {
	_, data := record(t, 600)

	log, err := replay.Read(bytes.NewReader(data))
	require.NoError(t, err)
	log.End.Progress.Score++

	_, err = log.Replay()
	assert.True(t, errors.Is(err, replay.ErrDiverged))
}

func TestReplayWithoutEnd(t *testing.T) {
	g, err := engine.New(engine.DefaultConfig(), engine.WithSeed(1, 1))
	require.NoError(t, err)

	var buf bytes.Buffer
	rec, err := replay.NewRecorder(&buf, g)
	require.NoError(t, err)
	require.NoError(t, rec.Tick(0.5, engine.Press(engine.HardDrop)))
	require.NoError(t, rec.Tick(0.5, engine.Intents{}))

	require.NoError(t, rec.Close())

	// Drop the end envelope, as if the host died before closing.
	data := buf.String()
	data = data[:strings.LastIndex(strings.TrimSpace(data), "\n")+1]

	log, err := replay.Read(strings.NewReader(data))
	require.NoError(t, err)
	assert.Nil(t, log.End)

	replayed, err := log.Replay()
	require.NoError(t, err)
	assert.Equal(t, g.Snapshot(), replayed.Snapshot())
}

func TestReadErrors(t *testing.T) {
	header := `{"t":"header","p":{"seed":[1,2],"config":{}}}`
	step := `{"t":"step","p":{"dt":0.1}}`
	end := `{"t":"end","p":{"ticks":1}}`

	tests := []struct {
		name   string
		input  string
		errMsg string
	}{
		{"empty", "", "empty log"},
		{"step before header", step, "expected header"},
		{"duplicate header", header + "\n" + header, "duplicate header"},
		{"unknown type", header + "\n" + `{"t":"bogus","p":{}}`, `unknown envelope type "bogus"`},
		{"after end", header + "\n" + end + "\n" + step, "after end"},
		{"broken json", header + "\n{", "line 2"},
		{"missing payload", header + "\n" + `{"t":"step"}`, "empty payload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := replay.Read(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestReplayRejectsBadConfig(t *testing.T) {
	log, err := replay.Read(strings.NewReader(`{"t":"header","p":{"seed":[1,2],"config":{}}}`))
	require.NoError(t, err)

	_, err = log.Replay()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRecorderWriteError(t *testing.T) {
	g, err := engine.New(engine.DefaultConfig(), engine.WithSeed(1, 1))
	require.NoError(t, err)

	rec, err := replay.NewRecorder(failingWriter{}, g)
	require.NoError(t, err, "header is buffered")

	err = rec.Close()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestEncode(t *testing.T) {
	b, err := replay.Encode(replay.MsgStep, replay.Step{DT: 0.25, Pressed: engine.NewIntentSet(engine.Hold)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"t":"step","p":{"dt":0.25,"p":64}}`, string(b))

	_, err = replay.Encode("", replay.Step{})
	assert.Error(t, err)
	_, err = replay.Encode(replay.MsgStep, nil)
	assert.Error(t, err)
}
