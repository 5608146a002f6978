package main

import (
	"io"
	"net"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestLimiter(t *testing.T) {
	l := newLimiter(2, log.New(io.Discard))

	count, ok := l.acquire("10.0.0.1")
	assert.True(t, ok)
	assert.Equal(t, 1, count)

	count, ok = l.acquire("10.0.0.1")
	assert.True(t, ok)
	assert.Equal(t, 2, count)

	count, ok = l.acquire("10.0.0.1")
	assert.False(t, ok)
	assert.Equal(t, 3, count)
	assert.Equal(t, 2, l.count("10.0.0.1"))

	_, ok = l.acquire("10.0.0.2")
	assert.True(t, ok, "limits are per ip")

	l.release("10.0.0.1")
	_, ok = l.acquire("10.0.0.1")
	assert.True(t, ok)

	l.release("10.0.0.2")
	assert.Zero(t, l.count("10.0.0.2"))
	assert.NotContains(t, l.counts, "10.0.0.2")
}

func TestRemoteIP(t *testing.T) {
	assert.Equal(t, "192.168.1.7", remoteIP(&net.TCPAddr{IP: net.ParseIP("192.168.1.7"), Port: 5555}))
	assert.Equal(t, "/tmp/sock", remoteIP(&net.UnixAddr{Name: "/tmp/sock", Net: "unix"}))
}
