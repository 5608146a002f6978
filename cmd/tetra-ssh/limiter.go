package main

import (
	"fmt"
	"net"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
)

// limiter caps the number of concurrent sessions per remote IP.
type limiter struct {
	max    int
	logger *log.Logger

	mu     sync.Mutex
	counts map[string]int
}

func newLimiter(maxSessions int, logger *log.Logger) *limiter {
	return &limiter{max: maxSessions, logger: logger, counts: make(map[string]int)}
}

func remoteIP(addr net.Addr) string {
	if tcp, ok := addr.(*net.TCPAddr); ok {
		return tcp.IP.String()
	}
	return addr.String()
}

// acquire takes a slot for ip. It returns the count the ip would have and
// whether the slot was granted.
func (l *limiter) acquire(ip string) (int, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.counts[ip] >= l.max {
		return l.counts[ip] + 1, false
	}
	l.counts[ip]++
	return l.counts[ip], true
}

func (l *limiter) release(ip string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.counts[ip]--
	if l.counts[ip] <= 0 {
		delete(l.counts, ip)
	}
}

func (l *limiter) count(ip string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.counts[ip]
}

func (l *limiter) middleware(next ssh.Handler) ssh.Handler {
	return func(s ssh.Session) {
		ip := remoteIP(s.RemoteAddr())

		count, ok := l.acquire(ip)
		if !ok {
			l.logger.Warn("Connection denied: IP limit exceeded", "ip", ip, "attempted_count", count, "limit", l.max)
			fmt.Fprintf(s, "Too many active connections from your IP (%d/%d). Please try again later.\r\n", count, l.max)
			s.Close()
			return
		}
		defer func() {
			l.release(ip)
			l.logger.Info("Connection closed", "ip", ip, "count_after", l.count(ip))
		}()

		l.logger.Info("Connection accepted", "ip", ip, "current_count", count, "limit", l.max)
		next(s)
	}
}
