package ui

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Prober reports whether the weather API host is reachable.
type Prober interface {
	Probe(ctx context.Context) bool
}

// DialProber opens a TCP connection to a fixed address.
type DialProber struct {
	addr    string
	timeout time.Duration
}

// NewDialProber derives host:port from rawURL, using the scheme's default port when none is given.
func NewDialProber(rawURL string, timeout time.Duration) (*DialProber, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse aggregator url: %w", err)
	}
	if u.Hostname() == "" {
		return nil, fmt.Errorf("aggregator url %q has no host", rawURL)
	}

	port := u.Port()
	if port == "" {
		port = "80"
		if u.Scheme == "https" {
			port = "443"
		}
	}
	return &DialProber{addr: net.JoinHostPort(u.Hostname(), port), timeout: timeout}, nil
}

func (p *DialProber) Addr() string {
	return p.addr
}

func (p *DialProber) Probe(ctx context.Context) bool {
	dialer := net.Dialer{Timeout: p.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", p.addr)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

func checkConnectivity(prober Prober, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return connectivityMsg{online: prober.Probe(ctx)}
	}
}

// scheduleConnectivity probes again after interval.
func scheduleConnectivity(prober Prober, interval, timeout time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return checkConnectivity(prober, timeout)()
	})
}
