package scene

import (
	"fmt"
	"net"
	"os/exec"
	"strings"
	"time"
)

// DefaultViewerPort is the well-known port remote viewers listen on.
const DefaultViewerPort = 9876

// Resolver produces the sink a scene should be emitted to. Selection
// between local and remote display is configuration, injected by the
// caller, never probed from the environment here.
type Resolver interface {
	Resolve() (Sink, error)
}

// GatewayFinder resolves the host a remote viewer runs on. Under a
// virtualized guest the viewer typically runs on the hypervisor host,
// reachable as the default gateway.
type GatewayFinder interface {
	DefaultGateway() (string, error)
}

// RouteTableGateway reads the default gateway from the OS routing
// table (`ip route`).
type RouteTableGateway struct{}

func (RouteTableGateway) DefaultGateway() (string, error) {
	out, err := exec.Command("ip", "route").Output()
	if err != nil {
		return "", fmt.Errorf("scene: read route table: %w", err)
	}
	gw, err := ParseDefaultGateway(string(out))
	if err != nil {
		return "", err
	}
	return gw, nil
}

// ParseDefaultGateway extracts the gateway address from `ip route`
// output ("default via 172.29.0.1 dev eth0 ...").
func ParseDefaultGateway(routes string) (string, error) {
	for _, line := range strings.Split(routes, "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 3 && fields[0] == "default" && fields[1] == "via" {
			return fields[2], nil
		}
	}
	return "", fmt.Errorf("scene: no default route found")
}

// StaticHost is a [GatewayFinder] returning a fixed address.
type StaticHost string

func (h StaticHost) DefaultGateway() (string, error) { return string(h), nil }

// RemoteResolver connects to a viewer on a discovered or configured
// host. The connect is one-shot: a failure is fatal to visualization
// and surfaced to the caller, with no retry.
type RemoteResolver struct {
	Gateway GatewayFinder // defaults to RouteTableGateway
	Port    int           // defaults to DefaultViewerPort
	Timeout time.Duration // defaults to 5s
}

func (r RemoteResolver) Resolve() (Sink, error) {
	gw := r.Gateway
	if gw == nil {
		gw = RouteTableGateway{}
	}
	port := r.Port
	if port == 0 {
		port = DefaultViewerPort
	}
	timeout := r.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	host, err := gw.DefaultGateway()
	if err != nil {
		return nil, err
	}
	addr := net.JoinHostPort(host, fmt.Sprint(port))
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return nil, fmt.Errorf("scene: connect viewer %s: %w", addr, err)
	}
	return NewStreamSink(conn), nil
}
