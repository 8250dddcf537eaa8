package kinds

import (
	stderrors "errors"
	"fmt"
	"strconv"

	"github.com/amp-labs/amp-ranged/compare"
	"github.com/amp-labs/amp-ranged/errors"
)

// HostPort represents a network host and port combination, with the port
// carried as a ranged Port so an unvalidated or zero port cannot appear
// in a validated value.
type HostPort struct {
	Host string
	Port Port
}

// NewHostPort validates host and port together.
func NewHostPort(host string, port uint16) (HostPort, error) {
	checked, err := NewPort(port)
	if err != nil {
		return HostPort{}, fmt.Errorf("port %d: %w", port, err)
	}

	if host == "" {
		return HostPort{}, errEmptyHost
	}

	return HostPort{Host: host, Port: checked}, nil
}

var errEmptyHost = stderrors.New("host must not be empty")

// Equals reports whether both values name the same host and port.
func (hp HostPort) Equals(other HostPort) bool {
	return hp.Host == other.Host && compare.Equals[Port](hp.Port, other.Port)
}

// LessThan orders host-port pairs by host, then by port, so lists of
// endpoints sort deterministically.
func (hp HostPort) LessThan(other HostPort) bool {
	if hp.Host != other.Host {
		return hp.Host < other.Host
	}

	return compare.Less[Port](hp.Port, other.Port)
}

// String returns the host:port representation as a string.
func (hp HostPort) String() string {
	return hp.Host + ":" + strconv.FormatUint(uint64(hp.Port.Raw()), 10)
}

// Validate implements validate.HasValidate, re-checking both fields.
// Useful after decoding a HostPort from a document where the fields were
// populated directly.
func (hp HostPort) Validate() error {
	var collected errors.Collection

	if hp.Host == "" {
		collected.Add(errEmptyHost)
	}

	collected.Add(hp.Port.Validate())

	return collected.GetError()
}
