// Package coiclient provides a transport-unified session over a single IMAP
// connection, plus helpers for discovering and configuring the COI
// extension.
//
// A Session owns exactly one live connection, either encrypted or
// plaintext, and exposes the same operation set for both. It performs no
// connection setup or TLS negotiation beyond the Dial helpers and adds no
// retries, pooling or caching: every failure is returned to the caller.
package coiclient

import (
	"fmt"

	"github.com/emersion/go-imap/v2/imapclient"
	"github.com/emersion/go-sasl"
)

// TransportKind identifies the transport a session is bound to.
type TransportKind int

const (
	// TransportInsecure is a plaintext TCP connection.
	TransportInsecure TransportKind = iota
	// TransportSecure is a connection with a completed TLS handshake.
	TransportSecure
)

// String implements fmt.Stringer.
func (kind TransportKind) String() string {
	switch kind {
	case TransportInsecure:
		return "insecure"
	case TransportSecure:
		return "secure"
	default:
		panic(fmt.Errorf("coiclient: unknown transport kind %d", int(kind)))
	}
}

// Session is a facade over one live IMAP connection.
//
// The transport kind is fixed at construction and every operation
// dispatches through the same underlying client for the session's entire
// lifetime. Operations behave identically regardless of the kind.
//
// A Session is not safe for concurrent use: callers serialize operations
// themselves. Operations issued sequentially are delivered to the server
// and answered in order. No timeout is enforced internally; callers wrap
// calls with their own deadline logic. If an in-flight operation is
// abandoned the connection is in an undefined state and should be
// discarded via Logout.
type Session struct {
	kind   TransportKind
	client *imapclient.Client
}

// NewSecureSession wraps an IMAP client bound to a connection with a
// completed TLS handshake.
//
// The client is expected to be connected already; the session performs no
// TLS negotiation itself.
func NewSecureSession(client *imapclient.Client) *Session {
	return &Session{kind: TransportSecure, client: client}
}

// NewInsecureSession wraps an IMAP client bound to a plaintext connection.
func NewInsecureSession(client *imapclient.Client) *Session {
	return &Session{kind: TransportInsecure, client: client}
}

// DialTLS connects to an IMAP server with implicit TLS and returns a
// secure session.
//
// A nil options pointer is equivalent to a zero options value.
func DialTLS(address string, options *imapclient.Options) (*Session, error) {
	client, err := imapclient.DialTLS(address, options)
	if err != nil {
		return nil, err
	}
	return NewSecureSession(client), nil
}

// DialInsecure connects to an IMAP server without any encryption and
// returns an insecure session.
func DialInsecure(address string, options *imapclient.Options) (*Session, error) {
	client, err := imapclient.DialInsecure(address, options)
	if err != nil {
		return nil, err
	}
	return NewInsecureSession(client), nil
}

// TransportKind returns the transport the session was built on.
func (s *Session) TransportKind() TransportKind {
	return s.kind
}

// Login authenticates with the LOGIN command.
func (s *Session) Login(username, password string) error {
	return s.client.Login(username, password).Wait()
}

// Authenticate authenticates with the AUTHENTICATE command using the
// supplied SASL mechanism.
func (s *Session) Authenticate(saslClient sasl.Client) error {
	return s.client.Authenticate(saslClient)
}

// Logout sends LOGOUT and releases the underlying connection. The session
// must not be used afterwards.
func (s *Session) Logout() error {
	return s.client.Logout().Wait()
}
