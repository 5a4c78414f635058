package coiclient_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"fmt"
	"io"
	"math/big"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-imap/v2/imapclient"
	"github.com/emersion/go-imap/v2/imapserver"
	"github.com/emersion/go-imap/v2/imapserver/imapmemserver"

	"github.com/emersion/go-coi/coiclient"
)

const (
	testUsername = "test-user"
	testPassword = "test-password"
)

type literal struct {
	io.Reader
	size int64
}

func (lit literal) Size() int64 {
	return lit.size
}

// testServer is an in-memory IMAP server listening on localhost, seeded
// with a few messages in INBOX. If clientTLS is non-nil, the listener
// speaks implicit TLS.
type testServer struct {
	ln        net.Listener
	clientTLS *tls.Config
}

func newMemServer(t *testing.T, secure bool, numMessages int) *testServer {
	user := imapmemserver.NewUser(testUsername, testPassword)
	if err := user.Create("INBOX", nil); err != nil {
		t.Fatalf("Create(INBOX) = %v", err)
	}
	for i := 0; i < numMessages; i++ {
		msg := fmt.Sprintf("Subject: message %v\r\n\r\nThis is message %v.\r\n", i+1, i+1)
		lit := literal{Reader: strings.NewReader(msg), size: int64(len(msg))}
		if _, err := user.Append("INBOX", lit, &imap.AppendOptions{}); err != nil {
			t.Fatalf("Append() = %v", err)
		}
	}

	memServer := imapmemserver.New()
	memServer.AddUser(user)

	server := imapserver.New(&imapserver.Options{
		NewSession: func(conn *imapserver.Conn) (imapserver.Session, *imapserver.GreetingData, error) {
			return memServer.NewSession(), nil, nil
		},
		InsecureAuth: true,
	})

	ln, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		t.Fatalf("Listen() = %v", err)
	}

	srv := &testServer{ln: ln}
	if secure {
		serverTLS, clientTLS := newTLSConfigPair(t)
		srv.ln = tls.NewListener(ln, serverTLS)
		srv.clientTLS = clientTLS
	}

	go server.Serve(srv.ln)
	t.Cleanup(func() {
		if err := server.Close(); err != nil {
			t.Errorf("Server.Close() = %v", err)
		}
	})
	return srv
}

// dialSession connects and logs in, returning a secure or insecure
// session depending on how the server was created.
func (srv *testServer) dialSession(t *testing.T) *coiclient.Session {
	addr := srv.ln.Addr().String()

	var session *coiclient.Session
	if srv.clientTLS != nil {
		conn, err := tls.Dial("tcp", addr, srv.clientTLS)
		if err != nil {
			t.Fatalf("tls.Dial() = %v", err)
		}
		session = coiclient.NewSecureSession(imapclient.New(conn, nil))
	} else {
		var err error
		session, err = coiclient.DialInsecure(addr, nil)
		if err != nil {
			t.Fatalf("DialInsecure() = %v", err)
		}
	}
	t.Cleanup(func() {
		session.Logout()
	})

	if err := session.Login(testUsername, testPassword); err != nil {
		t.Fatalf("Login() = %v", err)
	}
	return session
}

// newTLSConfigPair generates an ephemeral self-signed certificate for
// localhost and returns matching server and client TLS configurations.
func newTLSConfigPair(t *testing.T) (serverCfg, clientCfg *tls.Config) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey() = %v", err)
	}

	template := x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "localhost"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		DNSNames:     []string{"localhost"},
		IPAddresses:  []net.IP{net.IPv4(127, 0, 0, 1), net.IPv6loopback},
	}
	der, err := x509.CreateCertificate(rand.Reader, &template, &template, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("CreateCertificate() = %v", err)
	}
	leaf, err := x509.ParseCertificate(der)
	if err != nil {
		t.Fatalf("ParseCertificate() = %v", err)
	}

	pool := x509.NewCertPool()
	pool.AddCert(leaf)

	serverCfg = &tls.Config{
		Certificates: []tls.Certificate{{
			Certificate: [][]byte{der},
			PrivateKey:  key,
			Leaf:        leaf,
		}},
	}
	clientCfg = &tls.Config{
		RootCAs:    pool,
		ServerName: "localhost",
	}
	return serverCfg, clientCfg
}
