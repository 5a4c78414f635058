// Package coi implements client-side support for the Chat over IMAP (COI)
// extension.
//
// COI-capable servers advertise the COI capability and expose their chat
// configuration through the METADATA extension. This package contains the
// value types describing that configuration and the policy a client derives
// from it; package coiclient talks to the server.
package coi

import (
	"github.com/emersion/go-imap/v2"
)

// Capabilities advertised by COI-capable servers.
const (
	CapCOI     imap.Cap = "COI"
	CapWebPush imap.Cap = "WEBPUSH"
)

// METADATA entries used by COI-capable servers. The entries live in the
// Dovecot vendor namespace.
const (
	MetadataConfig        = "/private/vendor/vendor.dovecot/coi/config"
	MetadataEnabled       = MetadataConfig + "/enabled"
	MetadataMessageFilter = MetadataConfig + "/message-filter"
	MetadataMailboxRoot   = MetadataConfig + "/mailbox-root"

	MetadataWebPush      = "/private/vendor/vendor.dovecot/webpush"
	MetadataWebPushVAPID = MetadataWebPush + "/vapid"
)

// DefaultMailboxRoot is the COI mailbox root assumed when the server
// doesn't announce one.
const DefaultMailboxRoot = "COI"

// ChatsFolder returns the chat mailbox under the given mailbox root.
func ChatsFolder(mailboxRoot string) string {
	if mailboxRoot == "" {
		mailboxRoot = DefaultMailboxRoot
	}
	return mailboxRoot + "/Chats"
}

// Config is the COI configuration discovered from a server.
type Config struct {
	// Enabled indicates whether COI processing is turned on for the
	// account. Servers may support COI without it being enabled.
	Enabled bool
	// MailboxRoot is the mailbox all COI mailboxes live under.
	MailboxRoot string
	// MessageFilter is the server-side chat filter currently configured.
	MessageFilter MessageFilter
}

// WebPushConfig is the web push configuration discovered from a server
// advertising the WEBPUSH capability.
type WebPushConfig struct {
	// VAPID is the server's public VAPID key, if any.
	VAPID string
}
