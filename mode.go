package coi

// Mode describes how a client should adapt its mailbox handling to a
// server's COI configuration.
type Mode struct {
	// WatchFolder is the mailbox incoming chat messages appear in.
	WatchFolder string
	// ServerSideMove reports whether and where the server moves chat
	// messages itself.
	ServerSideMove ServerSideMove
}

// DetermineMode derives the client policy from a discovered COI
// configuration. config may be nil if the server doesn't support COI.
//
// If COI is unsupported, disabled, or the message filter is "none", the
// client watches INBOX and moves chat messages itself. With the "seen"
// filter, messages stay in INBOX until read, so the client still watches
// INBOX but must not move messages: the server relocates them to the chat
// mailbox. With the "active" filter the server moves messages on arrival
// and the client watches the chat mailbox directly.
func DetermineMode(config *Config) Mode {
	if config == nil || !config.Enabled {
		return Mode{WatchFolder: "INBOX"}
	}

	chats := ChatsFolder(config.MailboxRoot)
	switch config.MessageFilter {
	case MessageFilterActive:
		return Mode{
			WatchFolder:    chats,
			ServerSideMove: ServerSideMoveEnabled(chats),
		}
	case MessageFilterSeen:
		return Mode{
			WatchFolder:    "INBOX",
			ServerSideMove: ServerSideMoveEnabled(chats),
		}
	default:
		return Mode{WatchFolder: "INBOX"}
	}
}
