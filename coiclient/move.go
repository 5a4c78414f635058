package coiclient

import (
	"github.com/emersion/go-imap/v2"
)

// MoveMessages moves the given messages into the target mailbox.
//
// Servers advertising the MOVE capability get a single UID MOVE command.
// Otherwise the messages are copied and the originals flagged \Deleted
// with a silent store; expunging them is left to the caller, typically on
// the next mailbox switch.
func (s *Session) MoveMessages(uids imap.UIDSet, mailbox string) error {
	if s.client.Caps().Has(imap.CapMove) {
		return s.UIDMove(uids, mailbox)
	}

	if _, err := s.UIDCopy(uids, mailbox); err != nil {
		return err
	}
	store := &imap.StoreFlags{
		Op:     imap.StoreFlagsAdd,
		Silent: true,
		Flags:  []imap.Flag{imap.FlagDeleted},
	}
	_, err := s.UIDStore(uids, store)
	return err
}
