package coiclient

import (
	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-imap/v2/imapclient"
)

// Capabilities requests the server's capability list.
func (s *Session) Capabilities() (imap.CapSet, error) {
	return s.client.Capability().Wait()
}

// List returns the mailboxes matching pattern under ref.
//
// The server's response sequence is collected into a slice before
// returning. If the server reports an error while the sequence is being
// consumed, that error is returned and no partial list is delivered.
func (s *Session) List(ref, pattern string) ([]*imap.ListData, error) {
	mailboxes, err := s.client.List(ref, pattern, nil).Collect()
	if err != nil {
		return nil, err
	}
	return mailboxes, nil
}

// Create requests creation of the named mailbox.
func (s *Session) Create(mailbox string) error {
	return s.client.Create(mailbox, nil).Wait()
}

// Subscribe marks the mailbox as subscribed.
func (s *Session) Subscribe(mailbox string) error {
	return s.client.Subscribe(mailbox).Wait()
}

// Close terminates the selected mailbox context with the CLOSE command,
// implicitly expunging messages flagged \Deleted. It does not release the
// connection; see Logout for that.
func (s *Session) Close() error {
	return s.client.UnselectAndExpunge().Wait()
}

// Select opens a mailbox for read-write access and returns its state.
func (s *Session) Select(mailbox string) (*imap.SelectData, error) {
	return s.client.Select(mailbox, nil).Wait()
}

// Fetch retrieves the data items selected by options for the messages in
// seqSet. Same materialization contract as List: either the complete
// ordered result or the first error, never both.
func (s *Session) Fetch(seqSet imap.SeqSet, options *imap.FetchOptions) ([]*imapclient.FetchMessageBuffer, error) {
	msgs, err := s.client.Fetch(seqSet, options).Collect()
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

// UIDFetch is Fetch addressing messages by UID.
func (s *Session) UIDFetch(uids imap.UIDSet, options *imap.FetchOptions) ([]*imapclient.FetchMessageBuffer, error) {
	msgs, err := s.client.Fetch(uids, options).Collect()
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

// UIDStore applies the flag change to the given UIDs and returns the
// resulting per-message state. Same materialization contract as List.
func (s *Session) UIDStore(uids imap.UIDSet, store *imap.StoreFlags) ([]*imapclient.FetchMessageBuffer, error) {
	msgs, err := s.client.Store(uids, store, nil).Collect()
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

// UIDMove moves the given messages into the target mailbox.
//
// This requires server support for the MOVE extension; see MoveMessages
// for a fallback.
func (s *Session) UIDMove(uids imap.UIDSet, mailbox string) error {
	_, err := s.client.Move(uids, mailbox).Wait()
	return err
}

// UIDCopy copies the given messages into the target mailbox.
func (s *Session) UIDCopy(uids imap.UIDSet, mailbox string) (*imap.CopyData, error) {
	return s.client.Copy(uids, mailbox).Wait()
}

// GetMetadata retrieves annotations from the mailbox (or the server, for
// an empty mailbox name). The options select retrieval depth beneath each
// entry and an optional maximum entry size; both are passed through to the
// server unchanged, which applies its own truncation policy.
//
// Servers lacking the METADATA capability reject the command.
func (s *Session) GetMetadata(mailbox string, entries []string, options *imapclient.GetMetadataOptions) (*imapclient.GetMetadataData, error) {
	return s.client.GetMetadata(mailbox, entries, options).Wait()
}

// SetMetadata writes annotations on the mailbox (or the server, for an
// empty mailbox name). Atomicity of multi-entry writes is whatever the
// server provides; no additional contract is added here.
func (s *Session) SetMetadata(mailbox string, entries map[string]*[]byte) error {
	return s.client.SetMetadata(mailbox, entries).Wait()
}
