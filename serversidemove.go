package coi

// ServerSideMove describes whether the server, rather than the client, is
// responsible for moving chat messages into the chat mailbox.
//
// When a COI server's message filter is set to "active" or "seen", the
// server moves chat messages itself. The client must then stop moving
// messages on its own and treat the server-chosen mailbox as the chat
// mailbox. A ServerSideMove value is immutable: a changed server policy
// calls for constructing a new value.
type ServerSideMove struct {
	mvboxFolderOverride string
	enabled             bool
}

// ServerSideMoveDisabled returns the policy value for servers which leave
// message moving to the client.
func ServerSideMoveDisabled() ServerSideMove {
	return ServerSideMove{}
}

// ServerSideMoveEnabled returns the policy value for servers which move
// chat messages into mvboxFolderOverride themselves.
func ServerSideMoveEnabled(mvboxFolderOverride string) ServerSideMove {
	return ServerSideMove{
		mvboxFolderOverride: mvboxFolderOverride,
		enabled:             true,
	}
}

// IsEnabled reports whether the server moves chat messages itself.
func (m ServerSideMove) IsEnabled() bool {
	return m.enabled
}

// MvboxFolderOverride returns the mailbox the server moves chat messages
// to. ok is false when server-side moving is disabled.
func (m ServerSideMove) MvboxFolderOverride() (folder string, ok bool) {
	return m.mvboxFolderOverride, m.enabled
}

// MvboxFolderOverrideEquals reports whether server-side moving is enabled
// and the override mailbox is exactly name. The comparison is byte-exact;
// callers needing the server namespace's case conventions fold beforehand.
func (m ServerSideMove) MvboxFolderOverrideEquals(name string) bool {
	return m.enabled && m.mvboxFolderOverride == name
}
