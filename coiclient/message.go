package coiclient

import (
	"io"

	"github.com/emersion/go-message"
)

// chatVersionHeader marks messages produced by chat clients. COI servers
// use the same header to decide which messages the chat filter applies to.
const chatVersionHeader = "Chat-Version"

// IsChatMessage reports whether the raw message in r carries a
// Chat-Version header. r should yield a full message or at least its
// header section, e.g. a BODY[HEADER] fetch result.
func IsChatMessage(r io.Reader) (bool, error) {
	entity, err := message.Read(r)
	if err != nil && !message.IsUnknownCharset(err) {
		return false, err
	}
	return entity.Header.Get(chatVersionHeader) != "", nil
}
