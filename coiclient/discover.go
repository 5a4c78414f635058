package coiclient

import (
	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-imap/v2/imapclient"

	"github.com/emersion/go-coi"
)

// DiscoverData is the server state gathered by Discover.
type DiscoverData struct {
	// Caps is the raw capability set.
	Caps imap.CapSet
	// CanIdle and CanMove report support for the IDLE and MOVE extensions.
	CanIdle bool
	CanMove bool
	// COI is the discovered COI configuration, or nil if the server
	// doesn't advertise the COI capability.
	COI *coi.Config
	// WebPush is the discovered web push configuration, or nil if the
	// server doesn't advertise the WEBPUSH capability.
	WebPush *coi.WebPushConfig
}

// Discover runs one capability-discovery cycle: it requests the server's
// capabilities and, for COI- or WEBPUSH-capable servers, reads the
// extension configuration from server metadata.
//
// Feed the result through coi.DetermineMode to obtain the client's
// mailbox-handling policy.
func (s *Session) Discover() (*DiscoverData, error) {
	caps, err := s.Capabilities()
	if err != nil {
		return nil, err
	}

	data := &DiscoverData{
		Caps:    caps,
		CanIdle: caps.Has(imap.CapIdle),
		CanMove: caps.Has(imap.CapMove),
	}

	var entries []string
	if caps.Has(coi.CapCOI) {
		entries = append(entries, coi.MetadataConfig)
		data.COI = &coi.Config{MailboxRoot: coi.DefaultMailboxRoot}
	}
	if caps.Has(coi.CapWebPush) {
		entries = append(entries, coi.MetadataWebPush)
		data.WebPush = &coi.WebPushConfig{}
	}
	if len(entries) == 0 {
		return data, nil
	}

	options := imapclient.GetMetadataOptions{Depth: imapclient.GetMetadataDepthOne}
	md, err := s.GetMetadata("", entries, &options)
	if err != nil {
		return nil, err
	}
	data.applyMetadata(md.Entries)
	return data, nil
}

func (data *DiscoverData) applyMetadata(entries map[string]*[]byte) {
	for entry, value := range entries {
		if value == nil {
			continue
		}
		switch entry {
		case coi.MetadataEnabled:
			if data.COI != nil {
				data.COI.Enabled = string(*value) == "yes"
			}
		case coi.MetadataMailboxRoot:
			if data.COI != nil {
				data.COI.MailboxRoot = string(*value)
			}
		case coi.MetadataMessageFilter:
			if data.COI == nil {
				break
			}
			// Unknown filter values are ignored and the default kept:
			// a future server-side filter must not break discovery.
			if filter, err := coi.ParseMessageFilter(string(*value)); err == nil {
				data.COI.MessageFilter = filter
			}
		case coi.MetadataWebPushVAPID:
			if data.WebPush != nil {
				data.WebPush.VAPID = string(*value)
			}
		}
	}
}
