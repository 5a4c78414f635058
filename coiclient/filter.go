package coiclient

import (
	"github.com/emersion/go-coi"
)

// EnableCOI asks the server to turn on COI processing for the account.
func (s *Session) EnableCOI() error {
	return s.setConfigEntry(coi.MetadataEnabled, "yes")
}

// DisableCOI asks the server to turn off COI processing for the account.
// Servers treat an empty value as disabled.
func (s *Session) DisableCOI() error {
	return s.setConfigEntry(coi.MetadataEnabled, "")
}

// SetMessageFilter configures the server-side chat message filter.
func (s *Session) SetMessageFilter(filter coi.MessageFilter) error {
	return s.setConfigEntry(coi.MetadataMessageFilter, filter.String())
}

// GetMessageFilter reads the server-side chat message filter. An unset
// entry means filtering is off, i.e. coi.MessageFilterNone.
func (s *Session) GetMessageFilter() (coi.MessageFilter, error) {
	md, err := s.GetMetadata("", []string{coi.MetadataMessageFilter}, nil)
	if err != nil {
		return coi.MessageFilterNone, err
	}
	value, ok := md.Entries[coi.MetadataMessageFilter]
	if !ok || value == nil {
		return coi.MessageFilterNone, nil
	}
	return coi.ParseMessageFilter(string(*value))
}

func (s *Session) setConfigEntry(entry, value string) error {
	v := []byte(value)
	return s.SetMetadata("", map[string]*[]byte{entry: &v})
}
