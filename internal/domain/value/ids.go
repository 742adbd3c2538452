package value

import (
	"fmt"

	"github.com/rs/xid"
)

type SessionID string

func (s SessionID) String() string {
	return string(s)
}

func NewSessionID() SessionID {
	return SessionID(xid.New().String())
}

func ParseSessionID(raw string) (SessionID, error) {
	if _, err := xid.FromString(raw); err != nil {
		return "", fmt.Errorf("xid.FromString: %w", err)
	}

	return SessionID(raw), nil
}

// FieldID идентификатор поля внутри формы, задаётся клиентом
// (например "contactPhone").
type FieldID string

func (f FieldID) String() string {
	return string(f)
}

const fieldIDMaxLen = 64

func ParseFieldID(raw string) (FieldID, error) {
	if raw == "" {
		return "", fmt.Errorf("field id is empty")
	}

	if len(raw) > fieldIDMaxLen {
		return "", fmt.Errorf("field id longer than %d", fieldIDMaxLen)
	}

	return FieldID(raw), nil
}
