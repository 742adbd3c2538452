package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"phone-input/internal/domain/value"
)

func TestPhoneValue(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name   string
		value  value.PhoneValue
		digits string
		kind   value.Kind
		empty  bool
	}{
		{name: "Empty", value: "", digits: "", kind: value.KindDomestic, empty: true},
		{name: "Partial RU mask", value: "+7(999)12", digits: "799912", kind: value.KindDomestic},
		{name: "Full RU mask", value: "+7(999)123-45-67", digits: "79991234567", kind: value.KindDomestic},
		{name: "International", value: "+375291234567", digits: "375291234567", kind: value.KindInternational},
		{name: "Bare digits fallback", value: "12345", digits: "12345", kind: value.KindDomestic},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			rq.Equal(tc.digits, tc.value.Digits())
			rq.Equal(tc.kind, tc.value.Kind())
			rq.Equal(tc.empty, tc.value.IsEmpty())
		})
	}
}

func TestParseSessionID(t *testing.T) {
	rq := require.New(t)

	generated := value.NewSessionID()

	parsed, err := value.ParseSessionID(generated.String())
	rq.NoError(err)
	rq.Equal(generated, parsed)

	_, err = value.ParseSessionID("not-an-xid")
	rq.Error(err)
}

func TestParseFieldID(t *testing.T) {
	rq := require.New(t)

	parsed, err := value.ParseFieldID("contactPhone")
	rq.NoError(err)
	rq.Equal("contactPhone", parsed.String())

	_, err = value.ParseFieldID("")
	rq.Error(err)

	long := make([]byte, 65)
	for i := range long {
		long[i] = 'a'
	}

	_, err = value.ParseFieldID(string(long))
	rq.Error(err)
}
