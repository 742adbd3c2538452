package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"phone-input/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "Raw input",
			input:  []byte(`{"raw":"89991234567","inputKind":"typed"}`),
			output: []byte(`{"raw":"[MASKED]","inputKind":"typed"}`),
		},
		{
			name:   "Canonical value and digits",
			input:  []byte(`{"value":"+7(999)123-45-67","kind":"domestic","digits":"79991234567"}`),
			output: []byte(`{"value":"[MASKED]","kind":"domestic","digits":"[MASKED]"}`),
		},
		{
			name:   "Previous value",
			input:  []byte(`{"raw": "+375 29", "previous": "+37529"}`),
			output: []byte(`{"raw": "[MASKED]", "previous": "[MASKED]"}`),
		},
		{
			name:   "Messenger links",
			input:  []byte(`{"whatsappLink":"https://wa.me/79991234567?text=hi","telegramLink":"https://t.me/+7(999)123-45-67"}`),
			output: []byte(`{"whatsappLink":"[MASKED]","telegramLink":"[MASKED]"}`),
		},
		{
			name:   "Nothing sensitive",
			input:  []byte(`{"kind":"international","sessionId":"d2j8kq0cb0c1q9h3f8e0"}`),
			output: []byte(`{"kind":"international","sessionId":"d2j8kq0cb0c1q9h3f8e0"}`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}
