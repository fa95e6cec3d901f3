// internal/bank/domain_test.go
package bank

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallmentsProgress(t *testing.T) {
	cases := []struct {
		in   Installments
		want int
	}{
		{Installments{Paid: 18, Total: 36}, 50},
		{Installments{Paid: 0, Total: 1}, 0},
		{Installments{Paid: 1, Total: 1}, 100},
		{Installments{Paid: 12, Total: 240}, 5},
		{Installments{Paid: 1, Total: 3}, 33},
		{Installments{Paid: 2, Total: 3}, 67},
		{Installments{}, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.in.Progress(), "progress of %s", tc.in)
	}
}

func TestParseInstallments(t *testing.T) {
	got, err := ParseInstallments("18/36")
	require.NoError(t, err)
	assert.Equal(t, Installments{Paid: 18, Total: 36}, got)

	_, err = ParseInstallments("18")
	assert.Error(t, err)
	_, err = ParseInstallments("a/b")
	assert.Error(t, err)
}

func TestInstallmentsJSONForm(t *testing.T) {
	data, err := json.Marshal(Installments{Paid: 24, Total: 60})
	require.NoError(t, err)
	assert.Equal(t, `"24/60"`, string(data))

	var in Installments
	require.NoError(t, json.Unmarshal([]byte(`"48/48"`), &in))
	assert.Equal(t, 100, in.Progress())
}
