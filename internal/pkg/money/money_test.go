package money_test

import (
	"testing"

	"guide-booking-service/internal/pkg/money"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		in      string
		want    money.Amount
		wantErr bool
	}{
		{in: "450", want: 45000},
		{in: "450.5", want: 45050},
		{in: "450.05", want: 45005},
		{in: "0.01", want: 1},
		{in: "-3.10", want: -310},
		{in: "1.005", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "1.", wantErr: true},
		{in: "", wantErr: true},
		{in: "--5.50", wantErr: true},
		{in: "-+5", wantErr: true},
		{in: "+5", wantErr: true},
		{in: "1.+5", wantErr: true},
		{in: "1.-5", wantErr: true},
		{in: "-", wantErr: true},
		{in: ".50", wantErr: true},
		{in: "1 000", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := money.ParseAmount(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestApplyBpsRoundsHalfUp(t *testing.T) {
	// 12% of 0.125 is 0.015 -> 0.02
	assert.Equal(t, money.Amount(2), money.Amount(13).ApplyBps(1200))
	// 12% of 450.00
	assert.Equal(t, money.Amount(5400), money.Amount(45000).ApplyBps(1200))
	// 1.5% of 33.33 = 0.49995 -> 0.50
	assert.Equal(t, money.Amount(50), money.Amount(3333).ApplyBps(150))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, money.Amount(22500), money.Amount(45000).Percent(50))
	assert.Equal(t, money.Amount(5), money.Amount(9).Percent(50))
	assert.Equal(t, money.Amount(0), money.Amount(45000).Percent(0))
}

func TestJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Total money.Amount `json:"total"`
	}{Total: 45000})
	require.NoError(t, err)
	assert.JSONEq(t, `{"total":450.00}`, string(b))

	var in struct {
		A money.Amount `json:"a"`
		B money.Amount `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":100.5,"b":"99.99"}`), &in))
	assert.Equal(t, money.Amount(10050), in.A)
	assert.Equal(t, money.Amount(9999), in.B)

	for _, raw := range []string{`{"a":"--5.50"}`, `{"a":"1.+5"}`, `{"a":"-+5"}`} {
		assert.Error(t, json.Unmarshal([]byte(raw), &in), raw)
	}
}

func TestPercentToBps(t *testing.T) {
	bps, err := money.PercentToBps(1.25)
	require.NoError(t, err)
	assert.Equal(t, money.Bps(125), bps)
	assert.Equal(t, 1.25, bps.Percent())

	_, err = money.PercentToBps(1.255)
	assert.Error(t, err)
}
