package service

import (
	"bjj_academy_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitRevenue(t *testing.T) {
	tests := []struct {
		gross    int
		creator  int
		platform int
	}{
		{gross: 10000, creator: 8000, platform: 2000},
		{gross: 999, creator: 800, platform: 199}, // 余数归创作者
		{gross: 1, creator: 1, platform: 0},
		{gross: 0, creator: 0, platform: 0},
	}
	for _, tt := range tests {
		creator, platform := SplitRevenue(tt.gross)
		assert.Equal(t, tt.creator, creator)
		assert.Equal(t, tt.platform, platform)
		assert.Equal(t, tt.gross, creator+platform)
	}
}

func TestParseAmountCents(t *testing.T) {
	cents, err := parseAmountCents("19.99")
	assert.NoError(t, err)
	assert.Equal(t, 1999, cents)

	cents, err = parseAmountCents("100")
	assert.NoError(t, err)
	assert.Equal(t, 10000, cents)

	_, err = parseAmountCents("abc")
	assert.Error(t, err)
}

func orderFixture(status, currency, value string) *paypalOrder {
	o := &paypalOrder{ID: "ORDER-1", Status: status}
	o.PurchaseUnits = []struct {
		Amount struct {
			CurrencyCode string `json:"currency_code"`
			Value        string `json:"value"`
		} `json:"amount"`
	}{{}}
	o.PurchaseUnits[0].Amount.CurrencyCode = currency
	o.PurchaseUnits[0].Amount.Value = value
	return o
}

func TestValidateOrder(t *testing.T) {
	t.Run("completed order with matching amount passes", func(t *testing.T) {
		assert.NoError(t, validateOrder(orderFixture("COMPLETED", "USD", "19.99"), 1999, "USD"))
	})

	t.Run("pending order rejected", func(t *testing.T) {
		err := validateOrder(orderFixture("CREATED", "USD", "19.99"), 1999, "USD")
		assert.ErrorIs(t, err, util.ErrOrderNotCompleted)
	})

	t.Run("amount mismatch rejected", func(t *testing.T) {
		err := validateOrder(orderFixture("COMPLETED", "USD", "9.99"), 1999, "USD")
		assert.ErrorIs(t, err, util.ErrOrderAmountMismatch)
	})

	t.Run("currency mismatch rejected", func(t *testing.T) {
		err := validateOrder(orderFixture("COMPLETED", "EUR", "19.99"), 1999, "USD")
		assert.ErrorIs(t, err, util.ErrOrderAmountMismatch)
	})

	t.Run("order without purchase units rejected", func(t *testing.T) {
		o := &paypalOrder{ID: "ORDER-2", Status: "COMPLETED"}
		err := validateOrder(o, 1999, "USD")
		assert.ErrorIs(t, err, util.ErrOrderAmountMismatch)
	})
}

func TestTrainingPoints(t *testing.T) {
	assert.Equal(t, float64(0), TrainingPoints(0, 0))
	assert.Equal(t, float64(60), TrainingPoints(60, 0))
	assert.Equal(t, float64(110), TrainingPoints(60, 5))
}
