package business

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBusiness(t *testing.T) {
	clientID := uuid.New()

	t.Run("creates business with checklist defaults", func(t *testing.T) {
		biz, err := NewBusiness(clientID, "Acme Consulting")
		require.NoError(t, err)
		require.NotNil(t, biz)

		assert.Equal(t, clientID, biz.ClientID)
		assert.Equal(t, "Acme Consulting", biz.Name)
		assert.Len(t, biz.Benefits, 4)
		assert.Len(t, biz.Entities, 7)
		assert.Nil(t, biz.W2)
		assert.Nil(t, biz.K1)
		assert.False(t, biz.IsDeleted())
	})

	t.Run("fails without client", func(t *testing.T) {
		_, err := NewBusiness(uuid.Nil, "Acme Consulting")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "requires a client")
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewBusiness(clientID, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name cannot be empty")
	})
}

func TestBusinessCompensationTotal(t *testing.T) {
	clientID := uuid.New()

	t.Run("sums w2 and k1", func(t *testing.T) {
		biz, err := NewBusiness(clientID, "Acme")
		require.NoError(t, err)

		w2 := decimal.NewFromInt(5000)
		k1 := decimal.NewFromInt(10000)
		biz.W2 = &w2
		biz.K1 = &k1

		assert.True(t, biz.CompensationTotal().Equal(decimal.NewFromInt(15000)))
	})

	t.Run("treats nil amounts as zero", func(t *testing.T) {
		biz, err := NewBusiness(clientID, "Acme")
		require.NoError(t, err)

		k1 := decimal.NewFromInt(2500)
		biz.K1 = &k1

		assert.True(t, biz.CompensationTotal().Equal(decimal.NewFromInt(2500)))
	})

	t.Run("zero when both nil", func(t *testing.T) {
		biz, err := NewBusiness(clientID, "Acme")
		require.NoError(t, err)
		assert.True(t, biz.CompensationTotal().IsZero())
	})
}

func TestBusinessInYear(t *testing.T) {
	biz, err := NewBusiness(uuid.New(), "Acme")
	require.NoError(t, err)

	assert.False(t, biz.InYear(2024))

	year := 2024
	biz.Year = &year
	assert.True(t, biz.InYear(2024))
	assert.False(t, biz.InYear(2023))
}
