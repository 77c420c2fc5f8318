package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSortOrder(t *testing.T) {
	assert.Equal(t, "ASC", ValidateSortOrder("asc"))
	assert.Equal(t, "ASC", ValidateSortOrder(" ASC "))
	assert.Equal(t, "DESC", ValidateSortOrder("desc"))
	assert.Equal(t, "DESC", ValidateSortOrder(""))
	assert.Equal(t, "DESC", ValidateSortOrder("ascending; DROP TABLE clients"))
}

func TestValidateSortField(t *testing.T) {
	t.Run("maps camelCase keys to columns", func(t *testing.T) {
		assert.Equal(t, "first_name", ValidateSortField("firstName", ClientSortFields, "created_at"))
		assert.Equal(t, "income_type", ValidateSortField("incomeType", IncomeSortFields, "created_at"))
		assert.Equal(t, "clients.first_name", ValidateSortField("clientName", BusinessSortFields, "created_at"))
	})

	t.Run("falls back for unlisted fields", func(t *testing.T) {
		assert.Equal(t, "created_at", ValidateSortField("password", ClientSortFields, "created_at"))
		assert.Equal(t, "created_at", ValidateSortField("name; --", BusinessSortFields, "created_at"))
		assert.Equal(t, "created_at", ValidateSortField("", IncomeSortFields, "created_at"))
	})
}
