package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_Valid(t *testing.T) {
	for _, table := range AllTables() {
		assert.True(t, table.Valid(), "table %s", table)
	}

	assert.False(t, Table("series_books").Valid())
	assert.False(t, Table("").Valid())
	assert.False(t, Table("Books").Valid())
}
