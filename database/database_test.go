package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"friendship-offers/database"
)

func TestInitDB_NoDSN(t *testing.T) {
	db, err := database.InitDB("")
	assert.Nil(t, db)
	assert.ErrorIs(t, err, database.ErrNoDSN)
}
