package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_DollarPlaceholders(t *testing.T) {
	query, args, err := Select("id", "name").
		From("clients").
		Where(squirrel.Eq{"phone": "+79990000000"}).
		Where(squirrel.ILike{"name": "%анна%"}).
		ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, name FROM clients WHERE phone = $1 AND name ILIKE $2", query)
	assert.Equal(t, []interface{}{"+79990000000", "%анна%"}, args)

	query, args, err = Update("readings").Set("price", 1500.0).Where(squirrel.Eq{"id": "r1"}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "UPDATE readings SET price = $1 WHERE id = $2", query)
	assert.Len(t, args, 2)

	query, _, err = Delete("appointments").Where(squirrel.Eq{"client_id": "c1"}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM appointments WHERE client_id = $1", query)

	query, _, err = Insert("categories").Columns("id", "name").Values("c1", "Таро").Suffix("RETURNING created_at").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO categories (id,name) VALUES ($1,$2) RETURNING created_at", query)
}
