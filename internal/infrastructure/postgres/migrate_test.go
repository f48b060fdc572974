package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// El esquema debe delegar las cascadas a la base de datos: borrar una categoría
// elimina sus subcategorías y los productos de éstas sin lógica de aplicación.
func TestEsquema_CascadasDeclaradas(t *testing.T) {
	sql, err := migrationsFS.ReadFile("migrations/0001_init.sql")
	require.NoError(t, err)
	schema := string(sql)

	assert.Contains(t, schema, "category_id BIGINT NOT NULL REFERENCES categories(id) ON DELETE CASCADE")
	assert.Contains(t, schema, "subcategory_id BIGINT NOT NULL REFERENCES subcategories(id) ON DELETE CASCADE")
	assert.Contains(t, schema, "product_id BIGINT NOT NULL REFERENCES products(id) ON DELETE CASCADE")
}

func TestEsquema_RestriccionesDeUnicidad(t *testing.T) {
	sql, err := migrationsFS.ReadFile("migrations/0001_init.sql")
	require.NoError(t, err)
	schema := string(sql)

	// name único en categorías, sku único (cuando presente), username/email únicos
	assert.Contains(t, schema, "name        VARCHAR(255) NOT NULL UNIQUE")
	assert.Contains(t, schema, "sku            VARCHAR(255) UNIQUE")
	assert.Contains(t, schema, "username      VARCHAR(255) NOT NULL UNIQUE")
	assert.Contains(t, schema, "email         VARCHAR(255) NOT NULL UNIQUE")
}

func TestEsquema_Idempotente(t *testing.T) {
	sql, err := migrationsFS.ReadFile("migrations/0001_init.sql")
	require.NoError(t, err)

	// Toda sentencia CREATE debe ser IF NOT EXISTS para poder aplicarse en cada arranque.
	for _, line := range strings.Split(string(sql), "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "CREATE ") {
			assert.Contains(t, line, "IF NOT EXISTS", "sentencia no idempotente: %s", line)
		}
	}
}
