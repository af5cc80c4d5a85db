package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigString(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		assert.Equal(t, "host=127.0.0.1 dbname=postgres port=5432 sslmode=prefer", Config{}.String())
	})
	t.Run("credentials", func(t *testing.T) {
		conf := Config{Host: "db", Port: "6543", User: "forge", Password: "secret", DBName: "forge", SSLMode: "disable"}
		assert.Equal(t, "host=db dbname=forge port=6543 sslmode=disable user=forge password=secret", conf.String())
	})
	t.Run("url wins", func(t *testing.T) {
		conf := Config{Host: "db", URL: "postgres://forge@localhost:5432/forge"}
		assert.Equal(t, "postgres://forge@localhost:5432/forge", conf.String())
	})
}
