package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestLoadSeedData(t *testing.T) {
	data, err := LoadSeedData()
	require.NoError(t, err)

	assert.Equal(t, []string{"Male", "Female"}, data.Genders)
	assert.Equal(t, []string{"Single", "Married", "Divorced", "Widowed"}, data.MaritalStatuses)
	assert.Contains(t, data.Programs, "Orphans & Vulnerable")
	assert.Len(t, data.Programs, 5)
	require.Len(t, data.Officers, 1)
	assert.Equal(t, "John Mwangi", data.Officers[0].Name)

	require.Len(t, data.Counties, 1)
	nairobi := data.Counties[0]
	assert.Equal(t, "Nairobi", nairobi.Name)
	require.Len(t, nairobi.SubCounties, 1)
	assert.Equal(t, "Kitisuru Village", nairobi.SubCounties[0].Locations[0].SubLocations[0].Villages[0])
}

func TestGetDatabaseURL(t *testing.T) {
	t.Run("from parts", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_PORT", "5432")
		t.Setenv("DB_USER", "sais")
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("DB_DATABASE", "sais")
		t.Setenv("DB_SSLMODE", "")

		dsn, err := GetDatabaseURL()
		require.NoError(t, err)
		assert.Equal(t, "host=localhost port=5432 user=sais password=secret dbname=sais sslmode=disable", dsn)
	})

	t.Run("from url", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://sais:secret@db:5432/sais?sslmode=require")

		dsn, err := GetDatabaseURL()
		require.NoError(t, err)
		assert.Contains(t, dsn, "host='db'")
		assert.Contains(t, dsn, "dbname='sais'")
		assert.Contains(t, dsn, "sslmode='require'")
	})

	t.Run("bad url", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "mysql://nope")

		_, err := GetDatabaseURL()
		assert.Error(t, err)
	})
}

func TestEnvGetters(t *testing.T) {
	t.Setenv("USECASE_TIMEOUT", "")
	assert.Equal(t, 10*time.Second, GetUseCaseTimeout())

	t.Setenv("USECASE_TIMEOUT", "3s")
	assert.Equal(t, 3*time.Second, GetUseCaseTimeout())

	t.Setenv("USECASE_TIMEOUT", "soon")
	assert.Equal(t, 10*time.Second, GetUseCaseTimeout())

	t.Setenv("DB_SEED", "false")
	assert.False(t, GetSeedEnabled())
	t.Setenv("DB_SEED", "")
	assert.True(t, GetSeedEnabled())

	t.Setenv("DB_LOG_LEVEL", "silent")
	assert.Equal(t, logger.Silent, GetGormLogLevel())
	t.Setenv("DB_LOG_LEVEL", "")
	assert.Equal(t, logger.Warn, GetGormLogLevel())

	t.Setenv("HTTP_HOST", "")
	t.Setenv("HTTP_PORT", "9090")
	assert.Equal(t, "0.0.0.0:9090", GetFiberListenAddress())
}
