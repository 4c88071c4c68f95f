package config_test

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xiuying/assemblyline/assemble"
	"github.com/Xiuying/assemblyline/config"
)

func TestNew_Defaults(t *testing.T) {
	viper.Reset()

	s, err := config.New()
	require.NoError(t, err)

	def := assemble.DefaultOptions()
	assert.Equal(t, def, s.Options())
}

func TestNew_Overrides(t *testing.T) {
	viper.Reset()
	viper.Set("kmax", 5)
	viper.Set("max-paths", 20)

	s, err := config.New()
	require.NoError(t, err)
	assert.Equal(t, 5, s.KmerMax)
	assert.Equal(t, 20, s.MaxPaths)
	assert.Equal(t, assemble.DefaultOptions().KSensitivity, s.KSensitivity)
}
