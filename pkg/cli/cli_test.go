package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "probe", RunE: func(*cobra.Command, []string) error { return nil }}
	AddIntFlag(cmd, "length", "l", 16, "length")
	AddBoolFlag(cmd, "avoid-ambiguous", "", true, "avoid")
	AddStringFlag(cmd, "output", "o", "plain", "format", false)
	AddBoolFlag(cmd, "copy", "", false, "copy")
	return cmd
}

func TestConfigKey(t *testing.T) {
	assert.Equal(t, "avoid_ambiguous", ConfigKey("avoid-ambiguous"))
	assert.Equal(t, "length", ConfigKey("length"))
}

func TestBindFlagsToViper(t *testing.T) {
	t.Run("changed flag wins over default", func(t *testing.T) {
		cmd := newCmd()
		v := viper.New()
		v.SetDefault("length", 20)
		require.NoError(t, BindFlagsToViper(cmd, v, "length", "avoid_ambiguous"))

		require.NoError(t, cmd.ParseFlags([]string{"--avoid-ambiguous=false"}))
		assert.False(t, v.GetBool("avoid_ambiguous"))
		assert.Equal(t, 20, v.GetInt("length"), "unchanged flag leaves the viper default in place")
	})

	t.Run("only requested keys are bound", func(t *testing.T) {
		cmd := newCmd()
		v := viper.New()
		require.NoError(t, BindFlagsToViper(cmd, v, "length"))

		require.NoError(t, cmd.ParseFlags([]string{"--copy"}))
		assert.False(t, v.IsSet("copy"))
	})

	t.Run("no keys binds everything", func(t *testing.T) {
		cmd := newCmd()
		v := viper.New()
		require.NoError(t, BindFlagsToViper(cmd, v))

		require.NoError(t, cmd.ParseFlags([]string{"-o", "json"}))
		assert.Equal(t, "json", v.GetString("output"))
	})
}

func TestGetters(t *testing.T) {
	cmd := newCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--copy", "-o", "yaml"}))

	assert.True(t, GetBool(cmd, "copy"))
	assert.False(t, GetBool(cmd, "missing"))
	assert.Equal(t, "yaml", GetStringOrEmpty(cmd, "output"))
}

func TestLookupString(t *testing.T) {
	root := &cobra.Command{Use: "root"}
	root.PersistentFlags().String("config", "", "config file")
	child := &cobra.Command{Use: "child", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(child)

	require.NoError(t, root.PersistentFlags().Set("config", "/tmp/pwgen.yaml"))
	assert.Equal(t, "/tmp/pwgen.yaml", LookupString(child, "config"))
	assert.Equal(t, "", LookupString(child, "missing"))
}
