package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/kentcanonigo/slack-search-generator/internal/shared/config"
	sharedErrors "github.com/kentcanonigo/slack-search-generator/internal/shared/errors"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cfg := &config.Config{StoragePath: t.TempDir(), ChannelsFile: "unused.json"}
	app := newCLIApp(cfg, &out)
	err := app.Run(append([]string{"wizard"}, args...))
	return out.String(), err
}

func TestQueryCommand(t *testing.T) {
	out, err := runCLI(t, "query",
		"--channel", "#eng",
		"--user", "@bob",
		"--file-type", "pdf",
		"--keywords", "budget",
		"--date-mode", "during",
		"--date", "2024-01-15",
	)
	require.NoError(t, err)
	require.Equal(t, "in:#eng from:@bob has:pdf during:2024-01-15 budget\n", out)
}

func TestQueryCommand_Range(t *testing.T) {
	out, err := runCLI(t, "query", "--date-mode", "range", "--date-format", "month", "--after", "2023-11", "--keywords", "q4 plan", "--exact")
	require.NoError(t, err)
	require.Equal(t, "after:2023-11 \"q4 plan\"\n", out)
}

func TestQueryCommand_InvalidFileType(t *testing.T) {
	_, err := runCLI(t, "query", "--file-type", "video")
	require.True(t, errors.Is(err, sharedErrors.ErrInvalidSelection))
}

func TestChannelsCommands(t *testing.T) {
	data := filepath.Join(t.TempDir(), "channels.json")

	_, err := runCLI(t, "--data", data, "channels", "add", "general")
	require.NoError(t, err)
	_, err = runCLI(t, "--data", data, "channels", "add", "#random")
	require.NoError(t, err)
	_, err = runCLI(t, "--data", data, "channels", "add", "general")
	require.True(t, errors.Is(err, sharedErrors.ErrDuplicateChannel))

	out, err := runCLI(t, "--data", data, "channels", "list")
	require.NoError(t, err)
	require.Equal(t, "#general\n#random\n", out)

	_, err = runCLI(t, "--data", data, "channels", "rename", "general", "eng")
	require.NoError(t, err)

	out, err = runCLI(t, "--data", data, "channels", "list", "--sorted")
	require.NoError(t, err)
	require.Equal(t, "#eng\n#random\n", out)

	_, err = runCLI(t, "--data", data, "channels", "delete", "random")
	require.NoError(t, err)
	_, err = runCLI(t, "--data", data, "channels", "delete", "random")
	require.True(t, errors.Is(err, sharedErrors.ErrChannelNotFound))

	out, err = runCLI(t, "--data", data, "channels", "list")
	require.NoError(t, err)
	require.Equal(t, "#eng\n", out)
}

func TestChannelsCommands_ArgCount(t *testing.T) {
	_, err := runCLI(t, "channels", "rename", "only-one")
	require.Error(t, err)
}
