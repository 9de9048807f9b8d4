package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"friendship-offers/database"
	"friendship-offers/internal/app/cli"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestMatch_Human(t *testing.T) {
	out, err := run(t, "match", "Shivam", "Shakya")
	require.NoError(t, err)
	assert.Contains(t, out, "Shivam: Close Friends (level 4)")
}

func TestMatch_NoMatch(t *testing.T) {
	out, err := run(t, "match", "Zzqx")
	require.NoError(t, err)
	assert.Contains(t, out, "no match")
}

func TestMatch_JSON(t *testing.T) {
	out, err := run(t, "match", "-o", "json", "Tarun Malik")
	require.NoError(t, err)

	var resp struct {
		Normalized string `json:"normalized"`
		Matched    bool   `json:"matched"`
		Friend     struct {
			DisplayName string `json:"displayName"`
		} `json:"friend"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "tarun", resp.Normalized)
	assert.True(t, resp.Matched)
	assert.Equal(t, "Tarun", resp.Friend.DisplayName)
}

func TestMatch_RosterFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`categories:
  - key: pals
    tier: Pals
    level: 1
    entries:
      - names: [grace]
        displayName: Grace Hopper
`), 0o644))

	out, err := run(t, "match", "--roster-file", path, "grace")
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "Grace Hopper: Pals (level 1)"))
}

func TestMatch_Errors(t *testing.T) {
	_, err := run(t, "match")
	assert.Error(t, err)

	_, err = run(t, "match", "-o", "xml", "Tarun")
	assert.Error(t, err)
}

func TestRosterSeed_NeedsDatabase(t *testing.T) {
	t.Setenv("DB_URL", "")

	_, err := run(t, "roster", "seed")
	assert.ErrorIs(t, err, database.ErrNoDSN)
}

func TestMailTest_InvalidConfig(t *testing.T) {
	t.Setenv("MAIL_PROVIDER", "smtp")
	t.Setenv("EMAIL_USER", "")
	t.Setenv("EMAIL_PASS", "")

	_, err := run(t, "mail-test")
	assert.Error(t, err)
}

func TestMailTest_LogProvider(t *testing.T) {
	t.Setenv("MAIL_PROVIDER", "log")
	t.Setenv("RECIPIENT_EMAIL", "owner@example.com")
	t.Setenv("LOG_LEVEL", "error")

	out, err := run(t, "mail-test")
	require.NoError(t, err)
	assert.Contains(t, out, "Recipient: owner@example.com")
	assert.Contains(t, out, "Test email sent")
}
