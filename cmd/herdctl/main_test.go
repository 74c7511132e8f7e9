package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"livestock-tracker/internal/router"

	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, api string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(append([]string{"--api", api}, args...))
	cmd.SetContext(context.Background())
	err := cmd.Execute()
	return out.String(), err
}

func TestHerdctl_LivestockFlow(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter())
	defer ts.Close()

	out, err := runCLI(t, ts.URL, "livestock", "list", "--type", "sheep")
	require.NoError(t, err)
	require.Contains(t, out, "Woolly")
	require.Contains(t, out, "Fluffy")
	require.NotContains(t, out, "Bella")

	out, err = runCLI(t, ts.URL, "livestock", "add", "--name", "Rosie", "--tag", "TAG-200", "--age", "2 years", "--lat=-32.9", "--lng=27.9")
	require.NoError(t, err)
	require.Contains(t, out, "Added Rosie (Cow)")

	out, err = runCLI(t, ts.URL, "livestock", "list", "-q", "ROS")
	require.NoError(t, err)
	require.Contains(t, out, "Rosie")
	require.Contains(t, out, "Just now")

	_, err = runCLI(t, ts.URL, "livestock", "add", "--name", "NoTag")
	require.Error(t, err)
	require.Contains(t, err.Error(), "please fill in all required fields")

	_, err = runCLI(t, ts.URL, "livestock", "add", "--name", "Half", "--tag", "T", "--lat", "1")
	require.Error(t, err)

	out, err = runCLI(t, ts.URL, "livestock", "status", "5", "--status", "outside")
	require.NoError(t, err)
	require.Contains(t, out, "Fluffy is now Outside")

	out, err = runCLI(t, ts.URL, "livestock", "show", "5")
	require.NoError(t, err)
	require.Contains(t, out, "Outside")

	_, err = runCLI(t, ts.URL, "livestock", "show", "999")
	require.Error(t, err)
	require.Contains(t, err.Error(), "404")
}

func TestHerdctl_AlertsFlow(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter())
	defer ts.Close()

	out, err := runCLI(t, ts.URL, "alerts", "list", "--view", "unread")
	require.NoError(t, err)
	require.Contains(t, out, "2 unread")
	require.Contains(t, out, "a1")
	require.NotContains(t, out, "a3")

	out, err = runCLI(t, ts.URL, "alerts", "read", "a1")
	require.NoError(t, err)
	require.Contains(t, out, "Alert a1 marked as read")

	out, err = runCLI(t, ts.URL, "alerts", "read-all")
	require.NoError(t, err)
	require.Contains(t, out, "1 alerts marked as read")

	out, err = runCLI(t, ts.URL, "alerts", "list", "--view", "unread")
	require.NoError(t, err)
	require.Contains(t, out, "0 unread")
	require.Contains(t, out, "No alerts found.")
}

func TestHerdctl_ProfileDashboardMapActivity(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter())
	defer ts.Close()

	out, err := runCLI(t, ts.URL, "profile", "set", "--farm", "River Farm")
	require.NoError(t, err)
	require.Contains(t, out, "River Farm")
	require.Contains(t, out, "John Mokoena")

	out, err = runCLI(t, ts.URL, "profile", "toggle", "daily_summary")
	require.NoError(t, err)
	require.True(t, hasLine(out, "daily_summary", "yes"), out)

	out, err = runCLI(t, ts.URL, "map", "select", "2")
	require.NoError(t, err)
	require.Contains(t, out, "zoom 12")

	out, err = runCLI(t, ts.URL, "map", "markers", "--strategy", "mercator")
	require.NoError(t, err)
	require.Contains(t, out, "(mercator)")
	require.Contains(t, out, "Woolly")
	require.NotContains(t, out, "Fluffy")

	out, err = runCLI(t, ts.URL, "dashboard")
	require.NoError(t, err)
	require.Contains(t, out, "Total animals: 5")
	require.Contains(t, out, "Unread alerts: 2")
	require.Contains(t, out, "Selected animal: 2")
	require.Contains(t, out, "Animals on map: 4")

	out, err = runCLI(t, ts.URL, "activity", "--types", "PROFILE_SAVED,ANIMAL_SELECTED")
	require.NoError(t, err)
	require.Contains(t, out, "ANIMAL_SELECTED")
	require.Contains(t, out, "PROFILE_SAVED")
	require.NotContains(t, out, "NOTIFICATION_TOGGLED")
}

func TestHerdctl_BadAPI(t *testing.T) {
	_, err := runCLI(t, "not-a-url", "dashboard")
	require.Error(t, err)
	require.Contains(t, err.Error(), "--api")
}

func hasLine(out, key, value string) bool {
	for _, line := range strings.Split(out, "\n") {
		f := strings.Fields(line)
		if len(f) == 2 && f[0] == key && f[1] == value {
			return true
		}
	}
	return false
}
