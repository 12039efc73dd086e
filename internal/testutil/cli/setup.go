// Package cli holds helpers for CLI command tests. It lives apart from
// testutil so service tests can import testutil without pulling in app.
package cli

import (
	"database/sql"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/thenoetrevino/daykan/internal/app"
	"github.com/thenoetrevino/daykan/internal/testutil"
)

// DefaultNow is where SetupCLITest's fake clock starts
var DefaultNow = time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)

// SetupCLITest creates an in-memory DB and an App on a fake clock
func SetupCLITest(t *testing.T) (*sql.DB, *app.App, *clockwork.FakeClock) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	fake := clockwork.NewFakeClockAt(DefaultNow)
	return db, app.New(db, app.WithClock(fake)), fake
}
