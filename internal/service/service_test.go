package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"fieldmate/internal/database"
	"fieldmate/internal/repository"
	"fieldmate/internal/state"

	"github.com/stretchr/testify/require"
)

// recordingNotifier captures change events so tests can assert on them.
type recordingNotifier struct {
	mu     sync.Mutex
	events []string
}

func (n *recordingNotifier) NotifyChange(collection, action string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, collection+":"+action)
}

func (n *recordingNotifier) all() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.events...)
}

// testEnv wires real repositories over a throwaway database, the way main
// does, so service tests exercise the full write-then-reload path.
type testEnv struct {
	saleRepo       repository.SaleRepository
	attendanceRepo repository.AttendanceRepository
	targetRepo     repository.TargetRepository
	crmRepo        repository.CRMRepository
	settingsRepo   repository.SettingsRepository
	txManager      database.TxManager
	cache          *state.Cache
	notifier       *recordingNotifier
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)

	env := &testEnv{
		saleRepo:       repository.NewSaleRepository(db),
		attendanceRepo: repository.NewAttendanceRepository(db),
		targetRepo:     repository.NewTargetRepository(db),
		crmRepo:        repository.NewCRMRepository(db),
		settingsRepo:   repository.NewSettingsRepository(db),
		txManager:      database.NewTxManager(db),
		notifier:       &recordingNotifier{},
	}
	env.cache = state.NewCache(
		env.saleRepo, env.attendanceRepo, env.targetRepo, env.crmRepo, env.settingsRepo,
	)
	require.NoError(t, env.cache.LoadAll(context.Background()))
	return env
}
