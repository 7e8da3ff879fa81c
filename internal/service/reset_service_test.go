package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markusprap/web-penukaran-koin-sub001/internal/repository"
)

type stubResetRepo struct {
	results []repository.TableResult
	err     error
	calls   int
}

func (r *stubResetRepo) Reset(ctx context.Context) ([]repository.TableResult, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.results, nil
}

type stubNotifier struct {
	configured bool
	sent       []string
	err        error
}

func (n *stubNotifier) Configured() bool { return n.configured }
func (n *stubNotifier) Send(to, subject, body string) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, to)
	return nil
}

func TestResetReturnsPerTableCounts(t *testing.T) {
	repo := &stubResetRepo{results: []repository.TableResult{
		{Table: "transaction_details", Deleted: 12},
		{Table: "transactions", Deleted: 4},
		{Table: "route_assignments", Deleted: 2},
		{Table: "user_stocks", Deleted: 3},
		{Table: "warehouse_stocks", Deleted: 6},
		{Table: "vehicles", Deleted: 2},
	}}
	svc := NewResetService(repo, nil, "")

	results, err := svc.Reset(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 6)
	assert.Equal(t, "transaction_details", results[0].Table)
	assert.Equal(t, "vehicles", results[5].Table)
	assert.Equal(t, 1, repo.calls)
}

func TestResetPropagatesFailure(t *testing.T) {
	repo := &stubResetRepo{err: errors.New("deadlock detected")}
	notifier := &stubNotifier{configured: true}
	svc := NewResetService(repo, notifier, "admin@example.com")

	results, err := svc.Reset(context.Background())
	require.EqualError(t, err, "deadlock detected")
	assert.Nil(t, results)
	assert.Empty(t, notifier.sent, "no notification on a failed reset")
}

func TestResetNotifiesAdminOnSuccess(t *testing.T) {
	repo := &stubResetRepo{results: []repository.TableResult{{Table: "vehicles", Deleted: 1}}}
	notifier := &stubNotifier{configured: true}
	svc := NewResetService(repo, notifier, "admin@example.com")

	_, err := svc.Reset(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"admin@example.com"}, notifier.sent)
}

func TestResetSucceedsWhenNotificationFails(t *testing.T) {
	repo := &stubResetRepo{results: []repository.TableResult{{Table: "vehicles", Deleted: 1}}}
	notifier := &stubNotifier{configured: true, err: errors.New("smtp timeout")}
	svc := NewResetService(repo, notifier, "admin@example.com")

	_, err := svc.Reset(context.Background())
	require.NoError(t, err, "notification is best-effort")
}

func TestResetSkipsUnconfiguredNotifier(t *testing.T) {
	repo := &stubResetRepo{results: []repository.TableResult{{Table: "vehicles", Deleted: 1}}}
	notifier := &stubNotifier{configured: false}
	svc := NewResetService(repo, notifier, "admin@example.com")

	_, err := svc.Reset(context.Background())
	require.NoError(t, err)
	assert.Empty(t, notifier.sent)
}
