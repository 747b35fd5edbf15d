package resource

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/accordflow/engine/internal/repository"
)

func TestIsUpdatable(t *testing.T) {
	require.True(t, Contracts.IsUpdatable("status"))
	require.True(t, Contracts.IsUpdatable("contract_id"))
	require.False(t, Contracts.IsUpdatable("id"))
	require.False(t, Contracts.IsUpdatable("created_at"))
	require.False(t, Contracts.IsUpdatable("updated_at"))
	require.False(t, Contracts.IsUpdatable("bogus_column"))
}

func TestAuditLogsAreReadOnly(t *testing.T) {
	require.Empty(t, AuditLogs.Updatable)
	require.False(t, AuditLogs.IsUpdatable("action"))
}

func TestListOptionsResolvesFilters(t *testing.T) {
	q := url.Values{}
	q.Set("status", "Active")
	q.Set("title", "cloud")
	q.Set("unknown_param", "ignored")

	opts := Contracts.ListOptions(q)
	require.Equal(t, []repository.Condition{
		{Column: "status", Value: "Active"},
		{Column: "title", Value: "cloud", Substring: true},
	}, opts.Conditions)
	require.Zero(t, opts.Limit)
	require.Zero(t, opts.Offset)
}

func TestListOptionsPagination(t *testing.T) {
	q := url.Values{}
	q.Set("limit", "25")
	q.Set("offset", "50")

	opts := Contracts.ListOptions(q)
	require.Equal(t, 25, opts.Limit)
	require.Equal(t, 50, opts.Offset)
}

func TestListOptionsMalformedPaginationIgnored(t *testing.T) {
	q := url.Values{}
	q.Set("limit", "many")
	q.Set("offset", "-3")

	opts := Contracts.ListOptions(q)
	require.Zero(t, opts.Limit)
	require.Zero(t, opts.Offset)
}

func TestEveryDefinitionHasPathAndSingular(t *testing.T) {
	all := []Definition{
		Contracts, Amendments, Approvals, Audits, ComplianceChecks,
		Executions, Negotiations, Obligations, Renewals, Terminations,
		StorageRecords, Drafts, MonitoringEntries, Documents, AuditLogs,
	}
	seen := make(map[string]bool, len(all))
	for _, d := range all {
		require.NotEmpty(t, d.Path)
		require.NotEmpty(t, d.Singular)
		require.False(t, seen[d.Path], "duplicate path %s", d.Path)
		seen[d.Path] = true
	}
}
