package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSynonymTable_ResolveKnownCluster(t *testing.T) {
	table := DefaultSynonymTable()

	forms := table.Resolve("sql")

	assert.Contains(t, forms, "sql")
	assert.Contains(t, forms, "mysql")
	assert.Contains(t, forms, "postgresql")
	assert.Contains(t, forms, "database")
}

func TestSynonymTable_ResolveUnknownKeywordReturnsSingleton(t *testing.T) {
	table := DefaultSynonymTable()

	forms := table.Resolve("blockchain")

	assert.Equal(t, []string{"blockchain"}, forms)
}

func TestSynonymTable_ResolveExactKeyOnly(t *testing.T) {
	table := DefaultSynonymTable()

	// "mysql" is a surface form of the sql cluster but not a key; the
	// resolver performs no reverse or partial lookup.
	forms := table.Resolve("mysql")

	assert.Equal(t, []string{"mysql"}, forms)
}

func TestSynonymTable_CustomTableInjection(t *testing.T) {
	table := SynonymTable{"rust": {"rust", "cargo", "tokio"}}

	assert.Contains(t, table.Resolve("rust"), "cargo")
	assert.Equal(t, []string{"sql"}, table.Resolve("sql"))
}

func TestDefaultSynonymTable_CoversMultipleVerticals(t *testing.T) {
	table := DefaultSynonymTable()

	for _, key := range []string{"sql", "marketing", "accounting", "recruiting", "sales", "nursing", "agile", "communication"} {
		assert.Greater(t, len(table[key]), 1, "expected cluster for %q", key)
	}
}
