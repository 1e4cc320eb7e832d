package memory_test

import (
	"testing"

	"github.com/m-mizutani/repobroker/pkg/repository/memory"
	"github.com/m-mizutani/repobroker/pkg/repository/testhelper"
)

func TestMemoryRepositoryStore(t *testing.T) {
	store := memory.New()
	testhelper.TestAll(t, store)
}
