package memory_test

import (
	"testing"

	"github.com/jsamuelsen11/stageboard/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/stageboard/internal/adapters/storage/storagetest"
)

func TestStore_Contract(t *testing.T) {
	t.Parallel()

	storagetest.Run(t, func(_ *testing.T) storagetest.Store {
		return memory.New()
	})
}
