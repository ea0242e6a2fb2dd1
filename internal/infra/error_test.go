//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"tablebook/internal/infra"

	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	t.Run("defaults to db failure", func(t *testing.T) {
		err := infra.WrapRepoErr("query failed", errors.New("boom"))
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.False(t, infra.IsKind(err, infra.KindNotFound))
		assert.Contains(t, err.Error(), "query failed")
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("explicit kind", func(t *testing.T) {
		err := infra.WrapRepoErr("missing", nil, infra.KindNotFound)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("kind survives wrapping", func(t *testing.T) {
		inner := infra.WrapRepoErr("missing", errors.New("no rows"), infra.KindNotFound)
		outer := errors.Join(errors.New("outer"), inner)
		assert.True(t, infra.IsKind(outer, infra.KindNotFound))
	})

	t.Run("unrelated errors are no kind", func(t *testing.T) {
		assert.False(t, infra.IsKind(errors.New("plain"), infra.KindDBFailure))
		assert.False(t, infra.IsKind(nil, infra.KindDBFailure))
	})
}
