package saga

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookstore-manager/pkg/errors"
)

func TestSaga_Execute_Success(t *testing.T) {
	var trace []string
	s := New(nil).
		AddStep("store-image", func(ctx context.Context) error {
			trace = append(trace, "store")
			return nil
		}, func(ctx context.Context) error {
			trace = append(trace, "remove")
			return nil
		}).
		AddStep("persist-book", func(ctx context.Context) error {
			trace = append(trace, "persist")
			return nil
		}, nil)

	require.NoError(t, s.Execute(context.Background()))
	assert.Equal(t, []string{"store", "persist"}, trace)
}

func TestSaga_Execute_FailureCompensates(t *testing.T) {
	var trace []string
	dbErr := apperrors.Wrap(errors.New("deadlock"), "保存图书失败")

	s := New(nil).
		AddStep("store-image", func(ctx context.Context) error {
			trace = append(trace, "store")
			return nil
		}, func(ctx context.Context) error {
			trace = append(trace, "remove")
			return nil
		}).
		AddStep("persist-book", func(ctx context.Context) error {
			return dbErr
		}, func(ctx context.Context) error {
			trace = append(trace, "should-not-run")
			return nil
		})

	err := s.Execute(context.Background())
	require.Error(t, err)

	t.Run("逆序补偿已完成的步骤", func(t *testing.T) {
		assert.Equal(t, []string{"store", "remove"}, trace)
	})

	t.Run("保留原始业务错误", func(t *testing.T) {
		appErr := apperrors.GetAppError(err)
		assert.Equal(t, "保存图书失败", appErr.Message)
	})
}

func TestSaga_Execute_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	err := New(nil).AddStep("store-image", func(ctx context.Context) error {
		ran = true
		return nil
	}, nil).Execute(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ran)
}
