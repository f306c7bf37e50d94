package user_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookstore-manager/internal/domain/user"
	"github.com/xiebiao/bookstore-manager/internal/infrastructure/persistence/memory"
	apperrors "github.com/xiebiao/bookstore-manager/pkg/errors"
)

func TestService_Register(t *testing.T) {
	ctx := context.Background()
	svc := user.NewService(memory.NewUserRepository())

	u, err := svc.Register(ctx, "reader_01", "secret123", "")
	require.NoError(t, err)

	t.Run("密码以bcrypt哈希保存", func(t *testing.T) {
		assert.NotEqual(t, "secret123", u.Password)
		assert.True(t, strings.HasPrefix(u.Password, "$2a$"))
		assert.Equal(t, "reader_01", u.Nickname)
	})

	t.Run("用户名重复", func(t *testing.T) {
		_, err := svc.Register(ctx, "reader_01", "secret123", "")
		assert.ErrorIs(t, err, apperrors.ErrUsernameDuplicate)
	})

	cases := []struct {
		name     string
		username string
		password string
		nickname string
		code     int
	}{
		{"用户名过短", "ab", "secret123", "", apperrors.ErrCodeInvalidParams},
		{"用户名含非法字符", "张三", "secret123", "", apperrors.ErrCodeInvalidParams},
		{"密码缺少数字", "reader_02", "onlyletters", "", apperrors.ErrCodeWeakPassword},
		{"密码过短", "reader_02", "a1", "", apperrors.ErrCodeWeakPassword},
		{"昵称过长", "reader_02", "secret123", strings.Repeat("书", 51), apperrors.ErrCodeInvalidParams},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.username, tc.password, tc.nickname)
			assert.True(t, apperrors.HasCode(err, tc.code), "got %v", err)
		})
	}
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	svc := user.NewService(memory.NewUserRepository())

	registered, err := svc.Register(ctx, "alice", "password1", "爱丽丝")
	require.NoError(t, err)

	t.Run("登录成功", func(t *testing.T) {
		u, err := svc.Login(ctx, "alice", "password1")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, u.ID)
	})

	t.Run("密码错误与用户不存在返回同一错误", func(t *testing.T) {
		_, err1 := svc.Login(ctx, "alice", "wrong-pass1")
		_, err2 := svc.Login(ctx, "nobody", "password1")
		assert.ErrorIs(t, err1, apperrors.ErrInvalidPassword)
		assert.ErrorIs(t, err2, apperrors.ErrInvalidPassword)
	})
}
