package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appuser "github.com/xiebiao/bookstore-manager/internal/application/user"
	"github.com/xiebiao/bookstore-manager/internal/domain/user"
	"github.com/xiebiao/bookstore-manager/internal/infrastructure/persistence/memory"
	apperrors "github.com/xiebiao/bookstore-manager/pkg/errors"
	"github.com/xiebiao/bookstore-manager/pkg/jwt"
	"github.com/xiebiao/bookstore-manager/pkg/logger"
)

func TestUserUseCases(t *testing.T) {
	ctx := context.Background()
	users := user.NewService(memory.NewUserRepository())
	sessions := memory.NewSessionStore()
	jwtManager := jwt.NewManager("test-secret", time.Hour, 24*time.Hour)

	register := appuser.NewRegisterUseCase(users)
	login := appuser.NewLoginUseCase(users, jwtManager, sessions, logger.Nop())
	logout := appuser.NewLogoutUseCase(sessions, jwtManager)
	refresh := appuser.NewRefreshTokenUseCase(jwtManager)
	profile := appuser.NewProfileUseCase(users)

	info, err := register.Execute(ctx, appuser.RegisterRequest{Username: "reader", Password: "reader123", Nickname: "读者"})
	require.NoError(t, err)
	assert.Equal(t, "读者", info.Nickname)

	var tokens *appuser.LoginResponse

	t.Run("登录保存会话", func(t *testing.T) {
		tokens, err = login.Execute(ctx, appuser.LoginRequest{Username: "reader", Password: "reader123", ClientIP: "127.0.0.1"})
		require.NoError(t, err)
		assert.Equal(t, int64(3600), tokens.ExpiresIn)
		assert.Equal(t, info.ID, tokens.User.ID)
		assert.True(t, sessions.HasSession(info.ID))
	})

	t.Run("密码错误", func(t *testing.T) {
		_, err := login.Execute(ctx, appuser.LoginRequest{Username: "reader", Password: "bad-pass1"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
	})

	t.Run("刷新Token", func(t *testing.T) {
		resp, err := refresh.Execute(ctx, tokens.RefreshToken)
		require.NoError(t, err)
		claims, err := jwtManager.ParseAccessToken(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, info.ID, claims.UserID)

		_, err = refresh.Execute(ctx, tokens.AccessToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("当前用户", func(t *testing.T) {
		me, err := profile.Execute(ctx, info.ID)
		require.NoError(t, err)
		assert.Equal(t, "reader", me.Username)
	})

	t.Run("登出后Token进入黑名单", func(t *testing.T) {
		require.NoError(t, logout.Execute(ctx, info.ID, tokens.AccessToken))
		assert.False(t, sessions.HasSession(info.ID))

		revoked, err := sessions.IsBlacklisted(ctx, tokens.AccessToken)
		require.NoError(t, err)
		assert.True(t, revoked)
	})
}
