package service

import (
	"context"
	"testing"

	"fieldmate/internal/apperr"
	"fieldmate/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestSettingsLoadReturnsDefaultsOnFirstRun(t *testing.T) {
	env := newTestEnv(t)
	svc := NewSettingsService(env.settingsRepo, env.cache, env.notifier)

	settings, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.ThemeDark, settings.Theme)
	assert.False(t, settings.IsLoggedIn)
	assert.True(t, settings.BrandTarget.Equal(decimal.NewFromInt(500000)))
}

func TestSettingsUpdateMergesPatch(t *testing.T) {
	env := newTestEnv(t)
	svc := NewSettingsService(env.settingsRepo, env.cache, env.notifier)
	ctx := context.Background()

	updated, err := svc.Update(ctx, SettingsPatch{
		UserName: strPtr("Ravi"),
		Theme:    strPtr(model.ThemeLight),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ravi", updated.UserName)
	assert.Equal(t, model.ThemeLight, updated.Theme)

	// An unrelated patch leaves previous fields alone.
	again, err := svc.Update(ctx, SettingsPatch{StoreLocation: strPtr("MG Road")})
	require.NoError(t, err)
	assert.Equal(t, "Ravi", again.UserName)
	assert.Equal(t, "MG Road", again.StoreLocation)
	assert.Contains(t, env.notifier.all(), "settings:updated")
}

func TestSettingsUpdateRejectsBadValues(t *testing.T) {
	env := newTestEnv(t)
	svc := NewSettingsService(env.settingsRepo, env.cache, env.notifier)
	ctx := context.Background()

	_, err := svc.Update(ctx, SettingsPatch{Theme: strPtr("neon")})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(err))

	_, err = svc.Update(ctx, SettingsPatch{BrandTarget: strPtr("-5")})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(err))

	_, err = svc.Update(ctx, SettingsPatch{BrandTarget: strPtr("abc")})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(err))
}

func TestLoginSetsProfileAndIssuesToken(t *testing.T) {
	env := newTestEnv(t)
	svc := NewSettingsService(env.settingsRepo, env.cache, env.notifier)

	resp, err := svc.Login(context.Background(), LoginRequest{
		UserName:      "Ravi",
		EmpID:         "EMP-042",
		StoreLocation: "MG Road",
	}, func(empID, userName string) (string, error) {
		return "token-for-" + empID, nil
	})
	require.NoError(t, err)

	assert.Equal(t, "token-for-EMP-042", resp.Token)
	assert.True(t, resp.Settings.IsLoggedIn)
	assert.Equal(t, "Ravi", resp.Settings.UserName)
	assert.True(t, env.cache.Settings().IsLoggedIn, "cache observes the login immediately")
}

func TestLogoutClearsFlagKeepsProfile(t *testing.T) {
	env := newTestEnv(t)
	svc := NewSettingsService(env.settingsRepo, env.cache, env.notifier)
	ctx := context.Background()

	_, err := svc.Login(ctx, LoginRequest{UserName: "Ravi", EmpID: "EMP-042", StoreLocation: "MG Road"},
		func(empID, userName string) (string, error) { return "t", nil })
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))

	settings := env.cache.Settings()
	assert.False(t, settings.IsLoggedIn)
	assert.Equal(t, "Ravi", settings.UserName, "logout keeps the profile for the next login")
}
