package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/i18nhtml/internal/core/domain"
)

func TestResolveLocale(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		languages  []string
		want       string
		wantErr    error
	}{
		{"configured wins", "ru", []string{"en", "ru"}, "ru", nil},
		{"falls back to first project language", "", []string{"en", "ru"}, "en", nil},
		{"trims whitespace", " uk ", nil, "uk", nil},
		{"no languages at all", "", nil, "", domain.ErrNoLocale},
		{"empty first language", "", []string{""}, "", domain.ErrNoLocale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := domain.ResolveLocale(tt.configured, tt.languages)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, loc.ID)
			assert.Equal(t, tt.want, loc.String())
			assert.False(t, loc.IsZero())
		})
	}
}

func TestResolveLocale_Invalid(t *testing.T) {
	_, err := domain.ResolveLocale("not a locale!", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidLocale))
}

func TestLocaleContext_TLD(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{"ru", "ru"},
		{"uk", "ua"},
		{"be", "by"},
		{"kk", "kz"},
		{"tr", "com.tr"},
		{"en", "com"},
		{"en-GB", "co.uk"},
		{"de-AT", "at"},
		{"fr", "com"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			loc, err := domain.ResolveLocale(tt.locale, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, loc.TLD())
		})
	}
}

func TestSourceRole_CacheLabel(t *testing.T) {
	assert.Equal(t, "template-file", domain.RoleTemplate.CacheLabel())
	assert.Equal(t, "destination-file", domain.RoleDestination.CacheLabel())
	assert.Len(t, domain.SourceRoles, 4)
}
