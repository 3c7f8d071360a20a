// Copyright (c) 2026 Shopline. All rights reserved.
// Author: tran.duc.minh.dev@gmail.com

package i18n_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/tranducminh/shopline/internal/platform/i18n"
)

/*
TestMatch resolves Accept-Language headers to the best supported catalog,
falling back to English for anything unknown.
*/
func TestMatch(t *testing.T) {
	tests := []struct {
		name           string
		acceptLanguage string
		want           language.Tag
	}{
		{"empty_header", "", language.English},
		{"exact_english", "en", language.English},
		{"german_region", "de-AT,de;q=0.9", language.German},
		{"vietnamese", "vi-VN", language.Vietnamese},
		{"unsupported_falls_back", "fr-FR,fr;q=0.9", language.English},
		{"garbage_falls_back", ";;;not-a-language", language.English},
		{"quality_ordering", "fr;q=0.9,de;q=0.8", language.German},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := i18n.Match(tt.acceptLanguage)
			base, _ := got.Base()
			wantBase, _ := tt.want.Base()
			assert.Equal(t, wantBase, base)
		})
	}
}

/*
TestT renders catalog messages, including format arguments, per language.
*/
func TestT(t *testing.T) {
	english := i18n.Match("en")
	german := i18n.Match("de")

	assert.Equal(t, "Access denied", i18n.T(english, i18n.KeyTitleAccessDenied))
	assert.Equal(t, "Zugriff verweigert", i18n.T(german, i18n.KeyTitleAccessDenied))

	assert.Equal(t,
		"The email address a@b.test is already registered",
		i18n.T(english, i18n.KeyAuthEmailExists, "a@b.test"))
	assert.Equal(t,
		"Die E-Mail-Adresse a@b.test ist bereits registriert",
		i18n.T(german, i18n.KeyAuthEmailExists, "a@b.test"))
}

/*
TestT_UnknownKey degrades to the key itself rather than panicking, so a
missing catalog entry is visible but harmless.
*/
func TestT_UnknownKey(t *testing.T) {
	english := i18n.Match("en")
	assert.Equal(t, "no.such.key", i18n.T(english, "no.such.key"))
}

/*
TestFromRequest reads the header off a live request.
*/
func TestFromRequest(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Accept-Language", "vi")

	tag := i18n.FromRequest(request)
	assert.Equal(t, "Truy cập bị từ chối", i18n.T(tag, i18n.KeyTitleAccessDenied))
}

/*
TestTitleKey maps status codes to generic titles; 401 and 403 share the
same access-denied title so the body alone cannot distinguish them.
*/
func TestTitleKey(t *testing.T) {
	assert.Equal(t, i18n.KeyTitleAccessDenied, i18n.TitleKey(http.StatusUnauthorized))
	assert.Equal(t, i18n.KeyTitleAccessDenied, i18n.TitleKey(http.StatusForbidden))
	assert.Equal(t, i18n.KeyTitleNotFound, i18n.TitleKey(http.StatusNotFound))
	assert.Equal(t, i18n.KeyTitleInternal, i18n.TitleKey(http.StatusInternalServerError))
}
