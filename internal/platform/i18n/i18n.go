// Copyright (c) 2026 Shopline. All rights reserved.
// Author: tran.duc.minh.dev@gmail.com

/*
Package i18n localizes client-facing API messages.

It holds a small in-process message catalog and resolves the best supported
language from the request's Accept-Language header using golang.org/x/text.

Scope:

  - Only Error Responder text and authentication-facing messages are
    localized. Localization never affects decision logic.
  - The catalog is read-only after init; lookups are safe for concurrent use.
*/
package i18n

import (
	"fmt"
	"net/http"

	"golang.org/x/text/language"

	"github.com/tranducminh/shopline/internal/platform/constants"
)

// supported lists the languages with a catalog, in matcher priority order.
// The first entry is the fallback for unknown or absent Accept-Language.
var supported = []language.Tag{
	language.English,
	language.German,
	language.Vietnamese,
}

var matcher = language.NewMatcher(supported)

// Message keys used across the platform.
const (
	KeyTitleAccessDenied    = "title.access_denied"
	KeyTitleBadRequest      = "title.bad_request"
	KeyTitleNotFound        = "title.not_found"
	KeyTitleConflict        = "title.conflict"
	KeyTitleTooManyRequests = "title.too_many_requests"
	KeyTitleInternal        = "title.internal"

	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthTokenRequired      = "auth.token_required"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthTokenInvalid       = "auth.token_invalid"
	KeyAuthNotPermitted       = "auth.not_permitted"
	KeyAuthEmailExists        = "auth.email_exists"
)

// catalog maps base language -> message key -> format string.
var catalog = map[string]map[string]string{
	"en": {
		KeyTitleAccessDenied:    "Access denied",
		KeyTitleBadRequest:      "Bad request",
		KeyTitleNotFound:        "Not found",
		KeyTitleConflict:        "Conflict",
		KeyTitleTooManyRequests: "Too many requests",
		KeyTitleInternal:        "Internal server error",

		KeyAuthInvalidCredentials: "Invalid email or password",
		KeyAuthTokenRequired:      "Authentication is required to access this resource",
		KeyAuthTokenExpired:       "Your session has expired, please sign in again",
		KeyAuthTokenInvalid:       "The provided credentials could not be verified",
		KeyAuthNotPermitted:       "You are not permitted to perform this action",
		KeyAuthEmailExists:        "The email address %s is already registered",
	},
	"de": {
		KeyTitleAccessDenied:    "Zugriff verweigert",
		KeyTitleBadRequest:      "Ungültige Anfrage",
		KeyTitleNotFound:        "Nicht gefunden",
		KeyTitleConflict:        "Konflikt",
		KeyTitleTooManyRequests: "Zu viele Anfragen",
		KeyTitleInternal:        "Interner Serverfehler",

		KeyAuthInvalidCredentials: "E-Mail oder Passwort ist ungültig",
		KeyAuthTokenRequired:      "Für diese Ressource ist eine Anmeldung erforderlich",
		KeyAuthTokenExpired:       "Ihre Sitzung ist abgelaufen, bitte melden Sie sich erneut an",
		KeyAuthTokenInvalid:       "Die angegebenen Anmeldedaten konnten nicht überprüft werden",
		KeyAuthNotPermitted:       "Sie sind nicht berechtigt, diese Aktion auszuführen",
		KeyAuthEmailExists:        "Die E-Mail-Adresse %s ist bereits registriert",
	},
	"vi": {
		KeyTitleAccessDenied:    "Truy cập bị từ chối",
		KeyTitleBadRequest:      "Yêu cầu không hợp lệ",
		KeyTitleNotFound:        "Không tìm thấy",
		KeyTitleConflict:        "Xung đột dữ liệu",
		KeyTitleTooManyRequests: "Quá nhiều yêu cầu",
		KeyTitleInternal:        "Lỗi máy chủ nội bộ",

		KeyAuthInvalidCredentials: "Email hoặc mật khẩu không đúng",
		KeyAuthTokenRequired:      "Bạn cần đăng nhập để truy cập tài nguyên này",
		KeyAuthTokenExpired:       "Phiên đăng nhập đã hết hạn, vui lòng đăng nhập lại",
		KeyAuthTokenInvalid:       "Không thể xác minh thông tin đăng nhập",
		KeyAuthNotPermitted:       "Bạn không có quyền thực hiện thao tác này",
		KeyAuthEmailExists:        "Địa chỉ email %s đã được đăng ký",
	},
}

// Match resolves the best supported language for an Accept-Language header
// value. An absent or unparsable header falls back to English.
func Match(acceptLanguage string) language.Tag {
	if acceptLanguage == "" {
		return supported[0]
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return supported[0]
	}

	_, index, _ := matcher.Match(tags...)
	return supported[index]
}

// FromRequest resolves the response language for an HTTP request.
func FromRequest(request *http.Request) language.Tag {
	return Match(request.Header.Get(constants.HeaderAcceptLanguage))
}

// T renders the message for key in the given language, applying fmt args.
//
// Unknown keys fall back to the key itself so a missing catalog entry is
// visible in responses rather than silently blank.
func T(tag language.Tag, key string, args ...any) string {
	base, _ := tag.Base()

	messages, ok := catalog[base.String()]
	if !ok {
		messages = catalog["en"]
	}

	format, ok := messages[key]
	if !ok {
		// Fall back to English before giving up entirely.
		if format, ok = catalog["en"][key]; !ok {
			return key
		}
	}

	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// TitleKey maps an HTTP status code to its generic, localizable title key.
//
// 401 and 403 intentionally share one title: the body's message field is
// where the two cases differ.
func TitleKey(httpStatus int) string {
	switch httpStatus {
	case http.StatusUnauthorized, http.StatusForbidden:
		return KeyTitleAccessDenied
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return KeyTitleBadRequest
	case http.StatusNotFound:
		return KeyTitleNotFound
	case http.StatusConflict:
		return KeyTitleConflict
	case http.StatusTooManyRequests:
		return KeyTitleTooManyRequests
	default:
		return KeyTitleInternal
	}
}
