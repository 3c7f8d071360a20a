// Copyright (c) 2026 Shopline. All rights reserved.
// Author: tran.duc.minh.dev@gmail.com

package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple", input: "Wireless Ergo Mouse", expected: "wireless-ergo-mouse"},
		{name: "accents_stripped", input: "Café Crème Beans 1kg", expected: "cafe-creme-beans-1kg"},
		{name: "german_umlauts", input: "Gemüse-Hobel für Küche", expected: "gemuse-hobel-fur-kuche"},
		{name: "punctuation_collapsed", input: "USB-C -- Hub (7 in 1)!", expected: "usb-c-hub-7-in-1"},
		{name: "leading_trailing_trimmed", input: "  --Sale!--  ", expected: "sale"},
		{name: "already_a_slug", input: "plain-slug-42", expected: "plain-slug-42"},
		{name: "empty", input: "", expected: ""},
		{name: "only_symbols", input: "!!!???", expected: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, From(tc.input))
		})
	}
}
