// Copyright (c) 2026 Shopline. All rights reserved.
// Author: tran.duc.minh.dev@gmail.com

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranducminh/shopline/internal/platform/sec"
)

/*
TestHashPassword_RoundTrip hashes a password and verifies the original
matches while a wrong password does not.
*/
func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := sec.HashPassword("123456")
	require.NoError(t, err)
	assert.NotEqual(t, "123456", hash)

	assert.True(t, sec.CheckPasswordHash("123456", hash))
	assert.False(t, sec.CheckPasswordHash("1234567", hash))
	assert.False(t, sec.CheckPasswordHash("", hash))
}

/*
TestHashPassword_UniqueSalts checks that two hashes of the same password
differ, proving per-hash salting.
*/
func TestHashPassword_UniqueSalts(t *testing.T) {
	first, err := sec.HashPassword("123456")
	require.NoError(t, err)
	second, err := sec.HashPassword("123456")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

/*
TestCheckPasswordHash_MalformedHash treats a corrupt stored hash as a
mismatch, never a panic.
*/
func TestCheckPasswordHash_MalformedHash(t *testing.T) {
	assert.False(t, sec.CheckPasswordHash("123456", "not-a-bcrypt-hash"))
	assert.False(t, sec.CheckPasswordHash("123456", ""))
}
