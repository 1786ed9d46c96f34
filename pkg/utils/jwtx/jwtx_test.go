package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var secret = []byte("test-signing-key")

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(secret, 7, "binjuhor", time.Hour)
	assert.NoError(t, err)

	claims, err := ParseToken(secret, token)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "binjuhor", claims.Name)
}

func TestParseTokenInvalid(t *testing.T) {
	// 密钥不匹配
	token, err := GenerateToken(secret, 7, "binjuhor", time.Hour)
	assert.NoError(t, err)
	_, err = ParseToken([]byte("other-key"), token)
	assert.Error(t, err)

	// 已过期
	token, err = GenerateToken(secret, 7, "binjuhor", -time.Hour)
	assert.NoError(t, err)
	_, err = ParseToken(secret, token)
	assert.Error(t, err)

	// 非法内容
	_, err = ParseToken(secret, "not-a-token")
	assert.Error(t, err)
}
