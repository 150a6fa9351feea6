package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, isValidEmail("a@x.com"))
	assert.True(t, isValidEmail("first.last+tag@sub.example.org"))
	assert.False(t, isValidEmail("not-an-email"))
	assert.False(t, isValidEmail("a@"))
	assert.False(t, isValidEmail("@x.com"))
	assert.False(t, isValidEmail("a@x"))
}

func TestIsDomainEmail(t *testing.T) {
	assert.True(t, isDomainEmail("+acme.com@x.com"))
	assert.False(t, isDomainEmail("a@x.com"))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, isValidPhone("+16502530000", ""))
	assert.False(t, isValidPhone("+1", ""))
	assert.False(t, isValidPhone("hello", "1"))
}

func TestIsValidPhone_AppendsCountryCode(t *testing.T) {
	assert.True(t, isValidPhone("6502530000", "1"))
	assert.False(t, isValidPhone("6502530000", ""))
}

func TestAppendCountryCode(t *testing.T) {
	assert.Equal(t, "+16502530000", appendCountryCode("6502530000", "1"))
	assert.Equal(t, "+16502530000", appendCountryCode("+16502530000", "1"))
	assert.Equal(t, "6502530000", appendCountryCode("6502530000", ""))
}

func TestAddSMSDomainIfPhoneNumber(t *testing.T) {
	assert.Equal(t, "+16502530000@chatpick.sms", addSMSDomainIfPhoneNumber("+16502530000", ""))
	assert.Equal(t, "+16502530000@chatpick.sms", addSMSDomainIfPhoneNumber("6502530000", "1"))
}

func TestAddSMSDomainIfPhoneNumber_PassThrough(t *testing.T) {
	assert.Equal(t, "a@x.com", addSMSDomainIfPhoneNumber("a@x.com", "1"))
	assert.Equal(t, "garbage", addSMSDomainIfPhoneNumber("garbage", "1"))
}
