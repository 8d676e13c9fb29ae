package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouter_ZeroValueStartsAtHome(t *testing.T) {
	var r Router

	assert.Equal(t, PathHome, r.Path())
	assert.Equal(t, []string{PathHome}, r.History())
	assert.False(t, r.Back())
}

func TestRouter_NavigateAndBack(t *testing.T) {
	r := New("")

	r.Navigate(PathChat)
	r.Navigate(PathProfile)
	assert.Equal(t, PathProfile, r.Path())
	assert.Equal(t, []string{PathHome, PathChat, PathProfile}, r.History())

	assert.True(t, r.Back())
	assert.Equal(t, PathChat, r.Path())
	assert.True(t, r.Back())
	assert.Equal(t, PathHome, r.Path())
	assert.False(t, r.Back())
}

func TestRouter_PathsAreNotNormalized(t *testing.T) {
	r := New(PathHome)

	r.Navigate("/chat/")
	assert.Equal(t, "/chat/", r.Path())
}

func TestRouter_HistoryIsACopy(t *testing.T) {
	r := New(PathAuth)

	h := r.History()
	h[0] = "/mutated"
	assert.Equal(t, PathAuth, r.Path())
}
