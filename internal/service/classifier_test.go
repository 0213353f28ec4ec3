package service

import (
	"Reachboard/internal/model"
	"testing"
)

func TestIsValidURL(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{"https://example.com/post", true},
		{"http://facebook.com", true},
		{"example.com", false},
		{"not a url", false},
		{"", false},
		{"https://", false},
	}

	for _, c := range cases {
		if got := IsValidURL(c.raw); got != c.want {
			t.Errorf("IsValidURL(%q) = %v, want %v", c.raw, got, c.want)
		}
	}
}

func TestDetectPlatform(t *testing.T) {
	cases := []struct {
		raw  string
		want model.Platform
	}{
		{"https://www.facebook.com/page/posts/1", model.PlatformFacebook},
		{"https://m.facebook.com/page/posts/1", model.PlatformFacebook},
		{"https://www.instagram.com/p/abc/", model.PlatformInstagram},
		{"https://www.youtube.com/watch?v=abc", model.PlatformYoutube},
		{"https://youtu.be/abc", model.PlatformYoutube},
		{"https://WWW.YouTube.com/watch?v=abc", model.PlatformYoutube},
		{"https://medium.com/@someone/post", model.PlatformWebsite},
		{"https://example.com/blog/entry", model.PlatformWebsite},
	}

	for _, c := range cases {
		if got := DetectPlatform(c.raw); got != c.want {
			t.Errorf("DetectPlatform(%q) = %s, want %s", c.raw, got, c.want)
		}
	}
}
