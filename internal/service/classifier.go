package service

import (
	"Reachboard/internal/model"
	"net/url"
	"strings"
)

// IsValidURL 字符串能解析出 scheme 和 host 才算合法链接
func IsValidURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return parsed.Scheme != "" && parsed.Host != ""
}

// DetectPlatform 按域名归类平台，识别不了的一律按 WEBSITE 处理
func DetectPlatform(raw string) model.Platform {
	parsed, err := url.Parse(strings.ToLower(raw))
	if err != nil {
		return model.PlatformWebsite
	}

	domain := strings.TrimPrefix(parsed.Hostname(), "www.")

	switch domain {
	case "facebook.com", "m.facebook.com":
		return model.PlatformFacebook
	case "instagram.com":
		return model.PlatformInstagram
	case "youtube.com", "youtu.be":
		return model.PlatformYoutube
	default:
		return model.PlatformWebsite
	}
}
