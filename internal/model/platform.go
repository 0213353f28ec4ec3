package model

import (
	"strings"
)

// Platform 账号所属平台
type Platform string

const (
	PlatformFacebook  Platform = "FACEBOOK"
	PlatformInstagram Platform = "INSTAGRAM"
	PlatformYoutube   Platform = "YOUTUBE"
	PlatformWebsite   Platform = "WEBSITE"
)

// AllPlatforms 输出顺序固定，分布统计按此顺序返回
var AllPlatforms = []Platform{
	PlatformFacebook,
	PlatformInstagram,
	PlatformYoutube,
	PlatformWebsite,
}

// ParsePlatform 大小写不敏感解析，非法值返回 false
func ParsePlatform(s string) (Platform, bool) {
	for _, p := range AllPlatforms {
		if strings.EqualFold(string(p), s) {
			return p, true
		}
	}
	return "", false
}

// URLType 链接类型，POST 对应社媒帖子，WEB_POST 对应博客/网站文章
type URLType string

const (
	URLTypePost    URLType = "POST"
	URLTypeWebPost URLType = "WEB_POST"
)

// TypeForPlatform 平台决定链接类型：三大社媒为 POST，其余为 WEB_POST
func TypeForPlatform(p Platform) URLType {
	if p == PlatformWebsite {
		return URLTypeWebPost
	}
	return URLTypePost
}
