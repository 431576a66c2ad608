package entity

// Platform describes a target social network's display style.
type Platform struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Abbr  string `json:"abbr"`
	Color string `json:"color"`
}

// DefaultPlatform is used for unknown platform keys; they are not rejected,
// they just render with the default style.
var DefaultPlatform = Platform{Key: "", Name: "Other", Abbr: "XX", Color: "#9b59b6"}

var platforms = []Platform{
	{Key: "instagram", Name: "Instagram", Abbr: "IS", Color: "#e4405f"},
	{Key: "facebook", Name: "Facebook", Abbr: "FB", Color: "#1877f2"},
	{Key: "linkedin", Name: "LinkedIn", Abbr: "LK", Color: "#0077b5"},
	{Key: "twitter", Name: "Twitter/X", Abbr: "TX", Color: "#1da1f2"},
	{Key: "youtube", Name: "YouTube", Abbr: "YT", Color: "#ff0000"},
	{Key: "tiktok", Name: "TikTok", Abbr: "TK", Color: "#000000"},
	{Key: "telegram", Name: "Telegram", Abbr: "TG", Color: "#0088cc"},
	{Key: "pinterest", Name: "Pinterest", Abbr: "PI", Color: "#bd081c"},
	{Key: "whatsapp", Name: "WhatsApp Business", Abbr: "WB", Color: "#25d366"},
	{Key: "discord", Name: "Discord", Abbr: "DC", Color: "#5865f2"},
	{Key: "forum", Name: "Forum", Abbr: "FM", Color: "#ff6b35"},
}

var platformsByKey = func() map[string]Platform {
	m := make(map[string]Platform, len(platforms))
	for _, p := range platforms {
		m[p.Key] = p
	}
	return m
}()

func Platforms() []Platform {
	out := make([]Platform, len(platforms))
	copy(out, platforms)
	return out
}

func PlatformByKey(key string) Platform {
	if p, ok := platformsByKey[key]; ok {
		return p
	}
	return DefaultPlatform
}
