package utils

import (
	"html/template"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// EnhanceHTMLContent post-processes sanitized description HTML: images load
// lazily without a referrer, and a paragraph holding nothing but a YouTube
// or SoundCloud link becomes an embedded player.
func EnhanceHTMLContent(htmlStr template.HTML) template.HTML {
	if htmlStr == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(htmlStr)))
	if err != nil {
		return htmlStr
	}

	doc.Find("img").Each(func(i int, s *goquery.Selection) {
		s.SetAttr("referrerpolicy", "no-referrer")
		s.SetAttr("loading", "lazy")
	})

	doc.Find("p").Each(func(i int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if !strings.HasPrefix(text, "http") || strings.ContainsAny(text, " \n") {
			return
		}
		if embed := embedPlayer(text); embed != "" {
			s.ReplaceWithHtml(embed)
		}
	})

	html, _ := doc.Find("body").Html()
	return template.HTML(html)
}

func embedPlayer(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	host := strings.TrimPrefix(u.Host, "www.")

	var src string
	switch {
	case host == "youtube.com" && u.Path == "/watch" && u.Query().Get("v") != "":
		src = "https://www.youtube.com/embed/" + url.PathEscape(u.Query().Get("v"))
	case host == "youtu.be" && len(u.Path) > 1:
		src = "https://www.youtube.com/embed/" + url.PathEscape(strings.TrimPrefix(u.Path, "/"))
	case host == "soundcloud.com" && len(u.Path) > 1:
		src = "https://w.soundcloud.com/player/?url=" + url.QueryEscape("https://soundcloud.com"+u.Path)
	default:
		return ""
	}
	return `<div class="player-container"><iframe src="` + template.HTMLEscapeString(src) +
		`" frameborder="0" allow="autoplay; encrypted-media" allowfullscreen></iframe></div>`
}
