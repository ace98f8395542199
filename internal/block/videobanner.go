// internal/block/videobanner.go
//
// Video banner.  No fetch.  The supplied video reference is classified
// into one of three presentation strategies:
//
//   - hosted-platform embed (YouTube, Vimeo)  – iframe, no text overlay,
//     because the platform chrome already owns that surface,
//   - direct playable file (.mp4/.webm/.ogg/.mov) – <video> + overlay,
//   - static poster fallback for anything else    – image div + overlay.
//
// No reference at all suppresses the block.
package block

import (
	"html/template"
	"net/url"
	"path"
	"strings"
)

type videoStrategy int

const (
	videoEmbed videoStrategy = iota
	videoFile
	videoPoster
)

var videoBannerTmpl = template.Must(template.New("video_banner").Parse(`<section class="block video-banner" style="height:{{.HeightPx}}px">
{{if .Embed}}<iframe class="video-banner-embed" src="{{.EmbedURL}}" frameborder="0" allow="autoplay; encrypted-media" allowfullscreen></iframe>{{else if .File}}<video class="video-banner-video" src="{{.VideoURL}}" autoplay muted loop playsinline></video>{{else}}<div class="video-banner-poster" style="background-image:url('{{.VideoURL}}')"></div>{{end}}
{{if .Overlay}}<div class="video-banner-overlay">
{{if .Title}}<h2 class="video-banner-title">{{.Title}}</h2>{{end}}
{{if .Subtitle}}<p class="video-banner-subtitle">{{.Subtitle}}</p>{{end}}
</div>{{end}}
</section>
`))

type videoBannerData struct {
	Embed    bool
	File     bool
	Overlay  bool
	EmbedURL string
	VideoURL string
	Title    string
	Subtitle string
	HeightPx int
}

func (r *Renderer) renderVideoBanner(cfg Config) (template.HTML, error) {
	raw := strings.TrimSpace(cfg.Str("video_url", ""))
	if raw == "" {
		return "", nil
	}

	strategy, embedURL := classifyVideo(raw)
	title := cfg.Str("title", "")
	subtitle := cfg.Str("subtitle", "")

	return exec(videoBannerTmpl, videoBannerData{
		Embed:    strategy == videoEmbed,
		File:     strategy == videoFile,
		Overlay:  strategy != videoEmbed && (title != "" || subtitle != ""),
		EmbedURL: embedURL,
		VideoURL: raw,
		Title:    title,
		Subtitle: subtitle,
		HeightPx: clampInt(cfg.Int("height_px", 480), 200, 1080),
	})
}

// classifyVideo picks the presentation strategy and, for platform
// hosts, the canonical embed URL.
func classifyVideo(raw string) (videoStrategy, string) {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return videoPoster, ""
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")

	switch host {
	case "youtube.com", "m.youtube.com":
		if id := u.Query().Get("v"); id != "" {
			return videoEmbed, "https://www.youtube.com/embed/" + url.PathEscape(id)
		}
		if strings.HasPrefix(u.Path, "/embed/") {
			return videoEmbed, "https://www.youtube.com" + u.Path
		}
	case "youtu.be":
		if id := strings.Trim(u.Path, "/"); id != "" {
			return videoEmbed, "https://www.youtube.com/embed/" + url.PathEscape(id)
		}
	case "vimeo.com", "player.vimeo.com":
		if id := strings.Trim(strings.TrimPrefix(u.Path, "/video"), "/"); id != "" {
			return videoEmbed, "https://player.vimeo.com/video/" + url.PathEscape(id)
		}
	}

	switch strings.ToLower(path.Ext(u.Path)) {
	case ".mp4", ".webm", ".ogg", ".mov":
		return videoFile, ""
	}
	return videoPoster, ""
}
