package html

import (
	"fmt"
	"strings"

	"github.com/djsar/stagepage/internal/modules/profile/domain"
)

// Renderer turns profile records into self-contained HTML documents via
// plain string interpolation. Both methods are total and deterministic:
// no external calls, no failure mode, and empty fields render as empty
// sections rather than broken markup.
//
// Profile fields are inserted verbatim, including the embed block. Profiles
// are written by the subdomain owner, so the page can only carry markup its
// own owner put there.
type Renderer struct {
	rootDomain string
}

func NewRenderer(rootDomain string) *Renderer {
	return &Renderer{rootDomain: rootDomain}
}

// RenderProfile renders the public page for one performer.
func (r *Renderer) RenderProfile(p *domain.Profile) string {
	socials := [][2]string{
		{"Instagram", p.Instagram},
		{"SoundCloud", p.SoundCloud},
		{"YouTube", p.YouTube},
		{"Bandcamp / Spotify", p.Bandcamp},
	}

	var links strings.Builder
	for _, s := range socials {
		if s[1] == "" {
			continue
		}
		fmt.Fprintf(&links, `<li><a href="%s" target="_blank" rel="noopener">%s</a></li>`, s[1], s[0])
	}

	avatar := ""
	if p.ImageURL != nil && *p.ImageURL != "" {
		avatar = fmt.Sprintf(`<img src="%s" alt="%s" />`, *p.ImageURL, p.StageName)
	}

	return fmt.Sprintf(`<!doctype html>
<html lang="es">
<head>
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>%s · %s</title>
<link rel="preconnect" href="https://fonts.googleapis.com">
<link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
<link href="https://fonts.googleapis.com/css2?family=Inter:wght@400;600;700&display=swap" rel="stylesheet">
<style>
  :root { font-family:Inter,sans-serif; color-scheme:dark; }
  body { margin:0; background:#050505; color:#f5f5f5; }
  header { padding:64px 24px 32px; max-width:960px; margin:0 auto; display:grid; gap:32px; grid-template-columns:200px 1fr; align-items:center; }
  .avatar { border-radius:18px; overflow:hidden; background:#111; aspect-ratio:1; display:flex; }
  .avatar img { width:100%%; height:100%%; object-fit:cover; }
  h1 { margin:0 0 8px; font-size:2.6rem; }
  .meta { text-transform:uppercase; letter-spacing:0.12em; font-size:0.75rem; color:#8a8a8a; }
  .bio { max-width:720px; margin:0 auto; padding:0 24px 48px; color:#c8c8c8; line-height:1.7; }
  .embed { max-width:960px; margin:0 auto 48px; padding:0 24px; }
  .embed iframe { width:100%%; min-height:360px; border:0; border-radius:18px; }
  .grid { max-width:960px; margin:0 auto; padding:0 24px 64px; display:grid; gap:32px; grid-template-columns: repeat(auto-fit, minmax(260px, 1fr)); }
  .card { background:#111; border:1px solid rgba(255,255,255,0.08); border-radius:18px; padding:24px; display:grid; gap:12px; }
  .card h2 { margin:0; font-size:1rem; text-transform:uppercase; letter-spacing:0.12em; color:#8a8a8a; }
  .card ul { margin:0; padding:0; list-style:none; display:grid; gap:8px; }
  .card a { color:#f5ff2b; text-decoration:none; font-size:0.95rem; }
  .rider { white-space:pre-wrap; color:#c8c8c8; font-size:0.95rem; }
  footer { text-align:center; padding:48px 24px; color:#8a8a8a; font-size:0.8rem; text-transform:uppercase; letter-spacing:0.1em; }
  @media (max-width:780px) { header { grid-template-columns:1fr; text-align:center; } .avatar { justify-self:center; max-width:220px; } }
</style>
</head>
<body>
<header>
  <div class="avatar">%s</div>
  <div>
    <div class="meta">%s · %s</div>
    <h1>%s</h1>
    <div class="meta">%s.%s</div>
  </div>
</header>
<section class="bio"><p>%s</p></section>
<section class="embed">%s</section>
<section class="grid">
  <article class="card">
    <h2>Socials</h2>
    <ul>
      %s
    </ul>
  </article>
  <article class="card">
    <h2>Rider técnico</h2>
    <div class="rider">%s</div>
  </article>
</section>
<footer>
  <p>%s · escena electrónica argentina</p>
</footer>
</body>
</html>`,
		p.StageName, r.rootDomain,
		avatar,
		p.Location, p.Genre,
		p.StageName,
		p.Subdomain, r.rootDomain,
		nl2br(p.Bio),
		p.Embed,
		links.String(),
		nl2br(p.TechRider),
		r.rootDomain,
	)
}

// RenderNotFound renders the placeholder page for a subdomain with no
// profile behind it.
func (r *Renderer) RenderNotFound(subdomain string) string {
	return fmt.Sprintf(`<!doctype html>
<html lang="es">
<head>
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>%s.%s · Perfil no encontrado</title>
<style>
  body { margin:0; font-family:Inter, sans-serif; background:#050505; color:#f5f5f5; display:grid; min-height:100vh; place-items:center; }
  main { max-width:560px; padding:48px 32px; text-align:center; border:1px solid rgba(255,255,255,0.08); border-radius:18px; background:#111; }
  h1 { font-size:2rem; margin-bottom:12px; }
  p { color:#8a8a8a; }
  a { color:#f5ff2b; text-transform:uppercase; letter-spacing:0.1em; font-size:0.8rem; }
</style>
</head>
<body>
<main>
  <h1>Perfil en proceso</h1>
  <p>Aún no hay contenido para <strong>%s.%s</strong>. Si sos el DJ, revisá tu correo para confirmar el alta.</p>
  <p><a href="https://%s">Volver a %s</a></p>
</main>
</body>
</html>`,
		subdomain, r.rootDomain,
		subdomain, r.rootDomain,
		r.rootDomain, r.rootDomain,
	)
}

func nl2br(s string) string {
	return strings.ReplaceAll(s, "\n", "<br>")
}
