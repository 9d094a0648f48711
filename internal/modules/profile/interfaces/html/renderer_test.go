package html_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/djsar/stagepage/internal/modules/profile/domain"
	"github.com/djsar/stagepage/internal/modules/profile/interfaces/html"
)

func sampleProfile() *domain.Profile {
	return &domain.Profile{
		Subdomain: "nova",
		StageName: "DJ Nova",
		Email:     "nova@example.com",
		Location:  "Buenos Aires",
		Genre:     "Techno",
		Bio:       "line one\nline two",
		TechRider: "2x CDJ\n1x mixer",
	}
}

func TestRenderProfile_BasicContent(t *testing.T) {
	r := html.NewRenderer("djs.ar")
	out := r.RenderProfile(sampleProfile())

	assert.Contains(t, out, "DJ Nova")
	assert.Contains(t, out, "nova.djs.ar")
	assert.Contains(t, out, "Buenos Aires")
	assert.Contains(t, out, "Techno")
	assert.Contains(t, out, "line one<br>line two")
	assert.Contains(t, out, "2x CDJ<br>1x mixer")
	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
}

func TestRenderProfile_AvatarOnlyWhenImageSet(t *testing.T) {
	r := html.NewRenderer("djs.ar")

	p := sampleProfile()
	assert.NotContains(t, r.RenderProfile(p), "<img")

	url := "https://media.djs.ar/profile-images/nova-1.png"
	p.ImageURL = &url
	assert.Contains(t, r.RenderProfile(p), `<img src="https://media.djs.ar/profile-images/nova-1.png"`)
}

func TestRenderProfile_SocialsOrderAndFiltering(t *testing.T) {
	r := html.NewRenderer("djs.ar")
	p := sampleProfile()
	p.Instagram = "https://instagram.com/nova"
	p.Bandcamp = "https://nova.bandcamp.com"

	out := r.RenderProfile(p)

	assert.Contains(t, out, "Instagram")
	assert.Contains(t, out, "Bandcamp / Spotify")
	assert.NotContains(t, out, "SoundCloud")
	assert.NotContains(t, out, "YouTube")
	assert.Less(t, strings.Index(out, "Instagram"), strings.Index(out, "Bandcamp / Spotify"))
}

func TestRenderProfile_EmptySocialsKeepCard(t *testing.T) {
	r := html.NewRenderer("djs.ar")
	out := r.RenderProfile(sampleProfile())

	// The card and its list render even when no link survives filtering.
	assert.Contains(t, out, "<h2>Socials</h2>")
	assert.Contains(t, out, "<ul>")
	assert.NotContains(t, out, "<li>")
}

func TestRenderProfile_EmbedVerbatim(t *testing.T) {
	r := html.NewRenderer("djs.ar")
	p := sampleProfile()
	p.Embed = `<iframe src="https://w.soundcloud.com/player"></iframe>`

	out := r.RenderProfile(p)

	assert.Contains(t, out, p.Embed)
}

func TestRenderProfile_Idempotent(t *testing.T) {
	r := html.NewRenderer("djs.ar")
	p := sampleProfile()

	assert.Equal(t, r.RenderProfile(p), r.RenderProfile(p))
}

func TestRenderProfile_EmptyFieldsStillRender(t *testing.T) {
	r := html.NewRenderer("djs.ar")
	out := r.RenderProfile(&domain.Profile{Subdomain: "bare", StageName: "Bare"})

	assert.Contains(t, out, "bare.djs.ar")
	assert.Contains(t, out, `<section class="bio"><p></p></section>`)
	assert.Contains(t, out, `<section class="embed"></section>`)
}

func TestRenderNotFound(t *testing.T) {
	r := html.NewRenderer("djs.ar")
	out := r.RenderNotFound("ghost")

	assert.Contains(t, out, "ghost.djs.ar")
	assert.Contains(t, out, "Perfil en proceso")
	assert.Contains(t, out, `href="https://djs.ar"`)
	assert.Equal(t, out, r.RenderNotFound("ghost"))
}
