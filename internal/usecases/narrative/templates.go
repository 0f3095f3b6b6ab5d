package narrative

import (
	"regexp"
	"strings"
	"sync"

	"github.com/vfg2006/commercial-publisher-api/internal/domain"
)

var placeholderPattern = regexp.MustCompile(`\{\{\s*(\w+)\s*\}\}`)

// Template é um texto com variáveis no formato {{nome}}; todas são obrigatórias
type Template struct {
	ID       string          `json:"id"`
	Platform domain.Platform `json:"platform"`
	Body     string          `json:"body"`
}

// Variables lista as variáveis do template na ordem em que aparecem, sem repetição
func (t Template) Variables() []string {
	seen := make(map[string]bool)
	names := make([]string, 0)
	for _, match := range placeholderPattern.FindAllStringSubmatch(t.Body, -1) {
		if !seen[match[1]] {
			seen[match[1]] = true
			names = append(names, match[1])
		}
	}
	return names
}

// Render substitui as variáveis; devolve false se alguma estiver ausente ou vazia
func (t Template) Render(vars map[string]string) (string, bool) {
	for _, name := range t.Variables() {
		if strings.TrimSpace(vars[name]) == "" {
			return "", false
		}
	}

	return placeholderPattern.ReplaceAllStringFunc(t.Body, func(match string) string {
		name := placeholderPattern.FindStringSubmatch(match)[1]
		return vars[name]
	}), true
}

// Templates guarda os templates por plataforma, na ordem de preferência
type Templates struct {
	mu         sync.RWMutex
	byPlatform map[domain.Platform][]Template
}

func NewTemplates() *Templates {
	return &Templates{byPlatform: make(map[domain.Platform][]Template)}
}

// DefaultTemplates traz do mais completo ao mais simples, para que sempre haja um renderizável
func DefaultTemplates() *Templates {
	t := NewTemplates()

	t.Add(Template{ID: "facebook-completo", Platform: domain.PlatformFacebook, Body: "{{titulo}}\n\n{{descricao}}\n\nConfira agora e aproveite!"})
	t.Add(Template{ID: "facebook-simples", Platform: domain.PlatformFacebook, Body: "{{titulo}}. Confira agora e aproveite!"})

	t.Add(Template{ID: "instagram-completo", Platform: domain.PlatformInstagram, Body: "✨ {{titulo}} ✨\n\n{{descricao}}\n\n#oferta #novidade"})
	t.Add(Template{ID: "instagram-simples", Platform: domain.PlatformInstagram, Body: "✨ {{titulo}} ✨\n\n#oferta #novidade"})

	t.Add(Template{ID: "tiktok-simples", Platform: domain.PlatformTikTok, Body: "{{titulo}} #fyp #oferta"})

	t.Add(Template{ID: "youtube-completo", Platform: domain.PlatformYouTube, Body: "{{titulo}}\n\n{{descricao}}\n\nInscreva-se no canal para mais novidades."})
	t.Add(Template{ID: "youtube-simples", Platform: domain.PlatformYouTube, Body: "{{titulo}}\n\nInscreva-se no canal para mais novidades."})

	return t
}

func (t *Templates) Add(template Template) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.byPlatform[template.Platform] = append(t.byPlatform[template.Platform], template)
}

func (t *Templates) List(platform domain.Platform) []Template {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]Template(nil), t.byPlatform[platform]...)
}

// RenderFirst usa o primeiro template da plataforma que tenha todas as variáveis
func (t *Templates) RenderFirst(platform domain.Platform, vars map[string]string) (string, bool) {
	for _, template := range t.List(platform) {
		if text, ok := template.Render(vars); ok {
			return text, true
		}
	}
	return "", false
}
