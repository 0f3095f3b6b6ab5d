package scraper

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commercial-publisher-api/internal/domain"
	"github.com/vfg2006/commercial-publisher-api/pkg/utils"
	"golang.org/x/net/html"
)

var (
	ErrInvalidURL      = errors.New("url do produto inválida")
	ErrProductNotFound = errors.New("não foi possível identificar o produto na página")
)

const maxImages = 5

// Scraper extrai o produto das meta tags OpenGraph da página, com fallback para <title> e <img>
type Scraper struct {
	HTTPClient *http.Client
}

func New(httpClient *http.Client) *Scraper {
	return &Scraper{HTTPClient: httpClient}
}

func (s *Scraper) Scrape(ctx context.Context, rawURL string) (*domain.ProductContent, error) {
	pageURL, err := url.Parse(rawURL)
	if err != nil || (pageURL.Scheme != "http" && pageURL.Scheme != "https") || pageURL.Host == "" {
		return nil, ErrInvalidURL
	}

	body, err := utils.MakeRequest(ctx, s.HTTPClient, http.MethodGet, rawURL, nil, map[string]string{
		"Accept":     "text/html",
		"User-Agent": "commercial-publisher/1.0",
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao baixar a página do produto")
	}

	product, err := Parse(pageURL, body)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"url":   rawURL,
			"error": err.Error(),
		}).Warn("Falha ao extrair produto da página")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"url":    rawURL,
		"name":   product.Name,
		"images": len(product.Images),
	}).Info("Produto extraído da página")

	return product, nil
}

// Parse lê o HTML já baixado; pageURL resolve caminhos relativos de imagens
func Parse(pageURL *url.URL, body []byte) (*domain.ProductContent, error) {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao interpretar o HTML")
	}

	page := &pageData{meta: make(map[string]string)}
	page.walk(doc)

	product := &domain.ProductContent{
		Name:        firstNonEmpty(page.meta["og:title"], page.meta["twitter:title"], page.title),
		Description: firstNonEmpty(page.meta["og:description"], page.meta["description"]),
		Currency:    firstNonEmpty(page.meta["product:price:currency"], page.meta["og:price:currency"]),
		StoreName:   page.meta["og:site_name"],
		URL:         pageURL.String(),
	}

	if product.Name == "" {
		return nil, ErrProductNotFound
	}

	if price, ok := ParsePrice(firstNonEmpty(page.meta["product:price:amount"], page.meta["og:price:amount"])); ok {
		product.Price = price
	}

	images := page.ogImages
	if len(images) == 0 {
		images = page.imgs
	}
	for _, src := range images {
		if len(product.Images) == maxImages {
			break
		}
		if resolved := resolve(pageURL, src); resolved != "" && !contains(product.Images, resolved) {
			product.Images = append(product.Images, resolved)
		}
	}

	return product, nil
}

type pageData struct {
	title    string
	meta     map[string]string
	ogImages []string
	imgs     []string
}

func (p *pageData) walk(n *html.Node) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "title":
			if p.title == "" && n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
				p.title = strings.TrimSpace(n.FirstChild.Data)
			}
		case "meta":
			key := strings.ToLower(firstNonEmpty(attr(n, "property"), attr(n, "name")))
			value := strings.TrimSpace(attr(n, "content"))
			if key != "" && value != "" {
				if key == "og:image" || key == "og:image:url" {
					p.ogImages = append(p.ogImages, value)
				} else if _, exists := p.meta[key]; !exists {
					p.meta[key] = value
				}
			}
		case "img":
			if src := strings.TrimSpace(attr(n, "src")); src != "" && !strings.HasPrefix(src, "data:") {
				p.imgs = append(p.imgs, src)
			}
		}
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		p.walk(child)
	}
}

// ParsePrice aceita "1299.90", "1.299,90" e "R$ 99,90"
func ParsePrice(raw string) (float64, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' {
			return r
		}
		return -1
	}, raw)
	if cleaned == "" {
		return 0, false
	}

	lastComma := strings.LastIndex(cleaned, ",")
	lastDot := strings.LastIndex(cleaned, ".")

	switch {
	case lastComma > lastDot:
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	case lastDot > lastComma && lastComma >= 0:
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	}

	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}

	return utils.RoundWithTwoDecimalPlace(price), true
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

func resolve(base *url.URL, ref string) string {
	parsed, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	return base.ResolveReference(parsed).String()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
