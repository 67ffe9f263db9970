package domain

import (
	"strings"
)

type Platform string

const (
	PlatformShopify Platform = "shopify"
	PlatformStripe  Platform = "stripe"
	PlatformEtsy    Platform = "etsy"
	PlatformAmazon  Platform = "amazon"
)

// Platforms define a ordem fixa usada em todas as iterações por plataforma
var Platforms = []Platform{
	PlatformShopify,
	PlatformStripe,
	PlatformEtsy,
	PlatformAmazon,
}

var platformLabels = map[Platform]string{
	PlatformShopify: "Shopify",
	PlatformStripe:  "Stripe",
	PlatformEtsy:    "Etsy",
	PlatformAmazon:  "Amazon",
}

var platformColors = map[Platform]string{
	PlatformShopify: "#96bf48",
	PlatformStripe:  "#635bff",
	PlatformEtsy:    "#f1641e",
	PlatformAmazon:  "#ff9900",
}

// Label retorna o nome de exibição da plataforma
func (p Platform) Label() string {
	if label, ok := platformLabels[p]; ok {
		return label
	}
	return string(p)
}

func (p Platform) Color() string {
	return platformColors[p]
}

func (p Platform) IsValid() bool {
	_, ok := platformLabels[p]
	return ok
}

// ParsePlatform converte um nome de canal em plataforma, ignorando maiúsculas e espaços.
// O segundo retorno indica se o nome era conhecido.
func ParsePlatform(name string) (Platform, bool) {
	platform := Platform(strings.ToLower(strings.TrimSpace(name)))
	if platform.IsValid() {
		return platform, true
	}
	return PlatformShopify, false
}

// ParsePlatforms converte uma lista de nomes em plataformas, falhando no primeiro nome desconhecido
func ParsePlatforms(names []string) ([]Platform, error) {
	platforms := make([]Platform, 0, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}

		platform, ok := ParsePlatform(name)
		if !ok {
			return nil, &UnknownPlatformError{Name: name}
		}
		platforms = append(platforms, platform)
	}
	return platforms, nil
}
