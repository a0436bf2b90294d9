// Package comparison contient la logique pure de l'outil de comparaison :
// choix du produit le moins cher, du mieux noté, et phrase d'analyse affichée
// dans l'encart « Analyse Intelligente ».
package comparison

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rayaneflai9-afk/phynteck/internal/domain/entity"
)

// Analyze produit la phrase d'analyse pour 1 à N produits.
// Avec un seul produit la phrase est générique; à partir de deux, on oppose le
// meilleur prix à la meilleure note. Chaîne vide si la liste est vide.
func Analyze(products []entity.Product) string {
	if len(products) == 0 {
		return ""
	}
	if len(products) == 1 {
		return fmt.Sprintf(
			"Analyse IA: %s est un excellent choix pour sa catégorie avec un bon rapport qualité-prix.",
			products[0].Name,
		)
	}

	cheapest := Cheapest(products)
	bestRated := BestRated(products)

	return fmt.Sprintf(
		"Analyse IA: %s offre le meilleur prix (%s DA), tandis que %s a la meilleure note (%s/5). Considérez vos priorités : budget vs qualité.",
		cheapest.Name, FormatPrice(cheapest.Price),
		bestRated.Name, formatRating(bestRated.Rating),
	)
}

// Cheapest renvoie le produit au prix le plus bas (le dernier en cas d'égalité,
// comme le reduce du front d'origine qui ne garde prev que sur strictement
// inférieur).
func Cheapest(products []entity.Product) entity.Product {
	best := products[0]
	for _, p := range products[1:] {
		if p.Price.LessThanOrEqual(best.Price) {
			best = p
		}
	}
	return best
}

// BestRated renvoie le produit le mieux noté (le dernier en cas d'égalité).
func BestRated(products []entity.Product) entity.Product {
	best := products[0]
	for _, p := range products[1:] {
		if p.Rating >= best.Rating {
			best = p
		}
	}
	return best
}

// FormatPrice formate un montant en DA avec séparateur de milliers
// (2500 -> "2 500"), à la manière du toLocaleString du front.
func FormatPrice(d decimal.Decimal) string {
	s := d.String()
	// Partie décimale éventuelle laissée telle quelle
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	out := b.String()
	if neg {
		out = "-" + out
	}
	if hasFrac {
		out += "," + fracPart
	}
	return out
}

func formatRating(r float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.1f", r), "0"), ".")
}
