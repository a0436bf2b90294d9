// Package ai contient l'adaptateur de l'assistant de recommandation.
// L'implémentation actuelle est une simulation locale : table de
// correspondances et repli générique, conformément à la maquette —
// aucune API distante n'est appelée.
package ai

import (
	"context"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/rayaneflai9-afk/phynteck/internal/application/ports"
	"github.com/rayaneflai9-afk/phynteck/internal/domain/entity"
)

// Vérification à la compilation que LocalAdvisor implémente Advisor.
var _ ports.Advisor = (*LocalAdvisor)(nil)

// queryEntry associe une recherche connue à ses alternatives.
type queryEntry struct {
	query           string
	recommendations []entity.Recommendation
}

// LocalAdvisor assistant local : correspondance par sous-chaîne, insensible
// à la casse et aux accents (« engrais economique » trouve la même entrée
// que « engrais économique »).
type LocalAdvisor struct {
	entries []queryEntry
}

// NewLocalAdvisor construit l'assistant avec la table d'exemple.
func NewLocalAdvisor() *LocalAdvisor {
	return &LocalAdvisor{entries: sampleEntries()}
}

// Recommend cherche une entrée dont la recherche connue contient la requête
// ou inversement. Sans correspondance, renvoie l'entrée par défaut qui
// redirige vers les experts — jamais une liste vide.
func (a *LocalAdvisor) Recommend(ctx context.Context, query string) ([]entity.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	q := a.fold(query)
	for _, e := range a.entries {
		known := a.fold(e.query)
		if strings.Contains(known, q) || strings.Contains(q, known) {
			return append([]entity.Recommendation(nil), e.recommendations...), nil
		}
	}

	return []entity.Recommendation{
		{
			Name:     "Analyse personnalisée requise",
			Reason:   "Contactez nos experts pour des recommandations sur mesure",
			Price:    decimal.Zero,
			Benefits: []string{"Consultation gratuite", "Conseils personnalisés", "Support technique"},
		},
	}, nil
}

// Suggestions renvoie les recherches populaires affichées sous le champ.
func (a *LocalAdvisor) Suggestions() []string {
	return []string{
		"engrais économique",
		"protection naturelle",
		"irrigation goutte à goutte",
		"semences résistantes",
	}
}

// fold met en minuscules et supprime les diacritiques. Le transformer est
// construit à chaque appel : il porte un état interne et ne doit pas être
// partagé entre requêtes.
func (a *LocalAdvisor) fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return folded
}

func sampleEntries() []queryEntry {
	return []queryEntry{
		{
			query: "engrais économique",
			recommendations: []entity.Recommendation{
				{
					Name:     "Compost Organique Local",
					Reason:   "Alternative naturelle et économique",
					Price:    decimal.NewFromInt(800),
					Benefits: []string{"Écologique", "Améliore le sol", "Prix abordable"},
				},
				{
					Name:     "Engrais NPK 12-12-17",
					Reason:   "Formulation similaire, prix réduit",
					Price:    decimal.NewFromInt(2100),
					Benefits: []string{"Moins cher", "Efficace", "Disponible localement"},
				},
			},
		},
		{
			query: "protection naturelle",
			recommendations: []entity.Recommendation{
				{
					Name:     "Huile de Neem",
					Reason:   "Insecticide biologique efficace",
					Price:    decimal.NewFromInt(450),
					Benefits: []string{"100% naturel", "Sans résidus", "Polyvalent"},
				},
				{
					Name:     "Savon Insecticide",
					Reason:   "Solution écologique et sûre",
					Price:    decimal.NewFromInt(280),
					Benefits: []string{"Non toxique", "Biodégradable", "Économique"},
				},
			},
		},
	}
}
