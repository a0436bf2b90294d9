package ports

import (
	"context"

	"github.com/rayaneflai9-afk/phynteck/internal/domain/entity"
)

// Advisor définit le port de sortie de l'assistant de recommandation.
// Tout adaptateur (table locale, futur LLM distant) doit implémenter ce
// contrat; l'application ne connaît que l'interface, pas l'implémentation.
// L'adaptateur actuel reste une simulation locale : brancher un vrai modèle
// est un non-objectif tant que le backend n'existe pas.
type Advisor interface {
	// Recommend analyse la recherche libre de l'utilisateur et propose des
	// alternatives. Ne renvoie jamais une liste vide : sans correspondance,
	// l'entrée « Analyse personnalisée requise » est retournée.
	Recommend(ctx context.Context, query string) ([]entity.Recommendation, error)

	// Suggestions renvoie les recherches populaires proposées sous le champ.
	Suggestions() []string
}
