package domain

import "errors"

// Erreurs de domaine (sans dépendances externes).
var (
	ErrNotFound     = errors.New("ressource introuvable")
	ErrInvalidInput = errors.New("entrée invalide")
	ErrConflict     = errors.New("conflit avec l'état actuel")

	// ErrNetwork est réservé pour le jour où le backend sera réel :
	// le service mock ne le renvoie jamais, mais les appelants branchent déjà dessus.
	ErrNetwork = errors.New("erreur réseau")
)
