// Package access contient le guard d'accès : une fonction de décision pure
// sur (identité courante, rôle requis, approbation requise). Aucune E/S,
// aucun historique — l'état est reclassifié à chaque évaluation.
package access

import "github.com/rayaneflai9-afk/phynteck/internal/domain/entity"

// State état de rendu décidé par le guard.
type State string

const (
	// StateNoSession personne n'est connecté : vue « connexion requise ».
	StateNoSession State = "no_session"
	// StateWrongRole le rôle courant ne correspond pas au rôle requis : vue « accès non autorisé ».
	StateWrongRole State = "wrong_role"
	// StatePendingApproval compte fournisseur en attente de vérification.
	StatePendingApproval State = "pending_approval"
	// StateAuthorized le contenu protégé peut être rendu.
	StateAuthorized State = "authorized"
)

// Decision résultat d'une évaluation. Role et RequiredRole ne sont renseignés
// que pour StateWrongRole, pour l'affichage « Votre rôle / Rôle requis ».
type Decision struct {
	State        State
	Role         string
	RequiredRole string
}

// Evaluate classe la requête dans l'un des quatre états, dans cet ordre
// strict, premier critère satisfait gagnant :
//
//  1. pas d'identité                              -> StateNoSession
//  2. requiredRole donné et rôle différent        -> StateWrongRole
//  3. requireApproval et statut effectif pending  -> StatePendingApproval
//  4. sinon                                       -> StateAuthorized
//
// Le statut évalué est le statut effectif : un admin n'est jamais pending,
// un fournisseur sans statut explicite l'est.
func Evaluate(identity *entity.Identity, requiredRole string, requireApproval bool) Decision {
	if identity == nil {
		return Decision{State: StateNoSession}
	}
	if requiredRole != "" && identity.Role != requiredRole {
		return Decision{
			State:        StateWrongRole,
			Role:         identity.Role,
			RequiredRole: requiredRole,
		}
	}
	if requireApproval && identity.EffectiveStatus() == entity.StatusPending {
		return Decision{State: StatePendingApproval}
	}
	return Decision{State: StateAuthorized}
}
