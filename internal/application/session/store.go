// Package session tient l'identité courante : au plus un utilisateur connecté
// à la fois (modèle mono-session, un navigateur, un onglet), répliqué dans un
// slot durable pour survivre aux redémarrages.
package session

import (
	"encoding/json"
	"sync"

	"github.com/rayaneflai9-afk/phynteck/internal/application/ports"
	"github.com/rayaneflai9-afk/phynteck/internal/domain/entity"
)

// Store est le propriétaire exclusif de l'Identity courante. Tous les autres
// composants reçoivent des copies en lecture seule via Current.
//
// Le mutex protège l'accès concurrent des handlers Fiber; il n'y a pas d'autre
// coordination : en cas d'écritures simultanées, la dernière gagne.
type Store struct {
	mu      sync.RWMutex
	current *entity.Identity
	slot    ports.SessionSlot
}

// NewStore construit le store au-dessus du slot durable donné.
func NewStore(slot ports.SessionSlot) *Store {
	return &Store{slot: slot}
}

// Load tente de restaurer l'identité depuis le slot durable au démarrage.
// Échoue silencieusement : slot absent, illisible ou contenu malformé
// laissent simplement l'identité à nil. Ne renvoie jamais d'erreur.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	data, err := s.slot.Read()
	if err != nil || len(data) == 0 {
		return
	}
	var id entity.Identity
	if err := json.Unmarshal(data, &id); err != nil {
		return
	}
	if !id.IsValid() {
		return
	}
	s.current = &id
}

// Save écrase le slot durable et la valeur en mémoire avec l'identité donnée.
// Une erreur d'écriture du slot n'empêche pas la mise à jour en mémoire :
// la session vit, elle ne survivra juste pas au redémarrage.
func (s *Store) Save(id entity.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = &id
	data, err := json.Marshal(id)
	if err != nil {
		return err
	}
	return s.slot.Write(data)
}

// Clear supprime le slot durable et la valeur en mémoire. Idempotent.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	_ = s.slot.Clear()
}

// Current renvoie une copie de l'identité connectée, ou nil si personne ne
// l'est. C'est la réponse de référence consommée par le guard et les vues.
func (s *Store) Current() *entity.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}
