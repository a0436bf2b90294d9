package ports

// SessionSlot définit le port de sortie du slot durable de session : une seule
// clé contenant l'identité sérialisée, l'équivalent serveur du localStorage.
// Le store de session est seul à interpréter les octets; l'adaptateur ne voit
// que du JSON opaque.
type SessionSlot interface {
	// Read renvoie (nil, nil) si le slot est vide. Un contenu illisible est
	// rapporté en erreur et traité par l'appelant comme « déconnecté ».
	Read() ([]byte, error)
	// Write écrase le slot avec la nouvelle identité sérialisée.
	Write(data []byte) error
	// Clear vide le slot; idempotent.
	Clear() error
}
