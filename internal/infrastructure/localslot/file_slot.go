// Package localslot fournit l'adaptateur fichier du slot durable de session :
// un unique document JSON sur disque, sans versionnage ni migration.
package localslot

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FileSlot implémente ports.SessionSlot au-dessus d'un fichier.
type FileSlot struct {
	path string
}

// NewFileSlot construit le slot pour le chemin donné. Le fichier n'est créé
// qu'à la première écriture.
func NewFileSlot(path string) *FileSlot {
	return &FileSlot{path: path}
}

// Read renvoie (nil, nil) si le fichier n'existe pas encore.
func (f *FileSlot) Read() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// Write écrase le fichier avec la nouvelle identité sérialisée.
// Écriture via fichier temporaire + rename pour ne jamais laisser un slot
// à moitié écrit après une coupure.
func (f *FileSlot) Write(data []byte) error {
	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}

// Clear supprime le fichier; l'absence du fichier n'est pas une erreur.
func (f *FileSlot) Clear() error {
	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
