package localslot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rayaneflai9-afk/phynteck/internal/infrastructure/localslot"
)

// Cas 1 : fichier absent → (nil, nil), pas d'erreur.
func TestFileSlot_FichierAbsent(t *testing.T) {
	slot := localslot.NewFileSlot(filepath.Join(t.TempDir(), "session.json"))

	data, err := slot.Read()
	require.NoError(t, err, "un fichier absent n'est pas une erreur")
	assert.Nil(t, data)
}

// Cas 2 : Write puis Read restitue les mêmes octets.
func TestFileSlot_EcritureLecture(t *testing.T) {
	slot := localslot.NewFileSlot(filepath.Join(t.TempDir(), "session.json"))
	payload := []byte(`{"id":"1","email":"admin@phynteck.dz","role":"admin","name":"Admin User"}`)

	require.NoError(t, slot.Write(payload))

	data, err := slot.Read()
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

// Cas 3 : Write écrase l'ancien contenu.
func TestFileSlot_EcritureEcrase(t *testing.T) {
	slot := localslot.NewFileSlot(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, slot.Write([]byte("ancien")))
	require.NoError(t, slot.Write([]byte("nouveau")))

	data, err := slot.Read()
	require.NoError(t, err)
	assert.Equal(t, []byte("nouveau"), data)
}

// Cas 4 : Clear supprime le fichier; un deuxième Clear est idempotent.
func TestFileSlot_ClearIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	slot := localslot.NewFileSlot(path)
	require.NoError(t, slot.Write([]byte("x")))

	require.NoError(t, slot.Clear())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "le fichier doit être supprimé")

	require.NoError(t, slot.Clear(), "Clear sans fichier ne doit pas échouer")
}
