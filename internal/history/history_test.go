package history

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackIncrements(t *testing.T) {
	h := New()

	assert.Equal(t, 1, h.Track("Herbal Teas"))
	assert.Equal(t, 2, h.Track("Herbal Teas"))
	assert.Equal(t, 2, h.Count("Herbal Teas"))
	assert.Equal(t, 0, h.Count("Organic Honey"))
	assert.Equal(t, 1, h.Len())
}

func TestRankedBreaksTiesByFirstSeen(t *testing.T) {
	h := New()
	h.Track("Organic Honey")
	h.Track("Herbal Teas")
	h.Track("Pain Relief")
	h.Track("Pain Relief")

	assert.Equal(t, []string{"Pain Relief", "Organic Honey", "Herbal Teas"}, h.Ranked())

	h.Track("Herbal Teas")
	h.Track("Herbal Teas")
	assert.Equal(t, []string{"Herbal Teas", "Pain Relief", "Organic Honey"}, h.Ranked())
}

func TestEmptyHistory(t *testing.T) {
	h := New()
	assert.Empty(t, h.Ranked())
	assert.Empty(t, h.Counts())
}

func TestJSONPreservesOrder(t *testing.T) {
	h := New()
	h.Track("Organic Honey")
	h.Track("Herbal Teas")

	b, err := json.Marshal(h)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Organic Honey":1,"Herbal Teas":1}`, string(b))

	restored := New()
	require.NoError(t, json.Unmarshal(b, restored))
	assert.Equal(t, []string{"Organic Honey", "Herbal Teas"}, restored.Ranked())
	assert.Equal(t, map[string]int{"Organic Honey": 1, "Herbal Teas": 1}, restored.Counts())
}

func TestReset(t *testing.T) {
	h := New()
	h.Track("Herbal Teas")
	h.Reset()
	assert.Equal(t, 0, h.Len())
}
