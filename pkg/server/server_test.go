package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/pokedex/internal/pokeapitest"
	"github.com/matzehuels/pokedex/pkg/dex"
	"github.com/matzehuels/pokedex/pkg/effectiveness"
	"github.com/matzehuels/pokedex/pkg/errors"
	"github.com/matzehuels/pokedex/pkg/integrations/pokeapi"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	api := pokeapitest.NewServer(t)
	client := pokeapi.NewClient(nil, api.URL, 0)
	logger := log.New(io.Discard)
	srv := httptest.NewServer(New(dex.New(client, logger), client, logger).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, srv *httptest.Server, path string, v any) *http.Response {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "application/json; charset=utf-8", resp.Header.Get("Content-Type"))
	if v != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}
	return resp
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	var body healthBody
	resp := get(t, srv, "/healthz", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body.Status)
	assert.NotEmpty(t, body.Build.Version)
}

func TestRequestID(t *testing.T) {
	srv := newTestServer(t)

	resp := get(t, srv, "/healthz", nil)
	_, err := uuid.Parse(resp.Header.Get(RequestIDHeader))
	assert.NoError(t, err, "generated request ID should be a UUID")

	tests := []struct {
		name     string
		incoming string
		echoed   bool
	}{
		{"valid uuid is echoed", "0b0e2c4e-8f2a-4b7e-9d7c-2a1f3c5d6e7f", true},
		{"garbage is replaced", "not-a-uuid", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, srv.URL+"/healthz", nil)
			req.Header.Set(RequestIDHeader, tt.incoming)
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			resp.Body.Close()

			got := resp.Header.Get(RequestIDHeader)
			assert.Equal(t, tt.echoed, got == tt.incoming)
			_, err = uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestPokemon(t *testing.T) {
	srv := newTestServer(t)

	var v dex.View
	resp := get(t, srv, "/api/pokemon/Pikachu", &v)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, 25, v.Pokemon.ID)
	assert.Equal(t, []string{"ground (x2)"}, v.Effectiveness.Weaknesses)
	assert.Equal(t, []string{"electric (x0.5)", "flying (x0.5)", "steel (x0.5)"}, v.Effectiveness.Resistances)
	assert.Empty(t, v.Effectiveness.Immunities)
	require.Len(t, v.Abilities, 1)
	assert.Equal(t, "May paralyze on contact.", v.Abilities[0].Description)
	require.NotNil(t, v.Species)
	assert.Equal(t, "Mouse Pokémon", v.Species.Genus)
	assert.Len(t, v.Evolution, 3)
	assert.Equal(t, 125, v.Stats.Total)
}

func TestPokemonErrors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name   string
		path   string
		status int
		code   errors.Code
		msg    string
	}{
		{"unknown pokemon", "/api/pokemon/missingno", http.StatusNotFound, errors.ErrCodePokemonNotFound, "The Pokémon 'missingno' does not exist."},
		{"invalid name", "/api/pokemon/a@b", http.StatusBadRequest, errors.ErrCodeInvalidName, ""},
		{"upstream failure", "/api/pokemon/broken", http.StatusBadGateway, errors.ErrCodeNetwork, "Failed to fetch data from PokeAPI."},
		{"unknown move", "/api/pokemon/pikachu/moves/splash", http.StatusNotFound, errors.ErrCodeMoveNotFound, "The move 'splash' does not exist."},
		{"no types", "/api/types", http.StatusBadRequest, errors.ErrCodeInvalidType, ""},
		{"unknown type", "/api/types?t=sound", http.StatusBadRequest, errors.ErrCodeInvalidType, ""},
		{"bad limit", "/api/pokemon?limit=0", http.StatusBadRequest, errors.ErrCodeInvalidInput, ""},
		{"bad offset", "/api/pokemon?offset=-1", http.StatusBadRequest, errors.ErrCodeInvalidInput, ""},
		{"unknown route", "/nope", http.StatusNotFound, errors.ErrCodeNotFound, "Not found."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body errorBody
			resp := get(t, srv, tt.path, &body)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.code, body.Code)
			if tt.msg != "" {
				assert.Equal(t, tt.msg, body.Error)
			} else {
				assert.NotEmpty(t, body.Error)
			}
		})
	}
}

func TestEvolution(t *testing.T) {
	srv := newTestServer(t)

	var body evolutionBody
	resp := get(t, srv, "/api/pokemon/pikachu/evolution", &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "pikachu", body.Name)
	require.Len(t, body.Evolution, 3)
	assert.Equal(t, "pichu", body.Evolution[0].Name)
	assert.Equal(t, 172, body.Evolution[0].ID)

	require.NotNil(t, body.EvolutionTree)
	pikachu := body.EvolutionTree.Children[0]
	assert.Equal(t, "High friendship", pikachu.Details)
	assert.Equal(t, "use-item", pikachu.Children[0].Trigger)
}

func TestMove(t *testing.T) {
	srv := newTestServer(t)

	var m dex.MoveDetail
	resp := get(t, srv, "/api/pokemon/pikachu/moves/thunderbolt", &m)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "special", m.DamageClass)
	assert.Equal(t, "Has a 10% chance to paralyze the target.", m.Description)
	assert.Equal(t, 90, m.Damage.Base)
	assert.Equal(t, 1.5, m.Damage.STAB)
	assert.Equal(t, 0.5, m.Damage.Effectiveness)
	assert.Equal(t, 68, m.Damage.Final)
}

func TestTypes(t *testing.T) {
	srv := newTestServer(t)

	var res effectiveness.Result
	resp := get(t, srv, "/api/types?t=electric", &res)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"ground (x2)"}, res.Weaknesses)
	assert.Equal(t, 0.5, res.Multiplier("steel"))
}

func TestList(t *testing.T) {
	srv := newTestServer(t)

	var list pokeapi.List
	resp := get(t, srv, "/api/pokemon?limit=2", &list)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1302, list.Count)
	require.Len(t, list.Results, 2)
	assert.Equal(t, "ivysaur", list.Results[1].Name)
	assert.Nil(t, list.Previous)
}

func TestListNotRegisteredWithoutLister(t *testing.T) {
	h := New(dex.New(pokeapi.NewClient(nil, "http://127.0.0.1:0", 0), nil), nil, log.New(io.Discard)).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/pokemon", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWebsocket(t *testing.T) {
	srv := newTestServer(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(" Pikachu ")))
	var ok wsReply
	require.NoError(t, conn.ReadJSON(&ok))
	assert.Equal(t, "Pikachu", ok.Query)
	require.NotNil(t, ok.View)
	assert.Equal(t, "pikachu", ok.View.Pokemon.Name)
	assert.Empty(t, ok.Error)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("missingno")))
	var fail wsReply
	require.NoError(t, conn.ReadJSON(&fail))
	assert.Nil(t, fail.View)
	assert.Equal(t, errors.ErrCodePokemonNotFound, fail.Code)
	assert.Equal(t, "The Pokémon 'missingno' does not exist.", fail.Error)
}

func TestWebsocketRequestID(t *testing.T) {
	srv := newTestServer(t)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"

	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	conn.Close()
	assert.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)
	_, err = uuid.Parse(resp.Header.Get(RequestIDHeader))
	assert.NoError(t, err, "handshake should carry a generated request ID")

	const id = "0b0e2c4e-8f2a-4b7e-9d7c-2a1f3c5d6e7f"
	conn, resp, err = websocket.DefaultDialer.Dial(url, http.Header{RequestIDHeader: []string{id}})
	require.NoError(t, err)
	conn.Close()
	assert.Equal(t, id, resp.Header.Get(RequestIDHeader))
}
